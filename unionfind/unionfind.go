// Package unionfind implements a disjoint-set forest with path compression
// and union by size, on a single growable integer arena.
package unionfind

import "fmt"

// DisjointSet tracks a partition of elements 0..Len() into disjoint classes.
//
// The forest is stored in one slice indexed by element id: a negative value
// marks a class representative and holds the negated class size; a
// non-negative value is the id of the element's parent. The zero value is
// an empty set; use New or Add to populate it.
type DisjointSet struct {
	// parentOrSize[i] < 0: i is a root, class size is -parentOrSize[i].
	// parentOrSize[i] >= 0: parent id of i.
	parentOrSize []int
	// groups is the number of disjoint classes.
	groups int
}

// New constructs a DisjointSet of n singleton classes with ids 0..n.
// Complexity: O(n).
func New(n int) *DisjointSet {
	d := &DisjointSet{
		parentOrSize: make([]int, n),
		groups:       n,
	}
	for i := range d.parentOrSize {
		d.parentOrSize[i] = -1
	}

	return d
}

// checkBounds panics if a is not a valid element id.
func (d *DisjointSet) checkBounds(a int) {
	if a < 0 || a >= len(d.parentOrSize) {
		panic(fmt.Sprintf("unionfind: element id %d out of range [0,%d)", a, len(d.parentOrSize)))
	}
}

// Find returns the representative of the class containing a, compressing
// the walked path so that repeated lookups amortize toward O(1).
// Panics if a is outside [0, Len()).
func (d *DisjointSet) Find(a int) int {
	d.checkBounds(a)

	// Walk up to the root.
	root := a
	for d.parentOrSize[root] >= 0 {
		root = d.parentOrSize[root]
	}
	// Second pass: relink every visited element directly to the root.
	// Iterative on purpose: recursion depth is unbounded before compression.
	for d.parentOrSize[a] >= 0 {
		a, d.parentOrSize[a] = d.parentOrSize[a], root
	}

	return root
}

// Same reports whether a and b belong to the same class.
// Panics if either id is outside [0, Len()).
func (d *DisjointSet) Same(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Union merges the classes of a and b. It returns false and does nothing
// if they are already the same class. Otherwise the strictly smaller class
// is attached under the larger class's root (ties: b's root is attached
// under a's), the class count drops by one, and Union returns true.
// Panics if either id is outside [0, Len()).
func (d *DisjointSet) Union(a, b int) bool {
	rootA, rootB := d.Find(a), d.Find(b)
	if rootA == rootB {
		return false
	}
	// Sizes are stored negated, so the larger (more negative) value marks
	// the smaller class.
	if d.parentOrSize[rootA] > d.parentOrSize[rootB] {
		rootA, rootB = rootB, rootA
	}
	d.parentOrSize[rootA] += d.parentOrSize[rootB]
	d.parentOrSize[rootB] = rootA
	d.groups--

	return true
}

// Size returns the number of elements in the class containing a.
// Panics if a is outside [0, Len()).
func (d *DisjointSet) Size(a int) int {
	return -d.parentOrSize[d.Find(a)]
}

// Add appends one new singleton element and returns its id, which equals
// the element count before the call. Previously issued ids remain valid.
func (d *DisjointSet) Add() int {
	id := len(d.parentOrSize)
	d.parentOrSize = append(d.parentOrSize, -1)
	d.groups++

	return id
}

// Groups returns the number of disjoint classes.
func (d *DisjointSet) Groups() int { return d.groups }

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parentOrSize) }
