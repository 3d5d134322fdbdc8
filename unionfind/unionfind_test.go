package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/unionfind"
)

func TestNew_Singletons(t *testing.T) {
	d := unionfind.New(5)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 5, d.Groups())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, d.Find(i), "fresh element should be its own representative")
		assert.Equal(t, 1, d.Size(i))
	}
}

func TestNew_Empty(t *testing.T) {
	d := unionfind.New(0)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.Groups())
}

func TestAdd_GrowsFromEmpty(t *testing.T) {
	d := unionfind.New(0)
	const n = 7
	for i := 0; i < n; i++ {
		id := d.Add()
		assert.Equal(t, i, id, "Add must hand out dense, sequential ids")
	}
	assert.Equal(t, n, d.Len())
	assert.Equal(t, n, d.Groups())
}

func TestUnion_MergesAndReports(t *testing.T) {
	d := unionfind.New(4)

	assert.True(t, d.Union(0, 1), "first merge must report a change")
	assert.False(t, d.Union(0, 1), "repeated merge must be a no-op")
	assert.Equal(t, 3, d.Groups(), "one effective merge drops the class count by exactly one")

	assert.True(t, d.Same(0, 1))
	assert.False(t, d.Same(0, 2))
	assert.Equal(t, 2, d.Size(0))
	assert.Equal(t, 2, d.Size(1))
	assert.Equal(t, 1, d.Size(2))
}

func TestUnion_SizeIsSumOfClasses(t *testing.T) {
	d := unionfind.New(6)
	require.True(t, d.Union(0, 1))
	require.True(t, d.Union(2, 3))
	require.True(t, d.Union(4, 5))

	require.True(t, d.Union(1, 3)) // {0,1,2,3}
	assert.Equal(t, 4, d.Size(0))
	assert.Equal(t, 2, d.Size(4))

	require.True(t, d.Union(3, 5)) // everything
	assert.Equal(t, 6, d.Size(2))
	assert.Equal(t, 1, d.Groups())
}

func TestSize_MatchesRepresentativeCensus(t *testing.T) {
	d := unionfind.New(10)
	merges := [][2]int{{0, 1}, {1, 2}, {3, 4}, {5, 6}, {6, 7}, {7, 8}}
	for _, m := range merges {
		d.Union(m[0], m[1])
	}

	// For every element, Size must equal the number of elements sharing
	// its representative.
	for a := 0; a < d.Len(); a++ {
		census := 0
		for b := 0; b < d.Len(); b++ {
			if d.Find(b) == d.Find(a) {
				census++
			}
		}
		assert.Equal(t, census, d.Size(a), "element %d", a)
	}
}

func TestFind_PathCompressionKeepsAnswersStable(t *testing.T) {
	d := unionfind.New(0)
	const n = 64
	for i := 0; i < n; i++ {
		d.Add()
	}
	// Chain merges force nontrivial trees.
	for i := 1; i < n; i++ {
		d.Union(i-1, i)
	}

	root := d.Find(0)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, d.Find(i))
	}
	assert.Equal(t, 1, d.Groups())
	assert.Equal(t, n, d.Size(0))
}

func TestAdd_AfterMergesKeepsOldIDsValid(t *testing.T) {
	d := unionfind.New(2)
	require.True(t, d.Union(0, 1))

	id := d.Add()
	assert.Equal(t, 2, id)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 2, d.Groups())

	// The freshly added element is a singleton, the old class is untouched.
	assert.Equal(t, 1, d.Size(id))
	assert.Equal(t, 2, d.Size(0))
	assert.False(t, d.Same(0, id))
}

func TestFind_OutOfRangePanics(t *testing.T) {
	d := unionfind.New(3)
	assert.Panics(t, func() { d.Find(3) })
	assert.Panics(t, func() { d.Find(-1) })
	assert.Panics(t, func() { d.Union(0, 99) })
	assert.Panics(t, func() { d.Size(-5) })
}
