// Package unionfind provides a growable disjoint-set forest (union-find)
// over dense integer element ids.
//
// What:
//
//   - DisjointSet partitions elements 0..Len() into disjoint classes.
//   - Find returns a class representative; Same tests class membership.
//   - Union merges two classes (union by size); Add appends a new singleton.
//   - Size and Groups report class size and class count.
//
// Why:
//
//   - Equivalence management for connected-component labeling: provisional
//     labels discovered during a raster scan are merged as the scan learns
//     they belong to the same component.
//   - General incremental connectivity: clustering, Kruskal-style MST,
//     grouping of any append-only id space.
//
// Complexity:
//
//   - Find / Same / Union / Size: amortized O(α(n)) (inverse Ackermann),
//     guaranteed by path compression combined with union by size.
//   - Add / Groups / Len: O(1).
//   - Memory: O(n) — a single integer arena.
//
// Contract:
//
//   - Element ids are dense, append-only, and never reused: Add returns
//     ids 0,1,2,… in order, and an id stays valid for the set's lifetime.
//   - Passing an id outside [0, Len()) to Find, Same, Union or Size is a
//     caller bug and panics immediately rather than corrupting the forest.
//
// DisjointSet is not safe for concurrent use; Find mutates internal parent
// links even though it is logically a read.
package unionfind
