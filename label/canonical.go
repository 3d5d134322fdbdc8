package label

import "github.com/katalvlaran/lvlabel/unionfind"

// canonicalize rewrites the provisional label grid in place with dense
// final labels. Each equivalence class in dsu receives the next unused
// label the first time any of its cells is reached in raster order, so
// final labels are 0..k with no gaps and ordered by first appearance.
// Background cells are left untouched. dsu is not reused afterwards.
func canonicalize(labels [][]int, dsu *unionfind.DisjointSet) {
	// final[root] is the assigned final label of that class, Background
	// while unassigned.
	final := make([]int, dsu.Len())
	for i := range final {
		final[i] = Background
	}

	next := 0
	for i := range labels {
		for j, l := range labels[i] {
			if l == Background {
				continue
			}
			root := dsu.Find(l)
			if final[root] == Background {
				final[root] = next
				next++
			}
			labels[i][j] = final[root]
		}
	}
}
