// Package label implements single-pass connected-component labeling of
// binary grids with union-find equivalence resolution.
package label

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/unionfind"
)

// FourNeighborhood labels grid under 4-connectivity (up/down/left/right).
// Returns a grid of identical shape holding Background for background
// cells and a dense final label in 0..k for foreground cells, components
// numbered by first appearance in raster order.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
// Complexity: O(W×H×α(L)) time, O(W×H) memory.
func FourNeighborhood(grid [][]bool) ([][]int, error) {
	return scan(grid, conn4Scan)
}

// EightNeighborhood labels grid under 8-connectivity (4-connectivity plus
// the four diagonals). Same contract as FourNeighborhood.
func EightNeighborhood(grid [][]bool) ([][]int, error) {
	return scan(grid, conn8Scan)
}

// Label dispatches to FourNeighborhood or EightNeighborhood according to
// conn. Returns ErrConnectivity for any other value.
func Label(grid [][]bool, conn Connectivity) ([][]int, error) {
	switch conn {
	case Conn4:
		return FourNeighborhood(grid)
	case Conn8:
		return EightNeighborhood(grid)
	default:
		return nil, fmt.Errorf("%w: %d", ErrConnectivity, conn)
	}
}

// validate checks the rectangular, non-empty shape contract and returns
// the grid dimensions.
func validate(grid [][]bool) (h, w int, err error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	h, w = len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return 0, 0, ErrNonRectangular
		}
	}

	return h, w, nil
}

// scan is the shared raster pass. offsets lists the already-visited
// neighbors to consult, in fixed check order; both connectivity variants
// differ only in this table.
//
// For each foreground cell the first present neighbor label is adopted and
// every other present neighbor label is merged into the same equivalence
// class. A cell with no labeled neighbor opens a fresh provisional label.
// The final canonicalize pass collapses equivalence classes into dense
// labels, so callers never see provisional numbering.
func scan(grid [][]bool, offsets [][2]int) ([][]int, error) {
	h, w, err := validate(grid)
	if err != nil {
		return nil, err
	}

	labels := make([][]int, h)
	for i := range labels {
		labels[i] = make([]int, w)
		for j := range labels[i] {
			labels[i][j] = Background
		}
	}

	dsu := unionfind.New(0)

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if !grid[i][j] {
				continue
			}

			// First present neighbor label in check order, Background if none.
			first := Background
			for _, d := range offsets {
				ni, nj := i+d[0], j+d[1]
				// Offsets only look up or left, so ni < h and the north-east
				// probe is the lone case that can step past the right edge.
				if ni < 0 || nj < 0 || nj >= w || !grid[ni][nj] {
					continue
				}
				l := labels[ni][nj]
				if first == Background {
					first = l
					labels[i][j] = l
				} else if l != first {
					dsu.Union(first, l)
				}
			}

			if first == Background {
				// No labeled neighbor: open a new provisional label.
				labels[i][j] = dsu.Add()
			}
		}
	}

	canonicalize(labels, dsu)

	return labels, nil
}
