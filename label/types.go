// Package label defines core types and sentinel errors for binary-grid
// connected-component labeling.
package label

import (
	"errors"
)

// Sentinel errors for labeling operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("label: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("label: all rows must have the same length")
	// ErrConnectivity indicates an unknown Connectivity value.
	ErrConnectivity = errors.New("label: unknown connectivity")
)

// Background is the sentinel stored in label grids for background cells.
// Foreground cells always hold a non-negative label.
const Background = -1

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional adjacency: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional adjacency: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns the conventional short name of the connectivity.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4-neighborhood"
	case Conn8:
		return "8-neighborhood"
	default:
		return "unknown"
	}
}

// Already-visited neighbor offsets {di, dj}, in the fixed check order used
// by the raster scan. In row-major order these are exactly the neighbors
// that can already carry a label when the current cell is reached.
var (
	// conn4Scan: north, west.
	conn4Scan = [][2]int{{-1, 0}, {0, -1}}
	// conn8Scan: north-west, north, north-east, west.
	conn8Scan = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}}
)
