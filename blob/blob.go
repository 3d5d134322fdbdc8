// Package blob computes per-component measurements over label grids.
package blob

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for blob measurement.
var (
	// ErrEmptyGrid indicates the label grid has no rows or no columns.
	ErrEmptyGrid = errors.New("blob: label grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("blob: all rows must have the same length")
)

// Blob describes one labeled component.
type Blob struct {
	// Label is the component's identifier in the label grid.
	Label int
	// Area is the number of cells carrying this label.
	Area int
	// MinX, MinY, MaxX, MaxY bound the component, inclusive.
	MinX, MinY, MaxX, MaxY int
	// CentroidX, CentroidY are the mean cell coordinates.
	CentroidX, CentroidY float64
}

// Measure computes one Blob per component of a label grid. The result is
// indexed by label: blobs[l].Label == l. Cells holding a negative value
// (label.Background) are ignored. Grids produced by package label have
// dense labels, so every returned Blob has Area ≥ 1; an all-background
// grid yields an empty slice.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func Measure(labels [][]int) ([]Blob, error) {
	if len(labels) == 0 || len(labels[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(labels[0])
	for _, row := range labels {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// Per-label coordinate buffers; centroids fall out as plain means.
	var xs, ys [][]float64
	var blobs []Blob

	for y, row := range labels {
		for x, l := range row {
			if l < 0 {
				continue
			}
			for l >= len(blobs) {
				blobs = append(blobs, Blob{
					Label: len(blobs),
					MinX:  w, MinY: len(labels),
					MaxX: -1, MaxY: -1,
				})
				xs = append(xs, nil)
				ys = append(ys, nil)
			}

			b := &blobs[l]
			b.Area++
			if x < b.MinX {
				b.MinX = x
			}
			if x > b.MaxX {
				b.MaxX = x
			}
			if y < b.MinY {
				b.MinY = y
			}
			if y > b.MaxY {
				b.MaxY = y
			}
			xs[l] = append(xs[l], float64(x))
			ys[l] = append(ys[l], float64(y))
		}
	}

	for l := range blobs {
		if blobs[l].Area == 0 {
			continue
		}
		blobs[l].CentroidX = stat.Mean(xs[l], nil)
		blobs[l].CentroidY = stat.Mean(ys[l], nil)
	}

	return blobs, nil
}

// Largest returns the blob with the greatest area, or false if blobs is
// empty. Ties go to the lower label, keeping the choice deterministic.
func Largest(blobs []Blob) (Blob, bool) {
	if len(blobs) == 0 {
		return Blob{}, false
	}
	best := blobs[0]
	for _, b := range blobs[1:] {
		if b.Area > best.Area {
			best = b
		}
	}

	return best, true
}

// Filter returns the blobs whose area is at least minArea, preserving
// label order. The backing label grid is not rewritten; pair with
// package label output when thinning small noise components.
func Filter(blobs []Blob, minArea int) []Blob {
	kept := make([]Blob, 0, len(blobs))
	for _, b := range blobs {
		if b.Area >= minArea {
			kept = append(kept, b)
		}
	}

	return kept
}
