// Package label assigns a unique dense integer identifier to every maximal
// group of adjacent foreground cells in a rectangular boolean grid —
// classic connected-component labeling.
//
// What:
//
//   - FourNeighborhood / EightNeighborhood label a [][]bool grid under
//     orthogonal (Conn4) or orthogonal+diagonal (Conn8) adjacency.
//   - Label dispatches on a Connectivity value; Batch labels many
//     independent grids concurrently.
//   - Output is a [][]int of the same shape: Background (-1) for background
//     cells, a final label in 0..k for foreground cells, where k is the
//     number of connected components.
//
// Why:
//
//   - Image segmentation: isolate regions before measuring them.
//   - Blob analysis: feed the label grid to package blob for areas,
//     bounding boxes and centroids.
//   - Any grid-world connectivity question: islands, caves, flood zones.
//
// How:
//
//	A single raster pass assigns provisional labels by consulting only the
//	already-visited neighbors (north/west for Conn4; north-west, north,
//	north-east, west for Conn8) and records label equivalences in a
//	unionfind.DisjointSet. A second pass over the label grid rewrites every
//	provisional label to a dense final label, assigned in the order each
//	component is first encountered in raster order — so output is fully
//	deterministic for a given input.
//
// Complexity:
//
//   - Time:   O(W×H×α(L)) where L is the number of provisional labels.
//   - Memory: O(W×H) for the label grid plus O(L) for the equivalence forest.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrConnectivity: unknown Connectivity value passed to Label or Batch.
//
// On any error no label grid is returned; a partially labeled grid is
// never observable.
package label
