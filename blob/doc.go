// Package blob measures the connected components of a final label grid:
// area, bounding box and centroid per component.
//
// What:
//
//   - Measure turns a [][]int label grid (as produced by package label)
//     into a []Blob, indexed by label.
//   - A Blob carries Area (cell count), the inclusive bounding box
//     MinX/MinY..MaxX/MaxY, and the centroid of its cells.
//
// Why:
//
//   - Blob analysis is the usual next step after labeling: filter regions
//     by size, locate them, feed boxes to downstream vision stages.
//
// Coordinates follow the grid convention: X is the column index, Y the
// row index, origin at the top-left cell.
//
// Complexity: O(W×H), Memory: O(W×H) for the per-component coordinate
// buffers backing the centroid computation.
//
// Errors:
//
//   - ErrEmptyGrid: label grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package blob
