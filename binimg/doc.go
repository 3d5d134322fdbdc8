// Package binimg bridges real raster images and the boolean grids the
// labeling core consumes.
//
// What:
//
//   - Load opens and decodes an image file; PNG, JPEG, GIF, TIFF and BMP
//     are registered.
//   - Threshold converts an image.Image into a [][]bool by comparing each
//     pixel's luminance against a cutoff: darker than the cutoff is
//     foreground (dark ink on a light page).
//
// Why:
//
//   - Scanned documents, masks and micrographs arrive as image files, not
//     '0'/'1' text; thresholding is the standard way into the binary
//     domain that connected-component labeling operates on.
//
// The core stays binary: this package maps pixels into the
// foreground/background partition, it does not extend labeling to
// gray or color values.
package binimg
