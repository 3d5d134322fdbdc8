// Package lvlabel is a toolkit for connected-component labeling of binary
// images — turn a rectangular grid of foreground/background cells into a
// grid of dense component identifiers, ready for segmentation, region
// extraction and blob analysis.
//
// 🚀 What is lvlabel?
//
//	A small, focused library built around a single-pass raster labeler:
//		• unionfind/ — growable disjoint-set forest (path compression + union by size)
//		• label/     — 4- and 8-neighborhood labeling with dense, deterministic output
//		• blob/      — per-component area, bounding box and centroid measurements
//		• gridio/    — text decoding ('0'/'1' lines) and ASCII rendering
//		• binimg/    — threshold real images (PNG/JPEG/GIF/TIFF/BMP) into binary grids
//
// ✨ Why choose lvlabel?
//
//   - One pass over the grid – equivalences resolved by union-find, not repeated scans
//   - Deterministic output – final labels are dense and ordered by first raster appearance
//   - Pure library core – no hidden state, safe to run many labelings in parallel
//   - Batteries at the edges – CLI, text and image adapters stay out of the core
//
// Quick ASCII example (4-neighborhood):
//
//	input        labels
//	# . #        0 . 1
//	# . #   →    0 . 1
//	# # #        0 0 0
//
//	the bottom row joins both columns into a single component, label 0.
//
// Dive into the per-package docs for the full API, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/lvlabel
package lvlabel
