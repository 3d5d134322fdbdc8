// Package gridio decodes textual binary grids and renders grids as ASCII
// art. It is the thin I/O edge around package label: a grid comes in as
// lines of two designated runes, results go out as printable pictures.
//
// What:
//
//   - Decode reads one grid row per input line, mapping the configured
//     background/foreground runes ('0'/'1' by default) to false/true and
//     rejecting every other rune.
//   - RenderBinary writes a [][]bool as '#' (foreground) and '.' (background).
//   - RenderLabels writes a [][]int label grid as decimal labels with '.'
//     for background cells.
//
// Why:
//
//   - Quick experiments: pipe a text grid in, read the labeling off the
//     terminal.
//   - Golden-file style tests and documentation examples.
//
// Shape policy: Decode reports what it read; rectangularity and
// non-emptiness of the grid remain the labeling core's contract, except
// that input with no lines at all is rejected here as ErrEmptyInput.
//
// Errors:
//
//   - ErrEmptyInput: the reader produced no lines.
//   - ErrBadRune: a rune other than the two designated ones was read
//     (wrapped with its line and column).
//   - ErrRuneConflict: DecodeOptions designate the same rune for both
//     foreground and background.
package gridio
