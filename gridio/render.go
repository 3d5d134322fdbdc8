package gridio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlabel/label"
)

// Runes used by the renderers.
const (
	foregroundArt = '#'
	backgroundArt = '.'
)

// RenderBinary writes grid to w as ASCII art, '#' for foreground and '.'
// for background, one row per line.
func RenderBinary(w io.Writer, grid [][]bool) error {
	bw := bufio.NewWriter(w)
	for _, row := range grid {
		for _, fg := range row {
			ch := byte(backgroundArt)
			if fg {
				ch = foregroundArt
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RenderLabels writes a label grid to w, printing each label in decimal
// and '.' for background cells, one row per line. Labels of ten or more
// widen their row; callers wanting aligned columns should pad upstream.
func RenderLabels(w io.Writer, labels [][]int) error {
	bw := bufio.NewWriter(w)
	for _, row := range labels {
		for _, l := range row {
			var err error
			if l == label.Background {
				err = bw.WriteByte(backgroundArt)
			} else {
				_, err = bw.WriteString(strconv.Itoa(l))
			}
			if err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
