// Package gridio implements the textual grid codec used by the lvlabel CLI.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for grid decoding.
var (
	// ErrEmptyInput indicates the reader produced no lines.
	ErrEmptyInput = errors.New("gridio: input contains no grid rows")
	// ErrBadRune indicates an input rune other than the designated two.
	ErrBadRune = errors.New("gridio: unrecognized rune")
	// ErrRuneConflict indicates options mapping both cell kinds to one rune.
	ErrRuneConflict = errors.New("gridio: background and foreground runes must differ")
)

// DecodeOptions designates which rune encodes each cell kind.
type DecodeOptions struct {
	// Background rune, decoded as false.
	Background rune
	// Foreground rune, decoded as true.
	Foreground rune
}

// DefaultDecodeOptions returns the conventional encoding: '0' background,
// '1' foreground.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Background: '0', Foreground: '1'}
}

// Decode reads a binary grid from r, one row per line. Every rune must be
// opts.Background or opts.Foreground; anything else aborts with ErrBadRune
// wrapped with the rune's line and column (both 1-based). An input with no
// lines yields ErrEmptyInput. Row lengths are passed through untrimmed;
// the labeling core enforces rectangularity.
func Decode(r io.Reader, opts DecodeOptions) ([][]bool, error) {
	if opts.Background == opts.Foreground {
		return nil, fmt.Errorf("%w: %q", ErrRuneConflict, opts.Background)
	}

	var grid [][]bool
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		var row []bool
		for col, ch := range []rune(scanner.Text()) {
			switch ch {
			case opts.Background:
				row = append(row, false)
			case opts.Foreground:
				row = append(row, true)
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d (want %q or %q)",
					ErrBadRune, ch, line, col+1, opts.Background, opts.Foreground)
			}
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gridio: reading input: %w", err)
	}
	if len(grid) == 0 {
		return nil, ErrEmptyInput
	}

	return grid, nil
}
