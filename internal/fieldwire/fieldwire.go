// Package fieldwire implements the fumen field delta codec: a 24x10
// grid of cell values (0..=8) is diffed against a previous grid and
// run-length encoded as base64 symbol pairs, in y-major, x-minor
// order. It knows nothing about pieces, pages or comments — callers
// translate between their own field representation and this package's
// flat [24][10]byte grid.
package fieldwire

import (
	"fmt"

	"github.com/bdwalton/fumen/internal/base64sym"
)

const (
	// Rows is the wire grid height: 23 visible rows plus one garbage row.
	Rows = 24
	// Cols is the wire grid width.
	Cols = 10
	// cellsPerRun is the number of cells a single (value, run length)
	// pair can cover: 240 = Rows*Cols, so exactly one full grid is one
	// run-length stream.
	cellsPerRun = Rows * Cols
)

// Grid is a 24x10 cell-value grid in wire order (row 0 is the top of
// the visible field, row 23 is the garbage row).
type Grid [Rows][Cols]uint8

// Delta computes the per-cell delta of cur against prev: 8+cur-prev,
// in 0..=16.
func Delta(prev, cur Grid) [Rows][Cols]int {
	var d [Rows][Cols]int
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			d[y][x] = 8 + int(cur[y][x]) - int(prev[y][x])
		}
	}
	return d
}

// AllUnchanged reports whether every delta equals 8, i.e. cur == prev.
func AllUnchanged(d [Rows][Cols]int) bool {
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if d[y][x] != 8 {
				return false
			}
		}
	}
	return true
}

// EncodeRLE appends the run-length-encoded delta stream for d to dst
// and returns the extended slice. Each run emits two base64 symbols
// little-endian: sym(num&63), sym(num>>6), where num = value*240 +
// (runLength-1).
func EncodeRLE(dst []byte, d [Rows][Cols]int) []byte {
	value := d[0][0]
	run := 0

	emit := func() {
		num := value*240 + (run - 1)
		dst = append(dst, base64sym.Sym(num&0x3F), base64sym.Sym((num>>6)&0x3F))
	}

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if d[y][x] == value {
				run++
				continue
			}
			emit()
			value = d[y][x]
			run = 1
		}
	}
	emit()

	return dst
}

// DecodeRLE reads two-symbol (value, runLength) pairs from next until
// exactly 240 cells have been filled, writing into a fresh Grid of
// deltas. It returns an error if next runs out of symbols, or if a run
// would overrun the grid.
func DecodeRLE(next func() (int, bool)) ([Rows][Cols]int, error) {
	var d [Rows][Cols]int
	filled := 0

	for filled < cellsPerRun {
		lo, ok := next()
		if !ok {
			return d, fmt.Errorf("%w: at cell %d", errShortField, filled)
		}
		hi, ok := next()
		if !ok {
			return d, fmt.Errorf("%w: at cell %d", errShortField, filled)
		}
		num := lo + 64*hi
		value := num / 240
		repeats := num%240 + 1

		if filled+repeats > cellsPerRun {
			return d, fmt.Errorf("%w: cell %d plus run of %d", errOverrun, filled, repeats)
		}

		for i := 0; i < repeats; i++ {
			y, x := filled/Cols, filled%Cols
			d[y][x] = value
			filled++
		}
	}

	return d, nil
}
