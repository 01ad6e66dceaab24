package fumen

import (
	"fmt"

	"github.com/bdwalton/fumen/internal/base64sym"
	"github.com/bdwalton/fumen/internal/fieldwire"
)

const header = "v115@"

// toWire converts a page's in-memory field (y-up, no garbage row) and
// garbage row into the y-down 24-row wire grid: wire[22-y][x] =
// field[y][x], wire[23][x] = garbageRow[x].
func toWire(p *Page) fieldwire.Grid {
	var g fieldwire.Grid
	for y := 0; y < 23; y++ {
		for x := 0; x < 10; x++ {
			g[22-y][x] = uint8(p.Field[y][x])
		}
	}
	for x := 0; x < 10; x++ {
		g[23][x] = uint8(p.GarbageRow[x])
	}
	return g
}

// fromWire writes a y-down wire grid back into p's y-up field and
// garbage row.
func fromWire(p *Page, g fieldwire.Grid) {
	for y := 0; y < 23; y++ {
		for x := 0; x < 10; x++ {
			p.Field[y][x] = CellColor(g[22-y][x])
		}
	}
	for x := 0; x < 10; x++ {
		p.GarbageRow[x] = CellColor(g[23][x])
	}
}

// Encode renders f as a v115 fumen string. Encoding is total: every
// field value is of fixed range, so this never fails.
func (f *Fumen) Encode() string {
	data := []byte(header)

	var prevWire fieldwire.Grid
	var emptyRunPos = -1 // index into data of the open run's count symbol
	emptyRunCount := 0
	first := true

	closeRun := func() {
		if emptyRunPos >= 0 {
			data[emptyRunPos] = base64sym.Sym(emptyRunCount)
			emptyRunPos = -1
			emptyRunCount = 0
		}
	}

	for _, p := range f.Pages {
		curWire := toWire(p)
		delta := fieldwire.Delta(prevWire, curWire)

		if fieldwire.AllUnchanged(delta) {
			if emptyRunPos < 0 {
				data = append(data, 'v', 'h')
				emptyRunPos = len(data)
				data = append(data, 0) // patched in by closeRun
			} else {
				emptyRunCount++
				if emptyRunCount == 63 {
					closeRun()
				}
			}
		} else {
			closeRun()
			data = fieldwire.EncodeRLE(data, delta)
		}

		num := pageNumber(p, first && f.Guideline)
		data = append(data, base64sym.Sym(num&0x3F), base64sym.Sym((num>>6)&0x3F), base64sym.Sym((num>>12)&0x3F))

		if p.Comment != nil {
			data = encodeComment(data, *p.Comment)
		}

		prevWire = toWire(p.NextPage())
		first = false
	}

	closeRun()

	return string(data)
}

// Decode parses a v115 fumen string, returning a DecodeError if it is
// malformed.
func Decode(s string) (*Fumen, error) {
	if len(s) < len(header) || s[:len(header)] != header {
		return nil, errMalformed
	}

	payload := s[len(header):]
	var symbols []int
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c == '?' {
			continue
		}
		v, ok := base64sym.Val(c)
		if !ok {
			return nil, errMalformed
		}
		symbols = append(symbols, v)
	}

	pos := 0
	next := func() (int, bool) {
		if pos >= len(symbols) {
			return 0, false
		}
		v := symbols[pos]
		pos++
		return v, true
	}

	f := New()
	var prevWire fieldwire.Grid
	emptySkips := 0
	pageIndex := 0

	for pos < len(symbols) {
		p := NewPage()

		if emptySkips == 0 {
			delta, err := fieldwire.DecodeRLE(next)
			if err != nil {
				return nil, DecodeError{cause: fmt.Errorf("field codec: %w", err)}
			}

			var wire fieldwire.Grid
			for y := 0; y < fieldwire.Rows; y++ {
				for x := 0; x < fieldwire.Cols; x++ {
					v := delta[y][x] + int(prevWire[y][x]) - 8
					if v < 0 || v > 8 {
						return nil, errMalformed
					}
					wire[y][x] = uint8(v)
				}
			}
			fromWire(p, wire)
			prevWire = wire

			if fieldwire.AllUnchanged(delta) {
				k, ok := next()
				if !ok {
					return nil, errMalformed
				}
				emptySkips = k
			}
		} else {
			fromWire(p, prevWire)
			emptySkips--
		}

		n0, ok := next()
		if !ok {
			return nil, errMalformed
		}
		n1, ok := next()
		if !ok {
			return nil, errMalformed
		}
		n2, ok := next()
		if !ok {
			return nil, errMalformed
		}
		number := n0 + 64*n1 + 64*64*n2

		hasComment, guideline := applyPageNumber(p, number)

		if hasComment {
			comment, err := decodeComment(next)
			if err != nil {
				return nil, err
			}
			p.Comment = &comment
		}

		if pageIndex == 0 {
			f.Guideline = guideline
		}

		f.Pages = append(f.Pages, p)
		prevWire = toWire(p.NextPage())
		pageIndex++
	}

	return f, nil
}
