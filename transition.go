package fumen

// NextPage deterministically produces the initial state of the page
// following p: piece lock, then line clear (both only when p.Lock),
// then rise, then mirror, in that order. It does not mutate p.
func (p *Page) NextPage() *Page {
	field := p.Field

	if p.Piece != nil && p.Lock {
		for _, c := range p.Piece.Cells() {
			x, y := c[0], c[1]
			if y < 0 || y >= 23 || x < 0 || x >= 10 {
				continue
			}
			field[y][x] = p.Piece.Kind.CellColor()
		}
	}

	if p.Lock {
		field = clearLines(field)
	}

	garbage := p.GarbageRow
	if p.Rise {
		for i := 22; i >= 1; i-- {
			field[i] = field[i-1]
		}
		field[0] = p.GarbageRow
		garbage = [10]CellColor{}
	}

	if p.Mirror {
		for y := range field {
			mirrorRow(&field[y])
		}
	}

	next := &Page{
		Field:      field,
		GarbageRow: garbage,
		Lock:       p.Lock,
	}
	if !p.Lock {
		next.Piece = p.Piece
	}
	return next
}

// clearLines compacts field by removing every row with no Empty cell,
// preserving order, and filling vacated rows at the top with Empty.
func clearLines(field [23][10]CellColor) [23][10]CellColor {
	var out [23][10]CellColor
	y := 0
	for i := 0; i < 23; i++ {
		if rowFull(field[i]) {
			continue
		}
		out[y] = field[i]
		y++
	}
	return out
}

func rowFull(row [10]CellColor) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

func mirrorRow(row *[10]CellColor) {
	for x := 0; x < 5; x++ {
		row[x], row[9-x] = row[9-x], row[x]
	}
}
