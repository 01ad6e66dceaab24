package fumen

// Page flag bits, packed into the high portion of the three-symbol
// page number: pageNumber = pieceNum + 240*32*flags, where flags is
// the bitset below. Bit 2 (guideline) is only ever set on the first
// page of a stream.
const (
	flagRise       = 1 << 0
	flagMirror     = 1 << 1
	flagGuideline  = 1 << 2
	flagComment    = 1 << 3
	flagUnlock     = 1 << 4
	flagsPerRecord = 240 * 32
)

// pageFlags computes the flag bitset for p. guideline is only honored
// by the caller on the first page; it is threaded through here so the
// bit lands in the same record as the piece/comment flags.
func pageFlags(p *Page, guideline bool) int {
	f := 0
	if p.Rise {
		f |= flagRise
	}
	if p.Mirror {
		f |= flagMirror
	}
	if guideline {
		f |= flagGuideline
	}
	if p.Comment != nil {
		f |= flagComment
	}
	if !p.Lock {
		f |= flagUnlock
	}
	return f
}

// pageNumber packs p's piece and flags into the 18-bit integer emitted
// as three base64 symbols.
func pageNumber(p *Page, guideline bool) int {
	return pieceNum(p.Piece) + flagsPerRecord*pageFlags(p, guideline)
}

// applyPageNumber unpacks a decoded page number into p: piece, lock,
// rise, mirror. It returns whether the comment flag and guideline bit
// were set, since those are handled by the caller (the comment block
// follows in the stream; guideline only applies to page 0).
func applyPageNumber(p *Page, number int) (hasComment, guideline bool) {
	p.Piece = pieceFromNum(number % flagsPerRecord)

	flags := number / flagsPerRecord
	p.Rise = flags&flagRise != 0
	p.Mirror = flags&flagMirror != 0
	p.Lock = flags&flagUnlock == 0
	guideline = flags&flagGuideline != 0
	hasComment = flags&flagComment != 0
	return
}
