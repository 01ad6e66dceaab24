// Package fumen implements the v115 fumen tetromino-diagram codec: the
// compact base64-style ASCII string used as a URL fragment by online
// diagram editors. See https://harddrop.com/wiki/Fumen for the format
// this package is bit-for-bit compatible with.
package fumen

// CellColor is a field cell's contents: Empty, one of seven tetromino
// colors, or Grey (garbage). Numeric identity is part of the wire
// contract and must not be renumbered.
type CellColor uint8

const (
	Empty CellColor = iota
	I
	L
	O
	Z
	T
	J
	S
	Grey
)

func (c CellColor) String() string {
	switch c {
	case Empty:
		return "Empty"
	case I:
		return "I"
	case L:
		return "L"
	case O:
		return "O"
	case Z:
		return "Z"
	case T:
		return "T"
	case J:
		return "J"
	case S:
		return "S"
	case Grey:
		return "Grey"
	default:
		return "invalid"
	}
}

// PieceType is one of the seven tetromino kinds. Its numeric identity
// matches CellColor 1..7 and lifts trivially via CellColor().
type PieceType uint8

const (
	PieceI PieceType = iota + 1
	PieceL
	PieceO
	PieceZ
	PieceT
	PieceJ
	PieceS
)

func (p PieceType) String() string {
	return CellColor(p).String()
}

// CellColor lifts a PieceType to the CellColor of the same numeric value.
func (p PieceType) CellColor() CellColor {
	return CellColor(p)
}

// RotationState is one of the four SRS orientations. South (0) is
// fumen's zero value; North (2) is the SRS spawn orientation.
type RotationState uint8

const (
	South RotationState = iota
	East
	North
	West
)

func (r RotationState) String() string {
	switch r {
	case South:
		return "South"
	case East:
		return "East"
	case North:
		return "North"
	case West:
		return "West"
	default:
		return "invalid"
	}
}

// Piece is an active tetromino: kind, rotation, and SRS rotation
// center (x, y). Coordinates are y-up; valid on-field values are
// 0<=x<=9 and 0<=y<=22, but the codec tolerates any int value a wire
// string produces.
type Piece struct {
	Kind     PieceType
	Rotation RotationState
	X, Y     int
}

// Page is one frame of the diagram.
type Page struct {
	// Piece is the active tetromino for this page, or nil if none.
	Piece *Piece

	// Field is the 23x10 playable grid, y-up (Field[0] is the bottom
	// row). Field[y][x] indexes row y, column x.
	Field [23][10]CellColor

	// GarbageRow is the one-row buffer used only by the rise rule.
	GarbageRow [10]CellColor

	// Lock, when true (the default), locks Piece into Field on
	// transition to the next page.
	Lock bool

	// Rise, when true, shifts the field up by one row and inserts
	// GarbageRow at the bottom on transition.
	Rise bool

	// Mirror, when true, reverses every row left-right on transition.
	Mirror bool

	// Comment is free-form page text, or nil if absent.
	Comment *string
}

// NewPage returns a default page: no piece, empty field and garbage
// row, Lock true, Rise and Mirror false, no comment.
func NewPage() *Page {
	return &Page{Lock: true}
}

// Fumen is an ordered sequence of pages plus a stream-wide guideline
// flag (carried on the first page's flag byte when encoded).
type Fumen struct {
	Pages     []*Page
	Guideline bool
}

// New returns an empty Fumen with Guideline true.
func New() *Fumen {
	return &Fumen{Guideline: true}
}

// AddPage appends a new page to f, initialized as the last page's
// NextPage() if any page exists, else a default page, and returns it.
func (f *Fumen) AddPage() *Page {
	var p *Page
	if n := len(f.Pages); n > 0 {
		p = f.Pages[n-1].NextPage()
	} else {
		p = NewPage()
	}
	f.Pages = append(f.Pages, p)
	return p
}
