package fumen

// offsetKey identifies a (kind, rotation) pair for the fumen/SRS
// center offset table. Keeping one table and deriving the inverse by
// negation (see fumenCenter/srsCenter below) avoids the classic
// bug of hand-duplicating the forward and reverse mappings.
type offsetKey struct {
	kind PieceType
	rot  RotationState
}

// centerOffset is the (dx, dy) applied to an SRS center to obtain the
// fumen-internal center: fumen = srs + offset. Pairs absent from this
// table use (0, 0). This is the single source of truth; decode
// negates it to recover the SRS center from the fumen center.
var centerOffset = map[offsetKey][2]int{
	{PieceS, East}:  {1, 0},
	{PieceZ, West}:  {-1, 0},
	{PieceO, West}:  {-1, 1},
	{PieceO, South}: {-1, 0},
	{PieceI, South}: {-1, 0},
	{PieceS, North}: {0, 1},
	{PieceZ, North}: {0, 1},
	{PieceO, North}: {0, 1},
	{PieceI, West}:  {0, 1},
}

// fumenCenter translates an SRS (x, y) center to the fumen-internal
// center for the given (kind, rotation).
func fumenCenter(kind PieceType, rot RotationState, x, y int) (int, int) {
	off := centerOffset[offsetKey{kind, rot}]
	return x + off[0], y + off[1]
}

// srsCenter is the inverse of fumenCenter.
func srsCenter(kind PieceType, rot RotationState, fx, fy int) (int, int) {
	off := centerOffset[offsetKey{kind, rot}]
	return fx - off[0], fy - off[1]
}

// fumenPos packs a fumen-internal center into the 0..240 position
// fumen pieces use: fx + (22-fy)*10.
func fumenPos(fx, fy int) int {
	return fx + (22-fy)*10
}

// posToCenter is the inverse of fumenPos.
func posToCenter(pos int) (fx, fy int) {
	return pos % 10, 22 - pos/10
}

// pieceNum packs a piece into the 15-bit integer fumen embeds in the
// page record: kind + 8*rotation + 32*fumenPos.
func pieceNum(p *Piece) int {
	if p == nil {
		return 0
	}
	fx, fy := fumenCenter(p.Kind, p.Rotation, p.X, p.Y)
	return int(p.Kind) + 8*int(p.Rotation) + 32*fumenPos(fx, fy)
}

// pieceFromNum is the inverse of pieceNum; it returns nil if num
// encodes "no piece" (kind 0).
func pieceFromNum(num int) *Piece {
	kind := PieceType(num % 8)
	if kind == 0 {
		return nil
	}
	rot := RotationState((num / 8) % 4)
	pos := (num / 32) % 240
	fx, fy := posToCenter(pos)
	x, y := srsCenter(kind, rot, fx, fy)
	return &Piece{Kind: kind, Rotation: rot, X: x, Y: y}
}

// northCells is the North-orientation cell layout, relative to the
// SRS center, for each tetromino kind.
var northCells = map[PieceType][4][2]int{
	PieceI: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	PieceO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	PieceT: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	PieceL: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	PieceJ: {{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
	PieceS: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	PieceZ: {{1, 0}, {0, 0}, {0, 1}, {-1, 1}},
}

// Cells returns the four absolute board coordinates this piece
// occupies, in (x, y) order, y-up. Rotations are applied to the North
// layout: North is the identity; East swaps the axes then negates the
// new y, giving (y, -x); South negates both axes; West swaps the axes
// then negates the new x, giving (-y, x).
func (p Piece) Cells() [4][2]int {
	base := northCells[p.Kind]
	var out [4][2]int
	for i, c := range base {
		x, y := c[0], c[1]
		switch p.Rotation {
		case North:
			// identity
		case East:
			x, y = y, -x
		case South:
			x, y = -x, -y
		case West:
			x, y = -y, x
		}
		out[i] = [2]int{x + p.X, y + p.Y}
	}
	return out
}
