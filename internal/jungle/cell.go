package jungle

// Packed layout of a cell, kept compatible with the classic byte encoding:
// high 3 bits terrain, low 5 bits piece.
const (
	terrainShift = 5
	pieceMask    = 0x1f
)

// Cell is one board square: a fixed terrain and at most one piece.
type Cell struct {
	terrain Terrain
	piece   Piece
}

func (c Cell) Terrain() Terrain { return c.terrain }

func (c Cell) Piece() Piece { return c.piece }

func (c Cell) Empty() bool { return c.piece == NoPiece }

func (c Cell) Packed() uint8 {
	return uint8(c.terrain)<<terrainShift | uint8(c.piece)&pieceMask
}

// UnpackCell is the inverse of Packed. Piece values outside 1..16 decode as empty.
func UnpackCell(v uint8) Cell {
	c := Cell{terrain: Terrain(v >> terrainShift), piece: Piece(v & pieceMask)}
	if !c.piece.Valid() {
		c.piece = NoPiece
	}
	return c
}

// place puts p on an empty cell. Occupied cells and invalid pieces are left untouched.
func (c *Cell) place(p Piece) bool {
	if c.piece != NoPiece || !p.Valid() {
		return false
	}
	c.piece = p
	return true
}

// take removes and returns the piece, if any.
func (c *Cell) take() Piece {
	p := c.piece
	c.piece = NoPiece
	return p
}
