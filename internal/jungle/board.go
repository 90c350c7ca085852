package jungle

import "github.com/pkg/errors"

const (
	Rows       = 9
	Cols       = 7
	NumSquares = Rows * Cols
)

var ErrNilBoard = errors.New("nil source board")

var (
	midRow = median(Rows) // 4
	midCol = median(Cols) // 3
)

// median of the index range [0, n): 8 -> 3, 9 -> 4, 10 -> 4.
func median(n int) int {
	switch {
	case n <= 1:
		return 0
	case n%2 == 0:
		return (n - 1) >> 1
	}
	return n >> 1
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Red starts at the top (row 0). Black's setup is the point reflection of this
// table, so the two halves are not mirror images of each other.
var redSetup = [...]struct {
	Species  Species
	Row, Col int
}{
	{Lion, 0, 0},
	{Tiger, 0, Cols - 1},
	{Dog, 1, 1},
	{Cat, 1, Cols - 2},
	{Rat, 2, 0},
	{Leopard, 2, 2},
	{Wolf, 2, Cols - 3},
	{Elephant, 2, Cols - 1},
}

// Board 9x7 grid plus the side to move. Black moves first.
type Board struct {
	cells [Rows][Cols]Cell
	turn  Color
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b := newEmptyBoard()
	for _, s := range redSetup {
		b.setPiece(s.Row, s.Col, MakePiece(Red, s.Species))
		b.setPiece(Rows-1-s.Row, Cols-1-s.Col, MakePiece(Black, s.Species))
	}
	return b
}

// newEmptyBoard lays out terrain only.
func newEmptyBoard() *Board {
	b := &Board{turn: Black}

	b.cells[0][midCol].terrain = RedDen
	b.cells[Rows-1][midCol].terrain = BlackDen

	for c := midCol - 1; c <= midCol+1; c++ {
		if c == midCol {
			b.cells[1][c].terrain = RedTrap
			b.cells[Rows-2][c].terrain = BlackTrap
			continue
		}
		b.cells[0][c].terrain = RedTrap
		b.cells[Rows-1][c].terrain = BlackTrap
	}

	for r := midRow - 1; r <= midRow+1; r++ {
		for c := 1; c < midCol; c++ {
			b.cells[r][c].terrain = Water
		}
		for c := midCol + 1; c < Cols-1; c++ {
			b.cells[r][c].terrain = Water
		}
	}

	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].terrain == TerrainNone {
				b.cells[r][c].terrain = Ground
			}
		}
	}
	return b
}

// Clone returns an independent deep copy of src.
func Clone(src *Board) (*Board, error) {
	if src == nil {
		return nil, ErrNilBoard
	}
	nb := *src
	return &nb, nil
}

// Copy is Clone for a receiver known to be non-nil.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// setPiece places p on an empty in-bounds cell; anything else is a no-op.
func (b *Board) setPiece(row, col int, p Piece) bool {
	if !onBoard(row, col) {
		return false
	}
	return b.cells[row][col].place(p)
}

func (b *Board) Cell(row, col int) Cell {
	if !onBoard(row, col) {
		return Cell{}
	}
	return b.cells[row][col]
}

func (b *Board) PieceAt(row, col int) Piece { return b.Cell(row, col).piece }

func (b *Board) RankAt(row, col int) int { return b.PieceAt(row, col).Rank() }

func (b *Board) TerrainAt(row, col int) Terrain { return b.Cell(row, col).terrain }

func (b *Board) ColorAt(row, col int) Color { return b.PieceAt(row, col).Color() }

// IsEmpty is false for out-of-bounds squares.
func (b *Board) IsEmpty(row, col int) bool {
	return onBoard(row, col) && b.cells[row][col].Empty()
}

func (b *Board) Turn() Color { return b.turn }

// SetTurn ignores NoColor.
func (b *Board) SetTurn(c Color) {
	if c == Red || c == Black {
		b.turn = c
	}
}

func (b *Board) PassTurn() { b.turn = b.turn.Opponent() }

func (b *Board) CountRed() int { return b.count(Red) }

func (b *Board) CountBlack() int { return b.count(Black) }

func (b *Board) count(color Color) int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].piece.Color() == color {
				n++
			}
		}
	}
	return n
}

// denSquare is where color's den sits.
func denSquare(color Color) Square {
	if color == Red {
		return Square{Row: 0, Col: midCol}
	}
	return Square{Row: Rows - 1, Col: midCol}
}

// IsRedWinner reports a red piece standing in the black den.
func (b *Board) IsRedWinner() bool {
	d := denSquare(Black)
	return b.ColorAt(d.Row, d.Col) == Red
}

// IsBlackWinner reports a black piece standing in the red den.
func (b *Board) IsBlackWinner() bool {
	d := denSquare(Red)
	return b.ColorAt(d.Row, d.Col) == Black
}

func (b *Board) Winner() Color {
	switch {
	case b.IsRedWinner():
		return Red
	case b.IsBlackWinner():
		return Black
	}
	return NoColor
}
