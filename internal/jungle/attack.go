package jungle

// IsAttacked reports whether any opposing piece could legally take the piece
// on (row, col) with its next move. Empty squares are never attacked.
func (b *Board) IsAttacked(row, col int) bool {
	target := b.PieceAt(row, col)
	if target == NoPiece {
		return false
	}
	enemy := target.Color().Opponent()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].piece.Color() != enemy {
				continue
			}
			// only pieces on the same line can ever reach the square
			if r != row && c != col {
				continue
			}
			if b.legal(r, c, row, col) {
				return true
			}
		}
	}
	return false
}

// Threatened returns the squares of color's pieces that are attacked.
func (b *Board) Threatened(color Color) []Square {
	var out []Square
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].piece.Color() == color && b.IsAttacked(r, c) {
				out = append(out, Square{Row: r, Col: c})
			}
		}
	}
	return out
}
