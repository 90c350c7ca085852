package jungle

// AttemptMove moves the piece on from to to, capturing whatever stands there.
// It returns false and leaves the board untouched when the move is illegal.
// The turn indicator is neither checked nor advanced.
func (b *Board) AttemptMove(fromR, fromC, toR, toC int) bool {
	if !b.legal(fromR, fromC, toR, toC) {
		return false
	}
	pc := b.cells[fromR][fromC].take()
	b.cells[toR][toC].take()
	return b.cells[toR][toC].place(pc)
}

// legal is the full gate AttemptMove applies: movement, then combat if the
// destination is occupied.
func (b *Board) legal(fromR, fromC, toR, toC int) bool {
	if !b.CanMove(fromR, fromC, toR, toC) {
		return false
	}
	return b.cells[toR][toC].Empty() || b.CanCapture(fromR, fromC, toR, toC)
}

// LegalMovesFrom lists every move AttemptMove would accept for the piece on
// (row, col), in row-major order of destination.
func (b *Board) LegalMovesFrom(row, col int) []Move {
	if b.PieceAt(row, col) == NoPiece {
		return nil
	}
	var moves []Move
	for _, to := range lineTargets(row, col) {
		if b.legal(row, col, to.Row, to.Col) {
			moves = append(moves, Move{From: Square{Row: row, Col: col}, To: to})
		}
	}
	return moves
}

// LegalMoves lists every legal move for color's pieces, ignoring whose turn it is.
func (b *Board) LegalMoves(color Color) []Move {
	var moves []Move
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].piece.Color() != color {
				continue
			}
			moves = append(moves, b.LegalMovesFrom(r, c)...)
		}
	}
	return moves
}

// lineTargets: every square sharing a row or column with (row, col), row-major.
func lineTargets(row, col int) []Square {
	out := make([]Square, 0, Rows+Cols-2)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if (r == row) == (c == col) {
				continue
			}
			out = append(out, Square{Row: r, Col: c})
		}
	}
	return out
}
