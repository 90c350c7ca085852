package jungle

const hashBase = 31

// Equals compares every packed cell and the turn indicator.
func (b *Board) Equals(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.turn != other.turn {
		return false
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].Packed() != other.cells[r][c].Packed() {
				return false
			}
		}
	}
	return true
}

// Hash is sum(v_i * 31^(62-i)) over the packed cells in row-major order,
// wrapping modulo 2^64, plus 1 when Black is to move and 2 otherwise.
// Horner's rule gives the same sum with one multiply per cell.
//
// Cells count as unsigned bytes, so black trap and den cells contribute
// 128 and up. Values do not match hashes computed over signed bytes or in
// 32-bit arithmetic.
func (b *Board) Hash() uint64 {
	var h uint64
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			h = h*hashBase + uint64(b.cells[r][c].Packed())
		}
	}
	if b.turn == Black {
		return h + 1
	}
	return h + 2
}
