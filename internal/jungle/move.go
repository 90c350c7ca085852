package jungle

var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// CanMove reports whether the piece on from may go to to. Occupancy of the
// destination is not considered; see CanCapture.
func (b *Board) CanMove(fromR, fromC, toR, toC int) bool {
	if !onBoard(fromR, fromC) || !onBoard(toR, toC) {
		return false
	}
	if fromR == toR && fromC == toC {
		return false
	}
	pc := b.cells[fromR][fromC].piece
	if pc == NoPiece {
		return false
	}

	dr, dc := abs(toR-fromR), abs(toC-fromC)
	if dr != 0 && dc != 0 {
		return false
	}
	sp := pc.Species()
	if dr+dc > 1 {
		if !sp.jumper() || !b.canJumpRiver(fromR, fromC, toR, toC) {
			return false
		}
	}

	dst := b.cells[toR][toC].terrain
	if dst == Water && sp != Rat {
		return false
	}
	return dst != denOf(pc.Color())
}

// canJumpRiver: bank to bank across nothing but empty water.
func (b *Board) canJumpRiver(fromR, fromC, toR, toC int) bool {
	if !b.isRiverbank(fromR, fromC) || !b.isRiverbank(toR, toC) {
		return false
	}
	allWater, occupied := b.waterSpan(fromR, fromC, toR, toC)
	return allWater && !occupied
}

// isRiverbank: a land cell orthogonally next to water.
func (b *Board) isRiverbank(row, col int) bool {
	if !onBoard(row, col) || b.cells[row][col].terrain == Water {
		return false
	}
	for _, d := range orthogonal {
		if b.TerrainAt(row+d[0], col+d[1]) == Water {
			return true
		}
	}
	return false
}

// waterSpan inspects the cells strictly between two squares on one line.
// allWater is false for an empty span or when the squares are not aligned;
// occupied reports a piece standing on any water cell of the span.
func (b *Board) waterSpan(fromR, fromC, toR, toC int) (allWater, occupied bool) {
	between := squaresBetween(fromR, fromC, toR, toC)
	if len(between) == 0 {
		return false, false
	}
	allWater = true
	for _, sq := range between {
		cell := b.cells[sq.Row][sq.Col]
		if cell.terrain != Water {
			allWater = false
			continue
		}
		if !cell.Empty() {
			occupied = true
		}
	}
	return allWater, occupied
}

func squaresBetween(fromR, fromC, toR, toC int) []Square {
	if fromR != toR && fromC != toC {
		return nil
	}
	dr, dc := sign(toR-fromR), sign(toC-fromC)
	var out []Square
	for r, c := fromR+dr, fromC+dc; r != toR || c != toC; r, c = r+dr, c+dc {
		out = append(out, Square{Row: r, Col: c})
	}
	return out
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
