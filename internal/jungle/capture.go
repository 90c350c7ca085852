package jungle

// CanCapture reports whether the piece on from may take the piece on to.
// Callers move-check first; this only arbitrates combat.
//
// A disqualified attacker scores 0 and a trapped victim scores 0, so a
// disqualified attacker still wins against a trapped victim (0-0 >= 0).
// That interaction is kept as is.
func (b *Board) CanCapture(fromR, fromC, toR, toC int) bool {
	if !onBoard(fromR, fromC) || !onBoard(toR, toC) {
		return false
	}
	src, dst := b.cells[fromR][fromC], b.cells[toR][toC]
	if src.Empty() || dst.Empty() {
		return false
	}
	if src.piece.Color() == dst.piece.Color() {
		return false
	}

	atkSp, vicSp := src.piece.Species(), dst.piece.Species()
	attacker, victim := src.piece.Rank(), dst.piece.Rank()

	// only a rat fights out of the water, and never against an elephant
	if src.terrain == Water && (atkSp != Rat || vicSp == Elephant) {
		attacker = 0
	}
	// only a rat reaches a piece in the water
	if dst.terrain == Water && atkSp != Rat {
		attacker = 0
	}
	// traps are universal: either side's trap strips the victim's rank
	if dst.terrain.IsTrap() {
		victim = 0
	}

	switch {
	case atkSp == Rat && vicSp == Elephant && attacker != 0:
		attacker = int(Elephant)
	case atkSp == Elephant && vicSp == Rat:
		attacker = 0
	}

	if atkSp.jumper() {
		if _, occupied := b.waterSpan(fromR, fromC, toR, toC); occupied {
			attacker = 0
		}
	}

	return attacker-victim >= 0
}
