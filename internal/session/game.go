package session

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"jungle/internal/jungle"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game over")
)

type Status string

const (
	StatusOngoing  Status = "ongoing"
	StatusRedWon   Status = "red_won"
	StatusBlackWon Status = "black_won"
)

// Outcome of a click or a move, the cue a front end plays a sound or bell for.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSelected
	OutcomeMoved
	OutcomeCaptured
	OutcomeWon
	OutcomeRejected
)

var outcomeNames = [...]string{
	OutcomeNone:     "none",
	OutcomeSelected: "selected",
	OutcomeMoved:    "moved",
	OutcomeCaptured: "captured",
	OutcomeWon:      "won",
	OutcomeRejected: "rejected",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Game wraps a board with the turn bookkeeping the engine leaves to its
// callers: only the side to move may play, and the turn flips after every
// accepted move.
type Game struct {
	ID        string
	Board     *jungle.Board
	CreatedAt time.Time
	UpdatedAt time.Time

	selected *jungle.Square
}

func newGame(id string, b *jungle.Board) *Game {
	now := time.Now()
	return &Game{
		ID:        id,
		Board:     b,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (g *Game) Status() Status {
	switch g.Board.Winner() {
	case jungle.Red:
		return StatusRedWon
	case jungle.Black:
		return StatusBlackWon
	}
	return StatusOngoing
}

// Play moves the side to move's piece from one square to another.
func (g *Game) Play(from, to jungle.Square) (Outcome, error) {
	if g.Status() != StatusOngoing {
		return OutcomeRejected, ErrGameOver
	}
	b := g.Board
	mover := b.ColorAt(from.Row, from.Col)
	if mover == jungle.NoColor {
		return OutcomeRejected, errors.Wrapf(ErrIllegalMove, "no piece at %s", from)
	}
	if mover != b.Turn() {
		return OutcomeRejected, errors.Wrapf(ErrNotYourTurn, "%s to move", b.Turn())
	}

	occupied := !b.IsEmpty(to.Row, to.Col)
	if !b.AttemptMove(from.Row, from.Col, to.Row, to.Col) {
		log.Debug().Str("game", g.ID).Str("from", from.String()).Str("to", to.String()).
			Str("side", mover.String()).Msg("move-rejected")
		return OutcomeRejected, errors.Wrapf(ErrIllegalMove, "%s -> %s", from, to)
	}
	b.PassTurn()
	g.UpdatedAt = time.Now()

	outcome := OutcomeMoved
	switch {
	case g.Status() != StatusOngoing:
		outcome = OutcomeWon
	case occupied:
		outcome = OutcomeCaptured
	}
	log.Info().Str("game", g.ID).Str("side", mover.String()).
		Str("move", jungle.Move{From: from, To: to}.String()).
		Str("outcome", outcome.String()).Uint64("hash", b.Hash()).Msg("move-played")
	return outcome, nil
}

// Click drives the two-click selection: the first click picks one of the
// mover's pieces, the second plays it to the clicked square.
func (g *Game) Click(row, col int) (Outcome, error) {
	sq := jungle.Square{Row: row, Col: col}
	if g.selected == nil {
		if g.Status() == StatusOngoing && g.Board.ColorAt(row, col) == g.Board.Turn() {
			g.selected = &sq
			return OutcomeSelected, nil
		}
		return OutcomeNone, nil
	}
	from := *g.selected
	g.selected = nil
	return g.Play(from, sq)
}

// Selected returns the square picked by a pending first click.
func (g *Game) Selected() (jungle.Square, bool) {
	if g.selected == nil {
		return jungle.Square{}, false
	}
	return *g.selected, true
}

func (g *Game) ClearSelection() { g.selected = nil }
