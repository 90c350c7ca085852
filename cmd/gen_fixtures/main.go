package main

import (
	"encoding/json"
	"flag"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"jungle/internal/jungle"
)

// Fixture is one position with the answers another implementation must match.
type Fixture struct {
	Notation string        `json:"notation"`
	Cells    []int         `json:"cells"`
	Hash     uint64        `json:"hash"`
	Turn     string        `json:"turn"`
	Moves    []jungle.Move `json:"moves"`
	Winner   string        `json:"winner"`
}

func snapshot(b *jungle.Board) Fixture {
	winner := "none"
	if w := b.Winner(); w != jungle.NoColor {
		winner = w.String()
	}
	cells := make([]int, 0, jungle.NumSquares)
	for r := 0; r < jungle.Rows; r++ {
		for c := 0; c < jungle.Cols; c++ {
			cells = append(cells, int(b.Cell(r, c).Packed()))
		}
	}
	return Fixture{
		Notation: b.Encode(),
		Cells:    cells,
		Hash:     b.Hash(),
		Turn:     b.Turn().String(),
		Moves:    b.LegalMoves(b.Turn()),
		Winner:   winner,
	}
}

// verify checks that a fixture describes b: its notation decodes back to b
// and every packed cell unpacks to the cell it came from.
func verify(f Fixture, b *jungle.Board) error {
	if !jungle.MustDecodeBoard(f.Notation).Equals(b) {
		return errors.Errorf("notation %q does not decode to the board", f.Notation)
	}
	for i, v := range f.Cells {
		r, c := i/jungle.Cols, i%jungle.Cols
		if v < 0 || v > 0xff || jungle.UnpackCell(uint8(v)) != b.Cell(r, c) {
			return errors.Errorf("cell (%d,%d) packed as %d does not unpack", r, c, v)
		}
	}
	return nil
}

func main() {
	games := flag.Int("games", 10, "number of random games")
	plies := flag.Int("plies", 200, "maximum plies per game")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "jungle_fixtures.json", "output file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rng := rand.New(rand.NewSource(*seed))
	var fixtures []Fixture
	for g := 0; g < *games; g++ {
		b := jungle.NewBoard()
		for ply := 0; ply < *plies; ply++ {
			f := snapshot(b)
			if err := verify(f, b); err != nil {
				log.Fatal().Err(err).Int("game", g).Int("ply", ply).Msg("fixture mismatch")
			}
			fixtures = append(fixtures, f)
			if f.Winner != "none" || len(f.Moves) == 0 {
				break
			}
			m := f.Moves[rng.Intn(len(f.Moves))]
			// captures half the time
			captures := lo.Filter(f.Moves, func(mv jungle.Move, _ int) bool {
				return !b.IsEmpty(mv.To.Row, mv.To.Col)
			})
			if len(captures) > 0 && rng.Intn(2) == 0 {
				m = captures[rng.Intn(len(captures))]
			}
			if !b.AttemptMove(m.From.Row, m.From.Col, m.To.Row, m.To.Col) {
				log.Fatal().Str("move", m.String()).Str("position", f.Notation).Msg("generated move rejected")
			}
			b.PassTurn()
		}
	}

	data, err := json.MarshalIndent(fixtures, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("marshal fixtures")
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("write fixtures")
	}
	log.Info().Int("fixtures", len(fixtures)).Str("out", *out).Msg("done")
}
