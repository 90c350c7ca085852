package jungle

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Position notation: 9 rows top (red side) to bottom joined by '/', digits
// compress empty runs, uppercase letters are red, lowercase black, then a
// space and the side to move ('b' or 'r'). Terrain is implied.
//
//	L5T/1D3C1/R1P1W1E/7/7/7/e1w1p1r/1c3d1/t5l b

var speciesLetters = [...]rune{
	NoSpecies: '.',
	Rat:       'r',
	Cat:       'c',
	Dog:       'd',
	Wolf:      'w',
	Leopard:   'p', // panther
	Tiger:     't',
	Lion:      'l',
	Elephant:  'e',
}

var letterToSpecies = map[rune]Species{
	'r': Rat,
	'c': Cat,
	'd': Dog,
	'w': Wolf,
	'p': Leopard,
	't': Tiger,
	'l': Lion,
	'e': Elephant,
}

var ErrInvalidNotation = errors.New("invalid position notation")

func pieceToChar(p Piece) rune {
	if !p.Valid() {
		return '.'
	}
	ch := speciesLetters[p.Species()]
	if p.Color() == Red {
		return unicode.ToUpper(ch)
	}
	return ch
}

func turnToChar(c Color) byte {
	if c == Red {
		return 'r'
	}
	return 'b'
}

func (b *Board) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.cells[r][c].piece
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(turnToChar(b.turn))
	return sb.String()
}

// DecodeBoard builds a board on the standard terrain from notation.
// Pieces may be put on any terrain, which is what test setups rely on.
func DecodeBoard(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, errors.Wrapf(ErrInvalidNotation, "want 2 fields, got %d", len(fields))
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != Rows {
		return nil, errors.Wrapf(ErrInvalidNotation, "want %d rows, got %d", Rows, len(rows))
	}

	b := newEmptyBoard()
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, errors.Wrapf(ErrInvalidNotation, "row %d overflows", r)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			sp, ok := letterToSpecies[unicode.ToLower(ch)]
			if !ok {
				return nil, errors.Wrapf(ErrInvalidNotation, "row %d: unknown piece %q", r, ch)
			}
			color := Black
			if unicode.IsUpper(ch) {
				color = Red
			}
			b.setPiece(r, c, MakePiece(color, sp))
			c++
		}
		if c != Cols {
			return nil, errors.Wrapf(ErrInvalidNotation, "row %d has %d columns", r, c)
		}
	}

	switch fields[1] {
	case "b":
		b.turn = Black
	case "r":
		b.turn = Red
	default:
		return nil, errors.Wrapf(ErrInvalidNotation, "side to move %q", fields[1])
	}
	return b, nil
}

// MustDecodeBoard panics on bad notation. Meant for fixtures and tests.
func MustDecodeBoard(s string) *Board {
	b, err := DecodeBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}
