package jungle

import (
	"fmt"
	"strings"
)

var terrainLabels = [...]string{
	TerrainNone: "None",
	Water:       "Water",
	Ground:      "Ground",
	RedTrap:     "RTrap",
	BlackTrap:   "BTrap",
	RedDen:      "RDen",
	BlackDen:    "BDen",
}

var pieceLabels = [...]string{
	NoPiece:       "",
	RedRat:        "rRa",
	RedCat:        "rCa",
	RedDog:        "rDo",
	RedWolf:       "rWo",
	RedLeopard:    "rLe",
	RedTiger:      "rTi",
	RedLion:       "rLi",
	RedElephant:   "rEl",
	BlackRat:      "bRa",
	BlackCat:      "bCa",
	BlackDog:      "bDo",
	BlackWolf:     "bWo",
	BlackLeopard:  "bLe",
	BlackTiger:    "bTi",
	BlackLion:     "bLi",
	BlackElephant: "bEl",
}

var terrainGlyphs = [...]byte{
	TerrainNone: ' ',
	Water:       '~',
	Ground:      '.',
	RedTrap:     '#',
	BlackTrap:   '#',
	RedDen:      '@',
	BlackDen:    '@',
}

// String renders "Terrain|Piece" per cell, one board row per line, followed by the hash.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		cells := make([]string, Cols)
		for c := 0; c < Cols; c++ {
			cell := b.cells[r][c]
			cells[c] = cell.terrain.String() + "|" + cell.piece.String()
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "hash: %d\n", b.Hash())
	return sb.String()
}

// Diagram is a compact grid: notation letters for pieces, glyphs for bare terrain.
//
//	  0123456
//	0 L.#@#.T
func (b *Board) Diagram() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < Cols; c++ {
		sb.WriteByte(byte('0' + c))
	}
	sb.WriteByte('\n')
	for r := 0; r < Rows; r++ {
		sb.WriteByte(byte('0' + r))
		sb.WriteByte(' ')
		for c := 0; c < Cols; c++ {
			cell := b.cells[r][c]
			if cell.Empty() {
				sb.WriteByte(terrainGlyphs[cell.terrain])
				continue
			}
			sb.WriteRune(pieceToChar(cell.piece))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s to move\n", b.turn)
	return sb.String()
}
