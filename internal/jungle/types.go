package jungle

import "fmt"

type Color int8

const (
	NoColor Color = -1
	Red     Color = 0
	Black   Color = 1
)

func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

// Species doubles as the combat rank: Rat(1) is the weakest, Elephant(8) the strongest.
type Species int8

const (
	NoSpecies Species = iota
	Rat               // 鼠
	Cat               // 猫
	Dog               // 狗
	Wolf              // 狼
	Leopard           // 豹
	Tiger             // 虎
	Lion              // 狮
	Elephant          // 象
)

const numSpecies = 8

var speciesNames = [...]string{
	NoSpecies: "none",
	Rat:       "rat",
	Cat:       "cat",
	Dog:       "dog",
	Wolf:      "wolf",
	Leopard:   "leopard",
	Tiger:     "tiger",
	Lion:      "lion",
	Elephant:  "elephant",
}

func (s Species) String() string {
	if s < NoSpecies || s > Elephant {
		return speciesNames[NoSpecies]
	}
	return speciesNames[s]
}

// jumper reports whether the species may leap across the river.
func (s Species) jumper() bool { return s == Lion || s == Tiger }

// Piece 0=none; 1..8 red Rat..Elephant; 9..16 black Rat..Elephant.
type Piece uint8

const (
	NoPiece Piece = iota
	RedRat
	RedCat
	RedDog
	RedWolf
	RedLeopard
	RedTiger
	RedLion
	RedElephant
	BlackRat
	BlackCat
	BlackDog
	BlackWolf
	BlackLeopard
	BlackTiger
	BlackLion
	BlackElephant
)

func MakePiece(color Color, s Species) Piece {
	if s <= NoSpecies || s > Elephant {
		return NoPiece
	}
	switch color {
	case Red:
		return Piece(s)
	case Black:
		return Piece(s) + numSpecies
	}
	return NoPiece
}

func (p Piece) Valid() bool { return p >= RedRat && p <= BlackElephant }

func (p Piece) Species() Species {
	if !p.Valid() {
		return NoSpecies
	}
	return Species(RankOf(int(p)))
}

func (p Piece) Color() Color {
	switch {
	case !p.Valid():
		return NoColor
	case p > RedElephant:
		return Black
	}
	return Red
}

// Rank is the color-independent combat strength, 0 for NoPiece.
func (p Piece) Rank() int { return RankOf(int(p)) }

func (p Piece) String() string { return pieceLabels[p.index()] }

func (p Piece) index() int {
	if !p.Valid() {
		return 0
	}
	return int(p)
}

// RankOf maps any raw piece value to its rank: ((p-1) mod 8)+1 for 1..16, else 0.
func RankOf(p int) int {
	if p <= int(NoPiece) || p > int(BlackElephant) {
		return 0
	}
	return (p-1)%numSpecies + 1
}

type Terrain uint8

const (
	TerrainNone Terrain = iota // out of bounds
	Water
	Ground
	RedTrap
	BlackTrap
	RedDen
	BlackDen
)

func (t Terrain) IsTrap() bool { return t == RedTrap || t == BlackTrap }

func (t Terrain) IsDen() bool { return t == RedDen || t == BlackDen }

func (t Terrain) String() string {
	if int(t) >= len(terrainLabels) {
		return terrainLabels[TerrainNone]
	}
	return terrainLabels[t]
}

func denOf(c Color) Terrain {
	switch c {
	case Red:
		return RedDen
	case Black:
		return BlackDen
	}
	return TerrainNone
}

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) String() string { return fmt.Sprintf("(%d,%d)", s.Row, s.Col) }

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string { return m.From.String() + "->" + m.To.String() }
