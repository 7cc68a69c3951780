package rummikub

import "fmt"

const (
	JokerValue = 0
	MinValue   = 1
	MaxValue   = 13
)

type Color int

const (
	Blue Color = iota
	Red
	Orange
	Black
	Joker
)

// Colors lists the colors of the numbered tiles.
var Colors = []Color{Blue, Red, Orange, Black}

var colorNames = map[Color]string{
	Blue:   "blue",
	Red:    "red",
	Orange: "orange",
	Black:  "black",
	Joker:  "joker",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) MarshalText() ([]byte, error) {
	if _, ok := colorNames[c]; !ok {
		return nil, fmt.Errorf("unknown color %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	for color, name := range colorNames {
		if name == string(b) {
			*c = color
			return nil
		}
	}
	return fmt.Errorf("unknown color %q", string(b))
}

// Tile is a single numbered tile or a joker.
type Tile struct {
	ID    Identifier `json:"id"`
	Value int        `json:"value"` // 1 to 13, jokers are valued at 0.
	Color Color      `json:"color"`
}

// NewTile creates a tile with a fresh identity.
func NewTile(value int, color Color) (Tile, error) {
	t := Tile{ID: NewIdentifier(), Value: value, Color: color}
	if !t.IsValid() {
		return Tile{}, fmt.Errorf("%w: %d %v", ErrIllegalTile, value, color)
	}
	return t, nil
}

// NewJoker properly initiates a joker tile.
func NewJoker() Tile {
	return Tile{ID: NewIdentifier(), Value: JokerValue, Color: Joker}
}

func (t Tile) IsJoker() bool {
	return t.Value == JokerValue && t.Color == Joker
}

func (t Tile) IsValid() bool {
	return t.IsJoker() ||
		(t.Color != Joker && t.Value >= MinValue && t.Value <= MaxValue)
}

func (t Tile) String() string {
	if t.IsJoker() {
		return "joker"
	}
	return fmt.Sprintf("%v %d", t.Color, t.Value)
}
