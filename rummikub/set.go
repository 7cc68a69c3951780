package rummikub

import "fmt"

const (
	MinSetLength   = 3
	MaxGroupLength = 4
	MaxRunLength   = MaxValue
)

// SetOrder is the classification of a valid set.
type SetOrder int

const (
	// Group is a set of three or four tiles of the same number in different colors.
	Group SetOrder = iota
	// Run is a set of three or more consecutive numbers all in the same color.
	// 1 is always the lowest number, it cannot follow 13.
	Run
)

func (o SetOrder) String() string {
	switch o {
	case Group:
		return "group"
	case Run:
		return "run"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// Set is an ordered collection of tiles melded on the table.
// The order of the tiles matters for runs and is incidental for groups.
type Set struct {
	ID    Identifier
	tiles []Tile
}

// NewSet wraps the tiles in a set with a fresh identity.
func NewSet(tiles ...Tile) *Set {
	s := &Set{
		ID:    NewIdentifier(),
		tiles: make([]Tile, 0, MaxRunLength),
	}
	s.tiles = append(s.tiles, tiles...)
	return s
}

// Tiles returns a copy of the tiles in order.
func (s *Set) Tiles() []Tile {
	return append([]Tile(nil), s.tiles...)
}

func (s *Set) Len() int {
	return len(s.tiles)
}

// Contains checks if the set holds a tile with the given identity.
func (s *Set) Contains(tileID Identifier) bool {
	return s.indexOf(tileID) >= 0
}

func (s *Set) indexOf(tileID Identifier) int {
	for i, t := range s.tiles {
		if t.ID == tileID {
			return i
		}
	}
	return -1
}

// firstNonJoker returns the index of the anchor tile, or -1 for a set of only jokers.
func (s *Set) firstNonJoker() int {
	for i, t := range s.tiles {
		if !t.IsJoker() {
			return i
		}
	}
	return -1
}

// TilesAsGroup returns the tiles with every joker resolved to the value of the group.
func (s *Set) TilesAsGroup() ([]Tile, error) {
	if len(s.tiles) < MinSetLength {
		return nil, ErrMinLength
	}
	if len(s.tiles) > MaxGroupLength {
		return nil, ErrMaxLength
	}

	anchor := s.firstNonJoker()
	if anchor < 0 {
		return nil, fmt.Errorf("%w: set contains only jokers", ErrBadTile)
	}
	value := s.tiles[anchor].Value

	seen := make(map[Color]bool, MaxGroupLength)
	for _, t := range s.tiles {
		if t.IsJoker() {
			continue
		}
		if seen[t.Color] {
			return nil, fmt.Errorf("%w: color %v appears twice", ErrBadTile, t.Color)
		}
		seen[t.Color] = true

		if t.Value != value {
			return nil, fmt.Errorf("%w: %v does not match value %d", ErrBadTile, t, value)
		}
	}

	resolved := s.Tiles()
	for i := range resolved {
		if resolved[i].IsJoker() {
			resolved[i].Value = value
		}
	}
	return resolved, nil
}

// TilesAsRun returns the tiles with every joker resolved to the value it stands in for.
// A joker takes the value of its neighbour minus one when it precedes it and plus one
// when it follows it.
func (s *Set) TilesAsRun() ([]Tile, error) {
	if len(s.tiles) < MinSetLength {
		return nil, ErrMinLength
	}
	if len(s.tiles) > MaxRunLength {
		return nil, ErrMaxLength
	}

	anchor := s.firstNonJoker()
	if anchor < 0 {
		return nil, fmt.Errorf("%w: set contains only jokers", ErrBadTile)
	}
	color := s.tiles[anchor].Color

	for _, t := range s.tiles {
		if !t.IsJoker() && t.Color != color {
			return nil, fmt.Errorf("%w: %v does not match color %v", ErrBadTile, t, color)
		}
	}

	resolved := s.Tiles()
	for i := anchor - 1; i >= 0; i-- {
		resolved[i] = resolveJoker(resolved[i], resolved[i+1].Value-1, color)
	}
	for i := anchor + 1; i < len(resolved); i++ {
		resolved[i] = resolveJoker(resolved[i], resolved[i-1].Value+1, color)
	}

	for i := 1; i < len(resolved); i++ {
		prev, curr := resolved[i-1], resolved[i]
		if curr.Value-prev.Value != 1 {
			return nil, fmt.Errorf("%w: %v does not follow %v", ErrBadTile, curr, prev)
		}
		if !prev.IsValid() || !curr.IsValid() {
			return nil, fmt.Errorf("%w: joker falls outside %d-%d", ErrBadTile, MinValue, MaxValue)
		}
	}

	return resolved, nil
}

func resolveJoker(t Tile, value int, color Color) Tile {
	if !t.IsJoker() {
		return t
	}
	return Tile{ID: t.ID, Value: value, Color: color}
}

// Order classifies the set. A set that qualifies as both is reported as a Group.
func (s *Set) Order() (SetOrder, bool) {
	if _, err := s.TilesAsGroup(); err == nil {
		return Group, true
	}
	if _, err := s.TilesAsRun(); err == nil {
		return Run, true
	}
	return 0, false
}

func sumTiles(tiles []Tile) int {
	sum := 0
	for _, t := range tiles {
		sum += t.Value
	}
	return sum
}

// Sum is the score of the set. With jokers, the best of both classifications counts.
func (s *Set) Sum() int {
	hasJoker := false
	for _, t := range s.tiles {
		if t.IsJoker() {
			hasJoker = true
			break
		}
	}
	if !hasJoker {
		return sumTiles(s.tiles)
	}

	// a failed classification scores 0
	run, _ := s.TilesAsRun()
	group, _ := s.TilesAsGroup()
	return max(sumTiles(run), sumTiles(group))
}

// AddTile inserts the tile at index, shifting the tiles behind it.
func (s *Set) AddTile(t Tile, index int) error {
	if index < 0 || index > len(s.tiles) {
		return ErrOutOfBounds
	}
	s.tiles = append(s.tiles, Tile{})
	copy(s.tiles[index+1:], s.tiles[index:])
	s.tiles[index] = t
	return nil
}

// RemoveTileWithIndex removes the tile and reports the index it was found at.
func (s *Set) RemoveTileWithIndex(tileID Identifier) (Tile, int, bool) {
	i := s.indexOf(tileID)
	if i < 0 {
		return Tile{}, -1, false
	}
	t := s.tiles[i]
	s.tiles = append(s.tiles[:i], s.tiles[i+1:]...)
	return t, i, true
}

func (s *Set) RemoveTile(tileID Identifier) (Tile, bool) {
	t, _, ok := s.RemoveTileWithIndex(tileID)
	return t, ok
}

// splitOff keeps tiles [0,index) and returns the rest.
func (s *Set) splitOff(index int) []Tile {
	tail := append([]Tile(nil), s.tiles[index:]...)
	s.tiles = s.tiles[:index]
	return tail
}

// Validate returns nil if the set is a valid run or group.
func (s *Set) Validate() error {
	_, groupErr := s.TilesAsGroup()
	if groupErr == nil {
		return nil
	}
	_, runErr := s.TilesAsRun()
	if runErr == nil {
		return nil
	}

	// too long to be a group: the run outcome is the meaningful one.
	if len(s.tiles) > MaxGroupLength {
		return runErr
	}
	return groupErr
}
