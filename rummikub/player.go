package rummikub

// The Player struct contains the state of a seat during the game.
type Player struct {
	ID          Identifier `json:"id"`
	DisplayName string     `json:"display_name"`
	IsTurn      bool       `json:"is_turn"`

	// set once the player's opening meld has been accepted.
	IsPostMeld bool `json:"is_post_meld"`

	// only mutated through the rack methods below.
	rack []Tile
}

// NewPlayer creates a player with an empty rack.
func NewPlayer(name string) *Player {
	return &Player{
		ID:          NewIdentifier(),
		DisplayName: name,
		rack:        []Tile{},
	}
}

// HasWon reports whether the player got rid of every tile.
func (p *Player) HasWon() bool {
	return len(p.rack) == 0
}

// ToggleTurn flips the turn flag and returns the new value.
func (p *Player) ToggleTurn() bool {
	p.IsTurn = !p.IsTurn
	return p.IsTurn
}

// SetRack replaces the rack, e.g. when the tiles are dealt.
func (p *Player) SetRack(tiles []Tile) {
	p.rack = append([]Tile(nil), tiles...)
}

// Rack returns a copy of the tiles on the rack.
func (p *Player) Rack() []Tile {
	return append([]Tile(nil), p.rack...)
}

func (p *Player) AddTileToRack(t Tile) {
	p.rack = append(p.rack, t)
}

func (p *Player) HasTile(tileID Identifier) bool {
	return p.rackIndex(tileID) >= 0
}

// RemoveTileFromRack takes the tile with the given identity off the rack.
func (p *Player) RemoveTileFromRack(tileID Identifier) (Tile, bool) {
	i := p.rackIndex(tileID)
	if i < 0 {
		return Tile{}, false
	}
	t := p.rack[i]
	p.rack = append(p.rack[:i], p.rack[i+1:]...)
	return t, true
}

func (p *Player) rackIndex(tileID Identifier) int {
	for i, t := range p.rack {
		if t.ID == tileID {
			return i
		}
	}
	return -1
}
