package rummikub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_Rack(t *testing.T) {
	player := NewPlayer("testplayer")
	assert.True(t, player.HasWon(), "a player with an empty rack has won")

	hand := []Tile{tile(t, 2, Red), tile(t, 11, Black), NewJoker()}
	player.SetRack(hand)
	assert.Equal(t, hand, player.Rack())
	assert.False(t, player.HasWon())

	// the rack is not shared with the caller
	hand[0] = tile(t, 3, Red)
	assert.NotEqual(t, hand[0], player.Rack()[0], "rack was changed through the slice passed to SetRack")

	removed, ok := player.RemoveTileFromRack(hand[1].ID)
	assert.True(t, ok)
	assert.Equal(t, hand[1], removed)
	assert.Len(t, player.Rack(), 2)
	assert.False(t, player.HasTile(hand[1].ID))

	_, ok = player.RemoveTileFromRack(hand[1].ID)
	assert.False(t, ok, "removed a tile twice")

	player.AddTileToRack(removed)
	assert.True(t, player.HasTile(removed.ID))
	assert.Equal(t, removed, player.Rack()[2], "tiles are appended to the rack")
}

func TestPlayer_ToggleTurn(t *testing.T) {
	player := NewPlayer("testplayer")
	assert.False(t, player.IsTurn)
	assert.True(t, player.ToggleTurn())
	assert.True(t, player.IsTurn)
	assert.False(t, player.ToggleTurn())
}
