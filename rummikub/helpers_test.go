package rummikub

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// tile builds a numbered tile or fails the test.
func tile(t *testing.T, value int, color Color) Tile {
	t.Helper()
	tl, err := NewTile(value, color)
	require.NoError(t, err)
	return tl
}

// run builds the tiles of a run in one color.
func run(t *testing.T, color Color, from, to int) []Tile {
	t.Helper()
	tiles := []Tile{}
	for v := from; v <= to; v++ {
		tiles = append(tiles, tile(t, v, color))
	}
	return tiles
}

func ids(tiles ...Tile) []Identifier {
	out := make([]Identifier, 0, len(tiles))
	for _, tl := range tiles {
		out = append(out, tl.ID)
	}
	return out
}

// newTestTable seats four players with empty racks around the given pool.
// The returned hook collects everything the table logs.
func newTestTable(t *testing.T, pool ...Tile) (*Table, [SeatCount]*Player, *test.Hook) {
	t.Helper()
	var players [SeatCount]*Player
	for i := range players {
		players[i] = NewPlayer(fmt.Sprintf("testplayer%d", i))
	}

	table, err := NewTable(NewDefaultRules(), players, pool, NewRandomSource(88))
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	table.WithLogger(logrus.NewEntry(logger))

	return table, players, hook
}

// meld places a set on the table directly, bypassing racks and turns.
func meld(table *Table, tiles ...Tile) Identifier {
	s := NewSet(tiles...)
	table.register(s)
	return s.ID
}
