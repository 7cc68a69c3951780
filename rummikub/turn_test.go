package rummikub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTurn(t *testing.T, postMeld bool) *Turn {
	player := NewPlayer("testplayer")
	player.SetRack([]Tile{tile(t, 4, Blue), tile(t, 5, Blue)})
	player.IsPostMeld = postMeld
	return NewTurn(player)
}

func TestTurn_AddMove_DrawIsAlone(t *testing.T) {
	// a draw after another move
	turn := newTestTurn(t, true)
	require.NoError(t, turn.AddMove(CreateMove(NewIdentifier())))
	assert.ErrorIs(t, turn.AddMove(DrawMove(NewIdentifier())), ErrTurnIllegalMove)

	// any move after a draw
	turn = newTestTurn(t, true)
	require.NoError(t, turn.AddMove(DrawMove(NewIdentifier())))
	assert.ErrorIs(t, turn.AddMove(CreateMove(NewIdentifier())), ErrTurnIllegalMove)
	assert.ErrorIs(t, turn.AddMove(DrawMove(NewIdentifier())), ErrTurnIllegalMove)
	assert.Equal(t, 1, turn.Len(), "rejected moves were logged")
}

func TestTurn_AddMove_PreMeld(t *testing.T) {
	set, tl := NewIdentifier(), NewIdentifier()

	rejected := []Move{
		AddTileMove(set, tl, 0),
		TransferMove(set, NewIdentifier(), tl, 0),
		RemoveMove(set, tl),
	}
	for _, m := range rejected {
		turn := newTestTurn(t, false)
		assert.ErrorIs(t, turn.AddMove(m), ErrTurnIllegalMove, "%v accepted before the opening meld", m.Kind)

		turn = newTestTurn(t, true)
		assert.NoError(t, turn.AddMove(m), "%v rejected after the opening meld", m.Kind)
	}

	turn := newTestTurn(t, false)
	assert.NoError(t, turn.AddMove(CreateMove(set)))
	assert.NoError(t, turn.AddMove(CreateMove(NewIdentifier())))

	turn = newTestTurn(t, false)
	assert.NoError(t, turn.AddMove(DrawMove(tl)))
}

func TestTurn_AddMove_Won(t *testing.T) {
	turn := NewTurn(NewPlayer("winner"))
	turn.Player().IsPostMeld = true
	assert.ErrorIs(t, turn.AddMove(DrawMove(NewIdentifier())), ErrTurnIllegalMove)
}

func TestTurn_UndoClear(t *testing.T) {
	turn := newTestTurn(t, true)
	moves := []Move{
		CreateMove(NewIdentifier()),
		AddTileMove(NewIdentifier(), NewIdentifier(), 1),
		RemoveMove(NewIdentifier(), NewIdentifier()),
	}
	for _, m := range moves {
		require.NoError(t, turn.AddMove(m))
	}
	assert.Equal(t, moves, turn.Moves())

	// moves come back newest first
	last, ok := turn.Undo()
	assert.True(t, ok)
	assert.Equal(t, moves[2], last)
	assert.Equal(t, 2, turn.Len())

	turn.Clear()
	assert.Equal(t, 0, turn.Len())
	_, ok = turn.Undo()
	assert.False(t, ok, "undo on an empty log returned a move")
}
