package rummikub

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	u := uuid.New()
	id := FromUUID(u)

	// equality by text
	assert.Equal(t, id, ParseIdentifier(u.String()))
	assert.NotEqual(t, id, NewIdentifier())
	assert.False(t, id.IsZero())
	assert.True(t, Identifier{}.IsZero())

	back, err := id.UUID()
	require.NoError(t, err)
	assert.Equal(t, u, back)

	// the short form names the same UUID but is a different identifier
	short := id.Short()
	assert.NotEqual(t, id, short)
	assert.Less(t, len(short.String()), len(id.String()))
	back, err = short.UUID()
	require.NoError(t, err)
	assert.Equal(t, u, back)

	_, err = NewShortIdentifier().UUID()
	assert.NoError(t, err)

	_, err = ParseIdentifier("not an identifier!").UUID()
	assert.Error(t, err)

	// usable as a map key
	m := map[Identifier]int{id: 1}
	assert.Equal(t, 1, m[ParseIdentifier(u.String())])
}
