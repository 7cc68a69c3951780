package rummikub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_AllTiles(t *testing.T) {
	rules := NewDefaultRules()
	require.NoError(t, rules.Validate())

	tiles := rules.AllTiles()
	assert.Len(t, tiles, 106)
	assert.Equal(t, rules.DeckSize(), len(tiles))

	jokers := 0
	perColor := map[Color]int{}
	seen := map[Identifier]bool{}
	for _, tl := range tiles {
		assert.True(t, tl.IsValid(), "deck contains an invalid tile %v", tl)
		assert.False(t, seen[tl.ID], "identity used twice")
		seen[tl.ID] = true

		if tl.IsJoker() {
			jokers++
			continue
		}
		perColor[tl.Color]++
	}
	assert.Equal(t, 2, jokers)
	for _, c := range Colors {
		assert.Equal(t, 26, perColor[c], "tiles of %v", c)
	}
}

func TestRules_Validate(t *testing.T) {
	rules := NewDefaultRules()
	rules.Values = 14
	assert.Error(t, rules.Validate())

	rules = NewDefaultRules()
	rules.StartingRackSize = 27
	assert.Error(t, rules.Validate(), "4 racks of 27 do not fit in 106 tiles")

	rules = NewDefaultRules()
	rules.MeldThreshold = -1
	assert.Error(t, rules.Validate())
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("meld_threshold: 25\nstarting_rack_size: 13\n"), 0o644))
	rules, err := LoadRules(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 25, rules.MeldThreshold)
	assert.Equal(t, 13, rules.StartingRackSize)
	assert.Equal(t, 2, rules.JokersInPlay, "missing field lost its default")

	jsonPath := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"jokers_in_play": 4, "replicates": 1}`), 0o644))
	rules, err = LoadRules(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 4, rules.JokersInPlay)
	assert.Equal(t, 1, rules.Replicates)
	assert.Equal(t, 30, rules.MeldThreshold)

	badPath := filepath.Join(dir, "rules.yaml.bak")
	require.NoError(t, os.WriteFile(badPath, []byte("{}"), 0o644))
	_, err = LoadRules(badPath)
	assert.Error(t, err, "unknown extension was accepted")

	invalidPath := filepath.Join(dir, "invalid.yml")
	require.NoError(t, os.WriteFile(invalidPath, []byte("values: 40\n"), 0o644))
	_, err = LoadRules(invalidPath)
	assert.Error(t, err, "invalid rules were accepted")

	_, err = LoadRules(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
