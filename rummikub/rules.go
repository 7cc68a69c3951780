package rummikub

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SeatCount is the number of players at a table.
const SeatCount = 4

type Rules struct {
	// highest tile value; tiles run from 1 to Values.
	Values int `json:"values" yaml:"values"`

	JokersInPlay     int `json:"jokers_in_play" yaml:"jokers_in_play"`
	Replicates       int `json:"replicates" yaml:"replicates"`
	StartingRackSize int `json:"starting_rack_size" yaml:"starting_rack_size"`

	// the summed value of the sets created in a first turn must exceed this.
	MeldThreshold int `json:"meld_threshold" yaml:"meld_threshold"`
}

// NewDefaultRules returns the standard game rules.
func NewDefaultRules() Rules {
	return Rules{
		Values:           MaxValue,
		JokersInPlay:     2,
		Replicates:       2,
		StartingRackSize: 14,
		MeldThreshold:    30,
	}
}

// LoadRules reads rules from a YAML or JSON file, chosen by extension.
// Fields missing from the file keep their default value.
func LoadRules(path string) (Rules, error) {
	rules := NewDefaultRules()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &rules)
	case ".json":
		err = json.Unmarshal(data, &rules)
	default:
		return rules, fmt.Errorf("unsupported rules file %q", path)
	}
	if err != nil {
		return rules, fmt.Errorf("failed to unmarshal rules: %w", err)
	}

	return rules, rules.Validate()
}

func (r Rules) Validate() error {
	if r.Values < MinSetLength || r.Values > MaxValue {
		return fmt.Errorf("values must be between %d and %d, got %d", MinSetLength, MaxValue, r.Values)
	}
	if r.JokersInPlay < 0 || r.Replicates < 1 || r.StartingRackSize < 1 || r.MeldThreshold < 0 {
		return fmt.Errorf("invalid rules %+v", r)
	}
	if r.StartingRackSize*SeatCount > r.DeckSize() {
		return fmt.Errorf("deck of %d tiles cannot fill %d racks of %d", r.DeckSize(), SeatCount, r.StartingRackSize)
	}
	return nil
}

func (r Rules) DeckSize() int {
	return r.Values*len(Colors)*r.Replicates + r.JokersInPlay
}

// AllTiles returns every tile in the play set described by the rules, each with a fresh identity.
// The tiles are ordered; shuffling is up to the caller.
func (r Rules) AllTiles() []Tile {
	tiles := make([]Tile, 0, r.DeckSize())
	for i := 0; i < r.Replicates; i++ {
		for val := MinValue; val <= r.Values; val++ {
			for _, col := range Colors {
				tiles = append(tiles, Tile{ID: NewIdentifier(), Value: val, Color: col})
			}
		}
	}
	for j := 0; j < r.JokersInPlay; j++ {
		tiles = append(tiles, NewJoker())
	}
	return tiles
}
