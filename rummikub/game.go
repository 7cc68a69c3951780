package rummikub

import "fmt"

// NewGame builds a table for four named players: the tiles described by the rules are
// shuffled with the seed, every rack is dealt from the pile and the first seat starts.
// The same seed is used for drawing during the game.
func NewGame(rules Rules, seed int64, names [SeatCount]string) (*Table, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	source := NewRandomSource(seed)
	pile := shuffle(rules.AllTiles(), source)

	var players [SeatCount]*Player
	for i, name := range names {
		players[i] = NewPlayer(name)
		if len(pile) < rules.StartingRackSize {
			return nil, fmt.Errorf("pile empty before %v could be dealt", name)
		}
		players[i].SetRack(pile[:rules.StartingRackSize])
		pile = pile[rules.StartingRackSize:]
	}
	players[0].IsTurn = true

	return NewTable(rules, players, pile, source)
}
