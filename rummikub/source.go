package rummikub

import "math/rand"

// Source picks tiles from the pool. Hosts can plug in their own randomness.
type Source interface {
	// Intn returns a number in [0,n).
	Intn(n int) int
}

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// shuffle returns a random permutation of the tiles.
func shuffle(tiles []Tile, src Source) []Tile {
	shuffled := append([]Tile(nil), tiles...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
