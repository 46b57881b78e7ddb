package tetris

import "math/rand"

// Spawner produces new pieces at the fixed spawn position, picking one
// of the seven shapes uniformly at random. There is no bag: repeats
// are allowed.
type Spawner struct {
	rng  *rand.Rand
	x, y int
}

// NewSpawner creates a spawner that spawns pieces at (x, y).
func NewSpawner(rng *rand.Rand, x, y int) *Spawner {
	return &Spawner{rng: rng, x: x, y: y}
}

// Next returns a fresh piece at the spawn position, rotation 0.
func (s *Spawner) Next() Piece {
	idx := s.rng.Intn(len(Shapes))
	return NewPiece(&Shapes[idx], s.x, s.y)
}
