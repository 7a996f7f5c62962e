package strategy

import (
	"reversi/game"
	"sync"

	"golang.org/x/exp/rand"
)

// RandomValidMove samples board coordinates uniformly until it hits a legal
// move.
type RandomValidMove struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomValidMove(seed uint64) *RandomValidMove {
	return &RandomValidMove{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomValidMove) ChooseMove(m game.ReadOnly, p game.Player) (game.Coordinate, error) {
	if len(m.AvailableMoves(p)) == 0 {
		return nil, ErrNoLegalMove
	}

	coords := m.Board().Coordinates()
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		c := coords[s.rng.Intn(len(coords))]
		if m.IsMoveLegal(c, p) {
			return c, nil
		}
	}
}
