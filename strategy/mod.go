package strategy

import (
	"errors"
	"reversi/game"
)

// ErrNoLegalMove is returned when a strategy is asked to choose for a player
// who cannot move. Callers treat it as "must pass".
var ErrNoLegalMove = errors.New("no legal move available")

// Strategy picks one move for p. Implementations only read m; hypothetical
// moves are played on clones.
type Strategy interface {
	ChooseMove(m game.ReadOnly, p game.Player) (game.Coordinate, error)
}

// Func adapts a plain function to a Strategy.
type Func func(m game.ReadOnly, p game.Player) (game.Coordinate, error)

func (f Func) ChooseMove(m game.ReadOnly, p game.Player) (game.Coordinate, error) {
	return f(m, p)
}
