package strategy

import (
	"fmt"
	"reversi/game"
)

// CaptureMaxCellsThisMove plays the move that leaves p with the highest
// score. The earliest move in scan order wins ties.
type CaptureMaxCellsThisMove struct{}

func (CaptureMaxCellsThisMove) ChooseMove(m game.ReadOnly, p game.Player) (game.Coordinate, error) {
	var best game.Coordinate
	bestScore := -1
	for c := range m.Board().All() {
		if !m.IsMoveLegal(c, p) {
			continue
		}
		clone := m.Clone()
		if err := clone.ApplyMove(c, p); err != nil {
			return nil, fmt.Errorf("simulating %v: %w", c, err)
		}
		score, err := clone.Score(p)
		if err != nil {
			return nil, err
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	if best == nil {
		return nil, ErrNoLegalMove
	}
	return best, nil
}
