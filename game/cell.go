package game

import "fmt"

// Player identifies one side of the game. NoPlayer marks an unowned cell.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

const NumPlayers = 2

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return 3 - p
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	if p == NoPlayer {
		return "none"
	}
	return fmt.Sprintf("Player%d", int(p))
}

// Cell is the owner tag of a board position. Moves replace cells, they never
// mutate them.
type Cell struct {
	Owner Player
}

var EmptyCell = Cell{}

func (c Cell) IsEmpty() bool {
	return c.Owner == NoPlayer
}

func (c Cell) OwnedBy(p Player) bool {
	return c.Owner == p
}
