package game

// ReadOnly is the query side of a game. Strategies and views only ever see a
// game through this interface; hypothetical futures are explored on clones.
type ReadOnly interface {
	Board() *Board
	IsGameOver() (bool, error)
	Score(p Player) (int, error)
	SideLength() int
	CurrentTurn() Player
	Topology() Topology
	IsMoveLegal(c Coordinate, p Player) bool
	AvailableMoves(p Player) []Coordinate
	CellsFlipped(c Coordinate, p Player) int
	Clone() *Engine
}

// Observer is notified, without payload, whenever its player takes the turn.
// The callback re-queries the game for whatever it needs.
type Observer interface {
	OnTurn()
}

// ObserverFunc adapts a plain function to an Observer.
type ObserverFunc func()

func (f ObserverFunc) OnTurn() {
	f()
}

var _ ReadOnly = (*Engine)(nil)
