package game

import "fmt"

// Engine is a game of Reversi on a single topology. It is not safe for
// concurrent use; strategies explore futures on clones.
type Engine struct {
	topology   Topology
	board      *Board
	sideLength int
	turn       Player // The player who holds the turn
	passes     int    // Consecutive non-move plies
	started    bool
	observers  map[Player]Observer
}

// NewEngine returns an unstarted game on the given topology.
func NewEngine(topology Topology) *Engine {
	return &Engine{
		topology:  topology,
		observers: make(map[Player]Observer),
	}
}

// StartGame builds the board and hands the turn to Player1.
func (e *Engine) StartGame(sideLength, numPlayers int) error {
	if e.started {
		return ErrAlreadyStarted
	}
	if err := e.topology.ValidateSideLength(sideLength); err != nil {
		return err
	}
	if numPlayers != NumPlayers {
		return fmt.Errorf("%w, got %d", ErrInvalidNumPlayers, numPlayers)
	}

	e.board = e.topology.InitialLayout(sideLength)
	e.sideLength = sideLength
	e.turn = Player1
	e.passes = 0
	e.started = true

	if len(e.observers) > 0 {
		e.notifyTurn()
	}
	return nil
}

// ApplyMove places p's piece at c and flips every captured line.
func (e *Engine) ApplyMove(c Coordinate, p Player) error {
	if err := e.checkAction(p); err != nil {
		return err
	}
	if !e.board.Contains(c) {
		return fmt.Errorf("%w: %v", ErrOffBoard, c)
	}
	if !e.IsMoveLegal(c, p) {
		return fmt.Errorf("%w: %v for %v", ErrIllegalMove, c, p)
	}

	e.board.set(c, Cell{Owner: p})
	e.passes = 0
	for _, direction := range e.topology.Directions() {
		if e.hasLine(c, direction, p) {
			e.flipLine(c, direction, p)
		}
	}

	e.turn = p.Opponent()
	if !e.hasLegalMoves(e.turn) && !e.gameOver() {
		e.skip()
	}

	e.notifyTurn()
	return nil
}

// Pass gives up p's turn.
func (e *Engine) Pass(p Player) error {
	if err := e.checkAction(p); err != nil {
		return err
	}

	e.skip()

	e.notifyTurn()
	return nil
}

// skip hands the turn to the opponent, and straight back when the opponent
// cannot move either. Each handover counts as a pass.
func (e *Engine) skip() {
	e.turn = e.turn.Opponent()
	e.passes++
	if !e.hasLegalMoves(e.turn) {
		e.turn = e.turn.Opponent()
		e.passes++
	}
}

func (e *Engine) checkAction(p Player) error {
	if !e.started {
		return ErrNotStarted
	}
	if p != e.turn {
		return fmt.Errorf("%w: %v tried to act on %v's turn", ErrOutOfTurn, p, e.turn)
	}
	if e.gameOver() {
		return ErrGameOver
	}
	return nil
}

// IsMoveLegal reports whether c is empty and closes at least one capture line
// for p.
func (e *Engine) IsMoveLegal(c Coordinate, p Player) bool {
	if !e.started {
		return false
	}
	cell, ok := e.board.Get(c)
	if !ok || !cell.IsEmpty() {
		return false
	}
	for _, direction := range e.topology.Directions() {
		if e.hasLine(c, direction, p) {
			return true
		}
	}
	return false
}

// hasLine walks from c along direction over a non-empty run of opponent cells
// and reports whether the run ends in a cell owned by p.
func (e *Engine) hasLine(c, direction Coordinate, p Player) bool {
	current := c.Add(direction)
	cell, ok := e.board.Get(current)
	if !ok || cell.Owner != p.Opponent() {
		return false
	}
	for {
		current = current.Add(direction)
		cell, ok = e.board.Get(current)
		if !ok || cell.IsEmpty() {
			return false
		}
		if cell.Owner == p {
			return true
		}
	}
}

func (e *Engine) flipLine(c, direction Coordinate, p Player) {
	current := c.Add(direction)
	for e.board.Owner(current) != p {
		e.board.set(current, Cell{Owner: p})
		current = current.Add(direction)
	}
}

func (e *Engine) hasLegalMoves(p Player) bool {
	for c := range e.board.All() {
		if e.IsMoveLegal(c, p) {
			return true
		}
	}
	return false
}

func (e *Engine) gameOver() bool {
	if e.passes >= 2 {
		return true
	}
	return !e.hasLegalMoves(e.turn) && !e.hasLegalMoves(e.turn.Opponent())
}

// IsGameOver reports whether two non-move plies happened in a row or neither
// player can move.
func (e *Engine) IsGameOver() (bool, error) {
	if !e.started {
		return false, ErrNotStarted
	}
	return e.gameOver(), nil
}

// Score counts the cells owned by p.
func (e *Engine) Score(p Player) (int, error) {
	if !e.started {
		return 0, ErrNotStarted
	}
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayer, int(p))
	}
	return e.board.Count(p), nil
}

// LegalMoves is AvailableMoves with the argument checks: it fails before the
// game starts and for anything but Player1 or Player2.
func (e *Engine) LegalMoves(p Player) ([]Coordinate, error) {
	if !e.started {
		return nil, ErrNotStarted
	}
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayer, int(p))
	}
	return e.AvailableMoves(p), nil
}

// AvailableMoves returns p's legal moves in canonical scan order. It is empty
// before the game starts and for an invalid player.
func (e *Engine) AvailableMoves(p Player) []Coordinate {
	if !e.started {
		return nil
	}
	var moves []Coordinate
	for c := range e.board.All() {
		if e.IsMoveLegal(c, p) {
			moves = append(moves, c)
		}
	}
	return moves
}

// CellsFlipped returns how many opponent cells p would capture by playing c,
// or 0 when the move is illegal. It does not depend on whose turn it is.
func (e *Engine) CellsFlipped(c Coordinate, p Player) int {
	if !e.IsMoveLegal(c, p) {
		return 0
	}
	flipped := 0
	for _, direction := range e.topology.Directions() {
		if !e.hasLine(c, direction, p) {
			continue
		}
		for current := c.Add(direction); e.board.Owner(current) != p; current = current.Add(direction) {
			flipped++
		}
	}
	return flipped
}

// Clone returns an independent copy of the board and turn state. Observers
// are not copied.
func (e *Engine) Clone() *Engine {
	clone := &Engine{
		topology:   e.topology,
		sideLength: e.sideLength,
		turn:       e.turn,
		passes:     e.passes,
		started:    e.started,
		observers:  make(map[Player]Observer),
	}
	if e.board != nil {
		clone.board = e.board.Copy()
	}
	return clone
}

// Board returns a snapshot of the board.
func (e *Engine) Board() *Board {
	if e.board == nil {
		return NewBoard(nil)
	}
	return e.board.Copy()
}

func (e *Engine) SideLength() int {
	return e.sideLength
}

func (e *Engine) CurrentTurn() Player {
	return e.turn
}

func (e *Engine) Topology() Topology {
	return e.topology
}

// Subscribe registers the observer notified when p holds the turn.
func (e *Engine) Subscribe(p Player, o Observer) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, int(p))
	}
	if _, ok := e.observers[p]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateObserver, p)
	}
	e.observers[p] = o
	return nil
}

func (e *Engine) notifyTurn() {
	if o, ok := e.observers[e.turn]; ok {
		o.OnTurn()
	}
}
