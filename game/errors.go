package game

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the engine wraps exactly one of these.
var (
	ErrState    = errors.New("state error")
	ErrArgument = errors.New("argument error")
	ErrMove     = errors.New("move error")
)

var (
	ErrNotStarted        = fmt.Errorf("%w: the game has not started yet", ErrState)
	ErrAlreadyStarted    = fmt.Errorf("%w: the game has already started", ErrState)
	ErrGameOver          = fmt.Errorf("%w: the game is over", ErrState)
	ErrOutOfTurn         = fmt.Errorf("%w: not your turn", ErrState)
	ErrOffBoard          = fmt.Errorf("%w: not a valid coordinate", ErrArgument)
	ErrInvalidSideLength = fmt.Errorf("%w: invalid side length", ErrArgument)
	ErrInvalidNumPlayers = fmt.Errorf("%w: there must be 2 players in the game", ErrArgument)
	ErrInvalidPlayer     = fmt.Errorf("%w: player does not exist in game", ErrArgument)
	ErrDuplicateObserver = fmt.Errorf("%w: player already has an observer", ErrArgument)
	ErrCoordinateKind    = fmt.Errorf("%w: cannot add coordinates of different kinds", ErrArgument)
	ErrIllegalMove       = fmt.Errorf("%w: not a valid move", ErrMove)
)
