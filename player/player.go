package player

import (
	"errors"
	"fmt"
	"reversi/game"
	"reversi/searcher"
	"reversi/strategy"
	"time"
)

var (
	ErrUnknownPlayerType = errors.New("unknown player type")
	ErrHumanPlayer       = errors.New("human players choose their own moves")
)

const Human = "human"

// Kinds lists every player type New accepts.
var Kinds = []string{
	Human,
	"minimax",
	"avoidcornerneighbor",
	"capturemaxcells",
	"checkcornersfirst",
	"goforcorners",
	"randomvalidmove",
}

// Player is one seat at the table. A nil Strategy means a human chooses.
type Player struct {
	Number   game.Player
	Kind     string
	Strategy strategy.Strategy
}

func (p *Player) IsHuman() bool {
	return p.Strategy == nil
}

// Play asks the strategy for a move. A nil move means the player passes.
func (p *Player) Play(m game.ReadOnly) (game.Coordinate, error) {
	if p.IsHuman() {
		return nil, ErrHumanPlayer
	}
	return p.Strategy.ChooseMove(m, p.Number)
}

func (p *Player) String() string {
	return fmt.Sprintf("%v (%s)", p.Number, p.Kind)
}

// Options tune the computer players built by New.
type Options struct {
	Depth    int
	Opponent string // Opponent model of a minimax player, GoForCorners when empty
	Timeout  time.Duration
	Seed     uint64
	Metrics  bool
}

// New builds a player of the given kind.
func New(kind string, number game.Player, opts Options) (*Player, error) {
	if !number.Valid() {
		return nil, fmt.Errorf("%w: %d", game.ErrInvalidPlayer, int(number))
	}
	if kind == Human {
		return &Player{Number: number, Kind: kind}, nil
	}
	s, err := NewStrategy(kind, opts)
	if err != nil {
		return nil, err
	}
	return &Player{Number: number, Kind: kind, Strategy: s}, nil
}

// NewStrategy maps a player type name to its strategy.
func NewStrategy(kind string, opts Options) (strategy.Strategy, error) {
	switch kind {
	case "minimax":
		if opts.Depth < 0 {
			return nil, fmt.Errorf("%w: depth must be 0 or more, got %d", game.ErrArgument, opts.Depth)
		}
		options := []searcher.Option{searcher.WithTimeout(opts.Timeout)}
		if opts.Opponent != "" {
			if opts.Opponent == "minimax" {
				return nil, fmt.Errorf("%w: minimax cannot model the opponent", ErrUnknownPlayerType)
			}
			opponent, err := NewStrategy(opts.Opponent, opts)
			if err != nil {
				return nil, err
			}
			options = append(options, searcher.WithOpponentModel(opponent))
		}
		if opts.Metrics {
			options = append(options, searcher.WithMetrics())
		}
		return searcher.NewMiniMax(opts.Depth, options...), nil
	case "avoidcornerneighbor":
		return strategy.AvoidCornerNeighbor{}, nil
	case "capturemaxcells":
		return strategy.CaptureMaxCellsThisMove{}, nil
	case "checkcornersfirst":
		return strategy.CheckCornersFirst{}, nil
	case "goforcorners":
		return strategy.GoForCorners{}, nil
	case "randomvalidmove":
		return strategy.NewRandomValidMove(opts.Seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayerType, kind)
	}
}
