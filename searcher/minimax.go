package searcher

import (
	"context"
	"fmt"
	"reversi/game"
	"reversi/metrics"
	"reversi/strategy"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(m *MiniMax)

// MiniMax searches every line of play up to a fixed depth, assuming the
// opponent plays like the opponent model. At the horizon each side plays one
// more heuristic move: the opponent model for the opponent, the fallback for
// the searching player.
//
// A MiniMax runs one search at a time.
type MiniMax struct {
	depth    int
	opponent strategy.Strategy
	fallback strategy.Strategy
	timeout  time.Duration
	metrics  metrics.Collector
}

func WithOpponentModel(s strategy.Strategy) Option {
	return func(m *MiniMax) {
		if s != nil {
			m.opponent = s
		}
	}
}

func WithFallback(s strategy.Strategy) Option {
	return func(m *MiniMax) {
		if s != nil {
			m.fallback = s
		}
	}
}

// WithTimeout bounds every search. A search that runs out of time plays the
// fallback strategy's move instead.
func WithTimeout(timeout time.Duration) Option {
	return func(m *MiniMax) {
		if timeout > 0 {
			m.timeout = timeout
		}
	}
}

func WithMetrics() Option {
	return func(m *MiniMax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMiniMax(depth int, options ...Option) *MiniMax {
	if depth < 0 {
		panic(fmt.Sprintf("Search depth must be 0 or more, got %d", depth))
	}
	m := &MiniMax{ // Default values
		depth:    depth,
		opponent: strategy.GoForCorners{},
		fallback: strategy.AvoidCornerNeighbor{},
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MiniMax) Depth() int {
	return m.depth
}

func (m *MiniMax) ChooseMove(model game.ReadOnly, p game.Player) (game.Coordinate, error) {
	move, _, err := m.Search(context.Background(), model, p)
	return move, err
}

// Search returns the move that maximizes p's margin over the opponent. It
// returns ctx's error when ctx is done before the search completes.
func (m *MiniMax) Search(ctx context.Context, model game.ReadOnly, p game.Player) (game.Coordinate, metrics.SearchMetric, error) {
	m.metrics.Start(m.depth)
	if len(model.AvailableMoves(p)) == 0 {
		return nil, m.metrics.Complete(), strategy.ErrNoLegalMove
	}

	searchCtx := ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	s := &search{
		ctx:      searchCtx,
		root:     p,
		maxDepth: m.depth,
		opponent: m.opponent,
		fallback: m.fallback,
		metrics:  m.metrics,
	}
	best, err := s.evaluate(model.Clone(), p, 0)
	if err != nil {
		if searchCtx.Err() == nil {
			return nil, m.metrics.Complete(), err
		}
		m.metrics.Cancel()
		if ctx.Err() != nil {
			return nil, m.metrics.Complete(), ctx.Err()
		}
		log.Warn().Msgf("Search for %v ran out of time after %v, falling back", p, m.timeout)
		move, err := m.fallback.ChooseMove(model, p)
		return move, m.metrics.Complete(), err
	}
	metric := m.metrics.Complete()

	log.Debug().Msgf("Minimax for %v chose %v with margin %d at depth %d", p, best.move, best.value, m.depth)
	return best.move, metric, nil
}

type search struct {
	ctx      context.Context
	root     game.Player
	maxDepth int
	opponent strategy.Strategy
	fallback strategy.Strategy
	metrics  metrics.Collector
}

type outcome struct {
	move  game.Coordinate
	value int // Root player's margin
}

type child struct {
	move  game.Coordinate
	state *game.Engine
}

func (s *search) evaluate(state *game.Engine, turn game.Player, depth int) (outcome, error) {
	if err := s.ctx.Err(); err != nil {
		return outcome{}, err
	}

	moves := state.AvailableMoves(turn)
	if depth >= s.maxDepth {
		s.metrics.AddHorizon()
		return s.horizon(state, turn, moves)
	}

	if len(moves) == 0 {
		if len(state.AvailableMoves(turn.Opponent())) == 0 {
			s.metrics.AddTerminal()
			return outcome{value: margin(state, s.root)}, nil
		}
		// A pass uses up a ply without branching
		next, err := s.evaluate(state, turn.Opponent(), depth+1)
		return outcome{value: next.value}, err
	}

	s.metrics.AddNode()
	children, err := expand(state, turn, moves)
	if err != nil {
		return outcome{}, err
	}

	maximize := state.CurrentTurn() == s.root
	var best outcome
	for i, c := range children {
		next, err := s.evaluate(c.state, turn.Opponent(), depth+1)
		if err != nil {
			return outcome{}, err
		}
		if i == 0 || (maximize && next.value > best.value) || (!maximize && next.value < best.value) {
			best = outcome{move: c.move, value: next.value}
		}
	}
	return best, nil
}

// horizon plays one heuristic move for turn and scores the result.
func (s *search) horizon(state *game.Engine, turn game.Player, moves []game.Coordinate) (outcome, error) {
	if len(moves) == 0 {
		return outcome{value: margin(state, s.root)}, nil
	}

	heuristic := s.opponent
	if turn == s.root {
		heuristic = s.fallback
	}
	move, err := heuristic.ChooseMove(state, turn)
	if err != nil {
		return outcome{}, err
	}
	if move == nil {
		return outcome{value: margin(state, s.root)}, nil
	}

	clone := state.Clone()
	if err := clone.ApplyMove(move, turn); err != nil {
		return outcome{}, fmt.Errorf("horizon move %v for %v: %w", move, turn, err)
	}
	return outcome{move: move, value: margin(clone, s.root)}, nil
}

// expand plays every move on its own clone, in scan order.
func expand(state *game.Engine, turn game.Player, moves []game.Coordinate) ([]child, error) {
	children := make([]child, 0, len(moves))
	for _, move := range moves {
		clone := state.Clone()
		if err := clone.ApplyMove(move, turn); err != nil {
			return nil, fmt.Errorf("expanding %v for %v: %w", move, turn, err)
		}
		children = append(children, child{move: move, state: clone})
	}
	return children, nil
}

// margin is root's cell count minus its opponent's.
func margin(state game.ReadOnly, root game.Player) int {
	board := state.Board()
	return board.Count(root) - board.Count(root.Opponent())
}

var _ strategy.Strategy = (*MiniMax)(nil)
