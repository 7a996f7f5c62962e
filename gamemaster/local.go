package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"reversi/game"
	"reversi/metrics"
	"reversi/player"
	"reversi/strategy"
	"time"

	"github.com/rs/zerolog/log"
)

const MaxTurns = 500

// Searcher is a strategy that reports how its search went.
type Searcher interface {
	Search(ctx context.Context, m game.ReadOnly, p game.Player) (game.Coordinate, metrics.SearchMetric, error)
}

// Update is published after every ply.
type Update struct {
	Step   int
	Player game.Player
	Move   game.Coordinate // Nil on a pass
	Game   game.ReadOnly
}

type Option func(l *Local)

func WithMaxTurns(turns int) Option {
	return func(l *Local) {
		if turns > 0 {
			l.maxTurns = turns
		}
	}
}

// WithUpdates registers a callback run after every ply.
func WithUpdates(onUpdate func(Update)) Option {
	return func(l *Local) {
		l.onUpdate = onUpdate
	}
}

// Local plays two computer players against each other on one engine.
type Local struct {
	engine   *game.Engine
	players  [game.NumPlayers]*player.Player
	maxTurns int
	onUpdate func(Update)
}

func NewLocal(engine *game.Engine, players [game.NumPlayers]*player.Player, options ...Option) *Local {
	for i, p := range players {
		if p == nil || p.Number != game.Player(i+1) {
			panic(fmt.Sprintf("seat %d must hold player %d", i, i+1))
		}
	}
	l := &Local{
		engine:   engine,
		players:  players,
		maxTurns: MaxTurns,
		onUpdate: func(Update) {},
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Run plays a started game until it is over or the turn limit is reached.
func (l *Local) Run(ctx context.Context) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	for _, p := range l.players {
		if p.IsHuman() {
			return game.NoPlayer, metrics.GameMetric{}, nil, fmt.Errorf("%w: %v", player.ErrHumanPlayer, p)
		}
	}
	if _, err := l.engine.IsGameOver(); err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}

	gameMetric := metrics.GameMetric{
		StartingPlayer: l.engine.CurrentTurn(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%v is starting", l.players[gameMetric.StartingPlayer-1])

	var moveMetrics []metrics.MoveMetric
	for step := 0; step < l.maxTurns; step++ {
		if over, _ := l.engine.IsGameOver(); over {
			break
		}
		if err := ctx.Err(); err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, err
		}

		current := l.players[l.engine.CurrentTurn()-1]
		move, searchMetric, err := l.choose(ctx, current)
		if err != nil && !errors.Is(err, strategy.ErrNoLegalMove) {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("%v failed to choose a move: %w", current, err)
		}

		moveMetric := metrics.MoveMetric{
			Step:         step,
			Player:       current.Number,
			Move:         move,
			SearchMetric: searchMetric,
		}
		if move == nil {
			moveMetric.Passed = true
			err = l.engine.Pass(current.Number)
		} else {
			err = l.engine.ApplyMove(move, current.Number)
		}
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("%v could not play %v: %w", current, move, err)
		}
		log.Debug().Msgf("Step %d: %v played %v", step, current, move)

		moveMetrics = append(moveMetrics, moveMetric)
		l.onUpdate(Update{Step: step, Player: current.Number, Move: move, Game: l.engine})
	}

	winner := player.Winner(l.engine)
	gameMetric.Winner = winner
	for i, p := range l.players {
		gameMetric.Scores[i], _ = l.engine.Score(p.Number)
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	metrics.Summarize(&gameMetric, moveMetrics)

	if over, _ := l.engine.IsGameOver(); !over {
		log.Warn().Msgf("Stopped after %d turns without finishing the game", l.maxTurns)
	}
	log.Info().Msgf("Game over after %d moves: %s (%d to %d)",
		len(moveMetrics), player.Outcome(l.engine), gameMetric.Scores[0], gameMetric.Scores[1])
	return winner, gameMetric, moveMetrics, nil
}

func (l *Local) choose(ctx context.Context, p *player.Player) (game.Coordinate, metrics.SearchMetric, error) {
	if s, ok := p.Strategy.(Searcher); ok {
		return s.Search(ctx, l.engine, p.Number)
	}
	move, err := p.Play(l.engine)
	return move, metrics.SearchMetric{}, err
}
