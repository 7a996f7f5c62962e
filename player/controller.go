package player

import (
	"errors"
	"fmt"
	"reversi/game"

	"github.com/rs/zerolog/log"
)

// Game is what a controller needs from a game: the read-only view plus the
// mutating calls.
type Game interface {
	game.ReadOnly
	ApplyMove(c game.Coordinate, p game.Player) error
	Pass(p game.Player) error
	Subscribe(p game.Player, o game.Observer) error
}

// View is whatever shows the game to a player.
type View interface {
	Display()
	Message(msg string)
}

// Controller connects one player to the game and to that player's view. It
// observes the game, and computer players move as soon as they are notified.
type Controller struct {
	game          Game
	player        *Player
	view          View
	schedule      func(func())
	gameOverShown bool
}

type ControllerOption func(*Controller)

// WithScheduler makes computer players search a snapshot of the game on their
// own goroutine. The chosen move is handed to schedule, which must run it on
// the goroutine that owns the game.
func WithScheduler(schedule func(func())) ControllerOption {
	return func(c *Controller) {
		c.schedule = schedule
	}
}

func NewController(g Game, p *Player, v View, opts ...ControllerOption) (*Controller, error) {
	c := &Controller{
		game:   g,
		player: p,
		view:   v,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := g.Subscribe(p.Number, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) Player() *Player {
	return c.player
}

// OnTurn is called by the game when this controller's player holds the turn.
func (c *Controller) OnTurn() {
	over, err := c.game.IsGameOver()
	if err != nil {
		return
	}
	if over {
		c.view.Display()
		c.showGameOver()
		return
	}

	if c.player.IsHuman() {
		c.view.Message(fmt.Sprintf("It is your turn player %d", c.player.Number))
		c.view.Display()
		return
	}

	c.view.Display()
	if c.schedule == nil {
		move, err := c.player.Play(c.game)
		c.finish(move, err)
		return
	}
	snapshot := c.game.Clone()
	go func() {
		move, err := c.player.Play(snapshot)
		c.schedule(func() { c.finish(move, err) })
	}()
}

func (c *Controller) finish(move game.Coordinate, err error) {
	if err != nil || move == nil {
		log.Debug().Msgf("%v has no move (%v), passing", c.player, err)
		c.Pass()
		return
	}
	if err := c.game.ApplyMove(move, c.player.Number); err != nil {
		log.Warn().Msgf("%v chose %v which was rejected: %v", c.player, move, err)
		c.Pass()
		return
	}
	log.Debug().Msgf("%v played %v", c.player, move)
	c.afterAction()
}

// Move plays c for this controller's player.
func (c *Controller) Move(coord game.Coordinate) {
	err := c.game.ApplyMove(coord, c.player.Number)
	if err != nil {
		c.reject(err)
		return
	}
	log.Debug().Msgf("%v played %v", c.player, coord)
	c.afterAction()
}

// Pass gives up this controller's player's turn.
func (c *Controller) Pass() {
	err := c.game.Pass(c.player.Number)
	if err != nil {
		c.reject(err)
		return
	}
	log.Debug().Msgf("%v passed", c.player)
	c.afterAction()
}

// Hint returns how many cells coord would flip, or -1 when it is not this
// player's turn.
func (c *Controller) Hint(coord game.Coordinate) int {
	if c.game.CurrentTurn() != c.player.Number {
		return -1
	}
	return c.game.CellsFlipped(coord, c.player.Number)
}

func (c *Controller) reject(err error) {
	switch {
	case errors.Is(err, game.ErrGameOver):
		c.showGameOver()
	case errors.Is(err, game.ErrState):
		c.view.Message(fmt.Sprintf("Not your turn player %d", c.player.Number))
	default:
		c.view.Message(fmt.Sprintf("Illegal move for player %d", c.player.Number))
	}
}

func (c *Controller) afterAction() {
	c.view.Display()
	if over, _ := c.game.IsGameOver(); over {
		c.showGameOver()
	}
}

func (c *Controller) showGameOver() {
	if c.gameOverShown {
		return
	}
	c.gameOverShown = true
	c.view.Message(Outcome(c.game))
}

// Outcome describes the result of a finished game.
func Outcome(m game.ReadOnly) string {
	winner := Winner(m)
	if winner == game.NoPlayer {
		return "Tie!"
	}
	return fmt.Sprintf("Player %d wins!", int(winner))
}

// Winner returns the player with more cells, or NoPlayer on a tie.
func Winner(m game.ReadOnly) game.Player {
	score1, _ := m.Score(game.Player1)
	score2, _ := m.Score(game.Player2)
	switch {
	case score1 > score2:
		return game.Player1
	case score2 > score1:
		return game.Player2
	default:
		return game.NoPlayer
	}
}
