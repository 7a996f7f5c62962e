package searcher

import (
	"context"
	"reversi/game"
	"reversi/strategy"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, topology game.Topology, sideLength int) *game.Engine {
	t.Helper()
	e := game.NewEngine(topology)
	require.NoError(t, e.StartGame(sideLength, game.NumPlayers), "Game should start")
	return e
}

func playChoice(t *testing.T, e *game.Engine, s strategy.Strategy, p game.Player) game.Coordinate {
	t.Helper()
	move, err := s.ChooseMove(e, p)
	require.NoError(t, err, "%v should find a move", p)
	require.NoError(t, e.ApplyMove(move, p), "Chosen move %v should be legal", move)
	return move
}

func TestNewMiniMax(t *testing.T) {
	require.Panics(t, func() { NewMiniMax(-1) }, "Negative depth should panic")

	m := NewMiniMax(2)
	require.Equal(t, 2, m.Depth())
	require.Equal(t, strategy.GoForCorners{}, m.opponent, "Default opponent model should go for corners")
	require.Equal(t, strategy.AvoidCornerNeighbor{}, m.fallback, "Default fallback should avoid corner neighbors")
}

func TestMiniMaxChooseMove(t *testing.T) {
	t.Run("depth 0 plays the root fallback rather than the opponent model", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 4)
		playChoice(t, e, strategy.CaptureMaxCellsThisMove{}, game.Player1)
		m := NewMiniMax(0, WithOpponentModel(strategy.CaptureMaxCellsThisMove{}))

		got, err := m.ChooseMove(e, game.Player2)
		require.NoError(t, err)
		want, err := strategy.AvoidCornerNeighbor{}.ChooseMove(e, game.Player2)
		require.NoError(t, err)

		require.Equal(t, want, got, "Depth 0 should match the fallback strategy")
	})

	t.Run("depth 1 picks the best reply to the opponent model", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 4)
		playChoice(t, e, strategy.CaptureMaxCellsThisMove{}, game.Player1)
		m := NewMiniMax(1, WithOpponentModel(strategy.CaptureMaxCellsThisMove{}))

		move, err := m.ChooseMove(e, game.Player2)

		require.NoError(t, err)
		require.Equal(t, game.Cubic{Q: 2, S: 1, R: -3}, move)
	})

	t.Run("wins the end game on a small board", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 3)
		capture := strategy.CaptureMaxCellsThisMove{}
		m := NewMiniMax(3, WithOpponentModel(capture))

		playChoice(t, e, capture, game.Player1)
		playChoice(t, e, m, game.Player2)
		playChoice(t, e, capture, game.Player1)
		require.Equal(t, game.Cubic{Q: -1, S: 2, R: -1}, playChoice(t, e, m, game.Player2))
		playChoice(t, e, capture, game.Player1)
		playChoice(t, e, m, game.Player2)

		score1, _ := e.Score(game.Player1)
		score2, _ := e.Score(game.Player2)
		require.Greater(t, score2, score1, "Minimax should win")
		require.Equal(t, 8, score2, "Minimax should finish with 8 cells")
	})

	t.Run("square board", func(t *testing.T) {
		e := newGame(t, game.Square{}, 6)
		require.NoError(t, e.ApplyMove(game.Cartesian{X: 4, Y: 2}, game.Player1))
		m := NewMiniMax(1, WithOpponentModel(strategy.CaptureMaxCellsThisMove{}))

		move, err := m.ChooseMove(e, game.Player2)

		require.NoError(t, err)
		require.Equal(t, game.Cartesian{X: 2, Y: 1}, move)
	})

	t.Run("assumes the opponent picks the reply worst for the root player", func(t *testing.T) {
		capture := strategy.CaptureMaxCellsThisMove{}
		cases := []struct {
			name     string
			topology game.Topology
			side     int
			opening  game.Coordinate
			want     game.Coordinate
		}{
			// Maximizing at the opponent's nodes too would pick (-2, 1, 1)
			{"hexagon", game.Hexagon{}, 3, game.Cubic{Q: -1, S: 2, R: -1}, game.Cubic{Q: 2, S: -1, R: -1}},
			// and (3, 0) here
			{"square", game.Square{}, 4, game.Cartesian{X: 3, Y: 1}, game.Cartesian{X: 1, Y: 0}},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				e := newGame(t, c.topology, c.side)
				require.NoError(t, e.ApplyMove(c.opening, game.Player1))

				move, err := NewMiniMax(2, WithOpponentModel(capture)).ChooseMove(e, game.Player2)

				require.NoError(t, err)
				require.Equal(t, c.want, move, "Opponent nodes should minimize the root margin")
			})
		}
	})

	t.Run("a player without moves passes inside the tree", func(t *testing.T) {
		e := newGame(t, game.Square{}, 4)
		require.NoError(t, e.ApplyMove(game.Cartesian{X: 1, Y: 3}, game.Player1))
		require.NoError(t, e.ApplyMove(game.Cartesian{X: 2, Y: 3}, game.Player2))

		move, err := NewMiniMax(3, WithOpponentModel(strategy.CaptureMaxCellsThisMove{})).ChooseMove(e, game.Player1)

		// Scoring the pass as the end of the game would pick (3, 1)
		require.NoError(t, err)
		require.Equal(t, game.Cartesian{X: 3, Y: 3}, move, "Search should continue after a pass")
	})

	t.Run("search never touches the live game", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 4)
		before := e.Board()

		_, err := NewMiniMax(2).ChooseMove(e, game.Player1)

		require.NoError(t, err)
		require.True(t, before.Equal(e.Board()), "Board should be unchanged")
		require.Equal(t, game.Player1, e.CurrentTurn(), "Turn should be unchanged")
	})

	t.Run("no legal move is an error", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 3)
		for _, move := range []struct {
			c game.Coordinate
			p game.Player
		}{
			{game.Cubic{Q: 2, S: -1, R: -1}, game.Player1},
			{game.Cubic{Q: 1, S: 1, R: -2}, game.Player2},
			{game.Cubic{Q: -1, S: 2, R: -1}, game.Player1},
			{game.Cubic{Q: -2, S: 1, R: 1}, game.Player2},
			{game.Cubic{Q: -1, S: -1, R: 2}, game.Player1},
			{game.Cubic{Q: 1, S: -2, R: 1}, game.Player2},
		} {
			require.NoError(t, e.ApplyMove(move.c, move.p))
		}

		_, err := NewMiniMax(2).ChooseMove(e, game.Player1)

		require.ErrorIs(t, err, strategy.ErrNoLegalMove)
	})
}

func TestMiniMaxSearch(t *testing.T) {
	t.Run("counts nodes and horizons", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 4)
		m := NewMiniMax(1, WithMetrics())

		move, metric, err := m.Search(context.Background(), e, game.Player1)

		require.NoError(t, err)
		require.NotNil(t, move)
		require.Equal(t, 1, metric.Depth, "Depth should be recorded")
		require.Equal(t, 1, metric.Nodes, "Only the root should branch")
		require.Equal(t, len(e.AvailableMoves(game.Player1)), metric.Horizons, "Every root move should reach the horizon")
		require.False(t, metric.Cancelled, "Search should complete")
	})

	t.Run("a cancelled context stops the search", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 4)
		m := NewMiniMax(3, WithMetrics())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		move, metric, err := m.Search(ctx, e, game.Player1)

		require.ErrorIs(t, err, context.Canceled)
		require.Nil(t, move, "No move should be returned")
		require.True(t, metric.Cancelled, "Metric should flag the cancellation")
	})

	t.Run("running out of time falls back", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 4)
		slow := strategy.Func(func(m game.ReadOnly, p game.Player) (game.Coordinate, error) {
			time.Sleep(50 * time.Millisecond)
			return m.AvailableMoves(p)[0], nil
		})
		fallbackMove := e.AvailableMoves(game.Player1)[1]
		fallback := strategy.Func(func(m game.ReadOnly, p game.Player) (game.Coordinate, error) {
			return fallbackMove, nil
		})
		m := NewMiniMax(1, WithOpponentModel(slow), WithFallback(fallback), WithTimeout(10*time.Millisecond), WithMetrics())

		move, metric, err := m.Search(context.Background(), e, game.Player1)

		require.NoError(t, err, "Running out of time should not be an error")
		require.Equal(t, fallbackMove, move, "Timed out search should use the fallback move")
		require.True(t, metric.Cancelled, "Metric should flag the timeout")

		move, err = m.ChooseMove(e, game.Player1)
		require.NoError(t, err)
		require.Equal(t, fallbackMove, move, "ChooseMove should time out the same way")
	})
}

func TestMargin(t *testing.T) {
	e := newGame(t, game.Hexagon{}, 3)
	require.NoError(t, e.ApplyMove(game.Cubic{Q: 2, S: -1, R: -1}, game.Player1))

	require.Equal(t, 3, margin(e, game.Player1), "Player 1 should lead by 3")
	require.Equal(t, -3, margin(e, game.Player2), "Margin should be relative to the root")
}
