package gamemaster

import (
	"context"
	"reversi/game"
	"reversi/player"
	"reversi/searcher"
	"reversi/strategy"
	"testing"

	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, topology game.Topology, sideLength int) *game.Engine {
	t.Helper()
	e := game.NewEngine(topology)
	require.NoError(t, e.StartGame(sideLength, game.NumPlayers), "Game should start")
	return e
}

func TestLocalRun(t *testing.T) {
	t.Run("plays a game to the end", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 3)
		players := [2]*player.Player{
			{Number: game.Player1, Kind: "capturemaxcells", Strategy: strategy.CaptureMaxCellsThisMove{}},
			{Number: game.Player2, Kind: "minimax", Strategy: searcher.NewMiniMax(3,
				searcher.WithOpponentModel(strategy.CaptureMaxCellsThisMove{}), searcher.WithMetrics())},
		}
		var updates []Update

		winner, gameMetric, moveMetrics, err := NewLocal(e, players, WithUpdates(func(u Update) {
			updates = append(updates, u)
		})).Run(context.Background())

		require.NoError(t, err)
		over, _ := e.IsGameOver()
		require.True(t, over, "Game should be over")
		require.Equal(t, player.Winner(e), winner, "Winner should be the player with more cells")
		require.Equal(t, game.Player1, gameMetric.StartingPlayer)
		require.Len(t, updates, len(moveMetrics), "One update per ply")
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves+gameMetric.Passes, "Every ply should be a move or a pass")
		score1, _ := e.Score(game.Player1)
		require.Equal(t, score1, gameMetric.Scores[0])

		searched := false
		for _, m := range moveMetrics {
			if m.Player == game.Player2 && !m.Passed {
				require.Equal(t, 3, m.Depth, "Minimax moves should carry their search metric")
				searched = true
			}
		}
		require.True(t, searched, "Minimax should have moved at least once")
		require.Positive(t, gameMetric.MeanNodes, "Search statistics should be summarized")
	})

	t.Run("stops at the turn limit", func(t *testing.T) {
		e := newGame(t, game.Square{}, 8)
		players := [2]*player.Player{
			{Number: game.Player1, Kind: "randomvalidmove", Strategy: strategy.NewRandomValidMove(1)},
			{Number: game.Player2, Kind: "randomvalidmove", Strategy: strategy.NewRandomValidMove(2)},
		}

		_, gameMetric, moveMetrics, err := NewLocal(e, players, WithMaxTurns(4)).Run(context.Background())

		require.NoError(t, err)
		require.Len(t, moveMetrics, 4, "Only 4 plies should be played")
		require.Equal(t, 4, gameMetric.TotalMoves)
		over, _ := e.IsGameOver()
		require.False(t, over, "Game should still be going")
	})

	t.Run("a nil move is a pass", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 3)
		passer := strategy.Func(func(m game.ReadOnly, p game.Player) (game.Coordinate, error) {
			return nil, nil
		})
		players := [2]*player.Player{
			{Number: game.Player1, Kind: "passer", Strategy: passer},
			{Number: game.Player2, Kind: "passer", Strategy: passer},
		}

		winner, gameMetric, moveMetrics, err := NewLocal(e, players).Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, game.NoPlayer, winner, "Nobody moved so the game is a tie")
		require.Len(t, moveMetrics, 2, "Two passes should end the game")
		require.Equal(t, 2, gameMetric.Passes)
		require.Zero(t, gameMetric.TotalMoves)
	})

	t.Run("humans cannot be driven", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 3)
		players := [2]*player.Player{
			{Number: game.Player1, Kind: player.Human},
			{Number: game.Player2, Kind: "goforcorners", Strategy: strategy.GoForCorners{}},
		}

		_, _, _, err := NewLocal(e, players).Run(context.Background())

		require.ErrorIs(t, err, player.ErrHumanPlayer)
	})

	t.Run("unstarted games are rejected", func(t *testing.T) {
		players := [2]*player.Player{
			{Number: game.Player1, Kind: "goforcorners", Strategy: strategy.GoForCorners{}},
			{Number: game.Player2, Kind: "goforcorners", Strategy: strategy.GoForCorners{}},
		}

		_, _, _, err := NewLocal(game.NewEngine(game.Hexagon{}), players).Run(context.Background())

		require.ErrorIs(t, err, game.ErrNotStarted)
	})

	t.Run("a cancelled context stops the game", func(t *testing.T) {
		e := newGame(t, game.Hexagon{}, 4)
		players := [2]*player.Player{
			{Number: game.Player1, Kind: "goforcorners", Strategy: strategy.GoForCorners{}},
			{Number: game.Player2, Kind: "goforcorners", Strategy: strategy.GoForCorners{}},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, moveMetrics, err := NewLocal(e, players).Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, moveMetrics, "No ply should be played")
	})

	t.Run("seats must match player numbers", func(t *testing.T) {
		players := [2]*player.Player{
			{Number: game.Player2, Kind: "goforcorners", Strategy: strategy.GoForCorners{}},
			{Number: game.Player1, Kind: "goforcorners", Strategy: strategy.GoForCorners{}},
		}

		require.Panics(t, func() { NewLocal(game.NewEngine(game.Hexagon{}), players) })
	})
}
