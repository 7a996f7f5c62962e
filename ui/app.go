package ui

import (
	"reversi/game"
	"reversi/player"
	"reversi/view"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

// Layout puts the board beside its info panel with the status line below.
func Layout(b *Board) *tview.Flex {
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(b.Box, 0, 1, true)
	boardRow.AddItem(b.info, 28, 0, false)

	frame := tview.NewFlex().SetDirection(tview.FlexRow)
	frame.AddItem(boardRow, 0, 1, true)
	frame.AddItem(b.status, 2, 0, false)
	return frame
}

// Run starts the game on g and blocks until the user quits. Computer players
// search in the background and their moves are applied on the event loop.
func Run(g *game.Engine, sideLength int, players [2]*player.Player, symbols view.Symbols) error {
	app := tview.NewApplication()
	board := NewBoard(g, symbols)
	schedule := func(f func()) {
		app.QueueUpdateDraw(f)
	}

	for _, p := range players {
		c, err := player.NewController(g, p, board, player.WithScheduler(schedule))
		if err != nil {
			return err
		}
		board.Attach(c)
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}
		return event
	})

	if err := g.StartGame(sideLength, game.NumPlayers); err != nil {
		return err
	}
	board.Display()
	log.Info().Msgf("Starting %s game, side %d", g.Topology().Name(), sideLength)

	return app.SetRoot(Layout(board), true).Run()
}
