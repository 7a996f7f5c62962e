// Package ui draws a Reversi game in the terminal with tview.
package ui

import (
	"fmt"
	"reversi/game"
	"reversi/player"
	"reversi/view"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Board is the game board control. It is the player.View of every seat it
// hosts, so it must only be used from the tview event goroutine.
type Board struct {
	Box         *tview.Box
	game        player.Game
	symbols     view.Symbols
	info        *tview.TextView
	status      *tview.TextView
	controllers []*player.Controller
	rows        []game.Row
	selRow      int
	selCol      int
	message     string
}

func NewBoard(g player.Game, symbols view.Symbols) *Board {
	b := &Board{
		Box:     tview.NewBox(),
		game:    g,
		symbols: symbols,
		info:    tview.NewTextView(),
		status:  tview.NewTextView(),
	}
	b.info.SetDynamicColors(true)
	b.info.SetBorder(true).SetTitle(" Reversi ")
	b.status.SetTextAlign(tview.AlignLeft)
	b.Box.SetBorder(true)
	b.Box.SetDrawFunc(b.draw)
	b.Box.SetInputCapture(b.handleKey)
	return b
}

// Attach registers the controller of a seat shown on this board.
func (b *Board) Attach(c *player.Controller) {
	b.controllers = append(b.controllers, c)
}

// Display refreshes the side panels and resets the cursor when the board
// layout is first known.
func (b *Board) Display() {
	if b.rows == nil && b.game.SideLength() > 0 {
		b.rows = b.game.Topology().Rows(b.game.SideLength())
		b.selRow = len(b.rows) / 2
		b.selCol = len(b.rows[b.selRow].Cells) / 2
	}
	b.refresh()
}

func (b *Board) Message(msg string) {
	b.message = msg
	b.refresh()
}

// Selected returns the coordinate under the cursor, or nil before the game
// starts.
func (b *Board) Selected() game.Coordinate {
	if b.rows == nil {
		return nil
	}
	return b.rows[b.selRow].Cells[b.selCol]
}

// MoveSelection moves the cursor by whole rows and cells, keeping it inside
// the board. Moving onto a shorter row clamps the cell.
func (b *Board) MoveSelection(dRow, dCol int) {
	if b.rows == nil {
		return
	}
	row := b.selRow + dRow
	if row < 0 || row >= len(b.rows) {
		return
	}
	col := b.selCol + dCol
	if col < 0 {
		col = 0
	}
	if col >= len(b.rows[row].Cells) {
		col = len(b.rows[row].Cells) - 1
	}
	b.selRow, b.selCol = row, col
}

// active returns the human controller who should receive key actions: the
// one holding the turn, or any human so that out-of-turn input is reported.
func (b *Board) active() *player.Controller {
	var fallback *player.Controller
	for _, c := range b.controllers {
		if !c.Player().IsHuman() {
			continue
		}
		if c.Player().Number == b.game.CurrentTurn() {
			return c
		}
		if fallback == nil {
			fallback = c
		}
	}
	return fallback
}

func (b *Board) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveSelection(-1, 0)
	case tcell.KeyDown:
		b.MoveSelection(1, 0)
	case tcell.KeyLeft:
		b.MoveSelection(0, -1)
	case tcell.KeyRight:
		b.MoveSelection(0, 1)
	case tcell.KeyEnter:
		if c := b.active(); c != nil && b.Selected() != nil {
			c.Move(b.Selected())
		}
	case tcell.KeyRune:
		switch event.Rune() {
		case 'p':
			if c := b.active(); c != nil {
				c.Pass()
			}
		case 'h':
			if c := b.active(); c != nil && b.Selected() != nil {
				if n := c.Hint(b.Selected()); n >= 0 {
					b.Message(fmt.Sprintf("%v flips %d", b.Selected(), n))
				} else {
					b.Message(fmt.Sprintf("Not your turn player %d", c.Player().Number))
				}
			}
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

func (b *Board) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	// Inside the border
	x, y, width, height = x+1, y+1, width-2, height-2
	if b.rows == nil {
		return x, y, width, height
	}
	board := b.game.Board()
	style := tcell.StyleDefault
	for i, row := range b.rows {
		if i >= height {
			break
		}
		for j, c := range row.Cells {
			cellStyle := style
			if i == b.selRow && j == b.selCol {
				cellStyle = style.Reverse(true)
			}
			col := x + 1 + row.Indent + 2*j
			if col >= x+width {
				break
			}
			screen.SetContent(col, y+i, b.symbols.Of(board.Owner(c)), nil, cellStyle)
		}
	}
	return x, y, width, height
}

func (b *Board) refresh() {
	if b.game.SideLength() == 0 {
		return
	}
	board := b.game.Board()
	text := fmt.Sprintf("%s, side %d\n\n", b.game.Topology().Name(), b.game.SideLength())
	for _, p := range []game.Player{game.Player1, game.Player2} {
		marker := " "
		if p == b.game.CurrentTurn() {
			marker = ">"
		}
		text += fmt.Sprintf("%s %c %v: %d\n", marker, b.symbols.Of(p), p, board.Count(p))
	}
	for _, c := range b.controllers {
		text += fmt.Sprintf("\n%v", c.Player())
	}
	b.info.SetText(text)
	b.status.SetText(fmt.Sprintf(" %s\n ←↑↓→ move  ⏎ play  p pass  h hint  q quit", b.message))
}
