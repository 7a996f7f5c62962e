package view

import (
	"reversi/game"
	"strings"
)

// Symbols are the runes drawn for each cell owner.
type Symbols struct {
	Empty   rune
	Player1 rune
	Player2 rune
}

var DefaultSymbols = Symbols{Empty: '_', Player1: 'X', Player2: 'O'}

// Of returns the symbol for owner.
func (s Symbols) Of(owner game.Player) rune {
	switch owner {
	case game.Player1:
		return s.Player1
	case game.Player2:
		return s.Player2
	default:
		return s.Empty
	}
}

// Text renders a game as plain text, one display row per line.
type Text struct {
	model   game.ReadOnly
	symbols Symbols
}

type TextOption func(*Text)

func WithSymbols(symbols Symbols) TextOption {
	return func(t *Text) {
		t.symbols = symbols
	}
}

func NewText(m game.ReadOnly, opts ...TextOption) *Text {
	t := &Text{model: m, symbols: DefaultSymbols}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Text) String() string {
	var sb strings.Builder
	board := t.model.Board()
	for _, row := range t.model.Topology().Rows(t.model.SideLength()) {
		sb.WriteString(strings.Repeat(" ", row.Indent))
		for _, c := range row.Cells {
			sb.WriteRune(t.symbols.Of(board.Owner(c)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
