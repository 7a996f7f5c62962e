package game

import "iter"

// Board is an ordered mapping from Coordinate to Cell. The key set and its
// insertion order are fixed when the board is built; only owners change.
// The insertion order is the canonical scan order.
type Board struct {
	keys  []Coordinate // Shared between copies, never mutated after build
	index map[Coordinate]int
	cells []Cell
}

// NewBoard builds a board with every coordinate empty, in the given order.
// Duplicate coordinates keep their first position.
func NewBoard(coords []Coordinate) *Board {
	b := &Board{
		keys:  make([]Coordinate, 0, len(coords)),
		index: make(map[Coordinate]int, len(coords)),
	}
	for _, c := range coords {
		if _, ok := b.index[c]; ok {
			continue
		}
		b.index[c] = len(b.keys)
		b.keys = append(b.keys, c)
	}
	b.cells = make([]Cell, len(b.keys))
	return b
}

func (b *Board) Len() int {
	return len(b.keys)
}

func (b *Board) Contains(c Coordinate) bool {
	_, ok := b.index[c]
	return ok
}

// Get returns the cell at c and whether c is on the board.
func (b *Board) Get(c Coordinate) (Cell, bool) {
	i, ok := b.index[c]
	if !ok {
		return EmptyCell, false
	}
	return b.cells[i], true
}

// Owner returns the owner at c, or NoPlayer when c is empty or off the board.
func (b *Board) Owner(c Coordinate) Player {
	cell, _ := b.Get(c)
	return cell.Owner
}

func (b *Board) set(c Coordinate, cell Cell) {
	i, ok := b.index[c]
	if !ok {
		panic(ErrOffBoard)
	}
	b.cells[i] = cell
}

// Coordinates returns the keys in canonical scan order.
func (b *Board) Coordinates() []Coordinate {
	keys := make([]Coordinate, len(b.keys))
	copy(keys, b.keys)
	return keys
}

// All iterates the board in canonical scan order.
func (b *Board) All() iter.Seq2[Coordinate, Cell] {
	return func(yield func(Coordinate, Cell) bool) {
		for i, c := range b.keys {
			if !yield(c, b.cells[i]) {
				return
			}
		}
	}
}

// Count returns how many cells p owns.
func (b *Board) Count(p Player) int {
	n := 0
	for _, cell := range b.cells {
		if cell.Owner == p {
			n++
		}
	}
	return n
}

// Copy returns an independent board with the same keys, order and owners.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		keys:  b.keys,
		index: b.index,
		cells: cells,
	}
}

// Equal reports whether both boards hold the same keys in the same order with
// the same owners.
func (b *Board) Equal(other *Board) bool {
	if other == nil || len(b.keys) != len(other.keys) {
		return false
	}
	for i, c := range b.keys {
		if other.keys[i] != c || other.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}
