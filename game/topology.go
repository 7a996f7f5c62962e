package game

import (
	"fmt"
	"reversi/utils"
)

// Topology is a board shape: its layout generator and its direction vectors.
type Topology interface {
	Name() string
	ValidateSideLength(sideLength int) error
	// InitialLayout builds the fixed-size board with the starting ring placed.
	InitialLayout(sideLength int) *Board
	Directions() []Coordinate
	// Rows groups the board's coordinates into display rows.
	Rows(sideLength int) []Row
}

// Row is one line of a board display.
type Row struct {
	Indent int
	Cells  []Coordinate
}

// Hexagon is a hexagonal board addressed by cubic coordinates.
type Hexagon struct{}

func (Hexagon) Name() string {
	return "hexagon"
}

func (Hexagon) ValidateSideLength(sideLength int) error {
	if sideLength < 3 {
		return fmt.Errorf("%w: side length must be greater than 2 for a hexagon board, got %d", ErrInvalidSideLength, sideLength)
	}
	return nil
}

func (Hexagon) InitialLayout(sideLength int) *Board {
	var coords []Coordinate
	for r := -sideLength + 1; r < sideLength; r++ {
		for q := -sideLength + 1; q < sideLength; q++ {
			for s := -sideLength + 1; s < sideLength; s++ {
				if q+s+r == 0 {
					coords = append(coords, Cubic{q, s, r})
				}
			}
		}
	}
	b := NewBoard(coords)

	owner := Player1
	for _, c := range (Cubic{}).Neighbors() {
		b.set(c, Cell{Owner: owner})
		owner = owner.Opponent()
	}
	return b
}

func (Hexagon) Directions() []Coordinate {
	return Cubic{}.Directions()
}

func (Hexagon) Rows(sideLength int) []Row {
	rows := make([]Row, 0, 2*sideLength-1)
	for r := -sideLength + 1; r < sideLength; r++ {
		row := Row{Indent: utils.Abs(r)}
		for q := -sideLength + 1; q < sideLength; q++ {
			s := -q - r
			if s > -sideLength && s < sideLength {
				row.Cells = append(row.Cells, Cubic{q, s, r})
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Square is a square board addressed by Cartesian coordinates.
type Square struct{}

func (Square) Name() string {
	return "square"
}

func (Square) ValidateSideLength(sideLength int) error {
	if sideLength < 4 || sideLength%2 != 0 {
		return fmt.Errorf("%w: side length must be even and at least 4 for a square board, got %d", ErrInvalidSideLength, sideLength)
	}
	return nil
}

func (Square) InitialLayout(sideLength int) *Board {
	coords := make([]Coordinate, 0, sideLength*sideLength)
	for x := 0; x < sideLength; x++ {
		for y := 0; y < sideLength; y++ {
			coords = append(coords, Cartesian{x, y})
		}
	}
	b := NewBoard(coords)

	// Clockwise from the upper-left of center
	half := sideLength / 2
	start := []Cartesian{
		{half - 1, half - 1},
		{half, half - 1},
		{half, half},
		{half - 1, half},
	}
	owner := Player1
	for _, c := range start {
		b.set(c, Cell{Owner: owner})
		owner = owner.Opponent()
	}
	return b
}

func (Square) Directions() []Coordinate {
	return Cartesian{}.Directions()
}

func (Square) Rows(sideLength int) []Row {
	rows := make([]Row, 0, sideLength)
	for y := 0; y < sideLength; y++ {
		row := Row{}
		for x := 0; x < sideLength; x++ {
			row.Cells = append(row.Cells, Cartesian{x, y})
		}
		rows = append(rows, row)
	}
	return rows
}

// TopologyByName returns the topology registered under name.
func TopologyByName(name string) (Topology, error) {
	switch name {
	case "hexagon", "hex":
		return Hexagon{}, nil
	case "square":
		return Square{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown game type %q", ErrArgument, name)
	}
}
