package game

import "fmt"

// Coordinate is an immutable board position. Implementations are comparable
// values so they can be used directly as map keys.
type Coordinate interface {
	// Neighbors returns the adjacent positions in direction order, whether or
	// not they lie on a board.
	Neighbors() []Coordinate
	// Directions returns the unit vectors of this coordinate's topology.
	Directions() []Coordinate
	// Add panics if other is a different kind of coordinate.
	Add(other Coordinate) Coordinate
	// Components returns the raw integer components.
	Components() []int
	String() string
}

// Cubic is a hexagonal position. Generated positions satisfy Q+S+R == 0.
type Cubic struct {
	Q, S, R int
}

var cubicDirections = []Cubic{
	{1, -1, 0}, {1, 0, -1}, {0, 1, -1},
	{-1, 1, 0}, {-1, 0, 1}, {0, -1, 1},
}

func (c Cubic) Neighbors() []Coordinate {
	neighbors := make([]Coordinate, 0, len(cubicDirections))
	for _, d := range cubicDirections {
		neighbors = append(neighbors, Cubic{c.Q + d.Q, c.S + d.S, c.R + d.R})
	}
	return neighbors
}

func (c Cubic) Directions() []Coordinate {
	directions := make([]Coordinate, 0, len(cubicDirections))
	for _, d := range cubicDirections {
		directions = append(directions, d)
	}
	return directions
}

func (c Cubic) Add(other Coordinate) Coordinate {
	o, ok := other.(Cubic)
	if !ok {
		panic(fmt.Errorf("%w: %v + %v", ErrCoordinateKind, c, other))
	}
	return Cubic{c.Q + o.Q, c.S + o.S, c.R + o.R}
}

func (c Cubic) Components() []int {
	return []int{c.Q, c.S, c.R}
}

func (c Cubic) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.Q, c.S, c.R)
}

// Cartesian is a square-grid position.
type Cartesian struct {
	X, Y int
}

var cartesianNeighbors = []Cartesian{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

var cartesianDirections = []Cartesian{
	{-1, 1}, {0, 1}, {1, 1}, {1, 0},
	{1, -1}, {0, -1}, {-1, -1}, {-1, 0},
}

func (c Cartesian) Neighbors() []Coordinate {
	neighbors := make([]Coordinate, 0, len(cartesianNeighbors))
	for _, d := range cartesianNeighbors {
		neighbors = append(neighbors, Cartesian{c.X + d.X, c.Y + d.Y})
	}
	return neighbors
}

func (c Cartesian) Directions() []Coordinate {
	directions := make([]Coordinate, 0, len(cartesianDirections))
	for _, d := range cartesianDirections {
		directions = append(directions, d)
	}
	return directions
}

func (c Cartesian) Add(other Coordinate) Coordinate {
	o, ok := other.(Cartesian)
	if !ok {
		panic(fmt.Errorf("%w: %v + %v", ErrCoordinateKind, c, other))
	}
	return Cartesian{c.X + o.X, c.Y + o.Y}
}

func (c Cartesian) Components() []int {
	return []int{c.X, c.Y}
}

func (c Cartesian) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
