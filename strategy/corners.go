package strategy

import (
	"reversi/game"
	"reversi/utils"
)

// Corners returns the board coordinates that have one component equal to 0
// and one equal to sideLength-1, in scan order.
func Corners(m game.ReadOnly) []game.Coordinate {
	edge := m.SideLength() - 1
	var corners []game.Coordinate
	for c := range m.Board().All() {
		if utils.ContainsAll(c.Components(), edge, 0) {
			corners = append(corners, c)
		}
	}
	return corners
}

// CornerNeighbors returns every neighbor of every corner. Neighbors off the
// board are included; they are never legal anyway.
func CornerNeighbors(m game.ReadOnly) []game.Coordinate {
	var neighbors []game.Coordinate
	for _, corner := range Corners(m) {
		neighbors = append(neighbors, corner.Neighbors()...)
	}
	return neighbors
}

// AvoidCornerNeighbor plays the first legal move that does not touch a
// corner, and falls back to CaptureMaxCellsThisMove when every legal move
// does.
type AvoidCornerNeighbor struct{}

func (AvoidCornerNeighbor) ChooseMove(m game.ReadOnly, p game.Player) (game.Coordinate, error) {
	neighbors := CornerNeighbors(m)
	for c := range m.Board().All() {
		if m.IsMoveLegal(c, p) && utils.FindIndex(neighbors, c) == -1 {
			return c, nil
		}
	}
	return CaptureMaxCellsThisMove{}.ChooseMove(m, p)
}

// CheckCornersFirst takes a corner whenever one is legal.
type CheckCornersFirst struct{}

func (CheckCornersFirst) ChooseMove(m game.ReadOnly, p game.Player) (game.Coordinate, error) {
	for _, c := range Corners(m) {
		if m.IsMoveLegal(c, p) {
			return c, nil
		}
	}
	return AvoidCornerNeighbor{}.ChooseMove(m, p)
}

// GoForCorners plays the legal move farthest from the center, measured as
// the sum of absolute components. Ties go to the move whose smallest
// absolute component is lowest, then to scan order. It returns a nil move
// when p cannot move.
type GoForCorners struct{}

func (GoForCorners) ChooseMove(m game.ReadOnly, p game.Player) (game.Coordinate, error) {
	var best game.Coordinate
	maxSum, minAxis := -1, 0
	for c := range m.Board().All() {
		if !m.IsMoveLegal(c, p) {
			continue
		}
		sum, axis := distance(c)
		if sum > maxSum || (sum == maxSum && axis < minAxis) {
			best = c
			maxSum, minAxis = sum, axis
		}
	}
	return best, nil
}

// distance returns the sum of absolute components and the smallest absolute
// component.
func distance(c game.Coordinate) (int, int) {
	sum, smallest := 0, -1
	for _, v := range c.Components() {
		v = utils.Abs(v)
		sum += v
		if smallest == -1 || v < smallest {
			smallest = v
		}
	}
	return sum, smallest
}
