package path

import (
	"math"

	"github.com/mfreder/grid-pathfinding/pkg/grid"
)

// Heuristic estimates the remaining cost between two cells. Implementations
// must be pure and never mutate the cells. For optimal paths on uniform
// weights the estimate must not overshoot the real cost of the movement mode.
type Heuristic func(from, to *grid.Cell) float64

// Manhattan is admissible for orthogonal-only movement.
func Manhattan(from, to *grid.Cell) float64 {
	d1 := math.Abs(float64(to.X - from.X))
	d2 := math.Abs(float64(to.Y - from.Y))
	return d1 + d2
}

// Diagonal is the octile distance, admissible with diagonal movement at
// unit cost.
func Diagonal(from, to *grid.Cell) float64 {
	d1 := math.Abs(float64(to.X - from.X))
	d2 := math.Abs(float64(to.Y - from.Y))
	return (d1 + d2) + (math.Sqrt2-2)*math.Min(d1, d2)
}

// HeuristicByName resolves the built-in heuristics.
func HeuristicByName(name string) (Heuristic, bool) {
	switch name {
	case "manhattan":
		return Manhattan, true
	case "diagonal":
		return Diagonal, true
	default:
		return nil, false
	}
}

// DefaultHeuristic picks the admissible built-in for the grid's movement mode.
func DefaultHeuristic(g *grid.Grid) Heuristic {
	if g.Diagonal() {
		return Diagonal
	}
	return Manhattan
}
