package grid

import (
	"fmt"
	"math"
)

// A cell with weight 0 is a wall and never traversable.
const WallWeight = 0

// Cell is one grid position. X is the row index, Y the column index.
// Weight is the cost multiplier for entering the cell.
//
// G, H, F, Parent, Visited and Closed are transient search state. They are
// owned by a single search run and reset through the dirty list before the
// next run; nothing outside a search should depend on them.
type Cell struct {
	X      int
	Y      int
	Weight float64

	G       float64 // cost from the start along the best known path
	H       float64 // heuristic estimate towards the goal
	F       float64 // G + H, the priority queue score
	Parent  *Cell   // predecessor on the best known path
	Visited bool    // cell was reached by the search
	Closed  bool    // cell was fully expanded

	dirty bool // cell is recorded in the grid's dirty list
	index int  // index of the cell in the heap
}

func newCell(x, y int, weight float64) *Cell {
	return &Cell{X: x, Y: y, Weight: weight, index: -1}
}

// IsWall reports whether the cell can never be traversed.
func (c *Cell) IsWall() bool {
	return c.Weight == WallWeight
}

// GetCost returns the cost for entering this cell when coming from the
// given neighbor. Diagonal steps pay the sqrt(2) distance correction.
func (c *Cell) GetCost(fromNeighbor *Cell) float64 {
	if fromNeighbor != nil && fromNeighbor.X != c.X && fromNeighbor.Y != c.Y {
		return c.Weight * math.Sqrt2
	}
	return c.Weight
}

// reset clears the transient search state.
func (c *Cell) reset() {
	c.G = 0
	c.H = 0
	c.F = 0
	c.Parent = nil
	c.Visited = false
	c.Closed = false
	c.dirty = false
	c.index = -1
}

// implements queue.Priorizable
func (c *Cell) Priority() float64  { return c.F }
func (c *Cell) Index() int         { return c.index }
func (c *Cell) SetIndex(index int) { c.index = index }
func (c *Cell) String() string {
	return fmt.Sprintf("(%v,%v): %v\n", c.X, c.Y, c.F)
}
