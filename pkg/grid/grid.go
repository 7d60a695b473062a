package grid

import (
	"fmt"
	"strings"
)

// Grid owns a rectangular field of weighted cells and provides neighbor
// enumeration for the searches. Cells are allocated once at construction
// and live as long as the grid; searches only mutate their transient state.
//
// The dirty list records the cells whose transient state was touched, so a
// following search only resets those instead of rescanning the whole field.
type Grid struct {
	cells    [][]*Cell
	rows     int
	cols     int
	diagonal bool
	dirty    []*Cell
}

// New builds a grid from a weight matrix. Row length must be consistent and
// all weights non-negative; a weight of 0 marks a wall. The diagonal flag
// enables 8-directional adjacency.
func New(weights [][]float64, diagonal bool) (*Grid, error) {
	rows := len(weights)
	if rows == 0 {
		return nil, fmt.Errorf("grid needs at least one row")
	}
	cols := len(weights[0])
	if cols == 0 {
		return nil, fmt.Errorf("grid needs at least one column")
	}

	cells := make([][]*Cell, rows)
	for x, row := range weights {
		if len(row) != cols {
			return nil, fmt.Errorf("ragged grid: row %d has %d columns, expected %d", x, len(row), cols)
		}
		cells[x] = make([]*Cell, cols)
		for y, weight := range row {
			if weight < 0 {
				return nil, fmt.Errorf("negative weight %v at (%d,%d)", weight, x, y)
			}
			cells[x][y] = newCell(x, y, weight)
		}
	}

	return &Grid{cells: cells, rows: rows, cols: cols, diagonal: diagonal}, nil
}

// Get returns the cell at (x, y) or an error for out-of-bounds coordinates.
// An explicit error keeps invalid coordinates distinguishable from an
// unreachable target, which is reported as an empty path.
func (g *Grid) Get(x, y int) (*Cell, error) {
	if x < 0 || x >= g.rows || y < 0 || y >= g.cols {
		return nil, fmt.Errorf("coordinates (%d,%d) outside the %dx%d grid", x, y, g.rows, g.cols)
	}
	return g.cells[x][y], nil
}

func (g *Grid) Rows() int      { return g.rows }
func (g *Grid) Cols() int      { return g.cols }
func (g *Grid) CellCount() int { return g.rows * g.cols }
func (g *Grid) Diagonal() bool { return g.diagonal }

// CellId maps a cell to its dense index in row-major order.
func (g *Grid) CellId(c *Cell) int {
	return c.X*g.cols + c.Y
}

// CellById is the inverse of CellId.
func (g *Grid) CellById(id int) *Cell {
	return g.cells[id/g.cols][id%g.cols]
}

// Neighbors returns the adjacent cells which exist within the grid bounds.
// Order is west, east, south, north and, with diagonal adjacency enabled,
// southwest, southeast, northwest, northeast. The order only pins down tie
// behavior, it has no influence on correctness. Walls are included here and
// excluded by the searches.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	capacity := 4
	if g.diagonal {
		capacity = 8
	}
	neighbors := make([]*Cell, 0, capacity)

	appendInBounds := func(x, y int) {
		if x >= 0 && x < g.rows && y >= 0 && y < g.cols {
			neighbors = append(neighbors, g.cells[x][y])
		}
	}

	x, y := c.X, c.Y
	appendInBounds(x-1, y) // west
	appendInBounds(x+1, y) // east
	appendInBounds(x, y-1) // south
	appendInBounds(x, y+1) // north

	if g.diagonal {
		appendInBounds(x-1, y-1) // southwest
		appendInBounds(x+1, y-1) // southeast
		appendInBounds(x-1, y+1) // northwest
		appendInBounds(x+1, y+1) // northeast
	}

	return neighbors
}

// MarkDirty records that the cell's transient state needs a reset before the
// next search. Each cell is recorded at most once per search.
func (g *Grid) MarkDirty(c *Cell) {
	if c.dirty {
		return
	}
	c.dirty = true
	g.dirty = append(g.dirty, c)
}

// CleanDirty resets the transient state of every recorded cell and empties
// the dirty list. Every search calls this first, so state from a previous
// run never leaks into the next one.
func (g *Grid) CleanDirty() {
	for _, c := range g.dirty {
		c.reset()
	}
	g.dirty = g.dirty[:0]
}

// SetWeight changes the weight of a single cell, e.g. when the caller paints
// or erases an obstacle. Transient search state is untouched; the cleanup at
// the start of the next search covers it.
func (g *Grid) SetWeight(x, y int, weight float64) error {
	if weight < 0 {
		return fmt.Errorf("negative weight %v at (%d,%d)", weight, x, y)
	}
	c, err := g.Get(x, y)
	if err != nil {
		return err
	}
	c.Weight = weight
	return nil
}

// Weights returns a copy of the weight matrix.
func (g *Grid) Weights() [][]float64 {
	weights := make([][]float64, g.rows)
	for x := 0; x < g.rows; x++ {
		weights[x] = make([]float64, g.cols)
		for y := 0; y < g.cols; y++ {
			weights[x][y] = g.cells[x][y].Weight
		}
	}
	return weights
}

// Returns a human readable string of the grid, same shape the codec parses
func (g *Grid) AsString() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%v\n", g.rows))
	sb.WriteString(fmt.Sprintf("%v\n", g.cols))
	if g.diagonal {
		sb.WriteString("1\n")
	} else {
		sb.WriteString("0\n")
	}

	sb.WriteString("#Weights\n")
	for x := 0; x < g.rows; x++ {
		parts := make([]string, g.cols)
		for y := 0; y < g.cols; y++ {
			parts[y] = fmt.Sprintf("%v", g.cells[x][y].Weight)
		}
		sb.WriteString(strings.Join(parts, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
