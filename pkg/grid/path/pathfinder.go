package path

import "github.com/mfreder/grid-pathfinding/pkg/grid"

// PathFinder is the common surface of the search engines.
type PathFinder interface {
	Search(start, end *grid.Cell) []*grid.Cell // Compute the cheapest path between two cells. The returned sequence excludes the start cell; empty means unreachable.
	GetSearchSpace() []*grid.Cell              // Returns the cells which were settled during the previous search.
	GetPqPops() int                            // Returns the amount of priority queue pops which were performed for the computed search
	GetPqUpdates() int                         // Get the number of pq pushes and updates
	GetRelaxationAttempts() int                // Get the number of attempted neighbor relaxations (some terminate early)
	GetRelaxedCells() int                      // Get the number of relaxed neighbors
	GetSettledCells() int                      // Get the number of settled cells
	GetGrid() *grid.Grid                       // Get the used grid
}

// SearchKPIs collects counters describing the effort of one search run.
type SearchKPIs struct {
	pqPops             int // store the amount of pops which were performed on the priority queue for the computed search
	pqUpdates          int // store each update or push to the priority queue
	relaxationAttempts int // store the attempts for relaxed neighbors
	relaxedCells       int // number of relaxed neighbors
	settledCells       int // number of settled (fully expanded) cells
}

// Reset the kpi
func (kpi *SearchKPIs) Reset() {
	kpi.pqPops = 0
	kpi.pqUpdates = 0
	kpi.relaxationAttempts = 0
	kpi.relaxedCells = 0
	kpi.settledCells = 0
}

// PathCost sums the per-step entering costs along a path starting at origin.
func PathCost(origin *grid.Cell, path []*grid.Cell) float64 {
	cost := 0.0
	previous := origin
	for _, c := range path {
		cost += c.GetCost(previous)
		previous = c
	}
	return cost
}
