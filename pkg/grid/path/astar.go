package path

import (
	"log"

	"github.com/mfreder/grid-pathfinding/pkg/grid"
	"github.com/mfreder/grid-pathfinding/pkg/queue"
	"github.com/mfreder/grid-pathfinding/pkg/slice"
)

// AStar computes cheapest paths on a grid. The open and closed sets are
// implicit in the cells' Visited/Closed flags, the open set additionally
// lives in the priority queue. A cell whose score improves while open is
// repositioned in place, never re-inserted.
//
// A single AStar must not run concurrently with another search on the same
// grid; the transient cell state is shared and mutated in place.
type AStar struct {
	g           *grid.Grid
	heuristic   Heuristic
	closest     bool
	searchSpace []*grid.Cell
	kpis        SearchKPIs

	debugLevel int // debug level for logging purpose
}

// NewAStar creates a search engine for the given grid, defaulting to the
// admissible heuristic for the grid's movement mode.
func NewAStar(g *grid.Grid) *AStar {
	return &AStar{g: g, heuristic: DefaultHeuristic(g)}
}

// SetHeuristic replaces the estimate function. Callers may supply their own
// scoring as long as it stays admissible for the movement mode.
func (a *AStar) SetHeuristic(h Heuristic) {
	a.heuristic = h
}

// SetClosest enables the fallback to the reachable cell closest to the goal
// when the goal itself cannot be reached.
func (a *AStar) SetClosest(closest bool) {
	a.closest = closest
}

// Set the debug level to show different debug messages.
// If it is 0, no debug messages are printed
func (a *AStar) SetDebugLevel(level int) {
	a.debugLevel = level
}

// Search computes the cheapest path from start to end. The returned path
// excludes the start cell and ends at the goal, or at the closest reachable
// cell when the closest fallback is enabled. An empty path means the goal is
// unreachable (or, with the fallback, that nothing better than start was
// reached). Ties on equal scores fall to the heap shape and are not stable.
func (a *AStar) Search(start, end *grid.Cell) []*grid.Cell {
	// safety net, even if the previous caller forgot
	a.g.CleanDirty()
	a.kpis.Reset()
	a.searchSpace = a.searchSpace[:0]

	if a.debugLevel >= 1 {
		log.Printf("New search: (%v,%v) -> (%v,%v)\n", start.X, start.Y, end.X, end.Y)
	}

	start.H = a.heuristic(start, end)
	start.F = start.H
	start.Visited = true
	a.g.MarkDirty(start)

	openSet := queue.NewMinHeap[*grid.Cell](nil)
	openSet.Push(start)
	a.kpis.pqUpdates++

	// only consulted when the closest fallback is requested
	closestCell := start

	for openSet.Len() > 0 {
		current := openSet.Pop()
		a.kpis.pqPops++

		if current == end {
			if a.debugLevel >= 1 {
				log.Printf("Found path, cost %v\n", current.G)
			}
			return reconstructPath(current)
		}

		current.Closed = true
		a.kpis.settledCells++
		a.searchSpace = append(a.searchSpace, current)
		if a.debugLevel >= 2 {
			log.Printf("Settling cell (%v,%v), f=%v\n", current.X, current.Y, current.F)
		}

		for _, neighbor := range a.g.Neighbors(current) {
			a.kpis.relaxationAttempts++

			if neighbor.Closed || neighbor.IsWall() {
				continue
			}

			tentativeG := current.G + neighbor.GetCost(current)
			beenVisited := neighbor.Visited

			if !beenVisited || tentativeG < neighbor.G {
				if a.debugLevel >= 3 {
					log.Printf("Relax (%v,%v) -> (%v,%v), g=%v\n", current.X, current.Y, neighbor.X, neighbor.Y, tentativeG)
				}

				neighbor.Visited = true
				neighbor.Parent = current
				if !beenVisited {
					// the heuristic only depends on the position, computing it once per run is enough
					neighbor.H = a.heuristic(neighbor, end)
				}
				neighbor.G = tentativeG
				neighbor.F = neighbor.G + neighbor.H
				a.g.MarkDirty(neighbor)

				if a.closest {
					// prefer the cell closer to the goal, on equal estimates the cheaper one
					if neighbor.H < closestCell.H || (neighbor.H == closestCell.H && neighbor.G < closestCell.G) {
						closestCell = neighbor
					}
				}

				if !beenVisited {
					openSet.Push(neighbor)
				} else {
					// the score decreased, reposition the cell in the open set
					openSet.Update(neighbor)
				}
				a.kpis.pqUpdates++
				a.kpis.relaxedCells++
			}
		}
	}

	if a.closest {
		if a.debugLevel >= 1 {
			log.Printf("Goal unreachable, falling back to (%v,%v)\n", closestCell.X, closestCell.Y)
		}
		return reconstructPath(closestCell)
	}

	if a.debugLevel >= 1 {
		log.Printf("Finished search, no path found\n")
	}
	return []*grid.Cell{}
}

// reconstructPath walks the predecessor references back to the start, which
// is the only cell without a parent. The start itself is excluded.
func reconstructPath(c *grid.Cell) []*grid.Cell {
	path := make([]*grid.Cell, 0)
	for current := c; current.Parent != nil; current = current.Parent {
		path = append(path, current)
	}
	slice.ReverseInPlace(path)
	return path
}

// Returns the cells which were settled during the previous search.
func (a *AStar) GetSearchSpace() []*grid.Cell { return a.searchSpace }

// Returns the amount of priority queue pops which were performed during the search
func (a *AStar) GetPqPops() int { return a.kpis.pqPops }

// Get the number of pq pushes and updates
func (a *AStar) GetPqUpdates() int { return a.kpis.pqUpdates }

// Get the number of attempted neighbor relaxations
func (a *AStar) GetRelaxationAttempts() int { return a.kpis.relaxationAttempts }

// Get the number of relaxed neighbors
func (a *AStar) GetRelaxedCells() int { return a.kpis.relaxedCells }

// Get the number of settled cells
func (a *AStar) GetSettledCells() int { return a.kpis.settledCells }

// Get the used grid
func (a *AStar) GetGrid() *grid.Grid { return a.g }
