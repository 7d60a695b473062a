package routing

import (
	"fmt"
	"log"

	"github.com/mfreder/grid-pathfinding/pkg/grid"
	"github.com/mfreder/grid-pathfinding/pkg/grid/path"
)

// Position is a grid coordinate pair, X the row and Y the column.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Route is the outcome of one path computation. Waypoints exclude the
// origin. With the closest fallback enabled a route can exist without
// reaching the destination; the last waypoint is the closest reachable cell
// then.
type Route struct {
	Origin      Position   // the requested origin
	Destination Position   // the requested destination
	Exists      bool       // a path was produced
	Reached     bool       // the path actually ends at the destination
	Waypoints   []Position // path cells in order, origin excluded
	Cost        float64    // summed entering costs along the path
}

// Router is the coordinate-level facade over a grid and a search engine.
// It validates coordinates, runs one search at a time and assembles routes.
type Router struct {
	grid       *grid.Grid
	finder     path.PathFinder
	astar      *path.AStar // nil when an engine without heuristic options is selected
	finderName string
	heuristic  string // empty means the grid's default
	closest    bool
}

// NewRouter creates a router for the grid. When finder is non-nil the named
// engine is selected immediately; an unknown name is fatal.
func NewRouter(g *grid.Grid, finder *string) *Router {
	r := &Router{grid: g}
	name := "astar"
	if finder != nil {
		name = *finder
	}
	if !r.SetFinder(name) {
		log.Fatal("Could not set path finder")
	}
	return r
}

// SetFinder selects the search engine by name. Returns false for an
// unknown name.
func (r *Router) SetFinder(name string) bool {
	switch name {
	case "astar":
		r.astar = path.NewAStar(r.grid)
		r.astar.SetClosest(r.closest)
		r.finder = r.astar
	case "dijkstra":
		r.astar = nil
		r.finder = path.NewDijkstra(r.grid)
	default:
		return false
	}
	r.finderName = name
	if r.heuristic != "" {
		r.SetHeuristic(r.heuristic)
	}
	return true
}

// SetHeuristic selects a built-in heuristic by name. Returns false when the
// name is unknown or the current engine takes no heuristic.
func (r *Router) SetHeuristic(name string) bool {
	if r.astar == nil {
		return false
	}
	h, ok := path.HeuristicByName(name)
	if !ok {
		return false
	}
	r.astar.SetHeuristic(h)
	r.heuristic = name
	return true
}

// SetClosest toggles the closest fallback. Returns false when the current
// engine does not support it.
func (r *Router) SetClosest(closest bool) bool {
	if r.astar == nil {
		return false
	}
	r.astar.SetClosest(closest)
	r.closest = closest
	return true
}

// ComputeRoute runs a search between two coordinate pairs. Out-of-bounds
// coordinates are an error; an unreachable destination is a valid route
// with Exists=false.
func (r *Router) ComputeRoute(origin, destination Position) (Route, error) {
	start, err := r.grid.Get(origin.X, origin.Y)
	if err != nil {
		return Route{}, fmt.Errorf("origin: %w", err)
	}
	end, err := r.grid.Get(destination.X, destination.Y)
	if err != nil {
		return Route{}, fmt.Errorf("destination: %w", err)
	}

	cells := r.finder.Search(start, end)

	route := Route{Origin: origin, Destination: destination}
	if len(cells) == 0 {
		// either unreachable, or nothing to traverse
		route.Exists = start == end
		route.Reached = start == end
		route.Waypoints = make([]Position, 0)
		return route, nil
	}

	route.Exists = true
	route.Reached = cells[len(cells)-1] == end
	route.Cost = path.PathCost(start, cells)
	route.Waypoints = make([]Position, 0, len(cells))
	for _, c := range cells {
		route.Waypoints = append(route.Waypoints, Position{X: c.X, Y: c.Y})
	}
	return route, nil
}

// UpdateWeights replaces the whole weight matrix, e.g. after the caller
// rebuilt its obstacle layer. The engine is recreated on the new grid with
// the previously selected algorithm and options.
func (r *Router) UpdateWeights(weights [][]float64, diagonal bool) error {
	g, err := grid.New(weights, diagonal)
	if err != nil {
		return err
	}
	r.grid = g
	r.SetFinder(r.finderName)
	return nil
}

// SetWeight edits one cell in place, the cheap path for obstacle painting.
func (r *Router) SetWeight(x, y int, weight float64) error {
	return r.grid.SetWeight(x, y, weight)
}

// GetSearchSpace returns the coordinates settled by the previous search.
func (r *Router) GetSearchSpace() []Position {
	cells := r.finder.GetSearchSpace()
	positions := make([]Position, 0, len(cells))
	for _, c := range cells {
		positions = append(positions, Position{X: c.X, Y: c.Y})
	}
	return positions
}

// GetGrid returns the grid currently routed on.
func (r *Router) GetGrid() *grid.Grid {
	return r.grid
}
