// SPDX-License-Identifier: MIT

package restapi

// Point is a grid coordinate, x the row and y the column.
type Point struct {
	X int `json:"x" validate:"min=0"`
	Y int `json:"y" validate:"min=0"`
}

// RouteRequest asks for a path between two cells on the current grid.
type RouteRequest struct {
	Origin      Point `json:"origin"`
	Destination Point `json:"destination"`
}

// Path holds an ordered waypoint sequence, the origin excluded.
type Path struct {
	Length    int     `json:"length"`
	Cost      float64 `json:"cost"`
	Waypoints []Point `json:"waypoints"`
}

// RouteResult reports the outcome of a route computation. Reachable tells
// whether any path was produced; Reached whether it ends at the requested
// destination (the two differ when the closest fallback kicked in).
type RouteResult struct {
	Origin      Point `json:"origin"`
	Destination Point `json:"destination"`
	Reachable   bool  `json:"reachable"`
	Reached     bool  `json:"reached"`
	Path        Path  `json:"path"`
}

// GridRequest replaces the whole grid. Weight 0 marks a wall.
type GridRequest struct {
	Weights  [][]float64 `json:"weights" validate:"required,min=1"`
	Diagonal bool        `json:"diagonal"`
}

// GridInfo describes the current grid.
type GridInfo struct {
	Rows     int         `json:"rows"`
	Cols     int         `json:"cols"`
	Diagonal bool        `json:"diagonal"`
	Weights  [][]float64 `json:"weights"`
}

// CellEdit sets the weight of one cell, the obstacle painting primitive.
type CellEdit struct {
	X      int     `json:"x" validate:"min=0"`
	Y      int     `json:"y" validate:"min=0"`
	Weight float64 `json:"weight" validate:"min=0"`
}

// CellEditsRequest applies a batch of cell edits.
type CellEditsRequest struct {
	Cells []CellEdit `json:"cells" validate:"required,min=1,dive"`
}

// SearchSpace lists the cells settled by the previous search.
type SearchSpace struct {
	Cells []Point `json:"cells"`
}

// NavigatorRequest reconfigures the search engine. Empty fields are left
// unchanged.
type NavigatorRequest struct {
	Finder    string `json:"finder,omitempty"`
	Heuristic string `json:"heuristic,omitempty"`
	Closest   *bool  `json:"closest,omitempty"`
}
