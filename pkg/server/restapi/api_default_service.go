// SPDX-License-Identifier: MIT

package restapi

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mfreder/grid-pathfinding/pkg/grid"
	"github.com/mfreder/grid-pathfinding/pkg/routing"
)

// DefaultApiService implements the business logic for every endpoint.
// The mutex serializes all grid access: searches mutate shared transient
// cell state and must never overlap, and edits must not race a search.
type DefaultApiService struct {
	mu       sync.Mutex
	router   *routing.Router
	validate *validator.Validate
	metrics  *Metrics // optional, may be nil
}

// NewDefaultApiService creates a default api service routing on the given
// grid. finder selects the initial search engine, nil means A*.
func NewDefaultApiService(g *grid.Grid, finder *string, metrics *Metrics) DefaultApiServicer {
	return &DefaultApiService{
		router:   routing.NewRouter(g, finder),
		validate: validator.New(),
		metrics:  metrics,
	}
}

// ComputeRoute - Compute a new route
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	if err := s.validate.Struct(routeRequest); err != nil {
		return Response(http.StatusBadRequest, ErrorResponse{Error: err.Error()}), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	origin := routing.Position{X: routeRequest.Origin.X, Y: routeRequest.Origin.Y}
	destination := routing.Position{X: routeRequest.Destination.X, Y: routeRequest.Destination.Y}

	route, err := s.router.ComputeRoute(origin, destination)
	if err != nil {
		// out-of-bounds coordinates, distinguishable from an unreachable target
		return Response(http.StatusBadRequest, ErrorResponse{Error: err.Error()}), nil
	}
	if s.metrics != nil {
		s.metrics.RouteQueryCount.Inc()
	}

	result := RouteResult{Origin: routeRequest.Origin, Destination: routeRequest.Destination}
	result.Reachable = route.Exists
	result.Reached = route.Reached
	waypoints := make([]Point, 0, len(route.Waypoints))
	for _, waypoint := range route.Waypoints {
		waypoints = append(waypoints, Point{X: waypoint.X, Y: waypoint.Y})
	}
	result.Path = Path{Length: len(waypoints), Cost: route.Cost, Waypoints: waypoints}

	return Response(http.StatusOK, result), nil
}

// ReplaceGrid - Replace the whole weight matrix
func (s *DefaultApiService) ReplaceGrid(ctx context.Context, gridRequest GridRequest) (ImplResponse, error) {
	if err := s.validate.Struct(gridRequest); err != nil {
		return Response(http.StatusBadRequest, ErrorResponse{Error: err.Error()}), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.router.UpdateWeights(gridRequest.Weights, gridRequest.Diagonal); err != nil {
		return Response(http.StatusBadRequest, ErrorResponse{Error: err.Error()}), nil
	}
	return Response(http.StatusOK, s.gridInfo()), nil
}

// EditCells - Apply a batch of cell weight edits
func (s *DefaultApiService) EditCells(ctx context.Context, editsRequest CellEditsRequest) (ImplResponse, error) {
	if err := s.validate.Struct(editsRequest); err != nil {
		return Response(http.StatusBadRequest, ErrorResponse{Error: err.Error()}), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, edit := range editsRequest.Cells {
		if err := s.router.SetWeight(edit.X, edit.Y, edit.Weight); err != nil {
			return Response(http.StatusBadRequest, ErrorResponse{Error: err.Error()}), nil
		}
	}
	return Response(http.StatusOK, s.gridInfo()), nil
}

// GetGrid - Describe the current grid
func (s *DefaultApiService) GetGrid(ctx context.Context) (ImplResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Response(http.StatusOK, s.gridInfo()), nil
}

// GetSearchSpace - Cells settled by the previous search
func (s *DefaultApiService) GetSearchSpace(ctx context.Context) (ImplResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	positions := s.router.GetSearchSpace()
	cells := make([]Point, 0, len(positions))
	for _, position := range positions {
		cells = append(cells, Point{X: position.X, Y: position.Y})
	}
	return Response(http.StatusOK, SearchSpace{Cells: cells}), nil
}

// SetNavigator - Select the search engine and its options
func (s *DefaultApiService) SetNavigator(ctx context.Context, navigatorRequest NavigatorRequest) (ImplResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if navigatorRequest.Finder != "" {
		if !s.router.SetFinder(navigatorRequest.Finder) {
			return Response(http.StatusBadRequest, ErrorResponse{Error: "unknown finder: " + navigatorRequest.Finder}), nil
		}
	}
	if navigatorRequest.Heuristic != "" {
		if !s.router.SetHeuristic(navigatorRequest.Heuristic) {
			return Response(http.StatusBadRequest, ErrorResponse{Error: "unknown heuristic: " + navigatorRequest.Heuristic}), nil
		}
	}
	if navigatorRequest.Closest != nil {
		if !s.router.SetClosest(*navigatorRequest.Closest) {
			return Response(http.StatusBadRequest, ErrorResponse{Error: "selected finder has no closest fallback"}), nil
		}
	}
	return Response(http.StatusOK, navigatorRequest), nil
}

func (s *DefaultApiService) gridInfo() GridInfo {
	g := s.router.GetGrid()
	return GridInfo{
		Rows:     g.Rows(),
		Cols:     g.Cols(),
		Diagonal: g.Diagonal(),
		Weights:  g.Weights(),
	}
}
