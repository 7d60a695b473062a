package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreder/grid-pathfinding/pkg/grid"
)

func openWeights(rows, cols int) [][]float64 {
	weights := make([][]float64, rows)
	for x := range weights {
		weights[x] = make([]float64, cols)
		for y := range weights[x] {
			weights[x][y] = 1
		}
	}
	return weights
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	g, err := grid.New(openWeights(5, 5), false)
	require.NoError(t, err)
	return NewRouter(g, nil)
}

func TestComputeRoute(t *testing.T) {
	router := newTestRouter(t)
	route, err := router.ComputeRoute(Position{0, 0}, Position{4, 4})
	require.NoError(t, err)
	assert.True(t, route.Exists)
	assert.True(t, route.Reached)
	assert.Len(t, route.Waypoints, 8)
	assert.InDelta(t, 8, route.Cost, 1e-9)
	assert.Equal(t, Position{4, 4}, route.Waypoints[len(route.Waypoints)-1])
}

func TestComputeRouteOutOfBounds(t *testing.T) {
	router := newTestRouter(t)
	_, err := router.ComputeRoute(Position{-1, 0}, Position{4, 4})
	assert.ErrorContains(t, err, "origin")
	_, err = router.ComputeRoute(Position{0, 0}, Position{4, 5})
	assert.ErrorContains(t, err, "destination")
}

func TestComputeRouteUnreachable(t *testing.T) {
	router := newTestRouter(t)
	// seal off the last column
	for x := 0; x < 5; x++ {
		require.NoError(t, router.SetWeight(x, 3, 0))
	}
	route, err := router.ComputeRoute(Position{0, 0}, Position{0, 4})
	require.NoError(t, err)
	assert.False(t, route.Exists)
	assert.Empty(t, route.Waypoints)

	// the closest fallback still produces a best-effort route
	require.True(t, router.SetClosest(true))
	route, err = router.ComputeRoute(Position{0, 0}, Position{0, 4})
	require.NoError(t, err)
	assert.True(t, route.Exists)
	assert.False(t, route.Reached)
	assert.NotEmpty(t, route.Waypoints)
	last := route.Waypoints[len(route.Waypoints)-1]
	assert.Equal(t, 2, last.Y, "fallback should stop right before the sealed column")
}

func TestSameOriginAndDestination(t *testing.T) {
	router := newTestRouter(t)
	route, err := router.ComputeRoute(Position{2, 2}, Position{2, 2})
	require.NoError(t, err)
	assert.True(t, route.Exists)
	assert.True(t, route.Reached)
	assert.Empty(t, route.Waypoints)
	assert.Zero(t, route.Cost)
}

func TestSetFinder(t *testing.T) {
	router := newTestRouter(t)
	assert.True(t, router.SetFinder("dijkstra"))
	route, err := router.ComputeRoute(Position{0, 0}, Position{4, 4})
	require.NoError(t, err)
	assert.Len(t, route.Waypoints, 8)

	assert.False(t, router.SetFinder("contraction-hierarchies"))
	// dijkstra takes no heuristic or fallback options
	assert.False(t, router.SetHeuristic("manhattan"))
	assert.False(t, router.SetClosest(true))

	assert.True(t, router.SetFinder("astar"))
	assert.True(t, router.SetHeuristic("diagonal"))
	assert.False(t, router.SetHeuristic("euclidean"))
}

func TestUpdateWeights(t *testing.T) {
	router := newTestRouter(t)
	weights := openWeights(3, 3)
	weights[1][1] = 0
	require.NoError(t, router.UpdateWeights(weights, true))
	assert.Equal(t, 3, router.GetGrid().Rows())
	assert.True(t, router.GetGrid().Diagonal())

	route, err := router.ComputeRoute(Position{0, 0}, Position{2, 2})
	require.NoError(t, err)
	assert.True(t, route.Reached)
	// the center is a wall, the diagonal shortcut through it is not allowed
	for _, p := range route.Waypoints {
		assert.NotEqual(t, Position{1, 1}, p)
	}

	assert.Error(t, router.UpdateWeights([][]float64{{1}, {1, 1}}, false))
}

func TestGetSearchSpace(t *testing.T) {
	router := newTestRouter(t)
	_, err := router.ComputeRoute(Position{0, 0}, Position{4, 4})
	require.NoError(t, err)
	assert.NotEmpty(t, router.GetSearchSpace())
}
