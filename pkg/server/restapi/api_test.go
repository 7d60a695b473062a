package restapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreder/grid-pathfinding/pkg/grid"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	weights := make([][]float64, 5)
	for x := range weights {
		weights[x] = []float64{1, 1, 1, 1, 1}
	}
	g, err := grid.New(weights, false)
	require.NoError(t, err)

	service := NewDefaultApiService(g, nil, nil)
	controller := NewDefaultApiController(service)
	server := httptest.NewServer(NewRouter(controller))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, server *httptest.Server, method, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	request, err := http.NewRequest(method, server.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	response, err := server.Client().Do(request)
	require.NoError(t, err)
	return response
}

func decodeRoute(t *testing.T, response *http.Response) RouteResult {
	t.Helper()
	defer response.Body.Close()
	var result RouteResult
	require.NoError(t, json.NewDecoder(response.Body).Decode(&result))
	return result
}

func TestComputeRouteEndpoint(t *testing.T) {
	server := newTestServer(t)

	response := postJSON(t, server, "POST", "/routes", RouteRequest{
		Origin:      Point{X: 0, Y: 0},
		Destination: Point{X: 4, Y: 4},
	})
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.NotEmpty(t, response.Header.Get("X-Request-Id"))

	result := decodeRoute(t, response)
	assert.True(t, result.Reachable)
	assert.True(t, result.Reached)
	assert.Equal(t, 8, result.Path.Length)
	assert.InDelta(t, 8, result.Path.Cost, 1e-9)
	assert.Equal(t, Point{X: 4, Y: 4}, result.Path.Waypoints[len(result.Path.Waypoints)-1])
}

func TestComputeRouteInvalidCoordinates(t *testing.T) {
	server := newTestServer(t)

	// negative coordinates fail model validation
	response := postJSON(t, server, "POST", "/routes", RouteRequest{
		Origin:      Point{X: -1, Y: 0},
		Destination: Point{X: 4, Y: 4},
	})
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	response.Body.Close()

	// in-range but outside the grid fails at the routing layer
	response = postJSON(t, server, "POST", "/routes", RouteRequest{
		Origin:      Point{X: 0, Y: 0},
		Destination: Point{X: 9, Y: 9},
	})
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	response.Body.Close()
}

func TestObstaclePaintingFlow(t *testing.T) {
	server := newTestServer(t)

	// paint a wall across column 2, rows 0-3
	edits := CellEditsRequest{}
	for x := 0; x < 4; x++ {
		edits.Cells = append(edits.Cells, CellEdit{X: x, Y: 2, Weight: 0})
	}
	response := postJSON(t, server, "PATCH", "/grid/cells", edits)
	require.Equal(t, http.StatusOK, response.StatusCode)
	response.Body.Close()

	response = postJSON(t, server, "POST", "/routes", RouteRequest{
		Origin:      Point{X: 0, Y: 0},
		Destination: Point{X: 0, Y: 4},
	})
	require.Equal(t, http.StatusOK, response.StatusCode)
	result := decodeRoute(t, response)
	assert.True(t, result.Reached)
	assert.Equal(t, 12, result.Path.Length, "route must detour through row 4")
	assert.Contains(t, result.Path.Waypoints, Point{X: 4, Y: 2})
}

func TestReplaceGridEndpoint(t *testing.T) {
	server := newTestServer(t)

	response := postJSON(t, server, "PUT", "/grid", GridRequest{
		Weights:  [][]float64{{1, 1}, {1, 1}, {1, 1}},
		Diagonal: true,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)
	defer response.Body.Close()
	var info GridInfo
	require.NoError(t, json.NewDecoder(response.Body).Decode(&info))
	assert.Equal(t, 3, info.Rows)
	assert.Equal(t, 2, info.Cols)
	assert.True(t, info.Diagonal)

	// ragged matrices are rejected at construction time
	response = postJSON(t, server, "PUT", "/grid", GridRequest{
		Weights: [][]float64{{1, 1}, {1}},
	})
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	response.Body.Close()
}

func TestSetNavigatorEndpoint(t *testing.T) {
	server := newTestServer(t)

	closest := true
	response := postJSON(t, server, "POST", "/navigator", NavigatorRequest{
		Finder:    "astar",
		Heuristic: "diagonal",
		Closest:   &closest,
	})
	assert.Equal(t, http.StatusOK, response.StatusCode)
	response.Body.Close()

	response = postJSON(t, server, "POST", "/navigator", NavigatorRequest{Finder: "contraction-hierarchies"})
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	response.Body.Close()
}

func TestSearchSpaceEndpoint(t *testing.T) {
	server := newTestServer(t)

	response := postJSON(t, server, "POST", "/routes", RouteRequest{
		Origin:      Point{X: 0, Y: 0},
		Destination: Point{X: 4, Y: 4},
	})
	require.Equal(t, http.StatusOK, response.StatusCode)
	response.Body.Close()

	response, err := server.Client().Get(server.URL + "/searchSpace")
	require.NoError(t, err)
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)
	var space SearchSpace
	require.NoError(t, json.NewDecoder(response.Body).Decode(&space))
	assert.NotEmpty(t, space.Cells)
}
