// SPDX-License-Identifier: MIT

package restapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// A Route defines the parameters for an api endpoint
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes are a collection of defined api endpoints
type Routes []Route

// Router defines the required methods for retrieving api routes
type Router interface {
	Routes() Routes
}

// DefaultApiController binds http requests to an api service and writes the service results to the http response
type DefaultApiController struct {
	service DefaultApiServicer
}

// NewDefaultApiController creates a default api controller
func NewDefaultApiController(s DefaultApiServicer) Router {
	return &DefaultApiController{service: s}
}

// Routes returns all of the api route for the DefaultApiController
func (c *DefaultApiController) Routes() Routes {
	return Routes{
		{
			"ComputeRoute",
			strings.ToUpper("Post"),
			"/routes",
			c.ComputeRoute,
		},
		{
			"ReplaceGrid",
			strings.ToUpper("Put"),
			"/grid",
			c.ReplaceGrid,
		},
		{
			"EditCells",
			strings.ToUpper("Patch"),
			"/grid/cells",
			c.EditCells,
		},
		{
			"GetGrid",
			strings.ToUpper("Get"),
			"/grid",
			c.GetGrid,
		},
		{
			"GetSearchSpace",
			strings.ToUpper("Get"),
			"/searchSpace",
			c.GetSearchSpace,
		},
		{
			"SetNavigator",
			strings.ToUpper("Post"),
			"/navigator",
			c.SetNavigator,
		},
	}
}

// ComputeRoute - Compute a new route
func (c *DefaultApiController) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	routeRequest := RouteRequest{}
	if err := json.NewDecoder(r.Body).Decode(&routeRequest); err != nil {
		EncodeJSONResponse(ErrorResponse{Error: err.Error()}, http.StatusBadRequest, w)
		return
	}
	result, err := c.service.ComputeRoute(r.Context(), routeRequest)
	if err != nil {
		EncodeJSONResponse(ErrorResponse{Error: err.Error()}, http.StatusBadRequest, w)
		return
	}
	EncodeJSONResponse(result.Body, result.Code, w)
}

// ReplaceGrid - Replace the whole weight matrix
func (c *DefaultApiController) ReplaceGrid(w http.ResponseWriter, r *http.Request) {
	gridRequest := GridRequest{}
	if err := json.NewDecoder(r.Body).Decode(&gridRequest); err != nil {
		EncodeJSONResponse(ErrorResponse{Error: err.Error()}, http.StatusBadRequest, w)
		return
	}
	result, err := c.service.ReplaceGrid(r.Context(), gridRequest)
	if err != nil {
		EncodeJSONResponse(ErrorResponse{Error: err.Error()}, http.StatusBadRequest, w)
		return
	}
	EncodeJSONResponse(result.Body, result.Code, w)
}

// EditCells - Apply a batch of cell weight edits
func (c *DefaultApiController) EditCells(w http.ResponseWriter, r *http.Request) {
	editsRequest := CellEditsRequest{}
	if err := json.NewDecoder(r.Body).Decode(&editsRequest); err != nil {
		EncodeJSONResponse(ErrorResponse{Error: err.Error()}, http.StatusBadRequest, w)
		return
	}
	result, err := c.service.EditCells(r.Context(), editsRequest)
	if err != nil {
		EncodeJSONResponse(ErrorResponse{Error: err.Error()}, http.StatusBadRequest, w)
		return
	}
	EncodeJSONResponse(result.Body, result.Code, w)
}

// GetGrid - Describe the current grid
func (c *DefaultApiController) GetGrid(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetGrid(r.Context())
	if err != nil {
		EncodeJSONResponse(ErrorResponse{Error: err.Error()}, http.StatusInternalServerError, w)
		return
	}
	EncodeJSONResponse(result.Body, result.Code, w)
}

// GetSearchSpace - Cells settled by the previous search
func (c *DefaultApiController) GetSearchSpace(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetSearchSpace(r.Context())
	if err != nil {
		EncodeJSONResponse(ErrorResponse{Error: err.Error()}, http.StatusInternalServerError, w)
		return
	}
	EncodeJSONResponse(result.Body, result.Code, w)
}

// SetNavigator - Select the search engine and its options
func (c *DefaultApiController) SetNavigator(w http.ResponseWriter, r *http.Request) {
	navigatorRequest := NavigatorRequest{}
	if err := json.NewDecoder(r.Body).Decode(&navigatorRequest); err != nil {
		EncodeJSONResponse(ErrorResponse{Error: err.Error()}, http.StatusBadRequest, w)
		return
	}
	result, err := c.service.SetNavigator(r.Context(), navigatorRequest)
	if err != nil {
		EncodeJSONResponse(ErrorResponse{Error: err.Error()}, http.StatusBadRequest, w)
		return
	}
	EncodeJSONResponse(result.Body, result.Code, w)
}
