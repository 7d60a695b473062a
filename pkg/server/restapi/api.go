// SPDX-License-Identifier: MIT

package restapi

import (
	"context"
	"net/http"
)

// DefaultApiRouter defines the required methods for binding the api requests to a responses for the DefaultApi
// The DefaultApiRouter implementation should parse necessary information from the http request,
// pass the data to a DefaultApiServicer to perform the required actions, then write the service results to the http response.
type DefaultApiRouter interface {
	ComputeRoute(http.ResponseWriter, *http.Request)
	ReplaceGrid(http.ResponseWriter, *http.Request)
	EditCells(http.ResponseWriter, *http.Request)
	GetGrid(http.ResponseWriter, *http.Request)
	GetSearchSpace(http.ResponseWriter, *http.Request)
	SetNavigator(http.ResponseWriter, *http.Request)
}

// DefaultApiServicer defines the api actions for the DefaultApi service.
// The service implementation holds the grid and serializes searches; the
// transient cell state must never be shared between two running searches.
type DefaultApiServicer interface {
	ComputeRoute(context.Context, RouteRequest) (ImplResponse, error)
	ReplaceGrid(context.Context, GridRequest) (ImplResponse, error)
	EditCells(context.Context, CellEditsRequest) (ImplResponse, error)
	GetGrid(context.Context) (ImplResponse, error)
	GetSearchSpace(context.Context) (ImplResponse, error)
	SetNavigator(context.Context, NavigatorRequest) (ImplResponse, error)
}
