// SPDX-License-Identifier: MIT

package restapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates a new router for any number of api routers
func NewRouter(routers ...Router) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	for _, api := range routers {
		for _, route := range api.Routes() {
			var handler http.Handler
			handler = route.HandlerFunc
			handler = Logger(handler, route.Name)

			router.
				Methods(route.Method).
				Path(route.Pattern).
				Name(route.Name).
				Handler(handler)
		}
	}

	return router
}

// NewInstrumentedRouter additionally wires the prometheus middleware and the
// /metrics endpoint against the given registry.
func NewInstrumentedRouter(metrics *Metrics, registry *prometheus.Registry, routers ...Router) *mux.Router {
	router := NewRouter(routers...)
	router.Use(PromHttpMiddleware(metrics))
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods("GET")
	return router
}
