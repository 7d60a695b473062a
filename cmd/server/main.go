package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mfreder/grid-pathfinding/pkg/grid"
	"github.com/mfreder/grid-pathfinding/pkg/server/restapi"
)

func main() {
	addr := flag.String("addr", ":8081", "Address to listen on")
	gridFile := flag.String("grid", "", "Grid file to load (see cmd/grid-builder)")
	rows := flag.Int("rows", 32, "Rows of the blank grid when no file is given")
	cols := flag.Int("cols", 32, "Columns of the blank grid when no file is given")
	diagonal := flag.Bool("diagonal", false, "Enable diagonal movement for the blank grid")
	finder := flag.String("finder", "astar", "Select the search engine (astar, dijkstra)")
	flag.Parse()

	g, err := loadGrid(*gridFile, *rows, *cols, *diagonal)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Serving a %dx%d grid (diagonal: %v)\n", g.Rows(), g.Cols(), g.Diagonal())

	registry := prometheus.NewRegistry()
	metrics := restapi.NewMetrics(registry)

	service := restapi.NewDefaultApiService(g, finder, metrics)
	controller := restapi.NewDefaultApiController(service)
	router := restapi.NewInstrumentedRouter(metrics, registry, controller)

	log.Printf("Listening on %v\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, router))
}

func loadGrid(gridFile string, rows, cols int, diagonal bool) (*grid.Grid, error) {
	if gridFile != "" {
		return grid.NewGridFromFile(gridFile)
	}
	weights := make([][]float64, rows)
	for x := range weights {
		weights[x] = make([]float64, cols)
		for y := range weights[x] {
			weights[x][y] = 1
		}
	}
	return grid.New(weights, diagonal)
}
