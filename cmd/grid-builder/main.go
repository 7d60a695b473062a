package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/mfreder/grid-pathfinding/pkg/grid"
	"github.com/mfreder/grid-pathfinding/pkg/grid/path"
)

var flagRows = flag.Int("rows", 64, "Rows of the generated grid")
var flagCols = flag.Int("cols", 64, "Columns of the generated grid")
var flagWalls = flag.Float64("walls", 0.3, "Share of wall cells")
var flagDiagonal = flag.Bool("diagonal", false, "Enable diagonal movement")
var flagSeed = flag.Int64("seed", 0, "Seed for the random generator (0: time based)")
var flagConnected = flag.Bool("connected", false, "Regenerate until the corners are connected")
var flagOutputFile = flag.String("o", "grid.txt", "Output grid file")

func main() {
	flag.Parse()

	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	g := buildGrid(rng)
	fmt.Printf("[TIME-Build] = %s (seed %v)\n", time.Since(start), seed)

	if err := grid.WriteGrid(g, *flagOutputFile); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %dx%d grid to %v\n", g.Rows(), g.Cols(), *flagOutputFile)
}

func buildGrid(rng *rand.Rand) *grid.Grid {
	for attempt := 0; ; attempt++ {
		weights := make([][]float64, *flagRows)
		for x := range weights {
			weights[x] = make([]float64, *flagCols)
			for y := range weights[x] {
				if rng.Float64() < *flagWalls {
					weights[x][y] = grid.WallWeight
				} else {
					weights[x][y] = 1
				}
			}
		}
		// the corners stay open, they are the common demo endpoints
		weights[0][0] = 1
		weights[*flagRows-1][*flagCols-1] = 1

		g, err := grid.New(weights, *flagDiagonal)
		if err != nil {
			log.Fatal(err)
		}
		if !*flagConnected || cornersConnected(g) {
			return g
		}
		if attempt > 1000 {
			log.Fatal("Could not generate a connected grid, lower the wall share")
		}
	}
}

func cornersConnected(g *grid.Grid) bool {
	astar := path.NewAStar(g)
	start, _ := g.Get(0, 0)
	end, _ := g.Get(g.Rows()-1, g.Cols()-1)
	return len(astar.Search(start, end)) > 0
}
