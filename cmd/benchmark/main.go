package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mfreder/grid-pathfinding/pkg/grid"
	p "github.com/mfreder/grid-pathfinding/pkg/grid/path"
	"github.com/mfreder/grid-pathfinding/pkg/slice"
)

type target struct {
	origin, destination *grid.Cell
	cost                float64 // reference cost, -1 when unreachable
}

func main() {
	amountTargets := flag.Int("n", 100, "How many random searches should get run")
	rows := flag.Int("rows", 512, "Rows of the random grid")
	cols := flag.Int("cols", 512, "Columns of the random grid")
	wallShare := flag.Float64("walls", 0.3, "Share of wall cells in the random grid")
	diagonal := flag.Bool("diagonal", false, "Enable diagonal movement")
	algorithm := flag.String("search", "astar", "Select the search algorithm")
	seed := flag.Int64("seed", 0, "Seed for the grid and targets (0: time based)")
	cpuProfile := flag.String("cpu", "", "write cpu profile to file")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	start := time.Now()
	g, err := grid.New(randomWeights(rng, *rows, *cols, *wallShare), *diagonal)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[TIME-Build] = %s (%dx%d, seed %v)\n", time.Since(start), g.Rows(), g.Cols(), *seed)

	finder := getFinder(*algorithm, g)
	if finder == nil {
		log.Fatal("Search algorithm not supported")
	}

	referenceDijkstra := p.NewDijkstra(g)
	targets := createTargets(rng, g, referenceDijkstra, *amountTargets)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	benchmark(finder, targets)
}

func getFinder(algorithm string, g *grid.Grid) p.PathFinder {
	if slice.Contains([]string{"default", "astar"}, algorithm) {
		return p.NewAStar(g)
	} else if algorithm == "astar-closest" {
		astar := p.NewAStar(g)
		astar.SetClosest(true)
		return astar
	} else if algorithm == "dijkstra" {
		return p.NewDijkstra(g)
	}
	return nil
}

func randomWeights(rng *rand.Rand, rows, cols int, wallShare float64) [][]float64 {
	weights := make([][]float64, rows)
	for x := range weights {
		weights[x] = make([]float64, cols)
		for y := range weights[x] {
			if rng.Float64() < wallShare {
				weights[x][y] = grid.WallWeight
			} else {
				// small weight spread keeps the heuristic informative
				weights[x][y] = float64(1 + rng.Intn(3))
			}
		}
	}
	return weights
}

// createTargets draws random passable origin/destination pairs and computes
// the reference cost for each with the uninformed engine.
func createTargets(rng *rand.Rand, g *grid.Grid, reference *p.Dijkstra, n int) []target {
	randomPassable := func() *grid.Cell {
		for {
			c, err := g.Get(rng.Intn(g.Rows()), rng.Intn(g.Cols()))
			if err != nil {
				log.Fatal(err)
			}
			if !c.IsWall() {
				return c
			}
		}
	}

	targets := make([]target, n)
	for i := 0; i < n; i++ {
		// redraw until the pair is connected, an unreachable pair says
		// nothing about search effort
		for {
			origin := randomPassable()
			destination := randomPassable()
			reference.Search(origin, destination)
			if cost := reference.Cost(destination); cost >= 0 {
				targets[i] = target{origin: origin, destination: destination, cost: cost}
				break
			}
		}
	}
	return targets
}

// Run the benchmark for the selected finder against the reference costs
func benchmark(finder p.PathFinder, targets []target) {
	var runtime time.Duration = 0
	completed := 0

	pqPops := 0
	pqUpdates := 0
	relaxedCells := 0
	relaxationAttempts := 0

	expanded := slice.MakeFixedSizeSlice(finder.GetGrid().CellCount())

	invalidCosts := make([][2]int, 0)
	invalidResults := make([]int, 0)

	bar := progressbar.Default(int64(len(targets)))
	for i, target := range targets {
		searchStart := time.Now()
		path := finder.Search(target.origin, target.destination)
		runtime += time.Since(searchStart)
		completed++
		bar.Add(1)

		pqPops += finder.GetPqPops()
		pqUpdates += finder.GetPqUpdates()
		relaxedCells += finder.GetRelaxedCells()
		relaxationAttempts += finder.GetRelaxationAttempts()
		for _, c := range finder.GetSearchSpace() {
			expanded.Add(finder.GetGrid().CellId(c))
		}

		reachable := target.cost >= 0
		if reachable != (len(path) > 0) && target.origin != target.destination {
			invalidResults = append(invalidResults, i)
			continue
		}
		if reachable {
			cost := p.PathCost(target.origin, path)
			if math.Abs(cost-target.cost) > 1e-9 {
				invalidCosts = append(invalidCosts, [2]int{i, int(cost - target.cost)})
			}
		}
	}

	fmt.Printf("Average runtime: %.3fms\n", float64(runtime.Nanoseconds()/int64(completed))/1000000)
	fmt.Printf("Average pq pops: %d\n", pqPops/completed)
	fmt.Printf("Average pq updates: %d\n", pqUpdates/completed)
	fmt.Printf("Average relaxation attempts: %d\n", relaxationAttempts/completed)
	fmt.Printf("Average relaxed cells: %d\n", relaxedCells/completed)
	fmt.Printf("Expanded %v/%v cells over all searches (%.1f%%)\n", expanded.Len(), finder.GetGrid().CellCount(), 100*expanded.Ratio())

	fmt.Printf("%v/%v invalid results (reachability mismatch).\n", len(invalidResults), completed)
	for i, result := range invalidResults {
		t := targets[result]
		fmt.Printf("%v: Case %v ((%v,%v) -> (%v,%v)) has invalid result\n", i, result, t.origin.X, t.origin.Y, t.destination.X, t.destination.Y)
	}

	fmt.Printf("%v/%v invalid path costs.\n", len(invalidCosts), completed)
	for i, costs := range invalidCosts {
		t := targets[costs[0]]
		fmt.Printf("%v: Case %v ((%v,%v) -> (%v,%v)) has invalid cost. Difference: %v\n", i, costs[0], t.origin.X, t.origin.Y, t.destination.X, t.destination.Y, costs[1])
	}
}
