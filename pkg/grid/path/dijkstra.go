package path

import (
	"container/heap"

	"github.com/mfreder/grid-pathfinding/pkg/grid"
	"github.com/mfreder/grid-pathfinding/pkg/queue"
)

// Dijkstra is the uninformed reference engine. It keeps its own per-cell
// items indexed by the dense cell id instead of touching the grid's
// transient state, so it can run against the same grid as a correctness
// reference without interfering with A*'s bookkeeping.
type Dijkstra struct {
	g     *grid.Grid
	items []*queue.Item
	kpis  SearchKPIs
}

func NewDijkstra(g *grid.Grid) *Dijkstra {
	return &Dijkstra{g: g}
}

func (d *Dijkstra) Search(start, end *grid.Cell) []*grid.Cell {
	d.items = make([]*queue.Item, d.g.CellCount())
	d.kpis.Reset()

	origin := d.g.CellId(start)
	destination := d.g.CellId(end)

	originItem := queue.NewQueueItem(origin, 0, -1)
	d.items[origin] = originItem
	pq := queue.NewQueue(originItem)

	for pq.Len() > 0 {
		currentItem := heap.Pop(pq).(*queue.Item)
		currentCell := d.g.CellById(currentItem.ItemId)
		d.kpis.pqPops++

		if currentItem.ItemId == destination {
			break
		}
		d.kpis.settledCells++

		for _, neighbor := range d.g.Neighbors(currentCell) {
			d.kpis.relaxationAttempts++
			if neighbor.IsWall() {
				continue
			}
			successor := d.g.CellId(neighbor)

			if d.items[successor] == nil {
				newPriority := d.items[currentItem.ItemId].Priority + neighbor.GetCost(currentCell)
				pqItem := queue.NewQueueItem(successor, newPriority, currentItem.ItemId)
				d.items[successor] = pqItem
				heap.Push(pq, pqItem)
				d.kpis.pqUpdates++
			} else {
				if updatedCost := d.items[currentItem.ItemId].Priority + neighbor.GetCost(currentCell); updatedCost < d.items[successor].Priority {
					pq.Update(d.items[successor], updatedCost)
					d.items[successor].Predecessor = currentItem.ItemId
					d.kpis.pqUpdates++
				}
			}
			d.kpis.relaxedCells++
		}
	}

	path := make([]*grid.Cell, 0) // by default, a non-existing path is an empty slice
	if d.items[destination] != nil {
		for id := destination; id != origin; id = d.items[id].Predecessor {
			path = append([]*grid.Cell{d.g.CellById(id)}, path...)
		}
	}
	return path
}

// Cost returns the total cost of the previously computed path, or -1 if the
// destination was not reached.
func (d *Dijkstra) Cost(end *grid.Cell) float64 {
	item := d.items[d.g.CellId(end)]
	if item == nil {
		return -1
	}
	return item.Priority
}

func (d *Dijkstra) GetSearchSpace() []*grid.Cell {
	searchSpace := make([]*grid.Cell, 0)
	for id, item := range d.items {
		if item != nil {
			searchSpace = append(searchSpace, d.g.CellById(id))
		}
	}
	return searchSpace
}

func (d *Dijkstra) GetPqPops() int             { return d.kpis.pqPops }
func (d *Dijkstra) GetPqUpdates() int          { return d.kpis.pqUpdates }
func (d *Dijkstra) GetRelaxationAttempts() int { return d.kpis.relaxationAttempts }
func (d *Dijkstra) GetRelaxedCells() int       { return d.kpis.relaxedCells }
func (d *Dijkstra) GetSettledCells() int       { return d.kpis.settledCells }
func (d *Dijkstra) GetGrid() *grid.Grid        { return d.g }
