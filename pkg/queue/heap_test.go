package queue

import (
	"container/heap"
	"fmt"
	"testing"
)

type testItem struct {
	id    int
	score float64
	index int
}

func (t *testItem) Priority() float64  { return t.score }
func (t *testItem) Index() int         { return t.index }
func (t *testItem) SetIndex(index int) { t.index = index }
func (t *testItem) String() string     { return fmt.Sprintf("%v: %v\n", t.index, t.score) }

func newTestItem(id int, score float64) *testItem {
	return &testItem{id: id, score: score, index: -1}
}

func TestMinHeapOrdering(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	scores := []float64{7, 3, 5, 1, 9, 2, 8}
	for i, s := range scores {
		h.Push(newTestItem(i, s))
	}
	if h.Len() != len(scores) {
		t.Errorf("heap has wrong size. Is %v, should be %v", h.Len(), len(scores))
	}
	previous := h.Pop().Priority()
	for h.Len() > 0 {
		current := h.Pop().Priority()
		if current < previous {
			t.Errorf("heap popped out of order: %v after %v", current, previous)
		}
		previous = current
	}
}

func TestMinHeapPopEmpty(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	if item := h.Pop(); item != nil {
		t.Errorf("popping an empty heap should return the zero value, got %v", item)
	}
}

func TestMinHeapUpdate(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	items := []*testItem{newTestItem(0, 10), newTestItem(1, 20), newTestItem(2, 30)}
	for _, item := range items {
		h.Push(item)
	}

	// decrease a score, the usual direction during a search
	items[2].score = 5
	h.Update(items[2])
	if h.Peek() != items[2] {
		t.Errorf("decreased item should be at the root")
	}

	// increase a score, must work as well for a standalone structure
	items[2].score = 50
	h.Update(items[2])
	if h.Peek() != items[0] {
		t.Errorf("root should be the smallest item after increase")
	}
}

func TestMinHeapRemoveItem(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	items := []*testItem{newTestItem(0, 4), newTestItem(1, 2), newTestItem(2, 6)}
	for _, item := range items {
		h.Push(item)
	}
	h.RemoveItem(items[0])
	if h.Len() != 2 {
		t.Errorf("heap has wrong size after removal. Is %v, should be 2", h.Len())
	}
	for h.Len() > 0 {
		if h.Pop() == items[0] {
			t.Errorf("removed item still contained in the heap")
		}
	}
	// removing an absent item is a no-op
	h.RemoveItem(items[0])
}

func TestMinHeapInitFromSlice(t *testing.T) {
	items := []*testItem{newTestItem(0, 3), newTestItem(1, 1), newTestItem(2, 2)}
	h := NewMinHeap[*testItem](items)
	if h.Peek() != items[1] {
		t.Errorf("heap not initialized correctly, root is %v", h.Peek())
	}
}

func TestQueueUpdate(t *testing.T) {
	origin := NewQueueItem(0, 0, -1)
	pq := NewQueue(origin)
	second := NewQueueItem(1, 8, 0)
	heap.Push(pq, second)
	heap.Push(pq, NewQueueItem(2, 4, 0))

	pq.Update(second, 1)
	first := heap.Pop(pq).(*Item)
	if first != origin {
		t.Errorf("wrong item popped first: %v", first.ItemId)
	}
	next := heap.Pop(pq).(*Item)
	if next != second {
		t.Errorf("updated item not repositioned, popped %v", next.ItemId)
	}
}
