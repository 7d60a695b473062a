package queue

import (
	"container/heap"
	"strings"
)

// MinHeap is a binary min-heap over items which carry their own score.
// The ordering key is supplied by the items (Priority), not by the heap,
// so an item's score can change externally; call Update afterwards to
// restore the heap property. Update handles both directions, even though
// the searches in this module only ever decrease scores.
type MinHeap[T Priorizable] struct {
	Queue PriorityQueue // hold the priority queue
}

func NewMinHeap[T Priorizable](items []T) *MinHeap[T] {
	h := &MinHeap[T]{}
	h.Queue = make(PriorityQueue, len(items))
	for i, item := range items {
		h.Queue[i] = item
		item.SetIndex(i)
	}
	heap.Init(&h.Queue)
	return h
}

type Priorizable interface {
	Priority() float64
	Index() int
	SetIndex(index int)
	String() string
}

// Implements heap.Interface
type PriorityQueue []Priorizable

func (q PriorityQueue) Len() int           { return len(q) }
func (q PriorityQueue) Less(i, j int) bool { return q[i].Priority() < q[j].Priority() }
func (q PriorityQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].SetIndex(i)
	q[j].SetIndex(j)
}
func (q *PriorityQueue) Push(item any) {
	n := len(*q)
	pqItem := item.(Priorizable)
	pqItem.SetIndex(n)
	*q = append(*q, pqItem)
}
func (q *PriorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.SetIndex(-1) // for safety
	*q = old[:n-1]
	return item
}

func (h *MinHeap[T]) Len() int    { return h.Queue.Len() }
func (h *MinHeap[T]) Push(item T) { heap.Push(&h.Queue, item) }

// Pop removes and returns the minimum item. Returns the zero value if the
// heap is empty.
func (h *MinHeap[T]) Pop() T {
	if h.Len() == 0 {
		var empty T
		return empty
	}
	return heap.Pop(&h.Queue).(T)
}

// Update restores the heap property after the item's score changed.
func (h *MinHeap[T]) Update(item T) { heap.Fix(&h.Queue, item.Index()) }
func (h *MinHeap[T]) Peek() T       { return h.Queue[0].(T) }
func (h *MinHeap[T]) PeekAt(index int) T {
	if index >= h.Len() {
		panic("index out of bounds")
	}
	return h.Queue[index].(T)
}
func (h *MinHeap[T]) Remove(index int) { heap.Remove(&h.Queue, index) }

// RemoveItem locates the item by identity and removes it. No-op if the item
// is not contained. Linear search, the re-heapify is logarithmic.
func (h *MinHeap[T]) RemoveItem(item T) {
	for i := 0; i < h.Len(); i++ {
		if h.Queue[i] == Priorizable(item) {
			heap.Remove(&h.Queue, i)
			return
		}
	}
}

func (h *MinHeap[T]) String() string {
	var sb strings.Builder
	for i := 0; i < h.Len(); i++ {
		item := h.PeekAt(i)
		sb.WriteString(item.String())
	}
	return sb.String()
}
