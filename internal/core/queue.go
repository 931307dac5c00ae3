package core

import "container/heap"

// ProcessQueue is a FIFO ready queue. It is not safe for concurrent use; each
// simulation owns its own queue.
type ProcessQueue[T any] struct {
	queue []T
}

func NewProcessQueue[T any]() *ProcessQueue[T] {
	return &ProcessQueue[T]{queue: make([]T, 0)}
}

func (p *ProcessQueue[T]) AddToEnd(item T) {
	p.queue = append(p.queue, item)
}

func (p *ProcessQueue[T]) RemoveFromTop() (T, bool) {
	var zero T
	if len(p.queue) == 0 {
		return zero, false
	}
	item := p.queue[0]
	p.queue[0] = zero
	p.queue = p.queue[1:]
	return item, true
}

// SelectionQueue is a ready queue that always yields the item ordered first
// by less. Callers must make less a strict total order to get deterministic
// tie breaking.
type SelectionQueue[T any] struct {
	h selectionHeap[T]
}

func NewSelectionQueue[T any](less func(a, b T) bool) *SelectionQueue[T] {
	return &SelectionQueue[T]{h: selectionHeap[T]{less: less}}
}

func (s *SelectionQueue[T]) Add(item T) {
	heap.Push(&s.h, item)
}

func (s *SelectionQueue[T]) RemoveFirst() (T, bool) {
	if s.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&s.h).(T), true
}

type selectionHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h selectionHeap[T]) Len() int           { return len(h.items) }
func (h selectionHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h selectionHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *selectionHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *selectionHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // avoid memory leak
	h.items = old[:n-1]
	return item
}
