package collection

import (
	"fmt"
	"slices"
	"sync"
)

// BoundedQueue is a FIFO queue with a fixed capacity. It is safe for concurrent use.
type BoundedQueue struct {
	mu       sync.Mutex
	capacity int
	items    []any
}

func NewBoundedQueue(capacity int) *BoundedQueue {
	return &BoundedQueue{capacity: capacity, items: make([]any, 0, capacity)}
}

// Add appends v, failing with ErrFull when the queue is at capacity.
func (q *BoundedQueue) Add(v any) error {
	if !q.Offer(v) {
		return fmt.Errorf("%w: capacity %d", ErrFull, q.capacity)
	}

	return nil
}

func (q *BoundedQueue) Offer(v any) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) >= q.capacity {
		return false
	}

	q.items = append(q.items, v)

	return true
}

func (q *BoundedQueue) Poll() (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}

	v := q.items[0]
	q.items = q.items[1:]

	return v, true
}

func (q *BoundedQueue) Peek() (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}

	return q.items[0], true
}

func (q *BoundedQueue) Cap() int { return q.capacity }

func (q *BoundedQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

func (q *BoundedQueue) Values() []any {
	q.mu.Lock()
	defer q.mu.Unlock()

	return slices.Clone(q.items)
}

// Deque is an unbounded double-ended queue. It is safe for concurrent use.
type Deque struct {
	mu    sync.Mutex
	items []any
}

func NewDeque() *Deque { return &Deque{} }

func (d *Deque) Add(v any) error {
	d.PushBack(v)
	return nil
}

func (d *Deque) Offer(v any) bool {
	d.PushBack(v)
	return true
}

func (d *Deque) PushBack(v any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.items = append(d.items, v)
}

func (d *Deque) PushFront(v any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.items = slices.Insert(d.items, 0, v)
}

func (d *Deque) PopFront() (any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.items) == 0 {
		return nil, false
	}

	v := d.items[0]
	d.items = d.items[1:]

	return v, true
}

func (d *Deque) PopBack() (any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.items) == 0 {
		return nil, false
	}

	v := d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]

	return v, true
}

func (d *Deque) Poll() (any, bool) { return d.PopFront() }

func (d *Deque) Peek() (any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.items) == 0 {
		return nil, false
	}

	return d.items[0], true
}

func (d *Deque) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.items)
}

func (d *Deque) Values() []any {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.items)
}
