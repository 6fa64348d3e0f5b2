package report

import "sync"

// Book keeps one Totals per item in the order items were first seen.
type Book struct {
	mu     sync.Mutex
	order  []string
	totals map[string]*Totals
}

func NewBook() *Book {
	return &Book{totals: map[string]*Totals{}}
}

// Item returns the totals of an item, creating them on first use.
func (b *Book) Item(item string) *Totals {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.totals[item]
	if !ok {
		t = NewTotals(item)
		b.totals[item] = t
		b.order = append(b.order, item)
	}

	return t
}

// All returns the totals of every item in first-seen order.
func (b *Book) All() []*Totals {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := make([]*Totals, len(b.order))
	for i, item := range b.order {
		all[i] = b.totals[item]
	}

	return all
}

// Sum returns the totals of all items together, under the given item name.
func (b *Book) Sum(item string) *Totals {
	sum := NewTotals(item)
	for _, t := range b.All() {
		sum.Add(t)
	}

	return sum
}
