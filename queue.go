package oioo

// compactAfter is the minimum number of vacated head cells before the line
// shifts its remaining items to the front of the backing array.
const compactAfter = 32

// waitline is the overflow queue: a slice-backed FIFO with a moving head
// index, so a promotion does not shift every remaining item.
//
// The line is unbounded; it grows with append and releases item references
// as soon as they leave.
type waitline[T any] struct {
	items []T
	head  int
}

// push appends an item to the tail of the line.
func (w *waitline[T]) push(item T) {
	w.items = append(w.items, item)
}

// pop removes and returns the item at the head of the line.
//
// Returns the zero value and false if the line is empty.
func (w *waitline[T]) pop() (T, bool) {
	var zero T
	if w.head == len(w.items) {
		return zero, false
	}

	item := w.items[w.head]
	w.items[w.head] = zero // release the reference
	w.head++

	switch {
	case w.head == len(w.items):
		// Drained; start over at the front of the backing array.
		w.items = w.items[:0]
		w.head = 0
	case w.head >= compactAfter && w.head > len(w.items)/2:
		n := copy(w.items, w.items[w.head:])
		clear(w.items[n:])
		w.items = w.items[:n]
		w.head = 0
	}

	return item, true
}

// len returns the number of items waiting in the line.
func (w *waitline[T]) len() int {
	return len(w.items) - w.head
}

// reset empties the line, releasing every item reference.
func (w *waitline[T]) reset() {
	clear(w.items)
	w.items = w.items[:0]
	w.head = 0
}

// rangeItems calls f for each waiting item from head to tail, stopping early
// if f returns false. The return value reports whether the walk completed.
func (w *waitline[T]) rangeItems(f func(item T) bool) bool {
	for _, item := range w.items[w.head:] {
		if !f(item) {
			return false
		}
	}

	return true
}
