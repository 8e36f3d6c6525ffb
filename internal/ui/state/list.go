package state

// List is a wraparound single-selection container. Every menu and the
// in-popup choice list are backed by one. A non-empty list always has a
// valid selection; an empty list has none and movement is a no-op.
type List[T any] struct {
	items []T
	index int
}

// WithItems builds a list selecting the first item when one exists.
func WithItems[T any](items []T) *List[T] {
	l := &List[T]{items: cloneItems(items), index: -1}
	if len(l.items) > 0 {
		l.index = 0
	}
	return l
}

// Next advances the selection, wrapping past the last item back to the first.
func (l *List[T]) Next() {
	if len(l.items) == 0 {
		return
	}
	if l.index >= len(l.items)-1 {
		l.index = 0
		return
	}
	l.index++
}

// Previous retreats the selection, wrapping before the first item to the last.
func (l *List[T]) Previous() {
	if len(l.items) == 0 {
		return
	}
	if l.index <= 0 {
		l.index = len(l.items) - 1
		return
	}
	l.index--
}

// Selected returns the item under the cursor, or false for an empty list.
func (l *List[T]) Selected() (T, bool) {
	if l.index < 0 || l.index >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[l.index], true
}

// Index reports the selected position, -1 when the list is empty.
func (l *List[T]) Index() int {
	return l.index
}

// Len reports the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns the backing items in display order.
func (l *List[T]) Items() []T {
	return l.items
}

// At returns the item at position i.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

func cloneItems[T any](items []T) []T {
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
