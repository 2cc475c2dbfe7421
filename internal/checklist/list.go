package checklist

import "daycheck/internal/item"

// List is an ordered item sequence with a single cursor. The cursor is
// -1 exactly when the list is empty, otherwise always in range.
// Navigation wraps around; removal selects the preceding item.
type List struct {
	items    []item.Item
	selected int
}

// NewList wraps items in a List. Non-empty lists start with the first
// item selected.
func NewList(items []item.Item) *List {
	l := &List{items: items, selected: -1}
	if len(items) > 0 {
		l.selected = 0
	}
	return l
}

// Items returns the underlying items in display order.
func (l *List) Items() []item.Item {
	return l.items
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Selected returns a pointer to the item under the cursor, or nil when
// the list is empty.
func (l *List) Selected() *item.Item {
	if l.selected < 0 {
		return nil
	}
	return &l.items[l.selected]
}

// SelectedIndex returns the cursor position, or -1 when the list is empty.
func (l *List) SelectedIndex() int {
	return l.selected
}

// Push appends an item. If the list was empty the new sole item
// becomes selected; otherwise the cursor stays put.
func (l *List) Push(it item.Item) {
	l.items = append(l.items, it)
	if l.selected < 0 {
		l.selected = 0
	}
}

// Next moves the cursor down, wrapping to the top. No-op on an empty list.
func (l *List) Next() {
	if len(l.items) == 0 {
		return
	}
	l.selected = (l.selected + 1) % len(l.items)
}

// Prev moves the cursor up, wrapping to the bottom. No-op on an empty list.
func (l *List) Prev() {
	if len(l.items) == 0 {
		return
	}
	l.selected = (l.selected + len(l.items) - 1) % len(l.items)
}

// RemoveSelected removes the item under the cursor. The cursor moves
// to the preceding item, wrapping, or to -1 when the list empties.
// No-op when nothing is selected.
func (l *List) RemoveSelected() {
	if l.selected < 0 {
		return
	}
	i := l.selected
	l.items = append(l.items[:i], l.items[i+1:]...)
	if len(l.items) == 0 {
		l.selected = -1
		return
	}
	l.selected = (i + len(l.items) - 1) % len(l.items)
}
