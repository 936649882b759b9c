package obj

import (
	"fmt"
	"sync/atomic"
)

// List is an ordered sequence of dynamic values. The zero value is an
// empty list ready for use. Like Dict, a List is mutable until frozen,
// with deriving methods returning fresh unfrozen lists.
type List struct {
	items  []any
	frozen uint32
}

// NewList creates a list holding the given items.
func NewList(items ...any) *List {
	l := &List{items: make([]any, len(items))}
	copy(l.items, items)
	return l
}

func (l *List) isFrozen() bool {
	return l != nil && atomic.LoadUint32(&l.frozen) != 0
}

func (l *List) mark() {
	atomic.StoreUint32(&l.frozen, 1)
}

// At returns the item at index i, or nil if i is out of range.
func (l *List) At(i int) any {
	if l == nil || i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Len returns the number of items.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns a copy of the items. Changing the returned slice does
// not affect the list.
func (l *List) Items() []any {
	if l == nil {
		return nil
	}
	items := make([]any, len(l.items))
	copy(items, l.items)
	return items
}

// SetAt replaces the item at index i, returning ErrFrozen on a frozen
// list and an error if i is out of range.
func (l *List) SetAt(i int, v any) error {
	if l.isFrozen() {
		return fmt.Errorf("cannot set item %d: %w", i, ErrFrozen)
	}
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("index %d out of range for list of %d", i, len(l.items))
	}
	l.items[i] = v
	return nil
}

// Push appends items, returning ErrFrozen on a frozen list.
func (l *List) Push(items ...any) error {
	if l.isFrozen() {
		return fmt.Errorf("cannot push: %w", ErrFrozen)
	}
	l.items = append(l.items, items...)
	return nil
}

// With derives a new list with the given items appended. The receiver
// is left untouched, so With works on frozen lists as well.
func (l *List) With(items ...any) *List {
	cow := &List{items: make([]any, 0, l.Len()+len(items))}
	if l != nil {
		cow.items = append(cow.items, l.items...)
	}
	cow.items = append(cow.items, items...)
	return cow
}

// Slice derives a new list holding the items between index from
// (inclusive) and to (exclusive). Negative indexes count from the
// end, out-of-range indexes are clamped, and a slice of negative
// extent is empty.
func (l *List) Slice(from, to int) *List {
	if l == nil {
		return NewList()
	}
	n := clamp(from, len(l.items))
	m := clamp(to, len(l.items))
	if m < n {
		m = n
	}
	return NewList(l.items[n:m]...)
}

// Concat derives a new list holding the items of l followed by the
// items of other.
func (l *List) Concat(other *List) *List {
	cow := &List{items: make([]any, 0, l.Len()+other.Len())}
	if l != nil {
		cow.items = append(cow.items, l.items...)
	}
	if other != nil {
		cow.items = append(cow.items, other.items...)
	}
	return cow
}

func (l *List) String() string {
	if l == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", l.items)
}

// clamp resolves index i against a sequence of the given length,
// counting negative values from the end.
func clamp(i, length int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return 0
		}
		return i
	}
	if i > length {
		return length
	}
	return i
}
