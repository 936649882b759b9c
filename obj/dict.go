package obj

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/npillmayer/gap/maybe"
	"github.com/npillmayer/gap/seq"
)

// ErrFrozen flags a mutation attempt on a frozen value.
var ErrFrozen = errors.New("value is frozen")

// Dict is a string-keyed dictionary with dynamic values. The zero
// value is an empty dictionary ready for use. Dicts are mutable until
// frozen; deriving methods (With, Pick, Merge, …) leave the receiver
// alone and return fresh unfrozen dictionaries instead.
type Dict struct {
	fields map[string]any
	frozen uint32
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{fields: map[string]any{}}
}

// FromMap creates a dictionary holding the entries of m. Entries are
// copied, later changes to m will not show through.
func FromMap(m map[string]any) *Dict {
	d := NewDict()
	for k, v := range m {
		d.fields[k] = v
	}
	return d
}

func (d *Dict) isFrozen() bool {
	return d != nil && atomic.LoadUint32(&d.frozen) != 0
}

func (d *Dict) mark() {
	atomic.StoreUint32(&d.frozen, 1)
}

// Get returns the value stored under key, or nil if the key is absent.
// Use Lookup to tell an absent key from a stored nil.
func (d *Dict) Get(key string) any {
	if d == nil {
		return nil
	}
	return d.fields[key]
}

// Lookup returns the value stored under key, or Nothing if absent.
func (d *Dict) Lookup(key string) maybe.Maybe[any] {
	if d == nil {
		return maybe.Nothing[any]()
	}
	v, ok := d.fields[key]
	return maybe.FromOk(v, ok)
}

// Has tells if key is present.
func (d *Dict) Has(key string) bool {
	if d == nil {
		return false
	}
	_, ok := d.fields[key]
	return ok
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.fields)
}

// Keys returns all keys in sorted order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.fields))
	for k := range d.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns all values, ordered by their keys.
func (d *Dict) Values() []any {
	return seq.Map(d.Keys(), d.Get)
}

// Pairs returns all entries as key/value pairs, ordered by key.
func (d *Dict) Pairs() []seq.Pair[string, any] {
	return seq.Map(d.Keys(), func(k string) seq.Pair[string, any] {
		return seq.P(k, d.Get(k))
	})
}

// Set stores v under key, returning ErrFrozen on a frozen dictionary.
func (d *Dict) Set(key string, v any) error {
	if d.isFrozen() {
		return fmt.Errorf("cannot set %q: %w", key, ErrFrozen)
	}
	if d.fields == nil {
		d.fields = map[string]any{}
	}
	d.fields[key] = v
	return nil
}

// Del removes the entry under key, returning ErrFrozen on a frozen
// dictionary. Deleting an absent key is a no-op.
func (d *Dict) Del(key string) error {
	if d.isFrozen() {
		return fmt.Errorf("cannot delete %q: %w", key, ErrFrozen)
	}
	delete(d.fields, key)
	return nil
}

// With derives a new dictionary with v stored under key. The receiver
// is left untouched, so With works on frozen dictionaries as well.
func (d *Dict) With(key string, v any) *Dict {
	cow := d.copy()
	cow.fields[key] = v
	return cow
}

// WithDeleted derives a new dictionary without an entry under key.
func (d *Dict) WithDeleted(key string) *Dict {
	cow := d.copy()
	delete(cow.fields, key)
	return cow
}

// Pick derives a new dictionary holding the given keys only. Absent
// keys are skipped silently.
func (d *Dict) Pick(keys ...string) *Dict {
	cow := NewDict()
	for _, k := range keys {
		if d.Has(k) {
			cow.fields[k] = d.Get(k)
		}
	}
	return cow
}

// Skip derives a new dictionary without the given keys.
func (d *Dict) Skip(keys ...string) *Dict {
	cow := d.copy()
	for _, k := range keys {
		delete(cow.fields, k)
	}
	return cow
}

// Merge derives a new dictionary holding the entries of d plus the
// entries of other, with other winning on key clashes.
func (d *Dict) Merge(other *Dict) *Dict {
	cow := d.copy()
	if other != nil {
		for k, v := range other.fields {
			cow.fields[k] = v
		}
	}
	return cow
}

func (d *Dict) copy() *Dict {
	cow := NewDict()
	if d != nil {
		for k, v := range d.fields {
			cow.fields[k] = v
		}
	}
	return cow
}

func (d *Dict) String() string {
	if d == nil {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range d.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", k, d.fields[k])
	}
	sb.WriteByte('}')
	return sb.String()
}
