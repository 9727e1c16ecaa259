package inspect

import (
	"reflect"
)

// refKey identifies an object for the duration of one Inspect call. The
// address is held as a uintptr so tracking never keeps the object alive.
type refKey struct {
	addr uintptr
	typ  reflect.Type
	n    int
}

// identity returns the key of values that can be shared or close a cycle:
// non-nil pointers, maps, channels, funcs and non-empty slices. Slices are
// keyed by length too, since two prefixes of one backing array are distinct
// values.
func identity(v reflect.Value) (refKey, bool) {
	if !v.IsValid() {
		return refKey{}, false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			return refKey{}, false
		}
		return refKey{addr: v.Pointer(), typ: v.Type()}, true
	case reflect.Slice:
		if v.Len() == 0 {
			return refKey{}, false
		}
		return refKey{addr: v.Pointer(), typ: v.Type(), n: v.Len()}, true
	}
	return refKey{}, false
}

type tracker struct {
	slots map[refKey]*ref
	next  int
}

func newTracker() *tracker {
	return &tracker{slots: map[refKey]*ref{}}
}

func (t *tracker) get(k refKey) *ref {
	return t.slots[k]
}

func (t *tracker) ensure(k refKey, depth int, c *config) *ref {
	if r, ok := t.slots[k]; ok {
		return r
	}
	r := &ref{
		base:    base{depth: depth, length: circularWidth, breakLength: c.breakLength},
		tracker: t,
	}
	t.slots[k] = r
	return r
}

// bind associates k with an existing slot, so a value substituted by a hook
// shares the identity of the value it stands in for.
func (t *tracker) bind(k refKey, r *ref) {
	if _, ok := t.slots[k]; !ok {
		t.slots[k] = r
	}
}

// idOf assigns ids lazily, in the order they are first displayed.
func (t *tracker) idOf(r *ref) int {
	if r.id == 0 {
		t.next++
		r.id = t.next
	}
	return r.id
}
