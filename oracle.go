package inspect

import (
	"reflect"
	"strings"
)

// PromiseState is the settlement state reported by a [Promise].
type PromiseState int

const (
	PromisePending PromiseState = iota
	PromiseFulfilled
	PromiseRejected
)

var promiseStates = [...]string{
	PromisePending:   "pending",
	PromiseFulfilled: "fulfilled",
	PromiseRejected:  "rejected",
}

// String returns the state name.
func (s PromiseState) String() string {
	if s < 0 || int(s) >= len(promiseStates) {
		return "unknown"
	}
	return promiseStates[s]
}

// Promise is implemented by values that represent an eventual result, such as
// futures or tasks. PromiseState must not block. The returned value is the
// result when fulfilled, the failure when rejected and ignored when pending.
type Promise interface {
	PromiseState() (PromiseState, any)
}

// settlement queries the state of a promise.
func settlement(v reflect.Value) (PromiseState, any) {
	return v.Interface().(Promise).PromiseState()
}

// handle returns the raw address of an opaque handle.
func handle(v reflect.Value) uintptr {
	if v.Kind() == reflect.UnsafePointer {
		return uintptr(v.UnsafePointer())
	}
	return uintptr(v.Uint())
}

const tagName = "inspect"

// field describes one displayed struct field.
type field struct {
	index int
	name  string
	items bool
}

func parseTag(f reflect.StructField) (name string, items, skip bool) {
	name = f.Name
	if f.Anonymous {
		name = typeName(f.Type)
	}
	tag, ok := f.Tag.Lookup(tagName)
	if !ok {
		return name, false, false
	}
	if tag == "-" {
		return "", false, true
	}
	n, opts, _ := strings.Cut(tag, ",")
	if n != "" {
		name = n
	}
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "items" {
			items = true
		}
	}
	return name, items, false
}

// fields lists the displayed fields of struct type t in declaration order.
func fields(t reflect.Type) []field {
	out := make([]field, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		name, items, skip := parseTag(f)
		if skip {
			continue
		}
		out = append(out, field{index: i, name: name, items: items})
	}
	return out
}

// itemsField returns the index of the field tagged as the indexed items of
// struct type t, or -1. Only slice and array fields qualify.
func itemsField(t reflect.Type) int {
	for _, f := range fields(t) {
		if !f.items {
			continue
		}
		switch t.Field(f.index).Type.Kind() {
		case reflect.Slice, reflect.Array:
			return f.index
		}
	}
	return -1
}

// properties lists the non-index fields of an item-bearing struct.
func properties(t reflect.Type) []field {
	all := fields(t)
	out := all[:0:0]
	for _, f := range all {
		if !f.items {
			out = append(out, f)
		}
	}
	return out
}
