package inspect

import (
	"cmp"
	"reflect"
	"slices"
	"strconv"
	"sync"
)

// indexed splits an array-like value into its items, the struct holding its
// named properties and the type name shown in the header.
func indexed(v reflect.Value) (items, owner reflect.Value, props []field, name string) {
	t := v.Type()
	if v.Kind() == reflect.Struct {
		return readable(v.Field(itemsField(t))), v, properties(t), t.Name()
	}
	return v, v, nil, t.Name()
}

// elements builds at most limit items of an indexed collection, followed by a
// suspension counting the rest.
func (w *walker) elements(items reflect.Value, limit, depth int, elem func(reflect.Value) node) (children []node, truncated bool) {
	n := items.Len()
	shown := n
	if limit != Unlimited && n > limit {
		shown = limit
	}
	children = make([]node, 0, shown+1)
	for i := range shown {
		children = append(children, elem(items.Index(i)))
	}
	if shown < n {
		children = append(children, newSuspension(n-shown, depth+1, w.cfg))
		truncated = true
	}
	return children, truncated
}

// extend appends the named properties of an indexed collection. After a
// truncation each of them starts its own row.
func (w *walker) extend(children []node, owner reflect.Value, props []field, depth int, truncated bool) []node {
	for _, f := range props {
		p := w.property(f.name, owner.Field(f.index), depth)
		p.breakAlways = truncated
		children = append(children, p)
	}
	return children
}

func (w *walker) array(v reflect.Value, depth int, r *ref) node {
	items, owner, props, name := indexed(v)
	children, truncated := w.elements(items, w.cfg.maxArrayLength, depth, func(e reflect.Value) node {
		return w.value(e, depth+1)
	})
	tabulate := numeric(children)
	children = w.extend(children, owner, props, depth, truncated)

	header := "[ "
	if name != "" {
		header = name + " [ "
	}
	return newSequence(seqSpec{header: header, footer: " ]", delim: ", ", ref: r, tabulate: tabulate}, children, depth, w.cfg)
}

// numeric reports whether every item is a number, which makes the items a
// grid candidate.
func numeric(children []node) bool {
	n := 0
	for _, c := range children {
		l, ok := c.(*leaf)
		switch {
		case !ok:
			return false
		case l.style == StyleNumber || l.style == StyleBigInt:
			n++
		case !l.breakAlways:
			return false
		}
	}
	return n > 0
}

func (w *walker) typedArray(v reflect.Value, depth int, r *ref) node {
	items, owner, props, name := indexed(v)
	children, truncated := w.elements(items, w.cfg.maxTypedArrayLength, depth, func(e reflect.Value) node {
		return newLeaf(number(e), StyleNumber, depth+1, w.cfg)
	})
	children = w.extend(children, owner, props, depth, truncated)

	if name == "" {
		name = items.Type().String()
	}
	return newSequence(seqSpec{header: name + " [ ", footer: " ]", delim: ", ", ref: r, tabulate: true}, children, depth, w.cfg)
}

const hexDigits = "0123456789abcdef"

func (w *walker) buffer(v reflect.Value, depth int, r *ref) node {
	items, owner, props, name := indexed(v)
	children, truncated := w.elements(items, w.cfg.maxBufferLength, depth, func(e reflect.Value) node {
		b := byte(e.Uint())
		return newLeaf(string([]byte{hexDigits[b>>4], hexDigits[b&0xf]}), StyleNone, depth+1, w.cfg)
	})
	children = w.extend(children, owner, props, depth, truncated)

	if name == "" {
		name = "Buffer"
	}
	return newSequence(seqSpec{header: "<" + name + " ", footer: ">", delim: " ", ref: r, tabulate: true}, children, depth, w.cfg)
}

type entry struct {
	key, value reflect.Value
}

func (w *walker) mapping(v reflect.Value, depth int, r *ref) node {
	name := v.Type().Name()
	var entries []entry
	if m, ok := pointerTo[sync.Map](v); ok {
		name = "sync.Map"
		m.Range(func(k, val any) bool {
			entries = append(entries, entry{key: reflect.ValueOf(k), value: reflect.ValueOf(val)})
			return true
		})
	} else {
		entries = make([]entry, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			entries = append(entries, entry{key: iter.Key(), value: iter.Value()})
		}
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return compare(a.key, b.key) })

	if name == "" {
		name = "Map"
	}
	children := w.entries(len(entries), w.cfg.maxMapLength, depth, func(i int) node {
		e := entries[i]
		return newPair(" => ", w.value(e.key, depth+1), w.value(e.value, depth+1), depth+1, w.cfg)
	})
	header := name + "(" + strconv.Itoa(len(entries)) + ") { "
	return newSequence(seqSpec{header: header, footer: " }", delim: ", ", ref: r}, children, depth, w.cfg)
}

func (w *walker) set(v reflect.Value, depth int, r *ref) node {
	keys := v.MapKeys()
	slices.SortStableFunc(keys, compare)

	name := v.Type().Name()
	if name == "" {
		name = "Set"
	}
	children := w.entries(len(keys), w.cfg.maxSetLength, depth, func(i int) node {
		return w.value(keys[i], depth+1)
	})
	header := name + "(" + strconv.Itoa(len(keys)) + ") { "
	return newSequence(seqSpec{header: header, footer: " }", delim: ", ", ref: r}, children, depth, w.cfg)
}

// entries builds at most limit of n keyed entries, followed by a suspension.
func (w *walker) entries(n, limit, depth int, build func(int) node) []node {
	shown := n
	if limit != Unlimited && n > limit {
		shown = limit
	}
	children := make([]node, 0, shown+1)
	for i := range shown {
		children = append(children, build(i))
	}
	if shown < n {
		children = append(children, newSuspension(n-shown, depth+1, w.cfg))
	}
	return children
}

// compare orders map keys deterministically. Keys of different dynamic types
// are ordered by type name.
func compare(a, b reflect.Value) int {
	for a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	for b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	switch {
	case validity(a) == 0 || validity(b) == 0:
		return cmp.Compare(validity(a), validity(b))
	case a.Type() != b.Type():
		return cmp.Compare(a.Type().String(), b.Type().String())
	}

	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ac, bc := a.Complex(), b.Complex()
		if c := cmp.Compare(real(ac), real(bc)); c != 0 {
			return c
		}
		return cmp.Compare(imag(ac), imag(bc))
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case a.Bool():
			return 1
		}
		return -1
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		return cmp.Compare(a.Pointer(), b.Pointer())
	case reflect.Struct:
		for i := range a.NumField() {
			if c := compare(a.Field(i), b.Field(i)); c != 0 {
				return c
			}
		}
		return 0
	case reflect.Array:
		for i := range a.Len() {
			if c := compare(a.Index(i), b.Index(i)); c != 0 {
				return c
			}
		}
		return 0
	}
	return 0
}

func validity(v reflect.Value) int {
	if !v.IsValid() || (v.Kind() == reflect.Interface && v.IsNil()) {
		return 0
	}
	return 1
}
