package inspect

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"unsafe"
)

// walker turns one value into a document tree. It lives for a single call.
type walker struct {
	cfg  *config
	refs *tracker
}

func newWalker(c *config) *walker {
	return &walker{cfg: c, refs: newTracker()}
}

// root walks the top-level value.
func (w *walker) root(v any) node {
	return w.value(reflect.ValueOf(v), 0)
}

// value walks v at the given nesting level with overrides enabled.
func (w *walker) value(v reflect.Value, depth int) node {
	return w.walk(v, depth, true, nil)
}

// walk classifies v and dispatches it. slot is the identity inherited from a
// value that an override replaced by v.
func (w *walker) walk(v reflect.Value, depth int, hooks bool, slot *ref) node {
	v = prepare(v)
	key, tracked := identity(v)
	k, v := classify(v)

	if !k.terminal() {
		return w.composite(k, v, depth, hooks, key, tracked, slot)
	}
	if hooks && k > kindNull {
		var res any
		var verbatim, ok bool
		if m := w.try(v, depth, func() { res, verbatim, ok = w.hook(v, depth, nil) }); m != nil {
			return m
		}
		if ok {
			return w.substitute(res, verbatim, depth, slot)
		}
	}
	return w.scalar(k, v, depth)
}

func (w *walker) composite(k kind, v reflect.Value, depth int, hooks bool, key refKey, tracked bool, slot *ref) node {
	r := slot
	if tracked {
		if existing := w.refs.get(key); existing != nil {
			if existing.count > 0 && existing != slot {
				existing.circular = true
				return existing
			}
			if r == nil {
				r = existing
			}
		}
		if r == nil {
			r = w.refs.ensure(key, depth, w.cfg)
		} else {
			w.refs.bind(key, r)
		}
	}

	if w.cfg.collapsed(depth) {
		return newLeaf("["+className(v, k)+"]", StyleSpecial, depth, w.cfg)
	}

	if hooks {
		var res any
		var verbatim, ok bool
		if m := w.try(v, depth, func() { res, verbatim, ok = w.hook(v, depth, r) }); m != nil {
			return m
		}
		if ok {
			return w.substitute(res, verbatim, depth, r)
		}
	}

	if r != nil {
		r.increment()
		defer r.decrement()
	}
	var n node
	if m := w.try(v, depth, func() { n = w.build(k, v, depth, r) }); m != nil {
		return m
	}
	return n
}

// substitute displays the result of an override in place of the original.
// Verbatim text of a receiver that was re-entered through its hook carries
// the receiver's ref marker.
func (w *walker) substitute(res any, verbatim bool, depth int, slot *ref) node {
	if verbatim {
		text := res.(string)
		if slot != nil && slot.circular {
			text = "<ref *" + strconv.Itoa(slot.ident()) + "> " + text
		}
		return newLeaf(text, StyleNone, depth, w.cfg)
	}
	return w.walk(reflect.ValueOf(res), depth, false, slot)
}

func (w *walker) build(k kind, v reflect.Value, depth int, r *ref) node {
	switch k {
	case kindArray:
		return w.array(v, depth, r)
	case kindTypedArray:
		return w.typedArray(v, depth, r)
	case kindBuffer:
		return w.buffer(v, depth, r)
	case kindDataView:
		return w.dataView(v, depth, r)
	case kindMap:
		return w.mapping(v, depth, r)
	case kindSet:
		return w.set(v, depth, r)
	case kindWeakRef:
		return w.weakRef(v, depth, r)
	case kindDate:
		return w.date(v, depth)
	case kindRegExp:
		return w.regExp(v, depth)
	case kindError:
		return w.errorValue(v, depth, r)
	case kindPromise:
		return w.promise(v, depth, r)
	}
	return w.object(v, depth, r)
}

// try runs fn, converting a panic raised by a user method into a marker.
func (w *walker) try(v reflect.Value, depth int, fn func()) (marker node) {
	defer func() {
		if p := recover(); p != nil {
			w.cfg.logger.Warn("inspect: recovered panic",
				slog.String("type", typeString(v)),
				slog.Any("panic", p),
			)
			marker = newLeaf(fmt.Sprintf("[panic: %v]", p), StyleSpecial, depth, w.cfg)
		}
	}()
	fn()
	return nil
}

func typeString(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

// prepare unwraps interfaces and makes v readable and addressable, so
// unexported fields can be displayed and pointer-receiver methods called.
// Structured logging values are converted to their native form.
func prepare(v reflect.Value) reflect.Value {
	v = readable(v)
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = readable(v.Elem())
	}
	v = addressable(v)
	if v.IsValid() && v.Type() == slogType && v.CanInterface() {
		return prepare(reflect.ValueOf(logValue(v.Interface().(slog.Value).Resolve())))
	}
	return v
}

// readable lifts the read-only flag of values reached through unexported
// fields. The walker never writes through the result.
func readable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// addressable copies structs and arrays held by value, so their fields and
// elements are addressable in turn.
func addressable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanAddr() || !v.CanInterface() {
		return v
	}
	switch v.Kind() {
	case reflect.Struct, reflect.Array:
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		return c
	}
	return v
}
