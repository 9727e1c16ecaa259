package inspect

import (
	"log/slog"
	"reflect"
)

// InspectFunc displays a value nested one level below the hook's receiver.
// It shares the options and reference tracking of the enclosing call, so
// depth limits apply and a value that leads back to the receiver is shown as
// circular.
type InspectFunc func(v any) string

// Inspector is implemented by values that control their own display.
//
// InspectValue receives the number of levels still expanded at its position
// (or [Unlimited]), the active options and an [InspectFunc] for nested
// values. A string result is used
// verbatim. Any other result is displayed in place of the receiver; it shares
// the receiver's identity, so a result that refers back to the receiver is
// reported as circular.
type Inspector interface {
	InspectValue(depth int, opts HookOptions, inspect InspectFunc) any
}

var (
	inspectorType = reflect.TypeFor[Inspector]()
	logValuerType = reflect.TypeFor[slog.LogValuer]()
)

// receiver returns v, or its address when only the pointer type implements
// iface.
func receiver(v reflect.Value, iface reflect.Type) (any, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	if v.Type().Implements(iface) {
		return v.Interface(), true
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() && reflect.PointerTo(v.Type()).Implements(iface) {
		return v.Addr().Interface(), true
	}
	return nil, false
}

// hook runs the override of v, if any. Inspector takes precedence over
// slog.LogValuer. Only a string returned by an Inspector is verbatim. The
// receiver's slot r, when it has one, counts as visited while the hook runs.
func (w *walker) hook(v reflect.Value, depth int, r *ref) (res any, verbatim, ok bool) {
	if x, ok := receiver(v, inspectorType); ok {
		if r != nil {
			r.increment()
			defer r.decrement()
		}
		res = x.(Inspector).InspectValue(w.cfg.remaining(depth), w.cfg.hookOptions(), w.nested(depth))
		_, verbatim = res.(string)
		return res, verbatim, true
	}
	if x, ok := receiver(v, logValuerType); ok {
		return logValue(x.(slog.LogValuer).LogValue().Resolve()), false, true
	}
	return nil, false, false
}

// nested walks values handed back by a hook one level below it, on the same
// tracker.
func (w *walker) nested(depth int) InspectFunc {
	return func(v any) string {
		return w.value(reflect.ValueOf(v), depth+1).render(0, 0, 0)
	}
}

// logValue converts a structured logging value into a value the walker
// displays natively. Groups become records.
func logValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindLogValuer:
		return logValue(v.Resolve())
	case slog.KindGroup:
		attrs := v.Group()
		r := make(Record, 0, len(attrs))
		for _, a := range attrs {
			if a.Equal(slog.Attr{}) {
				continue
			}
			r = append(r, Field{Key: a.Key, Value: logValue(a.Value.Resolve())})
		}
		return r
	}
	return v.Any()
}
