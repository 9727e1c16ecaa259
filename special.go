package inspect

import (
	"go/token"
	"reflect"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02T15:04:05.000Z07:00"

func (w *walker) date(v reflect.Value, depth int) node {
	t, _ := pointerTo[time.Time](v)
	return newLeaf(t.Format(dateLayout), StyleDate, depth, w.cfg)
}

func (w *walker) regExp(v reflect.Value, depth int) node {
	re, _ := pointerTo[regexp.Regexp](v)
	return newLeaf("/"+re.String()+"/", StyleRegExp, depth, w.cfg)
}

// errorValue labels an error with its message. Wrapped errors are shown as the
// [cause] or [errors] property.
func (w *walker) errorValue(v reflect.Value, depth int, r *ref) node {
	err := v.Interface().(error)
	label := errorLabel(v.Type()) + ": " + err.Error()

	var wrapped node
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		if cause := u.Unwrap(); cause != nil {
			wrapped = w.internal("[cause]", reflect.ValueOf(&cause).Elem(), depth)
		}
	case interface{ Unwrap() []error }:
		if errs := u.Unwrap(); len(errs) > 0 {
			list := make([]node, 0, len(errs))
			for i := range errs {
				list = append(list, w.value(reflect.ValueOf(&errs[i]).Elem(), depth+1))
			}
			causes := newSequence(seqSpec{header: "[ ", footer: " ]", delim: ", "}, list, depth+1, w.cfg)
			wrapped = newPair(": ", newLeaf("[errors]", StyleNone, depth+1, w.cfg), causes, depth+1, w.cfg)
		}
	}
	if wrapped == nil {
		return newLeaf(label, StyleNone, depth, w.cfg)
	}
	return newSequence(seqSpec{header: label + " { ", footer: " }", delim: ", ", ref: r}, []node{wrapped}, depth, w.cfg)
}

// internal is a property that is not a field of the value, such as the
// cause of an error.
func (w *walker) internal(name string, v reflect.Value, depth int) *pair {
	return newPair(": ", newLeaf(name, StyleNone, depth+1, w.cfg), w.value(v, depth+1), depth+1, w.cfg)
}

// errorLabel is the qualified type name of exported error types, and "Error"
// for the anonymous ones returned by errors.New or fmt.Errorf.
func errorLabel(t reflect.Type) string {
	if token.IsExported(typeName(t)) {
		return t.String()
	}
	return "Error"
}

func (w *walker) promise(v reflect.Value, depth int, r *ref) node {
	state, result := settlement(v)

	var child node
	switch state {
	case PromisePending:
		child = newLeaf("<pending>", StyleSpecial, depth+1, w.cfg)
	case PromiseRejected:
		reason := w.value(reflect.ValueOf(&result).Elem(), depth+1)
		child = newPair(" ", newLeaf("<rejected>", StyleSpecial, depth+1, w.cfg), reason, depth+1, w.cfg)
	default:
		child = w.value(reflect.ValueOf(&result).Elem(), depth+1)
	}
	return newSequence(seqSpec{header: "Promise { ", footer: " }", delim: ", ", ref: r}, []node{child}, depth, w.cfg)
}

func (w *walker) weakRef(v reflect.Value, depth int, r *ref) node {
	var child node
	if p := v.MethodByName("Value").Call(nil)[0]; p.IsNil() {
		child = newLeaf("<cleared>", StyleSpecial, depth+1, w.cfg)
	} else {
		child = w.value(p, depth+1)
	}
	return newSequence(seqSpec{header: "WeakRef { ", footer: " }", delim: ", ", ref: r}, []node{child}, depth, w.cfg)
}

// dataView shows the read position and backing storage of a bytes.Buffer or
// bytes.Reader.
func (w *walker) dataView(v reflect.Value, depth int, r *ref) node {
	data, offset := v.FieldByName("buf"), v.FieldByName("off")
	if !data.IsValid() {
		data, offset = v.FieldByName("s"), v.FieldByName("i")
	}
	off := int(offset.Int())
	n := max(data.Len()-off, 0)

	children := []node{
		w.property("byteLength", reflect.ValueOf(n), depth),
		w.property("byteOffset", reflect.ValueOf(off), depth),
		w.property("buffer", data, depth),
	}
	return newSequence(seqSpec{header: v.Type().String() + " { ", footer: " }", delim: ", ", ref: r}, children, depth, w.cfg)
}
