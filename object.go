package inspect

import (
	"fmt"
	"reflect"
	"regexp"
)

var plainKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z_0-9]*$`)

// key renders a property name bare when it is a plain identifier and as a
// quoted string otherwise.
func (w *walker) key(name string, depth int) node {
	if plainKey.MatchString(name) {
		return newLeaf(name, StyleNone, depth, w.cfg)
	}
	return newLeaf(quote(name), StyleString, depth, w.cfg)
}

func (w *walker) property(name string, v reflect.Value, depth int) *pair {
	return newPair(": ", w.key(name, depth+1), w.value(v, depth+1), depth+1, w.cfg)
}

func (w *walker) object(v reflect.Value, depth int, r *ref) node {
	var children []node
	header := "{ "
	switch {
	case v.Type() == recordType:
		children = make([]node, 0, v.Len())
		for i := range v.Len() {
			f := v.Index(i)
			children = append(children, w.property(f.Field(0).String(), f.Field(1), depth))
		}
	case v.Kind() == reflect.Struct:
		if name := v.Type().Name(); name != "" {
			header = name + " { "
		}
		fs := fields(v.Type())
		children = make([]node, 0, len(fs))
		for _, f := range fs {
			children = append(children, w.property(f.name, v.Field(f.index), depth))
		}
	default:
		return newLeaf(fmt.Sprint(v), StyleNone, depth, w.cfg)
	}
	return newSequence(seqSpec{header: header, footer: " }", delim: ", ", ref: r}, children, depth, w.cfg)
}
