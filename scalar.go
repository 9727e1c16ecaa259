package inspect

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

func (w *walker) scalar(k kind, v reflect.Value, depth int) node {
	switch k {
	case kindUndefined:
		return newLeaf("nil", StyleUndefined, depth, w.cfg)
	case kindNull:
		return newLeaf("nil", StyleNull, depth, w.cfg)
	case kindBoolean:
		return newLeaf(strconv.FormatBool(v.Bool()), StyleBoolean, depth, w.cfg)
	case kindNumber:
		return newLeaf(number(v), StyleNumber, depth, w.cfg)
	case kindBigInt:
		return newLeaf(bigInt(v), StyleBigInt, depth, w.cfg)
	case kindString:
		return newLeaf(quote(v.String()), StyleString, depth, w.cfg)
	case kindSymbol:
		var s string
		if m := w.try(v, depth, func() { s = v.Interface().(fmt.Stringer).String() }); m != nil {
			return m
		}
		return newLeaf(s, StyleSymbol, depth, w.cfg)
	case kindExternal:
		return newLeaf("[External: "+strconv.FormatUint(uint64(handle(v)), 16)+"]", StyleSpecial, depth, w.cfg)
	case kindFunction:
		return newLeaf(function(v), StyleSpecial, depth, w.cfg)
	case kindClass:
		return newLeaf(class(v.Interface().(reflect.Type)), StyleSpecial, depth, w.cfg)
	case kindChan:
		return newLeaf(channel(v), StyleSpecial, depth, w.cfg)
	}
	return newLeaf(fmt.Sprint(v), StyleNone, depth, w.cfg)
}

func number(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return float(v.Float(), 32)
	case reflect.Float64:
		return float(v.Float(), 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	case reflect.Struct:
		if f, ok := pointerTo[big.Float](v); ok {
			return f.Text('g', -1)
		}
	}
	return fmt.Sprint(v)
}

// float formats f in the shortest form that round-trips, switching to
// exponent notation for very large and very small magnitudes.
func float(f float64, bits int) string {
	switch {
	case f == 0 && math.Signbit(f):
		return "-0"
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	if a := math.Abs(f); a == 0 || (a >= 1e-7 && a < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

func bigInt(v reflect.Value) string {
	if i, ok := pointerTo[big.Int](v); ok {
		return i.String() + "n"
	}
	return fmt.Sprint(v) + "n"
}

// pointerTo returns a pointer to the T held by v.
func pointerTo[T any](v reflect.Value) (*T, bool) {
	if v.CanAddr() {
		p, ok := v.Addr().Interface().(*T)
		return p, ok
	}
	if v.CanInterface() {
		if t, ok := v.Interface().(T); ok {
			return &t, true
		}
	}
	return nil, false
}

// quote wraps s in single quotes, escaping the quote and control characters.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

var (
	closureName = regexp.MustCompile(`\.func\d+(\.\d+)*$`)
	typeParams  = regexp.MustCompile(`\[[^\]]*\]`)
)

// function labels a func value with its qualifiers and symbol name.
func function(v reflect.Value) string {
	var b strings.Builder
	b.WriteByte('[')
	t := v.Type()
	if isAsync(t) {
		b.WriteString("async ")
	}
	if isGenerator(t) {
		b.WriteString("generator ")
	}
	b.WriteString("function ")
	b.WriteString(funcName(v))
	b.WriteByte(']')
	return b.String()
}

func funcName(v reflect.Value) string {
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return "(anonymous)"
	}
	name := fn.Name()
	if closureName.MatchString(name) {
		return "(anonymous)"
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if _, after, ok := strings.Cut(name, "."); ok {
		name = after
	}
	name = strings.TrimSuffix(name, "-fm")
	name = typeParams.ReplaceAllString(name, "")
	if name == "" {
		return "(anonymous)"
	}
	return name
}

// isAsync reports whether calls of t hand back a channel delivering the
// result later.
func isAsync(t reflect.Type) bool {
	return t.NumOut() == 1 && t.Out(0).Kind() == reflect.Chan && t.Out(0).ChanDir() == reflect.RecvDir
}

// isGenerator reports whether t is a push iterator or produces one, directly
// or through the channel of an async func.
func isGenerator(t reflect.Type) bool {
	if isPushIter(t) {
		return true
	}
	if t.NumOut() != 1 {
		return false
	}
	out := t.Out(0)
	if isAsync(t) {
		out = out.Elem()
	}
	return out.Kind() == reflect.Func && isPushIter(out)
}

func isPushIter(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

func class(t reflect.Type) string {
	if t.Name() == "" {
		return "[class (anonymous)]"
	}
	return "[class " + t.Name() + "]"
}

func channel(v reflect.Value) string {
	return "[" + v.Type().String() + " len=" + strconv.Itoa(v.Len()) + " cap=" + strconv.Itoa(v.Cap()) + "]"
}
