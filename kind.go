package inspect

import (
	"bytes"
	"fmt"
	"go/token"
	"log/slog"
	"math/big"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"
)

// kind is the closed set of value categories the walker dispatches on.
type kind int

const (
	kindUndefined kind = iota
	kindNull
	kindBoolean
	kindNumber
	kindBigInt
	kindString
	kindSymbol
	kindExternal
	kindFunction
	kindClass
	kindChan

	kindObject
	kindArray
	kindTypedArray
	kindBuffer
	kindDataView
	kindMap
	kindSet
	kindWeakRef
	kindDate
	kindRegExp
	kindError
	kindPromise
)

var kindNames = [...]string{
	kindUndefined:  "undefined",
	kindNull:       "null",
	kindBoolean:    "boolean",
	kindNumber:     "number",
	kindBigInt:     "bigint",
	kindString:     "string",
	kindSymbol:     "symbol",
	kindExternal:   "external",
	kindFunction:   "function",
	kindClass:      "class",
	kindChan:       "chan",
	kindObject:     "Object",
	kindArray:      "Array",
	kindTypedArray: "TypedArray",
	kindBuffer:     "Buffer",
	kindDataView:   "DataView",
	kindMap:        "Map",
	kindSet:        "Set",
	kindWeakRef:    "WeakRef",
	kindDate:       "Date",
	kindRegExp:     "RegExp",
	kindError:      "Error",
	kindPromise:    "Promise",
}

func (k kind) String() string { return kindNames[k] }

// terminal kinds always produce a single leaf and are never tracked.
func (k kind) terminal() bool { return k <= kindChan }

var (
	typeType     = reflect.TypeFor[reflect.Type]()
	promiseType  = reflect.TypeFor[Promise]()
	errorType    = reflect.TypeFor[error]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
	recordType   = reflect.TypeFor[Record]()
	slogType     = reflect.TypeFor[slog.Value]()
)

var knownTypes = map[reflect.Type]kind{
	reflect.TypeFor[time.Time]():     kindDate,
	reflect.TypeFor[regexp.Regexp](): kindRegExp,
	reflect.TypeFor[big.Int]():       kindBigInt,
	reflect.TypeFor[big.Float]():     kindNumber,
	reflect.TypeFor[bytes.Buffer]():  kindDataView,
	reflect.TypeFor[bytes.Reader]():  kindDataView,
	reflect.TypeFor[sync.Map]():      kindMap,
	recordType:                       kindObject,
}

// maxIndirections bounds pointer chains such as a `type p *p` loop.
const maxIndirections = 64

// classify returns the category of v and the value its builder works on.
// Pointers are looked through unless the pointer type itself carries the
// behavior (an error, a promise or a reflect.Type).
func classify(v reflect.Value) (kind, reflect.Value) {
	return classifyAt(v, 0)
}

func classifyAt(v reflect.Value, hops int) (kind, reflect.Value) {
	if !v.IsValid() {
		return kindUndefined, v
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return kindNull, v
		}
	}
	if v.Kind() == reflect.Interface {
		return classifyAt(v.Elem(), hops)
	}
	t := v.Type()
	if v.CanInterface() {
		switch {
		case t.Implements(typeType):
			return kindClass, v
		case t.Implements(promiseType):
			return kindPromise, v
		case t.Implements(errorType):
			return kindError, v
		}
		if k, ok := knownTypes[t]; ok {
			return k, v
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		if hops == maxIndirections {
			return kindExternal, v
		}
		return classifyAt(v.Elem(), hops+1)
	case reflect.Bool:
		return kindBoolean, v
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		if isSymbol(v) {
			return kindSymbol, v
		}
		return kindNumber, v
	case reflect.String:
		if isSymbol(v) {
			return kindSymbol, v
		}
		return kindString, v
	case reflect.Uintptr, reflect.UnsafePointer:
		return kindExternal, v
	case reflect.Func:
		return kindFunction, v
	case reflect.Chan:
		return kindChan, v
	case reflect.Slice, reflect.Array:
		return sliceKind(t), v
	case reflect.Map:
		if isSet(t) {
			return kindSet, v
		}
		return kindMap, v
	case reflect.Struct:
		if isWeakPointer(t) && v.CanInterface() {
			return kindWeakRef, v
		}
		if i := itemsField(t); i >= 0 {
			return sliceKind(t.Field(i).Type), v
		}
	}
	return kindObject, v
}

func sliceKind(t reflect.Type) kind {
	switch {
	case t.Elem().Kind() == reflect.Uint8:
		return kindBuffer
	case t.Kind() == reflect.Array && isNumeric(t.Elem()):
		return kindTypedArray
	}
	return kindArray
}

// isSymbol reports whether v is a named scalar that names itself, such as an
// enum constant or a time.Duration.
func isSymbol(v reflect.Value) bool {
	t := v.Type()
	return t.PkgPath() != "" && v.CanInterface() && t.Implements(stringerType)
}

func isNumeric(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isSet(t reflect.Type) bool {
	e := t.Elem()
	return e.Kind() == reflect.Struct && e.NumField() == 0
}

func isWeakPointer(t reflect.Type) bool {
	return t.PkgPath() == "weak" && strings.HasPrefix(t.Name(), "Pointer[")
}

// typeName is the unqualified name of t, looking through pointers. It is
// empty for unnamed types.
func typeName(t reflect.Type) string {
	return elemType(t).Name()
}

// className labels a composite collapsed by the depth limit.
func className(v reflect.Value, k kind) string {
	name := typeName(v.Type())
	switch {
	case k == kindWeakRef || k == kindPromise:
		return k.String()
	case k == kindError && !token.IsExported(name):
		return k.String()
	case name != "" && v.Type() != recordType:
		return name
	case k == kindTypedArray:
		return typeOf(v).String()
	}
	return k.String()
}

func typeOf(v reflect.Value) reflect.Type {
	return elemType(v.Type())
}

func elemType(t reflect.Type) reflect.Type {
	for i := 0; t.Kind() == reflect.Pointer && i < maxIndirections; i++ {
		t = t.Elem()
	}
	return t
}
