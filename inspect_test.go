package inspect_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
	"unsafe"
	"weak"

	"github.com/bjaus/inspect"
	"github.com/stretchr/testify/assert"
)

// --- Test types ---

type point struct{ X, Y int }

type outer struct {
	point
	Z int
}

type secret struct {
	name string
	n    int
}

type tagged struct {
	Name   string `inspect:"name"`
	Hidden string `inspect:"-"`
	Odd    string `inspect:"odd key"`
}

type empty struct{}

type link struct{ Next *link }

type list []string

type scores map[string]int

type vec [3]float64

type numbers struct {
	Items []int `inspect:",items"`
	Foo   string
	Bar   string
}

type blob struct {
	Data []byte `inspect:",items"`
	Foo  string
	Bar  string
}

type packet struct {
	Data []byte `inspect:",items"`
	Self *packet
}

type color int

func (c color) String() string { return [...]string{"red", "green"}[c] }

type future struct {
	state inspect.PromiseState
	value any
}

func (f *future) PromiseState() (inspect.PromiseState, any) { return f.state, f.value }

func foo() {}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func row(item string, n int, delim string) string {
	return strings.TrimSuffix(strings.Repeat(item+delim, n), delim)
}

// ============================================================
// Tests
// ============================================================

func TestInspectScalars(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"untyped nil":     {value: nil, want: "nil"},
		"nil pointer":     {value: (*int)(nil), want: "nil"},
		"nil func":        {value: (func())(nil), want: "nil"},
		"true":            {value: true, want: "true"},
		"zero":            {value: 0, want: "0"},
		"negative zero":   {value: math.Copysign(0, -1), want: "-0"},
		"positive int":    {value: 42, want: "42"},
		"negative int":    {value: -42, want: "-42"},
		"uint8":           {value: uint8(7), want: "7"},
		"float":           {value: 12.34, want: "12.34"},
		"negative float":  {value: -12.34, want: "-12.34"},
		"float32":         {value: float32(1.5), want: "1.5"},
		"large float":     {value: 1e21, want: "1e+21"},
		"small float":     {value: 1e-8, want: "1e-08"},
		"NaN":             {value: math.NaN(), want: "NaN"},
		"infinity":        {value: math.Inf(1), want: "+Inf"},
		"complex":         {value: complex(1, 2), want: "(1+2i)"},
		"pointer to int":  {value: new(int), want: "0"},
		"big int":         {value: big.NewInt(42), want: "42n"},
		"negative bigint": {value: big.NewInt(-42), want: "-42n"},
		"big float":       {value: big.NewFloat(1.5), want: "1.5"},
		"duration":        {value: time.Second, want: "1s"},
		"enum":            {value: color(1), want: "green"},
		"promise state":   {value: inspect.PromiseRejected, want: "rejected"},
		"uintptr":         {value: uintptr(255), want: "[External: ff]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value))
		})
	}
}

func TestInspectStrings(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value string
		want  string
	}{
		"plain":          {value: "foo", want: "'foo'"},
		"single quote":   {value: "f'oo", want: `'f\'oo'`},
		"double quote":   {value: `f"oo`, want: `'f"oo'`},
		"backtick":       {value: "f`oo", want: "'f`oo'"},
		"newline":        {value: "f\noo", want: `'f\noo'`},
		"tab":            {value: "a\tb", want: `'a\tb'`},
		"carriage":       {value: "a\rb", want: `'a\rb'`},
		"backspace":      {value: "a\bb", want: `'a\bb'`},
		"form feed":      {value: "a\fb", want: `'a\fb'`},
		"other controls": {value: "\x00\x1b\x7f", want: `'\x00\x1b\x7f'`},
		"unicode":        {value: "héllo", want: "'héllo'"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value))
		})
	}
}

func TestInspectEscapesAllControlCharacters(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	for r := rune(0); r < 0x20; r++ {
		b.WriteRune(r)
	}
	b.WriteRune(0x7f)
	got := inspect.Inspect([]any{b.String(), inspect.Record{{Key: b.String(), Value: b.String()}}})
	for _, r := range got {
		if r == '\n' {
			continue
		}
		assert.False(t, r < 0x20 || r == 0x7f, "raw control character %q in %q", r, got)
	}
}

func TestInspectArrays(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"empty":       {value: []int{}, want: "[]"},
		"nil slice":   {value: []int(nil), want: "[]"},
		"short":       {value: []int{1, 2, 3, 4}, want: "[ 1, 2, 3, 4 ]"},
		"strings":     {value: []string{"a", "b"}, want: "[ 'a', 'b' ]"},
		"named":       {value: list{"a"}, want: "list [ 'a' ]"},
		"array":       {value: [2]string{"a", "b"}, want: "[ 'a', 'b' ]"},
		"mixed":       {value: []any{1, "a", nil, true}, want: "[ 1, 'a', nil, true ]"},
		"nested":      {value: [][]int{{1}, {2, 3}}, want: "[ [ 1 ], [ 2, 3 ] ]"},
		"typed array": {value: [4]int32{2, 4, 8, 16}, want: "[4]int32 [ 2, 4, 8, 16 ]"},
		"unsigned":    {value: [4]uint64{2, 4, 8, 16}, want: "[4]uint64 [ 2, 4, 8, 16 ]"},
		"named typed": {value: vec{1, 2.5, 3}, want: "vec [ 1, 2.5, 3 ]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value))
		})
	}
}

func TestInspectTruncatedArray(t *testing.T) {
	t.Parallel()
	want := "[\n" +
		"   0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19,\n" +
		"  20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39,\n" +
		"  ... 8 more\n" +
		"]"
	assert.Equal(t, want, inspect.Inspect(seq(48)))
}

func TestInspectTruncatedArrayWithProperties(t *testing.T) {
	t.Parallel()
	want := "numbers [\n" +
		"   0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19,\n" +
		"  20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39,\n" +
		"  ... 8 more,\n" +
		"  Foo: 'a',\n" +
		"  Bar: 'b'\n" +
		"]"
	assert.Equal(t, want, inspect.Inspect(numbers{Items: seq(48), Foo: "a", Bar: "b"}))
}

func TestInspectArrayWithProperties(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "numbers [ 1, 2, Foo: 'a', Bar: 'b' ]", inspect.Inspect(numbers{Items: []int{1, 2}, Foo: "a", Bar: "b"}))
}

func TestInspectMaxArrayLength(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts []inspect.Option
		want string
	}{
		"limited":   {opts: []inspect.Option{inspect.WithMaxArrayLength(2)}, want: "[ 0, 1, ... 2 more ]"},
		"zero":      {opts: []inspect.Option{inspect.WithMaxArrayLength(0)}, want: "[ ... 4 more ]"},
		"unlimited": {opts: []inspect.Option{inspect.WithMaxArrayLength(inspect.Unlimited)}, want: "[ 0, 1, 2, 3 ]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(seq(4), tt.opts...))
		})
	}
}

func TestInspectUnlimitedArray(t *testing.T) {
	t.Parallel()
	got := inspect.Inspect(seq(48), inspect.WithMaxArrayLength(-1))
	assert.NotContains(t, got, "more")
	assert.Contains(t, got, "47")
}

func TestInspectTypedArrayTruncated(t *testing.T) {
	t.Parallel()
	want := "[48]uint16 [\n" +
		"  " + row("0", 26, ", ") + ",\n" +
		"  " + row("0", 14, ", ") + ",\n" +
		"  ... 8 more\n" +
		"]"
	assert.Equal(t, want, inspect.Inspect([48]uint16{}))
}

func TestInspectBuffers(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		opts  []inspect.Option
		want  string
	}{
		"short": {
			value: []byte{2, 4, 8, 16},
			want:  "<Buffer 02 04 08 10>",
		},
		"empty": {
			value: []byte{},
			want:  "<Buffer>",
		},
		"byte array": {
			value: [2]byte{0xff, 0x0a},
			want:  "<Buffer ff 0a>",
		},
		"named": {
			value: json.RawMessage("{}"),
			want:  "<RawMessage 7b 7d>",
		},
		"long": {
			value: make([]byte, 40),
			want:  "<Buffer\n  " + row("00", 26, " ") + "\n  " + row("00", 14, " ") + "\n>",
		},
		"truncated": {
			value: make([]byte, 48),
			want:  "<Buffer\n  " + row("00", 26, " ") + "\n  " + row("00", 14, " ") + "\n  ... 8 more\n>",
		},
		"truncated with properties": {
			value: blob{Data: make([]byte, 48), Foo: "a", Bar: "b"},
			want: "<blob\n  " + row("00", 26, " ") + "\n  " + row("00", 14, " ") +
				"\n  ... 8 more\n  Foo: 'a'\n  Bar: 'b'\n>",
		},
		"buffer limit": {
			value: []byte{1, 2, 3},
			opts:  []inspect.Option{inspect.WithMaxBufferLength(1)},
			want:  "<Buffer 01 ... 2 more>",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value, tt.opts...))
		})
	}
}

func TestInspectDataView(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		"bytes.Buffer { byteLength: 4, byteOffset: 0, buffer: <Buffer 61 62 63 64> }",
		inspect.Inspect(bytes.NewBufferString("abcd")),
	)

	r := bytes.NewReader([]byte{1, 2})
	_, err := r.ReadByte()
	assert.NoError(t, err)
	assert.Equal(t,
		"bytes.Reader { byteLength: 1, byteOffset: 1, buffer: <Buffer 01 02> }",
		inspect.Inspect(r),
	)
}

func TestInspectObjects(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"empty anonymous": {value: struct{}{}, want: "{}"},
		"empty named":     {value: empty{}, want: "empty {}"},
		"anonymous":       {value: struct{ Hello string }{"world"}, want: "{ Hello: 'world' }"},
		"named":           {value: point{X: 1, Y: 2}, want: "point { X: 1, Y: 2 }"},
		"pointer":         {value: &point{X: 1, Y: 2}, want: "point { X: 1, Y: 2 }"},
		"unexported":      {value: secret{name: "x", n: 1}, want: "secret { name: 'x', n: 1 }"},
		"tags":            {value: tagged{Name: "a", Hidden: "h", Odd: "b"}, want: "tagged { name: 'a', 'odd key': 'b' }"},
		"embedded":        {value: outer{point: point{X: 1, Y: 2}, Z: 3}, want: "outer { point: point { X: 1, Y: 2 }, Z: 3 }"},
		"nil field":       {value: link{}, want: "link { Next: nil }"},
		"record":          {value: inspect.Record{{Key: "hello", Value: "world"}}, want: "{ hello: 'world' }"},
		"record keys":     {value: inspect.Record{{Key: "1", Value: 1}, {Key: "a-b", Value: 2}}, want: "{ '1': 1, 'a-b': 2 }"},
		"empty record":    {value: inspect.Record{}, want: "{}"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value))
		})
	}
}

func TestInspectObjectSplits(t *testing.T) {
	t.Parallel()
	v := inspect.Record{
		{Key: "first", Value: strings.Repeat("a", 30)},
		{Key: "second", Value: strings.Repeat("b", 30)},
	}
	want := "{\n" +
		"  first: '" + strings.Repeat("a", 30) + "',\n" +
		"  second: '" + strings.Repeat("b", 30) + "'\n" +
		"}"
	assert.Equal(t, want, inspect.Inspect(v))
}

func TestInspectBreakLength(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[\n  'aaa',\n  'bbb'\n]", inspect.Inspect([]string{"aaa", "bbb"}, inspect.WithBreakLength(10)))
}

func TestInspectMaps(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		opts  []inspect.Option
		want  string
	}{
		"empty":      {value: map[string]int{}, want: "Map(0) {}"},
		"sorted":     {value: map[string]int{"b": 2, "a": 1}, want: "Map(2) { 'a' => 1, 'b' => 2 }"},
		"int keys":   {value: map[int]string{10: "x", 2: "y"}, want: "Map(2) { 2 => 'y', 10 => 'x' }"},
		"mixed keys": {value: map[any]int{"a": 2, 1: 1}, want: "Map(2) { 1 => 1, 'a' => 2 }"},
		"named":      {value: scores{"x": 1}, want: "scores(1) { 'x' => 1 }"},
		"limit": {
			value: map[int]int{1: 1, 2: 2, 3: 3},
			opts:  []inspect.Option{inspect.WithMaxMapLength(1)},
			want:  "Map(3) { 1 => 1, ... 2 more }",
		},
		"empty set": {value: map[string]struct{}{}, want: "Set(0) {}"},
		"set":       {value: map[string]struct{}{"b": {}, "a": {}}, want: "Set(2) { 'a', 'b' }"},
		"set limit": {
			value: map[int]struct{}{1: {}, 2: {}, 3: {}},
			opts:  []inspect.Option{inspect.WithMaxSetLength(2)},
			want:  "Set(3) { 1, 2, ... 1 more }",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value, tt.opts...))
		})
	}
}

func TestInspectSyncMap(t *testing.T) {
	t.Parallel()
	var m sync.Map
	m.Store("b", 2)
	m.Store("a", 1)
	assert.Equal(t, "sync.Map(2) { 'a' => 1, 'b' => 2 }", inspect.Inspect(&m))
}

func TestInspectSpecialObjects(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 2)
	ch <- 1
	tests := map[string]struct {
		value any
		want  string
	}{
		"date":         {value: time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), want: "2000-01-02T00:00:00.000Z"},
		"date pointer": {value: new(time.Time), want: "0001-01-01T00:00:00.000Z"},
		"date offset":  {value: time.Date(2000, 1, 2, 3, 4, 5, 6e6, time.FixedZone("", 3600)), want: "2000-01-02T03:04:05.006+01:00"},
		"regexp":       {value: regexp.MustCompile(`reg(Exp)?`), want: "/reg(Exp)?/"},
		"chan":         {value: ch, want: "[chan int len=1 cap=2]"},
		"receive chan": {value: (<-chan int)(ch), want: "[<-chan int len=1 cap=2]"},
		"class":        {value: reflect.TypeFor[point](), want: "[class point]"},
		"anonymous":    {value: reflect.TypeFor[struct{}](), want: "[class (anonymous)]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value))
		})
	}
}

func TestInspectExternal(t *testing.T) {
	t.Parallel()
	x := 1
	p := unsafe.Pointer(&x)
	assert.Equal(t, "[External: "+strconv.FormatUint(uint64(uintptr(p)), 16)+"]", inspect.Inspect(p))
}

func TestInspectFunctions(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"named":            {value: foo, want: "[function foo]"},
		"stdlib":           {value: strings.ToUpper, want: "[function ToUpper]"},
		"anonymous":        {value: func() {}, want: "[function (anonymous)]"},
		"generator":        {value: func(yield func(int) bool) {}, want: "[generator function (anonymous)]"},
		"async":            {value: func() <-chan int { return nil }, want: "[async function (anonymous)]"},
		"returns iterator": {value: func() iter.Seq[int] { return nil }, want: "[generator function (anonymous)]"},
		"async generator":  {value: func() <-chan iter.Seq2[int, string] { return nil }, want: "[async generator function (anonymous)]"},
		"async push":       {value: func(yield func(int) bool) <-chan int { return nil }, want: "[async function (anonymous)]"},
		"async value":      {value: func() <-chan func() bool { return nil }, want: "[async function (anonymous)]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value))
		})
	}
}

func TestInspectErrors(t *testing.T) {
	t.Parallel()
	a, b := errors.New("a"), errors.New("b")
	tests := map[string]struct {
		value any
		want  string
	}{
		"plain":    {value: errors.New("boom"), want: "Error: boom"},
		"wrapped":  {value: fmt.Errorf("wrap: %w", errors.New("boom")), want: "Error: wrap: boom { [cause]: Error: boom }"},
		"multiple": {value: fmt.Errorf("%w, %w", a, b), want: "Error: a, b { [errors]: [ Error: a, Error: b ] }"},
		"exported": {
			value: &fs.PathError{Op: "open", Path: "x", Err: errors.New("gone")},
			want:  "*fs.PathError: open x: gone { [cause]: Error: gone }",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value))
		})
	}
}

func TestInspectPromises(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value *future
		want  string
	}{
		"pending":        {value: &future{state: inspect.PromisePending}, want: "Promise { <pending> }"},
		"fulfilled":      {value: &future{state: inspect.PromiseFulfilled, value: 42}, want: "Promise { 42 }"},
		"rejected":       {value: &future{state: inspect.PromiseRejected, value: 42}, want: "Promise { <rejected> 42 }"},
		"rejected error": {value: &future{state: inspect.PromiseRejected, value: errors.New("boom")}, want: "Promise { <rejected> Error: boom }"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value))
		})
	}
}

func TestInspectWeakRef(t *testing.T) {
	t.Parallel()
	x := new(int)
	*x = 42
	assert.Equal(t, "WeakRef { 42 }", inspect.Inspect(weak.Make(x)))
	runtime.KeepAlive(x)

	assert.Equal(t, "WeakRef { <cleared> }", inspect.Inspect(weak.Pointer[int]{}))
}

func TestInspectRecursiveObject(t *testing.T) {
	t.Parallel()
	foo := inspect.Record{{Key: "bar"}}
	bar := inspect.Record{{Key: "foo", Value: foo}}
	foo[0].Value = bar

	assert.Equal(t, "<ref *1> { bar: { foo: [circular *1] } }", inspect.Inspect(foo))
	assert.Equal(t, "<ref *1> { bar: { foo: [circular *1] } }", inspect.Inspect(foo), "ids restart per call")
}

func TestInspectRecursiveArray(t *testing.T) {
	t.Parallel()
	foo := []any{nil}
	foo[0] = []any{foo}
	assert.Equal(t, "<ref *1> [ [ [circular *1] ] ]", inspect.Inspect(foo))
}

func TestInspectRecursivePointer(t *testing.T) {
	t.Parallel()
	l := &link{}
	l.Next = l
	assert.Equal(t, "<ref *1> link { Next: [circular *1] }", inspect.Inspect(l))
}

func TestInspectRecursiveMap(t *testing.T) {
	t.Parallel()
	m := map[string]any{}
	m["self"] = m
	assert.Equal(t, "<ref *1> Map(1) { 'self' => [circular *1] }", inspect.Inspect(m))
}

func TestInspectRecursiveBuffer(t *testing.T) {
	t.Parallel()
	p := &packet{Data: make([]byte, 4)}
	p.Self = p
	assert.Equal(t, "<ref *1> <packet 00 00 00 00 Self: [circular *1]>", inspect.Inspect(p))
}

func TestInspectSharedReference(t *testing.T) {
	t.Parallel()
	x := &struct{}{}
	assert.Equal(t, "{ '1': {}, '2': {} }", inspect.Inspect(inspect.Record{{Key: "1", Value: x}, {Key: "2", Value: x}}))
	assert.Equal(t, "[ {}, {} ]", inspect.Inspect([]any{x, x}))

	shared := &point{X: 1}
	assert.Equal(t, "[ point { X: 1, Y: 0 }, point { X: 1, Y: 0 } ]", inspect.Inspect([]*point{shared, shared}))
}

func TestInspectDepth(t *testing.T) {
	t.Parallel()
	deep := inspect.Record{{Key: "foo", Value: inspect.Record{{Key: "bar", Value: inspect.Record{{Key: "baz", Value: 42}}}}}}
	tests := map[string]struct {
		value any
		opts  []inspect.Option
		want  string
	}{
		"default":   {value: deep, want: "{ foo: { bar: [Object] } }"},
		"unlimited": {value: deep, opts: []inspect.Option{inspect.WithDepth(inspect.Unlimited)}, want: "{ foo: { bar: { baz: 42 } } }"},
		"one":       {value: deep, opts: []inspect.Option{inspect.WithDepth(1)}, want: "{ foo: [Object] }"},
		"root":      {value: deep, opts: []inspect.Option{inspect.WithDepth(0)}, want: "[Object]"},
		"date":      {value: inspect.Record{{Key: "foo", Value: inspect.Record{{Key: "bar", Value: time.Now()}}}}, want: "{ foo: { bar: [Time] } }"},
		"named":     {value: &link{Next: &link{Next: &link{}}}, want: "link { Next: link { Next: [link] } }"},
		"array":     {value: [][][]int{{{1}}}, want: "[ [ [Array] ] ]"},
		"map":       {value: []any{[]any{map[int]int{}}}, want: "[ [ [Map] ] ]"},
		"scalars":   {value: [][]any{{1, "a"}}, want: "[ [ 1, 'a' ] ]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Inspect(tt.value, tt.opts...))
		})
	}
}

func TestInspectDeterministic(t *testing.T) {
	t.Parallel()
	m := map[string]any{}
	for i := range 50 {
		m[strconv.Itoa(i)] = []int{i, i * 2}
	}
	first := inspect.Inspect(m, inspect.WithMaxMapLength(inspect.Unlimited))
	for range 10 {
		assert.Equal(t, first, inspect.Inspect(m, inspect.WithMaxMapLength(inspect.Unlimited)))
	}
}

func TestInspectColors(t *testing.T) {
	t.Parallel()
	sgr := regexp.MustCompile("\x1b\\[[0-9;]*m")

	got := inspect.Inspect(42, inspect.WithColors(true))
	assert.Contains(t, got, "\x1b[33m")
	assert.Equal(t, "42", sgr.ReplaceAllString(got, ""))

	v := []string{strings.Repeat("a", 30), strings.Repeat("b", 30)}
	assert.Equal(t, inspect.Inspect(v), sgr.ReplaceAllString(inspect.Inspect(v, inspect.WithColors(true)), ""),
		"decoration does not change layout")
}

func TestInspectStylize(t *testing.T) {
	t.Parallel()
	stylize := func(text string, style inspect.Style) string { return "<" + string(style) + ">" + text }
	assert.Equal(t, "[ <number>1, <string>'a', <null>nil ]", inspect.Inspect([]any{1, "a", (*int)(nil)}, inspect.WithStylize(stylize)))
	assert.Equal(t, "<undefined>nil", inspect.Inspect(nil, inspect.WithStylize(stylize)))
}

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := inspect.Write(&buf, []int{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, "[ 1, 2 ]\n", buf.String())
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	err := inspect.Write(errWriter{}, 1)
	assert.ErrorIs(t, err, errWrite)
}

func TestWriteIter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := inspect.WriteIter(&buf, func(yield func(any) bool) {
		a := []any{nil}
		a[0] = a
		if !yield(a) {
			return
		}
		yield("b")
	})
	assert.NoError(t, err)
	assert.Equal(t, "<ref *1> [ [circular *1] ]\n'b'\n", buf.String())
}

func TestWriteIterStopsOnError(t *testing.T) {
	t.Parallel()
	calls := 0
	err := inspect.WriteIter(errWriter{}, func(yield func(int) bool) {
		for i := range 3 {
			calls++
			if !yield(i) {
				return
			}
		}
	})
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, 1, calls)
}

func TestWriteChan(t *testing.T) {
	t.Parallel()
	ch := make(chan string, 2)
	ch <- "a"
	ch <- "b"
	close(ch)
	var buf bytes.Buffer
	err := inspect.WriteChan(&buf, ch, inspect.WithColors(false))
	assert.NoError(t, err)
	assert.Equal(t, "'a'\n'b'\n", buf.String())
}

var errWrite = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }
