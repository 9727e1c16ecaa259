package inspect_test

import (
	"strings"
	"testing"

	"github.com/bjaus/inspect"
	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		a, b any
		opts []inspect.Option
		want string
	}{
		"equal": {
			a: 1, b: 1,
			want: "  1\n",
		},
		"changed": {
			a:    inspect.Record{{Key: "a", Value: 1}},
			b:    inspect.Record{{Key: "a", Value: 2}},
			want: "- { a: 1 }\n+ { a: 2 }\n",
		},
		"split": {
			a:    []string{"aaa", "bbb"},
			b:    []string{"aaa", "ccc"},
			opts: []inspect.Option{inspect.WithBreakLength(10)},
			want: "  [\n    'aaa',\n-   'bbb'\n+   'ccc'\n  ]\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inspect.Diff(tt.a, tt.b, tt.opts...))
		})
	}
}

func TestDiffIgnoresColors(t *testing.T) {
	t.Parallel()
	got := inspect.Diff(1, 2, inspect.WithColors(true))
	assert.True(t, strings.HasPrefix(got, "- "))
	assert.Contains(t, got, "\n+ ")
}
