package inspect_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	c, err := inspect.LoadConfig(strings.NewReader("depth: 3\nbreakLength: 40\nmaxArrayLength: 2\n"))
	require.NoError(t, err)
	require.NotNil(t, c.Depth)
	assert.Equal(t, 3, *c.Depth)
	assert.Nil(t, c.Colors)
	assert.Nil(t, c.MaxMapLength)

	assert.Equal(t, "[ 1, 2, ... 1 more ]", inspect.Inspect([]int{1, 2, 3}, c.Options()...))
}

func TestLoadConfigOptions(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		doc   string
		value any
		want  string
	}{
		"depth": {
			doc:   "depth: 0\n",
			value: []int{1},
			want:  "[Array]",
		},
		"unlimited depth": {
			doc:   "depth: -1\n",
			value: [][][]int{{{1}}},
			want:  "[ [ [ 1 ] ] ]",
		},
		"map limit": {
			doc:   "maxMapLength: 0\n",
			value: map[string]int{"a": 1},
			want:  "Map(1) { ... 1 more }",
		},
		"buffer limit": {
			doc:   "maxBufferLength: 1\n",
			value: []byte{1, 2},
			want:  "<Buffer 01 ... 1 more>",
		},
		"colors off": {
			doc:   "colors: false\n",
			value: 1,
			want:  "1",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c, err := inspect.LoadConfig(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, inspect.Inspect(tt.value, c.Options()...))
		})
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	t.Parallel()
	c, err := inspect.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, inspect.Config{}, c)
	assert.Empty(t, c.Options())
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown key":        "width: 10\n",
		"zero break length":  "breakLength: 0\n",
		"negative depth":     "depth: -2\n",
		"wrong type":         "depth: deep\n",
		"malformed document": "depth: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := inspect.LoadConfig(strings.NewReader(doc))
			assert.ErrorIs(t, err, inspect.ErrInvalidConfig)
		})
	}
}

func TestConfigEncode(t *testing.T) {
	t.Parallel()
	depth := 3
	var buf bytes.Buffer
	require.NoError(t, inspect.Config{Depth: &depth}.Encode(&buf))
	assert.Equal(t, "depth: 3\n", buf.String())

	c, err := inspect.LoadConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, inspect.Config{Depth: &depth}, c)
}
