package main

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/bjaus/inspect"

	"gopkg.in/yaml.v3"
)

var errRecursiveAlias = errors.New("recursive alias")

// documents yields the YAML (or JSON) documents of r in order.
func documents(r io.Reader) iter.Seq2[*yaml.Node, error] {
	return func(yield func(*yaml.Node, error) bool) {
		dec := yaml.NewDecoder(r)
		for {
			var doc yaml.Node
			err := dec.Decode(&doc)
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(&doc, err) || err != nil {
				return
			}
		}
	}
}

// openInput opens a named input, "-" being stdin.
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open input: %w", err)
	}
	return f, nil
}

// converter turns YAML nodes into values for display. Mappings become
// records, so keys keep their source order, and anchors are converted once,
// so aliases share the identity of the anchored value.
type converter struct {
	anchors map[*yaml.Node]any
	active  map[*yaml.Node]bool
}

func newConverter() *converter {
	return &converter{anchors: map[*yaml.Node]any{}, active: map[*yaml.Node]bool{}}
}

func (c *converter) convert(n *yaml.Node) (any, error) {
	if v, ok := c.anchors[n]; ok {
		return v, nil
	}
	if c.active[n] {
		return nil, fmt.Errorf("%w at line %d", errRecursiveAlias, n.Line)
	}
	c.active[n] = true
	defer delete(c.active, n)

	var (
		v   any
		err error
	)
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		return c.convert(n.Alias)
	case yaml.MappingNode:
		v, err = c.mapping(n)
	case yaml.SequenceNode:
		v, err = c.sequence(n)
	default:
		err = n.Decode(&v)
	}
	if err != nil {
		return nil, err
	}
	if n.Anchor != "" {
		c.anchors[n] = v
	}
	return v, nil
}

func (c *converter) mapping(n *yaml.Node) (inspect.Record, error) {
	r := make(inspect.Record, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		v, err := c.convert(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		r = append(r, inspect.Field{Key: n.Content[i].Value, Value: v})
	}
	return r, nil
}

func (c *converter) sequence(n *yaml.Node) ([]any, error) {
	out := make([]any, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := c.convert(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
