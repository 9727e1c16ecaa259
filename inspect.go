package inspect

import (
	"fmt"
	"io"
	"iter"
)

// Inspect returns the display form of v.
func Inspect(v any, opts ...Option) string {
	c := newConfig(opts)
	return newWalker(&c).root(v).render(0, 0, 0)
}

// Write writes the display form of v to w, followed by a newline.
func Write(w io.Writer, v any, opts ...Option) error {
	if _, err := io.WriteString(w, Inspect(v, opts...)+"\n"); err != nil {
		return fmt.Errorf("write inspection: %w", err)
	}
	return nil
}

// WriteIter inspects items from an iterator and writes each one to w as it
// arrives. Every item is inspected independently, so reference ids restart
// for each of them.
func WriteIter[T any](w io.Writer, seq iter.Seq[T], opts ...Option) error {
	var streamErr error
	seq(func(item T) bool {
		if err := Write(w, item, opts...); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan writes one inspection per value received from ch until ch is
// closed or a write fails. Values left in ch after a failed write are not
// drained.
func WriteChan[T any](w io.Writer, ch <-chan T, opts ...Option) error {
	return WriteIter(w, received(ch), opts...)
}

// received yields the values of ch in arrival order.
func received[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				break
			}
		}
	}
}
