package inspect

import (
	"log/slog"
	"math"
)

// Unlimited disables a depth or length limit.
const Unlimited = -1

const (
	defaultDepth          = 2
	defaultBreakLength    = 80
	defaultMaxArrayLength = 40

	unset = math.MinInt
)

type config struct {
	colors      bool
	depth       int
	breakLength int
	stylize     StylizeFunc
	logger      *slog.Logger

	maxArrayLength      int
	maxMapLength        int
	maxSetLength        int
	maxTypedArrayLength int
	maxBufferLength     int
}

// Option configures a single Inspect call.
type Option func(*config)

func defaultConfig() config {
	return config{
		depth:               defaultDepth,
		breakLength:         defaultBreakLength,
		maxArrayLength:      defaultMaxArrayLength,
		maxMapLength:        unset,
		maxSetLength:        unset,
		maxTypedArrayLength: unset,
		maxBufferLength:     unset,
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	for _, n := range []*int{&c.maxMapLength, &c.maxSetLength, &c.maxTypedArrayLength, &c.maxBufferLength} {
		if *n == unset {
			*n = c.maxArrayLength
		}
	}
	if c.breakLength <= 0 {
		c.breakLength = defaultBreakLength
	}
	if c.stylize == nil {
		c.stylize = PlainStylize
		if c.colors {
			c.stylize = ColorStylize
		}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// WithColors enables the default terminal color resolver.
// An explicit [WithStylize] takes precedence.
func WithColors(v bool) Option {
	return func(c *config) { c.colors = v }
}

// WithDepth sets how many nesting levels are expanded, the root included.
// Deeper composite values collapse to their type name, e.g. "[Object]".
// Use [Unlimited] to expand everything.
func WithDepth(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = Unlimited
		}
		c.depth = n
	}
}

// WithBreakLength sets the line width budget used to decide when a
// collection is split across lines. Default: 80.
func WithBreakLength(n int) Option {
	return func(c *config) { c.breakLength = n }
}

// WithStylize installs a custom style resolver. It is used verbatim for every
// styled fragment and is handed to [Inspector] hooks.
func WithStylize(fn StylizeFunc) Option {
	return func(c *config) { c.stylize = fn }
}

// WithLogger sets the logger that receives diagnostics, such as panics
// recovered from user methods. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMaxArrayLength limits the items shown for arrays and slices. It is also
// the default for every other per-kind limit. Negative values disable
// truncation. Default: 40.
func WithMaxArrayLength(n int) Option {
	return func(c *config) { c.maxArrayLength = limit(n) }
}

// WithMaxMapLength limits the entries shown for maps.
func WithMaxMapLength(n int) Option {
	return func(c *config) { c.maxMapLength = limit(n) }
}

// WithMaxSetLength limits the entries shown for sets.
func WithMaxSetLength(n int) Option {
	return func(c *config) { c.maxSetLength = limit(n) }
}

// WithMaxTypedArrayLength limits the items shown for fixed-size numeric arrays.
func WithMaxTypedArrayLength(n int) Option {
	return func(c *config) { c.maxTypedArrayLength = limit(n) }
}

// WithMaxBufferLength limits the bytes shown for byte buffers.
func WithMaxBufferLength(n int) Option {
	return func(c *config) { c.maxBufferLength = limit(n) }
}

func limit(n int) int {
	if n < 0 {
		return Unlimited
	}
	return n
}

// HookOptions is the read-only view of the active options handed to
// [Inspector] hooks.
type HookOptions struct {
	Colors      bool
	BreakLength int
	Stylize     StylizeFunc
}

func (c *config) hookOptions() HookOptions {
	return HookOptions{
		Colors:      c.colors,
		BreakLength: c.breakLength,
		Stylize:     c.stylize,
	}
}

// remaining reports the depth budget left at the given nesting level.
func (c *config) remaining(depth int) int {
	if c.depth == Unlimited {
		return Unlimited
	}
	return c.depth - depth
}

func (c *config) collapsed(depth int) bool {
	return c.depth != Unlimited && depth >= c.depth
}
