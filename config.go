package inspect

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration document cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the file form of the inspection options. Unset fields keep their
// defaults.
type Config struct {
	Colors              *bool `yaml:"colors,omitempty"`
	Depth               *int  `yaml:"depth,omitempty"`
	BreakLength         *int  `yaml:"breakLength,omitempty"`
	MaxArrayLength      *int  `yaml:"maxArrayLength,omitempty"`
	MaxMapLength        *int  `yaml:"maxMapLength,omitempty"`
	MaxSetLength        *int  `yaml:"maxSetLength,omitempty"`
	MaxTypedArrayLength *int  `yaml:"maxTypedArrayLength,omitempty"`
	MaxBufferLength     *int  `yaml:"maxBufferLength,omitempty"`
}

// LoadConfig decodes a YAML configuration document. Unknown keys are
// rejected. An empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Depth != nil && *c.Depth < Unlimited {
		return fmt.Errorf("%w: depth %d", ErrInvalidConfig, *c.Depth)
	}
	if c.BreakLength != nil && *c.BreakLength <= 0 {
		return fmt.Errorf("%w: breakLength %d must be positive", ErrInvalidConfig, *c.BreakLength)
	}
	return nil
}

// Options converts the set fields into options.
func (c Config) Options() []Option {
	var opts []Option
	if c.Colors != nil {
		opts = append(opts, WithColors(*c.Colors))
	}
	if c.Depth != nil {
		opts = append(opts, WithDepth(*c.Depth))
	}
	if c.BreakLength != nil {
		opts = append(opts, WithBreakLength(*c.BreakLength))
	}
	limits := []struct {
		n   *int
		opt func(int) Option
	}{
		{c.MaxArrayLength, WithMaxArrayLength},
		{c.MaxMapLength, WithMaxMapLength},
		{c.MaxSetLength, WithMaxSetLength},
		{c.MaxTypedArrayLength, WithMaxTypedArrayLength},
		{c.MaxBufferLength, WithMaxBufferLength},
	}
	for _, l := range limits {
		if l.n != nil {
			opts = append(opts, l.opt(*l.n))
		}
	}
	return opts
}

// Encode writes c as a YAML document.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
