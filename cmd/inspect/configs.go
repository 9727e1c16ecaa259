package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bjaus/inspect"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='colorize output (default: when stdout is a terminal)'"`
	Depth      int    `cli:"name=depth desc='nesting levels to expand, -1 for unlimited'"`
	Width      int    `cli:"name=width desc='line width budget'"`
	Max        int    `cli:"name=max desc='items shown per collection, -1 for unlimited'"`
	ConfigFile string `cli:"name=config desc='YAML options file'"`
	Expr       string `cli:"name=e desc='expression evaluated against each document'"`
	Verbose    bool   `cli:"name=v aliases=verbose desc='log diagnostics to stderr'"`

	Main *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type ConfigConfig struct {
	*MainConfig
	Config *cli.Command
}

// isSet reports whether the named main option was given on the command line.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// resolve merges the config file with the options given explicitly on the
// command line, which take precedence.
func (cfg *MainConfig) resolve() (inspect.Config, error) {
	var conf inspect.Config
	if cfg.ConfigFile != "" {
		f, err := os.Open(cfg.ConfigFile)
		if err != nil {
			return conf, fmt.Errorf("unable to open config: %w", err)
		}
		defer f.Close()
		conf, err = inspect.LoadConfig(f)
		if err != nil {
			return conf, fmt.Errorf("%s: %w", cfg.ConfigFile, err)
		}
	}
	if cfg.isSet("color") {
		conf.Colors = &cfg.Color
	}
	if cfg.isSet("depth") {
		conf.Depth = &cfg.Depth
	}
	if cfg.isSet("width") {
		conf.BreakLength = &cfg.Width
	}
	if cfg.isSet("max") {
		conf.MaxArrayLength = &cfg.Max
	}
	return conf, nil
}

// options builds the inspection options for output written to w. Colors are
// enabled for terminals unless configured either way.
func (cfg *MainConfig) options(w io.Writer) ([]inspect.Option, error) {
	conf, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	opts := conf.Options()
	if conf.Colors == nil && isTerminal(w) {
		opts = append(opts, inspect.WithColors(true))
	}
	if cfg.Verbose {
		opts = append(opts, inspect.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}
	return opts, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
