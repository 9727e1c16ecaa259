package main

import (
	"fmt"
	"io"

	"github.com/bjaus/inspect"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"
)

func inspectMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			return sub.Run(cc, args[1:])
		}
	}
	opts, err := cfg.options(cc.Out)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		if err := inspectInput(cfg, cc, name, opts); err != nil {
			return err
		}
	}
	return nil
}

func inspectInput(cfg *MainConfig, cc *cli.Context, name string, opts []inspect.Option) error {
	r, err := openInput(name, cc.In)
	if err != nil {
		return err
	}
	defer r.Close()
	for doc, err := range documents(r) {
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", name, err)
		}
		v, err := cfg.value(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := inspect.Write(cc.Out, v, opts...); err != nil {
			return err
		}
	}
	return nil
}

// value is the value displayed for a document: the document itself, or the
// result of the -e expression evaluated against it.
func (cfg *MainConfig) value(doc *yaml.Node) (any, error) {
	if cfg.Expr == "" {
		return newConverter().convert(doc)
	}
	var plain any
	if err := doc.Decode(&plain); err != nil {
		return nil, err
	}
	env := map[string]any{}
	if m, ok := plain.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["doc"] = plain
	res, err := expr.Eval(cfg.Expr, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", cfg.Expr, err)
	}
	return res, nil
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	opts, err := cfg.options(cc.Out)
	if err != nil {
		return err
	}
	a, err := firstValue(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := firstValue(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if inspect.Inspect(a, opts...) == inspect.Inspect(b, opts...) {
		return nil
	}
	if _, err := io.WriteString(cc.Out, inspect.Diff(a, b, opts...)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func firstValue(cfg *MainConfig, cc *cli.Context, name string) (any, error) {
	r, err := openInput(name, cc.In)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	for doc, err := range documents(r) {
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", name, err)
		}
		return cfg.value(doc)
	}
	return nil, nil
}

func showConfig(cfg *ConfigConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Config.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: config takes no args, got %v", cli.ErrUsage, args)
	}
	conf, err := cfg.resolve()
	if err != nil {
		return err
	}
	return conf.Encode(cc.Out)
}
