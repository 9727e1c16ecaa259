package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Depth: 2, Width: 80, Max: 40}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "inspect").
		WithSynopsis("inspect [opts] [files] | inspect [opts] command [args]").
		WithDescription("inspect displays YAML and JSON documents the way the inspect library displays Go values.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return inspectMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			ConfigCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("show a line diff of the inspections of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ConfigCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConfigConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Config, "config").
		WithSynopsis("config").
		WithDescription("print the effective options as a YAML config file").
		WithRun(func(cc *cli.Context, args []string) error {
			return showConfig(cfg, cc, args)
		})
}
