package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Command, "rowscan").
		WithSynopsis("rowscan [opts] [files]").
		WithDescription("rowscan prints the record boundaries of delimited text files, or their fields with -fields. With no files, or -, standard input is read.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}
