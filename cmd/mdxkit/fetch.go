package main

import (
	"context"

	"github.com/urfave/cli/v3"

	mdxsync "github.com/g5becks/mdxkit/internal/sync"
	"github.com/g5becks/mdxkit/internal/ui"
)

func newFetchCommand() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Download remote OpenAPI specs",
		ArgsUsage: "[prefix...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Ignore the lock file and download again"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Show planned changes without writing files"},
			&cli.IntFlag{Name: "parallel", Aliases: []string{"p"}, Usage: "Maximum parallel downloads", Value: defaultParallel},
		},
		Action: fetchAction,
	}
}

func fetchAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dryRun := cmd.Bool("dry-run")
	printer := ui.NewFetchPrinter(dryRun)

	result, err := mdxsync.Run(ctx, cfg, mdxsync.Options{
		Prefixes:    cmd.Args().Slice(),
		Force:       cmd.Bool("force"),
		DryRun:      dryRun,
		MaxParallel: cmd.Int("parallel"),
		OnEvent:     printer.HandleEvent,
	})
	printer.PrintSummary(result)

	return err
}
