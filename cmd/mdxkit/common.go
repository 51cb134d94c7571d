package main

import (
	"context"
	"errors"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/registry"
	"github.com/g5becks/mdxkit/internal/ui"
)

const formatJSON = "json"

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	return config.Load(cmd.String("config"))
}

func loadRegistry(ctx context.Context, cmd *cli.Command) (*config.Config, *registry.Registry, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	reg, err := registry.Load(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, reg, nil
}

// requireArgs checks the positional argument count.
func requireArgs(cmd *cli.Command, n int, usage string) error {
	if cmd.Args().Len() != n {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: mdxkit " + usage).
			Errorf("expected %d argument(s), got %d", n, cmd.Args().Len())
	}
	return nil
}

func readDocFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", oops.
				Code("DOC_NOT_FOUND").
				With("path", path).
				Errorf("file %q not found", path)
		}
		return "", oops.
			Code("DOC_NOT_FOUND").
			With("path", path).
			Wrapf(err, "reading %q", path)
	}
	return string(content), nil
}

// listOptions resolves --json against the configured display format. A
// command without a config falls back to tables.
func listOptions(cmd *cli.Command, cfg *config.Config) ui.ListOptions {
	opts := ui.ListOptions{JSON: cmd.Bool("json"), Verbose: cmd.Bool("long")}
	if !opts.JSON && cfg != nil && cfg.Display.Format == formatJSON {
		opts.JSON = true
	}
	return opts
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{Name: "json", Usage: "Output as JSON"}
}

func longFlag() cli.Flag {
	return &cli.BoolFlag{Name: "long", Aliases: []string{"l"}, Usage: "Show expanded fields"}
}
