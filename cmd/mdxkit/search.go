package main

import (
	"context"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/search"
	"github.com/g5becks/mdxkit/internal/ui"
)

func newSearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search page titles, descriptions and content",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "fuzzy", Usage: "Rank results with fuzzy matching"},
			&cli.BoolFlag{Name: "content", Usage: "Search page source line by line"},
			&cli.BoolFlag{Name: "regex", Usage: "Treat query as regex (requires --content)"},
			&cli.IntFlag{Name: "limit", Usage: "Max results (0 = use config default)"},
			jsonFlag(),
			longFlag(),
		},
		Action: searchAction,
	}
}

func searchAction(ctx context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 1, "search <query>"); err != nil {
		return err
	}

	query := strings.TrimSpace(cmd.Args().First())
	if query == "" {
		return oops.
			Code("INVALID_ARGS").
			Hint("Provide a non-empty search query").
			Errorf("search query cannot be empty")
	}

	if cmd.Bool("regex") && !cmd.Bool("content") {
		return oops.
			Code("INVALID_ARGS").
			Hint("--regex requires --content flag").
			Errorf("--regex can only be used with --content")
	}

	cfg, reg, err := loadRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	opts := listOptions(cmd, cfg)
	limit := resolveLimit(cmd, cfg)

	switch {
	case cmd.Bool("content"):
		results, searchErr := search.Content(reg.Documents(), search.ContentOptions{
			Query:    query,
			UseRegex: cmd.Bool("regex"),
			Limit:    limit,
		})
		if searchErr != nil {
			return searchErr
		}
		return ui.RenderContentResults(os.Stdout, results, opts)

	case cmd.Bool("fuzzy"):
		results, searchErr := reg.FuzzySearch(search.Options{Query: query, Limit: limit})
		if searchErr != nil {
			return searchErr
		}
		return ui.RenderSearchResults(os.Stdout, results, opts)

	default:
		entries := reg.Search(query)
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
		return ui.RenderEntries(os.Stdout, entries, opts)
	}
}

func resolveLimit(cmd *cli.Command, cfg *config.Config) int {
	if cmd.IsSet("limit") {
		return cmd.Int("limit")
	}
	return cfg.Display.DefaultLimit
}
