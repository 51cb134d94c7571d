package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/g5becks/mdxkit/internal/manifest"
	"github.com/g5becks/mdxkit/internal/ui"
)

func newDocsCommand() *cli.Command {
	return &cli.Command{
		Name:   "docs",
		Usage:  "List documents from the built manifest",
		Flags:  []cli.Flag{jsonFlag(), longFlag()},
		Action: docsAction,
	}
}

func docsAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m, err := manifest.Load(cfg.OutputDir())
	if err != nil {
		return err
	}

	docs := make([]ui.DocStatus, 0, len(m.Docs))
	for _, d := range m.Docs {
		title := d.Title
		if d.SidebarTitle != "" && title == "" {
			title = d.SidebarTitle
		}
		description := d.Description
		if description == "" {
			description = d.Summary
		}
		docs = append(docs, ui.DocStatus{
			Path:        d.Path,
			Title:       title,
			Group:       d.Group,
			Tab:         d.Tab,
			Description: description,
			Lines:       d.Lines,
		})
	}

	return ui.RenderDocList(os.Stdout, docs, listOptions(cmd, cfg))
}
