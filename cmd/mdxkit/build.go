package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/mdxkit/internal/atomicfile"
	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/manifest"
	"github.com/g5becks/mdxkit/internal/parser"
	"github.com/g5becks/mdxkit/internal/registry"
	"github.com/g5becks/mdxkit/internal/render"
	"github.com/g5becks/mdxkit/internal/ui"
)

const (
	htmlDirName     = "html"
	llmsFileName    = "llms.txt"
	llmsFullName    = "llms-full.txt"
	outputFilePerm  = 0o644
	specIndexName   = "index.html"
	htmlFileSuffix  = ".html"
	progressMessage = "rendering pages"
	progressPoll    = 10 * time.Millisecond
)

func newBuildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Write the manifest, llms.txt files and rendered HTML pages",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-progress", Usage: "Disable the progress bar"},
		},
		Action: buildAction,
	}
}

func buildAction(ctx context.Context, cmd *cli.Command) error {
	cfg, reg, err := loadRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	for _, problem := range reg.Problems() {
		_, _ = color.New(color.FgYellow).Fprintf(os.Stderr, "warning: %s\n", problem.Error())
	}

	outputDir := cfg.OutputDir()
	m := manifest.Generate(reg, manifest.Options{Site: manifest.Site{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		BaseURL:     cfg.Site.BaseURL,
	}})
	if err := m.Save(outputDir); err != nil {
		return err
	}

	if err := writeLLMs(cfg, reg); err != nil {
		return err
	}

	pages, err := renderPages(ctx, cfg, reg, !cmd.Bool("no-progress"))
	if err != nil {
		return err
	}

	log.Debug().Str("output", outputDir).Int("pages", pages).Msg("build finished")
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "built %d page(s), %d spec(s) into %s\n",
		pages, len(m.Specs), outputDir)

	return nil
}

func writeLLMs(cfg *config.Config, reg *registry.Registry) error {
	site := cfg.Site
	files := map[string]string{
		llmsFileName: reg.LLMsTxt(site.Title, site.Description, site.BaseURL),
		llmsFullName: reg.LLMsFullTxt(site.Title, site.Description, site.BaseURL),
	}
	for name, content := range files {
		if err := atomicfile.WriteFile(filepath.Join(cfg.OutputDir(), name), []byte(content), outputFilePerm); err != nil {
			return err
		}
	}
	return nil
}

// renderPages writes one HTML file per document and one per mounted spec.
// It returns the number of pages written.
func renderPages(ctx context.Context, cfg *config.Config, reg *registry.Registry, showProgress bool) (int, error) {
	r := render.New(render.Options{Theme: cfg.Highlight.Theme, BaseURL: cfg.Site.BaseURL})
	htmlDir := filepath.Join(cfg.OutputDir(), htmlDirName)

	paths := reg.Paths()
	prefixes := reg.APIPrefixes()

	var tracker *progress.Tracker
	if showProgress {
		pw := ui.NewProgressWriter(os.Stderr)
		tracker = ui.NewPageTracker(pw, progressMessage, len(paths)+len(prefixes))
		go pw.Render()
		defer func() {
			tracker.MarkAsDone()
			for pw.IsRenderInProgress() {
				time.Sleep(progressPoll)
			}
		}()
	}

	written := 0
	step := func() {
		written++
		if tracker != nil {
			tracker.Increment(1)
		}
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		doc, _ := reg.Doc(path)
		out := filepath.Join(htmlDir, filepath.FromSlash(path)+htmlFileSuffix)
		if err := atomicfile.WriteFile(out, []byte(r.Document(doc)), outputFilePerm); err != nil {
			return written, err
		}
		step()
	}

	for _, prefix := range prefixes {
		spec, _ := reg.APISpec(prefix)
		page := parser.ParsedDoc{
			Frontmatter: parser.Frontmatter{Title: spec.Info.Title, Description: spec.Info.Description},
			Content:     []parser.DocNode{parser.OpenAPI{Spec: spec, ShowSchemas: true}},
		}
		out := filepath.Join(htmlDir, filepath.FromSlash(prefix), specIndexName)
		if err := atomicfile.WriteFile(out, []byte(r.Document(page)), outputFilePerm); err != nil {
			return written, err
		}
		step()
	}

	return written, nil
}
