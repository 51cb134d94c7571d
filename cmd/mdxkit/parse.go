package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/g5becks/mdxkit/internal/atomicfile"
	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/highlight"
	"github.com/g5becks/mdxkit/internal/parser"
	"github.com/g5becks/mdxkit/internal/render"
	"github.com/g5becks/mdxkit/internal/ui"
)

func newParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse an MDX file into its document tree",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{jsonFlag()},
		Action:    parseAction,
	}
}

func parseAction(_ context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 1, "parse <file>"); err != nil {
		return err
	}

	text, err := readDocFile(cmd.Args().First())
	if err != nil {
		return err
	}

	doc := parser.ParseDocument(text)
	if cmd.Bool("json") {
		return ui.RenderJSON(os.Stdout, doc)
	}

	fmt.Fprint(os.Stdout, doc.RawMarkdown)
	return nil
}

func newOutlineCommand() *cli.Command {
	return &cli.Command{
		Name:      "outline",
		Usage:     "Show a file's frontmatter and headings",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{jsonFlag()},
		Action:    outlineAction,
	}
}

type outline struct {
	Path        string             `json:"path"`
	Frontmatter parser.Frontmatter `json:"frontmatter"`
	Headers     []parser.Header    `json:"headers"`
}

func outlineAction(_ context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 1, "outline <file>"); err != nil {
		return err
	}

	path := cmd.Args().First()
	text, err := readDocFile(path)
	if err != nil {
		return err
	}

	fm, _ := parser.ExtractFrontmatter(text)
	result := outline{Path: path, Frontmatter: fm, Headers: parser.Outline(text)}

	if cmd.Bool("json") {
		return ui.RenderJSON(os.Stdout, result)
	}

	fmt.Fprintf(os.Stdout, "%s\n", path)
	if fm.Title != "" {
		fmt.Fprintf(os.Stdout, "title: %s\n", fm.Title)
	}
	if fm.Description != "" {
		fmt.Fprintf(os.Stdout, "description: %s\n", fm.Description)
	}
	fmt.Fprintln(os.Stdout)

	if len(result.Headers) == 0 {
		fmt.Fprintln(os.Stdout, "No headings.")
		return nil
	}

	return ui.RenderHeaders(os.Stdout, result.Headers, ui.ListOptions{})
}

func newRenderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render an MDX file to a standalone HTML page",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write HTML to this file instead of stdout"},
			&cli.StringFlag{Name: "theme", Usage: "Chroma style for code blocks"},
			&cli.StringFlag{Name: "base-url", Usage: "Server URL used in API curl samples"},
		},
		Action: renderAction,
	}
}

func renderAction(_ context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 1, "render <file>"); err != nil {
		return err
	}

	text, err := readDocFile(cmd.Args().First())
	if err != nil {
		return err
	}

	r := render.New(render.Options{
		Theme:   resolveTheme(cmd),
		BaseURL: cmd.String("base-url"),
	})
	html := r.Document(parser.ParseDocument(text))

	if out := cmd.String("output"); out != "" {
		return atomicfile.WriteFile(out, []byte(html), outputFilePerm)
	}

	fmt.Fprint(os.Stdout, html)
	return nil
}

func newHighlightCommand() *cli.Command {
	return &cli.Command{
		Name:      "highlight",
		Usage:     "Print syntax-highlighted HTML for a source file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "lang", Usage: "Language name (defaults to the file extension)"},
			&cli.StringFlag{Name: "theme", Usage: "Chroma style"},
		},
		Action: highlightAction,
	}
}

func highlightAction(_ context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 1, "highlight <file>"); err != nil {
		return err
	}

	path := cmd.Args().First()
	code, err := readDocFile(path)
	if err != nil {
		return err
	}

	lang := cmd.String("lang")
	if lang == "" {
		lang = highlight.LanguageForFile(path)
	}

	fmt.Fprintln(os.Stdout, highlight.New(resolveTheme(cmd)).Code(code, lang))
	return nil
}

// resolveTheme prefers --theme, then the config's highlight theme. Commands
// that work on single files do not require a config.
func resolveTheme(cmd *cli.Command) string {
	if theme := cmd.String("theme"); theme != "" {
		return theme
	}
	if cfg, err := loadConfig(cmd); err == nil {
		return cfg.Highlight.Theme
	}
	return config.DefaultTheme
}
