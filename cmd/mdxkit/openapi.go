package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/lockfile"
	"github.com/g5becks/mdxkit/internal/openapi"
	"github.com/g5becks/mdxkit/internal/render"
	"github.com/g5becks/mdxkit/internal/ui"
)

func newOpenAPICommand() *cli.Command {
	return &cli.Command{
		Name:  "openapi",
		Usage: "Inspect OpenAPI specs",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List configured specs and their status",
				Flags:  []cli.Flag{jsonFlag(), longFlag()},
				Action: openAPIListAction,
			},
			{
				Name:      "ops",
				Usage:     "List the operations of a spec",
				ArgsUsage: "[prefix|file]",
				Flags:     []cli.Flag{jsonFlag(), longFlag()},
				Action:    openAPIOpsAction,
			},
			{
				Name:      "curl",
				Usage:     "Print a curl command for an operation",
				ArgsUsage: "<prefix|file> <slug>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "base-url", Usage: "Server URL (defaults to the spec's first server)"},
				},
				Action: openAPICurlAction,
			},
			{
				Name:      "example",
				Usage:     "Print the example response for an operation",
				ArgsUsage: "<prefix|file> <slug>",
				Action:    openAPIExampleAction,
			},
		},
	}
}

func openAPIListAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	lock, err := lockfile.Load(cfg.OutputDir())
	if err != nil {
		return err
	}

	opts := listOptions(cmd, cfg)
	statuses := make([]ui.SpecStatus, 0, len(cfg.OpenAPI))
	for _, prefix := range cfg.Prefixes() {
		statuses = append(statuses, specStatus(cfg, lock, prefix))
	}

	return ui.RenderSpecList(os.Stdout, statuses, opts)
}

func specStatus(cfg *config.Config, lock *lockfile.LockFile, prefix string) ui.SpecStatus {
	spec := cfg.OpenAPI[prefix]
	status := ui.SpecStatus{
		Prefix: prefix,
		File:   spec.File,
		URL:    spec.URL,
		Path:   cfg.SpecPath(prefix),
	}

	if entry := lock.GetEntry(prefix); entry != nil {
		status.FetchedAt = entry.FetchedAt
	}

	content, err := os.ReadFile(status.Path)
	switch {
	case err != nil && spec.IsRemote():
		status.Status = "not fetched"
		return status
	case err != nil:
		status.Status = "missing"
		return status
	}

	parsed, err := openapi.Parse(string(content))
	if err != nil {
		status.Status = "invalid"
		return status
	}

	status.Status = "ok"
	status.Title = parsed.Info.Title
	status.Version = parsed.Info.Version
	status.Operations = len(parsed.Operations)
	return status
}

func openAPIOpsAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return requireArgs(cmd, 1, "openapi ops [prefix|file]")
	}

	var (
		spec *openapi.Spec
		err  error
	)
	if cmd.Args().Len() == 0 {
		spec, err = firstSpec(ctx, cmd)
	} else {
		spec, err = loadSpec(cmd, cmd.Args().First())
	}
	if err != nil {
		return err
	}

	return ui.RenderOperations(os.Stdout, spec.Operations, listOptions(cmd, nil))
}

// firstSpec returns the first spec that loads from the configured registry.
func firstSpec(ctx context.Context, cmd *cli.Command) (*openapi.Spec, error) {
	_, reg, err := loadRegistry(ctx, cmd)
	if err != nil {
		return nil, err
	}

	prefix, spec, ok := reg.FirstAPISpec()
	if !ok {
		return nil, oops.
			Code("SPEC_NOT_FOUND").
			Hint("Add an [openapi.<prefix>] table to the config").
			Errorf("no openapi spec is configured")
	}

	log.Debug().Str("prefix", prefix).Msg("listing operations of first spec")
	return spec, nil
}

func openAPICurlAction(_ context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 2, "openapi curl <prefix|file> <slug>"); err != nil {
		return err
	}

	spec, op, err := loadOperation(cmd)
	if err != nil {
		return err
	}

	baseURL := cmd.String("base-url")
	if baseURL == "" {
		baseURL = render.ServerURL(spec)
	}

	fmt.Fprintln(os.Stdout, op.Curl(baseURL))
	return nil
}

func openAPIExampleAction(_ context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 2, "openapi example <prefix|file> <slug>"); err != nil {
		return err
	}

	_, op, err := loadOperation(cmd)
	if err != nil {
		return err
	}

	status, body, ok := op.ResponseExample()
	if !ok {
		return oops.
			Code("OPERATION_NOT_FOUND").
			With("slug", op.Slug()).
			Errorf("operation %q has no success response with a schema", op.Slug())
	}

	fmt.Fprintf(os.Stdout, "%s\n%s\n", status, body)
	return nil
}

func loadOperation(cmd *cli.Command) (*openapi.Spec, openapi.Operation, error) {
	spec, err := loadSpec(cmd, cmd.Args().Get(0))
	if err != nil {
		return nil, openapi.Operation{}, err
	}

	slug := cmd.Args().Get(1)
	op, ok := spec.Operation(slug)
	if !ok {
		return nil, openapi.Operation{}, oops.
			Code("OPERATION_NOT_FOUND").
			With("slug", slug).
			Hint("Run 'mdxkit openapi ops <spec>' to see operation slugs").
			Errorf("operation %q not found", slug)
	}

	return spec, op, nil
}

// loadSpec parses ref as a file when one exists at that path, otherwise as
// a configured prefix.
func loadSpec(cmd *cli.Command, ref string) (*openapi.Spec, error) {
	path := ref
	if _, err := os.Stat(ref); err != nil {
		cfg, cfgErr := loadConfig(cmd)
		if cfgErr != nil {
			return nil, cfgErr
		}
		if _, ok := cfg.OpenAPI[ref]; !ok {
			return nil, oops.
				Code("SPEC_NOT_FOUND").
				With("spec", ref).
				Hint("Run 'mdxkit openapi list' to see configured specs").
				Errorf("no spec file or configured prefix %q", ref)
		}
		path = cfg.SpecPath(ref)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.
			Code("SPEC_NOT_FOUND").
			With("path", path).
			Hint("Run 'mdxkit fetch' for remote specs").
			Wrapf(err, "reading openapi spec")
	}

	return openapi.Parse(string(content))
}
