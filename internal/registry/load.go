package registry

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/oops"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/parser"
)

const defaultGroupName = "Documentation"

// Load discovers the documents under the configured content directory,
// reads the nav and every configured spec, and builds a Registry. Specs
// that cannot be read are reported by Problems alongside those that fail to
// parse.
func Load(ctx context.Context, cfg *config.Config) (*Registry, error) {
	if cfg == nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			Errorf("config is required")
	}

	docs, err := discover(cfg.ContentRoot(), cfg.Patterns, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	nav, err := loadNav(cfg)
	if err != nil {
		return nil, err
	}
	if len(nav.Groups) == 0 {
		nav = defaultNav(docs)
	}

	var specs []SpecSource
	var readProblems []Problem
	for _, prefix := range cfg.Prefixes() {
		specPath := cfg.SpecPath(prefix)
		content, readErr := os.ReadFile(specPath)
		if readErr != nil {
			problem := oops.
				Code("SPEC_NOT_FOUND").
				With("prefix", prefix).
				With("path", specPath).
				Wrapf(readErr, "reading openapi spec")
			if cfg.OpenAPI[prefix].IsRemote() {
				problem = oops.
					Code("SPEC_NOT_FOUND").
					With("prefix", prefix).
					With("path", specPath).
					Hint("Run 'mdxkit fetch' to download remote specs").
					Wrapf(readErr, "remote openapi spec not fetched")
			}
			log.Warn().Err(readErr).Str("prefix", prefix).Msg("skipping openapi spec")
			readProblems = append(readProblems, Problem{Prefix: prefix, Err: problem})
			continue
		}
		specs = append(specs, SpecSource{Prefix: prefix, Content: string(content)})
	}

	reg, err := Build(ctx, Options{
		Nav:          nav,
		Docs:         docs,
		Specs:        specs,
		APIGroupName: cfg.APIGroupName,
	})
	if err != nil {
		return nil, err
	}

	reg.problems = append(reg.problems, readProblems...)
	sort.SliceStable(reg.problems, func(i, j int) bool {
		return reg.problems[i].Prefix < reg.problems[j].Prefix
	})

	return reg, nil
}

// discover walks root and returns the text of every file matching a
// pattern and no exclude, keyed by document path. Binary and non-UTF-8
// files are skipped.
func discover(root string, patterns, excludes []string) (map[string]string, error) {
	docs := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && excludesDir(excludes, rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !parser.IsDocFile(rel) || !matchAny(patterns, rel) || matchAny(excludes, rel) {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		if parser.IsBinary(content) || !parser.IsValidUTF8(content) {
			log.Debug().Str("path", rel).Msg("skipping non-text document")
			return nil
		}

		docs[parser.DocPath(rel)] = string(content)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oops.
				Code("CONFIG_INVALID").
				With("path", root).
				Hint("Set content_dir to the directory holding your .mdx files").
				Wrapf(err, "content directory not found")
		}
		return nil, oops.
			Code("DOC_NOT_FOUND").
			With("path", root).
			Wrapf(err, "walking content directory")
	}

	return docs, nil
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// excludesDir reports whether a "dir/**" exclude, or an exclude matching
// the directory itself, covers rel.
func excludesDir(excludes []string, rel string) bool {
	for _, pattern := range excludes {
		if pattern == rel+"/**" {
			return true
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// loadNav reads the nav file when it exists, otherwise the [nav] table.
func loadNav(cfg *config.Config) (config.Nav, error) {
	navPath := cfg.NavPath()
	data, err := os.ReadFile(navPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg.Nav, nil
		}
		return config.Nav{}, oops.
			Code("CONFIG_INVALID").
			With("path", navPath).
			Wrapf(err, "reading nav file")
	}

	var nav config.Nav
	if err := json.Unmarshal(data, &nav); err != nil {
		return config.Nav{}, oops.
			Code("CONFIG_INVALID").
			With("path", navPath).
			Hint("The nav file must be a JSON object with a \"groups\" array").
			Wrapf(err, "parsing nav file")
	}

	return nav, nil
}

// defaultNav lists every document in one group when no nav is configured.
func defaultNav(docs map[string]string) config.Nav {
	if len(docs) == 0 {
		return config.Nav{}
	}

	pages := make([]string, 0, len(docs))
	for p := range docs {
		pages = append(pages, p)
	}
	sort.Strings(pages)

	return config.Nav{Groups: []config.NavGroup{{Group: defaultGroupName, Pages: pages}}}
}
