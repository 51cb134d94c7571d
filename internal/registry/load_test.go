package registry_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/registry"
	"github.com/g5becks/mdxkit/internal/search"
)

func searchOptions(query string) search.Options {
	return search.Options{Query: query, Limit: 10}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newLoadConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")

	writeFile(t, filepath.Join(docs, "index.mdx"), "---\ntitle: Home\n---\n\nHello.\n")
	writeFile(t, filepath.Join(docs, "guides", "setup.md"), "---\ntitle: Setup\n---\n\nSteps.\n")
	writeFile(t, filepath.Join(docs, "README.md"), "# not a page\n")
	writeFile(t, filepath.Join(docs, "snippets", "shared.mdx"), "snippet\n")
	writeFile(t, filepath.Join(docs, "node_modules", "pkg", "doc.md"), "vendored\n")
	writeFile(t, filepath.Join(docs, "notes.txt"), "not markdown\n")
	writeFile(t, filepath.Join(docs, "binary.mdx"), "abc\x00def")
	writeFile(t, filepath.Join(dir, "openapi.yaml"), petSpec)

	cfg := &config.Config{
		ConfigDir: dir,
		OpenAPI: map[string]config.Spec{
			"api-reference": {File: "openapi.yaml"},
			"remote":        {URL: "https://example.test/remote.yaml"},
		},
	}
	cfg.ApplyDefaults()

	return cfg
}

func TestLoad_DiscoversDocsAndSpecs(t *testing.T) {
	cfg := newLoadConfig(t)

	reg, err := registry.Load(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"guides/setup", "index"}, reg.Paths())

	nav := reg.Nav()
	require.Len(t, nav.Groups, 1, "missing nav falls back to one group")
	assert.Equal(t, []string{"guides/setup", "index"}, nav.Groups[0].Pages)

	_, ok := reg.APIOperation("api-reference/list-pets")
	assert.True(t, ok)

	problems := reg.Problems()
	require.Len(t, problems, 1)
	assert.Equal(t, "remote", problems[0].Prefix)
	assert.Contains(t, problems[0].Error(), "not fetched")
}

func TestLoad_ReadsNavFile(t *testing.T) {
	cfg := newLoadConfig(t)
	writeFile(t, cfg.NavPath(), `{"groups":[{"group":"Start","pages":["index"]},{"group":"API Reference","pages":[]}]}`)

	reg, err := registry.Load(context.Background(), cfg)
	require.NoError(t, err)

	nav := reg.Nav()
	require.Len(t, nav.Groups, 2)
	assert.Equal(t, "Start", nav.Groups[0].Group)
	assert.Equal(t, "index", reg.DefaultPath())
}

func TestLoad_InlineNav(t *testing.T) {
	cfg := newLoadConfig(t)
	cfg.Nav = config.Nav{Groups: []config.NavGroup{{Group: "Guides", Pages: []string{"guides/setup"}}}}

	reg, err := registry.Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "guides/setup", reg.DefaultPath())
}

func TestLoad_InvalidNavFile(t *testing.T) {
	cfg := newLoadConfig(t)
	writeFile(t, cfg.NavPath(), `{"groups": [`)

	_, err := registry.Load(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing nav file")
}

func TestLoad_ReadsFetchedRemoteSpec(t *testing.T) {
	cfg := newLoadConfig(t)
	writeFile(t, cfg.SpecPath("remote"), petSpec)

	reg, err := registry.Load(context.Background(), cfg)
	require.NoError(t, err)

	assert.Empty(t, reg.Problems())
	assert.Equal(t, []string{"api-reference", "remote"}, reg.APIPrefixes())
}

func TestLoad_MissingContentDir(t *testing.T) {
	cfg := &config.Config{ConfigDir: t.TempDir(), ContentDir: "nope"}
	cfg.ApplyDefaults()

	_, err := registry.Load(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content directory not found")
}

func TestLoad_NilConfig(t *testing.T) {
	_, err := registry.Load(context.Background(), nil)
	require.Error(t, err)
}
