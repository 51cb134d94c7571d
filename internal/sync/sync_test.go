package sync_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	stdsync "sync"
	"testing"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/lockfile"
	"github.com/g5becks/mdxkit/internal/sync"
)

func TestRunWithNilConfigReturnsError(t *testing.T) {
	ctx := context.Background()
	opts := sync.Options{}

	_, err := sync.Run(ctx, nil, opts)
	if err == nil {
		t.Fatal("Run() with nil config: got nil error, want non-nil")
	}
}

func TestResolvePrefixesReturnsRemoteSorted(t *testing.T) {
	specs := map[string]config.Spec{
		"zebra":  {URL: "https://example.test/z.yaml"},
		"alpha":  {URL: "https://example.test/a.yaml"},
		"local":  {File: "openapi.yaml"},
		"middle": {URL: "https://example.test/m.yaml"},
	}

	prefixes, err := sync.ResolvePrefixes(specs, nil)
	if err != nil {
		t.Fatalf("ResolvePrefixes() error = %v", err)
	}

	want := []string{"alpha", "middle", "zebra"}
	if len(prefixes) != len(want) {
		t.Fatalf("ResolvePrefixes() returned %d prefixes, want %d", len(prefixes), len(want))
	}

	for i, prefix := range prefixes {
		if prefix != want[i] {
			t.Errorf("ResolvePrefixes()[%d] = %q, want %q", i, prefix, want[i])
		}
	}
}

func TestResolvePrefixesValidatesRequested(t *testing.T) {
	specs := map[string]config.Spec{
		"exists": {URL: "https://example.test/a.yaml"},
		"local":  {File: "openapi.yaml"},
	}

	if _, err := sync.ResolvePrefixes(specs, []string{"missing"}); err == nil {
		t.Fatal("ResolvePrefixes() with unknown prefix: got nil error, want non-nil")
	}

	if _, err := sync.ResolvePrefixes(specs, []string{"local"}); err == nil {
		t.Fatal("ResolvePrefixes() with local spec: got nil error, want non-nil")
	}
}

func TestResolvePrefixesDeduplicates(t *testing.T) {
	specs := map[string]config.Spec{
		"api":   {URL: "https://example.test/a.yaml"},
		"admin": {URL: "https://example.test/b.yaml"},
	}

	prefixes, err := sync.ResolvePrefixes(specs, []string{"api", "admin", "api"})
	if err != nil {
		t.Fatalf("ResolvePrefixes() error = %v", err)
	}

	if len(prefixes) != 2 {
		t.Fatalf("ResolvePrefixes() returned %d prefixes, want 2 (deduplicated)", len(prefixes))
	}

	if prefixes[0] != "api" || prefixes[1] != "admin" {
		t.Errorf("ResolvePrefixes() = %v, want [api admin]", prefixes)
	}
}

func newSpecServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/good.yaml":
			if r.Header.Get("If-None-Match") == `"v1"` {
				w.WriteHeader(http.StatusNotModified)
				return
			}
			w.Header().Set("ETag", `"v1"`)
			_, _ = w.Write([]byte("openapi: 3.0.0\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func newRunConfig(t *testing.T, specs map[string]config.Spec) *config.Config {
	t.Helper()

	cfg := &config.Config{
		ConfigDir: t.TempDir(),
		OpenAPI:   specs,
	}
	cfg.ApplyDefaults()

	return cfg
}

func TestRunDownloadsAndWritesLock(t *testing.T) {
	server := newSpecServer(t)
	cfg := newRunConfig(t, map[string]config.Spec{
		"api":   {URL: server.URL + "/good.yaml"},
		"local": {File: "local.yaml"},
	})

	var mu stdsync.Mutex
	var events []sync.Event

	result, err := sync.Run(context.Background(), cfg, sync.Options{
		OnEvent: func(e sync.Event) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
		},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Sources != 1 || result.Downloaded != 1 || result.Errors != 0 {
		t.Fatalf("Run() result = %+v, want 1 source downloaded", result)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Kind != sync.EventSourceStart || events[1].Kind != sync.EventSourceDone {
		t.Fatalf("events = %+v, want start then done", events)
	}

	content, err := os.ReadFile(filepath.Join(cfg.SpecsDir(), "good.yaml"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "openapi: 3.0.0\n" {
		t.Fatalf("spec content = %q", string(content))
	}

	lock, err := lockfile.Load(cfg.OutputDir())
	if err != nil {
		t.Fatalf("lockfile.Load() error = %v", err)
	}

	entry := lock.GetEntry("api")
	if entry == nil || entry.ETag != `"v1"` {
		t.Fatalf("lock entry = %+v, want ETag \"v1\"", entry)
	}

	second, err := sync.Run(context.Background(), cfg, sync.Options{})
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if second.Skipped != 1 || second.Downloaded != 0 {
		t.Fatalf("second Run() result = %+v, want 1 skipped", second)
	}
}

func TestRunReportsFailedSpecs(t *testing.T) {
	server := newSpecServer(t)
	cfg := newRunConfig(t, map[string]config.Spec{
		"good":    {URL: server.URL + "/good.yaml"},
		"missing": {URL: server.URL + "/missing.yaml"},
	})

	result, err := sync.Run(context.Background(), cfg, sync.Options{})
	if err == nil {
		t.Fatal("Run() error = nil, want DOWNLOAD_FAILED")
	}

	if result == nil || result.Errors != 1 || result.Downloaded != 1 {
		t.Fatalf("Run() result = %+v, want 1 error and 1 download", result)
	}

	lock, loadErr := lockfile.Load(cfg.OutputDir())
	if loadErr != nil {
		t.Fatalf("lockfile.Load() error = %v", loadErr)
	}
	if lock.GetEntry("good") == nil {
		t.Fatal("lock entry for successful spec was not saved")
	}
	if lock.GetEntry("missing") != nil {
		t.Fatal("lock entry for failed spec should not exist")
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	server := newSpecServer(t)
	cfg := newRunConfig(t, map[string]config.Spec{
		"api": {URL: server.URL + "/good.yaml"},
	})

	result, err := sync.Run(context.Background(), cfg, sync.Options{DryRun: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Downloaded != 1 {
		t.Fatalf("Run() result = %+v, want 1 downloaded", result)
	}

	if _, statErr := os.Stat(cfg.OutputDir()); !os.IsNotExist(statErr) {
		t.Fatalf("output dir exists after dry run: %v", statErr)
	}
}

func TestRunDropsLockEntriesForRemovedSpecs(t *testing.T) {
	server := newSpecServer(t)
	cfg := newRunConfig(t, map[string]config.Spec{
		"api":   {URL: server.URL + "/good.yaml"},
		"local": {File: "local.yaml"},
	})

	if err := os.MkdirAll(cfg.OutputDir(), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	seeded := lockfile.New()
	seeded.SetEntry("retired", &lockfile.LockEntry{URL: server.URL + "/old.yaml", Filename: "old.yaml"})
	seeded.SetEntry("local", &lockfile.LockEntry{URL: server.URL + "/was-remote.yaml", Filename: "was-remote.yaml"})
	if err := seeded.Save(cfg.OutputDir()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := sync.Run(context.Background(), cfg, sync.Options{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lock, err := lockfile.Load(cfg.OutputDir())
	if err != nil {
		t.Fatalf("lockfile.Load() error = %v", err)
	}
	if lock.GetEntry("api") == nil {
		t.Fatal("lock entry for configured spec is missing")
	}
	if lock.GetEntry("retired") != nil {
		t.Fatal("lock entry for removed spec was kept")
	}
	if lock.GetEntry("local") != nil {
		t.Fatal("lock entry for spec that is now local was kept")
	}
}
