// Package source downloads remote OpenAPI specs into the local cache.
package source

import (
	"context"

	"github.com/samber/oops"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/lockfile"
)

// FetchResult reports what happened during a fetch.
type FetchResult struct {
	Downloaded bool
	Skipped    bool
	Bytes      int
	Path       string
	LockEntry  *lockfile.LockEntry
}

// FetchOptions controls behavior for fetch operations.
type FetchOptions struct {
	Force  bool
	DryRun bool
}

// Source is a spec that can be fetched into destDir.
type Source interface {
	Fetch(
		ctx context.Context,
		destDir string,
		prevLock *lockfile.LockEntry,
		opts FetchOptions,
	) (*FetchResult, error)
}

// New creates a Source for a configured spec. Only remote specs can be
// fetched.
func New(prefix string, spec config.Spec) (Source, error) {
	if !spec.IsRemote() {
		return nil, oops.
			Code("INVALID_ARGS").
			With("prefix", prefix).
			With("file", spec.File).
			Hint("Only [openapi.<prefix>] entries with a url are fetched").
			Errorf("openapi spec %q is a local file", prefix)
	}

	return NewURL(prefix, spec)
}
