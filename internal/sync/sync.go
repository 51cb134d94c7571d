// Package sync fetches the remote OpenAPI specs named in the config into
// the output directory and records what it got in the lock file.
package sync

import (
	"context"
	"slices"
	stdsync "sync"

	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/lockfile"
	"github.com/g5becks/mdxkit/internal/source"
)

const defaultMaxParallel = 3

type EventKind int

const (
	EventSourceStart EventKind = iota
	EventSourceDone
)

// Event reports progress for one spec. Result and Err are only set on
// EventSourceDone.
type Event struct {
	Kind   EventKind
	Source string
	Result *source.FetchResult
	Err    error
}

type Options struct {
	// Prefixes limits the run to these specs. Empty means every remote spec.
	Prefixes    []string
	Force       bool
	DryRun      bool
	MaxParallel int
	// OnEvent is called from worker goroutines and must be safe for
	// concurrent use.
	OnEvent func(Event)
}

type RunResult struct {
	Sources    int
	Downloaded int
	Skipped    int
	Errors     int
}

type runState struct {
	result *source.FetchResult
	err    error
}

// Run fetches the selected specs in parallel. Failed specs are counted in the
// result and reported together as a DOWNLOAD_FAILED error once every worker
// has finished; the lock file is still updated for the ones that succeeded.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*RunResult, error) {
	if cfg == nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			Errorf("config is required")
	}

	outputDir := cfg.OutputDir()
	lock, err := lockfile.Load(outputDir)
	if err != nil {
		return nil, err
	}

	prefixes, err := resolvePrefixes(cfg.OpenAPI, opts.Prefixes)
	if err != nil {
		return nil, err
	}

	maxParallel := opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}

	emit := opts.OnEvent
	if emit == nil {
		emit = func(Event) {}
	}

	specsDir := cfg.SpecsDir()
	results := make(map[string]runState, len(prefixes))
	var resultsMu stdsync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)

	for _, prefix := range prefixes {
		spec := cfg.OpenAPI[prefix]
		previousLock := lock.GetEntry(prefix)

		group.Go(func() error {
			emit(Event{Kind: EventSourceStart, Source: prefix})

			state := runState{}
			src, err := source.New(prefix, spec)
			if err != nil {
				state.err = err
			} else {
				state.result, state.err = src.Fetch(
					groupCtx,
					specsDir,
					previousLock,
					source.FetchOptions{
						Force:  opts.Force,
						DryRun: opts.DryRun,
					},
				)
			}

			resultsMu.Lock()
			results[prefix] = state
			resultsMu.Unlock()

			emit(Event{Kind: EventSourceDone, Source: prefix, Result: state.result, Err: state.err})
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, oops.Wrapf(err, "waiting for fetch workers")
	}

	runResult := &RunResult{Sources: len(prefixes)}
	for _, prefix := range prefixes {
		state := results[prefix]
		if state.err != nil {
			runResult.Errors++
			continue
		}
		if state.result == nil {
			continue
		}

		if state.result.Skipped {
			runResult.Skipped++
		} else if state.result.Downloaded {
			runResult.Downloaded++
		}

		if !opts.DryRun && state.result.LockEntry != nil {
			lock.SetEntry(prefix, state.result.LockEntry)
		}
	}

	if !opts.DryRun {
		pruneLock(lock, cfg.OpenAPI)
		if err := lock.Save(outputDir); err != nil {
			return runResult, err
		}
	}

	if runResult.Errors > 0 {
		return runResult, oops.
			Code("DOWNLOAD_FAILED").
			With("failed_specs", runResult.Errors).
			Errorf("%d spec(s) failed to fetch", runResult.Errors)
	}

	return runResult, nil
}

// pruneLock drops entries for specs that are no longer configured as remote.
func pruneLock(lock *lockfile.LockFile, specs map[string]config.Spec) {
	for prefix := range lock.Specs {
		if spec, ok := specs[prefix]; !ok || !spec.IsRemote() {
			lock.RemoveEntry(prefix)
		}
	}
}

// resolvePrefixes returns the remote specs to fetch. Requested prefixes must
// name a configured remote spec; duplicates are dropped.
func resolvePrefixes(specs map[string]config.Spec, requested []string) ([]string, error) {
	if len(requested) == 0 {
		prefixes := make([]string, 0, len(specs))
		for prefix, spec := range specs {
			if spec.IsRemote() {
				prefixes = append(prefixes, prefix)
			}
		}

		slices.Sort(prefixes)
		return prefixes, nil
	}

	prefixes := make([]string, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))

	for _, prefix := range requested {
		spec, ok := specs[prefix]
		if !ok {
			return nil, oops.
				Code("SPEC_NOT_FOUND").
				With("prefix", prefix).
				Hint("Run 'mdxkit openapi list' to see configured specs").
				Errorf("openapi spec %q not found in config", prefix)
		}
		if !spec.IsRemote() {
			return nil, oops.
				Code("SPEC_NOT_FOUND").
				With("prefix", prefix).
				With("file", spec.File).
				Hint("Only specs with a url can be fetched").
				Errorf("openapi spec %q is a local file", prefix)
		}

		if _, exists := seen[prefix]; exists {
			continue
		}

		seen[prefix] = struct{}{}
		prefixes = append(prefixes, prefix)
	}

	return prefixes, nil
}
