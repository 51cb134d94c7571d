package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	neturl "net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/oops"
	"resty.dev/v3"

	"github.com/g5becks/mdxkit/internal/atomicfile"
	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/lockfile"
)

const userAgent = "mdxkit"

type urlSource struct {
	prefix   string
	spec     config.Spec
	filename string
	client   *resty.Client
}

// NewURL creates a Source that downloads spec.URL with a conditional GET.
func NewURL(prefix string, spec config.Spec) (Source, error) {
	filename := spec.Filename
	if filename == "" {
		filename = filenameFromURL(prefix, spec.URL)
	}

	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept", "application/yaml, application/json;q=0.9, */*;q=0.8")

	return &urlSource{
		prefix:   prefix,
		spec:     spec,
		filename: filename,
		client:   client,
	}, nil
}

func (s *urlSource) Fetch(
	ctx context.Context,
	destDir string,
	prevLock *lockfile.LockEntry,
	opts FetchOptions,
) (*FetchResult, error) {
	filePath := filepath.Join(destDir, s.filename)

	request := s.client.R().SetContext(ctx)
	if !opts.Force && prevLock != nil && prevLock.URL == s.spec.URL {
		if prevLock.ETag != "" {
			request.SetHeader("If-None-Match", prevLock.ETag)
		}
		if prevLock.LastMod != "" {
			request.SetHeader("If-Modified-Since", prevLock.LastMod)
		}
	}

	response, err := request.Get(s.spec.URL)
	if err != nil {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("prefix", s.prefix).
			With("url", s.spec.URL).
			Wrapf(err, "downloading openapi spec")
	}

	if response.StatusCode() == http.StatusNotModified {
		lock := cloneLockEntry(prevLock)
		if lock == nil {
			lock = &lockfile.LockEntry{URL: s.spec.URL, Filename: s.filename}
		}
		lock.FetchedAt = time.Now().UTC()

		log.Debug().Str("prefix", s.prefix).Str("url", s.spec.URL).Msg("spec not modified")

		return &FetchResult{
			Skipped:   true,
			Path:      filePath,
			LockEntry: lock,
		}, nil
	}

	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("prefix", s.prefix).
			With("url", s.spec.URL).
			With("status", response.StatusCode()).
			Errorf("spec url returned non-success status %d", response.StatusCode())
	}

	content, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("prefix", s.prefix).
			With("url", s.spec.URL).
			Wrapf(err, "reading response body")
	}

	if !opts.DryRun {
		if err := atomicfile.WriteFile(filePath, content, 0o644); err != nil {
			return nil, oops.
				With("prefix", s.prefix).
				Wrapf(err, "writing openapi spec")
		}
	}

	sum := sha256.Sum256(content)
	log.Debug().
		Str("prefix", s.prefix).
		Str("url", s.spec.URL).
		Int("bytes", len(content)).
		Bool("dry_run", opts.DryRun).
		Msg("spec downloaded")

	return &FetchResult{
		Downloaded: true,
		Bytes:      len(content),
		Path:       filePath,
		LockEntry: &lockfile.LockEntry{
			URL:       s.spec.URL,
			Filename:  s.filename,
			ETag:      response.Header().Get("ETag"),
			LastMod:   response.Header().Get("Last-Modified"),
			SHA256:    hex.EncodeToString(sum[:]),
			FetchedAt: time.Now().UTC(),
		},
	}, nil
}

func filenameFromURL(prefix string, rawURL string) string {
	parsed, err := neturl.Parse(rawURL)
	if err == nil {
		baseName := path.Base(parsed.Path)
		if baseName != "" && baseName != "." && baseName != "/" {
			return baseName
		}
	}

	return strings.ReplaceAll(prefix, "/", "-") + ".yaml"
}

func cloneLockEntry(entry *lockfile.LockEntry) *lockfile.LockEntry {
	if entry == nil {
		return nil
	}

	cloned := *entry
	return &cloned
}
