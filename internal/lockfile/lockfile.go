// Package lockfile records what was fetched for each remote OpenAPI spec so
// later fetches can be conditional.
package lockfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/oops"

	"github.com/g5becks/mdxkit/internal/atomicfile"
)

const (
	FileName       = ".mdxkit.lock"
	currentVersion = 1
)

type LockFile struct {
	Version int                   `json:"version"`
	Specs   map[string]*LockEntry `json:"specs"`
}

// LockEntry describes the last successful fetch of one spec.
type LockEntry struct {
	URL       string    `json:"url"`
	Filename  string    `json:"filename"`
	ETag      string    `json:"etag,omitempty"`
	LastMod   string    `json:"last_modified,omitempty"`
	SHA256    string    `json:"sha256,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Load reads the lock file in outputDir. A missing file yields an empty lock.
func Load(outputDir string) (*LockFile, error) {
	lockPath := filepath.Join(outputDir, FileName)
	data, err := os.ReadFile(lockPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}

		return nil, oops.
			Code("LOCK_ERROR").
			With("path", lockPath).
			Wrapf(err, "reading lock file")
	}

	lock := &LockFile{}
	if unmarshalErr := json.Unmarshal(data, lock); unmarshalErr != nil {
		return nil, oops.
			Code("LOCK_ERROR").
			With("path", lockPath).
			Hint("Delete the lock file and run 'mdxkit fetch --force' to regenerate it").
			Wrapf(unmarshalErr, "parsing lock file")
	}

	if lock.Version == 0 {
		lock.Version = currentVersion
	}

	if lock.Specs == nil {
		lock.Specs = map[string]*LockEntry{}
	}

	return lock, nil
}

func New() *LockFile {
	return &LockFile{
		Version: currentVersion,
		Specs:   map[string]*LockEntry{},
	}
}

// Save writes the lock file into outputDir atomically.
func (l *LockFile) Save(outputDir string) error {
	if l == nil {
		return oops.
			Code("LOCK_ERROR").
			Hint("Initialize lock file state before saving").
			Errorf("cannot save nil lock file")
	}

	if l.Version == 0 {
		l.Version = currentVersion
	}

	if l.Specs == nil {
		l.Specs = map[string]*LockEntry{}
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return oops.
			Code("LOCK_ERROR").
			Wrapf(err, "encoding lock file")
	}

	data = append(data, '\n')
	lockPath := filepath.Join(outputDir, FileName)

	if err := atomicfile.WriteFile(lockPath, data, 0o644); err != nil {
		return oops.
			Code("LOCK_ERROR").
			With("path", lockPath).
			Wrapf(err, "saving lock file")
	}

	return nil
}

func (l *LockFile) GetEntry(prefix string) *LockEntry {
	if l == nil {
		return nil
	}

	return l.Specs[prefix]
}

func (l *LockFile) SetEntry(prefix string, entry *LockEntry) {
	if l == nil {
		return
	}

	if l.Specs == nil {
		l.Specs = map[string]*LockEntry{}
	}

	l.Specs[prefix] = entry
}

func (l *LockFile) RemoveEntry(prefix string) {
	if l == nil || l.Specs == nil {
		return
	}

	delete(l.Specs, prefix)
}
