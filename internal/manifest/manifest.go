package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/oops"

	"github.com/g5becks/mdxkit/internal/atomicfile"
	"github.com/g5becks/mdxkit/internal/parser"
	"github.com/g5becks/mdxkit/internal/search"
)

const (
	CurrentVersion = "1.0.0"
	ManifestFile   = "manifest.json"
)

type Manifest struct {
	Version     string         `json:"version"`
	Generated   time.Time      `json:"generated"`
	Site        Site           `json:"site"`
	Docs        []DocInfo      `json:"docs"`
	Specs       []SpecInfo     `json:"specs"`
	Endpoints   []string       `json:"endpoints,omitempty"`
	Problems    []ProblemInfo  `json:"problems,omitempty"`
	SearchIndex []search.Entry `json:"search_index"`
}

type Site struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	BaseURL     string `json:"base_url,omitempty"`
}

type DocInfo struct {
	Path         string                  `json:"path"`
	Title        string                  `json:"title"`
	SidebarTitle string                  `json:"sidebar_title,omitempty"`
	Description  string                  `json:"description,omitempty"`
	Summary      string                  `json:"summary,omitempty"`
	Icon         string                  `json:"icon,omitempty"`
	Group        string                  `json:"group,omitempty"`
	Tab          string                  `json:"tab,omitempty"`
	Lines        int                     `json:"lines"`
	Headers      []parser.Header         `json:"headers,omitempty"`
	Nodes        map[parser.NodeKind]int `json:"nodes,omitempty"`
}

type SpecInfo struct {
	Prefix     string   `json:"prefix"`
	Title      string   `json:"title"`
	Version    string   `json:"version"`
	Operations int      `json:"operations"`
	Tags       []string `json:"tags,omitempty"`
}

type ProblemInfo struct {
	Prefix string `json:"prefix"`
	Error  string `json:"error"`
}

func New() *Manifest {
	return &Manifest{
		Version:   CurrentVersion,
		Generated: time.Now(),
	}
}

// Doc returns the summary for path.
func (m *Manifest) Doc(path string) (DocInfo, bool) {
	for _, d := range m.Docs {
		if d.Path == path {
			return d, true
		}
	}
	return DocInfo{}, false
}

func Load(outputDir string) (*Manifest, error) {
	manifestPath := Path(outputDir)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, oops.
				Code("MANIFEST_NOT_FOUND").
				With("path", manifestPath).
				Hint("Run 'mdxkit build' to generate the manifest").
				Errorf("manifest not found at %q", manifestPath)
		}

		return nil, oops.
			Code("MANIFEST_READ_ERROR").
			With("path", manifestPath).
			Wrapf(err, "reading manifest file")
	}

	m := &Manifest{}
	if unmarshalErr := json.Unmarshal(data, m); unmarshalErr != nil {
		return nil, oops.
			Code("MANIFEST_CORRUPTED").
			With("path", manifestPath).
			Hint("Delete manifest.json and run 'mdxkit build'").
			Wrapf(unmarshalErr, "parsing manifest file")
	}

	return m, nil
}

func (m *Manifest) Save(outputDir string) error {
	if m == nil {
		return oops.
			Code("MANIFEST_WRITE_ERROR").
			Hint("Initialize manifest before saving").
			Errorf("cannot save nil manifest")
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return oops.
			Code("MANIFEST_WRITE_ERROR").
			Wrapf(err, "encoding manifest")
	}

	data = append(data, '\n')
	if err := atomicfile.WriteFile(Path(outputDir), data, 0o644); err != nil {
		return oops.
			Code("MANIFEST_WRITE_ERROR").
			With("path", Path(outputDir)).
			Wrapf(err, "writing manifest file")
	}

	return nil
}

func Path(outputDir string) string {
	return filepath.Join(outputDir, ManifestFile)
}
