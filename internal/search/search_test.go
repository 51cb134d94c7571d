package search_test

import (
	"testing"

	"github.com/g5becks/mdxkit/internal/search"
)

func buildTestEntries() []search.Entry {
	return []search.Entry{
		{
			Path:           "getting-started/installation",
			Title:          "Installation",
			Description:    "Install the toolkit and get started",
			ContentPreview: "Run the installer. Configuration comes later.",
			Breadcrumb:     "Getting Started",
		},
		{
			Path:           "guides/configuration",
			Title:          "Configuration",
			Description:    "All options explained",
			ContentPreview: "The config file lives next to your docs.",
			Breadcrumb:     "Guides",
		},
		{
			Path:           "guides/theming",
			Title:          "Theming",
			Description:    "Change colors and installation-wide fonts",
			ContentPreview: "Themes are chroma styles.",
			Breadcrumb:     "Guides",
		},
		{
			Path:       "api-reference/list-pets",
			Title:      "List pets",
			Breadcrumb: "API Reference > pets",
			APIMethod:  "GET",
		},
	}
}

func paths(entries []search.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func TestTiered_Order(t *testing.T) {
	t.Parallel()

	got := paths(search.Tiered(buildTestEntries(), "INSTALL"))
	want := []string{"getting-started/installation", "guides/theming"}

	if len(got) != len(want) {
		t.Fatalf("Tiered() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tiered()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTiered_TitleBeforeDescriptionBeforeContent(t *testing.T) {
	t.Parallel()

	got := paths(search.Tiered(buildTestEntries(), "config"))
	want := []string{"guides/configuration", "getting-started/installation"}

	if len(got) != len(want) {
		t.Fatalf("Tiered() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tiered()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTiered_BlankQuery(t *testing.T) {
	t.Parallel()

	if got := search.Tiered(buildTestEntries(), "   "); len(got) != 0 {
		t.Errorf("Tiered(blank) = %v, want none", paths(got))
	}
}

func TestFuzzy_TitleMatch(t *testing.T) {
	t.Parallel()

	results, err := search.Fuzzy(buildTestEntries(), search.Options{Query: "instal"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}

	found := false
	for _, r := range results {
		if r.Path == "getting-started/installation" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected installation page in results")
	}
}

func TestFuzzy_BreadcrumbMatch(t *testing.T) {
	t.Parallel()

	results, err := search.Fuzzy(buildTestEntries(), search.Options{Query: "API Reference"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, r := range results {
		if r.Path == "api-reference/list-pets" && r.APIMethod == "GET" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected list-pets operation in results")
	}
}

func TestFuzzy_EmptyQuery(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"", "   "} {
		if _, err := search.Fuzzy(buildTestEntries(), search.Options{Query: q}); err == nil {
			t.Errorf("Fuzzy(%q) expected error", q)
		}
	}
}

func TestFuzzy_Limit(t *testing.T) {
	t.Parallel()

	results, err := search.Fuzzy(buildTestEntries(), search.Options{Query: "i", Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) > 2 {
		t.Errorf("expected at most 2 results, got %d", len(results))
	}
}

func TestFuzzy_DedupesBestScorePerPath(t *testing.T) {
	t.Parallel()

	results, err := search.Fuzzy(buildTestEntries(), search.Options{Query: "guides"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]int)
	for _, r := range results {
		seen[r.Path]++
	}
	for path, count := range seen {
		if count > 1 {
			t.Errorf("path %q appears %d times, expected deduplication", path, count)
		}
	}
}

func TestFuzzy_NoResults(t *testing.T) {
	t.Parallel()

	results, err := search.Fuzzy(buildTestEntries(), search.Options{Query: "xyzzynonexistent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results for nonsense query, got %d", len(results))
	}
}

func TestFuzzy_ScoreOrdering(t *testing.T) {
	t.Parallel()

	results, err := search.Fuzzy(buildTestEntries(), search.Options{Query: "gs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) < 2 {
		t.Fatalf("expected at least 2 results to validate ordering, got %d", len(results))
	}

	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted by score: result[%d].Score=%d > result[%d].Score=%d",
				i, results[i].Score, i-1, results[i-1].Score)
		}
	}
}
