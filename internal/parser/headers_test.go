package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/g5becks/mdxkit/internal/parser"
)

func TestExtractHeaders(t *testing.T) {
	input := "# Title\n\n## Getting Started\n\nText.\n\n```md\n## Not a heading\n```\n\n### Install `cli`\n\n##### Too deep\n\nSetext Two\n----------\n"

	want := []parser.Header{
		{ID: "getting-started", Title: "Getting Started", Level: 2, Line: 3},
		{ID: "install-cli", Title: "Install cli", Level: 3, Line: 11},
		{ID: "setext-two", Title: "Setext Two", Level: 2, Line: 15},
	}

	if diff := cmp.Diff(want, parser.ExtractHeaders(input)); diff != "" {
		t.Errorf("ExtractHeaders() mismatch (-want +got):\n%s", diff)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Getting Started", "getting-started"},
		{"  Hello,   World!  ", "hello-world"},
		{"API v2.0 (beta)", "api-v2-0-beta"},
		{"already-slugged", "already-slugged"},
		{"---", ""},
		{"Überblick", "überblick"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parser.Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := parser.Slugify(got); again != got {
				t.Errorf("Slugify(Slugify(%q)) = %q, want %q", tt.input, again, got)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	input := "# Heading\n\nFirst   paragraph\nwraps here.\n\nSecond paragraph."
	if got, want := parser.Summary(input), "First paragraph wraps here."; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestOutlineCountsFrontmatterLines(t *testing.T) {
	input := "---\ntitle: Home\n---\n\n## Install\n\nText.\n\n### From source\n"

	want := []parser.Header{
		{ID: "install", Title: "Install", Level: 2, Line: 5},
		{ID: "from-source", Title: "From source", Level: 3, Line: 9},
	}

	if diff := cmp.Diff(want, parser.Outline(input)); diff != "" {
		t.Errorf("Outline() mismatch (-want +got):\n%s", diff)
	}
}
