//nolint:testpackage // Testing private functions like mergeExcludes, filenameFromURL
package config

import (
	"reflect"
	"slices"
	"testing"
)

func TestMergeExcludes(t *testing.T) {
	tests := []struct {
		name   string
		global []string
		local  []string
		want   []string
	}{
		{
			name:   "both empty",
			global: []string{},
			local:  []string{},
			want:   nil,
		},
		{
			name:   "only global",
			global: []string{"*.png", "*.jpg"},
			local:  []string{},
			want:   []string{"*.jpg", "*.png"},
		},
		{
			name:   "only local",
			global: []string{},
			local:  []string{"custom/**"},
			want:   []string{"custom/**"},
		},
		{
			name:   "no duplicates",
			global: []string{"*.png", "node_modules/**"},
			local:  []string{"*.jpg", "dist/**"},
			want:   []string{"*.jpg", "*.png", "dist/**", "node_modules/**"},
		},
		{
			name:   "with duplicates",
			global: []string{"*.png", "node_modules/**"},
			local:  []string{"*.png", "dist/**"},
			want:   []string{"*.png", "dist/**", "node_modules/**"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeExcludes(tt.global, tt.local)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mergeExcludes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultExcludes(t *testing.T) {
	defaults := DefaultExcludes()

	for _, required := range []string{"node_modules/**", "snippets/**"} {
		if !slices.Contains(defaults, required) {
			t.Errorf("DefaultExcludes() missing required pattern: %s", required)
		}
	}
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		prefix string
		url    string
		want   string
	}{
		{"api", "https://example.com/v3/openapi.json", "openapi.json"},
		{"api", "https://example.com/spec.yaml?raw=1", "spec.yaml"},
		{"api", "https://example.com/", "api.yaml"},
		{"api/v2", "https://example.com", "api-v2.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := filenameFromURL(tt.prefix, tt.url); got != tt.want {
				t.Errorf("filenameFromURL(%q, %q) = %q, want %q", tt.prefix, tt.url, got, tt.want)
			}
		})
	}
}

func TestIsValidPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   bool
	}{
		{"api-reference", true},
		{"api/v2", true},
		{"api_v1", true},
		{"", false},
		{"/api", false},
		{"api/", false},
		{"API", false},
		{"api reference", false},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if got := isValidPrefix(tt.prefix); got != tt.want {
				t.Errorf("isValidPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestApplyDefaultsFilenames(t *testing.T) {
	cfg := &Config{
		OpenAPI: map[string]Spec{
			"remote": {URL: "https://example.com/openapi.yaml"},
			"named":  {URL: "https://example.com/openapi.yaml", Filename: "named.yaml"},
			"local":  {File: "specs/local.yaml"},
		},
	}

	cfg.ApplyDefaults()

	if got := cfg.OpenAPI["remote"].Filename; got != "openapi.yaml" {
		t.Errorf("remote Filename = %q, want %q", got, "openapi.yaml")
	}
	if got := cfg.OpenAPI["named"].Filename; got != "named.yaml" {
		t.Errorf("named Filename = %q, want %q", got, "named.yaml")
	}
	if got := cfg.OpenAPI["local"].Filename; got != "" {
		t.Errorf("local Filename = %q, want empty", got)
	}
}
