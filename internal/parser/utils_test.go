package parser_test

import (
	"testing"

	"github.com/g5becks/mdxkit/internal/parser"
)

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{
			name:    "null byte in content",
			content: []byte("hello\x00world"),
			want:    true,
		},
		{
			name:    "valid text",
			content: []byte("hello world"),
			want:    false,
		},
		{
			name:    "empty content",
			content: []byte{},
			want:    false,
		},
		{
			name:    "null byte at start",
			content: []byte("\x00hello"),
			want:    true,
		},
		{
			name: "null byte beyond 512 bytes",
			content: func() []byte {
				b := make([]byte, 513)
				for i := range b {
					b[i] = 'a' // Fill with non-null bytes
				}
				b[512] = 0 // Null byte at position 512 (beyond first 512 bytes checked)
				return b
			}(),
			want: false,
		},
		{
			name:    "null byte within 512 bytes",
			content: append(make([]byte, 256), 0),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.IsBinary(tt.content); got != tt.want {
				t.Errorf("IsBinary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidUTF8(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{
			name:    "valid utf8",
			content: []byte("hello world"),
			want:    true,
		},
		{
			name:    "valid utf8 with unicode",
			content: []byte("hello 世界"),
			want:    true,
		},
		{
			name:    "invalid utf8",
			content: []byte{0xff, 0xfe, 0xfd},
			want:    false,
		},
		{
			name:    "empty content",
			content: []byte{},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.IsValidUTF8(tt.content); got != tt.want {
				t.Errorf("IsValidUTF8() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripBOM(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "with BOM",
			content: string([]byte{0xEF, 0xBB, 0xBF, 'h', 'e', 'l', 'l', 'o'}),
			want:    "hello",
		},
		{
			name:    "without BOM",
			content: "hello",
			want:    "hello",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
		{
			name:    "partial BOM",
			content: string([]byte{0xEF, 0xBB}),
			want:    string([]byte{0xEF, 0xBB}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.StripBOM(tt.content); got != tt.want {
				t.Errorf("StripBOM() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsDocFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"guide.mdx", true},
		{"README.md", true},
		{"COMPONENT.MDX", true},
		{"notes.txt", false},
		{"api.yaml", false},
		{"mdx", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := parser.IsDocFile(tt.path); got != tt.want {
				t.Errorf("IsDocFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDocPath(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"index.mdx", "index"},
		{"getting-started/quickstart.mdx", "getting-started/quickstart"},
		{"guides/auth.md", "guides/auth"},
		{"no-extension", "no-extension"},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := parser.DocPath(tt.rel); got != tt.want {
				t.Errorf("DocPath(%q) = %q, want %q", tt.rel, got, tt.want)
			}
		})
	}
}
