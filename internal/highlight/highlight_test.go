package highlight_test

import (
	"strings"
	"testing"

	"github.com/g5becks/mdxkit/internal/highlight"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"js", "JavaScript"},
		{"TSX", "TypeScript"},
		{"zsh", "Bash"},
		{"golang", "Go"},
		{"yml", "YAML"},
		{"cs", "C#"},
		{"txt", "plaintext"},
		{"", "plaintext"},
		{"no-such-language", "plaintext"},
		{"haskell", "Haskell"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := highlight.Lexer(tt.lang).Config().Name; got != tt.want {
				t.Errorf("Lexer(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestCode(t *testing.T) {
	got := highlight.Code(`fmt.Println("<hi>")`, "go")

	if strings.Contains(got, "<pre") {
		t.Errorf("Code() wrapped output in <pre>: %s", got)
	}
	if !strings.Contains(got, "style=") {
		t.Errorf("Code() did not use inline styles: %s", got)
	}
	if strings.Contains(got, `"<hi>"`) {
		t.Errorf("Code() did not escape markup: %s", got)
	}
}

func TestCode_PlainText(t *testing.T) {
	got := highlight.Code("a < b && c", "text")

	if !strings.Contains(got, "a &lt; b &amp;&amp; c") {
		t.Errorf("Code() = %s, want escaped text", got)
	}
}

func TestNew_UnknownTheme(t *testing.T) {
	h := highlight.New("no-such-theme")
	if got := h.Code("x := 1", "go"); got == "" {
		t.Error("Code() with fallback theme returned empty output")
	}
}

func TestLanguageForFile(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"main.go", "go"},
		{"script.py", "python"},
		{"unknown.zzz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := highlight.LanguageForFile(tt.name); got != tt.want {
				t.Errorf("LanguageForFile(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
