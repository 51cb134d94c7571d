// Package highlight renders source code as HTML with inline colour styles.
package highlight

import (
	"html"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultTheme is the chroma style used when none is configured.
const DefaultTheme = "github-dark"

// languageAliases maps fence info strings to chroma lexer names.
var languageAliases = map[string]string{
	"js": "JavaScript", "javascript": "JavaScript", "jsx": "JavaScript", "mjs": "JavaScript", "cjs": "JavaScript",
	"ts": "TypeScript", "typescript": "TypeScript", "tsx": "TypeScript",
	"sh": "Bash", "bash": "Bash", "shell": "Bash", "zsh": "Bash", "console": "Bash",
	"rs": "Rust", "rust": "Rust",
	"py": "Python", "python": "Python",
	"rb": "Ruby", "ruby": "Ruby",
	"go": "Go", "golang": "Go",
	"json": "JSON", "jsonc": "JSON",
	"yml": "YAML", "yaml": "YAML",
	"html": "HTML", "htm": "HTML",
	"css": "CSS", "scss": "SCSS", "sass": "Sass",
	"toml": "TOML", "ini": "INI", "env": "Bash",
	"md": "Markdown", "markdown": "Markdown",
	"sql": "SQL",
	"c": "C", "h": "C",
	"cpp": "C++", "cc": "C++", "cxx": "C++", "hpp": "C++",
	"java": "Java",
	"cs": "C#", "csharp": "C#",
	"php": "PHP",
	"swift": "Swift",
	"kt": "Kotlin", "kotlin": "Kotlin",
	"dockerfile": "Docker", "docker": "Docker",
	"txt": "plaintext", "text": "plaintext", "plain": "plaintext",
}

// Highlighter renders code with one chroma style. It is safe for concurrent
// use.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// New returns a Highlighter for the named chroma style. Unknown names fall
// back to chroma's default style.
func New(theme string) *Highlighter {
	if theme == "" {
		theme = DefaultTheme
	}

	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}

	return &Highlighter{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(false),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

var defaultHighlighter = sync.OnceValue(func() *Highlighter {
	return New(DefaultTheme)
})

// Code highlights code with the default theme. See Highlighter.Code.
func Code(code, lang string) string {
	return defaultHighlighter().Code(code, lang)
}

// Code returns code as HTML spans for lang, without a surrounding <pre>.
// Unknown languages render as plain text. If tokenising or formatting fails
// the code is returned HTML-escaped.
func (h *Highlighter) Code(code, lang string) string {
	lexer := chroma.Coalesce(Lexer(lang))

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return html.EscapeString(code)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return html.EscapeString(code)
	}
	return b.String()
}

// Lexer resolves a fence language to a chroma lexer. Aliases are tried
// first, then chroma's own registry, then plain text.
func Lexer(lang string) chroma.Lexer {
	lang = strings.ToLower(strings.TrimSpace(lang))

	if name, ok := languageAliases[lang]; ok {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	if lang != "" {
		if lexer := lexers.Get(lang); lexer != nil {
			return lexer
		}
	}
	if lexer := lexers.Get("plaintext"); lexer != nil {
		return lexer
	}
	return lexers.Fallback
}

// LanguageForFile guesses a fence language from a file name, using chroma's
// filename patterns. It returns "" when nothing matches.
func LanguageForFile(name string) string {
	lexer := lexers.Match(name)
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	if len(cfg.Aliases) > 0 {
		return cfg.Aliases[0]
	}
	return strings.ToLower(cfg.Name)
}
