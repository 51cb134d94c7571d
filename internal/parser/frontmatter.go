package parser

import (
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const frontmatterDelim = "---"

// ExtractFrontmatter splits a leading "---" delimited YAML block from text.
// Documents without a block, with an unterminated block, or with invalid
// YAML come back whole with a zero Frontmatter.
func ExtractFrontmatter(text string) (Frontmatter, string) {
	content := strings.TrimSpace(StripBOM(text))
	if !strings.HasPrefix(content, frontmatterDelim) {
		return Frontmatter{}, content
	}

	afterOpen := content[len(frontmatterDelim):]
	end := strings.Index(afterOpen, "\n"+frontmatterDelim)
	if end == -1 {
		return Frontmatter{}, content
	}

	block := strings.TrimSpace(afterOpen[:end])
	remainder := strings.TrimLeft(afterOpen[end+1+len(frontmatterDelim):], " \t\r\n")

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		log.Warn().Err(err).Msg("failed to parse frontmatter")
		return Frontmatter{}, content
	}

	return fm, remainder
}
