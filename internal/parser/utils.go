package parser

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const utf8BOM = "\ufeff"

// IsBinary checks the first 512 bytes for NUL.
func IsBinary(content []byte) bool {
	const maxCheckSize = 512
	size := min(len(content), maxCheckSize)
	for _, b := range content[:size] {
		if b == 0 {
			return true
		}
	}
	return false
}

// IsValidUTF8 validates the content is valid UTF-8.
func IsValidUTF8(content []byte) bool {
	return utf8.Valid(content)
}

// StripBOM removes a leading UTF-8 byte order mark.
func StripBOM(text string) string {
	return strings.TrimPrefix(text, utf8BOM)
}

// IsDocFile reports whether path has a document extension (.md or .mdx).
func IsDocFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".mdx":
		return true
	default:
		return false
	}
}

// DocPath maps a file path relative to the content root to a document path:
// forward slashes, no extension.
func DocPath(rel string) string {
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}
