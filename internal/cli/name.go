package cli

import (
	"path/filepath"
	"strings"

	"github.com/dl/bytelit/internal/lang"
)

// IsIdentifier reports whether s is a valid variable name in every supported
// style: ASCII letters, digits and underscores, not starting with a digit.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IdentifierFromPath derives a variable name from a file's base name, minus
// its extension. Characters that are not valid in identifiers become
// underscores and a leading digit is prefixed with one.
func IdentifierFromPath(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}

	b := []byte(base)
	for i, c := range b {
		if !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			b[i] = '_'
		}
	}
	name := string(b)
	if name == "" {
		return lang.DefaultName
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}
