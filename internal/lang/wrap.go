package lang

import (
	"fmt"
	"strings"
	"sync"

	"go.elara.ws/pcre"
)

// maxRepeat is the largest count PCRE2 accepts in a {} quantifier.
const maxRepeat = 65535

// wrapPatterns caches compiled chunk patterns by width.
var wrapPatterns sync.Map // int -> *pcre.Regexp

// chunkPattern returns the pattern matching one output line of at most width
// characters. The first branch prefers a chunk that ends on whitespace or at
// the end of the text; the second hard-splits words longer than the width.
// Widths above maxRepeat are clamped, so lines never exceed the requested
// width. Characters are counted as runes; invalid UTF-8 is left unmatched.
func chunkPattern(width int) (*pcre.Regexp, error) {
	if width > maxRepeat {
		width = maxRepeat
	}
	if re, ok := wrapPatterns.Load(width); ok {
		return re.(*pcre.Regexp), nil
	}
	re, err := pcre.CompileOpts(fmt.Sprintf(`.{1,%d}(?:\s|\Z)|.{%d}`, width, width), pcre.UTF|pcre.MatchInvalidUTF)
	if err != nil {
		return nil, fmt.Errorf("compile wrap pattern: %w", err)
	}
	actual, _ := wrapPatterns.LoadOrStore(width, re)
	return actual.(*pcre.Regexp), nil
}

// wordwrap reflows text into lines of at most wrap-indent characters. Every
// line is rendered as indent spaces, prepend, the chunk and appendStr, and is
// terminated by a newline unless the chunk already ends with one. Text the
// pattern cannot match (blank lines) is copied through unchanged.
func wordwrap(text string, indent, wrap int, appendStr, prepend string) string {
	width := normalizeWrap(wrap) - indent
	if width < 1 {
		width = 1
	}

	data := []byte(text)
	var locs [][]int
	if re, err := chunkPattern(width); err == nil {
		locs = re.FindAllIndex(data, -1)
	} else if len(data) > 0 {
		locs = [][]int{{0, len(data)}}
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(locs)*(indent+len(prepend)+len(appendStr)+1))
	pad := strings.Repeat(" ", indent)
	prev := 0
	for _, loc := range locs {
		sb.Write(data[prev:loc[0]])
		line := pad + prepend + text[loc[0]:loc[1]] + appendStr
		sb.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			sb.WriteByte('\n')
		}
		prev = loc[1]
	}
	sb.Write(data[prev:])
	return sb.String()
}

// blockComment wraps text between an opening and closing comment line.
func blockComment(open, text string, wrap int, prepend, close string) string {
	return open + wordwrap(text, 0, wrap, "", prepend) + close
}
