package lang

import (
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// layout holds the literal template tokens of a wrapped style.
//
//	header                          emitted once, before the first line
//	lineStart / lineEnd             open and close every body line
//	footer                          closes the last body line instead of lineEnd
//	between                         separates tokens (not emitted after the last one)
type layout struct {
	header    string
	lineStart string
	lineEnd   string
	footer    string
	between   string
}

// appendHex writes b as two lowercase hex digits.
func appendHex(sb *strings.Builder, b byte) {
	sb.WriteByte(hexDigits[b>>4])
	sb.WriteByte(hexDigits[b&0x0f])
}

// toHex renders every byte of buf as prefix followed by two hex digits.
func toHex(buf []byte, prefix string) string {
	var sb strings.Builder
	sb.Grow(len(buf) * (len(prefix) + 2))
	for _, b := range buf {
		sb.WriteString(prefix)
		appendHex(&sb, b)
	}
	return sb.String()
}

// hexify renders buf as \xNN escapes, wrapped into lines of the given width.
func hexify(buf []byte, wrap int, l layout) string {
	return encodeWrapped(buf, wrap, l, `\x`)
}

// numhexify renders buf as 0xNN tokens, wrapped into lines of the given width.
func numhexify(buf []byte, wrap int, l layout) string {
	return encodeWrapped(buf, wrap, l, "0x")
}

// encodeWrapped is the shared line builder behind hexify and numhexify.
//
// The running line width counts lineStart, tokens and separators. A line is
// closed as soon as appending lineEnd or footer would reach the width; the
// final line is always closed with footer.
func encodeWrapped(buf []byte, wrap int, l layout, prefix string) string {
	wrap = normalizeWrap(wrap)

	var sb strings.Builder
	sb.Grow(len(l.header) + len(buf)*(len(prefix)+2+len(l.between)) + len(l.footer) + 1)
	sb.WriteString(l.header)

	// An empty buffer still produces a complete, empty literal.
	if len(buf) == 0 {
		sb.WriteString(l.lineStart)
		sb.WriteString(l.footer)
		sb.WriteByte('\n')
		return sb.String()
	}

	cur := 0
	newLine := true
	last := len(buf) - 1
	for i, b := range buf {
		if newLine {
			sb.WriteString(l.lineStart)
			cur += len(l.lineStart)
			newLine = false
		}

		sb.WriteString(prefix)
		appendHex(&sb, b)
		cur += len(prefix) + 2
		if i < last && l.between != "" {
			sb.WriteString(l.between)
			cur += len(l.between)
		}

		if cur+len(l.lineEnd) >= wrap || cur+len(l.footer) >= wrap {
			newLine = true
			cur = 0
			if i == last {
				sb.WriteString(l.footer)
			} else {
				sb.WriteString(l.lineEnd)
			}
			sb.WriteByte('\n')
		}
	}

	if !newLine {
		sb.WriteString(l.footer)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// decimal renders b in base 10, as used by the Visual Basic styles.
func decimal(b byte) string {
	return strconv.Itoa(int(b))
}
