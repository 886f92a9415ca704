package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dl/bytelit/internal/lang"
)

// TextFormatter writes literals as pasteable source text.
type TextFormatter struct {
	styles   Styles
	useColor bool
	wrap     int
}

// NewTextFormatter creates a TextFormatter. wrap is the width used for the
// source-path comment written in multi-source output.
func NewTextFormatter(styles Styles, useColor bool, wrap int) *TextFormatter {
	return &TextFormatter{
		styles:   styles,
		useColor: useColor,
		wrap:     wrap,
	}
}

func (f *TextFormatter) Format(buf []byte, r Result, multi bool) []byte {
	if r.Err != nil {
		return buf
	}

	if multi && r.Path != "" {
		// Never split a path across lines.
		wrap := f.wrap
		if len(r.Path) > wrap {
			wrap = len(r.Path)
		}
		if header, err := lang.Comment(r.Style, r.Path, wrap); err == nil {
			buf = f.appendStyled(buf, header, f.styles.Source)
		}
	}

	if r.Comment != "" {
		buf = f.appendStyled(buf, r.Comment, f.styles.Comment)
	}

	buf = append(buf, r.Literal...)
	if !strings.HasSuffix(r.Literal, "\n") {
		buf = append(buf, '\n')
	}
	if multi {
		buf = append(buf, '\n')
	}
	return buf
}

// appendStyled appends text line by line so lipgloss does not pad the block
// to a common width.
func (f *TextFormatter) appendStyled(buf []byte, text string, style lipgloss.Style) []byte {
	if !f.useColor {
		return append(buf, text...)
	}
	for _, line := range strings.SplitAfter(text, "\n") {
		body := strings.TrimSuffix(line, "\n")
		if body != "" {
			buf = append(buf, style.Render(body)...)
		}
		if len(body) < len(line) {
			buf = append(buf, '\n')
		}
	}
	return buf
}

// Ensure TextFormatter implements Formatter.
var _ Formatter = (*TextFormatter)(nil)
