package output

import "github.com/dl/bytelit/internal/lang"

// Result is one formatted buffer, or the error that prevented formatting it.
type Result struct {
	// Path is the source file, empty for stdin.
	Path string
	// Seq orders results produced concurrently; see OrderedWriter.
	Seq     int
	Style   lang.Style
	Name    string
	Length  int
	Literal string
	// Comment is an already rendered comment block placed above the literal.
	Comment string
	Err     error
}

// OK reports whether the result carries a literal.
func (r *Result) OK() bool {
	return r.Err == nil
}
