package input

import (
	"fmt"
	"io"
	"os"
)

// StdinReader reads the whole of a stream, usually os.Stdin. The path
// argument is ignored.
type StdinReader struct {
	r io.Reader
}

// NewStdinReader creates a StdinReader over r, or os.Stdin when r is nil.
func NewStdinReader(r io.Reader) *StdinReader {
	if r == nil {
		r = os.Stdin
	}
	return &StdinReader{r: r}
}

func (r *StdinReader) Read(_ string) (Buffer, error) {
	data, err := io.ReadAll(r.r)
	if err != nil {
		return Buffer{}, fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		data = nil
	}
	return Buffer{Data: data, Release: noopRelease}, nil
}
