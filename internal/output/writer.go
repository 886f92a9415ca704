package output

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes formatted output to a file descriptor with writev.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{fd: int(os.Stdout.Fd())}
}

// Write writes all of data, retrying short writes.
func (w *Writer) Write(data []byte) (int, error) {
	written := 0
	for len(data) > 0 {
		n, err := unix.Writev(w.fd, [][]byte{data})
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return written, err
		}
		written += n
		data = data[n:]
	}
	return written, nil
}

// OrderedWriter receives results from a channel and writes them in sequence order.
// This keeps output deterministic even with parallel workers.
type OrderedWriter struct {
	writer    io.Writer
	formatter Formatter
	multi     bool
	buf       []byte
}

// NewOrderedWriter creates an OrderedWriter.
func NewOrderedWriter(w io.Writer, f Formatter, multi bool) *OrderedWriter {
	return &OrderedWriter{
		writer:    w,
		formatter: f,
		multi:     multi,
	}
}

// WriteOrdered consumes results, buffering out-of-order ones, and writes them
// in Seq order starting at 1. onResult, if set, is called once per result in
// write order. It returns the first write error; remaining results are still
// drained so producers never block.
func (ow *OrderedWriter) WriteOrdered(results <-chan Result, onResult func(Result)) error {
	nextSeq := 1
	pending := make(map[int]Result)
	var werr error

	flush := func(r Result) {
		if onResult != nil {
			onResult(r)
		}
		if werr == nil {
			werr = ow.WriteResult(r)
		}
	}

	for r := range results {
		if r.Seq != nextSeq {
			pending[r.Seq] = r
			continue
		}
		flush(r)
		nextSeq++
		for {
			p, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			flush(p)
			nextSeq++
		}
	}
	return werr
}

// WriteResult formats and writes a single result.
func (ow *OrderedWriter) WriteResult(r Result) error {
	ow.buf = ow.formatter.Format(ow.buf[:0], r, ow.multi)
	if len(ow.buf) == 0 {
		return nil
	}
	_, err := ow.writer.Write(ow.buf)
	return err
}
