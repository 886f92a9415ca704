package input

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// bufPool reuses read buffers across files. Buffers are stored as *[]byte so
// a grown backing array is kept for the next file.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64*1024)
		return &b
	},
}

// BufferedReader reads files with pread into pooled buffers.
type BufferedReader struct{}

// NewBufferedReader creates a BufferedReader.
func NewBufferedReader() *BufferedReader {
	return &BufferedReader{}
}

func (r *BufferedReader) Read(path string) (Buffer, error) {
	fd, size, err := openSized(path)
	if err != nil {
		return Buffer{}, err
	}
	if size == 0 {
		unix.Close(fd)
		return Buffer{Release: noopRelease}, nil
	}
	return readBuffered(fd, size, path)
}

// readBuffered reads size bytes from fd into a pooled buffer.
// Takes ownership of fd.
func readBuffered(fd int, size int64, path string) (Buffer, error) {
	defer unix.Close(fd)

	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < int(size) {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}

	var total int
	for total < int(size) {
		n, err := unix.Pread(fd, buf[total:], int64(total))
		if err != nil {
			*bp = buf
			bufPool.Put(bp)
			return Buffer{}, fmt.Errorf("read %s: %w", path, err)
		}
		if n == 0 {
			break // file shrank since fstat
		}
		total += n
	}

	return Buffer{
		Data: buf[:total],
		Release: func() error {
			*bp = buf
			bufPool.Put(bp)
			return nil
		},
	}, nil
}
