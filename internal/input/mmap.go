package input

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapReader maps files read-only into memory.
type MmapReader struct{}

// NewMmapReader creates a MmapReader.
func NewMmapReader() *MmapReader {
	return &MmapReader{}
}

func (r *MmapReader) Read(path string) (Buffer, error) {
	fd, size, err := openSized(path)
	if err != nil {
		return Buffer{}, err
	}
	if size == 0 {
		unix.Close(fd)
		return Buffer{Release: noopRelease}, nil
	}
	return readMmap(fd, size, path)
}

// readMmap maps an already-open fd of known size. Falls back to a buffered
// read when the mapping fails. Takes ownership of fd.
func readMmap(fd int, size int64, path string) (Buffer, error) {
	unix.Fadvise(fd, 0, size, unix.FADV_SEQUENTIAL)

	data, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE|unix.MAP_POPULATE)
	if err != nil {
		return readBuffered(fd, size, path)
	}
	unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return Buffer{
		Data: data,
		Release: func() error {
			defer unix.Close(fd)
			if err := unix.Munmap(data); err != nil {
				return fmt.Errorf("munmap %s: %w", path, err)
			}
			return nil
		},
	}, nil
}

// NewAdaptiveReader returns a Reader that maps files of at least threshold
// bytes and reads smaller ones into pooled buffers. A threshold <= 0 always
// reads into buffers.
func NewAdaptiveReader(threshold int64) Reader {
	return &adaptiveReader{threshold: threshold}
}

type adaptiveReader struct {
	threshold int64
}

func (r *adaptiveReader) Read(path string) (Buffer, error) {
	fd, size, err := openSized(path)
	if err != nil {
		return Buffer{}, err
	}
	if size == 0 {
		unix.Close(fd)
		return Buffer{Release: noopRelease}, nil
	}
	if r.threshold > 0 && size >= r.threshold {
		return readMmap(fd, size, path)
	}
	return readBuffered(fd, size, path)
}

// openSized opens path read-only (with O_NOATIME when permitted) and returns
// the fd together with the file size.
func openSized(path string) (int, int64, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME|unix.O_CLOEXEC, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	}
	if err != nil {
		return -1, 0, fmt.Errorf("open %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.Mode&unix.S_IFMT != unix.S_IFREG {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("open %s: not a regular file", path)
	}
	return fd, stat.Size, nil
}
