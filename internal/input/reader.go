package input

// Buffer holds the bytes loaded from a source and a function releasing them.
// Data must not be used after Release is called.
type Buffer struct {
	Data    []byte
	Release func() error
}

// noopRelease is shared by every Buffer that owns no resources.
func noopRelease() error { return nil }

// Reader loads the full content of a source into memory.
type Reader interface {
	Read(path string) (Buffer, error)
}
