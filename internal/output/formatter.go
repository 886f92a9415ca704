package output

// Formatter formats a Result into bytes for output.
// buf is a reusable buffer; implementations append to it and return the result.
// multi is set when several sources are written to the same stream.
type Formatter interface {
	Format(buf []byte, r Result, multi bool) []byte
}
