package lang

import "errors"

var (
	// ErrEmptyInput reports an empty buffer passed to a style whose empty literal is invalid.
	ErrEmptyInput = errors.New("lang: buffer can not be empty")

	// ErrUnsupported reports a style that has no literal form (comment-only styles).
	ErrUnsupported = errors.New("lang: style has no literal form")

	// ErrUnknownStyle reports a style name or value that is not registered.
	ErrUnknownStyle = errors.New("lang: unknown style")
)
