package mapfile

import "errors"

var (
	// ErrClosed is returned when using a closed File.
	ErrClosed = errors.New("mapfile: file is closed")
	// ErrInvalidOffset is returned when seeking to a negative offset.
	ErrInvalidOffset = errors.New("mapfile: invalid offset")
	// ErrInvalidLength is returned when a string length prefix is negative
	// or a string is too large to encode.
	ErrInvalidLength = errors.New("mapfile: invalid length prefix")
)
