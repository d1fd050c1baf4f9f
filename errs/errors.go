// Package errs defines the sentinel errors returned by the bfast codec.
//
// All errors are compared with errors.Is; functions that return them wrap
// the sentinel with fmt.Errorf("%w: ...") to attach context.
package errs

import "errors"

// Header validation errors.
var (
	// ErrInvalidHeaderSize is returned when the stream is shorter than the
	// fixed 32-byte header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber is returned when the leading magic field does not
	// match the BFAST magic, including the swapped-endian variant produced by
	// a machine of opposite byte order.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInconsistentBounds is returned when the header declares a data region
	// that ends before it starts.
	ErrInconsistentBounds = errors.New("inconsistent data bounds")
)

// Offset table and payload validation errors.
var (
	// ErrTruncatedStream is returned when the stream is shorter than the
	// region its header or offset table declares.
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrInvalidArrayOffsets is returned when offset entries are misaligned,
	// out of order, or overlapping.
	ErrInvalidArrayOffsets = errors.New("invalid array offsets")

	// ErrPaddingNotZero is returned by strict decoding when bytes between
	// buffer ranges are not zero.
	ErrPaddingNotZero = errors.New("padding bytes not zero")
)

// Encoder state errors.
var (
	// ErrEncoderFinished is returned when an Encoder is used after Finish.
	ErrEncoderFinished = errors.New("encoder already finished")
)

// Name table errors.
var (
	// ErrNameTableMismatch is returned when the decoded name table does not
	// contain exactly one name per data buffer.
	ErrNameTableMismatch = errors.New("name table mismatch")

	// ErrInvalidBufferName is returned at pack time when a buffer name
	// contains an embedded null byte, which is the name table separator.
	ErrInvalidBufferName = errors.New("invalid buffer name")
)
