// Package bfast implements the BFAST binary container format: an ordered
// collection of named byte buffers bundled into a single contiguous stream
// with 64-byte alignment guarantees, suitable for memory-mapped or zero-copy
// consumption.
//
// BFAST (Binary Format for Array Streaming and Transmission) lays a stream
// out as a fixed 32-byte header, zero padding to a 64-byte boundary, an
// offset table with one (begin, end) pair per logical buffer, and the buffer
// payloads, each starting on a 64-byte boundary. Logical buffer 0 is always
// the name table: the null-separated names of the data buffers.
//
// # Basic Usage
//
// Packing named buffers into a stream:
//
//	stream, err := bfast.Pack([]bfast.Buffer{
//	    {Name: "positions", Data: positions},
//	    {Name: "indices", Data: indices},
//	})
//
// Unpacking a stream back into named buffers:
//
//	buffers, err := bfast.Unpack(stream)
//	for _, buf := range buffers {
//	    fmt.Printf("%s: %d bytes\n", buf.Name, len(buf.Data))
//	}
//
// Unpacking is zero-copy: the returned buffer data borrows from the input
// stream, so keep the stream alive for as long as the buffers are used.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob
// package, simplifying the most common use cases. For incremental encoding,
// name/ID lookup on decoded containers, and decode options, use the blob
// package directly. The section package exposes the low-level wire layout
// for callers that need to reason about offsets and alignment.
package bfast

import (
	"github.com/vimaec/bfast-go/blob"
	"github.com/vimaec/bfast-go/internal/hash"
)

// FormatVersion is the version of the BFAST container format this module
// implements.
const FormatVersion = "1.0.1"

// Buffer is a named byte slice, the unit of packing and unpacking.
type Buffer = blob.Buffer

// Pack assembles a BFAST stream from the given buffers in order.
//
// The output is deterministic and order-sensitive, buffer names must not
// contain null bytes, and all input bytes are copied into the returned
// stream.
//
// Parameters:
//   - buffers: Ordered named buffers; an empty or nil slice produces the
//     64-byte empty container
//
// Returns:
//   - []byte: The assembled stream
//   - error: ErrInvalidBufferName if a name contains an embedded null byte
func Pack(buffers []Buffer) ([]byte, error) {
	return blob.Pack(buffers)
}

// Unpack decodes a BFAST stream into its ordered named buffers.
//
// The returned buffer data borrows from data; the caller must keep data
// alive for as long as the buffers are used.
//
// Parameters:
//   - data: The container stream
//
// Returns:
//   - []Buffer: The decoded buffers in container order
//   - error: A sentinel from the errs package on a malformed stream
func Unpack(data []byte) ([]Buffer, error) {
	return blob.Unpack(data)
}

// BufferID computes the 64-bit xxHash64 ID of a buffer name, for use with
// blob.Blob.BufferByID lookups.
func BufferID(name string) uint64 {
	return hash.ID(name)
}
