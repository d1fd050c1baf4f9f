// Package blob provides the high-level API for packing and unpacking BFAST
// containers.
//
// A BFAST container bundles an ordered collection of named byte buffers into
// one contiguous stream in which every buffer starts on a 64-byte boundary,
// making the stream suitable for memory-mapped or zero-copy consumption.
//
// # Core Types
//
//   - Buffer: a named byte slice, the unit callers pack and unpack
//   - Encoder: builds a container stream from an ordered list of Buffers
//   - Decoder: validates a stream and reconstructs the ordered Buffers
//   - Blob: a decoded container with ordered access plus name/ID lookup
//
// # Encoding Workflow
//
//	encoder, err := blob.NewEncoder()
//	_ = encoder.Add("positions", positions)
//	_ = encoder.Add("indices", indices)
//	stream, err := encoder.Finish()
//
// or, in one call:
//
//	stream, err := blob.Pack([]blob.Buffer{
//	    {Name: "positions", Data: positions},
//	    {Name: "indices", Data: indices},
//	})
//
// Packing is deterministic and order-sensitive: the same buffers in the same
// order always produce a byte-identical stream, and swapping two buffers
// produces a different stream. Input data is only borrowed for the duration
// of the call; all bytes are copied into the returned stream.
//
// # Decoding Workflow
//
//	decoder, err := blob.NewDecoder(stream)
//	decoded, err := decoder.Decode()
//	for _, buf := range decoded.Buffers() {
//	    fmt.Printf("%s: %d bytes\n", buf.Name, len(buf.Data))
//	}
//
// Decoding is zero-copy: each returned Buffer's Data is a sub-slice of the
// input stream, so the caller must keep the stream alive for as long as the
// decoded buffers are used. Validation failures (wrong magic, inconsistent
// bounds, truncated or overlapping offsets, malformed name table) abort the
// decode with a sentinel error from the errs package; there is no partial
// decode.
//
// Neither Encoder nor Decoder is safe for concurrent use, but distinct
// instances over disjoint inputs may run on separate goroutines with no
// synchronization; the codec holds no shared state.
package blob
