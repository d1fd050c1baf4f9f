package section

import (
	"fmt"

	"github.com/vimaec/bfast-go/endian"
	"github.com/vimaec/bfast-go/errs"
)

// Header represents the fixed-size header section at the start of a BFAST
// stream. It is followed by zero padding to the alignment boundary, then the
// offset table with NumArrays entries.
type Header struct {
	// Magic identifies the stream as BFAST. Either Magic (same byte order)
	// or SwappedMagic (stream produced with opposite byte order).
	Magic uint64 // byte offset 0-7

	// DataStart is the byte offset of the first logical buffer. Always a
	// multiple of Alignment, and 0 when the container holds no buffers.
	DataStart uint64 // byte offset 8-15

	// DataEnd is the byte offset one past the last logical buffer, and 0
	// when the container holds no buffers.
	DataEnd uint64 // byte offset 16-23

	// NumArrays is the number of offset table entries, counting the name
	// table as logical buffer 0.
	NumArrays uint64 // byte offset 24-31
}

// NewHeader creates a Header describing a container with the given offset
// table. DataStart and DataEnd stay zero for an empty table.
func NewHeader(offsets []ArrayOffset) *Header {
	h := &Header{
		Magic:     Magic,
		NumArrays: uint64(len(offsets)),
	}
	if len(offsets) > 0 {
		h.DataStart = offsets[0].Begin
		h.DataEnd = offsets[len(offsets)-1].End
	}

	return h
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is too short, or validation errors
func (h *Header) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	h.Magic = engine.Uint64(data[0:8])
	h.DataStart = engine.Uint64(data[8:16])
	h.DataEnd = engine.Uint64(data[16:24])
	h.NumArrays = engine.Uint64(data[24:32])

	return h.Validate()
}

// Validate checks the header invariants the fixed fields alone can establish.
// NumArrays is not trusted until the offset table has been read and found
// internally consistent.
//
// Returns:
//   - error: ErrInvalidMagicNumber on a wrong or swapped-endian magic,
//     ErrInconsistentBounds when the data region ends before it starts
func (h *Header) Validate() error {
	if h.Magic != Magic {
		if h.Magic == SwappedMagic {
			return fmt.Errorf("%w: stream was created on a machine with different endianness", errs.ErrInvalidMagicNumber)
		}

		return fmt.Errorf("%w: got 0x%016x, want 0x%016x", errs.ErrInvalidMagicNumber, h.Magic, Magic)
	}

	if h.DataEnd < h.DataStart {
		return fmt.Errorf("%w: data ends at %d before it starts at %d", errs.ErrInconsistentBounds, h.DataEnd, h.DataStart)
	}

	return nil
}

// Bytes serializes the Header into a byte slice of ArrayOffsetsStart bytes:
// the four fixed fields followed by zero padding to the alignment boundary,
// so the offset table can be written immediately after it.
func (h *Header) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, ArrayOffsetsStart)

	engine.PutUint64(b[0:8], h.Magic)
	engine.PutUint64(b[8:16], h.DataStart)
	engine.PutUint64(b[16:24], h.DataEnd)
	engine.PutUint64(b[24:32], h.NumArrays)
	// bytes 32-63 stay zero

	return b
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, or ErrInconsistentBounds
func ParseHeader(data []byte, engine endian.EndianEngine) (Header, error) {
	h := Header{}
	if err := h.Parse(data, engine); err != nil {
		return Header{}, err
	}

	return h, nil
}
