package blob

import (
	"fmt"

	"github.com/vimaec/bfast-go/endian"
	"github.com/vimaec/bfast-go/errs"
	ienc "github.com/vimaec/bfast-go/internal/encoding"
	"github.com/vimaec/bfast-go/internal/options"
	"github.com/vimaec/bfast-go/section"
)

// Decoder validates a BFAST stream and reconstructs the ordered named
// buffers.
//
// NewDecoder parses and validates the header eagerly; Decode validates the
// offset table and the name table before any buffer is surfaced, so a
// malformed stream is rejected as early as possible and never partially
// decoded.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used
// by a single goroutine at a time.
type Decoder struct {
	data          []byte
	engine        endian.EndianEngine
	header        section.Header
	strictPadding bool
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithStrictPadding makes Decode verify that every byte between consecutive
// buffer ranges is zero, as the encoder guarantees. Off by default: the check
// reads every padding byte, which defeats the zero-copy fast path.
func WithStrictPadding() DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.strictPadding = true
	})
}

// NewDecoder creates a new Decoder for the given stream and validates its
// header.
//
// Parameters:
//   - data: The container stream (must contain at least the 32-byte header)
//   - opts: Optional configuration functions (see DecoderOption)
//
// Returns:
//   - *Decoder: New decoder instance ready for decoding
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, or
//     ErrInconsistentBounds on a malformed header
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	decoder := &Decoder{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(decoder, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseHeader(data, decoder.engine)
	if err != nil {
		return nil, err
	}
	decoder.header = header

	return decoder, nil
}

// Header returns the parsed stream header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Decode validates the offset table and name table and returns the decoded
// container.
//
// No buffer bytes are copied: every returned buffer's data is a sub-slice of
// the input stream, which the caller must keep alive for as long as the Blob
// is used.
//
// Returns:
//   - Blob: The decoded container, empty when NumArrays == 0
//   - error: ErrTruncatedStream, ErrInvalidArrayOffsets, ErrNameTableMismatch,
//     or ErrPaddingNotZero (strict mode only)
func (d *Decoder) Decode() (Blob, error) {
	if d.header.NumArrays == 0 {
		// An empty container declares zero data bounds and holds no offset
		// table or name table.
		if err := section.ValidateArrayOffsets(nil, &d.header, uint64(len(d.data))); err != nil {
			return Blob{}, err
		}

		return newBlob(d.data, nil), nil
	}

	offsets, err := section.ParseArrayOffsets(d.data, d.header.NumArrays, d.engine)
	if err != nil {
		return Blob{}, err
	}

	if err := section.ValidateArrayOffsets(offsets, &d.header, uint64(len(d.data))); err != nil {
		return Blob{}, err
	}

	if d.strictPadding {
		if err := d.verifyPadding(offsets); err != nil {
			return Blob{}, err
		}
	}

	// Logical buffer 0 is the name table: one name per data buffer.
	nameTable := d.data[offsets[0].Begin:offsets[0].End]
	names, err := ienc.DecodeBufferNames(nameTable, int(d.header.NumArrays)-1) //nolint: gosec
	if err != nil {
		return Blob{}, err
	}

	buffers := make([]Buffer, len(names))
	for i, name := range names {
		off := offsets[i+1]
		buffers[i] = Buffer{
			Name: name,
			Data: d.data[off.Begin:off.End],
		}
	}

	return newBlob(d.data, buffers), nil
}

// verifyPadding checks that all bytes strictly between consecutive buffer
// ranges are zero.
func (d *Decoder) verifyPadding(offsets []section.ArrayOffset) error {
	for i := 0; i < len(offsets)-1; i++ {
		gap := d.data[offsets[i].End:offsets[i+1].Begin]
		for j, b := range gap {
			if b != 0 {
				return fmt.Errorf("%w: byte at offset %d between buffers %d and %d is 0x%02x",
					errs.ErrPaddingNotZero, offsets[i].End+uint64(j), i, i+1, b)
			}
		}
	}

	return nil
}

// Unpack decodes a container stream into its ordered named buffers.
// It is a convenience wrapper around Decoder for one-shot decoding; the
// returned buffer data borrows from data.
func Unpack(data []byte) ([]Buffer, error) {
	decoder, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	decoded, err := decoder.Decode()
	if err != nil {
		return nil, err
	}

	return decoded.Buffers(), nil
}
