package blob

import (
	"fmt"
	"strings"

	"github.com/vimaec/bfast-go/endian"
	"github.com/vimaec/bfast-go/errs"
	ienc "github.com/vimaec/bfast-go/internal/encoding"
	"github.com/vimaec/bfast-go/internal/options"
	"github.com/vimaec/bfast-go/internal/pool"
	"github.com/vimaec/bfast-go/section"
)

// Encoder builds a BFAST container stream from an ordered list of named
// buffers.
//
// Buffers are added with Add and the stream is produced by Finish. The
// encoder only borrows each buffer's data; all bytes are copied into the
// output when Finish runs, so callers may reuse their input afterwards.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used
// by a single goroutine at a time.
//
// Note: The Encoder is NOT reusable. After calling Finish, a new encoder must
// be created for further encoding.
type Encoder struct {
	engine   endian.EndianEngine
	names    []string
	payloads [][]byte
	finished bool
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithBufferCountHint pre-allocates the encoder's bookkeeping for the
// expected number of buffers. Purely an allocation hint; the encoder still
// grows past it.
func WithBufferCountHint(n int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if n < 0 {
			return fmt.Errorf("invalid buffer count hint: %d", n)
		}

		e.names = make([]string, 0, n)
		e.payloads = make([][]byte, 0, n)

		return nil
	})
}

// NewEncoder creates a new Encoder.
//
// Parameters:
//   - opts: Optional configuration functions (see EncoderOption)
//
// Returns:
//   - *Encoder: New encoder instance ready for buffers
//   - error: Configuration error if invalid options provided
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	encoder := &Encoder{
		engine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(encoder, opts...); err != nil {
		return nil, err
	}

	return encoder, nil
}

// Add appends a named buffer to the container.
//
// The name is validated immediately, before any output is allocated; data is
// borrowed until Finish copies it into the stream. Duplicate names are
// allowed and preserved in order.
//
// Returns:
//   - error: ErrInvalidBufferName if name contains an embedded null byte,
//     ErrEncoderFinished if Finish was already called
func (e *Encoder) Add(name string, data []byte) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	if strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("%w: name %q contains an embedded null byte", errs.ErrInvalidBufferName, name)
	}

	e.names = append(e.names, name)
	e.payloads = append(e.payloads, data)

	return nil
}

// AddBuffer appends a Buffer to the container. Equivalent to Add(buf.Name, buf.Data).
func (e *Encoder) AddBuffer(buf Buffer) error {
	return e.Add(buf.Name, buf.Data)
}

// Count returns the number of buffers added so far.
func (e *Encoder) Count() int {
	return len(e.payloads)
}

// Finish assembles and returns the container stream.
//
// The output is a byte-for-byte deterministic function of the added buffers
// and their order. An encoder with no buffers produces the 64-byte empty
// container (NumArrays == 0, zero data bounds).
//
// Returns:
//   - []byte: The assembled stream
//   - error: ErrEncoderFinished if Finish was already called
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	if len(e.payloads) == 0 {
		// Header only: NumArrays == 0, DataStart == DataEnd == 0.
		return section.NewHeader(nil).Bytes(e.engine), nil
	}

	nameBuf := pool.GetNameBuffer()
	defer pool.PutNameBuffer(nameBuf)

	var err error
	nameBuf.B, err = ienc.AppendBufferNames(nameBuf.B, e.names)
	if err != nil {
		// Names are validated in Add; a failure here means the encoder's
		// bookkeeping was corrupted externally.
		return nil, err
	}

	// The name table is logical buffer 0, laid out like any other buffer.
	lengths := make([]uint64, 0, len(e.payloads)+1)
	lengths = append(lengths, uint64(nameBuf.Len()))
	for _, payload := range e.payloads {
		lengths = append(lengths, uint64(len(payload)))
	}

	offsets := section.BuildArrayOffsets(lengths)
	writer := newStreamWriter(section.ComputeNeededSize(offsets), e.engine)

	writer.writeBytes(section.NewHeader(offsets).Bytes(e.engine))
	for _, off := range offsets {
		writer.writeUint64(off.Begin)
		writer.writeUint64(off.End)
	}
	writer.padToAlignment()

	writer.writeBytes(nameBuf.Bytes())
	for _, payload := range e.payloads {
		writer.padToAlignment()
		writer.writeBytes(payload)
	}

	return writer.bytes(), nil
}

// Pack assembles a container stream from the given buffers in order.
// It is a convenience wrapper around Encoder for one-shot encoding.
func Pack(buffers []Buffer) ([]byte, error) {
	encoder, err := NewEncoder(WithBufferCountHint(len(buffers)))
	if err != nil {
		return nil, err
	}

	for _, buf := range buffers {
		if err := encoder.AddBuffer(buf); err != nil {
			return nil, err
		}
	}

	return encoder.Finish()
}
