package blob

import (
	"github.com/vimaec/bfast-go/endian"
	"github.com/vimaec/bfast-go/section"
)

// streamWriter assembles a container into a fixed-size, zero-initialized
// buffer. Skipped regions stay zero, so alignment padding never has to be
// written explicitly.
type streamWriter struct {
	buf    []byte
	cursor uint64
	engine endian.EndianEngine
}

// newStreamWriter allocates a zeroed output buffer of exactly size bytes.
func newStreamWriter(size uint64, engine endian.EndianEngine) *streamWriter {
	return &streamWriter{
		buf:    make([]byte, size),
		engine: engine,
	}
}

// writeBytes copies data at the cursor and advances it.
func (w *streamWriter) writeBytes(data []byte) {
	copy(w.buf[w.cursor:], data)
	w.cursor += uint64(len(data))
}

// writeUint64 writes v at the cursor and advances it by 8 bytes.
func (w *streamWriter) writeUint64(v uint64) {
	w.engine.PutUint64(w.buf[w.cursor:], v)
	w.cursor += 8
}

// padToAlignment advances the cursor to the next alignment boundary.
// The skipped bytes are already zero.
func (w *streamWriter) padToAlignment() {
	w.cursor = section.AlignedValue(w.cursor)
}

// position returns the current cursor offset.
func (w *streamWriter) position() uint64 {
	return w.cursor
}

// bytes returns the assembled stream.
func (w *streamWriter) bytes() []byte {
	return w.buf
}
