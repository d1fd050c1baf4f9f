// Package pool provides pooled scratch buffers for the container encoder.
package pool

import "sync"

// NameBufferDefaultSize is the default capacity of a ByteBuffer obtained from
// the name table pool; NameBufferMaxThreshold is the capacity above which a
// buffer is discarded instead of being returned to the pool.
const (
	NameBufferDefaultSize  = 1024 * 4  // 4KiB
	NameBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a growable byte slice wrapper reused through a pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteString appends a string to the buffer, growing it if necessary.
func (bb *ByteBuffer) WriteString(s string) {
	bb.B = append(bb.B, s...)
}

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally. Buffers grown past the maximum threshold are
// discarded on Put to avoid retaining overly large scratch memory.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var nameDefaultPool = NewByteBufferPool(NameBufferDefaultSize, NameBufferMaxThreshold)

// GetNameBuffer retrieves a ByteBuffer from the default name table pool.
func GetNameBuffer() *ByteBuffer {
	return nameDefaultPool.Get()
}

// PutNameBuffer returns a ByteBuffer to the default name table pool.
func PutNameBuffer(bb *ByteBuffer) {
	nameDefaultPool.Put(bb)
}
