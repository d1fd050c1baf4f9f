package blob

import (
	"github.com/vimaec/bfast-go/internal/hash"
)

// Buffer is a named byte slice, the unit the caller provides to Pack and
// receives from Unpack.
//
// The name must not contain embedded null bytes (the null byte is the record
// separator of the name table). Data is borrowed, not owned: an input
// Buffer's data is only read for the duration of the pack call, and an
// unpacked Buffer's data is a sub-slice of the decoded stream.
type Buffer struct {
	Name string
	Data []byte
}

// Blob is a decoded BFAST container: the ordered data buffers plus lookup
// indexes by name and by 64-bit name hash.
//
// All buffer data borrows from the stream the Blob was decoded from; the
// caller must keep that stream alive for as long as the Blob is used.
type Blob struct {
	data    []byte
	buffers []Buffer
	byID    map[uint64]int // hash.ID(name) → index of first occurrence
}

// newBlob builds a Blob over the given stream and decoded buffers.
// Duplicate names resolve to the first occurrence.
func newBlob(data []byte, buffers []Buffer) Blob {
	byID := make(map[uint64]int, len(buffers))
	for i, buf := range buffers {
		id := hash.ID(buf.Name)
		if _, ok := byID[id]; !ok {
			byID[id] = i
		}
	}

	return Blob{data: data, buffers: buffers, byID: byID}
}

// Count returns the number of data buffers in the container, not counting
// the name table.
func (b Blob) Count() int {
	return len(b.buffers)
}

// Buffers returns the data buffers in container order.
// The returned slice is cloned to prevent external modification; the buffer
// data still borrows from the decoded stream.
func (b Blob) Buffers() []Buffer {
	out := make([]Buffer, len(b.buffers))
	copy(out, b.buffers)

	return out
}

// Buffer returns the data buffer at index i in container order.
func (b Blob) Buffer(i int) Buffer {
	return b.buffers[i]
}

// Names returns the buffer names in container order.
// The returned slice is cloned to prevent external modification.
func (b Blob) Names() []string {
	names := make([]string, len(b.buffers))
	for i, buf := range b.buffers {
		names[i] = buf.Name
	}

	return names
}

// HasName returns true if the container holds a buffer with the given name.
func (b Blob) HasName(name string) bool {
	_, ok := b.BufferByName(name)
	return ok
}

// BufferByName returns the first buffer with the given name.
func (b Blob) BufferByName(name string) (Buffer, bool) {
	buf, ok := b.BufferByID(hash.ID(name))
	if !ok || buf.Name != name {
		return Buffer{}, false
	}

	return buf, true
}

// BufferByID returns the first buffer whose name hashes to the given ID.
// IDs are computed with hash.ID (xxHash64 of the name); callers that look up
// the same buffer repeatedly can precompute the ID once.
func (b Blob) BufferByID(id uint64) (Buffer, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Buffer{}, false
	}

	return b.buffers[i], true
}
