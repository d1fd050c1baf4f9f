package section

import (
	"fmt"

	"github.com/vimaec/bfast-go/endian"
	"github.com/vimaec/bfast-go/errs"
)

// ArrayOffset records where one logical buffer lives in the stream, as byte
// offsets from the beginning of the BFAST stream. It is a fixed size of
// 16 bytes on the wire.
type ArrayOffset struct {
	// Begin is the byte offset of the buffer's first byte. Always a multiple
	// of Alignment.
	Begin uint64 // byte offset 0-7

	// End is the byte offset one past the buffer's last byte, Begin <= End.
	// Bytes between End and the next entry's Begin are zero padding.
	End uint64 // byte offset 8-15
}

// Len returns the buffer length in bytes.
func (o ArrayOffset) Len() uint64 {
	return o.End - o.Begin
}

// WriteToSlice writes the entry to a pre-allocated slice and returns the next
// write position. This is the most efficient method when writing the offset
// table sequentially.
func (o ArrayOffset) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], o.Begin)
	engine.PutUint64(data[offset+8:offset+16], o.End)

	return offset + ArrayOffsetSize
}

// ComputeDataStart returns the byte offset where the first buffer's data
// starts for a container with count offset entries: the aligned header
// followed by the offset table, rounded up to the alignment boundary.
func ComputeDataStart(count int) uint64 {
	r := AlignedValue(HeaderSize)
	r += ArrayOffsetSize * uint64(count) //nolint: gosec
	return AlignedValue(r)
}

// BuildArrayOffsets computes the offset table for buffers with the given byte
// lengths, in order. The cursor starts at ComputeDataStart and advances to
// the next alignment boundary after each buffer, so every Begin is aligned
// and inter-buffer gaps are padding.
func BuildArrayOffsets(lengths []uint64) []ArrayOffset {
	cursor := ComputeDataStart(len(lengths))
	offsets := make([]ArrayOffset, 0, len(lengths))
	for _, length := range lengths {
		offsets = append(offsets, ArrayOffset{Begin: cursor, End: cursor + length})
		cursor = AlignedValue(cursor + length)
	}

	return offsets
}

// ComputeNeededSize returns the total stream size in bytes for a container
// with the given offset table: the end of the last buffer, or the data start
// of an empty container.
func ComputeNeededSize(offsets []ArrayOffset) uint64 {
	if len(offsets) == 0 {
		return ComputeDataStart(0)
	}

	return offsets[len(offsets)-1].End
}

// ParseArrayOffsets reads count offset entries from the offset table region
// starting at ArrayOffsetsStart.
//
// Parameters:
//   - data: The full stream byte slice
//   - count: Number of entries to read (the header's NumArrays)
//   - engine: Endian engine for byte order
//
// Returns:
//   - []ArrayOffset: Parsed entries in order
//   - error: ErrTruncatedStream if the stream cannot hold count entries
func ParseArrayOffsets(data []byte, count uint64, engine endian.EndianEngine) ([]ArrayOffset, error) {
	// Bound count by what the stream can physically hold before allocating,
	// so a hostile NumArrays cannot overflow the size arithmetic.
	if len(data) < ArrayOffsetsStart {
		return nil, fmt.Errorf("%w: stream of %d bytes cannot hold an offset table", errs.ErrTruncatedStream, len(data))
	}
	maxCount := uint64(len(data)-ArrayOffsetsStart) / ArrayOffsetSize
	if count > maxCount {
		return nil, fmt.Errorf("%w: offset table declares %d entries, stream can hold %d", errs.ErrTruncatedStream, count, maxCount)
	}

	offsets := make([]ArrayOffset, count)
	pos := ArrayOffsetsStart
	for i := range offsets {
		offsets[i].Begin = engine.Uint64(data[pos : pos+8])
		offsets[i].End = engine.Uint64(data[pos+8 : pos+16])
		pos += ArrayOffsetSize
	}

	return offsets, nil
}

// ValidateArrayOffsets checks a parsed offset table against the header and
// the stream length: every Begin aligned and not before the data start, every
// entry with Begin <= End <= stream length, entries non-overlapping in order,
// and the table bounds matching the header's DataStart/DataEnd.
func ValidateArrayOffsets(offsets []ArrayOffset, h *Header, streamLen uint64) error {
	if len(offsets) == 0 {
		if h.DataStart != 0 || h.DataEnd != 0 {
			return fmt.Errorf("%w: empty container declares data bounds [%d, %d)", errs.ErrInvalidArrayOffsets, h.DataStart, h.DataEnd)
		}

		return nil
	}

	dataStart := ComputeDataStart(len(offsets))
	if offsets[0].Begin != h.DataStart {
		return fmt.Errorf("%w: first buffer begins at %d, header declares %d", errs.ErrInvalidArrayOffsets, offsets[0].Begin, h.DataStart)
	}
	if offsets[0].Begin < dataStart {
		return fmt.Errorf("%w: first buffer begins at %d inside the offset table extent %d", errs.ErrInvalidArrayOffsets, offsets[0].Begin, dataStart)
	}
	if offsets[len(offsets)-1].End != h.DataEnd {
		return fmt.Errorf("%w: last buffer ends at %d, header declares %d", errs.ErrInvalidArrayOffsets, offsets[len(offsets)-1].End, h.DataEnd)
	}

	prevEnd := uint64(0)
	for i, off := range offsets {
		if !IsAligned(off.Begin) {
			return fmt.Errorf("%w: entry %d begins at unaligned offset %d", errs.ErrInvalidArrayOffsets, i, off.Begin)
		}
		if off.End < off.Begin {
			return fmt.Errorf("%w: entry %d ends at %d before it begins at %d", errs.ErrInvalidArrayOffsets, i, off.End, off.Begin)
		}
		if off.End > streamLen {
			return fmt.Errorf("%w: entry %d ends at %d beyond stream length %d", errs.ErrTruncatedStream, i, off.End, streamLen)
		}
		if i > 0 && off.Begin < AlignedValue(prevEnd) {
			return fmt.Errorf("%w: entry %d begins at %d inside the previous buffer's padded extent %d", errs.ErrInvalidArrayOffsets, i, off.Begin, AlignedValue(prevEnd))
		}
		prevEnd = off.End
	}

	return nil
}
