// Package encoding implements the BFAST name table payload codec.
//
// The name table is the synthetic logical buffer 0 of every container: the
// names of the data buffers concatenated in order, each followed by a single
// null byte. It is packed, aligned, and padded exactly like any other buffer;
// only its contents are special.
package encoding

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vimaec/bfast-go/errs"
)

// AppendBufferNames appends the name table payload for the ordered buffer
// names to dst: name + '\0' for each name.
//
// Parameters:
//   - dst: Destination slice to append to (may be nil)
//   - names: The ordered buffer names
//
// Returns:
//   - []byte: dst with the encoded payload appended
//   - error: ErrInvalidBufferName if a name contains an embedded null byte
func AppendBufferNames(dst []byte, names []string) ([]byte, error) {
	for _, name := range names {
		if strings.IndexByte(name, 0) >= 0 {
			return dst, fmt.Errorf("%w: name %q contains an embedded null byte", errs.ErrInvalidBufferName, name)
		}
	}

	for _, name := range names {
		dst = append(dst, name...)
		dst = append(dst, 0)
	}

	return dst, nil
}

// EncodeBufferNames encodes an ordered list of buffer names into a new name
// table payload.
//
// Returns:
//   - []byte: The encoded name table payload, empty for no names
//   - error: ErrInvalidBufferName if a name contains an embedded null byte
func EncodeBufferNames(names []string) ([]byte, error) {
	totalSize := 0
	for _, name := range names {
		totalSize += len(name) + 1 // trailing null separator
	}

	return AppendBufferNames(make([]byte, 0, totalSize), names)
}

// DecodeBufferNames splits a name table payload on null bytes into the
// ordered buffer names.
//
// Parameters:
//   - payload: The raw name table bytes (logical buffer 0)
//   - want: The expected number of names (the container's NumArrays - 1)
//
// Returns:
//   - []string: The decoded names, in order
//   - error: ErrNameTableMismatch if the payload does not hold exactly want
//     null-terminated segments
func DecodeBufferNames(payload []byte, want int) ([]string, error) {
	if len(payload) == 0 {
		if want != 0 {
			return nil, fmt.Errorf("%w: empty name table, want %d names", errs.ErrNameTableMismatch, want)
		}

		return nil, nil
	}

	if payload[len(payload)-1] != 0 {
		return nil, fmt.Errorf("%w: name table does not end with a null byte", errs.ErrNameTableMismatch)
	}

	segments := bytes.Split(payload[:len(payload)-1], []byte{0})
	if len(segments) != want {
		return nil, fmt.Errorf("%w: name table holds %d names, want %d", errs.ErrNameTableMismatch, len(segments), want)
	}

	names := make([]string, len(segments))
	for i, seg := range segments {
		names[i] = string(seg)
	}

	return names, nil
}
