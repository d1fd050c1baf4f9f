package section

// Magic numbers identifying a BFAST stream.
const (
	// Magic is the value of the leading header field on a well-formed stream.
	Magic uint64 = 0xBFA5

	// SwappedMagic is what Magic reads as when the stream was produced on a
	// machine of opposite byte order. It is recognized only to be rejected.
	SwappedMagic uint64 = 0xA5BF << 48
)

// Offsets and section sizes in the container.
const (
	// HeaderSize is the fixed header size in bytes, before padding.
	HeaderSize = 32

	// ArrayOffsetSize is the fixed size of one offset table entry in bytes.
	ArrayOffsetSize = 16

	// ArrayOffsetsStart is the byte offset where the offset table starts:
	// the header padded to the alignment boundary.
	ArrayOffsetsStart = 64

	// Alignment is the alignment unit in bytes. Every buffer begin and the
	// data region start are multiples of it. 64 bytes is sufficient to fit
	// payloads natively into 512-bit registers.
	Alignment = 64
)
