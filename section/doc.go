// Package section defines the low-level binary structures and constants of the
// BFAST container format.
//
// It handles binary serialization/deserialization of the fixed header and the
// array offset table, and the alignment arithmetic every layout decision is
// built on, ensuring a consistent byte-level representation across platforms.
//
// # Container Structure
//
// A BFAST stream consists of a fixed header, an offset table, and the buffer
// payloads, every region starting on a 64-byte boundary:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Magic (8 bytes): 0xBFA5                              │
//	│  - DataStart (8 bytes): begin of first buffer           │
//	│  - DataEnd (8 bytes): end of last buffer                │
//	│  - NumArrays (8 bytes): offset entry count              │
//	├─────────────────────────────────────────────────────────┤
//	│ Padding (32 bytes, zero)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Offset Table (N × 16 bytes)                             │
//	│  - Begin, End (8 bytes each) per logical buffer         │
//	├─────────────────────────────────────────────────────────┤
//	│ Padding to 64-byte boundary (zero)                      │
//	├─────────────────────────────────────────────────────────┤
//	│ Buffer 0 (name table), zero-padded to 64-byte boundary  │
//	├─────────────────────────────────────────────────────────┤
//	│ Buffer 1..N-1, each zero-padded to 64-byte boundary     │
//	└─────────────────────────────────────────────────────────┘
//
// Logical buffer 0 is always the name table: the names of the data buffers
// concatenated with a null byte after each. The count of real data buffers is
// therefore NumArrays - 1.
//
// All integers on the wire are little-endian. A stream whose magic field
// reads as SwappedMagic was produced on a machine of opposite byte order and
// is rejected, never byte-swapped.
package section
