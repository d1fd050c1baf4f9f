package section

// IsAligned reports whether n is a multiple of the alignment unit.
func IsAligned(n uint64) bool {
	return n%Alignment == 0
}

// AlignedValue returns the smallest multiple of the alignment unit that is
// greater than or equal to n. An already aligned value is returned unchanged.
func AlignedValue(n uint64) uint64 {
	if IsAligned(n) {
		return n
	}

	return n + Alignment - n%Alignment
}
