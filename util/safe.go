package util

// -----------------------------------------------------------------------------

// SafeZeroMem zeros the given memory.
func SafeZeroMem(v []byte) {
	vLen := len(v)
	if vLen > 0 {
		v[0] = 0
		for ofs := 1; ofs < vLen; ofs *= 2 {
			copy(v[ofs:], v[:ofs])
		}
	}
}

// SafeZeroWords zeros the given word slice, typically key material.
func SafeZeroWords(v []uint32) {
	for idx := range v {
		v[idx] = 0
	}
}
