package words

import (
	"encoding/binary"
)

// -----------------------------------------------------------------------------

// BlockSize is the number of bytes packed into a pair of words.
const BlockSize = 8

// -----------------------------------------------------------------------------

// BytesToWords packs the first 8 bytes of b into two big-endian 32-bit words.
// Byte 0 becomes the most-significant byte of w0 and byte 7 the least-significant
// byte of w1. The caller must provide at least 8 bytes.
func BytesToWords(b []byte) (w0 uint32, w1 uint32) {
	_ = b[7] // Bounds check hint.
	w0 = binary.BigEndian.Uint32(b[0:4])
	w1 = binary.BigEndian.Uint32(b[4:8])
	return
}

// WordsToBytes is the exact inverse of BytesToWords.
func WordsToBytes(w0 uint32, w1 uint32) [BlockSize]byte {
	var b [BlockSize]byte

	PutWords(b[:], w0, w1)
	return b
}

// PutWords writes the two words into the first 8 bytes of dst.
func PutWords(dst []byte, w0 uint32, w1 uint32) {
	_ = dst[7]
	binary.BigEndian.PutUint32(dst[0:4], w0)
	binary.BigEndian.PutUint32(dst[4:8], w1)
}
