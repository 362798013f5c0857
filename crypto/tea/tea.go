// Package tea implements the Tiny Encryption Algorithm: a 64-bit block cipher
// with a 128-bit key and 32 Feistel cycles.
package tea

import (
	"encoding/binary"
	"strconv"

	"github.com/mxmauro/teaecb/util"
)

// -----------------------------------------------------------------------------

const (
	// Delta is the key schedule constant derived from the golden ratio.
	Delta = uint32(0x9E3779B9)

	// Rounds is the number of full cycles. Each cycle updates both halves.
	Rounds = 32

	// BlockSize is the cipher block size in bytes.
	BlockSize = 8

	// KeySize is the key size in bytes.
	KeySize = 16

	// Delta * Rounds mod 2^32.
	decryptSum = uint32(0xC6EF3720)
)

// -----------------------------------------------------------------------------

// Key is a 128-bit TEA key as four 32-bit words. It is used as-is on every
// round, there is no expansion.
type Key [4]uint32

// KeySizeError is returned when key material has the wrong length.
type KeySizeError int

// -----------------------------------------------------------------------------

func (k KeySizeError) Error() string {
	return "tea: invalid key size " + strconv.Itoa(int(k)) + ", must be " + strconv.Itoa(KeySize) + " bytes"
}

// KeyFromBytes loads a key from 16 bytes of material, big-endian per word.
func KeyFromBytes(b []byte) (Key, error) {
	var key Key

	if len(b) != KeySize {
		return Key{}, KeySizeError(len(b))
	}
	for i := range key {
		key[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return key, nil
}

// Bytes returns the big-endian byte form of the key.
func (key Key) Bytes() []byte {
	b := make([]byte, KeySize)
	for i, w := range key {
		binary.BigEndian.PutUint32(b[i*4:], w)
	}
	return b
}

// Zeroize wipes the key words.
func (key *Key) Zeroize() {
	util.SafeZeroWords(key[:])
}

// EncryptBlock encrypts the block (v0, v1). All arithmetic wraps modulo 2^32.
func EncryptBlock(v0 uint32, v1 uint32, key Key) (uint32, uint32) {
	k0, k1, k2, k3 := key[0], key[1], key[2], key[3]

	sum := uint32(0)
	for i := 0; i < Rounds; i++ {
		sum += Delta
		v0 += ((v1 << 4) + k0) ^ (v1 + sum) ^ ((v1 >> 5) + k1)
		v1 += ((v0 << 4) + k2) ^ (v0 + sum) ^ ((v0 >> 5) + k3)
	}
	return v0, v1
}

// DecryptBlock is the inverse of EncryptBlock for the same key.
func DecryptBlock(v0 uint32, v1 uint32, key Key) (uint32, uint32) {
	k0, k1, k2, k3 := key[0], key[1], key[2], key[3]

	sum := decryptSum
	for i := 0; i < Rounds; i++ {
		v1 -= ((v0 << 4) + k2) ^ (v0 + sum) ^ ((v0 >> 5) + k3)
		v0 -= ((v1 << 4) + k0) ^ (v1 + sum) ^ ((v1 >> 5) + k1)
		sum -= Delta
	}
	return v0, v1
}
