package tea

import (
	"crypto/cipher"

	"github.com/mxmauro/teaecb/crypto/words"
)

// -----------------------------------------------------------------------------

type teaCipher struct {
	key Key
}

// -----------------------------------------------------------------------------

// NewCipher wraps the key into a cipher.Block so it can be driven by any
// crypto/cipher compatible block mode.
func NewCipher(key Key) cipher.Block {
	return &teaCipher{
		key: key,
	}
}

func (c *teaCipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block of src into dst. Both may overlap entirely.
func (c *teaCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("tea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("tea: output not full block")
	}

	v0, v1 := words.BytesToWords(src)
	v0, v1 = EncryptBlock(v0, v1, c.key)
	words.PutWords(dst, v0, v1)
}

// Decrypt decrypts the first block of src into dst.
func (c *teaCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("tea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("tea: output not full block")
	}

	v0, v1 := words.BytesToWords(src)
	v0, v1 = DecryptBlock(v0, v1, c.key)
	words.PutWords(dst, v0, v1)
}
