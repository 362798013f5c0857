package tea_ecb

import (
	"errors"
	"io"

	"github.com/mxmauro/teaecb/crypto/tea"
	"github.com/mxmauro/teaecb/models"
	"github.com/mxmauro/teaecb/pipeline"
	"github.com/mxmauro/teaecb/util"
)

// -----------------------------------------------------------------------------

type teaEcbCipher struct {
	p *pipeline.Pipeline
}

// -----------------------------------------------------------------------------

// GenerateKey generates a new random 128-bit TEA key.
func GenerateKey(r io.Reader) ([]byte, error) {
	key := make([]byte, tea.KeySize)

	n, err := io.ReadFull(r, key)
	if err != nil {
		return nil, err
	}
	if n != tea.KeySize {
		return nil, errors.New("unable to generate tea key")
	}

	// Done.
	return key, nil
}

// NewFromKey creates a TEA-ECB cipher object from 16 bytes of key material.
// The reader is not used, ECB needs no nonce.
func NewFromKey(key []byte, _ io.Reader) (models.Cipher, error) {
	return NewFromKeyWithOptions(key, pipeline.Options{})
}

// NewFromKeyWithOptions is like NewFromKey but lets the caller tune the pipeline.
func NewFromKeyWithOptions(key []byte, opts pipeline.Options) (models.Cipher, error) {
	teaKey, err := tea.KeyFromBytes(key)
	if err != nil {
		return nil, util.NewExtendedError(err, "failed to create cipher")
	}

	c := &teaEcbCipher{
		p: pipeline.New(teaKey, opts),
	}
	teaKey.Zeroize()

	// Done.
	return c, nil
}

// KeyLen returns the length of the key used by the TEA-ECB cipher.
func (c *teaEcbCipher) KeyLen() int {
	return tea.KeySize
}

// BlockSize returns the TEA block size.
func (c *teaEcbCipher) BlockSize() int {
	return tea.BlockSize
}

// Encrypt pads and encrypts the given plaintext.
func (c *teaEcbCipher) Encrypt(plaintext []byte) ([]byte, error) {
	return c.p.Encrypt(plaintext), nil
}

// Decrypt decrypts the given ciphertext and removes its padding.
func (c *teaEcbCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	plaintext, err := c.p.Decrypt(ciphertext)
	if err != nil {
		util.SafeZeroMem(plaintext)
		return nil, err
	}
	return plaintext, nil
}
