package models

// -----------------------------------------------------------------------------

// Cipher is the minimal interface implemented by every registered engine.
type Cipher interface {
	// KeyLen returns the length, in bytes, of the key material used by the cipher.
	KeyLen() int

	// BlockSize returns the size of the blocks the ciphertext is made of.
	BlockSize() int

	// Encrypt encrypts the given plaintext. The input is not modified.
	Encrypt(plaintext []byte) ([]byte, error)
	// Decrypt decrypts the given ciphertext. The input is not modified.
	Decrypt(ciphertext []byte) ([]byte, error)
}
