package teaecb

import (
	"errors"

	"github.com/mxmauro/teaecb/crypto/padding"
	"github.com/mxmauro/teaecb/pipeline"
)

// -----------------------------------------------------------------------------

var (
	// ErrAlignment is returned by DecryptMessage when the ciphertext length is not a
	// multiple of the block size. No decryption is performed.
	ErrAlignment = pipeline.ErrAlignment

	// ErrPadding is returned by DecryptMessage when the decrypted data does not end
	// with valid PKCS#7 padding. This is the usual outcome of a wrong key.
	ErrPadding = padding.ErrInvalidPadding

	ErrInvalidStoredData = errors.New("invalid stored data")
	ErrNotTEAKey         = errors.New("key does not belong to the tea-ecb engine")
)
