// Package padding implements PKCS#7 block padding.
package padding

import (
	"errors"

	c2gpadding "github.com/andreburgaud/crypt2go/padding"
	"github.com/mxmauro/teaecb/util"
)

// -----------------------------------------------------------------------------

// ErrInvalidPadding is returned by Unpad when the trailing padding is absent,
// zero, oversized or inconsistent.
var ErrInvalidPadding = errors.New("invalid padding")

// -----------------------------------------------------------------------------

// PaddedLen returns the length of a padded message of n bytes, that is, n+1
// rounded up to the next multiple of blockSize.
func PaddedLen(n int, blockSize int) int {
	return (n/blockSize + 1) * blockSize
}

// Pad returns a new buffer holding message followed by p bytes of value p,
// where p is in [1, blockSize]. Padding is added even when the message is
// already aligned. The input is never modified.
func Pad(message []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 255 {
		panic("padding: invalid block size")
	}

	// The library appends in place, so hand it a private buffer with room for the padding.
	buf := make([]byte, len(message), PaddedLen(len(message), blockSize))
	copy(buf, message)

	padded, err := c2gpadding.NewPkcs7Padding(blockSize).Pad(buf)
	if err != nil {
		panic("padding: " + err.Error())
	}
	return padded
}

// Unpad strips the padding added by Pad. On failure the input slice is returned
// unchanged along with an error that matches ErrInvalidPadding.
func Unpad(padded []byte, blockSize int) ([]byte, error) {
	if len(padded) == 0 {
		return padded, util.NewExtendedError(ErrInvalidPadding, "empty buffer")
	}

	message, err := c2gpadding.NewPkcs7Padding(blockSize).Unpad(padded)
	if err != nil {
		return padded, util.NewExtendedError(ErrInvalidPadding, err.Error())
	}

	// Done
	return message, nil
}
