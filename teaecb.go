// Package teaecb encrypts arbitrary-length messages with TEA, using PKCS#7
// padding and electronic-codebook chaining.
//
// The scheme offers confidentiality of individual blocks only: there is no
// integrity protection and identical plaintext blocks produce identical
// ciphertext blocks.
package teaecb

import (
	"github.com/mxmauro/teaecb/crypto/tea"
	"github.com/mxmauro/teaecb/pipeline"
	"github.com/pion/logging"
)

// -----------------------------------------------------------------------------

var defaultLogger = logging.NewDefaultLoggerFactory().NewLogger("teaecb")

// -----------------------------------------------------------------------------

// EncryptMessage pads message and encrypts it block by block with key.
func EncryptMessage(message []byte, key tea.Key) []byte {
	return newDefaultPipeline(key).Encrypt(message)
}

// DecryptMessage reverses EncryptMessage. Errors match ErrAlignment or ErrPadding
// and the two can be told apart with errors.Is. On ErrPadding the decrypted,
// still padded, buffer is returned alongside the error.
func DecryptMessage(ciphertext []byte, key tea.Key) ([]byte, error) {
	return newDefaultPipeline(key).Decrypt(ciphertext)
}

func newDefaultPipeline(key tea.Key) *pipeline.Pipeline {
	return pipeline.New(key, pipeline.Options{
		Logger: defaultLogger,
	})
}
