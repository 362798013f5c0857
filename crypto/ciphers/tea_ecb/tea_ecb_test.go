package tea_ecb_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/mxmauro/teaecb/crypto/ciphers/tea_ecb"
	"github.com/mxmauro/teaecb/crypto/padding"
	"github.com/mxmauro/teaecb/crypto/tea"
	"github.com/mxmauro/teaecb/models"
	"github.com/mxmauro/teaecb/pipeline"
	"github.com/pion/logging"
)

// -----------------------------------------------------------------------------

var (
	testPlainText = []byte("Hello world!")
)

// -----------------------------------------------------------------------------

func TestTeaEcb(t *testing.T) {
	var cipher models.Cipher
	var encryptedData []byte
	var decryptedData []byte

	t.Log("Generating a new key")
	key, err := tea_ecb.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if len(key) != tea.KeySize {
		t.Fatalf("unexpected key length %d", len(key))
	}

	t.Log("Creating cipher")
	cipher, err = tea_ecb.NewFromKeyWithOptions(key, pipeline.Options{
		Logger: disabledLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if cipher.KeyLen() != tea.KeySize || cipher.BlockSize() != tea.BlockSize {
		t.Fatal("unexpected cipher sizes")
	}

	t.Log("Encrypting 'Hello world!'")
	encryptedData, err = cipher.Encrypt(testPlainText)
	if err != nil {
		t.Fatal(err)
	}
	if len(encryptedData) != 16 {
		t.Fatalf("unexpected ciphertext length %d", len(encryptedData))
	}

	t.Log("Decrypting encrypted data")
	decryptedData, err = cipher.Decrypt(encryptedData)
	if err != nil {
		t.Fatal(err)
	}

	t.Log("Verifying if decrypted data matches")
	if !bytes.Equal(decryptedData, testPlainText) {
		t.Fatalf("decrypted data does not match test plain text")
	}
}

func TestInvalidKey(t *testing.T) {
	var sizeErr tea.KeySizeError

	_, err := tea_ecb.NewFromKey(make([]byte, 15), nil)
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected KeySizeError, got %v", err)
	}
}

func TestDecryptFailureReturnsNothing(t *testing.T) {
	cipher, err := tea_ecb.NewFromKeyWithOptions(make([]byte, tea.KeySize), pipeline.Options{
		Logger: disabledLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}

	// Under the all-zero key this block decrypts to eight zero bytes.
	out, err := cipher.Decrypt([]byte{0x41, 0xea, 0x3a, 0x0a, 0x94, 0xba, 0xa9, 0x40})
	if !errors.Is(err, padding.ErrInvalidPadding) {
		t.Fatalf("expected ErrInvalidPadding, got %v", err)
	}
	if out != nil {
		t.Fatal("plaintext returned on padding failure")
	}

	_, err = cipher.Decrypt(make([]byte, 5))
	if !errors.Is(err, pipeline.ErrAlignment) {
		t.Fatalf("expected ErrAlignment, got %v", err)
	}
}

// -----------------------------------------------------------------------------

func disabledLogger() logging.LeveledLogger {
	factory := logging.NewDefaultLoggerFactory()
	factory.DefaultLogLevel = logging.LogLevelDisabled
	return factory.NewLogger("pipeline")
}
