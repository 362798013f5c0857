package teaecb_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kr/pretty"
	"github.com/mxmauro/teaecb"
	"github.com/mxmauro/teaecb/crypto/tea"
)

// -----------------------------------------------------------------------------

var (
	sampleKey       = tea.Key{0x12345678, 0x9ABCDEF0, 0xFEDCBA98, 0x76543210}
	plaintextSample = []byte("Mensaje de prueba para TEA")
)

// -----------------------------------------------------------------------------

func TestEncryptDecryptMessage(t *testing.T) {
	t.Log("Encrypting plaintext...")
	ciphertext := teaecb.EncryptMessage(plaintextSample, sampleKey)
	if len(ciphertext) != 32 {
		t.Fatalf("unexpected ciphertext length %d", len(ciphertext))
	}

	t.Log("Decrypting ciphertext...")
	decPlaintext, err := teaecb.DecryptMessage(ciphertext, sampleKey)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plaintextSample, decPlaintext) {
		t.Fatalf("original and decrypted text mismatch: %v", pretty.Diff(string(decPlaintext), string(plaintextSample)))
	}
}

func TestAlignedMessageGetsFullPaddingBlock(t *testing.T) {
	ciphertext := teaecb.EncryptMessage([]byte("HOLA1234"), sampleKey)
	if len(ciphertext) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(ciphertext))
	}
}

func TestDistinguishableErrors(t *testing.T) {
	t.Log("Decrypting a 7-byte ciphertext (expected to fail)...")
	_, err := teaecb.DecryptMessage(make([]byte, 7), sampleKey)
	if !errors.Is(err, teaecb.ErrAlignment) || errors.Is(err, teaecb.ErrPadding) {
		t.Fatalf("expected only ErrAlignment, got %v", err)
	}

	t.Log("Decrypting a block of zeros under the zero key (expected to fail)...")
	ciphertext := []byte{0x41, 0xea, 0x3a, 0x0a, 0x94, 0xba, 0xa9, 0x40}
	out, err := teaecb.DecryptMessage(ciphertext, tea.Key{})
	if !errors.Is(err, teaecb.ErrPadding) || errors.Is(err, teaecb.ErrAlignment) {
		t.Fatalf("expected only ErrPadding, got %v", err)
	}
	if !bytes.Equal(out, make([]byte, 8)) {
		t.Fatalf("unexpected buffer % X", out)
	}
}
