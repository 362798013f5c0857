// Package dump renders raw blocks for diagnostics.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/mxmauro/teaecb/pipeline"
)

// -----------------------------------------------------------------------------

// Format selects how a block is rendered.
type Format int

const (
	// FormatHex renders blocks with Hex.
	FormatHex Format = iota + 1
	// FormatASCII renders blocks with ASCII.
	FormatASCII
)

// -----------------------------------------------------------------------------

// Hex writes each byte as two uppercase hex digits followed by a space, then a newline.
func Hex(w io.Writer, block []byte) error {
	_, err := io.WriteString(w, HexString(block))
	return err
}

// HexString is the string form of Hex.
func HexString(block []byte) string {
	sb := strings.Builder{}
	sb.Grow(len(block)*3 + 1)
	for _, b := range block {
		_, _ = fmt.Fprintf(&sb, "%02X ", b)
	}
	_ = sb.WriteByte('\n')
	return sb.String()
}

// ASCII writes printable bytes (32 to 126) as-is and everything else as '.', then a newline.
func ASCII(w io.Writer, block []byte) error {
	_, err := io.WriteString(w, ASCIIString(block))
	return err
}

// ASCIIString is the string form of ASCII.
func ASCIIString(block []byte) string {
	buf := make([]byte, len(block)+1)
	for idx, b := range block {
		if b >= 32 && b <= 126 {
			buf[idx] = b
		} else {
			buf[idx] = '.'
		}
	}
	buf[len(block)] = '\n'
	return string(buf)
}

// NewObserver returns a pipeline observer that renders every block to w.
// Write errors are dropped.
func NewObserver(w io.Writer, format Format) pipeline.BlockObserver {
	render := Hex
	if format == FormatASCII {
		render = ASCII
	}
	return func(_ pipeline.Stage, _ int, block []byte) {
		_ = render(w, block)
	}
}
