// Package pipeline runs TEA over whole messages: PKCS#7 padding plus
// electronic-codebook chaining, optionally spreading blocks across workers.
package pipeline

import (
	"crypto/cipher"
	"errors"
	"sync"

	"github.com/andreburgaud/crypt2go/ecb"
	"github.com/mxmauro/teaecb/crypto/padding"
	"github.com/mxmauro/teaecb/crypto/tea"
	"github.com/mxmauro/teaecb/util"
	"github.com/pion/logging"
)

// -----------------------------------------------------------------------------

// BlockSize is the unit the pipeline pads to and processes.
const BlockSize = tea.BlockSize

// Stage tells an observer which pass produced a block.
type Stage int

const (
	// StageEncrypted marks ciphertext blocks produced by Encrypt.
	StageEncrypted Stage = iota + 1
	// StageDecrypted marks plaintext blocks produced by Decrypt, padding included.
	StageDecrypted
)

// BlockObserver receives every processed block, in order, after a pass
// completes. The block slice aliases the pass output and must not be retained
// or modified.
type BlockObserver func(stage Stage, index int, block []byte)

// Options configure a Pipeline.
type Options struct {
	// Workers is the number of goroutines used to process blocks. Zero or one
	// processes blocks sequentially.
	Workers int

	// Observer, if set, is called for every processed block.
	Observer BlockObserver

	// Logger receives diagnostic messages. If nil, a "pipeline" scoped logger is
	// created from the pion default logger factory.
	Logger logging.LeveledLogger
}

// Pipeline encrypts and decrypts messages under a single key. It holds no
// mutable state and can be shared between goroutines.
type Pipeline struct {
	block    cipher.Block
	workers  int
	observer BlockObserver
	log      logging.LeveledLogger
}

// -----------------------------------------------------------------------------

// ErrAlignment is returned by Decrypt when the ciphertext length is not a
// multiple of the block size.
var ErrAlignment = errors.New("ciphertext not block aligned")

// -----------------------------------------------------------------------------

// New creates a pipeline for the given key.
func New(key tea.Key, opts Options) *Pipeline {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	log := opts.Logger
	if log == nil {
		log = logging.NewDefaultLoggerFactory().NewLogger("pipeline")
	}

	return &Pipeline{
		block:    tea.NewCipher(key),
		workers:  workers,
		observer: opts.Observer,
		log:      log,
	}
}

// Encrypt pads the message and encrypts each 8-byte block independently. The
// result is always a non-empty multiple of BlockSize.
func (p *Pipeline) Encrypt(message []byte) []byte {
	padded := padding.Pad(message, BlockSize)

	// Encrypt in place.
	p.cryptBlocks(padded, true)
	p.log.Debugf("encrypted %d bytes into %d blocks", len(message), len(padded)/BlockSize)

	p.notify(StageEncrypted, padded)

	// Done
	return padded
}

// Decrypt decrypts each block and strips the padding.
//
// If the ciphertext is not block aligned, it returns nil and an error matching
// ErrAlignment without decrypting anything. If the padding is invalid, usually
// because of a wrong key or corrupted data, it returns the decrypted buffer
// with the padding still attached and an error matching
// padding.ErrInvalidPadding.
func (p *Pipeline) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%BlockSize != 0 {
		p.log.Warnf("rejecting %d byte ciphertext", len(ciphertext))
		return nil, util.NewExtendedErrorf(ErrAlignment, "length %d is not a multiple of %d", len(ciphertext), BlockSize)
	}

	plaintext := make([]byte, len(ciphertext))
	copy(plaintext, ciphertext)
	p.cryptBlocks(plaintext, false)
	p.log.Debugf("decrypted %d blocks", len(plaintext)/BlockSize)

	p.notify(StageDecrypted, plaintext)

	message, err := padding.Unpad(plaintext, BlockSize)
	if err != nil {
		p.log.Warnf("unable to remove padding: %v", err)
		return plaintext, err
	}

	// Done
	return message, nil
}

// cryptBlocks transforms buf in place. buf length must be a multiple of BlockSize.
func (p *Pipeline) cryptBlocks(buf []byte, encrypt bool) {
	blockCount := len(buf) / BlockSize
	if blockCount == 0 {
		return
	}

	workers := p.workers
	if workers > blockCount {
		workers = blockCount
	}
	if workers == 1 {
		p.newMode(encrypt).CryptBlocks(buf, buf)
		return
	}

	// Split into contiguous ranges. Each worker owns its range exclusively.
	perWorker := (blockCount + workers - 1) / workers
	wg := sync.WaitGroup{}
	for first := 0; first < blockCount; first += perWorker {
		last := first + perWorker
		if last > blockCount {
			last = blockCount
		}
		chunk := buf[first*BlockSize : last*BlockSize]

		wg.Add(1)
		go func(first int, chunk []byte) {
			defer wg.Done()

			p.log.Tracef("worker processing blocks %d..%d", first, first+len(chunk)/BlockSize-1)
			p.newMode(encrypt).CryptBlocks(chunk, chunk)
		}(first, chunk)
	}
	wg.Wait()
}

func (p *Pipeline) newMode(encrypt bool) cipher.BlockMode {
	if encrypt {
		return ecb.NewECBEncrypter(p.block)
	}
	return ecb.NewECBDecrypter(p.block)
}

func (p *Pipeline) notify(stage Stage, buf []byte) {
	if p.observer == nil {
		return
	}
	for idx := 0; idx*BlockSize < len(buf); idx++ {
		p.observer(stage, idx, buf[idx*BlockSize:(idx+1)*BlockSize])
	}
}
