package teaecb

import (
	"crypto/rand"
	"errors"
	"hash/fnv"
	"io"
	"sync"
	"time"

	bstd "github.com/deneonet/benc/std"
	"github.com/mxmauro/teaecb/crypto/ciphers"
	"github.com/mxmauro/teaecb/crypto/tea"
	"github.com/mxmauro/teaecb/models"
	"github.com/mxmauro/teaecb/util"
)

// -----------------------------------------------------------------------------

const (
	keyVersion = 1
)

// -----------------------------------------------------------------------------

// Key is a serializable container for opaque key material bound to an engine.
// It performs no derivation: the material is handed to the engine as-is.
type Key struct {
	ID           uint32
	Engine       string
	Material     []byte
	CreationTime time.Time

	mtx    sync.Mutex
	cipher models.Cipher
}

// -----------------------------------------------------------------------------

// GenerateKey creates a key with fresh random material for the given engine.
// If rg is nil, crypto/rand.Reader is used.
func GenerateKey(engine string, rg io.Reader) (*Key, error) {
	if rg == nil {
		rg = rand.Reader
	}

	material, err := ciphers.GenerateKey(engine, rg)
	if err != nil {
		return nil, err
	}

	k := newKey(engine, material)

	// Done
	return k, nil
}

// NewKey wraps a copy of existing key material.
func NewKey(engine string, material []byte) (*Key, error) {
	if !ciphers.IsEngineSupported(engine) {
		return nil, ciphers.ErrEngineNotSupported
	}
	if len(material) == 0 {
		return nil, errors.New("empty key material")
	}

	return newKey(engine, append([]byte(nil), material...)), nil
}

// NewTEAKey wraps a four-word TEA key for the tea-ecb engine.
func NewTEAKey(key tea.Key) *Key {
	return newKey(ciphers.EngineTeaEcb, key.Bytes())
}

// DeserializeKey decodes a key produced by Serialize.
func DeserializeKey(buf []byte) (*Key, error) {
	var ct int64

	bufSize := len(buf)
	if bufSize <= bstd.SizeUint16() {
		return nil, ErrInvalidStoredData
	}

	k := Key{}

	success := false
	defer func() {
		if !success {
			k.Zeroize()
		}
	}()

	// Deserialize data.
	ofs, version, err := bstd.UnmarshalUint16(0, buf)
	if err != nil {
		return nil, ErrInvalidStoredData
	}
	switch version {
	case 1:
		ofs, k.ID, err = bstd.UnmarshalUint32(ofs, buf)
		if err != nil {
			return nil, ErrInvalidStoredData
		}
		ofs, k.Engine, err = bstd.UnmarshalString(ofs, buf)
		if err != nil {
			return nil, ErrInvalidStoredData
		}
		ofs, k.Material, err = bstd.UnmarshalBytesCopied(ofs, buf)
		if err != nil {
			return nil, ErrInvalidStoredData
		}
		ofs, ct, err = bstd.UnmarshalInt64(ofs, buf)
		if err != nil {
			return nil, ErrInvalidStoredData
		}
		k.CreationTime = time.Unix(ct, 0).UTC()

	default:
		return nil, errors.New("unsupported key version")
	}

	// Check if we reached the end of the buffer.
	if ofs != len(buf) {
		return nil, ErrInvalidStoredData
	}
	if len(k.Material) == 0 {
		return nil, ErrInvalidStoredData
	}

	// Check if the engine is supported.
	if !ciphers.IsEngineSupported(k.Engine) {
		return nil, ciphers.ErrEngineNotSupported
	}

	// Done
	success = true
	return &k, nil
}

// Serialize encodes the key into a versioned binary record.
func (k *Key) Serialize() []byte {
	bufSize := bstd.SizeUint16() + bstd.SizeUint32() + bstd.SizeString(k.Engine) + bstd.SizeBytes(k.Material) + bstd.SizeUint64()
	buf := make([]byte, bufSize)

	ofs := bstd.MarshalUint16(0, buf, keyVersion)
	ofs = bstd.MarshalUint32(ofs, buf, k.ID)
	ofs = bstd.MarshalString(ofs, buf, k.Engine)
	ofs = bstd.MarshalBytes(ofs, buf, k.Material)
	_ = bstd.MarshalInt64(ofs, buf, k.CreationTime.Unix())

	// Done
	return buf
}

// Zeroize wipes the key material and drops the cached cipher.
func (k *Key) Zeroize() {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	k.ID = 0
	k.Engine = ""
	util.SafeZeroMem(k.Material)
	k.Material = nil
	k.CreationTime = time.Time{}

	k.cipher = nil
}

// GetCipher returns the engine cipher for this key, creating it on first use.
func (k *Key) GetCipher() (models.Cipher, error) {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	if k.cipher == nil {
		cipher, err := ciphers.NewFromKey(k.Engine, k.Material, rand.Reader)
		if err != nil {
			return nil, util.NewExtendedErrorf(err, "unable to create %s cipher", k.Engine)
		}
		k.cipher = cipher
	}
	return k.cipher, nil
}

// TEAKey returns the four-word form of a tea-ecb key.
func (k *Key) TEAKey() (tea.Key, error) {
	if k.Engine != ciphers.EngineTeaEcb {
		return tea.Key{}, ErrNotTEAKey
	}
	return tea.KeyFromBytes(k.Material)
}

func newKey(engine string, material []byte) *Key {
	now := time.Now().UTC()

	// Create ID.
	h := fnv.New32a()
	_, _ = h.Write(material)
	_, _ = h.Write([]byte(now.String()))

	return &Key{
		ID:           h.Sum32(),
		Engine:       engine,
		Material:     material,
		CreationTime: now,
	}
}
