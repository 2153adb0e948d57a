// Package hash fingerprints layouts with domain separated BLAKE3.
package hash

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"

	"github.com/prdtools/prd/internal/params"
	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the length of Sum's output.
const DigestLengthBytes = params.DigestLengthBytes

// Hash is the hash function used to fingerprint sequences, grids and layouts.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash whose state is initialized with the "PRD" domain.
func New() *Hash {
	hash := &Hash{h: blake3.New()}
	_ = writeWithDomain(hash.h, BytesWithDomain{TheDomain: "PRD"})
	return hash
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the current hash state.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - string
//   - uint64, int
//   - float64
//   - []uint64
//   - hash.WriterToWithDomain
//
// This function will apply its own domain separation for the builtin types.
// The last type already suggests which domain to use, and this function respects it.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		var object WriterToWithDomain
		switch t := d.(type) {
		case []byte:
			object = BytesWithDomain{TheDomain: "[]byte", Bytes: t}
		case string:
			object = BytesWithDomain{TheDomain: "string", Bytes: []byte(t)}
		case uint64:
			object = BytesWithDomain{TheDomain: "uint64", Bytes: Uint64s(t)}
		case int:
			if t < 0 {
				return fmt.Errorf("hash.Hash: write int: negative value %d", t)
			}
			object = BytesWithDomain{TheDomain: "uint64", Bytes: Uint64s(uint64(t))}
		case float64:
			object = BytesWithDomain{TheDomain: "float64", Bytes: Uint64s(math.Float64bits(t))}
		case []uint64:
			object = BytesWithDomain{TheDomain: "[]uint64", Bytes: Uint64s(t...)}
		case WriterToWithDomain:
			object = t
		default:
			return fmt.Errorf("hash.Hash: unsupported type %T", d)
		}
		if err := writeWithDomain(hash.h, object); err != nil {
			return fmt.Errorf("hash.Hash: write %s: %w", object.Domain(), err)
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}

// Fingerprint is a digest identifying a piece of data.
type Fingerprint []byte

// String returns the hex encoding of f.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f)
}

// Short returns the first 8 bytes of f in hex.
func (f Fingerprint) Short() string {
	if len(f) > 8 {
		return hex.EncodeToString(f[:8])
	}
	return f.String()
}

// Of returns the fingerprint of data, written in order with WriteAny.
func Of(data ...interface{}) (Fingerprint, error) {
	h := New()
	if err := h.WriteAny(data...); err != nil {
		return nil, err
	}
	return h.Sum(), nil
}
