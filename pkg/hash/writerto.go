package hash

import (
	"encoding/binary"
	"io"
)

// WriterToWithDomain represents a type writing itself, and knowing its domain.
//
// Providing a domain string lets us distinguish the output of different types
// implementing this same interface.
type WriterToWithDomain interface {
	io.WriterTo

	// Domain returns a context string, which should be unique for each implementor
	Domain() string
}

// writeWithDomain writes out `(<domain><data>)`, so that each domain
// separated piece of data is distinguished from others.
func writeWithDomain(w io.Writer, object WriterToWithDomain) error {
	if _, err := w.Write([]byte("(")); err != nil {
		return err
	}
	if _, err := w.Write([]byte(object.Domain())); err != nil {
		return err
	}
	if _, err := object.WriteTo(w); err != nil {
		return err
	}
	if _, err := w.Write([]byte(")")); err != nil {
		return err
	}
	return nil
}

// BytesWithDomain is a useful wrapper to annotate some chunk of data with a domain.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

// WriteTo implements io.WriterTo, prefixing the data with its length.
func (b BytesWithDomain) WriteTo(w io.Writer) (int64, error) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(b.Bytes)))
	n0, err := w.Write(length[:])
	if err != nil {
		return int64(n0), err
	}
	n1, err := w.Write(b.Bytes)
	return int64(n0 + n1), err
}

// Domain implements WriterToWithDomain.
func (b BytesWithDomain) Domain() string {
	return b.TheDomain
}

// Uint64s encodes a slice of words in big-endian order.
func Uint64s(values ...uint64) []byte {
	out := make([]byte, 8*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint64(out[8*i:], v)
	}
	return out
}
