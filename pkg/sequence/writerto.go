package sequence

import (
	"encoding/binary"
	"io"
)

// WriteTo implements io.WriterTo, writing modulus, root, start, length and
// elements as big-endian words.
func (s Sequence) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 8*(4+len(s.values)))
	binary.BigEndian.PutUint64(buf[0:], s.modulus)
	binary.BigEndian.PutUint64(buf[8:], s.root)
	binary.BigEndian.PutUint64(buf[16:], s.start)
	binary.BigEndian.PutUint64(buf[24:], uint64(len(s.values)))
	for i, v := range s.values {
		binary.BigEndian.PutUint64(buf[32+8*i:], v)
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (Sequence) Domain() string { return "Residue Sequence" }
