package grid

import (
	"encoding/binary"
	"io"
)

// WriteTo implements io.WriterTo, writing the shape, range and row-major
// cells as big-endian words.
func (g Grid) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 8*(3+len(g.cells)))
	binary.BigEndian.PutUint64(buf[0:], uint64(g.rows))
	binary.BigEndian.PutUint64(buf[8:], uint64(g.cols))
	binary.BigEndian.PutUint64(buf[16:], g.k)
	for i, v := range g.cells {
		binary.BigEndian.PutUint64(buf[24+8*i:], v)
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (Grid) Domain() string { return "Index Grid" }
