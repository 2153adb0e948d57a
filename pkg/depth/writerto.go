package depth

import (
	"encoding/binary"
	"io"
	"math"
)

// WriteTo implements io.WriterTo, writing the shape, step, offset, quantum
// and row-major depths as big-endian IEEE 754 words.
func (d Grid) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 8*(5+len(d.cells)))
	binary.BigEndian.PutUint64(buf[0:], uint64(d.rows))
	binary.BigEndian.PutUint64(buf[8:], uint64(d.cols))
	binary.BigEndian.PutUint64(buf[16:], math.Float64bits(d.step))
	binary.BigEndian.PutUint64(buf[24:], math.Float64bits(d.offset))
	binary.BigEndian.PutUint64(buf[32:], math.Float64bits(d.quantum))
	for i, v := range d.cells {
		binary.BigEndian.PutUint64(buf[40+8*i:], math.Float64bits(v))
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (Grid) Domain() string { return "Depth Grid" }
