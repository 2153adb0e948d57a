package prd

import (
	"encoding/binary"
	"io"
	"math"
)

// WriteTo implements io.WriterTo, writing every field except the Kernel as
// big-endian words. Offset is preceded by a word telling whether it is set.
func (p Parameters) WriteTo(w io.Writer) (int64, error) {
	var offsetSet, offset uint64
	if p.Offset != nil {
		offsetSet, offset = 1, math.Float64bits(*p.Offset)
	}
	words := []uint64{
		uint64(p.Rows), uint64(p.Cols),
		p.RowModulus, p.ColModulus,
		p.RowRoot, p.ColRoot,
		p.Start,
		uint64(p.Strategy), p.Modulus,
		math.Float64bits(p.Step),
		offsetSet, offset,
		math.Float64bits(p.Quantum),
		math.Float64bits(p.DesignFrequency),
		math.Float64bits(p.SpeedOfSound),
	}
	buf := make([]byte, 8*len(words))
	for i, v := range words {
		binary.BigEndian.PutUint64(buf[8*i:], v)
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (Parameters) Domain() string { return "Layout Parameters" }
