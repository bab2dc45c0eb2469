package codec

import (
	"encoding/binary"
	"math"
)

// Endian selects which byte order a BLOB's header declares. It maps
// directly onto the BLOB endian marker byte (spec.md §6).
type Endian byte

const (
	Big    Endian = Endian(EndianBig)
	Little Endian = Endian(EndianLittle)
)

// order returns the stdlib ByteOrder matching this Endian. The codec
// dispatches on the BLOB's declared endianness, not the host's — there is
// no "byte-swap flag" distinct from simply picking the matching
// binary.ByteOrder implementation, so ByteOps never needs to reason about
// host endianness at all.
func (e Endian) order() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ByteOps is a small endian-adaptive cursor over a byte slice. It is the
// only place in the codec that touches raw byte order; Reader and Writer
// never call encoding/binary directly.
//
// A ByteOps value is cheap to copy; Reader and Writer build a fresh one on
// every call, from the BLOB's declared endianness or the one the caller
// asked to write. It carries no mutable state beyond
// the byte order itself, matching the "small immutable configuration"
// contract of spec.md §5.
type ByteOps struct {
	order binary.ByteOrder
}

// NewByteOps returns a ByteOps bound to the given declared endianness.
func NewByteOps(endian Endian) ByteOps {
	return ByteOps{order: endian.order()}
}

// ReadI32 reads a two's-complement i32 at off.
func (b ByteOps) ReadI32(buf []byte, off int) (int32, error) {
	if off+4 > len(buf) {
		return 0, &CorruptPayloadError{Offset: off, Reason: "short buffer reading i32"}
	}
	return int32(b.order.Uint32(buf[off : off+4])), nil
}

// ReadF32 reads an IEEE-754 f32 at off.
func (b ByteOps) ReadF32(buf []byte, off int) (float32, error) {
	if off+4 > len(buf) {
		return 0, &CorruptPayloadError{Offset: off, Reason: "short buffer reading f32"}
	}
	return math.Float32frombits(b.order.Uint32(buf[off : off+4])), nil
}

// ReadF64 reads an IEEE-754 f64 at off.
func (b ByteOps) ReadF64(buf []byte, off int) (float64, error) {
	if off+8 > len(buf) {
		return 0, &CorruptPayloadError{Offset: off, Reason: "short buffer reading f64"}
	}
	return math.Float64frombits(b.order.Uint64(buf[off : off+8])), nil
}

// ReadF64Vector reads n contiguous f64 values starting at off.
//
// Each element is decoded independently via order.Uint64 on its own
// 8-byte window — this is the per-element swap spec.md §4.5/§9 insists on.
// A "reverse the whole slab" implementation would only happen to produce
// correct element values when n==1; for n>1 it scrambles element order as
// well as byte order within each element, which is wrong and must not be
// reproduced (spec.md §9, Open Question).
func (b ByteOps) ReadF64Vector(buf []byte, off int, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := b.ReadF64(buf, off+i*8)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadF32Vector reads n contiguous f32 values starting at off.
func (b ByteOps) ReadF32Vector(buf []byte, off int, n int) ([]float32, error) {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := b.ReadF32(buf, off+i*4)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteI32 appends a two's-complement i32 in this ByteOps' byte order.
func (b ByteOps) WriteI32(buf []byte, v int32) []byte {
	var tmp [4]byte
	b.order.PutUint32(tmp[:], uint32(v))
	return append(buf, tmp[:]...)
}

// WriteF32 appends an IEEE-754 f32.
func (b ByteOps) WriteF32(buf []byte, v float32) []byte {
	var tmp [4]byte
	b.order.PutUint32(tmp[:], math.Float32bits(v))
	return append(buf, tmp[:]...)
}

// WriteF64 appends an IEEE-754 f64.
func (b ByteOps) WriteF64(buf []byte, v float64) []byte {
	var tmp [8]byte
	b.order.PutUint64(tmp[:], math.Float64bits(v))
	return append(buf, tmp[:]...)
}

// WriteF64Vector appends each value in vs independently, per-element, never
// as a reversed slab.
func (b ByteOps) WriteF64Vector(buf []byte, vs []float64) []byte {
	for _, v := range vs {
		buf = b.WriteF64(buf, v)
	}
	return buf
}

// WriteF32Vector appends each value in vs independently.
func (b ByteOps) WriteF32Vector(buf []byte, vs []float32) []byte {
	for _, v := range vs {
		buf = b.WriteF32(buf, v)
	}
	return buf
}
