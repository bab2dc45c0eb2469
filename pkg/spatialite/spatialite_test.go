package spatialite

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPoint(x, y float64) *Geometry {
	return &Geometry{Kind: Point, Sequence: &CoordinateSequence{Dimension: XY, X: []float64{x}, Y: []float64{y}}}
}

func TestRoundTripPointThroughFacade(t *testing.T) {
	w := NewWriter(DefaultWriterOptions())
	blob, err := w.Write(testPoint(12.5, -3.25), 4326, Little, false)
	require.NoError(t, err)

	r := NewReader(DefaultReaderOptions())
	got, err := r.Read(blob)
	require.NoError(t, err)
	require.Equal(t, Point, got.Kind)
	require.EqualValues(t, 4326, got.SRID)
	require.Equal(t, 12.5, got.Sequence.X[0])
	require.Equal(t, -3.25, got.Sequence.Y[0])
}

func TestReadRejectsTooShortBuffer(t *testing.T) {
	r := NewReader(DefaultReaderOptions())
	got, err := r.Read(make([]byte, 4))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestReadStreamDrainsReader(t *testing.T) {
	w := NewWriter(DefaultWriterOptions())
	blob, err := w.Write(testPoint(1, 2), 0, Big, false)
	require.NoError(t, err)

	r := NewReader(DefaultReaderOptions())
	got, err := r.ReadStream(bytes.NewReader(blob))
	require.NoError(t, err)
	require.Equal(t, Point, got.Kind)
}

func TestWriteRejectsCompressedPointRoot(t *testing.T) {
	w := NewWriter(DefaultWriterOptions())
	_, err := w.Write(testPoint(1, 2), 0, Little, true)
	require.Error(t, err)
}

func TestReaderOptionsBuilders(t *testing.T) {
	opts := DefaultReaderOptions().
		WithPrecision(FixedPrecisionModel{Scale: 1000}).
		WithOrdinates(OrdinateMask{Z: false, M: false}).
		WithRepairRings(true)

	require.True(t, opts.RepairRings)
	require.False(t, opts.Accept.Z)
}

func TestWriterOptionsBuilders(t *testing.T) {
	opts := DefaultWriterOptions().WithPrecision(FloatingPrecisionModel{})
	require.IsType(t, FloatingPrecisionModel{}, opts.Precision)
}
