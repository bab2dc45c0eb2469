package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func point(x, y float64) *Geometry {
	return &Geometry{Kind: Point, Sequence: seqXY([]float64{x}, []float64{y})}
}

func lineString(xs, ys []float64) *Geometry {
	return &Geometry{Kind: LineString, Sequence: seqXY(xs, ys)}
}

func newReaderWriter() (*Reader, *Writer) {
	return NewReader(DefaultReaderConfig()), NewWriter(DefaultWriterConfig())
}

// TestScenarioPoint covers spec.md §8 scenario 1.
func TestScenarioPoint(t *testing.T) {
	r, w := newReaderWriter()
	g := point(1.0, 2.0)

	blob, err := w.Write(g, 4326, Little, false)
	require.NoError(t, err)
	require.Equal(t, 60, len(blob))
	require.Equal(t, []byte{0x00, 0x01, 0xE6, 0x10, 0x00, 0x00}, blob[0:6])

	got, err := r.Read(blob)
	require.NoError(t, err)
	require.Equal(t, Point, got.Kind)
	require.Equal(t, int32(4326), got.SRID)
	require.Equal(t, []float64{1.0}, got.Sequence.X)
	require.Equal(t, []float64{2.0}, got.Sequence.Y)
}

// TestScenarioLineStringUncompressed covers spec.md §8 scenario 2.
func TestScenarioLineStringUncompressed(t *testing.T) {
	r, w := newReaderWriter()
	g := lineString([]float64{0, 1, 2}, []float64{0, 1, 2})

	blob, err := w.Write(g, 4326, Little, false)
	require.NoError(t, err)

	bo := NewByteOps(Little)
	rootTag, err := bo.ReadI32(blob, offsetRootType)
	require.NoError(t, err)
	require.Equal(t, int32(2), rootTag)

	count, err := bo.ReadI32(blob, offsetPayload)
	require.NoError(t, err)
	require.Equal(t, int32(3), count)

	got, err := r.Read(blob)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, got.Sequence.X)
}

// TestScenarioLineStringCompressed covers spec.md §8 scenario 3.
func TestScenarioLineStringCompressed(t *testing.T) {
	r, w := newReaderWriter()
	g := lineString([]float64{0, 1, 2}, []float64{0, 1, 2})

	blob, err := w.Write(g, 4326, Little, true)
	require.NoError(t, err)

	bo := NewByteOps(Little)
	rootTag, err := bo.ReadI32(blob, offsetRootType)
	require.NoError(t, err)
	require.Equal(t, int32(1000002), rootTag)

	got, err := r.Read(blob)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1, 2}, got.Sequence.X, 1e-6)
	require.InDeltaSlice(t, []float64{0, 1, 2}, got.Sequence.Y, 1e-6)
}

// TestScenarioPolygonWithHole covers spec.md §8 scenario 4.
func TestScenarioPolygonWithHole(t *testing.T) {
	r, w := newReaderWriter()
	shell := CoordinateSequence{
		Dimension: XY,
		X:         []float64{0, 0, 10, 10, 0},
		Y:         []float64{0, 10, 10, 0, 0},
	}
	hole := CoordinateSequence{
		Dimension: XY,
		X:         []float64{2, 2, 4, 4, 2},
		Y:         []float64{2, 4, 4, 2, 2},
	}
	g := &Geometry{Kind: Polygon, Rings: []CoordinateSequence{shell, hole}}

	blob, err := w.Write(g, 4326, Little, false)
	require.NoError(t, err)

	got, err := r.Read(blob)
	require.NoError(t, err)
	require.Len(t, got.Rings, 2)
	require.Equal(t, shell.X, got.Rings[0].X)
	require.Equal(t, hole.X, got.Rings[1].X)
}

// TestScenarioMultiPoint covers spec.md §8 scenario 5.
func TestScenarioMultiPoint(t *testing.T) {
	r, w := newReaderWriter()
	g := &Geometry{
		Kind: MultiPoint,
		Children: []Geometry{
			*point(1, 1),
			*point(2, 2),
		},
	}

	blob, err := w.Write(g, 4326, Little, false)
	require.NoError(t, err)

	got, err := r.Read(blob)
	require.NoError(t, err)
	require.Len(t, got.Children, 2)
	require.Equal(t, Point, got.Children[0].Kind)
	require.Equal(t, []float64{1}, got.Children[0].Sequence.X)
	require.Equal(t, []float64{2}, got.Children[1].Sequence.X)
}

// TestScenarioGeometryCollection covers spec.md §8 scenario 6.
func TestScenarioGeometryCollection(t *testing.T) {
	r, w := newReaderWriter()
	g := &Geometry{
		Kind: GeometryCollection,
		Children: []Geometry{
			*point(1, 1),
			*lineString([]float64{0, 1}, []float64{0, 1}),
		},
	}

	blob, err := w.Write(g, 4326, Little, false)
	require.NoError(t, err)

	got, err := r.Read(blob)
	require.NoError(t, err)
	require.Len(t, got.Children, 2)
	require.Equal(t, Point, got.Children[0].Kind)
	require.Equal(t, LineString, got.Children[1].Kind)
}

func TestWriteRejectsCompressedPointRoot(t *testing.T) {
	_, w := newReaderWriter()
	_, err := w.Write(point(1, 1), 0, Little, true)
	require.Error(t, err)
	var uce *UnsupportedCombinationError
	require.ErrorAs(t, err, &uce)
}

func TestEndianRoundTrip(t *testing.T) {
	_, w := newReaderWriter()
	r := NewReader(DefaultReaderConfig())
	g := lineString([]float64{1, 2, 3}, []float64{4, 5, 6})

	leBlob, err := w.Write(g, 4326, Little, false)
	require.NoError(t, err)
	beBlob, err := w.Write(g, 4326, Big, false)
	require.NoError(t, err)

	leGeom, err := r.Read(leBlob)
	require.NoError(t, err)
	beGeom, err := r.Read(beBlob)
	require.NoError(t, err)

	require.Equal(t, leGeom.Sequence.X, beGeom.Sequence.X)
	require.Equal(t, leGeom.Sequence.Y, beGeom.Sequence.Y)
}

func TestEmptyMultiPointRoundTrips(t *testing.T) {
	_, w := newReaderWriter()
	r := NewReader(DefaultReaderConfig())
	g := &Geometry{Kind: MultiPoint, Children: []Geometry{}}

	blob, err := w.Write(g, 0, Little, false)
	require.NoError(t, err)
	got, err := r.Read(blob)
	require.NoError(t, err)
	require.Empty(t, got.Children)
}
