package spatialite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeometryIndexQueryFindsIntersectingEnvelope(t *testing.T) {
	idx := NewGeometryIndex()

	geomA := testPoint(1, 1)
	geomB := testPoint(50, 50)

	require.NoError(t, idx.Insert(1, geomA))
	require.NoError(t, idx.Insert(2, geomB))
	require.Equal(t, 2, idx.Size())

	hits := idx.Query(Envelope{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2})
	require.Equal(t, []int64{1}, hits)
}

func TestGeometryIndexInsertRejectsNil(t *testing.T) {
	idx := NewGeometryIndex()
	err := idx.Insert(1, nil)
	require.Error(t, err)
}

func TestGeometryIndexUsesAttachedEnvelopeWhenPresent(t *testing.T) {
	idx := NewGeometryIndex()
	geom := testPoint(100, 100)
	geom.Envelope = &Envelope{MinX: -5, MinY: -5, MaxX: -4, MaxY: -4}

	require.NoError(t, idx.Insert(7, geom))

	hits := idx.Query(Envelope{MinX: -6, MinY: -6, MaxX: -3, MaxY: -3})
	require.Equal(t, []int64{7}, hits)
}

func TestGeometryIndexQueryOnEmptyIndexReturnsNoHits(t *testing.T) {
	idx := NewGeometryIndex()
	require.Empty(t, idx.Query(Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}))
}
