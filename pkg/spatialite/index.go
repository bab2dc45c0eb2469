package spatialite

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
)

// GeometryIndex provides fast spatial queries over a batch of decoded
// geometries, without a database.
//
// Every BLOB already carries an MBR (spec.md §3); GeometryIndex builds an
// R-tree from those envelopes so a caller holding, say, a table scan's
// worth of decoded rows can ask "which of these intersect this box"
// without re-scanning every geometry's coordinates. Grounded on
// pkg/s57/index.go's ChartIndex, which does the same thing over chart
// coverage bounds.
type GeometryIndex struct {
	tree *rtreego.Rtree
}

// indexedEntry adapts one inserted geometry to rtreego.Spatial.
type indexedEntry struct {
	id  int64
	env Envelope
}

func (e indexedEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.env.MinX, e.env.MinY}
	lengths := []float64{
		widthOrEpsilon(e.env.MaxX - e.env.MinX),
		widthOrEpsilon(e.env.MaxY - e.env.MinY),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// widthOrEpsilon guards against rtreego.NewRect rejecting a zero-length
// side, which a single-point geometry's envelope produces (MinX == MaxX).
func widthOrEpsilon(w float64) float64 {
	if w <= 0 {
		return 1e-9
	}
	return w
}

// NewGeometryIndex constructs an empty index. minChildren/maxChildren
// follow rtreego's NewTree convention; 25/50 matches the teacher's
// pkg/s57/index.go default.
func NewGeometryIndex() *GeometryIndex {
	return &GeometryIndex{tree: rtreego.NewTree(2, 25, 50)}
}

// Insert adds geom under id. If geom.Envelope is nil (a child geometry, or
// one built without going through Reader), the envelope is recomputed from
// geom's own coordinates.
func (idx *GeometryIndex) Insert(id int64, geom *Geometry) error {
	if geom == nil {
		return fmt.Errorf("spatialite: cannot index a nil geometry")
	}
	env := geom.Envelope
	if env == nil {
		computed := envelopeOf(geom)
		env = &computed
	}
	idx.tree.Insert(indexedEntry{id: id, env: *env})
	return nil
}

// Query returns the IDs of every inserted geometry whose envelope
// intersects box.
func (idx *GeometryIndex) Query(box Envelope) []int64 {
	point := rtreego.Point{box.MinX, box.MinY}
	lengths := []float64{
		widthOrEpsilon(box.MaxX - box.MinX),
		widthOrEpsilon(box.MaxY - box.MinY),
	}
	rect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return nil
	}

	hits := idx.tree.SearchIntersect(rect)
	ids := make([]int64, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(indexedEntry).id)
	}
	return ids
}

// Size returns the number of geometries currently indexed.
func (idx *GeometryIndex) Size() int {
	return idx.tree.Size()
}

// envelopeOf recomputes an envelope by walking geom's coordinates,
// mirroring internal/codec's computeMBR (writer.go) for callers who indexed a
// Geometry built without going through Reader.
func envelopeOf(geom *Geometry) Envelope {
	var env Envelope
	first := true

	var walk func(g *Geometry)
	walk = func(g *Geometry) {
		switch g.Kind {
		case Point, LineString:
			for i := 0; i < g.Sequence.Len(); i++ {
				env.Expand(g.Sequence.X[i], g.Sequence.Y[i], first)
				first = false
			}
		case Polygon:
			for ri := range g.Rings {
				ring := &g.Rings[ri]
				for i := 0; i < ring.Len(); i++ {
					env.Expand(ring.X[i], ring.Y[i], first)
					first = false
				}
			}
		default:
			for ci := range g.Children {
				walk(&g.Children[ci])
			}
		}
	}
	walk(geom)
	return env
}
