// Package spatialite implements the SpatiaLite internal geometry BLOB
// codec: the binary format SpatiaLite stores in a SQLite column for 2D/3D
// point, linestring, polygon, multi-variant, and collection geometries.
//
// # Basic Usage
//
//	reader := spatialite.NewReader(spatialite.DefaultReaderOptions())
//	geom, err := reader.Read(blob)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("kind=%v srid=%d\n", geom.Kind, geom.SRID)
//
//	writer := spatialite.NewWriter(spatialite.DefaultWriterOptions())
//	blob, err := writer.Write(geom, 4326, spatialite.Little, false)
//
// # Endianness and Compression
//
// The BLOB declares its own endianness in its header; Reader adapts to
// whatever the blob says rather than the host's byte order. Writer lets
// the caller choose an endianness and, for LineString/Polygon geometries,
// whether to use the delta-compressed coordinate encoding that trades a
// small amount of precision on interior vertices for a smaller BLOB:
//
//	blob, err := writer.Write(geom, 4326, spatialite.Little, true)
//
// # Precision and Coordinate Sequences
//
// Reader accepts a PrecisionModel and a CoordinateSequenceFactory, and
// Writer a PrecisionModel, so callers can plug in their own quantization or
// sequence representation; FloatingPrecisionModel (no quantization) and
// DefaultSequenceFactory are the defaults, and FixedPrecisionModel
// quantizes to a fixed scale.
//
// # Spatial Indexing
//
// GeometryIndex wraps an R-tree over decoded geometries' envelopes for
// fast "which of these rows intersect this box" queries without a
// database:
//
//	idx := spatialite.NewGeometryIndex()
//	idx.Insert(rowID, geom)
//	hits := idx.Query(spatialite.Envelope{MinX: -71.2, MinY: 42.3, MaxX: -71.0, MaxY: 42.4})
package spatialite
