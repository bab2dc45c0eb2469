package spatialite

import (
	"errors"
	"io"

	"github.com/beetlebugorg/spatialite/internal/codec"
)

// Exported aliases of the codec's wire vocabulary and object model, so a
// caller only ever needs to import this package (grounded on
// pkg/s57/s57.go's wrapper-over-internal/parser pattern; here the public
// shape matches the internal one closely enough that a straight alias is
// the right amount of indirection rather than a hand-maintained duplicate
// struct with a conversion function).
type (
	Geometry                  = codec.Geometry
	CoordinateSequence        = codec.CoordinateSequence
	Envelope                  = codec.Envelope
	BaseKind                  = codec.BaseKind
	Dimension                 = codec.Dimension
	Endian                    = codec.Endian
	OrdinateMask              = codec.OrdinateMask
	PrecisionModel            = codec.PrecisionModel
	CoordinateSequenceFactory = codec.CoordinateSequenceFactory
	FixedPrecisionModel       = codec.FixedPrecisionModel
	FloatingPrecisionModel    = codec.FloatingPrecisionModel
	DefaultSequenceFactory    = codec.DefaultSequenceFactory
	ReaderOptions             = codec.ReaderConfig
	WriterOptions             = codec.WriterConfig
)

const (
	Point              = codec.Point
	LineString         = codec.LineString
	Polygon            = codec.Polygon
	MultiPoint         = codec.MultiPoint
	MultiLineString    = codec.MultiLineString
	MultiPolygon       = codec.MultiPolygon
	GeometryCollection = codec.GeometryCollection

	XY   = codec.XY
	XYZ  = codec.XYZ
	XYM  = codec.XYM
	XYZM = codec.XYZM

	Big    = codec.Big
	Little = codec.Little
)

// Wire constants (spec.md §6), re-exported for callers that want to
// sanity-check raw bytes themselves.
const (
	Start        = codec.Start
	End          = codec.End
	MBRMarker    = codec.MBRMarker
	EntityMarker = codec.EntityMarker
)

// DefaultReaderOptions returns the Reader's defaults: accept all ordinates,
// floating precision, SRID passthrough, no ring repair.
func DefaultReaderOptions() ReaderOptions { return codec.DefaultReaderConfig() }

// DefaultWriterOptions returns the Writer's defaults: accept all
// ordinates, floating precision.
func DefaultWriterOptions() WriterOptions { return codec.DefaultWriterConfig() }

// Reader decodes SpatiaLite BLOBs into Geometry values.
//
// Create one with NewReader and call Read for each BLOB. A Reader holds
// only its configuration and may be shared across goroutines as long as
// each call passes its own input slice.
type Reader struct {
	inner *codec.Reader
}

// NewReader constructs a Reader with the given options.
//
// Example:
//
//	reader := spatialite.NewReader(spatialite.DefaultReaderOptions())
//	geom, err := reader.Read(blob)
func NewReader(opts ReaderOptions) *Reader {
	return &Reader{inner: codec.NewReader(opts)}
}

// Read decodes blob into a Geometry.
//
// Returns (nil, nil) for framing-level rejections upstream callers treat
// as "this isn't a geometry, skip it" (too short, bad markers); returns an
// error for structural corruption found once framing has passed, or for a
// malformed endian byte.
func (r *Reader) Read(blob []byte) (*Geometry, error) {
	return r.inner.Read(blob)
}

// ReadStream fully drains src into memory before decoding — the codec is
// buffer-oriented, per spec.md §5 ("When a stream is supplied, the Reader
// fully drains it into memory before parsing").
func (r *Reader) ReadStream(src io.Reader) (*Geometry, error) {
	buf, err := io.ReadAll(src)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &ioReadError{cause: err}
	}
	return r.Read(buf)
}

type ioReadError struct{ cause error }

func (e *ioReadError) Error() string { return "spatialite: stream read failed: " + e.cause.Error() }
func (e *ioReadError) Unwrap() error { return e.cause }

// Writer encodes Geometry values into SpatiaLite BLOBs.
type Writer struct {
	inner *codec.Writer
}

// NewWriter constructs a Writer with the given options.
func NewWriter(opts WriterOptions) *Writer {
	return &Writer{inner: codec.NewWriter(opts)}
}

// Write emits geom as a BLOB tagged with srid, using the requested
// endianness and compression preference. Compression is only meaningful
// for LineString/Polygon roots; requesting it for any other root kind
// returns an error (spec.md §4.1).
func (w *Writer) Write(geom *Geometry, srid int32, endian Endian, useCompression bool) ([]byte, error) {
	return w.inner.Write(geom, srid, endian, useCompression)
}
