package codec

// ReaderConfig is the Reader's small, immutable-after-construction
// configuration (spec.md §5, §6 "Configuration (constructor)").
type ReaderConfig struct {
	Factory     CoordinateSequenceFactory
	Precision   PrecisionModel
	Accept      OrdinateMask // accepted ordinates; default XYZM (FullOrdinateMask)
	RepairRings bool         // close unclosed rings on construction
	HandleSRID  bool         // when false, output SRID is left at 0
}

// DefaultReaderConfig returns the Reader's defaults.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		Factory:    DefaultSequenceFactory{},
		Precision:  FloatingPrecisionModel{},
		Accept:     FullOrdinateMask(),
		HandleSRID: true,
	}
}

// Reader decodes SpatiaLite BLOBs into Geometry values. A Reader holds
// only ReaderConfig; it carries no per-call state, so one instance may be
// shared across goroutines as long as each call uses its own input slice
// (spec.md §5).
type Reader struct {
	cfg ReaderConfig
}

// NewReader constructs a Reader. Nil Factory/Precision fall back to the
// defaults.
func NewReader(cfg ReaderConfig) *Reader {
	if cfg.Factory == nil {
		cfg.Factory = DefaultSequenceFactory{}
	}
	if cfg.Precision == nil {
		cfg.Precision = FloatingPrecisionModel{}
	}
	return &Reader{cfg: cfg}
}

// Read decodes blob into a Geometry. It returns (nil, nil) for framing-level
// rejections that upstream table-scan callers treat as "not a geometry,
// skip it" (spec.md §7); it returns an error for structural corruption
// discovered once framing has passed.
//
// Preconditions are checked in the order spec.md §4.2 specifies.
func (r *Reader) Read(blob []byte) (*Geometry, error) {
	if len(blob) < MinBlobSize {
		return nil, nil // short buffer, soft
	}
	if blob[offsetStart] != Start {
		return nil, nil // bad start marker, soft
	}
	if blob[len(blob)-1] != End {
		return nil, nil // bad end marker, soft
	}
	if blob[offsetMBR] != MBRMarker {
		return nil, nil // bad MBR marker, soft
	}

	endianByte := blob[offsetEndian]
	if endianByte != EndianBig && endianByte != EndianLittle {
		return nil, &MalformedEndianError{Value: endianByte}
	}
	bo := NewByteOps(Endian(endianByte))

	srid, err := bo.ReadI32(blob, offsetSRID)
	if err != nil {
		return nil, err
	}
	if !r.cfg.HandleSRID {
		srid = 0
	}

	envelope, err := readEnvelope(bo, blob)
	if err != nil {
		return nil, err
	}

	rootTag, err := bo.ReadI32(blob, offsetRootType)
	if err != nil {
		return nil, err
	}
	flags, err := Classify(rootTag)
	if err != nil {
		return nil, err
	}

	geom, _, err := r.parseGeometry(bo, blob, offsetPayload, flags)
	if err != nil {
		return nil, err
	}
	geom.SRID = srid
	geom.Envelope = envelope
	return geom, nil
}

// readEnvelope consumes the 32-byte MBR (spec.md §4.2 step 2). The Reader
// never trusts it for child geometries, but it must still be consumed so
// the cursor lands at the root type field.
func readEnvelope(bo ByteOps, buf []byte) (*Envelope, error) {
	vals, err := bo.ReadF64Vector(buf, offsetEnvelope, 4)
	if err != nil {
		return nil, err
	}
	return &Envelope{MinX: vals[0], MinY: vals[1], MaxX: vals[2], MaxY: vals[3]}, nil
}

// parseGeometry dispatches on flags.BaseKind, as spec.md §4.2's "Recursive
// dispatch" describes. The returned int is the offset just past the parsed
// payload.
func (r *Reader) parseGeometry(bo ByteOps, buf []byte, off int, flags Flags) (*Geometry, int, error) {
	switch flags.BaseKind {
	case Point:
		return r.parsePoint(bo, buf, off, flags)
	case LineString:
		return r.parseLineString(bo, buf, off, flags)
	case Polygon:
		return r.parsePolygon(bo, buf, off, flags)
	case MultiPoint:
		return r.parseMulti(bo, buf, off, MultiPoint, codecPoint)
	case MultiLineString:
		return r.parseMulti(bo, buf, off, MultiLineString, codecLineString)
	case MultiPolygon:
		return r.parseMulti(bo, buf, off, MultiPolygon, codecPolygon)
	case GeometryCollection:
		return r.parseCollection(bo, buf, off)
	default:
		return nil, off, &CorruptPayloadError{Offset: off, Reason: "unrecognized base kind"}
	}
}

// codecPoint etc. name the expected child kind for readability at call
// sites above; they are exactly BaseKind values.
const (
	codecPoint      = Point
	codecLineString = LineString
	codecPolygon    = Polygon
)

func (r *Reader) parsePoint(bo ByteOps, buf []byte, off int, flags Flags) (*Geometry, int, error) {
	seq, off, err := ReadSequence(bo, buf, off, 1, flags.Dimension, false, r.cfg.Accept, r.cfg.Precision, r.cfg.Factory)
	if err != nil {
		return nil, off, err
	}
	return &Geometry{Kind: Point, Sequence: seq}, off, nil
}

func (r *Reader) parseLineString(bo ByteOps, buf []byte, off int, flags Flags) (*Geometry, int, error) {
	count, err := bo.ReadI32(buf, off)
	if err != nil {
		return nil, off, err
	}
	off += 4

	seq, off, err := ReadSequence(bo, buf, off, int(count), flags.Dimension, flags.Compressed, r.cfg.Accept, r.cfg.Precision, r.cfg.Factory)
	if err != nil {
		return nil, off, err
	}
	if r.cfg.RepairRings {
		closeRingIfNeeded(seq)
	}
	return &Geometry{Kind: LineString, Sequence: seq}, off, nil
}

func (r *Reader) parsePolygon(bo ByteOps, buf []byte, off int, flags Flags) (*Geometry, int, error) {
	ringCount, err := bo.ReadI32(buf, off)
	if err != nil {
		return nil, off, err
	}
	off += 4

	rings := make([]CoordinateSequence, ringCount)
	for i := 0; i < int(ringCount); i++ {
		vertexCount, err := bo.ReadI32(buf, off)
		if err != nil {
			return nil, off, err
		}
		off += 4

		seq, newOff, err := ReadSequence(bo, buf, off, int(vertexCount), flags.Dimension, flags.Compressed, r.cfg.Accept, r.cfg.Precision, r.cfg.Factory)
		if err != nil {
			return nil, off, err
		}
		off = newOff
		if r.cfg.RepairRings {
			closeRingIfNeeded(seq)
		}
		rings[i] = *seq
	}
	return &Geometry{Kind: Polygon, Rings: rings}, off, nil
}

// parseMulti reads MultiPoint/MultiLineString/MultiPolygon: a count, then
// for each child an entity marker, a type tag whose base kind must match
// expected, and a child payload re-entering the coordinate-reader
// selection from the child's own tag (spec.md §4.2).
func (r *Reader) parseMulti(bo ByteOps, buf []byte, off int, container, expected BaseKind) (*Geometry, int, error) {
	count, err := bo.ReadI32(buf, off)
	if err != nil {
		return nil, off, err
	}
	off += 4

	children := make([]Geometry, count)
	for i := 0; i < int(count); i++ {
		var marker byte
		if off >= len(buf) {
			return nil, off, &CorruptPayloadError{Offset: off, Reason: "short buffer reading entity marker"}
		}
		marker = buf[off]
		if marker != EntityMarker {
			return nil, off, &MissingEntityMarkerError{Offset: off, Got: marker}
		}
		off++

		childTag, err := bo.ReadI32(buf, off)
		if err != nil {
			return nil, off, err
		}
		off += 4

		childFlags, err := Classify(childTag)
		if err != nil {
			return nil, off, err
		}
		if childFlags.BaseKind != expected {
			return nil, off, &ChildKindMismatchError{Offset: off, Expected: expected, Got: childFlags.BaseKind}
		}

		child, newOff, err := r.parseGeometry(bo, buf, off, childFlags)
		if err != nil {
			return nil, off, err
		}
		off = newOff
		children[i] = *child
	}
	return &Geometry{Kind: container, Children: children}, off, nil
}

// parseCollection reads a GeometryCollection: a count, then for each child
// an entity marker and the child's own type tag, fully recursing without a
// kind constraint (spec.md §4.2).
func (r *Reader) parseCollection(bo ByteOps, buf []byte, off int) (*Geometry, int, error) {
	count, err := bo.ReadI32(buf, off)
	if err != nil {
		return nil, off, err
	}
	off += 4

	children := make([]Geometry, count)
	for i := 0; i < int(count); i++ {
		if off >= len(buf) {
			return nil, off, &CorruptPayloadError{Offset: off, Reason: "short buffer reading entity marker"}
		}
		marker := buf[off]
		if marker != EntityMarker {
			return nil, off, &MissingEntityMarkerError{Offset: off, Got: marker}
		}
		off++

		childTag, err := bo.ReadI32(buf, off)
		if err != nil {
			return nil, off, err
		}
		off += 4

		childFlags, err := Classify(childTag)
		if err != nil {
			return nil, off, err
		}

		child, newOff, err := r.parseGeometry(bo, buf, off, childFlags)
		if err != nil {
			return nil, off, err
		}
		off = newOff
		children[i] = *child
	}
	return &Geometry{Kind: GeometryCollection, Children: children}, off, nil
}

// closeRingIfNeeded appends a copy of the first vertex to seq when the
// ring is not already closed, implementing the Reader's repair-rings
// configuration flag (spec.md §6).
func closeRingIfNeeded(seq *CoordinateSequence) {
	n := seq.Len()
	if n == 0 {
		return
	}
	if seq.X[0] == seq.X[n-1] && seq.Y[0] == seq.Y[n-1] {
		return
	}
	seq.X = append(seq.X, seq.X[0])
	seq.Y = append(seq.Y, seq.Y[0])
	if seq.Z != nil {
		seq.Z = append(seq.Z, seq.Z[0])
	}
	if seq.M != nil {
		seq.M = append(seq.M, seq.M[0])
	}
}
