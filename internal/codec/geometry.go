package codec

import "math"

// Geometry is the host object model the codec reads into and writes from.
// spec.md treats this object model as an external collaborator ("OUT OF
// SCOPE"); this is the concrete default the codec ships with, as its own
// External Interfaces section (§6) requires a Reader/Writer to be
// constructed with *some* coordinate-sequence factory and precision model.
//
// A Geometry is one of the seven base kinds. Leaf kinds (Point,
// LineString) hold a single Sequence; Polygon holds Rings (ring 0 is the
// shell); the Multi*/Collection kinds hold Children, each itself a
// Geometry carrying its own tag.
type Geometry struct {
	Kind     BaseKind
	SRID     int32
	Envelope *Envelope // header MBR, set by Reader on the root geometry; nil on children and caller-built geometries

	Sequence *CoordinateSequence // Point, LineString
	Rings    []CoordinateSequence // Polygon; [0] is the shell
	Children []Geometry           // MultiPoint/MultiLineString/MultiPolygon/GeometryCollection
}

// Envelope is the axis-aligned MBR stored in the BLOB header (spec.md §3).
// The Reader may read-and-discard it or expose it here as metadata; it is
// never authoritative for child geometries (spec.md §4.2 step 2, §9).
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Expand grows e to include (x, y); when first is true, e is instead reset
// to the single point (x, y). Used by both the Writer (computing an accurate
// MBR, spec.md §4.4 step 2) and GeometryIndex.
func (e *Envelope) Expand(x, y float64, first bool) {
	if first {
		e.MinX, e.MaxX = x, x
		e.MinY, e.MaxY = y, y
		return
	}
	e.MinX = math.Min(e.MinX, x)
	e.MaxX = math.Max(e.MaxX, x)
	e.MinY = math.Min(e.MinY, y)
	e.MaxY = math.Max(e.MaxY, y)
}

// CoordinateSequence holds parallel ordinate slices for one ring or
// linestring/point vertex list. Z and M are nil when the sequence's
// dimension does not carry them; this is how "null sentinel" (spec.md
// §4.3) is represented for an absent M rather than a magic float value.
type CoordinateSequence struct {
	Dimension Dimension
	X, Y      []float64
	Z, M      []float64 // nil when absent
}

// Len returns the vertex count.
func (s *CoordinateSequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.X)
}

// HasZ/HasM report whether this sequence carries the corresponding
// ordinate, independent of Dimension (a caller-configured ordinate mask may
// have stripped an ordinate the tag declared; see OrdinateMask).
func (s *CoordinateSequence) HasZ() bool { return s.Z != nil }
func (s *CoordinateSequence) HasM() bool { return s.M != nil }

// PrecisionModel quantizes coordinate ordinates. The codec applies it to
// every stored ordinate on both read and write (spec.md §4.3); it is an
// out-of-scope collaborator per spec.md §1, with two concrete defaults
// shipped here so the codec is usable standalone.
type PrecisionModel interface {
	MakePrecise(v float64) float64
}

// FloatingPrecisionModel is the identity precision model: full float64
// precision, no quantization.
type FloatingPrecisionModel struct{}

func (FloatingPrecisionModel) MakePrecise(v float64) float64 { return v }

// FixedPrecisionModel quantizes to 1/Scale units, e.g. Scale=1e7 keeps
// seven decimal digits — SpatiaLite's typical fixed-scale quantization.
type FixedPrecisionModel struct {
	Scale float64
}

func (m FixedPrecisionModel) MakePrecise(v float64) float64 {
	if m.Scale == 0 {
		return v
	}
	return math.Round(v*m.Scale) / m.Scale
}

// CoordinateSequenceFactory constructs sequences of a requested size and
// dimension. An out-of-scope collaborator per spec.md §1; the default
// below pre-allocates parallel slices, avoiding per-vertex allocation
// during sequence decode.
type CoordinateSequenceFactory interface {
	NewSequence(size int, dim Dimension) *CoordinateSequence
}

// DefaultSequenceFactory is the CoordinateSequenceFactory the Reader/Writer
// use unless the caller supplies their own.
type DefaultSequenceFactory struct{}

func (DefaultSequenceFactory) NewSequence(size int, dim Dimension) *CoordinateSequence {
	seq := &CoordinateSequence{
		Dimension: dim,
		X:         make([]float64, size),
		Y:         make([]float64, size),
	}
	if dim == XYZ || dim == XYZM {
		seq.Z = make([]float64, size)
	}
	if dim == XYM || dim == XYZM {
		seq.M = make([]float64, size)
	}
	return seq
}

// OrdinateMask selects which ordinates a caller wants materialized. It is
// always a superset of XY; Z and/or M may be masked off even when the
// blob's tag declares them, in which case the Reader still consumes the
// bytes (to keep the offset correct) but discards the value (spec.md §4.3
// "Ordinate gating", §9).
type OrdinateMask struct {
	Z, M bool
}

// FullOrdinateMask accepts every ordinate the tag declares (the Reader's
// default, spec.md §6 "accepted ordinates (default XYZM)").
func FullOrdinateMask() OrdinateMask { return OrdinateMask{Z: true, M: true} }
