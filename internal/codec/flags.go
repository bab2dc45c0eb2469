package codec

import "fmt"

// BaseKind is the undecorated geometry kind (spec.md §3).
type BaseKind int32

const (
	Point BaseKind = iota + 1
	LineString
	Polygon
	MultiPoint
	MultiLineString
	MultiPolygon
	GeometryCollection
)

func (k BaseKind) String() string {
	switch k {
	case Point:
		return "Point"
	case LineString:
		return "LineString"
	case Polygon:
		return "Polygon"
	case MultiPoint:
		return "MultiPoint"
	case MultiLineString:
		return "MultiLineString"
	case MultiPolygon:
		return "MultiPolygon"
	case GeometryCollection:
		return "GeometryCollection"
	default:
		return fmt.Sprintf("BaseKind(%d)", int32(k))
	}
}

// Dimension is fully determined by (has_z, has_m); spec.md §3 invariant.
type Dimension int

const (
	XY Dimension = iota
	XYZ
	XYM
	XYZM
)

// Count returns the number of ordinates per vertex for this dimension.
func (d Dimension) Count() int {
	switch d {
	case XY:
		return 2
	case XYZ, XYM:
		return 3
	case XYZM:
		return 4
	default:
		return 2
	}
}

// Flags is the result of classifying a type tag: the derived triple plus
// the base kind and dimension it implies.
type Flags struct {
	BaseKind   BaseKind
	HasZ       bool
	HasM       bool
	Compressed bool
	Dimension  Dimension
}

func dimensionOf(hasZ, hasM bool) Dimension {
	switch {
	case hasZ && hasM:
		return XYZM
	case hasZ:
		return XYZ
	case hasM:
		return XYM
	default:
		return XY
	}
}

// Classify derives (has_z, has_m, compressed, base_kind, dimension) from a
// geometry type tag (spec.md §4.1).
//
// Procedure: strip the +1000000 compressed decoration first, then match the
// thousands bucket (>3000 Z&M, >2000 M, >1000 Z, else none); the remainder
// is the base kind. Any base kind outside 1..7 is MalformedType.
func Classify(tag int32) (Flags, error) {
	original := tag
	compressed := false
	if tag > compressedOffset {
		compressed = true
		tag -= compressedOffset
	}

	var hasZ, hasM bool
	switch {
	case tag > zmOffset:
		hasZ, hasM = true, true
		tag -= zmOffset
	case tag > mOffset:
		hasM = true
		tag -= mOffset
	case tag > zOffset:
		hasZ = true
		tag -= zOffset
	}

	base := BaseKind(tag)
	if base < Point || base > GeometryCollection {
		return Flags{}, &MalformedTypeError{Tag: original}
	}

	return Flags{
		BaseKind:   base,
		HasZ:       hasZ,
		HasM:       hasM,
		Compressed: compressed,
		Dimension:  dimensionOf(hasZ, hasM),
	}, nil
}

// Encode is the inverse of Classify: deterministic composition of a type
// tag from its parts.
func Encode(base BaseKind, hasZ, hasM, compressed bool) int32 {
	tag := int32(base)
	switch {
	case hasZ && hasM:
		tag += zmOffset
	case hasZ:
		tag += zOffset
	case hasM:
		tag += mOffset
	}
	if compressed {
		tag += compressedOffset
	}
	return tag
}

// BaseOf strips all decoration from a type tag, returning only the base
// kind. Unlike Classify it does not validate the result.
func BaseOf(tag int32) BaseKind {
	if tag > compressedOffset {
		tag -= compressedOffset
	}
	switch {
	case tag > zmOffset:
		tag -= zmOffset
	case tag > mOffset:
		tag -= mOffset
	case tag > zOffset:
		tag -= zOffset
	}
	return BaseKind(tag)
}

// CompressionAllowed reports whether the compressed decoration is
// meaningful for the given base kind; only LineString and Polygon carry a
// delta-compressed coordinate sequence (spec.md §4.1).
func CompressionAllowed(base BaseKind) bool {
	return base == LineString || base == Polygon
}
