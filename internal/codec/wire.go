// Package codec implements the SpatiaLite internal geometry BLOB format: a
// binary serialization of 2D/3D/measured geometries used by the SpatiaLite
// SQLite extension.
//
// References:
//   - SpatiaLite internal format (no public RFC; derived from the
//     reference C implementation shipped with libspatialite).
package codec

// Wire constants for the BLOB frame. Values are authoritative; do not
// change them to "improve" readability, they are bytes on disk.
const (
	Start        byte = 0x00
	End          byte = 0xFE
	MBRMarker    byte = 0x7C
	EntityMarker byte = 0x69

	EndianBig    byte = 0x00
	EndianLittle byte = 0x01
)

// HeaderSize is the fixed size of the BLOB frame up to and including the
// root geometry type, i.e. everything before the geometry payload.
const HeaderSize = 43

// MinBlobSize is the smallest BLOB the Reader's framing check accepts:
// HeaderSize plus at least one byte of payload plus the trailing End marker
// (43 + 1 + 1 = 45).
const MinBlobSize = 45

const (
	offsetStart    = 0
	offsetEndian   = 1
	offsetSRID     = 2
	offsetEnvelope = 6
	offsetMBR      = 38
	offsetRootType = 39
	offsetPayload  = 43
)

// Type tag decoration, additive per spec.md §3.
const (
	zOffset          int32 = 1000
	mOffset          int32 = 2000
	zmOffset         int32 = 3000
	compressedOffset int32 = 1000000
)
