package codec

// ordinateSlots returns, in on-wire order, which ordinate each f64/f32
// slot within one vertex represents. This is the "small table of which
// ordinates receive which slot" spec.md §9 calls for, replacing what would
// otherwise be six hand-duplicated read/write loops with one loop
// parameterized by this table.
func ordinateSlots(dim Dimension) []byte {
	switch dim {
	case XYZ:
		return []byte{'X', 'Y', 'Z'}
	case XYM:
		return []byte{'X', 'Y', 'M'}
	case XYZM:
		return []byte{'X', 'Y', 'Z', 'M'}
	default:
		return []byte{'X', 'Y'}
	}
}

// effectiveDimension applies an OrdinateMask to a tag-declared dimension:
// the caller may accept a strict subset of what the tag declares, but
// never more (spec.md §4.3 "Ordinate gating").
func effectiveDimension(dim Dimension, mask OrdinateMask) Dimension {
	hasZ := (dim == XYZ || dim == XYZM) && mask.Z
	hasM := (dim == XYM || dim == XYZM) && mask.M
	return dimensionOf(hasZ, hasM)
}

func assignVertex(seq *CoordinateSequence, precision PrecisionModel, idx int, slots []byte, vals []float64) {
	for j, slot := range slots {
		v := precision.MakePrecise(vals[j])
		switch slot {
		case 'X':
			seq.X[idx] = v
		case 'Y':
			seq.Y[idx] = v
		case 'Z':
			if seq.Z != nil {
				seq.Z[idx] = v
			}
		case 'M':
			if seq.M != nil {
				seq.M[idx] = v
			}
		}
	}
}

func vertexValues(seq *CoordinateSequence, idx int, slots []byte) []float64 {
	out := make([]float64, len(slots))
	for j, slot := range slots {
		switch slot {
		case 'X':
			out[j] = seq.X[idx]
		case 'Y':
			out[j] = seq.Y[idx]
		case 'Z':
			if seq.Z != nil {
				out[j] = seq.Z[idx]
			}
		case 'M':
			if seq.M != nil {
				out[j] = seq.M[idx]
			}
		}
	}
	return out
}

// ReadUncompressedSequence bulk-reads count*D f64 values, D = dim.Count(),
// assigning X/Y and, when present, Z/M per vertex (spec.md §4.3
// "Uncompressed"). Bytes for ordinates the tag declares but the mask
// rejects are still consumed, just discarded (spec.md §9).
func ReadUncompressedSequence(bo ByteOps, buf []byte, off, count int, dim Dimension, mask OrdinateMask, precision PrecisionModel, factory CoordinateSequenceFactory) (*CoordinateSequence, int, error) {
	slots := ordinateSlots(dim)
	d := len(slots)

	vals, err := bo.ReadF64Vector(buf, off, count*d)
	if err != nil {
		return nil, off, err
	}
	off += count * d * 8

	seq := factory.NewSequence(count, effectiveDimension(dim, mask))
	for i := 0; i < count; i++ {
		assignVertex(seq, precision, i, slots, vals[i*d:(i+1)*d])
	}
	return seq, off, nil
}

// ReadCompressedSequence decodes the delta-compressed ring/linestring
// layout of spec.md §4.3: absolute first and last vertices, f32 deltas for
// interior vertices, accumulated against a running position that starts at
// vertex 0. Handles the N==1 (single absolute vertex, no delta section)
// and N==2 (two absolutes, zero deltas) boundary cases.
func ReadCompressedSequence(bo ByteOps, buf []byte, off, count int, dim Dimension, mask OrdinateMask, precision PrecisionModel, factory CoordinateSequenceFactory) (*CoordinateSequence, int, error) {
	slots := ordinateSlots(dim)
	d := len(slots)
	seq := factory.NewSequence(count, effectiveDimension(dim, mask))

	if count == 1 {
		vals, err := bo.ReadF64Vector(buf, off, d)
		if err != nil {
			return nil, off, err
		}
		off += d * 8
		assignVertex(seq, precision, 0, slots, vals)
		return seq, off, nil
	}

	v0, err := bo.ReadF64Vector(buf, off, d)
	if err != nil {
		return nil, off, err
	}
	off += d * 8
	assignVertex(seq, precision, 0, slots, v0)

	running := make([]float64, d)
	copy(running, v0)

	interior := count - 2
	if interior > 0 {
		deltas, err := bo.ReadF32Vector(buf, off, interior*d)
		if err != nil {
			return nil, off, err
		}
		off += interior * d * 4
		for i := 0; i < interior; i++ {
			for j := 0; j < d; j++ {
				running[j] += float64(deltas[i*d+j])
			}
			assignVertex(seq, precision, i+1, slots, running)
		}
	}

	vLast, err := bo.ReadF64Vector(buf, off, d)
	if err != nil {
		return nil, off, err
	}
	off += d * 8
	assignVertex(seq, precision, count-1, slots, vLast)

	return seq, off, nil
}

// ReadSequence dispatches to the uncompressed or compressed decoder. This
// is the single entry point Reader calls; it, plus the two functions
// above, are the "six variants" of spec.md §2 expressed as one function
// parameterized by (dimension, compressed) rather than six duplicated
// bodies (spec.md §9).
func ReadSequence(bo ByteOps, buf []byte, off, count int, dim Dimension, compressed bool, mask OrdinateMask, precision PrecisionModel, factory CoordinateSequenceFactory) (*CoordinateSequence, int, error) {
	if compressed {
		return ReadCompressedSequence(bo, buf, off, count, dim, mask, precision, factory)
	}
	return ReadUncompressedSequence(bo, buf, off, count, dim, mask, precision, factory)
}

// WriteUncompressedSequence mirrors ReadUncompressedSequence.
func WriteUncompressedSequence(bo ByteOps, buf []byte, seq *CoordinateSequence, dim Dimension, precision PrecisionModel) []byte {
	slots := ordinateSlots(dim)
	for i := 0; i < seq.Len(); i++ {
		vals := vertexValues(seq, i, slots)
		for _, v := range vals {
			buf = bo.WriteF64(buf, precision.MakePrecise(v))
		}
	}
	return buf
}

// WriteCompressedSequence mirrors ReadCompressedSequence. Deltas accumulate
// against the running position built from the actual f32 values written
// (not the precise source value), so a subsequent read reconstructs
// exactly what was written rather than fighting the f32 precision loss
// that is intrinsic to this encoding (spec.md §9).
func WriteCompressedSequence(bo ByteOps, buf []byte, seq *CoordinateSequence, dim Dimension, precision PrecisionModel) []byte {
	slots := ordinateSlots(dim)
	d := len(slots)
	n := seq.Len()

	precise := func(idx int) []float64 {
		vals := vertexValues(seq, idx, slots)
		for j := range vals {
			vals[j] = precision.MakePrecise(vals[j])
		}
		return vals
	}

	if n == 1 {
		return bo.WriteF64Vector(buf, precise(0))
	}

	v0 := precise(0)
	buf = bo.WriteF64Vector(buf, v0)

	running := make([]float64, d)
	copy(running, v0)

	for i := 1; i < n-1; i++ {
		vi := precise(i)
		for j := 0; j < d; j++ {
			delta := float32(vi[j] - running[j])
			buf = bo.WriteF32(buf, delta)
			running[j] += float64(delta)
		}
	}

	vLast := precise(n - 1)
	buf = bo.WriteF64Vector(buf, vLast)
	return buf
}

// WriteSequence dispatches to the uncompressed or compressed encoder.
func WriteSequence(bo ByteOps, buf []byte, seq *CoordinateSequence, dim Dimension, compressed bool, precision PrecisionModel) []byte {
	if compressed {
		return WriteCompressedSequence(bo, buf, seq, dim, precision)
	}
	return WriteUncompressedSequence(bo, buf, seq, dim, precision)
}
