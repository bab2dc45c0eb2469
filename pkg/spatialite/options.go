package spatialite

// WithPrecision returns a copy of opts using the given PrecisionModel,
// grounded on the teacher's small Options-mutation helpers
// (pkg/s57/options.go's DefaultParseOptions pattern, generalized to a
// chainable builder since this package has two distinct Options types
// rather than one).
func (opts ReaderOptions) WithPrecision(p PrecisionModel) ReaderOptions {
	opts.Precision = p
	return opts
}

// WithOrdinates returns a copy of opts accepting only the given ordinates.
func (opts ReaderOptions) WithOrdinates(mask OrdinateMask) ReaderOptions {
	opts.Accept = mask
	return opts
}

// WithRepairRings returns a copy of opts with ring repair enabled or
// disabled.
func (opts ReaderOptions) WithRepairRings(repair bool) ReaderOptions {
	opts.RepairRings = repair
	return opts
}

// WithPrecision returns a copy of opts using the given PrecisionModel.
func (opts WriterOptions) WithPrecision(p PrecisionModel) WriterOptions {
	opts.Precision = p
	return opts
}

// WithOrdinates returns a copy of opts that trims Z and/or M on write
// regardless of the geometry's own dimensionality (spec.md §6).
func (opts WriterOptions) WithOrdinates(mask OrdinateMask) WriterOptions {
	opts.Accept = mask
	return opts
}
