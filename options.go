package alchemy

// Options configures a single GetProfiles call. The zero value behaves like
// DefaultOptions: GetProfiles uses the default resolution whenever
// TesselationResolution is not positive.
type Options struct {
	// IncludeOuter includes the single clockwise "hole in infinity"
	// boundary in the result when true. Defaults to false.
	IncludeOuter bool

	// TesselationResolution is the number of samples per curve used for
	// point-in-wire and clockwise-orientation tests. Defaults to 80.
	TesselationResolution int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		IncludeOuter:          false,
		TesselationResolution: 80,
	}
}
