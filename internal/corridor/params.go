package corridor

// Default clustering parameters. These match the reference dataset shipped
// with cmd/tools/gen-lines and are a reasonable starting point for inputs
// measured in meters.
const (
	// DefaultMaxDist is the default neighborhood radius.
	DefaultMaxDist = 5.0
	// DefaultMinDensity is the default minimum sum of neighbor weights for
	// a segment to be core.
	DefaultMinDensity = 3.0
	// DefaultMaxAngle is the default maximum heading deviation in degrees.
	DefaultMaxAngle = 5.0
	// DefaultSegmentSize is the default sub-segment length.
	DefaultSegmentSize = 20.0
)

// Params holds the clustering parameters. Components receive a Params
// value explicitly; there is no ambient parameter state.
type Params struct {
	// MaxDist is the maximum spatial separation between reachable segments,
	// in input coordinate units.
	MaxDist float64
	// MinDensity is the minimum sum of neighbor weights (including the
	// segment's own) for a segment to be core.
	MinDensity float64
	// MaxAngle is the maximum heading deviation between reachable segments,
	// in degrees.
	MaxAngle float64
	// SegmentSize is the length each desire line is split into.
	SegmentSize float64
}

// DefaultParams returns the default clustering parameters.
func DefaultParams() Params {
	return Params{
		MaxDist:     DefaultMaxDist,
		MinDensity:  DefaultMinDensity,
		MaxAngle:    DefaultMaxAngle,
		SegmentSize: DefaultSegmentSize,
	}
}

// Validate checks parameter ranges. It returns an *InvalidParameterError
// for the first parameter out of range, so callers can fail before any
// processing begins.
func (p Params) Validate() error {
	if p.MaxDist <= 0 {
		return &InvalidParameterError{Name: "max_dist", Value: p.MaxDist, Reason: "must be positive"}
	}
	if p.MinDensity <= 0 {
		return &InvalidParameterError{Name: "min_density", Value: p.MinDensity, Reason: "must be positive"}
	}
	if p.MaxAngle < 0 || p.MaxAngle > 180 {
		return &InvalidParameterError{Name: "max_angle", Value: p.MaxAngle, Reason: "must be within [0, 180] degrees"}
	}
	if p.SegmentSize <= 0 {
		return &InvalidParameterError{Name: "segment_size", Value: p.SegmentSize, Reason: "must be positive"}
	}
	return nil
}
