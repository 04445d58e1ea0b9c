package kmeans

import "log/slog"

// DefaultMinEntries is the number of entries a row needs to take part in assignment.
const DefaultMinEntries = 3

// StarvationPolicy decides what happens to centroid cells without contributions.
type StarvationPolicy int

const (
	// KeepStarved leaves starved cells at NaN (0/0).
	KeepStarved StarvationPolicy = iota
	// ReseedStarved redraws starved cells from the random source.
	ReseedStarved
)

func (p StarvationPolicy) String() string {
	switch p {
	case KeepStarved:
		return "keep"
	case ReseedStarved:
		return "reseed"
	default:
		return "unknown"
	}
}

type options struct {
	source     RandomSource
	minEntries int
	policy     StarvationPolicy
	logger     *slog.Logger
}

// Option configures a Model.
type Option func(*options)

// WithRandomSource sets the source used to seed (and reseed) centroids.
// If nil is passed, an unseeded global source is used.
func WithRandomSource(src RandomSource) Option {
	return func(o *options) {
		if src == nil {
			src = globalSource{}
		}
		o.source = src
	}
}

// WithMinEntries sets the minimum number of entries a row needs to be assigned.
// Values below 1 are treated as 1.
func WithMinEntries(n int) Option {
	return func(o *options) {
		o.minEntries = max(n, 1)
	}
}

// WithStarvationPolicy sets the policy for centroid cells without contributions.
func WithStarvationPolicy(p StarvationPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger sets the logger for the model. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		source:     globalSource{},
		minEntries: DefaultMinEntries,
		policy:     KeepStarved,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
