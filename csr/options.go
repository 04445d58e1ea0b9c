package csr

type options struct {
	columnCount  int
	strictValues bool
}

// Option configures a Matrix.
type Option func(*options)

// WithColumnCount sets the number of columns.
//
// It is used as a capacity hint and, when positive, as an upper bound:
// Append rejects columns >= n with ErrInvalidColumn.
func WithColumnCount(n int) Option {
	return func(o *options) {
		o.columnCount = n
	}
}

// WithStrictValues makes Append reject NaN values with ErrMissingValue.
func WithStrictValues() Option {
	return func(o *options) {
		o.strictValues = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.columnCount < 0 {
		o.columnCount = 0
	}
	return o
}
