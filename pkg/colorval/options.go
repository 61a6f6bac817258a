package colorval

// Option configures New.
type Option func(*options)

type options struct {
	alpha  *float64
	logger Logger
	names  NameResolver
}

func defaultOptions() options {
	return options{logger: NewSlogAdapter(nil)}
}

// WithAlpha overrides the alpha channel of every resulting entry,
// regardless of any alpha carried by the input.
func WithAlpha(a float64) Option {
	return func(o *options) {
		o.alpha = &a
	}
}

// WithLogger sets the sink for clamping warnings. Each out-of-range entry
// produces its own warning carrying its index, so a collection with two
// bad rows logs twice. A nil logger discards them.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NopLogger()
		}
		o.logger = l
	}
}

// WithNames consults r for names before the built-in table.
func WithNames(r NameResolver) Option {
	return func(o *options) {
		o.names = r
	}
}
