package sparsevec

type options struct {
	logger      *Logger
	intersector Intersector
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		intersector: kernelIntersector{},
	}
}

// Option configures a Space.
//
// Options exist to avoid exploding the constructor surface; the zero
// configuration is fully functional.
type Option func(*options)

// WithLogger configures the logger used by batch operations.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIntersector replaces the intersection backend used by the overlap
// counters and JaccardSimilarity.
//
// If nil is passed, the built-in kernels stay in place.
func WithIntersector(i Intersector) Option {
	return func(o *options) {
		if i != nil {
			o.intersector = i
		}
	}
}
