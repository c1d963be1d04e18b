package roots

import "errors"

// Sentinel errors for root finding.
var (
	// ErrWrongDegree indicates a closed-form solver applied to a
	// polynomial of a different degree.
	ErrWrongDegree = errors.New("roots: polynomial degree does not match the formula")

	// ErrNotUnivariate indicates a polynomial in several letters or with
	// negative powers; the root finders handle single-letter polynomials
	// with non-negative exponents.
	ErrNotUnivariate = errors.New("roots: polynomial must be univariate with non-negative powers")

	// ErrNoConvergence indicates the iteration budget ran out before the
	// step size dropped below Epsilon.
	ErrNoConvergence = errors.New("roots: iteration did not converge")

	// ErrNoSignChange indicates a bracketing method whose interval
	// endpoints evaluate to the same sign.
	ErrNoSignChange = errors.New("roots: interval endpoints must bracket a root")
)

// Option configures the iterative methods.
type Option func(*options)

type options struct {
	epsilon float64
	maxIter int
}

func defaultOptions() options {
	return options{epsilon: 1e-12, maxIter: 500}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithEpsilon sets the convergence tolerance: iteration stops once the
// step size drops below it. The default is 1e-12.
func WithEpsilon(e float64) Option {
	return func(o *options) { o.epsilon = e }
}

// WithMaxIter caps the number of iterations before ErrNoConvergence.
// The default is 500.
func WithMaxIter(n int) Option {
	return func(o *options) { o.maxIter = n }
}
