// Package funcs: derivative, antiderivative and definite integration.
package funcs

import (
	"errors"

	"github.com/katalvlaran/polyalg/numeric"
	"github.com/katalvlaran/polyalg/poly"
)

// Sentinel errors for the calculus operations.
var (
	// ErrNegativeOrder indicates a derivative or integral of negative
	// order; invert the operation instead.
	ErrNegativeOrder = errors.New("funcs: order must be non-negative")

	// ErrNotIntegrable indicates a term with exponent -1 in the
	// integration letter: its antiderivative is a logarithm, not a
	// polynomial.
	ErrNotIntegrable = errors.New("funcs: term with exponent -1 has no polynomial antiderivative")
)

// Option configures the calculus operations.
type Option func(*options)

type options struct {
	order     int
	letter    string
	constants []numeric.Number
}

func defaultOptions() options {
	return options{order: 1}
}

// WithOrder sets how many times to differentiate or integrate; the
// default is 1. Order 0 is the identity.
func WithOrder(m int) Option {
	return func(o *options) { o.order = m }
}

// WithLetter sets the variable to differentiate or integrate by. The
// default is the polynomial's alphabetically-first letter, or "x" for a
// pure constant.
func WithLetter(letter string) Option {
	return func(o *options) { o.letter = letter }
}

// WithConstants sets the integration constants, given in order of
// integration: the constant of the first (innermost) integral comes
// first. Missing constants default to zero; extras are ignored.
func WithConstants(c ...numeric.Number) Option {
	return func(o *options) { o.constants = c }
}

// Derivative returns the partial derivative of p with respect to one
// letter: each term's coefficient is multiplied by its exponent and the
// exponent decremented; terms without the letter vanish.
//
// Errors: ErrNegativeOrder.
func Derivative(p poly.Polynomial, opts ...Option) (poly.Polynomial, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.order < 0 {
		return poly.Polynomial{}, ErrNegativeOrder
	}

	out := p
	letter := pickLetter(p, o.letter)
	for i := 0; i < o.order; i++ {
		if out.IsZero() {
			return poly.Zero(), nil
		}
		out = derive(out, letter)
	}

	return out, nil
}

// derive performs one differentiation step with respect to letter.
func derive(p poly.Polynomial, letter string) poly.Polynomial {
	var terms []poly.Term
	for _, t := range p.Terms() {
		power := t.Powers[letter]
		if power == 0 {
			continue
		}
		next := make(map[string]int, len(t.Powers))
		for l, e := range t.Powers {
			next[l] = e
		}
		next[letter] = power - 1
		terms = append(terms, poly.Term{
			Coeff:  t.Coeff.Mul(numeric.Int(int64(power))),
			Powers: next,
		})
	}

	return poly.Must(terms)
}

// Integral returns the antiderivative of p with respect to one letter:
// each term's exponent is incremented and the coefficient divided by the
// new exponent, exactly. Integration constants attach per order via
// WithConstants.
//
// Errors: ErrNegativeOrder, ErrNotIntegrable.
func Integral(p poly.Polynomial, opts ...Option) (poly.Polynomial, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.order < 0 {
		return poly.Polynomial{}, ErrNegativeOrder
	}

	out := p
	letter := pickLetter(p, o.letter)
	for i := 0; i < o.order; i++ {
		c := numeric.Int(0)
		if i < len(o.constants) {
			c = o.constants[i]
		}
		next, err := integrate(out, letter, c)
		if err != nil {
			return poly.Polynomial{}, err
		}
		out = next
	}

	return out, nil
}

// integrate performs one integration step with respect to letter, adding
// the constant c.
func integrate(p poly.Polynomial, letter string, c numeric.Number) (poly.Polynomial, error) {
	var terms []poly.Term
	for _, t := range p.Terms() {
		power := t.Powers[letter]
		if power == -1 {
			return poly.Polynomial{}, ErrNotIntegrable
		}
		next := make(map[string]int, len(t.Powers)+1)
		for l, e := range t.Powers {
			next[l] = e
		}
		next[letter] = power + 1
		coeff, err := t.Coeff.Div(numeric.Int(int64(power + 1)))
		if err != nil {
			return poly.Polynomial{}, err
		}
		terms = append(terms, poly.Term{Coeff: coeff, Powers: next})
	}
	if !c.IsZero() {
		terms = append(terms, poly.Term{Coeff: c})
	}

	return poly.Must(terms), nil
}

// IntegralBetween evaluates the definite integral of p over [a, b] with
// respect to one letter: F(b) - F(a) for the antiderivative F. Letters
// other than the integration letter evaluate as 1.
//
// Errors: ErrNotIntegrable.
func IntegralBetween(p poly.Polynomial, a, b numeric.Number, opts ...Option) (numeric.Number, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	letter := pickLetter(p, o.letter)

	antider, err := Integral(p, WithLetter(letter))
	if err != nil {
		return numeric.Number{}, err
	}
	upper, err := antider.Eval(map[string]numeric.Number{letter: b})
	if err != nil {
		return numeric.Number{}, err
	}
	lower, err := antider.Eval(map[string]numeric.Number{letter: a})
	if err != nil {
		return numeric.Number{}, err
	}

	return upper.Sub(lower), nil
}

// pickLetter resolves the working letter: the explicit option, else the
// polynomial's first letter, else "x".
func pickLetter(p poly.Polynomial, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if letters := p.Letters(); len(letters) > 0 {
		return letters[0]
	}

	return "x"
}
