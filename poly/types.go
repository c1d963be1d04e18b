// Package poly: the Polynomial type, the parser-facing Term contract and
// construction options.
package poly

import (
	"math/big"

	"github.com/katalvlaran/polyalg/monomial"
	"github.com/katalvlaran/polyalg/numeric"
)

// Term is the raw (coefficient, exponent-map) pair parsers and generators
// hand to the constructor: the single data contract into the core.
type Term struct {
	// Coeff is the term's coefficient.
	Coeff numeric.Number

	// Powers maps letter to integer exponent; absence means 0.
	Powers map[string]int
}

// Polynomial is an ordered sequence of monomials in canonical form.
// The zero value is the zero polynomial with auto-simplification enabled.
type Polynomial struct {
	monos []monomial.Monomial

	// noAutoSimplify suppresses re-simplification in Update/Append;
	// zero value keeps the pypol default (simplify on).
	noAutoSimplify bool
}

// Option configures polynomial construction.
type Option func(*Polynomial)

// WithoutAutoSimplify builds the polynomial without running the
// simplification engine, and keeps Update from re-running it. Useful for
// inspecting redundant term lists; call Simplify to normalize later.
func WithoutAutoSimplify() Option {
	return func(p *Polynomial) { p.noAutoSimplify = true }
}

// New builds a Polynomial from raw terms. The input is copied, never
// retained. Unless WithoutAutoSimplify is given, the result is in
// canonical form. Returns monomial.ErrBadLetter for invalid letters.
func New(terms []Term, opts ...Option) (Polynomial, error) {
	monos := make([]monomial.Monomial, 0, len(terms))
	var (
		m   monomial.Monomial
		err error
	)
	for _, t := range terms {
		if m, err = monomial.New(t.Coeff, t.Powers); err != nil {
			return Polynomial{}, err
		}
		monos = append(monos, m)
	}

	return fromMonomials(monos, opts...), nil
}

// Must is New for literals known to be valid; it panics on error.
func Must(terms []Term, opts ...Option) Polynomial {
	p, err := New(terms, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// FromMonomials builds a Polynomial from already-validated monomials.
func FromMonomials(monos []monomial.Monomial, opts ...Option) Polynomial {
	cp := make([]monomial.Monomial, len(monos))
	copy(cp, monos)

	return fromMonomials(cp, opts...)
}

// fromMonomials assembles the polynomial, taking ownership of monos.
func fromMonomials(monos []monomial.Monomial, opts ...Option) Polynomial {
	p := Polynomial{monos: monos}
	for _, opt := range opts {
		opt(&p)
	}
	if p.noAutoSimplify {
		p.sortCanonical()

		return p
	}
	p.monos = simplifyTerms(p.monos)
	p.sortCanonical()

	return p
}

// Zero returns the zero polynomial (the empty term sequence).
func Zero() Polynomial { return Polynomial{} }

// One returns the multiplicative identity: the constant polynomial 1.
func One() Polynomial {
	return Polynomial{monos: []monomial.Monomial{monomial.One()}}
}

// FromInt returns the constant polynomial n.
func FromInt(n int64) Polynomial { return FromNumber(numeric.Int(n)) }

// FromNumber returns the constant polynomial with value c; Zero() when c
// is zero.
func FromNumber(c numeric.Number) Polynomial {
	if c.IsZero() {
		return Zero()
	}

	return Polynomial{monos: []monomial.Monomial{monomial.Constant(c)}}
}

// Var returns the degree-one polynomial in the given letter (e.g. "x").
// Returns monomial.ErrBadLetter for invalid names.
func Var(letter string) (Polynomial, error) {
	m, err := monomial.New(numeric.Int(1), map[string]int{letter: 1})
	if err != nil {
		return Polynomial{}, err
	}

	return Polynomial{monos: []monomial.Monomial{m}}, nil
}

// X returns the polynomial x, the conventional pivot variable.
func X() Polynomial {
	p, _ := Var("x")

	return p
}

// NewMonomial builds a single-term polynomial from a coefficient and a
// letter→power map.
func NewMonomial(coeff numeric.Number, powers map[string]int) (Polynomial, error) {
	m, err := monomial.New(coeff, powers)
	if err != nil {
		return Polynomial{}, err
	}

	return fromMonomials([]monomial.Monomial{m}), nil
}

// FromCoeffs builds a dense one-letter polynomial from a coefficient list,
// highest power first: FromCoeffs("x", 3, -2, 4, -2) is 3x^3-2x^2+4x-2.
func FromCoeffs(letter string, coeffs ...numeric.Number) (Polynomial, error) {
	terms := make([]Term, 0, len(coeffs))
	n := len(coeffs)
	for i, c := range coeffs {
		terms = append(terms, Term{Coeff: c, Powers: map[string]int{letter: n - 1 - i}})
	}

	return New(terms)
}

// FromIntCoeffs is FromCoeffs for plain integer coefficients.
func FromIntCoeffs(letter string, coeffs ...int64) (Polynomial, error) {
	nums := make([]numeric.Number, len(coeffs))
	for i, c := range coeffs {
		nums[i] = numeric.Int(c)
	}

	return FromCoeffs(letter, nums...)
}

// FromPowers builds a sparse one-letter polynomial from (coefficient,
// power) pairs, the only constructor admitting negative powers:
// FromPowers("x", CP{Int(2), -1}, CP{Int(2), 0}) is 2x^-1+2.
func FromPowers(letter string, pairs ...CP) (Polynomial, error) {
	terms := make([]Term, 0, len(pairs))
	for _, cp := range pairs {
		terms = append(terms, Term{Coeff: cp.Coeff, Powers: map[string]int{letter: cp.Power}})
	}

	return New(terms)
}

// CP is one (coefficient, power) pair for FromPowers.
type CP struct {
	Coeff numeric.Number
	Power int
}

// ToPolynomial coerces a plain operand into a Polynomial before dispatch:
// the single explicit coercion point of the package. Supported operand
// types: Polynomial, *Polynomial, monomial.Monomial, Term, []Term,
// numeric.Number, int, int64, float64, *big.Rat. Textual operands belong
// to the parse package. Returns ErrCannotCoerce otherwise.
func ToPolynomial(v any) (Polynomial, error) {
	switch o := v.(type) {
	case Polynomial:
		return o, nil
	case *Polynomial:
		return *o, nil
	case monomial.Monomial:
		return fromMonomials([]monomial.Monomial{o}), nil
	case Term:
		return New([]Term{o})
	case []Term:
		return New(o)
	case numeric.Number:
		return FromNumber(o), nil
	case int:
		return FromInt(int64(o)), nil
	case int64:
		return FromInt(o), nil
	case float64:
		return FromNumber(numeric.Float(o)), nil
	case *big.Rat:
		return FromNumber(numeric.FromRat(o)), nil
	default:
		return Polynomial{}, ErrCannotCoerce
	}
}
