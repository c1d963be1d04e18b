// Package parse turns textual polynomial syntax into poly.Polynomial
// values.
//
// What:
//
//	A small regex-driven reader for the conventional algebra notation:
//	"3x^2 - 2xy + 1/2", with integer, decimal and fractional
//	coefficients, implicit exponents ("2x3" means 2x^3) and implicit
//	coefficients ("-x" means -1·x). Decimal and fractional coefficients
//	are kept exact as rationals.
//
// Why:
//
//	The core constructors take raw (coefficient, exponent-map) terms;
//	tests and examples read far better with the textual form. The parser
//	is the only component that owns the textual grammar — the core never
//	sees strings.
//
// Grammar, per term:
//
//	[+|-] [integer | decimal | numerator/denominator] {letter [^]digits}
//
// Negative exponents have no textual form; build those polynomials with
// poly.FromPowers.
//
// Errors:
//
//   - ErrBadSyntax          — input that the grammar cannot cover.
//   - monomial.ErrBadLetter — surfaced through the core constructor.
//
// The empty (or all-whitespace) string parses to the zero polynomial.
package parse
