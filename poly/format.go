// Package poly: deterministic text rendering of canonical polynomials.
package poly

import (
	"strings"
)

// String renders the polynomial leading term first, in canonical order:
// "3x^2 - 4x + 1", "x^2y - 1/2y", "0" for the zero polynomial. Renderers
// needing a different syntax should walk Monomials() instead; the
// iteration order is the same.
func (p Polynomial) String() string {
	terms := p.nonZeroTerms()
	if len(terms) == 0 {
		return "0"
	}

	var b strings.Builder
	for i, m := range terms {
		s := m.String()
		if i == 0 {
			b.WriteString(s)

			continue
		}
		if strings.HasPrefix(s, "-") {
			b.WriteString(" - ")
			b.WriteString(s[1:])
		} else {
			b.WriteString(" + ")
			b.WriteString(s)
		}
	}

	return b.String()
}
