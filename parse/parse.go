package parse

import (
	"errors"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/polyalg/numeric"
	"github.com/katalvlaran/polyalg/poly"
)

// ErrBadSyntax indicates input the polynomial grammar cannot cover.
var ErrBadSyntax = errors.New("parse: bad polynomial syntax")

var (
	// termRe captures one term: an optional signed coefficient (integer,
	// decimal or fraction) followed by a run of letter[^]digits factors.
	termRe = regexp.MustCompile(`([-+]?\s*(?:\d+(?:\.\d+|/\d+)?)?)((?:[a-zA-Z]\^?\d*)*)`)

	// letterRe splits the letter run into (letter, exponent) pairs; a
	// missing exponent means 1.
	letterRe = regexp.MustCompile(`([a-zA-Z])\^?(\d*)`)
)

// ParseTerms reads the textual form into raw terms, the data contract the
// poly constructors accept. The empty string yields no terms. Returns
// ErrBadSyntax when any non-whitespace input falls outside the grammar.
func ParseTerms(s string) ([]poly.Term, error) {
	var (
		terms []poly.Term
		pos   int
	)
	for _, loc := range termRe.FindAllStringSubmatchIndex(s, -1) {
		start, end := loc[0], loc[1]
		if start == end {
			continue
		}
		if !blank(s[pos:start]) {
			return nil, ErrBadSyntax
		}
		pos = end

		coeff, err := parseCoeff(s[loc[2]:loc[3]])
		if err != nil {
			return nil, err
		}
		powers, err := parseLetters(s[loc[4]:loc[5]])
		if err != nil {
			return nil, err
		}
		terms = append(terms, poly.Term{Coeff: coeff, Powers: powers})
	}
	if !blank(s[pos:]) {
		return nil, ErrBadSyntax
	}

	return terms, nil
}

// Parse reads the textual form into a canonical Polynomial: "x^2 - 4",
// "3xy + 1/2", "2x3 - y". The empty string parses to the zero
// polynomial.
func Parse(s string, opts ...poly.Option) (poly.Polynomial, error) {
	terms, err := ParseTerms(s)
	if err != nil {
		return poly.Polynomial{}, err
	}

	return poly.New(terms, opts...)
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(s string) poly.Polynomial {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// parseCoeff resolves the coefficient text: empty or a bare sign means
// ±1, a '/' or '.' means an exact rational, anything else an integer.
func parseCoeff(c string) (numeric.Number, error) {
	c = stripSpace(c)
	switch c {
	case "", "+":
		return numeric.Int(1), nil
	case "-":
		return numeric.Int(-1), nil
	}
	if strings.ContainsAny(c, "./") {
		r, ok := new(big.Rat).SetString(c)
		if !ok {
			return numeric.Number{}, ErrBadSyntax
		}

		return numeric.FromRat(r), nil
	}
	n, err := strconv.ParseInt(c, 10, 64)
	if err != nil {
		return numeric.Number{}, ErrBadSyntax
	}

	return numeric.Int(n), nil
}

// parseLetters resolves the letter run into a letter→power map:
// "x^2y" and "x2y" both mean {x: 2, y: 1}. A repeated letter keeps the
// last power, as a human correcting themselves would expect.
func parseLetters(l string) (map[string]int, error) {
	if l == "" {
		return nil, nil
	}
	powers := make(map[string]int)
	for _, m := range letterRe.FindAllStringSubmatch(l, -1) {
		power := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, ErrBadSyntax
			}
			power = n
		}
		powers[m[1]] = power
	}

	return powers, nil
}

// blank reports whether s is empty or all whitespace.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// stripSpace removes every whitespace rune, joining "- 3" into "-3".
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
