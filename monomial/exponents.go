// Package monomial: the immutable Exponents association list.
package monomial

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentinel errors for term-level operations.
var (
	// ErrBadLetter indicates a variable name that is not a single letter.
	ErrBadLetter = errors.New("monomial: variable name must be a single letter")

	// ErrNotDivisible indicates a term division that would need a letter or
	// exponent the divisor does not supply.
	ErrNotDivisible = errors.New("monomial: term is not divisible")
)

// varPow is one (letter, power) entry. Entries with power 0 are never stored.
type varPow struct {
	letter string
	power  int
}

// Exponents is an immutable mapping from letter to integer exponent,
// stored as a sorted association list. The zero value is the empty map
// (the literal part of a constant term).
//
// Absence of a letter means exponent 0. Two Exponents are equal iff they
// hold the same letters with the same powers; this is the similarity
// relation of the simplification engine.
type Exponents struct {
	entries []varPow
}

// validLetter reports whether s is a single letter rune.
func validLetter(s string) bool {
	r, size := utf8.DecodeRuneInString(s)

	return size == len(s) && size > 0 && unicode.IsLetter(r)
}

// NewExponents builds an Exponents value from a letter→power map.
// Zero powers are dropped, entries are sorted by letter, and the input map
// is copied, never retained. Returns ErrBadLetter for a name that is not a
// single letter.
func NewExponents(powers map[string]int) (Exponents, error) {
	entries := make([]varPow, 0, len(powers))
	for letter, power := range powers {
		if !validLetter(letter) {
			return Exponents{}, ErrBadLetter
		}
		if power == 0 {
			continue
		}
		entries = append(entries, varPow{letter: letter, power: power})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].letter < entries[j].letter })

	return Exponents{entries: entries}, nil
}

// MustExponents is NewExponents for literals known to be valid; it panics
// on ErrBadLetter.
func MustExponents(powers map[string]int) Exponents {
	e, err := NewExponents(powers)
	if err != nil {
		panic(err)
	}

	return e
}

// Get returns the power of letter, 0 when absent.
func (e Exponents) Get(letter string) int {
	for _, vp := range e.entries {
		if vp.letter == letter {
			return vp.power
		}
	}

	return 0
}

// Has reports whether letter appears with a non-zero power.
func (e Exponents) Has(letter string) bool { return e.Get(letter) != 0 }

// Len returns the number of letters with non-zero power.
func (e Exponents) Len() int { return len(e.entries) }

// IsEmpty reports whether no letter appears (a constant term's literal part).
func (e Exponents) IsEmpty() bool { return len(e.entries) == 0 }

// Letters returns the letters in ascending order.
func (e Exponents) Letters() []string {
	out := make([]string, len(e.entries))
	for i, vp := range e.entries {
		out[i] = vp.letter
	}

	return out
}

// Map returns a fresh letter→power map; mutating it does not affect e.
func (e Exponents) Map() map[string]int {
	out := make(map[string]int, len(e.entries))
	for _, vp := range e.entries {
		out[vp.letter] = vp.power
	}

	return out
}

// Degree returns the sum of all powers (0 for the empty map).
func (e Exponents) Degree() int {
	var d int
	for _, vp := range e.entries {
		d += vp.power
	}

	return d
}

// Equal reports structural equality: same letters, same powers.
// This is exactly the "similar monomials" relation.
func (e Exponents) Equal(o Exponents) bool {
	if len(e.entries) != len(o.entries) {
		return false
	}
	for i, vp := range e.entries {
		if o.entries[i] != vp {
			return false
		}
	}

	return true
}

// Mul returns the merged map with powers added per letter (union of letter
// sets, absence counting as 0). Letters whose powers cancel are dropped.
func (e Exponents) Mul(o Exponents) Exponents {
	merged := e.Map()
	for _, vp := range o.entries {
		merged[vp.letter] += vp.power
	}

	out, _ := NewExponents(merged) // letters already validated
	return out
}

// Pow returns the map with every power multiplied by n. Pow(0) is the
// empty map.
func (e Exponents) Pow(n int) Exponents {
	if n == 0 {
		return Exponents{}
	}
	entries := make([]varPow, len(e.entries))
	for i, vp := range e.entries {
		entries[i] = varPow{letter: vp.letter, power: vp.power * n}
	}

	return Exponents{entries: entries}
}

// Div subtracts o's powers from e's. It returns ErrNotDivisible when o
// carries a letter e lacks, or with a power larger than e's: division never
// introduces negative exponents implicitly.
func (e Exponents) Div(o Exponents) (Exponents, error) {
	diff := e.Map()
	for _, vp := range o.entries {
		have, ok := diff[vp.letter]
		if !ok || have < vp.power {
			return Exponents{}, ErrNotDivisible
		}
		diff[vp.letter] = have - vp.power
	}

	out, _ := NewExponents(diff)
	return out, nil
}

// String renders the literal part: "x^2y" for {x:2, y:1}, "" for the empty
// map. Unit powers omit the caret.
func (e Exponents) String() string {
	var b strings.Builder
	for _, vp := range e.entries {
		b.WriteString(vp.letter)
		if vp.power != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(vp.power))
		}
	}

	return b.String()
}
