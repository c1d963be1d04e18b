// Package funcs: random polynomial generation for tests and demos.
package funcs

import (
	"math/rand/v2"

	"github.com/katalvlaran/polyalg/numeric"
	"github.com/katalvlaran/polyalg/poly"
)

// RandOption configures Random.
type RandOption func(*randOptions)

type randOptions struct {
	rng        *rand.Rand
	coeffMin   int64
	coeffMax   int64
	length     int
	letters    string
	maxLetters int
	expMin     int
	expMax     int
	unique     bool
	constant   *bool
	notNull    bool
}

func defaultRandOptions() randOptions {
	return randOptions{
		coeffMin:   -10,
		coeffMax:   10,
		letters:    "xyz",
		maxLetters: 3,
		expMin:     1,
		expMax:     5,
	}
}

// WithRand supplies the random source; the default is the shared
// process-wide source. Pass a seeded source for reproducible output:
//
//	funcs.WithRand(rand.New(rand.NewPCG(1, 2)))
func WithRand(r *rand.Rand) RandOption {
	return func(o *randOptions) { o.rng = r }
}

// WithCoeffRange bounds the coefficients to [min, max] inclusive.
func WithCoeffRange(min, max int64) RandOption {
	return func(o *randOptions) { o.coeffMin, o.coeffMax = min, max }
}

// WithLength fixes the number of generated terms; the default picks
// 1 to 6 at random. Merging similar terms may shorten the result.
func WithLength(n int) RandOption {
	return func(o *randOptions) {
		if n < 0 {
			n = -n
		}
		o.length = n
	}
}

// WithLetters sets the variable alphabet, one letter per rune.
func WithLetters(letters string) RandOption {
	return func(o *randOptions) { o.letters = letters }
}

// WithMaxLetters caps how many distinct letters one term may carry.
func WithMaxLetters(n int) RandOption {
	return func(o *randOptions) { o.maxLetters = n }
}

// WithExpRange bounds the exponents to [min, max] inclusive.
func WithExpRange(min, max int) RandOption {
	return func(o *randOptions) { o.expMin, o.expMax = min, max }
}

// WithUniqueLetter makes every term use one letter, chosen once at
// random from the alphabet.
func WithUniqueLetter() RandOption {
	return func(o *randOptions) { o.unique = true }
}

// WithConstantTerm forces (true) or forbids (false) a trailing constant
// term; the default decides at random.
func WithConstantTerm(want bool) RandOption {
	return func(o *randOptions) { o.constant = &want }
}

// WithNotNull retries generation until the result is not the zero
// polynomial.
func WithNotNull() RandOption {
	return func(o *randOptions) { o.notNull = true }
}

// Random returns a randomly generated polynomial. Without options the
// result has up to 6 terms over the letters x, y, z with coefficients in
// [-10, 10] and exponents in [1, 5]. Zero coefficients and merged
// similar terms can shrink it, down to the zero polynomial unless
// WithNotNull is set.
func Random(opts ...RandOption) poly.Polynomial {
	o := defaultRandOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for {
		p := randomOnce(&o)
		if !o.notNull || !p.IsZero() {
			return p
		}
	}
}

func randomOnce(o *randOptions) poly.Polynomial {
	length := o.length
	if length == 0 {
		length = 1 + intN(o.rng, 6)
	}
	constant := intN(o.rng, 2) == 0
	if o.constant != nil {
		constant = *o.constant
	}

	letters := []rune(o.letters)
	unique := letters[intN(o.rng, len(letters))]

	terms := make([]poly.Term, 0, length)
	body := length
	if constant {
		body--
	}
	for i := 0; i < body; i++ {
		powers := make(map[string]int)
		if o.unique {
			powers[string(unique)] = randBetween(o.rng, o.expMin, o.expMax)
		} else {
			for j := 0; j < 1+intN(o.rng, o.maxLetters); j++ {
				letter := letters[intN(o.rng, len(letters))]
				powers[string(letter)] = randBetween(o.rng, o.expMin, o.expMax)
			}
		}
		terms = append(terms, poly.Term{Coeff: randCoeff(o), Powers: powers})
	}
	if constant {
		terms = append(terms, poly.Term{Coeff: randCoeff(o)})
	}

	return poly.Must(terms)
}

func randCoeff(o *randOptions) numeric.Number {
	return numeric.Int(o.coeffMin + int64(intN(o.rng, int(o.coeffMax-o.coeffMin)+1)))
}

func randBetween(r *rand.Rand, min, max int) int {
	return min + intN(r, max-min+1)
}

// intN draws from the given source, or the shared one when r is nil.
func intN(r *rand.Rand, n int) int {
	if r != nil {
		return r.IntN(n)
	}

	return rand.IntN(n)
}
