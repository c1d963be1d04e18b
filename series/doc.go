// Package series generates the classic polynomial sequences: the Lucas
// polynomial sequence family and the named orthogonal and combinatorial
// polynomials.
//
// What:
//
//   - LucasSeq is the engine: W(n) = P·W(n-1) + Q·W(n-2) from two seed
//     polynomials, computed iteratively with a two-term accumulator.
//   - The named generators fix the parameters: Fibonacci, Lucas, Pell,
//     PellLucas, Jacobsthal, JacobsthalLucas, Fermat, FermatLucas,
//     ChebyshevT, ChebyshevU.
//   - HermiteProb, HermitePhys, Laguerre, LaguerreGen, Gegenbauer,
//     Touchard, Abel, Bernstein and Spread follow their own recurrences
//     and closed forms; rational coefficients stay exact throughout.
//   - Bernoulli, Euler, BernoulliNumber, EulerNumber and Genocchi cover
//     the Bernoulli/Euler polynomial families and their number sequences.
//
// Why:
//
//	These sequences exercise every part of the arithmetic core and give
//	the root finders well-understood inputs. Every generator runs in a
//	loop with constant polynomial state, so large indices cost time, not
//	stack.
//
// Errors:
//
//   - ErrNegativeIndex — any generator with n < 0.
//   - ErrIndexOutOfRange — Bernstein with v > n.
package series
