// Package polyalg is your in-memory playground for exact symbolic
// polynomial algebra — from rational-number primitives to calculus,
// classical polynomial sequences and root finding.
//
// 🚀 What is polyalg?
//
//	A modern, pure-Go library that brings together:
//		• Exact numbers: an int64 / big.Rat / float64 tower that never loses precision by accident
//		• Monomials & polynomials: immutable terms, canonical form, full arithmetic
//		• Parsing: human-friendly text like "2x^3 - 3y + 2" in, polynomials out
//		• Calculus: partial derivatives, antiderivatives, definite integrals
//		• Sequences: Fibonacci, Chebyshev, Hermite, Laguerre, Touchard, Abel and friends
//		• Roots: closed forms up to quartic, Ruffini, Newton/Halley/Laguerre, Durand–Kerner, Brent
//
// ✨ Why choose polyalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact by default – rational coefficients stay rational, floats appear only when you ask
//   - Pure Go – no cgo, no hidden deps
//   - Composable – every operation returns a plain Polynomial you can feed back in
//
// Under the hood, everything is organized into focused subpackages:
//
//	numeric/  — the exact number tower (int64, *big.Rat, float64) with promotion rules
//	monomial/ — single terms: coefficient × product of letter powers
//	poly/     — Polynomial and Fraction: arithmetic, division, GCD, evaluation, formatting
//	parse/    — text → Polynomial
//	funcs/    — derivatives, integrals, divisibility, random polynomials, binomials
//	series/   — Lucas-family sequences and classical orthogonal / combinatorial polynomials
//	roots/    — closed-form, rational and iterative root finders
//
// Quick taste:
//
//	p := parse.MustParse("x^2 - 4")
//	q, r, _ := p.DivMod(parse.MustParse("x - 2"))
//	// q = "x + 2", r = "0"
//
// Dive into README.md and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/polyalg
package polyalg
