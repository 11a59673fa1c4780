// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Zero testing is exact by default (DefaultEpsilon = 0): a pivot is zero
//     only when it compares equal to 0. WithEpsilon switches every zero test
//     of one call (pivot search, zero rows, singularity) to |x| ≤ eps.
//   - Options are per call; nothing is cached between calls.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the zero tolerance for pivots and zero rows. 0 ⇒ exact comparison.
	DefaultEpsilon = 0.0

	// DefaultPartialPivoting controls the RREF pivot choice.
	// false ⇒ first non-zero entry at or below the current row (Gauss-Jordan classic).
	DefaultPartialPivoting = false

	// DefaultMaxDeterminantDim is the largest n for which Determinant is defined,
	// and the largest n for which Inverse pre-checks singularity via Determinant.
	DefaultMaxDeterminantDim = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxDimInvalid  = "matrix: WithMaxDeterminantDim: n must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps          float64 // >= 0; DefaultEpsilon
	partialPivot bool    // DefaultPartialPivoting
	maxDetDim    int     // >= 1; DefaultMaxDeterminantDim
}

// WithEpsilon sets the zero tolerance used by the elimination engine.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - eps = 0 restores exact zero testing.
//   - Applies to pivot selection, zero-row counting (Rank) and singularity (Inverse).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPartialPivoting makes ReducedRowEchelon pick, for each column, the row
// with the largest |value| instead of the first non-zero one.
// RowEchelon always pivots partially; this flag only affects RREF (and thus
// Rank and Inverse).
func WithPartialPivoting() Option {
	return func(o *Options) { o.partialPivot = true }
}

// WithMaxDeterminantDim raises (or lowers) the dimension limit of Determinant.
// Inverse also uses it: matrices up to n are checked for singularity through
// the determinant before reduction; larger ones rely on the reduced pivots.
// Panics if n < 1.
func WithMaxDeterminantDim(n int) Option {
	if n < 1 {
		panic(panicMaxDimInvalid)
	}

	return func(o *Options) { o.maxDetDim = n }
}

// defaultOptions returns the documented zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:          DefaultEpsilon,
		partialPivot: DefaultPartialPivoting,
		maxDetDim:    DefaultMaxDeterminantDim,
	}
}

// gatherOptions applies opts in order over the defaults; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
