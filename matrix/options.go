// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for decompositions and the solve
// facade. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes observable behavior and is tested.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxSweeps bounds the implicit-shift QR iterations spent on one
	// singular value before the SVD gives up on it and keeps its best estimate.
	DefaultMaxSweeps = 30

	// DefaultRankDigits is the number of decimals singular values are rounded
	// to before RoundedRank counts the non-zero ones.
	DefaultRankDigits = 10

	// DefaultLowRankEnergy is the share of singular-value mass LowRankIndex
	// must retain.
	DefaultLowRankEnergy = 0.9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxSweepsInvalid     = "matrix: WithMaxSweeps: sweeps must be > 0"
	panicRankDigitsInvalid    = "matrix: WithRankDigits: digits must be in [0, 15]"
	panicLowRankEnergyInvalid = "matrix: WithLowRankEnergy: energy must be finite and in (0, 1]"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	maxSweeps     int            // > 0; DefaultMaxSweeps
	rankDigits    int            // [0,15]; DefaultRankDigits
	lowRankEnergy float64        // (0,1]; DefaultLowRankEnergy
	logger        zerolog.Logger // zerolog.Nop() unless WithLogger
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		maxSweeps:     DefaultMaxSweeps,
		rankDigits:    DefaultRankDigits,
		lowRankEnergy: DefaultLowRankEnergy,
		logger:        zerolog.Nop(),
	}
}

// gatherOptions applies setters in order over the defaults (last write wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithMaxSweeps sets the per-singular-value iteration cap of the SVD.
// Panics when sweeps <= 0.
//
// Notes:
//   - Exhausting the cap is not an error: the SVD logs a warning, records
//     Converged()==false and keeps the best-effort values.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// WithRankDigits sets the rounding precision used by SVD.RoundedRank.
// Panics outside [0, 15] (float64 carries ~15.9 significant decimals).
func WithRankDigits(digits int) Option {
	if digits < 0 || digits > 15 {
		panic(panicRankDigitsInvalid)
	}

	return func(o *Options) { o.rankDigits = digits }
}

// WithLowRankEnergy sets the retained mass share used by SVD.LowRankIndex.
// Panics unless 0 < energy <= 1.
func WithLowRankEnergy(energy float64) Option {
	if math.IsNaN(energy) || math.IsInf(energy, 0) || energy <= 0 || energy > 1 {
		panic(panicLowRankEnergyInvalid)
	}

	return func(o *Options) { o.lowRankEnergy = energy }
}

// WithLogger routes diagnostics to l: Debug for singular, rank-deficient or
// non-SPD inputs, Warn when an SVD sweep cap is exhausted.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}
