// SPDX-License-Identifier: MIT
// Package: enumerate
//
// types.go — Options, Result and sentinel errors.

package enumerate

import (
	"errors"
	"slices"

	"github.com/katalvlaran/coronas/corona"
)

var (
	// ErrInvalidCenter indicates a center size below 1.
	ErrInvalidCenter = errors.New("enumerate: center must be a positive integer")
	// ErrUnsupportedCenter indicates no walk generator exists for the center size.
	ErrUnsupportedCenter = errors.New("enumerate: walk generation is only defined for center 1")
	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("enumerate: workers must be >= 0")
)

// Options configures Enumerate.
type Options struct {
	// AllowedSizes is handed to corona.Validate and bounds the walk set.
	// Empty means corona.DefaultAllowedSizes.
	AllowedSizes []int

	// Workers is the number of goroutines validating candidates.
	// 0 or 1 runs sequentially. The output does not depend on it.
	Workers int
}

// DefaultOptions returns sizes {1,2,3,4} and sequential search.
func DefaultOptions() Options {
	return Options{
		AllowedSizes: slices.Clone(corona.DefaultAllowedSizes),
		Workers:      1,
	}
}

func (o Options) validateOptions() corona.Options {
	return corona.Options{AllowedSizes: o.AllowedSizes}
}

// Result is the outcome of one enumeration.
type Result struct {
	// Center is the enumerated center size.
	Center int

	// Coronas holds the unique valid coronas in first-encountered order.
	Coronas []corona.Corona

	// Keys[i] is the canonical key of Coronas[i].
	Keys []corona.Key

	// Candidates is the number of edge combinations examined.
	Candidates int

	// Valid counts candidates that passed validation, duplicates included.
	Valid int

	// Rejected counts failed candidates by reason.
	Rejected map[corona.Reason]int
}

// Duplicates returns how many valid candidates were dropped as rotations of
// an earlier corona.
func (r *Result) Duplicates() int {
	return r.Valid - len(r.Coronas)
}
