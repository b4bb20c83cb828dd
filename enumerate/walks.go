// SPDX-License-Identifier: MIT
// Package: enumerate
//
// walks.go — admissible edge walks and the candidate product.

package enumerate

import (
	"iter"
	"slices"

	"github.com/katalvlaran/coronas/corona"
)

// Walks returns the admissible edge walks for center, given the allowed sizes
// (empty means corona.DefaultAllowedSizes).
//
// For center 1 every walk is a single square s^0: a unit first square would
// be center-aligned, so the first square has size ≥ 2 and any second square
// would start past the center. The walks are therefore {s^0 : s allowed, s ≥ 2}
// in ascending size, i.e. 2^0, 3^0, 4^0 for the default sizes.
//
// Returns ErrInvalidCenter for center < 1 and ErrUnsupportedCenter for center > 1.
func Walks(center int, allowedSizes []int) ([]corona.Edge, error) {
	if center < 1 {
		return nil, ErrInvalidCenter
	}
	if center != 1 {
		return nil, ErrUnsupportedCenter
	}
	if len(allowedSizes) == 0 {
		allowedSizes = corona.DefaultAllowedSizes
	}

	sizes := slices.Clone(allowedSizes)
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)

	walks := make([]corona.Edge, 0, len(sizes))
	for _, s := range sizes {
		if s <= center {
			continue
		}
		walks = append(walks, corona.Edge{{Size: s, Offset: 0}})
	}

	return walks, nil
}

// Candidates yields every choice of one walk per edge, in odometer order with
// the last edge varying fastest, together with the running index.
// The yielded slice is fresh on every step and may be kept.
// With no walks there are no candidates.
func Candidates(walks []corona.Edge) iter.Seq2[int, []corona.Edge] {
	return func(yield func(int, []corona.Edge) bool) {
		w := len(walks)
		if w == 0 {
			return
		}
		digits := make([]int, corona.NumEdges)
		for idx := 0; ; idx++ {
			combo := make([]corona.Edge, corona.NumEdges)
			for i, d := range digits {
				combo[i] = walks[d]
			}
			if !yield(idx, combo) {
				return
			}

			// Advance the odometer from the last edge.
			pos := corona.NumEdges - 1
			for pos >= 0 {
				digits[pos]++
				if digits[pos] < w {
					break
				}
				digits[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}
