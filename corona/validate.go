// SPDX-License-Identifier: MIT
// Package: corona
//
// validate.go — the fail-fast validation predicate.

package corona

import "slices"

// Result is the verdict of Validate. OK results carry ReasonNone and a nil Where.
type Result struct {
	OK     bool
	Reason Reason
	Where  *Location
}

// Err returns nil for a passing result and a *ValidationError otherwise.
func (r Result) Err() error {
	if r.OK {
		return nil
	}

	return &ValidationError{Reason: r.Reason, Where: r.Where}
}

// String renders "ok" or the reason with its location.
func (r Result) String() string {
	if r.OK {
		return "ok"
	}
	if r.Where == nil {
		return string(r.Reason)
	}

	return string(r.Reason) + " (" + r.Where.String() + ")"
}

func pass() Result { return Result{OK: true} }

func fail(reason Reason, where *Location) Result {
	return Result{Reason: reason, Where: where}
}

func at(edge int, segs ...Segment) *Location {
	return &Location{Edge: edge, Segments: segs}
}

// Validate checks c against the corona rules and reports the first violation.
//
// Rules, in evaluation order:
//  1. Center > 0                                       (ReasonCenter)
//  2. exactly NumEdges edges                           (ReasonEdgeCount)
//  3. for each edge, on a copy sorted by (Offset, Size):
//     a. at least one square                           (ReasonEdgeEmpty)
//     b. per square: size allowed and > 0              (ReasonSegmentSize)
//     0 <= offset <= center                            (ReasonOffsetRange)
//     c. not (size == center && offset == 0)           (ReasonCenterAligned)
//     d. consecutive squares differ in size            (ReasonEqualAdjacent)
//     e. lowest offset is 0                            (ReasonEdgeStart)
//     f. next.Offset == prev.Offset + prev.Size        (ReasonEdgeWalk)
//     g. last square ends at or after center           (ReasonEdgeCoverage)
//  4. corner rule, only once every edge passed 3: if some corner i has an
//     overhang of exactly 1 on edge i while edge i+1 starts with a unit
//     square, every edge's last square must have the same size (ReasonCornerGap).
//
// Validate is pure: it never mutates c and returns identical results for
// identical input.
// Complexity: O(S log S) for S segments in total.
func Validate(c Corona, opts Options) Result {
	center := c.center
	if center <= 0 {
		return fail(ReasonCenter, nil)
	}
	if len(c.edges) != NumEdges {
		return fail(ReasonEdgeCount, nil)
	}

	allowed := opts.allowed()
	walks := make([]Edge, NumEdges)
	for ei, edge := range c.edges {
		if len(edge) == 0 {
			return fail(ReasonEdgeEmpty, at(ei))
		}
		segs := edge.Sorted()

		for _, s := range segs {
			if s.Size <= 0 || !slices.Contains(allowed, s.Size) {
				return fail(ReasonSegmentSize, at(ei, s))
			}
			if s.Offset < 0 || s.Offset > center {
				return fail(ReasonOffsetRange, at(ei, s))
			}
			if s.Size == center && s.Offset == 0 {
				return fail(ReasonCenterAligned, at(ei, s))
			}
		}

		for i := 1; i < len(segs); i++ {
			if segs[i-1].Size == segs[i].Size {
				return fail(ReasonEqualAdjacent, at(ei, segs[i-1], segs[i]))
			}
		}

		if segs[0].Offset != 0 {
			return fail(ReasonEdgeStart, at(ei))
		}

		for i := 1; i < len(segs); i++ {
			if segs[i].Offset != segs[i-1].End() {
				return fail(ReasonEdgeWalk, at(ei, segs[i-1], segs[i]))
			}
		}

		if segs[len(segs)-1].End() < center {
			return fail(ReasonEdgeCoverage, at(ei))
		}
		walks[ei] = segs
	}

	if corner, ok := cornerGap(walks, center); ok && !lastSizesEqual(walks) {
		return fail(ReasonCornerGap, &Location{Edge: corner, Corner: true})
	}

	return pass()
}

// cornerGap returns the first corner i where edge i overhangs the center by
// exactly one unit and edge i+1 starts with a unit square.
// walks must be sorted, non-empty edge walks.
func cornerGap(walks []Edge, center int) (int, bool) {
	n := len(walks)
	for i, w := range walks {
		overhang := w[len(w)-1].End() - center
		next := walks[(i+1)%n][0].Size
		if overhang == 1 && next == 1 {
			return i, true
		}
	}

	return 0, false
}

// lastSizesEqual reports whether every walk ends with a square of one size.
func lastSizesEqual(walks []Edge) bool {
	want := walks[0][len(walks[0])-1].Size
	for _, w := range walks[1:] {
		if w[len(w)-1].Size != want {
			return false
		}
	}

	return true
}
