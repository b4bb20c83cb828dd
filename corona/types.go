// SPDX-License-Identifier: MIT
// Package: corona
//
// types.go — value types (Segment, Edge, Location, Result) and options.

package corona

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// NumEdges is the number of edge walks around the center, in cyclic order.
const NumEdges = 4

// Segment is one square of side Size, placed at Offset along its edge.
type Segment struct {
	Size   int
	Offset int
}

// End returns the offset just past the square.
func (s Segment) End() int { return s.Offset + s.Size }

// String renders the segment as "size^offset".
func (s Segment) String() string { return fmt.Sprintf("%d^%d", s.Size, s.Offset) }

// compareSegments orders segments by (Offset, Size) ascending.
func compareSegments(a, b Segment) int {
	if c := cmp.Compare(a.Offset, b.Offset); c != 0 {
		return c
	}

	return cmp.Compare(a.Size, b.Size)
}

// Edge is an edge walk: the squares laid along one side of the center.
// The stored order is whatever the caller supplied; use Sorted for walk order.
type Edge []Segment

// Clone returns an independent copy of e (nil stays nil).
func (e Edge) Clone() Edge {
	if e == nil {
		return nil
	}

	return slices.Clone(e)
}

// Sorted returns a new Edge ordered by (Offset, Size). The receiver is untouched.
func (e Edge) Sorted() Edge {
	out := e.Clone()
	slices.SortFunc(out, compareSegments)

	return out
}

// Length returns the end of the furthest square, i.e. the total walk length
// for a well-formed walk. An empty edge has length 0.
func (e Edge) Length() int {
	end := 0
	for _, s := range e {
		end = max(end, s.End())
	}

	return end
}

// String renders the sorted walk as comma-separated "size^offset" tokens.
func (e Edge) String() string {
	sorted := e.Sorted()
	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = s.String()
	}

	return strings.Join(parts, ",")
}

// Options configures Validate.
type Options struct {
	// AllowedSizes lists the square sizes an edge may use. Empty means
	// DefaultAllowedSizes.
	AllowedSizes []int
}

// DefaultAllowedSizes is the size set used when none is configured.
var DefaultAllowedSizes = []int{1, 2, 3, 4}

// DefaultOptions returns Options with AllowedSizes = {1,2,3,4}.
func DefaultOptions() Options {
	return Options{AllowedSizes: slices.Clone(DefaultAllowedSizes)}
}

func (o Options) allowed() []int {
	if len(o.AllowedSizes) == 0 {
		return DefaultAllowedSizes
	}

	return o.AllowedSizes
}

// Location points at the part of a corona that failed validation.
//
// For edge-local failures Edge is the edge index and Segments holds the
// offending square(s): one for size/offset/alignment failures, two for
// adjacency and walk failures, none for whole-edge failures.
// For the corner rule Corner is true and Edge is the index i of the first
// corner (between edge i and edge i+1) that shows a 1×1 gap.
type Location struct {
	Edge     int
	Corner   bool
	Segments []Segment
}

// String renders the location for messages.
func (l Location) String() string {
	kind := "edge"
	if l.Corner {
		kind = "corner"
	}
	if len(l.Segments) == 0 {
		return fmt.Sprintf("%s %d", kind, l.Edge)
	}

	return fmt.Sprintf("%s %d at %s", kind, l.Edge, Edge(l.Segments))
}
