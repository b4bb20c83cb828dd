// SPDX-License-Identifier: MIT
// Package: corona
//
// corona.go — the Corona aggregate: construction, accessors, symmetry helpers.

package corona

import "slices"

// Corona is a central square of side Center plus its edge walks in cyclic
// order (top, right, bottom, left): edge i is followed by edge (i+1) mod 4.
//
// A Corona is immutable. New deep-copies its input and every accessor hands
// out copies, so the same value can be validated, keyed and rendered
// independently.
type Corona struct {
	center int
	edges  []Edge
}

// New builds a Corona from a center size and its edges.
// It never fails: malformed data (wrong edge count, bad walks) is reported by
// Validate instead. The segment slices are copied, so callers may reuse them.
func New(center int, edges ...Edge) Corona {
	c := Corona{center: center, edges: make([]Edge, len(edges))}
	for i, e := range edges {
		c.edges[i] = e.Clone()
	}

	return c
}

// Center returns the side length of the central square.
func (c Corona) Center() int { return c.center }

// NumEdges returns how many edges the corona holds (4 for any valid corona).
func (c Corona) NumEdges() int { return len(c.edges) }

// Edge returns a copy of edge i in stored order.
// It panics if i is out of range, like a slice index.
func (c Corona) Edge(i int) Edge { return c.edges[i].Clone() }

// Edges returns copies of all edges in stored order.
func (c Corona) Edges() []Edge {
	out := make([]Edge, len(c.edges))
	for i, e := range c.edges {
		out[i] = e.Clone()
	}

	return out
}

// Rotate returns the corona whose edge i is this corona's edge (i+k) mod n.
// k may be negative. Rotating by any k leaves CanonicalKey unchanged.
func (c Corona) Rotate(k int) Corona {
	return New(c.center, rotate(c.edges, k)...)
}

// Reflect returns the corona with its cyclic edge order reversed
// (edge 0 stays in place, edges 1 and 3 swap). Walk contents are kept as is.
// Reflection is not a symmetry of CanonicalKey.
func (c Corona) Reflect() Corona {
	n := len(c.edges)
	out := make([]Edge, n)
	for i := range c.edges {
		out[i] = c.edges[(n-i)%n]
	}

	return New(c.center, out...)
}

// Equal reports whether both coronas have the same center and the same
// edges, comparing each edge as a sorted walk.
func (c Corona) Equal(other Corona) bool {
	if c.center != other.center || len(c.edges) != len(other.edges) {
		return false
	}
	for i := range c.edges {
		if !slices.Equal(c.edges[i].Sorted(), other.edges[i].Sorted()) {
			return false
		}
	}

	return true
}

// Validate checks c against the rule set with the given options.
// See the package-level Validate.
func (c Corona) Validate(opts Options) Result {
	return Validate(c, opts)
}

// CanonicalKey returns the rotation-invariant key of c's edges.
// See the package-level CanonicalKey.
func (c Corona) CanonicalKey() Key {
	return CanonicalKey(c.edges)
}

// rotate returns a new slice holding edges rotated left by k. The edges
// themselves are shared; callers that keep the result must copy them.
func rotate(edges []Edge, k int) []Edge {
	n := len(edges)
	if n == 0 {
		return nil
	}
	k = ((k % n) + n) % n

	out := make([]Edge, 0, n)
	out = append(out, edges[k:]...)

	return append(out, edges[:k]...)
}
