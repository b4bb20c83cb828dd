// SPDX-License-Identifier: MIT
// Package: corona
//
// canonical.go — rotation-only canonical keys for deduplication.

package corona

import "strings"

// Key is a canonical, comparable corona signature. Two coronas whose edges
// differ only by a cyclic rotation have equal keys; mirror images generally
// do not. Keys are safe to use as map keys and to store.
type Key string

// edgeSeparator joins per-edge signatures inside a Key.
const edgeSeparator = "|"

// EdgeSignature normalizes a walk to its sorted "size^offset,..." form.
func EdgeSignature(e Edge) string {
	return e.String()
}

// CanonicalKey returns the lexicographically smallest of the rotation
// candidates of edges, where a candidate is the per-edge signatures of one
// cyclic rotation joined by "|".
//
// The key is meant for validated coronas but is total: it is defined for any
// number of edges, including zero.
// Complexity: O(n·S log S) for n edges and S segments in total.
func CanonicalKey(edges []Edge) Key {
	n := len(edges)
	sigs := make([]string, n)
	for i, e := range edges {
		sigs[i] = EdgeSignature(e)
	}

	var best string
	rotated := make([]string, n)
	for k := 0; k < max(n, 1); k++ {
		for i := 0; i < n; i++ {
			rotated[i] = sigs[(i+k)%n]
		}
		candidate := strings.Join(rotated, edgeSeparator)
		if k == 0 || candidate < best {
			best = candidate
		}
	}

	return Key(best)
}
