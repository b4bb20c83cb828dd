// Package enumerate finds every valid corona of a given center size, up to
// cyclic rotation.
//
// 🚀 How it works:
//
//  1. Walks(center) lists the admissible single-edge walks.
//  2. Candidates forms the 4-fold cartesian product of those walks, one
//     choice per edge in cyclic order (edge 3 varies fastest).
//  3. Each candidate is validated with corona.Validate; failures are counted
//     by reason and dropped.
//  4. Survivors are keyed with corona.CanonicalKey; only the first corona per
//     key is kept.
//
// The result keeps first-encountered order. That order is an artifact of the
// search; the set of compact forms is what callers should rely on.
//
// For center 1 and sizes {1,2,3,4} there are 81 candidates, all valid,
// collapsing to 24 unique coronas.
//
// Walk generation is only defined for center 1. Any other center yields
// ErrUnsupportedCenter.
//
// Complexity: O(W⁴) candidates for W walks, each O(S log S) to validate and key.
package enumerate
