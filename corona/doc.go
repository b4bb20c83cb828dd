// Package corona models a square-tiling corona and decides whether it is
// admissible.
//
// 🚀 What is a corona?
//
//	A central square of side Center bordered by four edge walks, kept in
//	cyclic order (top, right, bottom, left). Each walk is a run of squares
//	(Segments) laid end to end along one side of the center: the first square
//	starts at offset 0, every next one starts where the previous ended, and the
//	run must cover at least the whole side (overhang is allowed).
//
// ✨ Key features:
//   - Immutable values: New deep-copies its input, accessors return copies,
//     and nothing here ever sorts caller data in place.
//   - Validate runs a fixed, fail-fast rule list and reports the first
//     violation as data (Result), never as an error or panic.
//   - CanonicalKey reduces the four edges modulo cyclic rotation (no
//     reflection), for equitransitive deduplication.
//
// ⚙️ Validation order:
//
//  1. center > 0
//  2. exactly four edges
//  3. per edge, on a (Offset, Size)-sorted copy:
//     non-empty → legal sizes/offsets → no center-sized square at offset 0 →
//     no equal adjacent sizes → starts at 0 → contiguous → covers the center
//  4. corner rule: a 1×1 corner gap anywhere forces all four last squares to
//     share one size
//
// Every failure carries one of the exported Reason constants; the strings are
// stable and safe to branch on.
//
// Complexity:
//
//   - Validate:     O(S log S) for S segments in total.
//   - CanonicalKey: O(S log S).
package corona
