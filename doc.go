// Package coronas enumerates and validates square-tiling "coronas": the ring
// of squares that borders a central square on all four sides.
//
// 🚀 What is a corona?
//
//	A central square of side c, plus four edge walks (top, right, bottom,
//	left). Each walk is a gap-free run of squares laid along one side of the
//	center, starting flush with its corner and possibly overshooting it.
//
// ✨ What lives where:
//
//	corona/    — Segment, Edge, Corona; Validate (unilateral + corner rules);
//	             CanonicalKey (rotation-only symmetry reduction)
//	compact/   — "<center>|<edge0>|<edge1>|<edge2>|<edge3>" text codec
//	enumerate/ — exhaustive search for every unique valid corona of a center
//	persist/   — JSON run documents (center, count, timestamp, compact forms)
//	store/     — SQLite run catalogue with embedded migrations
//	render/    — PNG drawings of a corona
//
// By default the library is silent; call SetLogger to see what enumeration
// and storage are doing.
//
//	go install github.com/katalvlaran/coronas/cmd/coronas@latest
package coronas
