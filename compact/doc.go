// Package compact reads and writes the one-line corona notation
//
//	<center>|<edge0>|<edge1>|<edge2>|<edge3>
//
// where every edge is a comma-separated list of "size^offset" tokens, e.g.
//
//	2|1^0,2^1|1^0,2^1|1^0,2^1|1^0,2^1
//
// Format always writes segments sorted by (offset, size). Parse is lenient
// about whitespace and segment order but strict about shape: exactly five
// '|'-separated parts, an integer center, and tokens matching
// integer^integer (the offset may be negative). Parse never validates; run
// corona.Validate on the result.
//
// Round trip:
//
//	Parse(Format(c)) equals c edge by edge (as sorted walks), and
//	Format(Parse(s)) == s whenever s was itself written by Format.
package compact
