// SPDX-License-Identifier: MIT
// Package: compact
//
// compact.go — Format/Parse for the one-line corona notation.

package compact

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/coronas/corona"
)

var (
	// ErrPartCount indicates the text does not split into a center and four edges.
	ErrPartCount = errors.New("compact: expected center + 4 edges")
	// ErrBadCenter indicates the center field is not an integer.
	ErrBadCenter = errors.New("compact: center is not an integer")
	// ErrBadToken indicates a segment token does not match size^offset.
	ErrBadToken = errors.New("compact: bad segment token")
)

const (
	partSep    = "|"
	segmentSep = ","
)

var tokenPattern = regexp.MustCompile(`^(\d+)\^(-?\d+)$`)

// Format writes c in compact notation with each edge sorted by (offset, size).
func Format(c corona.Corona) string {
	parts := make([]string, 0, c.NumEdges()+1)
	parts = append(parts, strconv.Itoa(c.Center()))
	for _, e := range c.Edges() {
		parts = append(parts, FormatEdge(e))
	}

	return strings.Join(parts, partSep)
}

// FormatEdge writes one edge as sorted "size^offset" tokens.
func FormatEdge(e corona.Edge) string {
	sorted := e.Sorted()
	tokens := make([]string, len(sorted))
	for i, s := range sorted {
		tokens[i] = strconv.Itoa(s.Size) + "^" + strconv.Itoa(s.Offset)
	}

	return strings.Join(tokens, segmentSep)
}

// Parse reads a corona from compact notation. Spaces anywhere are ignored.
// Errors wrap ErrPartCount, ErrBadCenter or ErrBadToken.
func Parse(s string) (corona.Corona, error) {
	text := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	parts := strings.Split(text, partSep)
	if len(parts) != corona.NumEdges+1 {
		return corona.Corona{}, fmt.Errorf("%w: got %d parts in %q", ErrPartCount, len(parts), s)
	}

	center, err := strconv.Atoi(parts[0])
	if err != nil {
		return corona.Corona{}, fmt.Errorf("%w: %q", ErrBadCenter, parts[0])
	}

	edges := make([]corona.Edge, 0, corona.NumEdges)
	for _, edgeText := range parts[1:] {
		e, err := ParseEdge(edgeText)
		if err != nil {
			return corona.Corona{}, err
		}
		edges = append(edges, e)
	}

	return corona.New(center, edges...), nil
}

// ParseEdge reads one comma-separated edge. The token order is kept as written.
func ParseEdge(s string) (corona.Edge, error) {
	tokens := strings.Split(s, segmentSep)
	e := make(corona.Edge, 0, len(tokens))
	for _, tok := range tokens {
		m := tokenPattern.FindStringSubmatch(tok)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
		}
		size, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadToken, tok, err)
		}
		offset, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadToken, tok, err)
		}
		e = append(e, corona.Segment{Size: size, Offset: offset})
	}

	return e, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) corona.Corona {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return c
}
