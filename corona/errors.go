// SPDX-License-Identifier: MIT
// Package: corona
//
// errors.go — reason codes and error types.
//
// Validation failures are data: Validate returns a Result carrying one of the
// Reason constants below. Result.Err converts a failing Result into an error
// for callers that want errors.Is(err, ErrInvalid).

package corona

import (
	"errors"
	"fmt"
)

// Reason identifies which validation rule rejected a corona. The string values
// are part of the public contract and never change.
type Reason string

const (
	// ReasonNone is the zero Reason carried by passing results.
	ReasonNone Reason = ""
	// ReasonCenter: the center size is not a positive integer.
	ReasonCenter Reason = "center must be a positive integer"
	// ReasonEdgeCount: the corona does not have exactly four edges.
	ReasonEdgeCount Reason = "edges must have length 4"
	// ReasonEdgeEmpty: an edge has no squares.
	ReasonEdgeEmpty Reason = "edge empty"
	// ReasonSegmentSize: a square size is not positive or not allowed.
	ReasonSegmentSize Reason = "invalid segment size"
	// ReasonOffsetRange: a square offset lies outside [0, center].
	ReasonOffsetRange Reason = "offset out of range"
	// ReasonCenterAligned: a center-sized square sits flush at offset 0.
	ReasonCenterAligned Reason = "not unilateral (center-sized aligned)"
	// ReasonEqualAdjacent: two consecutive squares on an edge share a size.
	ReasonEqualAdjacent Reason = "not unilateral (equal adjacent sizes)"
	// ReasonEdgeStart: the lowest square does not start at offset 0.
	ReasonEdgeStart Reason = "edge does not start at 0"
	// ReasonEdgeWalk: consecutive squares leave a gap or overlap.
	ReasonEdgeWalk Reason = "invalid edge walk"
	// ReasonEdgeCoverage: the walk ends before the center's length.
	ReasonEdgeCoverage Reason = "edge does not reach center length"
	// ReasonCornerGap: a 1×1 corner gap exists while the last squares of the
	// four edges differ in size.
	ReasonCornerGap Reason = "1x1 corner gap with asymmetric edges"
)

// Reasons lists every failure reason in rule order.
var Reasons = []Reason{
	ReasonCenter,
	ReasonEdgeCount,
	ReasonEdgeEmpty,
	ReasonSegmentSize,
	ReasonOffsetRange,
	ReasonCenterAligned,
	ReasonEqualAdjacent,
	ReasonEdgeStart,
	ReasonEdgeWalk,
	ReasonEdgeCoverage,
	ReasonCornerGap,
}

// ErrInvalid is the sentinel every *ValidationError unwraps to.
var ErrInvalid = errors.New("corona: invalid corona")

// ValidationError is the error form of a failing Result.
type ValidationError struct {
	Reason Reason
	Where  *Location
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Where == nil {
		return fmt.Sprintf("corona: %s", e.Reason)
	}

	return fmt.Sprintf("corona: %s (%s)", e.Reason, e.Where)
}

// Unwrap lets errors.Is(err, ErrInvalid) match.
func (e *ValidationError) Unwrap() error { return ErrInvalid }
