package render

import "github.com/katalvlaran/coronas/corona"

// Square is one placed square in corona units, y pointing down, with the
// central square occupying [0,Center]×[0,Center].
// Edge is -1 for the central square.
type Square struct {
	X, Y  int
	Size  int
	Edge  int
	Index int
}

// Rect is an axis-aligned box in corona units.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.MaxX - r.MinX }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.MaxY - r.MinY }

// Layout places the center and every edge square. Edges run clockwise:
// edge 0 left-to-right along the top, edge 1 top-to-bottom down the right,
// edge 2 right-to-left along the bottom, edge 3 bottom-to-top up the left.
// Each walk is placed in sorted order; squares sit outside the center and
// touch it. c must have corona.NumEdges edges.
func Layout(c corona.Corona) ([]Square, error) {
	if c.NumEdges() != corona.NumEdges {
		return nil, ErrEdgeCount
	}
	n := c.Center()
	squares := []Square{{X: 0, Y: 0, Size: n, Edge: -1}}
	for ei, e := range c.Edges() {
		for i, s := range e.Sorted() {
			sq := Square{Size: s.Size, Edge: ei, Index: i}
			switch ei {
			case 0:
				sq.X, sq.Y = s.Offset, -s.Size
			case 1:
				sq.X, sq.Y = n, s.Offset
			case 2:
				sq.X, sq.Y = n-s.Offset-s.Size, n
			case 3:
				sq.X, sq.Y = -s.Size, n-s.Offset-s.Size
			}
			squares = append(squares, sq)
		}
	}

	return squares, nil
}

// Bounds returns the smallest Rect containing every square.
func Bounds(squares []Square) Rect {
	if len(squares) == 0 {
		return Rect{}
	}
	r := Rect{MinX: squares[0].X, MinY: squares[0].Y, MaxX: squares[0].X + squares[0].Size, MaxY: squares[0].Y + squares[0].Size}
	for _, sq := range squares[1:] {
		r.MinX = min(r.MinX, sq.X)
		r.MinY = min(r.MinY, sq.Y)
		r.MaxX = max(r.MaxX, sq.X+sq.Size)
		r.MaxY = max(r.MaxY, sq.Y+sq.Size)
	}

	return r
}
