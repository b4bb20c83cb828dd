// Package render draws a corona as a PNG image using gogpu/gg's software
// rasterizer: the central square in the middle and every edge square around
// it, colored by size.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/coronas/corona"
)

var (
	// ErrEdgeCount indicates the corona does not have four edges to lay out.
	ErrEdgeCount = errors.New("render: corona must have 4 edges")
	// ErrBadCenter indicates a center size below 1, which has nothing to draw.
	ErrBadCenter = errors.New("render: center must be a positive integer")
	// ErrBadUnit indicates a non-positive Unit or negative Margin.
	ErrBadUnit = errors.New("render: unit must be > 0 and margin >= 0")
	// ErrTooLarge indicates the drawing would exceed MaxPixels.
	ErrTooLarge = errors.New("render: canvas too large")
)

// MaxPixels caps the canvas area (width × height) of a single drawing.
const MaxPixels = 64 << 20

// Options controls the drawing.
type Options struct {
	// Unit is the pixel length of one corona unit.
	Unit float64
	// Margin is the blank border in pixels.
	Margin float64

	Background  gg.RGBA
	CenterColor gg.RGBA
	// Palette maps square sizes to fill colors; missing sizes use Fallback.
	Palette  map[int]gg.RGBA
	Fallback gg.RGBA

	StrokeColor gg.RGBA
	// StrokeWidth of square outlines; 0 disables outlines.
	StrokeWidth float64

	// RequireValid refuses coronas that fail corona.Validate.
	RequireValid bool
	// Validation is used when RequireValid is set.
	Validation corona.Options
}

// DefaultOptions returns a 40px unit, 20px margin, white background and a
// four-color palette for sizes 1..4.
func DefaultOptions() Options {
	return Options{
		Unit:        40,
		Margin:      20,
		Background:  gg.White,
		CenterColor: gg.Hex("#264653"),
		Palette: map[int]gg.RGBA{
			1: gg.Hex("#f4a261"),
			2: gg.Hex("#2a9d8f"),
			3: gg.Hex("#e9c46a"),
			4: gg.Hex("#8ab17d"),
		},
		Fallback:    gg.Hex("#b0b0b0"),
		StrokeColor: gg.Black,
		StrokeWidth: 1.5,
		Validation:  corona.DefaultOptions(),
	}
}

func (o Options) fill(size int) gg.RGBA {
	if col, ok := o.Palette[size]; ok {
		return col
	}

	return o.Fallback
}

// Image draws c and returns the raster.
func Image(c corona.Corona, opts Options) (image.Image, error) {
	dc, err := draw(c, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	return dc.Image(), nil
}

// PNG draws c and writes it to w as PNG.
func PNG(w io.Writer, c corona.Corona, opts Options) error {
	dc, err := draw(c, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.EncodePNG(w)
}

// draw renders c into a fresh context. The caller closes it.
func draw(c corona.Corona, opts Options) (*gg.Context, error) {
	if !(opts.Unit > 0) || !(opts.Margin >= 0) || math.IsInf(opts.Unit, 0) || math.IsInf(opts.Margin, 0) {
		return nil, ErrBadUnit
	}
	if c.Center() < 1 {
		return nil, ErrBadCenter
	}
	if err := checkExtent(c); err != nil {
		return nil, err
	}
	if opts.RequireValid {
		if err := c.Validate(opts.Validation).Err(); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}
	squares, err := Layout(c)
	if err != nil {
		return nil, err
	}
	b := Bounds(squares)

	w, h, err := canvasSize(b, opts)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(opts.Background)

	for _, sq := range squares {
		x := float64(sq.X-b.MinX)*opts.Unit + opts.Margin
		y := float64(sq.Y-b.MinY)*opts.Unit + opts.Margin
		side := float64(sq.Size) * opts.Unit

		col := opts.CenterColor
		if sq.Edge >= 0 {
			col = opts.fill(sq.Size)
		}
		dc.SetColor(col.Color())
		dc.DrawRectangle(x, y, side, side)
		if err := dc.Fill(); err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("render: fill: %w", err)
		}
		if opts.StrokeWidth > 0 {
			dc.SetColor(opts.StrokeColor.Color())
			dc.SetLineWidth(opts.StrokeWidth)
			dc.DrawRectangle(x, y, side, side)
			if err := dc.Stroke(); err != nil {
				_ = dc.Close()
				return nil, fmt.Errorf("render: stroke: %w", err)
			}
		}
	}

	return dc, nil
}

// checkExtent rejects coronas whose sizes or offsets cannot fit in a canvas
// of MaxPixels. It keeps the integer arithmetic of Layout and Bounds from
// overflowing.
func checkExtent(c corona.Corona) error {
	if c.Center() > MaxPixels {
		return fmt.Errorf("%w: center %d", ErrTooLarge, c.Center())
	}
	for ei, e := range c.Edges() {
		for _, s := range e {
			if s.Size > MaxPixels || s.Offset > MaxPixels || s.Offset < -MaxPixels {
				return fmt.Errorf("%w: edge %d square %s", ErrTooLarge, ei, s)
			}
		}
	}

	return nil
}

// canvasSize converts bounds to pixel dimensions, refusing empty canvases
// and areas above MaxPixels.
func canvasSize(b Rect, opts Options) (int, int, error) {
	fw := float64(b.Dx())*opts.Unit + 2*opts.Margin
	fh := float64(b.Dy())*opts.Unit + 2*opts.Margin
	if fw < 1 || fh < 1 || fw*fh > MaxPixels {
		return 0, 0, fmt.Errorf("%w: %.0f x %.0f px", ErrTooLarge, fw, fh)
	}

	return int(fw), int(fh), nil
}

// SavePNG draws c into the PNG file at path, creating parent directories.
// Nothing is written when drawing fails.
func SavePNG(path string, c corona.Corona, opts Options) error {
	dc, err := draw(c, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create: %w", err)
	}
	if err := dc.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: encode: %w", err)
	}

	return f.Close()
}
