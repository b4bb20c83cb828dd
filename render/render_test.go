package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/katalvlaran/coronas/compact"
	"github.com/katalvlaran/coronas/corona"
	"github.com/katalvlaran/coronas/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Layout
//----------------------------------------------------------------------------//

// TestLayout_Pinwheel checks square placement for a uniform overhanging corona.
func TestLayout_Pinwheel(t *testing.T) {
	squares, err := render.Layout(compact.MustParse("2|3^0|3^0|3^0|3^0"))
	require.NoError(t, err)
	assert.Equal(t, []render.Square{
		{X: 0, Y: 0, Size: 2, Edge: -1},
		{X: 0, Y: -3, Size: 3, Edge: 0},
		{X: 2, Y: 0, Size: 3, Edge: 1},
		{X: -1, Y: 2, Size: 3, Edge: 2},
		{X: -3, Y: -1, Size: 3, Edge: 3},
	}, squares)
	assert.Equal(t, render.Rect{MinX: -3, MinY: -3, MaxX: 5, MaxY: 5}, render.Bounds(squares))
}

// TestLayout_MultiSegment checks walks are placed in sorted order.
func TestLayout_MultiSegment(t *testing.T) {
	squares, err := render.Layout(compact.MustParse("2|2^1,1^0|1^0,2^1|1^0,2^1|1^0,2^1"))
	require.NoError(t, err)
	require.Len(t, squares, 9)
	assert.Equal(t, render.Square{X: 0, Y: -1, Size: 1, Edge: 0, Index: 0}, squares[1])
	assert.Equal(t, render.Square{X: 1, Y: -2, Size: 2, Edge: 0, Index: 1}, squares[2])
	assert.Equal(t, render.Square{X: 2, Y: 1, Size: 2, Edge: 1, Index: 1}, squares[4])
	assert.Equal(t, render.Square{X: 1, Y: 2, Size: 1, Edge: 2, Index: 0}, squares[5])
	assert.Equal(t, render.Square{X: -1, Y: 1, Size: 1, Edge: 3, Index: 0}, squares[7])
	assert.Equal(t, render.Square{X: -2, Y: -1, Size: 2, Edge: 3, Index: 1}, squares[8])
}

// TestLayout_EdgeCount checks coronas without four edges are refused.
func TestLayout_EdgeCount(t *testing.T) {
	_, err := render.Layout(corona.New(1, corona.Edge{{Size: 2}}))
	assert.ErrorIs(t, err, render.ErrEdgeCount)
	assert.Equal(t, render.Rect{}, render.Bounds(nil))
}

//----------------------------------------------------------------------------//
// Raster output
//----------------------------------------------------------------------------//

// near reports whether the pixel at (x,y) matches want within a small tolerance.
func near(t *testing.T, img image.Image, x, y int, want gg.RGBA) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	exp := want.Color().(color.NRGBA)
	diff := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	assert.LessOrEqual(t, diff(got.R, exp.R), 2, "R at (%d,%d)", x, y)
	assert.LessOrEqual(t, diff(got.G, exp.G), 2, "G at (%d,%d)", x, y)
	assert.LessOrEqual(t, diff(got.B, exp.B), 2, "B at (%d,%d)", x, y)
}

// TestImage_Colors probes the background, the center and one edge square.
func TestImage_Colors(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Unit = 10
	opts.Margin = 5
	opts.StrokeWidth = 0

	img, err := render.Image(compact.MustParse("2|3^0|3^0|3^0|3^0"), opts)
	require.NoError(t, err)
	assert.Equal(t, 90, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())

	near(t, img, 1, 1, opts.Background)
	near(t, img, 45, 45, opts.CenterColor)
	near(t, img, 50, 20, opts.Palette[3])
}

// TestPNG_Decodes checks the encoded stream and file output.
func TestPNG_Decodes(t *testing.T) {
	c := compact.MustParse("1|2^0|3^0|4^0|2^0")
	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, c, render.DefaultOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())

	path := filepath.Join(t.TempDir(), "png", "c.png")
	require.NoError(t, render.SavePNG(path, c, render.DefaultOptions()))
}

// TestImage_Errors checks option and input guards.
func TestImage_Errors(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Unit = 0
	_, err := render.Image(compact.MustParse("1|2^0|2^0|2^0|2^0"), opts)
	assert.ErrorIs(t, err, render.ErrBadUnit)

	_, err = render.Image(compact.MustParse("0|2^0|2^0|2^0|2^0"), render.DefaultOptions())
	assert.ErrorIs(t, err, render.ErrBadCenter)

	opts = render.DefaultOptions()
	opts.RequireValid = true
	_, err = render.Image(compact.MustParse("2|2^0|2^0|2^0|2^0"), opts)
	assert.ErrorIs(t, err, corona.ErrInvalid)

	opts.RequireValid = false
	_, err = render.Image(compact.MustParse("2|2^0|2^0|2^0|2^0"), opts)
	assert.NoError(t, err, "invalid coronas render unless RequireValid is set")
}

// TestImage_TooLarge checks oversized canvases are refused before allocation.
func TestImage_TooLarge(t *testing.T) {
	cases := []struct {
		name string
		text string
		unit float64
	}{
		{"HugeOffset", "1|2^0|2^0|2^0|2^5000000", 40},
		{"HugeSize", "1|2^0|2^0|2^0|9000000000^0", 40},
		{"NegativeOffset", "1|2^0|2^0|2^0|2^-9223372036854775807", 40},
		{"HugeCenter", "100000000|2^0|2^0|2^0|2^0", 1},
		{"HugeUnit", "1|2^0|2^0|2^0|2^0", 1e6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := render.DefaultOptions()
			opts.Unit = tc.unit
			_, err := render.Image(compact.MustParse(tc.text), opts)
			assert.ErrorIs(t, err, render.ErrTooLarge)
		})
	}

	path := filepath.Join(t.TempDir(), "huge.png")
	err := render.SavePNG(path, compact.MustParse("1|2^0|2^0|2^0|2^5000000"), render.DefaultOptions())
	assert.ErrorIs(t, err, render.ErrTooLarge)
	assert.NoFileExists(t, path)

	opts := render.DefaultOptions()
	opts.Unit = math.NaN()
	_, err = render.Image(compact.MustParse("1|2^0|2^0|2^0|2^0"), opts)
	assert.ErrorIs(t, err, render.ErrBadUnit)

	opts = render.DefaultOptions()
	opts.Unit = math.Inf(1)
	_, err = render.Image(compact.MustParse("1|2^0|2^0|2^0|2^0"), opts)
	assert.ErrorIs(t, err, render.ErrBadUnit)
}
