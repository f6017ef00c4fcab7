// Package render draws the habitat index grid as a PNG heatmap.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/mazishark/mazishark/dataset"
)

// viridis control points, interpolated linearly for values in [0, 1].
var viridisStops = []struct {
	v       float64
	r, g, b uint8
}{
	{0.00, 68, 1, 84},
	{0.25, 59, 82, 139},
	{0.50, 33, 145, 140},
	{0.75, 94, 201, 98},
	{1.00, 253, 231, 37},
}

// colorFor maps a habitat index value to a viridis color. Values are clamped
// to [0, 1].
func colorFor(v float64) color.NRGBA {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	for i := 1; i < len(viridisStops); i++ {
		hi := viridisStops[i]
		if v > hi.v {
			continue
		}
		lo := viridisStops[i-1]
		t := (v - lo.v) / (hi.v - lo.v)
		return color.NRGBA{
			R: lerp(lo.r, hi.r, t),
			G: lerp(lo.g, hi.g, t),
			B: lerp(lo.b, hi.b, t),
			A: 255,
		}
	}
	last := viridisStops[len(viridisStops)-1]
	return color.NRGBA{R: last.r, G: last.g, B: last.b, A: 255}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Heatmap renders the grid with one scale×scale block per cell. Missing cells
// are transparent. Rows are flipped so the first latitude sits at the bottom,
// as on a map with latitude increasing northward.
func Heatmap(g *dataset.Grid, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	rows, cols := len(g.Lat), len(g.Lon)
	img := image.NewNRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	for i := 0; i < rows; i++ {
		y0 := (rows - 1 - i) * scale
		for j := 0; j < cols; j++ {
			v := g.H[i][j]
			var c color.NRGBA
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				c = colorFor(v)
			}
			x0 := j * scale
			for y := y0; y < y0+scale; y++ {
				for x := x0; x < x0+scale; x++ {
					img.SetNRGBA(x, y, c)
				}
			}
		}
	}
	return img
}

// EncodePNG writes the image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
