// ABOUTME: Waveform rasterization
// ABOUTME: Pure pixel rendering of a snapshot, deterministic for identical input
package ui

import (
	"image"
	"image/color"
	"math"
)

const strokeWidth = 3

var strokeColor = color.RGBA{R: 0xff, A: 0xff}

// renderWaveform draws the snapshot as a red waveform silhouette on a
// transparent background. For each stride position it emits a vertical
// excursion around the midline: a stroke from the previous sample's height
// to +sample and one to -sample. An empty snapshot yields a blank image.
func renderWaveform(samples []float32, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	n := len(samples)
	if n == 0 || w <= 0 || h <= 0 {
		return img
	}

	// One vertex per pixel column, approximately.
	step := n / w
	if step < 1 {
		step = 1
	}

	fn := float64(n)
	fw := float64(w)
	fh := float64(h)

	prev := samples[0]
	for i := 0; i < n; i += step {
		item := samples[i]
		fi := float64(i)

		x1 := fi / fn * fw
		y1 := float64(prev)*fh/2 + fh/2
		x2 := (fi + 1) / fn * fw

		strokeLine(img, x1, y1, x2, float64(item)*fh/2+fh/2)
		strokeLine(img, x1, y1, x2, float64(-item)*fh/2+fh/2)

		prev = item
	}

	return img
}

// strokeLine rasterizes a 3px-wide segment between two points with a simple
// DDA walk and a square brush. Exact curve topology is illustrative, not a
// contract; it only has to convey amplitude over time.
func strokeLine(img *image.RGBA, x1, y1, x2, y2 float64) {
	dx := x2 - x1
	dy := y2 - y1

	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		plot(img, int(x1+t*dx+0.5), int(y1+t*dy+0.5))
	}
}

// plot stamps a strokeWidth-sized square brush centered on (x, y), clipped
// to the image bounds.
func plot(img *image.RGBA, x, y int) {
	const r = strokeWidth / 2
	bounds := img.Bounds()
	for by := y - r; by <= y+r; by++ {
		for bx := x - r; bx <= x+r; bx++ {
			if bx >= bounds.Min.X && bx < bounds.Max.X && by >= bounds.Min.Y && by < bounds.Max.Y {
				img.SetRGBA(bx, by, strokeColor)
			}
		}
	}
}
