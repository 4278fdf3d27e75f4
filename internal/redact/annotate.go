package redact

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Annotate returns a copy of img with each detected region outlined, one
// distinct color per phrase. It is a diagnostic aid for tuning confidence
// thresholds and preprocessing modes; the blur output never depends on it.
func Annotate(img image.Image, regions map[string][]image.Rectangle) *image.NRGBA {
	out := imaging.Clone(img)
	bounds := out.Bounds()

	phrases := sortedPhrases(regions)
	palette := colorful.FastHappyPalette(len(phrases))

	for i, phrase := range phrases {
		r, g, b := palette[i].RGB255()
		outline := color.NRGBA{R: r, G: g, B: b, A: 255}
		for _, box := range regions[phrase] {
			drawOutline(out, box.Intersect(bounds), outline)
		}
	}

	return out
}

// drawOutline draws a one-pixel rectangle border.
func drawOutline(img *image.NRGBA, box image.Rectangle, c color.NRGBA) {
	if box.Empty() {
		return
	}
	for x := box.Min.X; x < box.Max.X; x++ {
		img.SetNRGBA(x, box.Min.Y, c)
		img.SetNRGBA(x, box.Max.Y-1, c)
	}
	for y := box.Min.Y; y < box.Max.Y; y++ {
		img.SetNRGBA(box.Min.X, y, c)
		img.SetNRGBA(box.Max.X-1, y, c)
	}
}
