package redact

import (
	"image"
	"log"
	"sort"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// NormalizeStrength forces a blur kernel size to be odd. Even inputs are
// incremented to the next odd value; odd inputs pass through. Gaussian
// kernels need a center pixel, and callers should not have to care.
func NormalizeStrength(strength int) int {
	if strength%2 == 0 {
		strength++
	}
	return strength
}

// Apply returns a copy of img with every detected region Gaussian-blurred.
//
// Each region is clipped to the image bounds; regions with no area left
// after clipping are skipped. The blur uses a square kernel of
// strength x strength pixels - callers must pass an odd strength
// (see NormalizeStrength). Phrases are processed in sorted order so output
// is deterministic when regions of different phrases overlap.
func Apply(img image.Image, regions map[string][]image.Rectangle, strength int) *image.NRGBA {
	out := imaging.Clone(img)
	bounds := out.Bounds()
	radius := float64(strength / 2)

	for _, phrase := range sortedPhrases(regions) {
		for _, box := range regions[phrase] {
			clipped := box.Intersect(bounds)
			if clipped.Empty() {
				continue
			}
			blurred := blur.Gaussian(imaging.Crop(out, clipped), radius)
			out = imaging.Paste(out, blurred, clipped.Min)
			log.Printf("blurred region for %q at (%d, %d, %d, %d)",
				phrase, clipped.Min.X, clipped.Min.Y, clipped.Dx(), clipped.Dy())
		}
	}

	return out
}

func sortedPhrases(regions map[string][]image.Rectangle) []string {
	phrases := make([]string, 0, len(regions))
	for phrase := range regions {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)
	return phrases
}
