package detection

import (
	"image"

	"github.com/disintegration/imaging"
)

// Preprocessing modes accepted by Preprocess and Detect.
const (
	// ModeDefault tries only the original image and its grayscale
	// conversion.
	ModeDefault = "default"

	// ModeAggressive adds contrast enhancement, binarization, sharpening
	// and denoising variants derived from the grayscale image.
	ModeAggressive = "aggressive"

	// ModeAll is an alias for ModeAggressive.
	ModeAll = "all"
)

// ImageOps is the set of image processing primitives the preprocessor
// needs. Implementations must return new images and leave inputs untouched.
type ImageOps interface {
	Grayscale(img image.Image) image.Image
	EnhanceContrast(img image.Image) image.Image
	BinarizeOtsu(img image.Image) image.Image
	BinarizeAdaptive(img image.Image) image.Image
	Sharpen(img image.Image) image.Image
	Denoise(img image.Image) image.Image
}

// Variant is one preprocessed rendering of the source image. The name
// identifies the transform in warning and debug output.
type Variant struct {
	Name  string
	Image image.Image
}

// Preprocess renders the source image into the set of variants the OCR
// sweep will run over. The input image is never modified.
//
// ModeDefault produces two variants: a copy of the original and a grayscale
// conversion. ModeAggressive and ModeAll add five more, each derived
// independently from the grayscale image: local contrast enhancement, Otsu
// binarization, adaptive binarization, sharpening, and denoising.
//
// An unrecognized mode silently falls back to ModeDefault; degraded recall
// beats a failed run.
//
// The slice order fixes the sweep's iteration order, which only affects
// which duplicate hit is logged first.
func Preprocess(img image.Image, mode string, ops ImageOps) []Variant {
	gray := ops.Grayscale(img)

	variants := []Variant{
		{Name: "original", Image: imaging.Clone(img)},
		{Name: "grayscale", Image: gray},
	}

	if mode != ModeAggressive && mode != ModeAll {
		return variants
	}

	return append(variants,
		Variant{Name: "contrast", Image: ops.EnhanceContrast(gray)},
		Variant{Name: "otsu", Image: ops.BinarizeOtsu(gray)},
		Variant{Name: "adaptive", Image: ops.BinarizeAdaptive(gray)},
		Variant{Name: "sharpen", Image: ops.Sharpen(gray)},
		Variant{Name: "denoise", Image: ops.Denoise(gray)},
	)
}
