package redact

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ironsheep/text-blur/internal/detection"
	"github.com/ironsheep/text-blur/internal/imaging"
)

// Options configures a find-and-blur run.
type Options struct {
	// ImagePath is the source image file. Required.
	ImagePath string

	// Phrases are the text strings to find and blur. Required.
	Phrases []string

	// OutputPath is where the blurred image is written. Empty derives
	// <name>_blurred<ext> next to the source.
	OutputPath string

	// Mode selects the preprocessing variants (detection.ModeDefault,
	// ModeAggressive or ModeAll). Unrecognized values degrade to default.
	Mode string

	// MinConfidence drops OCR hits below this score (0-100). Zero keeps
	// everything.
	MinConfidence float64

	// BlurStrength is the Gaussian kernel size. Even values are
	// incremented to the next odd number.
	BlurStrength int

	// JPEGQuality is the encoder quality for JPEG output; out-of-range
	// values use the codec default.
	JPEGQuality int

	// Debug additionally writes a <name>_regions<ext> image outlining the
	// detected regions.
	Debug bool
}

// Run finds every occurrence of the target phrases in the source image and
// writes a copy with those regions blurred.
//
// The returned path is where output was (or would have been) written. When
// no phrase matches anywhere, Run writes nothing and returns the path with
// a nil error: an image that never contained the text needs no redaction.
// An unreadable source image is the only fatal input error.
func Run(ctx context.Context, rec detection.Recognizer, opts Options) (string, error) {
	if len(opts.Phrases) == 0 {
		return "", fmt.Errorf("no phrases given")
	}

	strength := NormalizeStrength(opts.BlurStrength)

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = derivedPath(opts.ImagePath, "_blurred")
	}

	img, err := imaging.Load(opts.ImagePath)
	if err != nil {
		return "", fmt.Errorf("could not read image at %s: %w", opts.ImagePath, err)
	}

	log.Printf("processing image: %s", opts.ImagePath)
	log.Printf("searching for text: %s", strings.Join(opts.Phrases, ", "))

	regions, err := detection.Detect(ctx, rec, imaging.Ops{}, img, opts.Phrases, opts.Mode, opts.MinConfidence)
	if err != nil {
		return "", err
	}

	if len(regions) == 0 {
		log.Printf("no matching text found to blur")
		return outPath, nil
	}

	if opts.Debug {
		debugPath := derivedPath(opts.ImagePath, "_regions")
		if err := imaging.Save(Annotate(img, regions), debugPath, opts.JPEGQuality); err != nil {
			log.Printf("warning: could not write region overlay: %v", err)
		} else {
			log.Printf("saved region overlay to %s", debugPath)
		}
	}

	output := Apply(img, regions, strength)

	if err := imaging.Save(output, outPath, opts.JPEGQuality); err != nil {
		return "", fmt.Errorf("could not save blurred image to %s: %w", outPath, err)
	}
	log.Printf("saved blurred image to %s", outPath)

	return outPath, nil
}

// derivedPath inserts a suffix between an image path's base name and
// extension: photo.png -> photo_blurred.png.
func derivedPath(imagePath, suffix string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + suffix + ext
}
