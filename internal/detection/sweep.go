package detection

import (
	"context"
	"image"
	"log"
)

// Word is a single OCR-recognized token with its confidence score (0-100)
// and bounding box in the coordinate space of the variant that produced it.
type Word struct {
	Text       string
	Confidence float64
	Box        image.Rectangle
}

// Config selects a text segmentation strategy for one OCR invocation. PSM
// is a Tesseract page segmentation mode number; the Recognizer decides how
// to interpret it.
type Config struct {
	Name string
	PSM  int
}

// Recognizer is the external OCR engine contract: one image and one
// segmentation strategy in, word-level results out.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image, psm int) ([]Word, error)
}

// SweepConfigs returns the fixed set of segmentation strategies every sweep
// tries, in iteration order. Uniform-block and sparse-text modes catch the
// layouts the automatic modes misjudge, and vice versa; the sweep takes the
// union of all four.
func SweepConfigs() []Config {
	return []Config{
		{Name: "single-block", PSM: 6},
		{Name: "auto", PSM: 3},
		{Name: "sparse", PSM: 11},
		{Name: "auto-osd", PSM: 1},
	}
}

// Detect finds every region of img whose recognized text fuzzily matches
// one of the target phrases.
//
// It preprocesses img according to mode, invokes the recognizer once per
// (variant, configuration) pair, and folds all word hits with confidence of
// at least minConfidence into a map from phrase to its padded, deduplicated
// regions. Phrases with no matches are absent from the map.
//
// Individual OCR failures are logged and skipped; Detect only returns an
// error when ctx is canceled.
func Detect(ctx context.Context, rec Recognizer, ops ImageOps, img image.Image, phrases []string, mode string, minConfidence float64) (map[string][]image.Rectangle, error) {
	return sweep(ctx, rec, Preprocess(img, mode, ops), SweepConfigs(), phrases, minConfidence)
}

// sweep runs the recognizer over every (variant, config) pair and
// aggregates the results. Raw words are shared across phrases: each
// invocation is matched against all of them.
func sweep(ctx context.Context, rec Recognizer, variants []Variant, configs []Config, phrases []string, minConfidence float64) (map[string][]image.Rectangle, error) {
	regions := make(map[string][]image.Rectangle)

	for _, variant := range variants {
		for _, config := range configs {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			words, err := rec.Recognize(ctx, variant.Image, config.PSM)
			if err != nil {
				log.Printf("warning: OCR failed on variant %q config %q: %v", variant.Name, config.Name, err)
				continue
			}
			aggregate(regions, words, phrases, minConfidence)
		}
	}

	return regions, nil
}
