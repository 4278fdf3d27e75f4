// Package detection locates occurrences of target phrases in an image by
// sweeping an OCR engine across preprocessed variants of the image and
// aggregating the recognized words into padded, deduplicated pixel regions.
//
// # Pipeline
//
// Detection runs in three stages:
//
//  1. Preprocessing: the source image is rendered into a set of variants
//     (grayscale, contrast-enhanced, binarized, sharpened, denoised) chosen
//     to maximize OCR recall under different contrast and noise conditions.
//  2. Sweep: the OCR engine is invoked once per (variant, configuration)
//     pair. Each configuration selects a different page segmentation
//     strategy, because no single strategy finds all text layouts. The raw
//     word results of every invocation are shared across all phrases.
//  3. Match and aggregate: every recognized word is tested against every
//     phrase with an ordered list of fuzzy matching strategies. Matches
//     become bounding boxes padded by half the word height and are
//     deduplicated per phrase by exact box equality.
//
// # Coordinate System
//
// All preprocessing variants preserve the source dimensions, so word boxes
// reported from any variant are already in original-image coordinates.
// Boxes use the standard image convention: origin at top-left, X rightward,
// Y downward.
//
// # Failure Tolerance
//
// A failed OCR invocation is logged and skipped; the sweep always produces
// the best-effort union of whatever invocations succeeded. Only context
// cancellation aborts a sweep.
//
// # Testability
//
// The engine and the image primitives enter through the Recognizer and
// ImageOps interfaces, so the whole pipeline runs against deterministic
// fakes in tests.
package detection
