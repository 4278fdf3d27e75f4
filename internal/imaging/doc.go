// Package imaging provides the image codec and processing primitives used by
// the text blur pipeline.
//
// It implements the preprocessing transforms the detection stage runs before
// OCR (grayscale conversion, local contrast enhancement, global and adaptive
// binarization, sharpening, denoising) plus image file loading and saving.
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Immutability
//
// Every transform returns a new image and never writes to its input. The
// detection stage relies on this: each preprocessing variant is derived
// independently and the source image survives the whole sweep untouched.
//
// # Grayscale Output
//
// The binarization, contrast and denoise transforms all operate on (and
// return) grayscale data. Inputs that are not already grayscale are
// converted internally, so callers can chain transforms without tracking
// the pixel format.
//
// # Error Handling
//
// The pure image transforms cannot fail and return images directly.
// Load and Save return wrapped errors for file I/O and codec failures.
package imaging
