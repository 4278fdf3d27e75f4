// Package ocr implements the detection.Recognizer contract using the
// Tesseract OCR engine (via gosseract/v2).
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// # Page Segmentation Modes
//
// The detection sweep drives each invocation with a Tesseract page
// segmentation mode (PSM) number. The modes the sweep uses:
//   - 6: assume a single uniform block of text
//   - 3: fully automatic page segmentation
//   - 11: sparse text, find as much text as possible
//   - 1: automatic page segmentation with orientation and script detection
//
// # Performance Considerations
//
// OCR is CPU-intensive, and the sweep performs one invocation per
// (preprocessing variant, PSM) pair. Each invocation uses a fresh
// short-lived client so a failed invocation cannot poison the next one.
//
// # Error Handling
//
// All errors are wrapped and returned to the caller; the sweep treats them
// as non-fatal and continues with the remaining invocations.
package ocr
