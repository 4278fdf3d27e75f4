// Package redact applies the blur to detected text regions and orchestrates
// the full find-and-blur run: load image, detect regions, blur, save.
//
// The blur operates on a copy; the caller's image and the source file are
// never modified. Overlapping regions are blurred in sequence, so a later
// region's blur reads whatever pixels earlier blurs left behind in the
// overlap.
package redact
