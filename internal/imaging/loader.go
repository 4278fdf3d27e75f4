package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is the JPEG encoder quality used by Save when the
// caller does not specify one.
const DefaultJPEGQuality = 95

// Load reads and decodes an image file.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats
//     are PNG, JPEG, and GIF.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image
//     format and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr).
//   - error: Non-nil if the file cannot be opened or decoded.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}

// Save encodes an image and writes it to path.
//
// The output format is chosen from the file extension (PNG, JPEG, GIF, TIFF
// and BMP are supported). For JPEG output the quality parameter controls the
// encoder; values outside 1-100 fall back to DefaultJPEGQuality. The quality
// setting is ignored by lossless formats.
//
// Returns a wrapped error if the extension is unsupported or the file cannot
// be written.
func Save(img image.Image, path string, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
