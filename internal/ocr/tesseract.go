package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/text-blur/internal/detection"
)

// Client performs word-level OCR with Tesseract. The zero value is not
// usable; construct with NewClient.
//
// Client itself holds no Tesseract state. Every Recognize call creates and
// closes its own gosseract client, so Client is safe for concurrent use.
type Client struct {
	language string
}

// NewClient returns a Client recognizing English text. Use WithLanguage for
// other Tesseract language codes.
func NewClient() *Client {
	return &Client{language: "eng"}
}

// WithLanguage returns a copy of the client configured for the given
// Tesseract language code (e.g. "deu", "fra", "chi_sim"). The corresponding
// trained data must be installed on the system.
func (c *Client) WithLanguage(language string) *Client {
	return &Client{language: language}
}

// Recognize runs one Tesseract invocation over img using the given page
// segmentation mode and returns every recognized word with its confidence
// score (0-100) and bounding box.
//
// The image is handed to Tesseract as an in-memory PNG; nothing touches the
// filesystem. Words are returned raw, including low-confidence and
// whitespace-only tokens - filtering is the aggregation stage's job.
func (c *Client) Recognize(ctx context.Context, img image.Image, psm int) ([]detection.Word, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(c.language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(psm)); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]detection.Word, 0, len(boxes))
	for _, box := range boxes {
		words = append(words, detection.Word{
			Text:       box.Word,
			Confidence: box.Confidence,
			Box:        box.Box,
		})
	}
	return words, nil
}
