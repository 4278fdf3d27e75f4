package detection

import (
	"image"
	"image/color"
	"testing"
)

// stubOps satisfies ImageOps by returning cloned inputs. The pixel-level
// behavior of the real transforms is tested in the imaging package; here
// only the variant plumbing matters.
type stubOps struct{}

func cloneImage(img image.Image) image.Image {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func (stubOps) Grayscale(img image.Image) image.Image        { return cloneImage(img) }
func (stubOps) EnhanceContrast(img image.Image) image.Image  { return cloneImage(img) }
func (stubOps) BinarizeOtsu(img image.Image) image.Image     { return cloneImage(img) }
func (stubOps) BinarizeAdaptive(img image.Image) image.Image { return cloneImage(img) }
func (stubOps) Sharpen(img image.Image) image.Image          { return cloneImage(img) }
func (stubOps) Denoise(img image.Image) image.Image          { return cloneImage(img) }

func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func variantNames(variants []Variant) []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	return names
}

func TestPreprocess_DefaultMode(t *testing.T) {
	img := createTestImage(50, 40, color.White)

	variants := Preprocess(img, ModeDefault, stubOps{})
	if len(variants) != 2 {
		t.Fatalf("default mode should produce 2 variants, got %d: %v", len(variants), variantNames(variants))
	}
	if variants[0].Name != "original" || variants[1].Name != "grayscale" {
		t.Errorf("unexpected variant order: %v", variantNames(variants))
	}
	for _, v := range variants {
		if v.Image.Bounds().Dx() != 50 || v.Image.Bounds().Dy() != 40 {
			t.Errorf("variant %q changed dimensions: %v", v.Name, v.Image.Bounds())
		}
	}
}

func TestPreprocess_AggressiveMode(t *testing.T) {
	img := createTestImage(30, 30, color.White)

	for _, mode := range []string{ModeAggressive, ModeAll} {
		variants := Preprocess(img, mode, stubOps{})
		if len(variants) != 7 {
			t.Fatalf("mode %q should produce 7 variants, got %d", mode, len(variants))
		}
		want := []string{"original", "grayscale", "contrast", "otsu", "adaptive", "sharpen", "denoise"}
		for i, name := range want {
			if variants[i].Name != name {
				t.Errorf("mode %q variant %d: got %q, want %q", mode, i, variants[i].Name, name)
			}
		}
	}
}

func TestPreprocess_UnknownModeFallsBack(t *testing.T) {
	img := createTestImage(30, 30, color.White)

	variants := Preprocess(img, "turbo", stubOps{})
	if len(variants) != 2 {
		t.Errorf("unknown mode should degrade to default's 2 variants, got %d", len(variants))
	}
}

func TestPreprocess_DoesNotMutateInput(t *testing.T) {
	img := createTestImage(30, 30, color.RGBA{R: 120, G: 40, B: 200, A: 255})
	before := img.RGBAAt(15, 15)

	Preprocess(img, ModeAggressive, stubOps{})

	if img.RGBAAt(15, 15) != before {
		t.Error("Preprocess modified the input image")
	}
}

func TestPreprocess_OriginalIsACopy(t *testing.T) {
	img := createTestImage(20, 20, color.White)

	variants := Preprocess(img, ModeDefault, stubOps{})
	if variants[0].Image == image.Image(img) {
		t.Error("the original variant should be an independent copy")
	}
}
