package imageutil

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	got := img.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestRGBAImageClone(t *testing.T) {
	img := NewRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.GetRGB(5, 5) != img.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestRGBAImageFromSubImage(t *testing.T) {
	src := CreateColorBarsImage(80, 10)
	sub := src.SubImage(image.Rect(10, 2, 30, 8))

	img := RGBAImageFromImage(sub)
	if img.Width() != 20 || img.Height() != 6 {
		t.Fatalf("Expected 20x6, got %dx%d", img.Width(), img.Height())
	}
	if img.GetRGB(0, 0) != src.GetRGB(10, 2) {
		t.Errorf("Origin pixel mismatch: %v != %v", img.GetRGB(0, 0), src.GetRGB(10, 2))
	}
}

func TestToGrayscale(t *testing.T) {
	img := NewRGBAImage(1, 1)
	img.SetRGB(0, 0, RGB{R: 255, G: 255, B: 255})

	gray := ToGrayscale(img)
	if v := gray.GetGray(0, 0); v != 255 {
		t.Errorf("White pixel should convert to 255, got %d", v)
	}

	img.SetRGB(0, 0, RGB{R: 0, G: 0, B: 0})
	gray = ToGrayscale(img)
	if v := gray.GetGray(0, 0); v != 0 {
		t.Errorf("Black pixel should convert to 0, got %d", v)
	}

	// Test red (0.299 * 255 = 76.245)
	img.SetRGB(0, 0, RGB{R: 255, G: 0, B: 0})
	gray = ToGrayscale(img)
	if v := gray.GetGray(0, 0); v < 75 || v > 77 {
		t.Errorf("Red pixel should convert to ~76, got %d", v)
	}

	// Neutral grays are preserved exactly
	img.SetRGB(0, 0, Gray(128))
	gray = ToGrayscale(img)
	if v := gray.GetGray(0, 0); v != 128 {
		t.Errorf("Gray 128 should stay 128, got %d", v)
	}
}

func TestInvert(t *testing.T) {
	gray := NewGrayImage(4, 4)
	gray.Fill(255)
	gray.SetGray(1, 2, color.Gray{Y: 0})

	inv, err := Invert(gray)
	if err != nil {
		t.Fatalf("Invert failed: %v", err)
	}
	g := inv.(*image.Gray)
	if g.GrayAt(0, 0).Y != 0 || g.GrayAt(1, 2).Y != 255 {
		t.Errorf("Unexpected inverted values: %d, %d", g.GrayAt(0, 0).Y, g.GrayAt(1, 2).Y)
	}

	rgba := CreateSolidImage(2, 2, RGB{R: 10, G: 20, B: 30})
	inv, err = Invert(rgba)
	if err != nil {
		t.Fatalf("Invert failed: %v", err)
	}
	c := inv.(*image.RGBA).RGBAAt(1, 1)
	if c.R != 245 || c.G != 235 || c.B != 225 || c.A != 255 {
		t.Errorf("Unexpected inverted color %v", c)
	}
}

func TestBoundingBox(t *testing.T) {
	img := CreateSquareImage(20, 10, RGB{}, RGB{R: 1}, image.Rect(3, 4, 7, 6))
	box, ok := BoundingBox(img)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	if box != image.Rect(3, 4, 7, 6) {
		t.Errorf("Expected (3,4)-(7,6), got %v", box)
	}

	empty := NewGrayImage(8, 8)
	if box, ok := BoundingBox(empty); ok || !box.Empty() {
		t.Errorf("All-zero image should have no bounding box, got %v", box)
	}
}

func TestCrop(t *testing.T) {
	img := CreateColorBarsImage(80, 10)
	cropped, err := Crop(img, image.Rect(10, 0, 20, 5))
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if b := cropped.Bounds(); b != image.Rect(0, 0, 10, 5) {
		t.Fatalf("Expected origin-anchored 10x5, got %v", b)
	}
	got := RGBFromColor(cropped.At(0, 0))
	if got != img.GetRGB(10, 0) {
		t.Errorf("Expected %v, got %v", img.GetRGB(10, 0), got)
	}

	if _, err := Crop(img, image.Rect(100, 100, 110, 110)); err == nil {
		t.Error("Expected error for rectangle outside bounds")
	}

	gray := NewGrayImage(5, 5)
	cropped, err = Crop(gray, image.Rect(1, 1, 3, 3))
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if _, ok := cropped.(*GrayImage); !ok {
		t.Errorf("Grayscale crop should stay grayscale, got %T", cropped)
	}
}

func TestConform(t *testing.T) {
	img := CreateSolidImage(4, 4, RGB{R: 9, G: 9, B: 9})

	padded := Conform(img, 6, 3, RGB{R: 255, G: 255, B: 255})
	if b := padded.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("Expected 6x3, got %v", b)
	}
	if got := RGBFromColor(padded.At(0, 0)); got != (RGB{R: 9, G: 9, B: 9}) {
		t.Errorf("Content should be anchored top-left, got %v", got)
	}
	if got := RGBFromColor(padded.At(5, 0)); got != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("Padding should use background, got %v", got)
	}

	if same := Conform(img, 4, 4, RGB{}); same != image.Image(img) {
		t.Error("Same-size conform should return the input")
	}
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	resized := Resize(img, 50, 50, InterpolationArea)
	if resized.Width() != 50 || resized.Height() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", resized.Width(), resized.Height())
	}

	resized = Resize(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestLoadSaveImage(t *testing.T) {
	tmpDir := t.TempDir()
	img := CreateColorBarsImage(64, 64)

	pngPath := filepath.Join(tmpDir, "test.png")
	if err := SaveImage(img.RGBA, pngPath); err != nil {
		t.Fatalf("Failed to save PNG: %v", err)
	}

	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	// PNG should be lossless
	if mse := CalculateMSE(img, loaded); mse > 0.01 {
		t.Errorf("PNG should be lossless, MSE=%f", mse)
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}
