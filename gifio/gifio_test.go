package gifio

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"io"
	"path/filepath"
	"testing"
)

func solidPaletted(w, h int, idx uint8, pal color.Palette) *image.Paletted {
	p := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	for i := range p.Pix {
		p.Pix[i] = idx
	}
	return p
}

func encodeTestGIF(t *testing.T) []byte {
	t.Helper()
	pal := color.Palette{color.Black, color.White, color.RGBA{R: 255, A: 255}}
	g := &gif.GIF{
		Image: []*image.Paletted{
			solidPaletted(8, 4, 0, pal),
			solidPaletted(8, 4, 1, pal),
			solidPaletted(8, 4, 2, pal),
		},
		Delay: []int{10, 10, 10},
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("Failed to encode test gif: %v", err)
	}
	return buf.Bytes()
}

func TestReaderFrames(t *testing.T) {
	r, err := NewReader(bytes.NewReader(encodeTestGIF(t)))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	if r.Len() != 3 {
		t.Errorf("Expected 3 frames, got %d", r.Len())
	}
	if r.FPS() != 10 {
		t.Errorf("Expected 10 fps from 10cs delays, got %v", r.FPS())
	}

	want := []color.RGBA{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{255, 0, 0, 255},
	}
	for i, w := range want {
		frame, err := r.Next()
		if err != nil {
			t.Fatalf("Next %d failed: %v", i, err)
		}
		if b := frame.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
			t.Errorf("Frame %d: expected 8x4, got %v", i, b)
		}
		got := color.RGBAModel.Convert(frame.At(3, 2)).(color.RGBA)
		if got != w {
			t.Errorf("Frame %d: expected %v, got %v", i, w, got)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF after last frame, got %v", err)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	w, err := Create(path, 6, 3, 20)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, 6, 3))
	for i := 0; i < 2; i++ {
		if err := w.WriteFrame(frame); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}
	if err := w.WriteFrame(image.NewRGBA(image.Rect(0, 0, 5, 3))); err == nil {
		t.Error("Expected error for mismatched frame size")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Expected 2 frames, got %d", r.Len())
	}
	if r.FPS() != 20 {
		t.Errorf("Expected 20 fps, got %v", r.FPS())
	}
}

func TestWriterCloseWithoutFrames(t *testing.T) {
	w, err := Create(filepath.Join(t.TempDir(), "empty.gif"), 2, 2, 10)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := w.Close(); err == nil {
		t.Error("Expected error closing a gif with no frames")
	}
}
