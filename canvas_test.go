package img2ascii

import (
	"errors"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestParseBackground(t *testing.T) {
	if bg, err := ParseBackground("White"); err != nil || bg != White {
		t.Errorf("Expected White, got %v (%v)", bg, err)
	}
	if bg, err := ParseBackground("black"); err != nil || bg != Black {
		t.Errorf("Expected Black, got %v (%v)", bg, err)
	}
	if _, err := ParseBackground("grey"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if White.Foreground() != 0 || Black.Foreground() != 255 {
		t.Error("Expected foreground to be the inverse of the background")
	}
}

func renderSolid(t *testing.T, c imageutil.RGB, cols int, opts RenderOptions) (Cells, *imageutil.RGBAImage) {
	t.Helper()
	src := imageutil.CreateSolidImage(24, 24, c)
	g, err := NewGrid(24, 24, cols, 2)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	var s Sampler = NewGraySampler(src)
	if opts.Color {
		s = NewColorSampler(src)
	}
	cells := MapCells(g, s, simpleRamp, 1)
	canvas, err := Render(cells, simpleRamp, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return cells, imageutil.ToRGBA(canvas)
}

func TestRenderCanvasSize(t *testing.T) {
	face := BasicFace()
	cw, ch := face.CellSize()
	src := imageutil.CreateSolidImage(12, 12, imageutil.Gray(128))
	g, _ := NewGrid(12, 12, 4, 2)
	cells := MapCells(g, NewGraySampler(src), simpleRamp, 1)

	canvas, err := Render(cells, simpleRamp, RenderOptions{Face: face, Background: Black})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, ok := canvas.(*imageutil.GrayImage); !ok {
		t.Errorf("Expected a grayscale canvas, got %T", canvas)
	}
	b := canvas.Bounds()
	if b.Dx() != 4*cw || b.Dy() != 2*ch {
		t.Errorf("Expected %dx%d canvas, got %dx%d", 4*cw, 2*ch, b.Dx(), b.Dy())
	}

	canvas, err = Render(cells, simpleRamp, RenderOptions{Face: face, Color: true})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, ok := canvas.(*imageutil.RGBAImage); !ok {
		t.Errorf("Expected an RGBA canvas in color mode, got %T", canvas)
	}
}

func TestRenderMonochromeLevels(t *testing.T) {
	for _, bg := range []Background{Black, White} {
		_, canvas := renderSolid(t, imageutil.Gray(128), 4,
			RenderOptions{Face: BasicFace(), Background: bg})

		var background, ink int
		for y := 0; y < canvas.Height(); y++ {
			for x := 0; x < canvas.Width(); x++ {
				switch canvas.GetRGB(x, y) {
				case bg.RGB():
					background++
				case imageutil.Gray(bg.Foreground()):
					ink++
				default:
					t.Fatalf("%s: unexpected pixel %v at (%d,%d)", bg, canvas.GetRGB(x, y), x, y)
				}
			}
		}
		if ink == 0 || background == 0 {
			t.Errorf("%s: expected both ink and background, got %d/%d", bg, ink, background)
		}
	}
}

func TestRenderUniformColor(t *testing.T) {
	want := imageutil.RGB{R: 200, G: 50, B: 50}
	cells, canvas := renderSolid(t, want, 4,
		RenderOptions{Face: BasicFace(), Background: Black, Color: true})

	for _, row := range cells.Samples {
		for _, s := range row {
			if s.Color != want {
				t.Fatalf("Expected sample color %v, got %v", want, s.Color)
			}
		}
	}

	var inked int
	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			px := canvas.GetRGB(x, y)
			if px == (imageutil.RGB{}) {
				continue
			}
			inked++
			if px != want {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, want, px)
			}
		}
	}
	if inked == 0 {
		t.Error("Expected glyph pixels on the canvas")
	}
}

func TestRenderRequiresFace(t *testing.T) {
	g, _ := NewGrid(4, 4, 1, 1)
	cells := MapCells(g, NewGraySampler(imageutil.NewRGBAImage(4, 4)), simpleRamp, 1)
	if _, err := Render(cells, simpleRamp, RenderOptions{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput without a face, got %v", err)
	}
}
