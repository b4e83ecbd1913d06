package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"sort"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/math/fixed"
)

// Face is a fixed-width glyph renderer. It supplies the pixel size of an
// output cell, measured on a sample glyph, and draws single glyphs at a
// cell position.
type Face struct {
	face   font.Face
	name   string
	width  int
	height int
	ascent int
}

// NewFace wraps a font.Face, sizing cells from the advance of sample and
// the line height of the face.
func NewFace(face font.Face, name string, sample rune) *Face {
	m := face.Metrics()
	f := &Face{
		face:   face,
		name:   name,
		ascent: m.Ascent.Ceil(),
		height: (m.Ascent + m.Descent).Ceil(),
	}
	if adv, ok := face.GlyphAdvance(sample); ok {
		f.width = adv.Ceil()
	} else {
		f.width = font.MeasureString(face, "A").Ceil()
	}
	f.width = max(f.width, 1)
	f.height = max(f.height, 1)
	return f
}

// LoadFace loads a TrueType font from path at size pixels.
func LoadFace(path string, size float64, sample rune) (*Face, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return parseFace(fontBytes, path, size, sample)
}

// DefaultFace returns Go Mono Bold at size pixels.
func DefaultFace(size float64, sample rune) (*Face, error) {
	return parseFace(gomonobold.TTF, "gomonobold", size, sample)
}

// BasicFace returns the 7x13 bitmap face. Its glyphs are not
// anti-aliased, so every inked pixel carries exactly the fill color.
func BasicFace() *Face {
	return NewFace(basicfont.Face7x13, "basic7x13", 'A')
}

func parseFace(fontBytes []byte, name string, size float64, sample rune) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: font size %v", ErrInvalidInput, size)
	}
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return NewFace(face, name, sample), nil
}

// Name returns the font name or path the face was loaded from.
func (f *Face) Name() string {
	return f.name
}

// CellSize returns the width and height in pixels of one output cell.
func (f *Face) CellSize() (width, height int) {
	return f.width, f.height
}

// DrawGlyph draws r with color c into dst with the cell's top-left corner
// at (x, y).
func (f *Face) DrawGlyph(dst draw.Image, x, y int, r rune, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(x, y+f.ascent),
	}
	d.DrawString(string(r))
}

// Coverage returns the mean ink intensity of r rendered white on black in
// one cell, in [0, 255].
func (f *Face) Coverage(r rune) float64 {
	cell := image.NewGray(image.Rect(0, 0, f.width, f.height))
	f.DrawGlyph(cell, 0, 0, r, color.White)
	var sum int
	for _, v := range cell.Pix {
		sum += int(v)
	}
	return float64(sum) / float64(len(cell.Pix))
}

// maxSortedGlyphs caps the length of a coverage-sorted ramp.
const maxSortedGlyphs = 100

// SortByCoverage orders the glyphs of ramp so that the brightness of each
// glyph drawn dark on light increases along the ramp, i.e. the most inked
// glyph comes first. At most 100 glyphs are kept, picked at evenly spaced
// brightness steps, and a space is appended as the brightest glyph when
// missing.
func SortByCoverage(ramp Ramp, f *Face) (Ramp, error) {
	type entry struct {
		glyph      rune
		brightness float64
	}
	seen := make(map[rune]bool, ramp.Len())
	entries := make([]entry, 0, ramp.Len())
	for _, g := range ramp.glyphs {
		if seen[g] || g == ' ' {
			continue
		}
		seen[g] = true
		entries = append(entries, entry{glyph: g, brightness: 255 - f.Coverage(g)})
	}
	if len(entries) == 0 {
		return Ramp{}, fmt.Errorf("%w: ramp %q has no visible glyphs", ErrInvalidInput, ramp)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].brightness < entries[j].brightness
	})

	limit := min(len(entries), maxSortedGlyphs)
	step := (entries[len(entries)-1].brightness - entries[0].brightness) / float64(limit)
	threshold := entries[0].brightness
	glyphs := make([]rune, 0, limit+1)
	for _, e := range entries {
		if e.brightness >= threshold {
			glyphs = append(glyphs, e.glyph)
			threshold += step
		}
		if len(glyphs) == limit {
			break
		}
	}
	glyphs = append(glyphs, ' ')
	return NewRamp(string(glyphs))
}
