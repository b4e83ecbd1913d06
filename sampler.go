package img2ascii

import (
	"image"

	"github.com/wbrown/img2ascii/imageutil"
)

// Sample is the reduction of one cell: the ramp index of its glyph and,
// for color sampling, the average color the glyph is filled with.
type Sample struct {
	Index int
	Color imageutil.RGB
}

// Sampler reduces a cell of a source raster to a Sample.
type Sampler interface {
	// Sample returns the reduction of cell. Empty cells map to the
	// darkest glyph.
	Sample(cell image.Rectangle, ramp Ramp) Sample
	// Bounds returns the bounds of the sampled raster.
	Bounds() image.Rectangle
}

// GraySampler samples the mean BT.601 intensity of a cell.
type GraySampler struct {
	img *imageutil.GrayImage
}

// NewGraySampler returns a Sampler over the grayscale conversion of src.
func NewGraySampler(src *imageutil.RGBAImage) *GraySampler {
	return &GraySampler{img: imageutil.ToGrayscale(src)}
}

// Bounds returns the bounds of the grayscale raster.
func (s *GraySampler) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Sample implements Sampler.
func (s *GraySampler) Sample(cell image.Rectangle, ramp Ramp) Sample {
	cell = cell.Intersect(s.img.Bounds())
	if cell.Empty() {
		return Sample{}
	}
	var sum uint64
	w := cell.Dx()
	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		off := s.img.PixOffset(cell.Min.X, y)
		for _, v := range s.img.Pix[off : off+w] {
			sum += uint64(v)
		}
	}
	avg := float64(sum) / float64(w*cell.Dy())
	return Sample{Index: ramp.Index(avg)}
}

// ColorSampler computes two reductions over the same cell: the mean of
// all channel values, which selects the glyph, and the per-channel mean,
// which colors it.
type ColorSampler struct {
	img *imageutil.RGBAImage
}

// NewColorSampler returns a Sampler over src.
func NewColorSampler(src *imageutil.RGBAImage) *ColorSampler {
	return &ColorSampler{img: src}
}

// Bounds returns the bounds of the color raster.
func (s *ColorSampler) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Sample implements Sampler.
func (s *ColorSampler) Sample(cell image.Rectangle, ramp Ramp) Sample {
	cell = cell.Intersect(s.img.Bounds())
	if cell.Empty() {
		return Sample{}
	}
	var sr, sg, sb uint64
	w := cell.Dx()
	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		off := s.img.PixOffset(cell.Min.X, y)
		row := s.img.Pix[off : off+w*4]
		for i := 0; i < len(row); i += 4 {
			sr += uint64(row[i])
			sg += uint64(row[i+1])
			sb += uint64(row[i+2])
		}
	}
	n := uint64(w * cell.Dy())
	lum := float64(sr+sg+sb) / float64(3*n)
	return Sample{
		Index: ramp.Index(lum),
		Color: imageutil.RGB{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n)},
	}
}
