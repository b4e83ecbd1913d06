package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	// This is the closest equivalent to OpenCV's INTER_AREA.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	// Equivalent to OpenCV's INTER_LINEAR.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	interp.scaler().Scale(dst.RGBA, dst.Bounds(), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// Conform returns img resized to exactly width x height without scaling:
// content is anchored at the top-left corner, trimmed where it overflows
// and padded with bg where it falls short. An image that already has the
// requested size is returned as is.
func Conform(img image.Image, width, height int, bg RGB) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	if g, ok := img.(*GrayImage); ok && bg.R == bg.G && bg.G == bg.B {
		out := NewGrayImage(width, height)
		out.Fill(bg.R)
		draw.Draw(out.Gray, out.Bounds(), g.Gray, b.Min, draw.Src)
		return out
	}
	out := NewRGBAImage(width, height)
	out.Fill(bg)
	draw.Draw(out.RGBA, out.Bounds(), img, b.Min, draw.Src)
	return out
}
