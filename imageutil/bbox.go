package imageutil

import (
	"fmt"
	"image"
	"image/draw"
)

// BoundingBox returns the smallest rectangle enclosing every pixel with a
// non-zero color channel. Alpha is ignored. ok is false when the image has
// no such pixel, in which case the returned rectangle is empty.
func BoundingBox(img image.Image) (box image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1

	mark := func(x, y int) {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	switch im := img.(type) {
	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := im.Pix[(y-b.Min.Y)*im.Stride:]
			for x := 0; x < b.Dx(); x++ {
				if row[x] != 0 {
					mark(b.Min.X+x, y)
				}
			}
		}
	case *image.RGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := im.Pix[(y-b.Min.Y)*im.Stride:]
			for x := 0; x < b.Dx(); x++ {
				p := row[x*4 : x*4+3]
				if p[0] != 0 || p[1] != 0 || p[2] != 0 {
					mark(b.Min.X+x, y)
				}
			}
		}
	case *GrayImage:
		return BoundingBox(im.Gray)
	case *RGBAImage:
		return BoundingBox(im.RGBA)
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := img.At(x, y).RGBA()
				if r>>8 != 0 || g>>8 != 0 || bl>>8 != 0 {
					mark(x, y)
				}
			}
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Crop copies the part of img inside r into a new image anchored at the
// origin. Grayscale sources stay grayscale; everything else becomes RGBA.
func Crop(img image.Image, r image.Rectangle) (image.Image, error) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return nil, fmt.Errorf("crop: rectangle %v outside image bounds %v", r, img.Bounds())
	}
	switch im := img.(type) {
	case *GrayImage:
		return Crop(im.Gray, r)
	case *RGBAImage:
		return Crop(im.RGBA, r)
	case *image.Gray:
		out := NewGrayImage(r.Dx(), r.Dy())
		draw.Draw(out.Gray, out.Bounds(), im, r.Min, draw.Src)
		return out, nil
	}
	out := NewRGBAImage(r.Dx(), r.Dy())
	draw.Draw(out.RGBA, out.Bounds(), img, r.Min, draw.Src)
	return out, nil
}
