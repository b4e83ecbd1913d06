package imageutil

import (
	"fmt"
	"image"
)

// ToGrayscale converts an RGBA image to grayscale using the standard
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B
// This matches the BT.601 standard used by OpenCV's COLOR_BGR2GRAY.
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+width*4]
		dst := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for x := range dst {
			r, g, b := int(src[x*4]), int(src[x*4+1]), int(src[x*4+2])
			// Integer math, rounded
			lum := (299*r + 587*g + 114*b + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			dst[x] = uint8(lum)
		}
	}

	return gray
}

// GrayscaleToRGBA converts a grayscale image back to RGBA.
func GrayscaleToRGBA(gray *GrayImage) *RGBAImage {
	width, height := gray.Width(), gray.Height()
	rgba := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rgba.SetRGB(x, y, Gray(gray.GrayAt(x, y).Y))
		}
	}

	return rgba
}

// ToRGBA returns img as an RGBAImage, expanding grayscale images to three
// channels.
func ToRGBA(img image.Image) *RGBAImage {
	switch im := img.(type) {
	case *GrayImage:
		return GrayscaleToRGBA(im)
	case *RGBAImage:
		return im
	case *image.Gray:
		if im.Rect.Min == (image.Point{}) {
			return GrayscaleToRGBA(&GrayImage{Gray: im})
		}
	}
	return RGBAImageFromImage(img)
}

// Invert returns a copy of img with every color channel replaced by
// 255 - v. Alpha is preserved.
func Invert(img image.Image) (image.Image, error) {
	switch im := img.(type) {
	case *GrayImage:
		return Invert(im.Gray)
	case *RGBAImage:
		return Invert(im.RGBA)
	case *image.Gray:
		out := image.NewGray(im.Rect)
		w := im.Rect.Dx()
		for y := 0; y < im.Rect.Dy(); y++ {
			src := im.Pix[y*im.Stride : y*im.Stride+w]
			dst := out.Pix[y*out.Stride : y*out.Stride+w]
			for x, v := range src {
				dst[x] = 255 - v
			}
		}
		return out, nil
	case *image.RGBA:
		out := image.NewRGBA(im.Rect)
		w := im.Rect.Dx() * 4
		for y := 0; y < im.Rect.Dy(); y++ {
			src := im.Pix[y*im.Stride : y*im.Stride+w]
			dst := out.Pix[y*out.Stride : y*out.Stride+w]
			for i, v := range src {
				if i%4 == 3 {
					dst[i] = v
					continue
				}
				dst[i] = 255 - v
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("invert: unsupported image type %T", img)
}
