package img2ascii

import (
	"image"

	"github.com/wbrown/img2ascii/imageutil"
)

// ContentBounds returns the bounding box of the non-background content of
// canvas. On a white background intensities are inverted first, so that
// background pixels become zero. ok is false for a canvas that is
// uniformly background.
func ContentBounds(canvas image.Image, bg Background) (box image.Rectangle, ok bool, err error) {
	probe := canvas
	if bg == White {
		if probe, err = imageutil.Invert(canvas); err != nil {
			return image.Rectangle{}, false, err
		}
	}
	box, ok = imageutil.BoundingBox(probe)
	return box, ok, nil
}

// CropToContent trims canvas to its content bounds. A uniformly
// background canvas is returned uncropped with cropped set to false.
func CropToContent(canvas image.Image, bg Background) (out image.Image, box image.Rectangle, cropped bool, err error) {
	box, ok, err := ContentBounds(canvas, bg)
	if err != nil {
		return nil, image.Rectangle{}, false, err
	}
	if !ok {
		return canvas, canvas.Bounds(), false, nil
	}
	out, err = imageutil.Crop(canvas, box)
	if err != nil {
		return nil, image.Rectangle{}, false, err
	}
	return out, box, true, nil
}
