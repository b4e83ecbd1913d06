package img2ascii

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/wbrown/img2ascii/imageutil"
)

// Overlay pastes a copy of src shrunk to ratio of the output size over the
// bottom-right corner of out. Pixels are replaced, not blended. A ratio of
// 0 returns out unchanged. RGBA outputs are drawn into in place; grayscale
// outputs are expanded to a new RGBA image first.
func Overlay(out image.Image, src *imageutil.RGBAImage, ratio float64) (image.Image, error) {
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("%w: overlay ratio %v outside [0, 1]", ErrInvalidInput, ratio)
	}
	if ratio == 0 {
		return out, nil
	}

	dst := imageutil.ToRGBA(out)
	w, h := dst.Width(), dst.Height()
	ow, oh := int(float64(w)*ratio), int(float64(h)*ratio)
	if ow < 1 || oh < 1 {
		return dst, nil
	}

	inset := imageutil.Resize(src, ow, oh, imageutil.InterpolationLinear)
	draw.Draw(dst.RGBA, image.Rect(w-ow, h-oh, w, h), inset.RGBA, image.Point{}, draw.Src)
	return dst, nil
}
