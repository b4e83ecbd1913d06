// Package video decodes and encodes video containers with OpenCV.
package video

import (
	"fmt"
	"image"
	"io"

	"gocv.io/x/gocv"

	"github.com/wbrown/img2ascii/imageutil"
)

// DefaultFourCC is the codec used for output videos.
const DefaultFourCC = "XVID"

// Capture reads frames from a video file.
type Capture struct {
	vc  *gocv.VideoCapture
	mat gocv.Mat
}

// OpenCapture opens the video at path.
func OpenCapture(path string) (*Capture, error) {
	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video %s: %w", path, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("failed to open video %s", path)
	}
	return &Capture{vc: vc, mat: gocv.NewMat()}, nil
}

// FPS returns the container frame rate, or 0 if unknown.
func (c *Capture) FPS() float64 {
	return c.vc.Get(gocv.VideoCaptureFPS)
}

// FrameCount returns the number of frames the container reports, or -1
// when it does not know.
func (c *Capture) FrameCount() int64 {
	n := c.vc.Get(gocv.VideoCaptureFrameCount)
	if n <= 0 {
		return -1
	}
	return int64(n)
}

// Next decodes the next frame, or returns io.EOF.
func (c *Capture) Next() (image.Image, error) {
	if ok := c.vc.Read(&c.mat); !ok || c.mat.Empty() {
		return nil, io.EOF
	}
	img, err := c.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert frame: %w", err)
	}
	return img, nil
}

// Close releases the decoder.
func (c *Capture) Close() error {
	if err := c.mat.Close(); err != nil {
		c.vc.Close()
		return err
	}
	return c.vc.Close()
}

// Writer encodes frames of a fixed size to a video file.
type Writer struct {
	vw     *gocv.VideoWriter
	width  int
	height int
}

// OpenWriter creates path for width x height color frames at fps,
// encoded with the fourcc codec.
func OpenWriter(path, fourcc string, fps float64, width, height int) (*Writer, error) {
	if fourcc == "" {
		fourcc = DefaultFourCC
	}
	if len(fourcc) != 4 {
		return nil, fmt.Errorf("fourcc %q must be 4 characters", fourcc)
	}
	vw, err := gocv.VideoWriterFile(path, fourcc, fps, width, height, true)
	if err != nil {
		return nil, fmt.Errorf("failed to open video writer %s: %w", path, err)
	}
	if !vw.IsOpened() {
		vw.Close()
		return nil, fmt.Errorf("failed to open video writer %s (codec %s)", path, fourcc)
	}
	return &Writer{vw: vw, width: width, height: height}, nil
}

// WriteFrame appends img, which must match the stream size.
func (w *Writer) WriteFrame(img image.Image) error {
	b := img.Bounds()
	if b.Dx() != w.width || b.Dy() != w.height {
		return fmt.Errorf("frame is %dx%d, stream is %dx%d", b.Dx(), b.Dy(), w.width, w.height)
	}
	mat, err := gocv.ImageToMatRGB(imageutil.ToRGBA(img).RGBA)
	if err != nil {
		return fmt.Errorf("failed to convert frame: %w", err)
	}
	defer mat.Close()
	return w.vw.Write(mat)
}

// Close flushes and closes the output file.
func (w *Writer) Close() error {
	return w.vw.Close()
}

// LoadImage decodes a still image with OpenCV, for formats the pure Go
// decoders do not handle.
func LoadImage(path string) (*imageutil.RGBAImage, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("could not read image from %s", path)
	}
	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	return imageutil.RGBAImageFromImage(img), nil
}
