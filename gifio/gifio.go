// Package gifio reads and writes animated GIFs as frame streams.
package gifio

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"os"
)

// Reader yields the fully composited frames of an animated GIF.
type Reader struct {
	g      *gif.GIF
	canvas *image.RGBA
	next   int
	fps    float64
	closer io.Closer
}

// Open decodes the GIF at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gif: %w", err)
	}
	defer f.Close()
	return NewReader(f)
}

// NewReader decodes every frame of the GIF in r.
func NewReader(r io.Reader) (*Reader, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode gif: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}
	width, height := g.Config.Width, g.Config.Height
	if width == 0 || height == 0 {
		b := g.Image[0].Bounds()
		width, height = b.Max.X, b.Max.Y
	}

	var total int
	for _, d := range g.Delay {
		total += d
	}
	var fps float64
	if total > 0 {
		fps = 100 * float64(len(g.Delay)) / float64(total)
	}

	return &Reader{
		g:      g,
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		fps:    fps,
	}, nil
}

// Len returns the number of frames.
func (r *Reader) Len() int {
	return len(r.g.Image)
}

// FPS returns the frame rate derived from the mean frame delay, or 0 when
// the GIF carries no delays.
func (r *Reader) FPS() float64 {
	return r.fps
}

// Next returns a copy of the next composited frame, or io.EOF.
func (r *Reader) Next() (image.Image, error) {
	if r.next >= len(r.g.Image) {
		return nil, io.EOF
	}
	i := r.next
	r.next++

	frame := r.g.Image[i]
	disposal := byte(gif.DisposalNone)
	if i < len(r.g.Disposal) {
		disposal = r.g.Disposal[i]
	}

	var previous *image.RGBA
	if disposal == gif.DisposalPrevious {
		previous = cloneRGBA(r.canvas)
	}
	draw.Draw(r.canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
	out := cloneRGBA(r.canvas)

	switch disposal {
	case gif.DisposalBackground:
		draw.Draw(r.canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
	case gif.DisposalPrevious:
		r.canvas = previous
	}
	return out, nil
}

// Close releases the decoded frames.
func (r *Reader) Close() error {
	r.g = &gif.GIF{}
	return nil
}

func cloneRGBA(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}

// Writer accumulates frames and encodes them as an animated GIF on Close.
type Writer struct {
	f      *os.File
	g      *gif.GIF
	width  int
	height int
	delay  int
}

// Create opens path for writing a width x height animation at fps.
func Create(path string, width, height int, fps float64) (*Writer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid gif size %dx%d", width, height)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create gif: %w", err)
	}
	delay := 0
	if fps > 0 {
		delay = max(int(math.Round(100/fps)), 1)
	}
	return &Writer{
		f:      f,
		g:      &gif.GIF{Config: image.Config{Width: width, Height: height}},
		width:  width,
		height: height,
		delay:  delay,
	}, nil
}

// WriteFrame quantizes img to the Plan 9 palette with Floyd-Steinberg
// dithering and appends it.
func (w *Writer) WriteFrame(img image.Image) error {
	b := img.Bounds()
	if b.Dx() != w.width || b.Dy() != w.height {
		return fmt.Errorf("frame is %dx%d, stream is %dx%d", b.Dx(), b.Dy(), w.width, w.height)
	}
	p := image.NewPaletted(image.Rect(0, 0, w.width, w.height), palette.Plan9)
	draw.FloydSteinberg.Draw(p, p.Bounds(), img, b.Min)
	w.g.Image = append(w.g.Image, p)
	w.g.Delay = append(w.g.Delay, w.delay)
	return nil
}

// Close encodes the frames and closes the file.
func (w *Writer) Close() error {
	if w.f == nil {
		return nil
	}
	f := w.f
	w.f = nil
	if len(w.g.Image) == 0 {
		f.Close()
		return fmt.Errorf("no frames written")
	}
	if err := gif.EncodeAll(f, w.g); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return f.Close()
}
