package img2ascii

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/wbrown/img2ascii/imageutil"
)

// DefaultFPS is used when neither the caller nor the source supplies a
// frame rate.
const DefaultFPS = 25

// FrameSource yields decoded frames in order. Next returns io.EOF after
// the last frame.
type FrameSource interface {
	Next() (image.Image, error)
	// FPS returns the source frame rate, or 0 if unknown.
	FPS() float64
	Close() error
}

// FrameSink accepts frames of a fixed size.
type FrameSink interface {
	WriteFrame(img image.Image) error
	Close() error
}

// SinkOpener creates the output stream once the first frame's size is
// known.
type SinkOpener func(width, height int, fps float64) (FrameSink, error)

// Pipeline converts a frame stream: each frame is decoded, sampled,
// rendered, cropped, optionally overlaid with the source frame and
// appended to the sink before the next frame is read.
//
// The sink is opened lazily with the post-crop size of the first frame.
// The crop rectangle of that frame is reused for every later frame, so
// all frames share one size; frames that still differ (the source
// changed size mid-stream) are padded or trimmed to fit.
type Pipeline struct {
	conv *Converter
	fps  float64

	// OnFrame, if set, is called after each frame is written with the
	// number of frames written so far.
	OnFrame func(n int)

	sink       FrameSink
	width      int
	height     int
	canvasSize image.Point
	cropBox    image.Rectangle
	frames     int
}

// NewPipeline returns a pipeline using conv. fps of 0 inherits the
// source frame rate.
func NewPipeline(conv *Converter, fps float64) (*Pipeline, error) {
	if fps < 0 {
		return nil, fmt.Errorf("%w: fps %v", ErrInvalidInput, fps)
	}
	return &Pipeline{conv: conv, fps: fps}, nil
}

// Run drives src to completion, opening the sink with open on the first
// frame. The sink is closed on every return path; the source is left to
// the caller. Run stops between frames when ctx is cancelled and returns
// the number of frames written.
func (p *Pipeline) Run(ctx context.Context, src FrameSource, open SinkOpener) (n int, err error) {
	defer func() {
		if p.sink == nil {
			return
		}
		if cerr := p.sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
		p.sink = nil
	}()

	fps := p.fps
	if fps == 0 {
		fps = src.FPS()
	}
	if fps <= 0 {
		fps = DefaultFPS
	}

	for {
		if err := ctx.Err(); err != nil {
			return p.frames, err
		}
		frame, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return p.frames, fmt.Errorf("%w: frame %d: %w", ErrInvalidInput, p.frames, err)
		}

		out, err := p.Frame(frame)
		if err != nil {
			return p.frames, fmt.Errorf("frame %d: %w", p.frames, err)
		}

		if p.sink == nil {
			b := out.Bounds()
			sink, err := open(b.Dx(), b.Dy(), fps)
			if err != nil {
				return p.frames, fmt.Errorf("%w: %w", ErrWriterInit, err)
			}
			p.sink, p.width, p.height = sink, b.Dx(), b.Dy()
		}
		if b := out.Bounds(); b.Dx() != p.width || b.Dy() != p.height {
			p.conv.logger.Printf("frame %d is %dx%d, conforming to %dx%d",
				p.frames, b.Dx(), b.Dy(), p.width, p.height)
			out = imageutil.Conform(out, p.width, p.height, p.conv.Background.RGB())
		}
		if err := p.sink.WriteFrame(out); err != nil {
			return p.frames, fmt.Errorf("failed to write frame %d: %w", p.frames, err)
		}

		p.frames++
		if p.OnFrame != nil {
			p.OnFrame(p.frames)
		}
	}

	if p.frames == 0 {
		return 0, fmt.Errorf("%w: source has no frames", ErrInvalidInput)
	}
	return p.frames, nil
}

// Frame converts one frame: render, crop and overlay.
func (p *Pipeline) Frame(frame image.Image) (image.Image, error) {
	src := imageutil.RGBAImageFromImage(frame)
	canvas, err := p.conv.canvas(src)
	if err != nil {
		return nil, err
	}

	out := canvas
	if p.conv.Crop == CropContent {
		if out, err = p.crop(canvas); err != nil {
			return nil, err
		}
	}
	return Overlay(out, src, p.conv.OverlayRatio)
}

// crop locks the crop rectangle on the first canvas and reuses it while
// canvases keep the same size.
func (p *Pipeline) crop(canvas image.Image) (image.Image, error) {
	size := canvas.Bounds().Size()
	if p.cropBox.Empty() || size != p.canvasSize {
		out, box, err := p.conv.cropToContent(canvas)
		if err != nil {
			return nil, err
		}
		if p.cropBox.Empty() {
			p.cropBox, p.canvasSize = box, size
		}
		return out, nil
	}
	return imageutil.Crop(canvas, p.cropBox)
}
