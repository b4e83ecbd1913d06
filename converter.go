package img2ascii

import (
	"fmt"
	"image"
	"io"
	"log"
	"sync"

	"github.com/wbrown/img2ascii/imageutil"
)

// CropMode selects how rendered canvases are trimmed.
type CropMode int

const (
	// CropContent trims canvases to the bounding box of non-background
	// content.
	CropContent CropMode = iota
	// CropNone keeps the full canvas.
	CropNone
)

// ParseCropMode parses "content" or "none".
func ParseCropMode(s string) (CropMode, error) {
	switch s {
	case "content":
		return CropContent, nil
	case "none":
		return CropNone, nil
	}
	return CropContent, fmt.Errorf("%w: crop mode %q (want content or none)", ErrInvalidInput, s)
}

// Converter turns rasters into glyph renderings. Its configuration is
// fixed at construction and shared read-only by every frame it converts.
type Converter struct {
	// Configuration options
	Ramp         Ramp
	Columns      int
	Aspect       float64
	Background   Background
	Color        bool
	Crop         CropMode
	OverlayRatio float64
	Workers      int

	face   *Face
	logger *log.Logger

	mu       sync.Mutex
	lastGrid Grid
}

// Option is a functional option for configuring a Converter.
type Option func(*Converter)

// NewConverter creates a Converter with the given options.
// Default values: the general "simple" ramp, Columns=100, Aspect=2,
// black background, monochrome, content cropping, no overlay, Go Mono
// Bold at 20px, and a logger that discards output.
func NewConverter(opts ...Option) (*Converter, error) {
	general := charsets["general"]
	c := &Converter{
		Ramp:       MustRamp(general.Modes["simple"]),
		Columns:    100,
		Aspect:     general.Aspect,
		Background: Black,
		Crop:       CropContent,
		Workers:    1,
		logger:     log.New(io.Discard, "", 0),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.face == nil {
		face, err := DefaultFace(general.FontSize, general.Sample)
		if err != nil {
			return nil, err
		}
		c.face = face
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Converter) validate() error {
	switch {
	case c.Ramp.Len() < 2:
		return fmt.Errorf("%w: ramp needs at least 2 glyphs", ErrInvalidInput)
	case c.Columns < 1:
		return fmt.Errorf("%w: column count %d", ErrInvalidInput, c.Columns)
	case c.Aspect <= 0:
		return fmt.Errorf("%w: aspect scale %v", ErrInvalidInput, c.Aspect)
	case c.OverlayRatio < 0 || c.OverlayRatio > 1:
		return fmt.Errorf("%w: overlay ratio %v outside [0, 1]", ErrInvalidInput, c.OverlayRatio)
	case c.Background != Black && c.Background != White:
		return fmt.Errorf("%w: background level %d", ErrInvalidInput, c.Background)
	}
	return nil
}

// WithRamp sets the glyph ramp.
func WithRamp(r Ramp) Option {
	return func(c *Converter) {
		c.Ramp = r
	}
}

// WithColumns sets the requested number of grid columns.
func WithColumns(n int) Option {
	return func(c *Converter) {
		c.Columns = n
	}
}

// WithAspect sets the cell height/width ratio of the grid.
func WithAspect(aspect float64) Option {
	return func(c *Converter) {
		c.Aspect = aspect
	}
}

// WithBackground sets the canvas background.
func WithBackground(bg Background) Option {
	return func(c *Converter) {
		c.Background = bg
	}
}

// WithColor enables per-cell average color fills.
func WithColor(enabled bool) Option {
	return func(c *Converter) {
		c.Color = enabled
	}
}

// WithCrop sets the crop mode.
func WithCrop(mode CropMode) Option {
	return func(c *Converter) {
		c.Crop = mode
	}
}

// WithOverlayRatio sets the size of the picture-in-picture inset added to
// video frames, as a fraction of the output size. 0 disables it.
func WithOverlayRatio(ratio float64) Option {
	return func(c *Converter) {
		c.OverlayRatio = ratio
	}
}

// WithFace sets the font face glyphs are drawn with.
func WithFace(f *Face) Option {
	return func(c *Converter) {
		c.face = f
	}
}

// WithWorkers sets how many goroutines sample grid rows.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		c.Workers = n
	}
}

// WithLogger sets the logger informational recoveries are reported to.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// Face returns the font face glyphs are drawn with.
func (c *Converter) Face() *Face {
	return c.face
}

// Grid returns the grid for a width x height source. The fixed-cell
// fallback is logged once per distinct grid.
func (c *Converter) Grid(width, height int) (Grid, error) {
	g, err := NewGrid(width, height, c.Columns, c.Aspect)
	if err != nil {
		return Grid{}, err
	}
	c.mu.Lock()
	changed := !g.SameShape(c.lastGrid)
	c.lastGrid = g
	c.mu.Unlock()
	if changed && g.Fallback {
		c.logger.Printf("%v: %d columns do not fit a %dx%d source, using %dx%d cells (%dx%d grid)",
			ErrDegenerateGrid, c.Columns, width, height,
			FallbackCellWidth, FallbackCellHeight, g.NumCols, g.NumRows)
	}
	return g, nil
}

func (c *Converter) cells(src *imageutil.RGBAImage, color bool) (Cells, error) {
	g, err := c.Grid(src.Width(), src.Height())
	if err != nil {
		return Cells{}, err
	}
	var s Sampler
	if color {
		s = NewColorSampler(src)
	} else {
		s = NewGraySampler(src)
	}
	return MapCells(g, s, c.Ramp, c.Workers), nil
}

// Text converts src to rows of glyphs using grayscale sampling.
func (c *Converter) Text(src image.Image) ([]string, error) {
	cells, err := c.cells(imageutil.RGBAImageFromImage(src), false)
	if err != nil {
		return nil, err
	}
	return cells.Rows(c.Ramp), nil
}

// Canvas renders src onto an uncropped canvas.
func (c *Converter) Canvas(src image.Image) (image.Image, error) {
	return c.canvas(imageutil.RGBAImageFromImage(src))
}

func (c *Converter) canvas(src *imageutil.RGBAImage) (image.Image, error) {
	cells, err := c.cells(src, c.Color)
	if err != nil {
		return nil, err
	}
	return Render(cells, c.Ramp, RenderOptions{
		Face:       c.face,
		Background: c.Background,
		Color:      c.Color,
	})
}

// Image renders src and applies the crop mode.
func (c *Converter) Image(src image.Image) (image.Image, error) {
	canvas, err := c.Canvas(src)
	if err != nil {
		return nil, err
	}
	if c.Crop == CropNone {
		return canvas, nil
	}
	out, _, err := c.cropToContent(canvas)
	return out, err
}

// cropToContent crops canvas and logs a uniformly background canvas.
func (c *Converter) cropToContent(canvas image.Image) (image.Image, image.Rectangle, error) {
	out, box, cropped, err := CropToContent(canvas, c.Background)
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	if !cropped {
		c.logger.Printf("%v: canvas is uniformly %s, keeping it uncropped",
			ErrEmptyBoundingBox, c.Background)
	}
	return out, box, nil
}
