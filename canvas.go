package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/wbrown/img2ascii/imageutil"
)

// Background is the canvas background level: black (0) or white (255).
type Background uint8

const (
	Black Background = 0
	White Background = 255
)

// ParseBackground parses "black" or "white".
func ParseBackground(s string) (Background, error) {
	switch strings.ToLower(s) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	return Black, fmt.Errorf("%w: background %q (want black or white)", ErrInvalidInput, s)
}

// Level returns the background intensity.
func (b Background) Level() uint8 {
	return uint8(b)
}

// Foreground returns the monochrome glyph intensity, 255 - Level.
func (b Background) Foreground() uint8 {
	return 255 - uint8(b)
}

// RGB returns the background as a color triple.
func (b Background) RGB() imageutil.RGB {
	return imageutil.Gray(uint8(b))
}

func (b Background) String() string {
	if b == White {
		return "white"
	}
	return "black"
}

// Cells holds the Sample of every grid cell, row-major.
type Cells struct {
	Grid    Grid
	Samples [][]Sample
}

// MapCells samples every cell of grid. With workers > 1 rows are sampled
// concurrently; the result is identical to sequential sampling.
func MapCells(grid Grid, s Sampler, ramp Ramp, workers int) Cells {
	samples := make([][]Sample, grid.NumRows)
	sampleRow := func(row int) {
		out := make([]Sample, grid.NumCols)
		for col := range out {
			out[col] = s.Sample(grid.Cell(row, col), ramp)
		}
		samples[row] = out
	}

	if workers <= 1 || grid.NumRows == 1 {
		for row := 0; row < grid.NumRows; row++ {
			sampleRow(row)
		}
		return Cells{Grid: grid, Samples: samples}
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < min(workers, grid.NumRows); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				sampleRow(row)
			}
		}()
	}
	for row := 0; row < grid.NumRows; row++ {
		rows <- row
	}
	close(rows)
	wg.Wait()
	return Cells{Grid: grid, Samples: samples}
}

// Rows returns the glyph of every cell, one string per grid row.
func (c Cells) Rows(ramp Ramp) []string {
	rows := make([]string, len(c.Samples))
	var sb strings.Builder
	for i, row := range c.Samples {
		sb.Reset()
		for _, s := range row {
			sb.WriteRune(ramp.Glyph(s.Index))
		}
		rows[i] = sb.String()
	}
	return rows
}

// RenderOptions controls how cells are drawn onto a canvas.
type RenderOptions struct {
	Face       *Face
	Background Background
	// Color fills each glyph with its cell's average color. Otherwise
	// glyphs use the background's foreground level on a grayscale canvas.
	Color bool
}

// Render draws the glyph of every cell onto a fresh canvas of
// NumCols*cellWidth x NumRows*cellHeight pixels. Cell (row, col) is drawn
// at (col*cellWidth, row*cellHeight). Monochrome canvases are
// *imageutil.GrayImage, color canvases *imageutil.RGBAImage.
func Render(cells Cells, ramp Ramp, opts RenderOptions) (image.Image, error) {
	if opts.Face == nil {
		return nil, fmt.Errorf("%w: no font face", ErrInvalidInput)
	}
	cw, ch := opts.Face.CellSize()
	width, height := cells.Grid.NumCols*cw, cells.Grid.NumRows*ch

	// dst is the concrete image behind canvas so glyph draws take the
	// fast paths of image/draw.
	var canvas image.Image
	var dst draw.Image
	var mono color.Color
	if opts.Color {
		rgba := imageutil.NewRGBAImage(width, height)
		rgba.Fill(opts.Background.RGB())
		canvas, dst = rgba, rgba.RGBA
	} else {
		gray := imageutil.NewGrayImage(width, height)
		gray.Fill(opts.Background.Level())
		canvas, dst = gray, gray.Gray
		mono = color.Gray{Y: opts.Background.Foreground()}
	}

	for row, samples := range cells.Samples {
		for col, s := range samples {
			fill := mono
			if opts.Color {
				fill = s.Color.ToColor()
			}
			opts.Face.DrawGlyph(dst, col*cw, row*ch, ramp.Glyph(s.Index), fill)
		}
	}
	return canvas, nil
}
