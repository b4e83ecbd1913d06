package img2ascii

import (
	"fmt"
	"image"
	"math"
)

const (
	// FallbackCellWidth and FallbackCellHeight are the fixed cell size
	// used when the requested grid does not fit the source.
	FallbackCellWidth  = 6
	FallbackCellHeight = 12
)

// Grid partitions a source raster into NumRows x NumCols cells.
// Cell bounds are derived from the (fractional) cell size, so the grid
// always covers the source without overflowing it.
type Grid struct {
	SourceWidth  int
	SourceHeight int
	NumCols      int
	NumRows      int
	CellWidth    float64
	CellHeight   float64

	// Fallback is set when the requested column count was discarded in
	// favour of the fixed 6x12 cell size.
	Fallback bool
}

// NewGrid derives the grid for a width x height source with numCols
// columns and cells aspect times taller than they are wide.
//
// If numCols exceeds the width or the derived row count exceeds the
// height, the request is discarded and cells of FallbackCellWidth x
// FallbackCellHeight are used instead. This is not an error; Grid.Fallback
// reports it.
func NewGrid(width, height, numCols int, aspect float64) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, fmt.Errorf("%w: source size %dx%d", ErrInvalidInput, width, height)
	}
	if numCols < 1 {
		return Grid{}, fmt.Errorf("%w: column count %d", ErrInvalidInput, numCols)
	}
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return Grid{}, fmt.Errorf("%w: aspect scale %v", ErrInvalidInput, aspect)
	}

	g := Grid{
		SourceWidth:  width,
		SourceHeight: height,
		NumCols:      numCols,
	}
	g.CellWidth = float64(width) / float64(numCols)
	g.CellHeight = aspect * g.CellWidth
	g.NumRows = int(float64(height) / g.CellHeight)

	if numCols > width || g.NumRows > height {
		g.Fallback = true
		g.CellWidth = FallbackCellWidth
		g.CellHeight = FallbackCellHeight
		g.NumCols = width / FallbackCellWidth
		g.NumRows = height / FallbackCellHeight
	}

	// Sources smaller than one cell still get a single clipped cell.
	g.NumCols = max(g.NumCols, 1)
	g.NumRows = max(g.NumRows, 1)
	return g, nil
}

// Cell returns the pixel rectangle of the cell at (row, col), clipped to
// the source. The rectangle may be empty at rounding boundaries.
func (g Grid) Cell(row, col int) image.Rectangle {
	x1 := int(float64(col) * g.CellWidth)
	y1 := int(float64(row) * g.CellHeight)
	x2 := min(int(math.Ceil(float64(col+1)*g.CellWidth)), g.SourceWidth)
	y2 := min(int(math.Ceil(float64(row+1)*g.CellHeight)), g.SourceHeight)
	return image.Rect(x1, y1, max(x1, x2), max(y1, y2))
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.NumRows * g.NumCols
}

// SameShape reports whether g and o sample identical cell rectangles.
func (g Grid) SameShape(o Grid) bool {
	return g.SourceWidth == o.SourceWidth && g.SourceHeight == o.SourceHeight &&
		g.NumCols == o.NumCols && g.NumRows == o.NumRows &&
		g.CellWidth == o.CellWidth && g.CellHeight == o.CellHeight
}
