package img2ascii

import "errors"

var (
	// ErrInvalidInput reports a missing or undecodable source, or an
	// invalid run parameter. The pipeline never starts.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCharset reports a (language, mode) pair that is not in
	// the glyph registry.
	ErrUnknownCharset = errors.New("unknown charset")

	// ErrDegenerateGrid marks a requested grid that does not fit the
	// source. It is recovered with the fixed 6x12 cell fallback and only
	// ever logged.
	ErrDegenerateGrid = errors.New("degenerate grid")

	// ErrEmptyBoundingBox marks a canvas with no non-background content.
	// It is recovered by keeping the uncropped canvas and only ever
	// logged.
	ErrEmptyBoundingBox = errors.New("empty bounding box")

	// ErrWriterInit reports an output that could not be opened.
	ErrWriterInit = errors.New("cannot open output")
)
