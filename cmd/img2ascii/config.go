package main

import (
	"fmt"
	"strings"

	"github.com/wbrown/img2ascii"
)

// defaults are the per-command values used when a shared flag is left
// at its zero value.
type defaults struct {
	language string
	numCols  int
	// fontScale multiplies the font size; video output is upsized this way.
	fontScale float64
	overlay   float64
}

// converter builds the converter for a command from the shared flags.
func converter(d defaults) (*img2ascii.Converter, error) {
	language := cfg.language
	if language == "" {
		language = d.language
	}
	charset, err := img2ascii.LookupCharset(language)
	if err != nil {
		return nil, err
	}
	mode := cfg.mode
	if mode == "" {
		mode = charset.DefaultMode()
	}
	ramp, err := charset.Ramp(mode)
	if err != nil {
		return nil, err
	}

	numCols := cfg.numCols
	if numCols == 0 {
		numCols = d.numCols
	}
	if numCols < 1 {
		return nil, fmt.Errorf("%w: --num_cols %d must be at least 1", img2ascii.ErrInvalidInput, numCols)
	}
	bg, err := img2ascii.ParseBackground(cfg.background)
	if err != nil {
		return nil, err
	}
	crop, err := img2ascii.ParseCropMode(cfg.crop)
	if err != nil {
		return nil, err
	}

	size := cfg.fontSize
	if size == 0 {
		size = charset.FontSize
	}
	scale := d.fontScale
	if scale == 0 {
		scale = 1
	}
	face, err := loadFace(cfg.font, size*scale, charset.Sample)
	if err != nil {
		return nil, err
	}
	if face.Coverage(charset.Sample) == 0 {
		logger.Printf("font %s has no glyph for %q, try --font with a font covering %s",
			face.Name(), charset.Sample, charset.Language)
	}
	if !charset.Ordered {
		if ramp, err = img2ascii.SortByCoverage(ramp, face); err != nil {
			return nil, err
		}
	}

	return img2ascii.NewConverter(
		img2ascii.WithRamp(ramp),
		img2ascii.WithColumns(numCols),
		img2ascii.WithAspect(charset.Aspect),
		img2ascii.WithBackground(bg),
		img2ascii.WithColor(cfg.color),
		img2ascii.WithCrop(crop),
		img2ascii.WithOverlayRatio(d.overlay),
		img2ascii.WithFace(face),
		img2ascii.WithWorkers(cfg.workers),
		img2ascii.WithLogger(logger),
	)
}

func loadFace(name string, size float64, sample rune) (*img2ascii.Face, error) {
	switch strings.ToLower(name) {
	case "":
		return img2ascii.DefaultFace(size, sample)
	case "basic":
		return img2ascii.BasicFace(), nil
	}
	return img2ascii.LoadFace(name, size, sample)
}
