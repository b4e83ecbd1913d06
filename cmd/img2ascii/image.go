package main

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/video"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Render a still image as glyph art",
	Example: `  img2ascii image --input photo.jpg --output photo.png
  img2ascii image --input photo.jpg --output photo.png --color --language russian`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePaths(); err != nil {
			return err
		}
		conv, err := converter(defaults{language: "english", numCols: 300})
		if err != nil {
			return err
		}
		src, err := loadSource(cfg.input)
		if err != nil {
			return err
		}
		out, err := conv.Image(src)
		if err != nil {
			return err
		}
		if err := imageutil.SaveImage(out, cfg.output); err != nil {
			return fmt.Errorf("%w: %w", img2ascii.ErrWriterInit, err)
		}
		b := out.Bounds()
		logger.Printf("wrote %dx%d image to %s", b.Dx(), b.Dy(), cfg.output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)
}

// loadSource decodes a still image with the Go decoders, falling back to
// OpenCV for formats they do not handle.
func loadSource(path string) (image.Image, error) {
	img, err := imageutil.LoadImage(path)
	if err == nil {
		return img, nil
	}
	cvImg, cvErr := video.LoadImage(path)
	if cvErr != nil {
		return nil, fmt.Errorf("%w: %w", img2ascii.ErrInvalidInput, err)
	}
	return cvImg, nil
}
