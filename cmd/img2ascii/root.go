package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// settings holds the flags shared by every conversion command.
type settings struct {
	input      string
	output     string
	language   string
	mode       string
	background string
	numCols    int
	font       string
	fontSize   float64
	color      bool
	crop       string
	workers    int
	quiet      bool
}

var (
	cfg    settings
	logger = log.New(io.Discard, "", 0)
)

// envOverrides maps flags to the environment variables that can supply
// their defaults.
var envOverrides = []struct {
	flag string
	env  string
}{
	{"font", "IMG2ASCII_FONT"},
	{"language", "IMG2ASCII_LANGUAGE"},
	{"mode", "IMG2ASCII_MODE"},
	{"background", "IMG2ASCII_BACKGROUND"},
}

var rootCmd = &cobra.Command{
	Use:   "img2ascii",
	Short: "Render images and videos as glyph art",
	Long: `img2ascii converts images, videos and animated GIFs into pictures made of
characters. Each cell of a grid laid over the source is replaced by a glyph
whose ink matches the cell's brightness, optionally filled with the cell's
average color.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfg.input, "input", "", "path to the input file (required)")
	f.StringVar(&cfg.output, "output", "", "path to the output file (required)")
	f.StringVar(&cfg.language, "language", "", "charset language (see the charsets command)")
	f.StringVar(&cfg.mode, "mode", "", "charset mode within the language")
	f.StringVar(&cfg.background, "background", "black", "background color: black or white")
	f.IntVar(&cfg.numCols, "num_cols", 0, "number of glyph columns (0 uses the command default)")
	f.StringVar(&cfg.font, "font", "", "TrueType font path, or \"basic\" for the 7x13 bitmap face")
	f.Float64Var(&cfg.fontSize, "font_size", 0, "font size in pixels (0 uses the charset default)")
	f.BoolVar(&cfg.color, "color", false, "fill glyphs with the average color of their cell")
	f.StringVar(&cfg.crop, "crop", "content", "crop mode: content or none")
	f.IntVar(&cfg.workers, "workers", 1, "goroutines used to sample grid rows")
	f.BoolVar(&cfg.quiet, "quiet", false, "suppress informational messages")
}

// setup loads an optional .env file, applies environment defaults to flags
// not set on the command line and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	if err := applyEnv(cmd.Flags()); err != nil {
		return err
	}
	logger = log.New(os.Stderr, "img2ascii: ", 0)
	if cfg.quiet {
		logger.SetOutput(io.Discard)
	}
	return nil
}

func applyEnv(flags *pflag.FlagSet) error {
	for _, o := range envOverrides {
		v, ok := os.LookupEnv(o.env)
		if !ok || v == "" || flags.Changed(o.flag) {
			continue
		}
		if err := flags.Set(o.flag, v); err != nil {
			return fmt.Errorf("invalid %s: %w", o.env, err)
		}
	}
	return nil
}

// requirePaths checks that both --input and --output were given.
func requirePaths() error {
	if cfg.input == "" {
		return errors.New("please provide the source with --input")
	}
	if cfg.output == "" {
		return errors.New("please provide the destination with --output")
	}
	return nil
}
