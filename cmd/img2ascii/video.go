package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/gifio"
	"github.com/wbrown/img2ascii/video"
)

var videoFlags struct {
	scale   int
	fps     int
	overlay float64
	fourcc  string
}

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Render a video or animated GIF as glyph art",
	Long: `Render every frame of a video or animated GIF as glyph art. Files ending in
.gif are read and written without OpenCV; any other container goes through
OpenCV with the codec named by --fourcc.`,
	Example: `  img2ascii video --input clip.mp4 --output clip.avi --background white
  img2ascii video --input loop.gif --output loop.gif --color --overlay_ratio 0`,
	Args: cobra.NoArgs,
	RunE: runVideo,
}

func init() {
	f := videoCmd.Flags()
	f.IntVar(&videoFlags.scale, "scale", 1, "upsize factor of the output")
	f.IntVar(&videoFlags.fps, "fps", 0, "output frame rate (0 inherits the source rate)")
	f.Float64Var(&videoFlags.overlay, "overlay_ratio", 0.2, "size of the source inset in the bottom-right corner, 0 disables it")
	f.StringVar(&videoFlags.fourcc, "fourcc", video.DefaultFourCC, "codec of non-GIF output")
	rootCmd.AddCommand(videoCmd)
}

// frameCounter is implemented by sources that know their length.
type frameCounter interface {
	FrameCount() int64
}

func runVideo(cmd *cobra.Command, args []string) error {
	if err := requirePaths(); err != nil {
		return err
	}
	if videoFlags.scale < 1 {
		return fmt.Errorf("%w: --scale %d must be at least 1", img2ascii.ErrInvalidInput, videoFlags.scale)
	}
	conv, err := converter(defaults{
		language:  "general",
		numCols:   100,
		fontScale: float64(videoFlags.scale),
		overlay:   videoFlags.overlay,
	})
	if err != nil {
		return err
	}
	pipe, err := img2ascii.NewPipeline(conv, float64(videoFlags.fps))
	if err != nil {
		return err
	}

	src, err := openSource(cfg.input)
	if err != nil {
		return err
	}
	defer src.Close()

	var total int64 = -1
	if fc, ok := src.(frameCounter); ok {
		total = fc.FrameCount()
	}
	if bar := newProgress(total); bar != nil {
		pipe.OnFrame = func(n int) { _ = bar.Set(n) }
		defer bar.Finish()
	}

	start := time.Now()
	n, err := pipe.Run(cmd.Context(), src, openSink(cfg.output, videoFlags.fourcc))
	if err != nil {
		return err
	}
	logger.Printf("wrote %d frames to %s in %v", n, cfg.output, time.Since(start).Round(time.Millisecond))
	return nil
}

func isGIF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".gif")
}

// gifSource adapts a gifio.Reader to report its length.
type gifSource struct {
	*gifio.Reader
}

func (s gifSource) FrameCount() int64 {
	return int64(s.Len())
}

func openSource(path string) (img2ascii.FrameSource, error) {
	if isGIF(path) {
		r, err := gifio.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", img2ascii.ErrInvalidInput, err)
		}
		return gifSource{r}, nil
	}
	c, err := video.OpenCapture(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", img2ascii.ErrInvalidInput, err)
	}
	return c, nil
}

func openSink(path, fourcc string) img2ascii.SinkOpener {
	return func(width, height int, fps float64) (img2ascii.FrameSink, error) {
		logger.Printf("writing %dx%d frames at %g fps", width, height, fps)
		if isGIF(path) {
			return gifio.Create(path, width, height, fps)
		}
		return video.OpenWriter(path, fourcc, fps, width, height)
	}
}

// newProgress returns a progress bar on stderr, or nil when stderr is not
// a terminal or output is quiet. An unknown total shows a spinner.
func newProgress(total int64) *progressbar.ProgressBar {
	if cfg.quiet || !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionSetItsString("frames"),
		progressbar.OptionShowIts(),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)
}
