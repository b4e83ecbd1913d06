package main

import (
	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Render an image as plain text",
	Long: `Render an image as rows of characters written to a text file, one line per
grid row. Use --output - to print to stdout. With --color every glyph is
wrapped in an ANSI color escape, for viewing on a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePaths(); err != nil {
			return err
		}
		conv, err := converter(defaults{language: "general", numCols: 150})
		if err != nil {
			return err
		}
		src, err := loadSource(cfg.input)
		if err != nil {
			return err
		}
		depth, err := img2ascii.ParseColorDepth(textDepth)
		if err != nil {
			return err
		}
		var rows []string
		if cfg.color {
			rows, err = conv.ANSI(src, depth)
		} else {
			rows, err = conv.Text(src)
		}
		if err != nil {
			return err
		}
		if cfg.output == "-" {
			return img2ascii.WriteText(cmd.OutOrStdout(), rows)
		}
		if err := img2ascii.SaveText(rows, cfg.output); err != nil {
			return err
		}
		logger.Printf("wrote %d rows to %s", len(rows), cfg.output)
		return nil
	},
}

var textDepth string

func init() {
	textCmd.Flags().StringVar(&textDepth, "depth", "truecolor", "ANSI color depth with --color: truecolor or 256")
	rootCmd.AddCommand(textCmd)
}
