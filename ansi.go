package img2ascii

import (
	"image"
	"strconv"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

const (
	esc       = "\x1b"
	ansiReset = esc + "[0m"
)

// ANSI converts src to rows of glyphs colored with SGR escape codes, for
// display on a terminal. Glyphs are picked with color sampling, like
// color image rendering, and the terminal's own background is kept.
func (c *Converter) ANSI(src image.Image, depth ColorDepth) ([]string, error) {
	cells, err := c.cells(imageutil.RGBAImageFromImage(src), true)
	if err != nil {
		return nil, err
	}
	return cells.ANSIRows(c.Ramp, depth), nil
}

// ANSIRows returns the glyph of every cell preceded by its foreground
// color code. Runs of cells sharing a code share one escape sequence, and
// every row ends with a reset.
func (c Cells) ANSIRows(ramp Ramp, depth ColorDepth) []string {
	rows := make([]string, len(c.Samples))
	var sb strings.Builder
	for i, row := range c.Samples {
		sb.Reset()
		current := ""
		for _, s := range row {
			if code := foregroundCode(s.Color, depth); code != current {
				sb.WriteString(esc)
				sb.WriteByte('[')
				sb.WriteString(code)
				sb.WriteByte('m')
				current = code
			}
			sb.WriteRune(ramp.Glyph(s.Index))
		}
		sb.WriteString(ansiReset)
		rows[i] = sb.String()
	}
	return rows
}

// foregroundCode formats the SGR parameters selecting c as the foreground.
func foregroundCode(c imageutil.RGB, depth ColorDepth) string {
	var code strings.Builder
	if depth == Color256 {
		n, _ := Nearest256(c)
		code.WriteString("38;5;")
		code.WriteString(strconv.Itoa(int(n)))
		return code.String()
	}
	code.WriteString("38;2;")
	code.WriteString(strconv.Itoa(int(c.R)))
	code.WriteByte(';')
	code.WriteString(strconv.Itoa(int(c.G)))
	code.WriteByte(';')
	code.WriteString(strconv.Itoa(int(c.B)))
	return code.String()
}
