package img2ascii

import (
	"fmt"
	"strings"
	"sync"

	"github.com/wbrown/img2ascii/imageutil"
)

// ColorDepth selects how ANSI text encodes glyph colors.
type ColorDepth int

const (
	// TrueColor emits 24-bit SGR color codes (38;2;r;g;b).
	TrueColor ColorDepth = iota
	// Color256 emits the nearest xterm 256-color code (38;5;n).
	Color256
)

// ParseColorDepth parses "truecolor" or "256".
func ParseColorDepth(s string) (ColorDepth, error) {
	switch strings.ToLower(s) {
	case "truecolor", "24bit":
		return TrueColor, nil
	case "256":
		return Color256, nil
	}
	return TrueColor, fmt.Errorf("%w: color depth %q (want truecolor or 256)", ErrInvalidInput, s)
}

func (d ColorDepth) String() string {
	if d == Color256 {
		return "256"
	}
	return "truecolor"
}

// cubeLevels are the channel intensities of the xterm 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// xterm256 returns codes 16-255 of the xterm palette: the color cube and
// the gray ramp. Codes 0-15 are left out since terminals theme them.
func xterm256() []paletteEntry {
	entries := make([]paletteEntry, 0, 240)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				entries = append(entries, paletteEntry{
					Color: imageutil.RGB{R: cubeLevels[r], G: cubeLevels[g], B: cubeLevels[b]},
					Code:  uint8(16 + 36*r + 6*g + b),
				})
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		entries = append(entries, paletteEntry{Color: imageutil.Gray(v), Code: uint8(232 + i)})
	}
	return entries
}

var xtermTree = sync.OnceValue(func() *colorNode {
	return buildKDTree(xterm256())
})

// Nearest256 returns the xterm 256-color code closest to c and the color
// it displays.
func Nearest256(c imageutil.RGB) (code uint8, shown imageutil.RGB) {
	e := xtermTree().nearest(c)
	return e.Code, e.Color
}
