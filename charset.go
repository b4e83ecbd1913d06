package img2ascii

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Ramp is an immutable, brightness-ascending sequence of glyphs. Index 0
// is used for the darkest cells and the last glyph for the brightest.
type Ramp struct {
	glyphs []rune
}

// NewRamp builds a Ramp from s. A ramp needs at least two glyphs.
func NewRamp(s string) (Ramp, error) {
	glyphs := []rune(s)
	if len(glyphs) < 2 {
		return Ramp{}, fmt.Errorf("%w: ramp %q needs at least 2 glyphs",
			ErrInvalidInput, s)
	}
	return Ramp{glyphs: glyphs}, nil
}

// MustRamp is like NewRamp but panics on error. Intended for
// package-level ramps built from literals.
func MustRamp(s string) Ramp {
	r, err := NewRamp(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of glyphs in the ramp.
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// Glyph returns the glyph at index i.
func (r Ramp) Glyph(i int) rune {
	return r.glyphs[i]
}

// Darkest returns the glyph used for the darkest cells.
func (r Ramp) Darkest() rune {
	return r.glyphs[0]
}

// Index maps an average intensity in [0, 255] to a ramp index:
// clamp(floor(avg/255 * N), 0, N-1).
func (r Ramp) Index(avg float64) int {
	n := len(r.glyphs)
	idx := int(math.Floor(avg * float64(n) / 255))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// String returns the glyphs as a string.
func (r Ramp) String() string {
	return string(r.glyphs)
}

// Charset describes one language family of the glyph registry: its
// variants (modes) and the metrics used to render it.
type Charset struct {
	Language string
	Modes    map[string]string

	// Sample is the glyph measured to size an output cell.
	Sample rune
	// Aspect is the cell height/width ratio used when building the grid.
	Aspect float64
	// FontSize is the default font size in pixels.
	FontSize float64
	// Ordered reports whether the mode strings are already sorted by
	// brightness. Unordered alphabets are sorted with SortByCoverage.
	Ordered bool
}

// Ramp returns the ramp for mode, as stored in the registry.
func (c Charset) Ramp(mode string) (Ramp, error) {
	s, ok := c.Modes[strings.ToLower(mode)]
	if !ok {
		return Ramp{}, fmt.Errorf("%w: %w: mode %q for language %q (have %s)",
			ErrInvalidInput, ErrUnknownCharset, mode, c.Language, strings.Join(c.ModeNames(), ", "))
	}
	return NewRamp(s)
}

// ModeNames returns the available modes, sorted.
func (c Charset) ModeNames() []string {
	names := make([]string, 0, len(c.Modes))
	for name := range c.Modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMode returns the mode used when none is requested.
func (c Charset) DefaultMode() string {
	if _, ok := c.Modes["standard"]; ok {
		return "standard"
	}
	if _, ok := c.Modes["simple"]; ok {
		return "simple"
	}
	return c.ModeNames()[0]
}

const (
	latinSample = 'A'
	latinAspect = 2
	latinSize   = 20
	cjkAspect   = 1
	cjkSize     = 10
)

var charsets = map[string]Charset{
	"general": {
		Language: "general",
		Modes: map[string]string{
			"simple":  "@%#*+=-:. ",
			"complex": "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ",
		},
		Sample: latinSample, Aspect: latinAspect, FontSize: latinSize,
		Ordered: true,
	},
	"english": {
		Language: "english",
		Modes: map[string]string{
			"standard": "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZz",
		},
		Sample: latinSample, Aspect: latinAspect, FontSize: latinSize,
	},
	"german": {
		Language: "german",
		Modes: map[string]string{
			"standard": "AaÄäBbßCcDdEeFfGgHhIiJjKkLlMmNnOoÖöPpQqRrSsTtUuÜüVvWwXxYyZz",
		},
		Sample: latinSample, Aspect: latinAspect, FontSize: latinSize,
	},
	"french": {
		Language: "french",
		Modes: map[string]string{
			"standard": "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZzÆæŒœÇçÀàÂâÉéÈèÊêËëÎîÎïÔôÛûÙùŸÿ",
		},
		Sample: latinSample, Aspect: latinAspect, FontSize: latinSize,
	},
	"spanish": {
		Language: "spanish",
		Modes: map[string]string{
			"standard": "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZzÑñáéíóú¡¿",
		},
		Sample: latinSample, Aspect: latinAspect, FontSize: latinSize,
	},
	"italian": {
		Language: "italian",
		Modes: map[string]string{
			"standard": "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZzÀÈàèéìòù",
		},
		Sample: latinSample, Aspect: latinAspect, FontSize: latinSize,
	},
	"portuguese": {
		Language: "portuguese",
		Modes: map[string]string{
			"standard": "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZzàÀáÁâÂãÃçÇéÉêÊíÍóÓôÔõÕúÚ",
		},
		Sample: latinSample, Aspect: latinAspect, FontSize: latinSize,
	},
	"polish": {
		Language: "polish",
		Modes: map[string]string{
			"standard": "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpRrSsTtUuWwYyZzĄąĘęÓóŁłŃńŻżŚśĆćŹź",
		},
		Sample: latinSample, Aspect: latinAspect, FontSize: latinSize,
	},
	"russian": {
		Language: "russian",
		Modes: map[string]string{
			"standard": "АаБбВвГгДдЕеЁёЖжЗзИиЙйКкЛлМмНнОоПпРрСсТтУуФфХхЦцЧчШшЩщЪъЫыЬьЭэЮюЯя",
		},
		Sample: 'Ш', Aspect: latinAspect, FontSize: latinSize,
	},
	"chinese": {
		Language: "chinese",
		Modes: map[string]string{
			"standard": "龘䶑瀰幗獼鑭躙䵹觿䲔釅欄鐮䥯鶒獭鰽襽螻鰱蹦屭繩圇婹歜剛屧磕媿慪像僭堳噞呱棒偁呣塙唑浠唼刻凌咄亟拮俗参坒估这聿布允仫忖玗甴木亪女去凸五圹亐囗弌九人亏产斗丩艹刂彳丬了５丄三亻讠厂丆丨１二宀冖乛一丶、",
		},
		Sample: '制', Aspect: cjkAspect, FontSize: cjkSize,
	},
	"korean": {
		Language: "korean",
		Modes: map[string]string{
			"standard": "ㄱㄴㄷㄹㅁㅂㅅㅇㅈㅊㅋㅌㅍㅎㅏㅑㅓㅕㅗㅛㅜㅠㅡㅣ",
		},
		Sample: 'ㅊ', Aspect: cjkAspect, FontSize: cjkSize,
	},
	"japanese": {
		Language: "japanese",
		Modes: map[string]string{
			"hiragana": "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわをん",
			"katakana": "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン",
		},
		Sample: 'お', Aspect: cjkAspect, FontSize: cjkSize,
	},
}

// LookupCharset returns the registry entry for language (case-insensitive).
func LookupCharset(language string) (Charset, error) {
	c, ok := charsets[strings.ToLower(language)]
	if !ok {
		return Charset{}, fmt.Errorf("%w: %w: language %q (have %s)",
			ErrInvalidInput, ErrUnknownCharset, language, strings.Join(Languages(), ", "))
	}
	return c, nil
}

// Languages returns the registered language names, sorted.
func Languages() []string {
	names := make([]string, 0, len(charsets))
	for name := range charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
