package img2ascii

import (
	"errors"
	"testing"
)

func TestRampIndex(t *testing.T) {
	ramp := MustRamp("@%#*+=-:. ")

	tests := []struct {
		avg  float64
		want int
	}{
		{0, 0},
		{25.4, 0},
		{25.5, 1},
		{100, 3},
		{128, 5},
		{254.9, 9},
		{255, 9},
		{-3, 0},
		{300, 9},
	}
	for _, tt := range tests {
		if got := ramp.Index(tt.avg); got != tt.want {
			t.Errorf("Index(%v): expected %d, got %d", tt.avg, tt.want, got)
		}
	}
}

func TestRampIndexMonotonic(t *testing.T) {
	for _, s := range []string{"@ ", "@%#*+=-:. ", charsets["general"].Modes["complex"]} {
		ramp := MustRamp(s)
		prev := 0
		for v := 0.0; v <= 255; v += 0.25 {
			idx := ramp.Index(v)
			if idx < prev {
				t.Fatalf("ramp %q: index dropped from %d to %d at %v", s, prev, idx, v)
			}
			if idx < 0 || idx >= ramp.Len() {
				t.Fatalf("ramp %q: index %d out of range at %v", s, idx, v)
			}
			prev = idx
		}
	}
}

func TestNewRampTooShort(t *testing.T) {
	for _, s := range []string{"", "@"} {
		if _, err := NewRamp(s); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NewRamp(%q): expected ErrInvalidInput, got %v", s, err)
		}
	}
}

func TestRampRunes(t *testing.T) {
	ramp := MustRamp("お制 ")
	if ramp.Len() != 3 {
		t.Errorf("Expected 3 glyphs, got %d", ramp.Len())
	}
	if ramp.Darkest() != 'お' || ramp.Glyph(1) != '制' {
		t.Errorf("Unexpected glyph order in %q", ramp)
	}
}

func TestLookupCharset(t *testing.T) {
	cs, err := LookupCharset("English")
	if err != nil {
		t.Fatalf("LookupCharset failed: %v", err)
	}
	if cs.Language != "english" || cs.Aspect != 2 || cs.Sample != 'A' {
		t.Errorf("Unexpected english metadata: %+v", cs)
	}
	if cs.DefaultMode() != "standard" {
		t.Errorf("Expected default mode standard, got %s", cs.DefaultMode())
	}

	_, err = LookupCharset("klingon")
	if !errors.Is(err, ErrUnknownCharset) || !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrUnknownCharset wrapping ErrInvalidInput, got %v", err)
	}
}

func TestCharsetModes(t *testing.T) {
	general, _ := LookupCharset("general")
	if !general.Ordered {
		t.Error("Expected general ramps to be ordered")
	}
	if got := general.DefaultMode(); got != "simple" {
		t.Errorf("Expected general default simple, got %s", got)
	}
	ramp, err := general.Ramp("SIMPLE")
	if err != nil {
		t.Fatalf("Ramp failed: %v", err)
	}
	if ramp.String() != "@%#*+=-:. " {
		t.Errorf("Unexpected simple ramp %q", ramp)
	}
	if _, err := general.Ramp("standard"); !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("Expected ErrUnknownCharset, got %v", err)
	}

	japanese, _ := LookupCharset("japanese")
	if got := japanese.DefaultMode(); got != "hiragana" {
		t.Errorf("Expected japanese default hiragana, got %s", got)
	}
	if japanese.Aspect != 1 || japanese.Sample != 'お' {
		t.Errorf("Unexpected japanese metadata: %+v", japanese)
	}
}

func TestRegistryComplete(t *testing.T) {
	want := []string{
		"chinese", "english", "french", "general", "german", "italian",
		"japanese", "korean", "polish", "portuguese", "russian", "spanish",
	}
	got := Languages()
	if len(got) != len(want) {
		t.Fatalf("Expected %d languages, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Language %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	for _, name := range got {
		cs, _ := LookupCharset(name)
		for _, mode := range cs.ModeNames() {
			if _, err := cs.Ramp(mode); err != nil {
				t.Errorf("%s/%s: %v", name, mode, err)
			}
		}
	}
}
