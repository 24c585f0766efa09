package color

import (
	"sync"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/huegrid/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"HEX", FormatHex, false},
		{"hex", FormatHex, false},
		{"RGBA", FormatRGBA, false},
		{"rgb", FormatRGBA, false},
		{" hsla ", FormatHSLA, false},
		{"HSL", FormatHSLA, false},
		{"", "", true},
		{"cmyk", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ParseFormat(%q) code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatValid(t *testing.T) {
	for _, f := range Formats {
		if !f.Valid() {
			t.Errorf("%s.Valid() = false, want true", f)
		}
	}
	if Format("HSL").Valid() {
		t.Error(`Format("HSL").Valid() = true, want false`)
	}
}

func TestNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   HSL
		want HSL
	}{
		{"in range", NewHSL(120, 50, 50), NewHSL(120, 50, 50)},
		{"hue 360 wraps", NewHSL(360, 99, 99), NewHSL(0, 99, 99)},
		{"hue 720 wraps", NewHSL(720, 10, 10), NewHSL(0, 10, 10)},
		{"negative hue", NewHSL(-90, 10, 10), NewHSL(270, 10, 10)},
		{"clamps", HSL{H: 10, S: 120, L: -5, A: 2}, HSL{H: 10, S: 100, L: 0, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		color  HSL
		format Format
		want   string
	}{
		{"hex near white", NewHSL(360, 99, 99), FormatHex, "#fffafa"},
		{"hex red", NewHSL(0, 100, 50), FormatHex, "#ff0000"},
		{"hex gray rounds half up", NewHSL(0, 0, 50), FormatHex, "#808080"},
		{"hex black", NewHSL(0, 0, 0), FormatHex, "#000000"},
		{"hex translucent", HSL{H: 0, S: 100, L: 50, A: 0.5}, FormatHex, "#ff000080"},

		{"rgb red", NewHSL(0, 100, 50), FormatRGBA, "rgb(255, 0, 0)"},
		{"rgb gray keeps fraction", NewHSL(0, 0, 50), FormatRGBA, "rgb(127.5, 127.5, 127.5)"},
		{"rgba translucent", HSL{H: 0, S: 100, L: 50, A: 0.5}, FormatRGBA, "rgba(255, 0, 0, 0.5)"},

		{"hsl wraps hue", NewHSL(360, 99, 99), FormatHSLA, "hsl(0, 99%, 99%)"},
		{"hsl plain", NewHSL(180, 49, 49), FormatHSLA, "hsl(180, 49%, 49%)"},
		{"hsla translucent", HSL{H: 0, S: 100, L: 50, A: 0.25}, FormatHSLA, "hsla(0, 100%, 50%, 0.25)"},

		{"unknown format falls back to hex", NewHSL(0, 100, 50), Format("CMYK"), "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.color, tt.format); got != tt.want {
				t.Errorf("Encode(%+v, %s) = %q, want %q", tt.color, tt.format, got, tt.want)
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	for h := 0; h <= 360; h += 36 {
		for l := 0; l <= 99; l += 11 {
			c := NewHSL(float64(h), float64(l), float64(l))
			for _, f := range Formats {
				a, b := Encode(c, f), Encode(c, f)
				if a != b {
					t.Fatalf("Encode(%+v, %s) not deterministic: %q vs %q", c, f, a, b)
				}
			}
		}
	}
}

func TestHexIgnoresAlpha(t *testing.T) {
	if got := Hex(HSL{H: 0, S: 100, L: 50, A: 0.5}); got != "#ff0000" {
		t.Errorf("Hex() = %q, want %q", got, "#ff0000")
	}
}

func TestIsDark(t *testing.T) {
	tests := []struct {
		name  string
		color HSL
		dark  bool
		text  string
	}{
		{"black", NewHSL(0, 0, 0), true, TextLight},
		{"white", NewHSL(0, 0, 100), false, TextDark},
		{"mid teal", NewHSL(180, 49, 49), true, TextLight},
		{"dark red", NewHSL(360, 49, 49), true, TextLight},
		{"pale pink", NewHSL(360, 98, 98), false, TextDark},
		{"yellow", NewHSL(60, 100, 50), false, TextDark},
		{"blue", NewHSL(240, 100, 50), true, TextLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDark(tt.color); got != tt.dark {
				t.Errorf("IsDark(%+v) = %v, want %v (luminance %.4f)", tt.color, got, tt.dark, Luminance(tt.color))
			}
			if got := TextColor(tt.color); got != tt.text {
				t.Errorf("TextColor(%+v) = %q, want %q", tt.color, got, tt.text)
			}
		})
	}
}

func TestTextColorIn(t *testing.T) {
	// hsl(25, 72%, 72%) is just light enough (0.50007) while its hex form
	// #ebaf84 is just dark (0.49988).
	c := NewHSL(25, 72, 72)
	if got := Encode(c, FormatHex); got != "#ebaf84" {
		t.Fatalf("Encode = %s, want #ebaf84", got)
	}
	if got := TextColorIn(c, FormatRGBA); got != TextDark {
		t.Errorf("TextColorIn(RGBA) = %s, want %s", got, TextDark)
	}
	if got := TextColorIn(c, FormatHSLA); got != TextDark {
		t.Errorf("TextColorIn(HSLA) = %s, want %s", got, TextDark)
	}
	if got := TextColorIn(c, FormatHex); got != TextLight {
		t.Errorf("TextColorIn(HEX) = %s, want %s", got, TextLight)
	}

	for h := 0; h < 360; h += 7 {
		for l := 0; l <= 100; l += 3 {
			c := NewHSL(float64(h), float64(l), float64(l))
			hex, err := colorful.Hex(Encode(c, FormatHex))
			if err != nil {
				t.Fatal(err)
			}
			if got, want := TextColorIn(c, FormatHex), textFor(hex); got != want {
				t.Fatalf("TextColorIn(%+v, HEX) = %s, want %s", c, got, want)
			}
		}
	}
}

func TestTextColorStable(t *testing.T) {
	c := NewHSL(200, 40, 55)
	first := TextColor(c)
	for i := 0; i < 100; i++ {
		if got := TextColor(c); got != first {
			t.Fatalf("TextColor changed between calls: %q then %q", first, got)
		}
	}
}

func TestConverter(t *testing.T) {
	cv := NewConverter(4)
	c := NewHSL(360, 99, 99)

	if got := cv.Convert(c, FormatHex); got != "#fffafa" {
		t.Errorf("Convert() = %q, want %q", got, "#fffafa")
	}
	if got := cv.Convert(c, FormatHex); got != "#fffafa" {
		t.Errorf("cached Convert() = %q, want %q", got, "#fffafa")
	}
	if cv.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cv.Len())
	}

	_ = cv.Convert(c, FormatHSLA)
	if cv.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after second format", cv.Len())
	}

	for h := 0; h < 10; h++ {
		_ = cv.Convert(NewHSL(float64(h), 50, 50), FormatHex)
	}
	if cv.Len() != 4 {
		t.Errorf("Len() = %d, want capacity 4", cv.Len())
	}

	cv.Purge()
	if cv.Len() != 0 {
		t.Errorf("Len() = %d after Purge, want 0", cv.Len())
	}
}

func TestConverterDefaultSize(t *testing.T) {
	cv := NewConverter(0)
	if cv == nil {
		t.Fatal("NewConverter(0) returned nil")
	}
	if got := cv.Convert(NewHSL(0, 100, 50), FormatRGBA); got != "rgb(255, 0, 0)" {
		t.Errorf("Convert() = %q, want %q", got, "rgb(255, 0, 0)")
	}
}

func TestConverterConcurrent(t *testing.T) {
	cv := NewConverter(64)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for h := 0; h < 100; h++ {
				c := NewHSL(float64(h*i), 50, 50)
				if got, want := cv.Convert(c, FormatHex), Encode(c, FormatHex); got != want {
					t.Errorf("Convert() = %q, want %q", got, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
