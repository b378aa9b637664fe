package font7s

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDigits(t *testing.T) {
	tests := []struct {
		ch   byte
		want byte
	}{
		{'0', 0x3F},
		{'1', 0x06},
		{'2', 0x5B},
		{'3', 0x4F},
		{'4', 0x66},
		{'5', 0x6D},
		{'6', 0x7D},
		{'7', 0x07},
		{'8', 0x7F},
		{'9', 0x6F},
	}

	for _, tt := range tests {
		t.Run(string(tt.ch), func(t *testing.T) {
			// Digits are identical in both fonts
			assert.Equal(t, tt.want, Get(LookAlike, tt.ch))
			assert.Equal(t, tt.want, Get(Unique, tt.ch))
		})
	}
}

func TestGetFontsDiffer(t *testing.T) {
	tests := []struct {
		name      string
		ch        byte
		lookAlike byte
		unique    byte
	}{
		{"upper S", 'S', 0x6D, 0x2D},
		{"upper O", 'O', 0x3F, 0x2F},
		{"lower f", 'f', 0x71, 0x51},
		{"upper D", 'D', 0x5E, 0x1F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lookAlike, Get(LookAlike, tt.ch))
			assert.Equal(t, tt.unique, Get(Unique, tt.ch))
		})
	}
}

func TestGetDecimalPointOrthogonal(t *testing.T) {
	for _, f := range []Font{LookAlike, Unique} {
		for ch := 0; ch < 0x80; ch++ {
			base := Get(f, byte(ch))
			dotted := Get(f, byte(ch)|0x80)
			assert.Equal(t, base, dotted&0x7F, "%v %#02x", f, ch)
			assert.Equal(t, base|SegDP, dotted, "%v %#02x", f, ch)
		}
	}
	assert.Equal(t, Get(Unique, 'A'), Get(Unique, 'A'|0x80)&0x7F)
}

func TestUniqueHasNoDuplicates(t *testing.T) {
	seen := make(map[byte]byte)
	for ch := byte(0x20); ch < 0x80; ch++ {
		p := Get(Unique, ch)
		if prev, ok := seen[p]; ok {
			t.Errorf("pattern %#02x used by %q and %q", p, prev, ch)
		}
		seen[p] = ch
	}
}

func TestGetControlCharactersBlank(t *testing.T) {
	for ch := byte(0); ch < 0x20; ch++ {
		assert.Zero(t, Get(LookAlike, ch))
		assert.Zero(t, Get(Unique, ch))
	}
}

func TestGetUnknownFontClamped(t *testing.T) {
	assert.Equal(t, Get(Unique, 'S'), Get(Font(7), 'S'))
	assert.Equal(t, "Font(7)", Font(7).String())
}

func TestFontString(t *testing.T) {
	assert.Equal(t, "LookAlike7s", LookAlike.String())
	assert.Equal(t, "Unique7s", Unique.String())
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		size  int
		want  []byte
		wantN int
	}{
		{"exact", "1234", 4, []byte{0x06, 0x5B, 0x4F, 0x66}, 4},
		{"short blanks rest", "HI", 4, []byte{0x76, 0x30, 0, 0}, 2},
		{"long truncated", "123456", 4, []byte{0x06, 0x5B, 0x4F, 0x66}, 4},
		{"dot", "8\xae", 2, []byte{0x7F, 0x10 | SegDP}, 2},
		{"empty", "", 3, []byte{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.size)
			for i := range dst {
				dst[i] = 0xFF
			}
			n := Encode(LookAlike, tt.s, dst)
			assert.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.want, dst)
		})
	}
}

func TestFoldDots(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no dots", "1234", "1234"},
		{"one dot", "12.34", "1\xb234"},
		{"trailing dot", "7.", "\xb7"},
		{"leading dot", ".75", ".75"},
		{"every unit", "8.8.8.8.", "\xb8\xb8\xb8\xb8"},
		{"double dot", "1..2", "\xb1.2"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldDots(tt.in))
		})
	}
}
