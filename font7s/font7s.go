// Package font7s maps ASCII characters to 7-segment display patterns.
package font7s

import "fmt"

// Segment bits of a pattern.
const (
	SegA  byte = 1 << iota // top
	SegB                   // top right
	SegC                   // bottom right
	SegD                   // bottom
	SegE                   // bottom left
	SegF                   // top left
	SegG                   // middle
	SegDP                  // decimal point
)

// Font identifies one of the built-in character tables.
type Font uint8

const (
	// LookAlike maps characters to the pattern closest to their usual shape.
	LookAlike Font = 0
	// Unique maps every character to a distinct pattern.
	Unique Font = 1
)

var fonts = [...]*[0x80]byte{LookAlike: &lookAlike, Unique: &unique}

// String returns the font name.
func (f Font) String() string {
	switch f {
	case LookAlike:
		return "LookAlike7s"
	case Unique:
		return "Unique7s"
	}
	return fmt.Sprintf("Font(%d)", uint8(f))
}

// Get returns the pattern for ch in font f.
//
// Bit 7 of ch is passed through as the decimal point. Unknown fonts are
// clamped to Unique.
func Get(f Font, ch byte) byte {
	if int(f) >= len(fonts) {
		f = Unique
	}
	return fonts[f][ch&0x7F] | ch&SegDP
}

// Encode writes the patterns of s into dst, one character per unit, and
// blanks the units s does not cover. Characters past len(dst) are ignored.
// It returns the number of characters written.
func Encode(f Font, s string, dst []byte) int {
	n := 0
	for ; n < len(dst) && n < len(s); n++ {
		dst[n] = Get(f, s[n])
	}
	clear(dst[n:])
	return n
}

// FoldDots merges every '.' into the character before it by setting bit 7,
// so "12.34" takes four units instead of five. A '.' at the start of s or
// after a character that already carries a dot stays a character of its own.
func FoldDots(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '.' && len(out) > 0 && out[len(out)-1]&SegDP == 0 {
			out[len(out)-1] |= SegDP
			continue
		}
		out = append(out, ch)
	}
	return string(out)
}
