// Package font7s maps ASCII characters to 7-segment display patterns.
//
// A pattern is one byte with one bit per segment:
//
//	   aaa
//	  f   b
//	  f   b
//	   ggg
//	  e   c
//	  e   c
//	   ddd  p
//
//	bit:  7 6 5 4 3 2 1 0
//	seg:  p g f e d c b a
//
// Two fonts are provided:
//
// - LookAlike: every character looks as close as possible to how it is
// normally written; some characters share a pattern.
//
// - Unique: every character has its own pattern, so text can always be read
// back unambiguously, at the cost of some unusual shapes.
//
// Only the low 7 bits of a character select the pattern. When bit 7 of the
// character is set, the decimal point is lit on top of that pattern:
//
//	font7s.Get(font7s.LookAlike, '7')      // 0x07
//	font7s.Get(font7s.LookAlike, '7'|0x80) // 0x87: "7."
//
// Example usage with the drv7s driver:
//
//	buf := make([]byte, dev.Units())
//	font7s.Encode(font7s.LookAlike, "HI", buf)
//	dev.Write(buf)
package font7s
