package drv7s

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		pattern  byte
		unit     uint8
		wantRows byte
		wantCols byte
	}{
		{"blank unit 0", 0x00, 0, 0x00, 0x04},
		{"blank unit 3", 0x00, 3, 0x00, 0x20},
		{"a and b only", 0x03, 0, 0x00, 0xC4},
		{"c..p only", 0xFC, 1, 0x3F, 0x08},
		{"all segments", 0xFF, 2, 0x3F, 0xD0},
		{"letter A", 0x77, 0, 0x1D, 0xC4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols := split(tt.pattern, tt.unit)
			assert.Equal(t, tt.wantRows, rows, "rows")
			assert.Equal(t, tt.wantCols, cols, "cols")
		})
	}
}

func TestSplitWiringContract(t *testing.T) {
	for unit := uint8(0); unit < MaxUnits; unit++ {
		for p := 0; p < 256; p++ {
			rows, cols := split(byte(p), unit)
			msg := fmt.Sprintf("pattern %#02x unit %d", p, unit)

			// Segments c..p land on rows bits 0..5, rows bits 6..7 stay unused
			assert.Equal(t, byte(p)>>2, rows&0x3F, msg)
			assert.Zero(t, rows&0xC0, msg)
			// Segments a and b land on cols bits 6..7
			assert.Equal(t, byte(p)&0x03, cols>>6, msg)
			// Exactly one unit select bit in cols bits 2..5, none in 0..1
			assert.Equal(t, byte(1)<<unit, (cols>>2)&0x0F, msg)
			assert.Zero(t, cols&0x03, msg)
		}
	}
}
