// Package drv7s drives a bank of multiplexed 7-segment display units.
//
// The units share their segment lines and are lit one at a time, switched by
// a periodic tick. See the package documentation in doc.go for details.
package drv7s

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/drv7s/internal/syncutil"
)

const (
	// SlotCount is the number of ticks a unit is under control per refresh.
	// Brightness is the number of those slots the unit is actually lit.
	SlotCount = 5
	// MaxUnits is the number of unit select lines on the column bus.
	MaxUnits = 4
	// DefaultUnits is the unit count used when Opts.Units is zero.
	DefaultUnits = 4
	// DefaultRate is the tick rate used when Opts.Rate is zero.
	DefaultRate = physic.KiloHertz

	// Reset defaults. One frame (one pass over 4 units) is 20ms at 1kHz.
	defaultBrightness = SlotCount - 1
	defaultFrameCount = 50
	defaultFramesHi   = 25
)

// Opts is the configuration for the display bank.
type Opts struct {
	Units int              // Number of units (default: 4, must be ≤4)
	Rate  physic.Frequency // Tick rate (default: 1kHz)
}

// Dev is the device handle for a bank of multiplexed 7-segment units.
type Dev struct {
	// Output buses
	rows Port // segments c..p
	cols Port // segments a, b and unit select

	units int
	rate  physic.Frequency

	// Desired pattern per unit, written by callers at any time.
	framebuf [MaxUnits]atomic.Uint32

	// mu masks the tick: it is held for the whole tick and by every
	// configuration access, so the tick never sees a half-applied update.
	mu syncutil.Mutex

	// Tick state
	slot  uint8 // current subdivision of the unit's control interval
	unit  uint8 // unit currently under control
	frame uint8 // current frame in the blink period

	// Configuration
	brightness  uint8 // lit slots per unit, 1..SlotCount
	alwaysHi    bool  // blinking disabled
	frameCount  uint8 // blink period in frames
	framesHi    uint8 // frames on within the blink period
	noBlinkMask uint8 // bit set: unit exempt from blinking

	err    error // first bus error seen by Tick
	halted bool
}

// New creates a display bank driving the rows and cols buses.
//
// Both buses are driven low and the state is reset to its defaults:
// brightness 4 of 5, blinking disabled, 25 frames on and 25 frames off,
// all units blink once blinking gets enabled, blank frame buffer.
//
// opts can be nil to use defaults (4 units at 1kHz).
func New(rows, cols Port, opts *Opts) (*Dev, error) {
	if rows == nil || cols == nil {
		return nil, errors.New("drv7s: both output ports are required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	units, rate := opts.Units, opts.Rate
	if units == 0 {
		units = DefaultUnits
	}
	if rate == 0 {
		rate = DefaultRate
	}
	if units < 0 || units > MaxUnits {
		return nil, fmt.Errorf("drv7s: unit count must be between 1 and %d", MaxUnits)
	}
	if rate < 0 {
		return nil, errors.New("drv7s: tick rate must be positive")
	}

	d := &Dev{rows: rows, cols: cols, units: units, rate: rate}
	if err := rows.WriteByte(0); err != nil {
		return nil, fmt.Errorf("drv7s: failed to clear rows: %w", err)
	}
	if err := cols.WriteByte(0); err != nil {
		return nil, fmt.Errorf("drv7s: failed to clear columns: %w", err)
	}
	d.Reset()
	return d, nil
}

// Reset restores the default configuration and blanks the frame buffer.
// The tick counters are set so the next tick starts at slot 0 of unit 0.
func (d *Dev) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.slot = SlotCount - 1
	d.unit = uint8(d.units - 1)

	d.brightness = defaultBrightness
	d.alwaysHi = true
	d.frameCount = defaultFrameCount
	d.framesHi = defaultFramesHi
	d.noBlinkMask = 0
	d.frame = d.frameCount - 1

	for i := range d.framebuf {
		d.framebuf[i].Store(0)
	}
}

// SetBrightness sets the number of lit slots per unit, clamped to
// [1, SlotCount].
func (d *Dev) SetBrightness(val uint8) {
	val = max(1, min(val, SlotCount))
	d.mu.Lock()
	d.brightness = val
	d.mu.Unlock()
}

// Brightness returns the current brightness level.
func (d *Dev) Brightness() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.brightness
}

// SetBlinking enables or disables blinking.
func (d *Dev) SetBlinking(enabled bool) {
	d.mu.Lock()
	d.alwaysHi = !enabled
	d.mu.Unlock()
}

// Blinking reports whether blinking is enabled.
func (d *Dev) Blinking() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.alwaysHi
}

// SetBlinkHiLo sets the blink period to hi frames on followed by lo frames
// off. Both are clamped to [1, 254]; a period longer than 255 frames
// saturates to 255, shortening the off time.
func (d *Dev) SetBlinkHiLo(hi, lo uint8) {
	hi = max(1, min(hi, 254))
	lo = max(1, min(lo, 254))
	count := min(int(hi)+int(lo), 255)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.frameCount = uint8(count)
	d.framesHi = hi
}

// BlinkHi returns the number of frames units are on within a blink period.
func (d *Dev) BlinkHi() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.framesHi
}

// BlinkLo returns the number of frames units are off within a blink period.
func (d *Dev) BlinkLo() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frameCount - d.framesHi
}

// SetBlinkMask selects which units blink: if bit i is set, unit i blinks,
// otherwise it stays on. Bits beyond the unit count are ignored.
func (d *Dev) SetBlinkMask(mask uint8) {
	d.mu.Lock()
	d.noBlinkMask = ^mask
	d.mu.Unlock()
}

// BlinkMask returns the current blink mask.
func (d *Dev) BlinkMask() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ^d.noBlinkMask & d.unitMask()
}

func (d *Dev) unitMask() uint8 {
	return 1<<d.units - 1
}

// Units returns the number of units.
func (d *Dev) Units() int {
	return d.units
}

// SetPattern sets the segment pattern of unit i.
//
// The new pattern shows up the next time unit i comes under control; a unit
// that is lit at the moment keeps its old pattern until then.
func (d *Dev) SetPattern(i int, pattern byte) error {
	if d.isHalted() {
		return errors.New("drv7s: halted")
	}
	if i < 0 || i >= d.units {
		return fmt.Errorf("drv7s: unit %d out of range", i)
	}
	d.framebuf[i].Store(uint32(pattern))
	return nil
}

// Pattern returns the segment pattern of unit i, or 0 if i is out of range.
func (d *Dev) Pattern(i int) byte {
	if i < 0 || i >= d.units {
		return 0
	}
	return byte(d.framebuf[i].Load())
}

// Write sets the patterns of all units.
// The data must be exactly d.Units() bytes, one per unit.
func (d *Dev) Write(patterns []byte) (int, error) {
	if d.isHalted() {
		return 0, errors.New("drv7s: halted")
	}
	if len(patterns) != d.units {
		return 0, errors.New("drv7s: invalid buffer size")
	}
	for i, p := range patterns {
		d.framebuf[i].Store(uint32(p))
	}
	return len(patterns), nil
}

// Clear blanks all units. Unlike Write and SetPattern it also works on a
// halted device, where the buses are already dark.
func (d *Dev) Clear() {
	for i := range d.framebuf {
		d.framebuf[i].Store(0)
	}
}

// Tick advances the multiplexer by one slot and updates the buses.
//
// It must be called at a fixed rate, Run does that. Tick never blocks on
// anything but a configuration update in progress and does not allocate.
func (d *Dev) Tick() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.halted {
		return
	}

	d.slot++
	// Past the brightness level: switch the unit off
	if d.slot >= d.brightness {
		d.write(d.cols, 0) // also clears segments a and b
	}
	if d.slot < SlotCount {
		return
	}

	// Next unit
	d.slot = 0
	d.unit++
	if int(d.unit) >= d.units {
		d.unit = 0
		d.frame++
		if d.frame >= d.frameCount {
			d.frame = 0
		}
	}
	if d.alwaysHi || d.noBlinkMask&(1<<d.unit) != 0 || d.frame < d.framesHi {
		rows, cols := split(byte(d.framebuf[d.unit].Load()), d.unit)
		// Rows first, so the unit never shows a stale pattern
		d.write(d.rows, rows)
		d.write(d.cols, cols)
	}
}

// write sends v to p and keeps the first error for Err.
func (d *Dev) write(p Port, v byte) {
	if err := p.WriteByte(v); err != nil && d.err == nil {
		d.err = err
	}
}

// Err returns the first bus error encountered by Tick, if any.
func (d *Dev) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Run calls Tick at the configured rate until ctx is done or the device is
// halted.
func (d *Dev) Run(ctx context.Context) error {
	if d.isHalted() {
		return errors.New("drv7s: halted")
	}
	t := time.NewTicker(d.rate.Period())
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if d.isHalted() {
				return errors.New("drv7s: halted")
			}
			d.Tick()
		}
	}
}

func (d *Dev) isHalted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.halted
}

// Halt switches all units off and stops ticking.
// After calling Halt, Tick is a no-op and Run, Write and SetPattern fail.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.halted = true
	if err := d.cols.WriteByte(0); err != nil {
		return fmt.Errorf("drv7s: failed to clear columns: %w", err)
	}
	if err := d.rows.WriteByte(0); err != nil {
		return fmt.Errorf("drv7s: failed to clear rows: %w", err)
	}
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("drv7s.Dev{%d units @ %s}", d.units, d.rate)
}
