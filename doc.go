// Package drv7s drives a bank of multiplexed 7-segment display units.
//
// The units share their segment lines; only one unit is powered at a time.
// A periodic tick (1kHz by default) switches control from unit to unit fast
// enough for the eye to see all of them lit at once.
//
// # Display Characteristics
//
// - Up to 4 units of 7 segments plus decimal point
// - 5 brightness levels, implemented as duty cycle within a unit's dwell time
// - Blinking with configurable on and off times
// - Per-unit blink exemption
// - Frame buffer writable at any time, without locking
//
// # Timing
//
// Every tick advances a slot counter. A unit is under control for SlotCount
// (5) consecutive slots and is lit during the first Brightness of them:
//
//	slot : 01234 01234 01234 01234 01234
//	unit : 00000 11111 22222 33333 00000
//	lit  : 0000- 1111- 2222- 3333- 0000-   (brightness 4)
//
// One pass over all units is a frame: 20 ticks, or 20ms at 1kHz. Blinking
// counts frames: a unit is lit during the first BlinkHi frames of every
// BlinkHi+BlinkLo frames, unless blinking is disabled or the unit is exempt
// from blinking via its bit in the blink mask.
//
// # Hardware Connection
//
// The segments and unit commons are split over two 8-bit output buses:
//
//	bit     7  6  5  4  3  2  1  0
//	rows:   nc nc p  g  f  e  d  c
//	cols:   b  a  3  2  1  0  nc nc
//
// Segment a is bit 0 of a pattern, g is bit 6 and the decimal point is bit 7.
// A bus can be a set of GPIO pins (GPIOPort) or a 74HC595 shift register on
// SPI (ShiftPort). Any type with a WriteByte method works as a Port.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"context"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/drv7s"
//		"periph.io/x/devices/v3/drv7s/font7s"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Segment c..p on GPIO2..GPIO7, rows bits 6 and 7 not connected
//		rows, _ := drv7s.NewGPIOPort(
//			gpioreg.ByName("GPIO2"), gpioreg.ByName("GPIO3"),
//			gpioreg.ByName("GPIO4"), gpioreg.ByName("GPIO5"),
//			gpioreg.ByName("GPIO6"), gpioreg.ByName("GPIO7"),
//		)
//		// Units 0..3 on GPIO8..GPIO11, segments a and b on GPIO12 and GPIO13
//		cols, _ := drv7s.NewGPIOPort(
//			nil, nil,
//			gpioreg.ByName("GPIO8"), gpioreg.ByName("GPIO9"),
//			gpioreg.ByName("GPIO10"), gpioreg.ByName("GPIO11"),
//			gpioreg.ByName("GPIO12"), gpioreg.ByName("GPIO13"),
//		)
//
//		dev, _ := drv7s.New(rows, cols, nil)
//		defer dev.Halt()
//
//		buf := make([]byte, dev.Units())
//		font7s.Encode(font7s.LookAlike, "HI", buf)
//		dev.Write(buf)
//
//		dev.Run(context.Background())
//	}
//
// # Configuration
//
// All settings can be changed while Run is active. Out of range values are
// clamped, never rejected:
//
//	dev.SetBrightness(3)      // 3 of 5 slots lit
//	dev.SetBlinkHiLo(10, 40)  // 200ms on, 800ms off
//	dev.SetBlinkMask(0b0011)  // only units 0 and 1 blink
//	dev.SetBlinking(true)
//
// Configuration changes are applied under the same lock as the tick, so a
// tick never sees the on time and the period of a blink setting disagree.
//
// # Frame Buffer
//
// SetPattern and Write update the frame buffer atomically per unit and never
// wait for the tick. A unit that is lit while its pattern changes keeps the
// old pattern until it next comes under control, at most one frame later.
package drv7s
