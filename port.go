package drv7s

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Port is one 8-bit output bus. Bit i of the written byte drives line i.
type Port interface {
	WriteByte(c byte) error
}

// GPIOPort drives an output bus made of individual GPIO pins.
type GPIOPort struct {
	pins []gpio.PinOut
}

// NewGPIOPort creates a bus from up to 8 pins; pins[i] is driven by bit i.
//
// A nil pin marks a line that is not connected, its bit is ignored.
func NewGPIOPort(pins ...gpio.PinOut) (*GPIOPort, error) {
	if len(pins) == 0 || len(pins) > 8 {
		return nil, errors.New("drv7s: a GPIO port needs between 1 and 8 pins")
	}
	return &GPIOPort{pins: pins}, nil
}

// WriteByte sets every connected pin to its bit of c.
func (p *GPIOPort) WriteByte(c byte) error {
	for i, pin := range p.pins {
		if pin == nil {
			continue
		}
		if err := pin.Out(gpio.Level(c&(1<<i) != 0)); err != nil {
			return fmt.Errorf("drv7s: failed to drive %s: %w", pin, err)
		}
	}
	return nil
}

// Halt drives all connected pins low.
func (p *GPIOPort) Halt() error {
	return p.WriteByte(0)
}

// String returns a string representation of the port.
func (p *GPIOPort) String() string {
	names := make([]string, len(p.pins))
	for i, pin := range p.pins {
		if pin == nil {
			names[i] = "nc"
			continue
		}
		names[i] = pin.Name()
	}
	return fmt.Sprintf("drv7s.GPIOPort%v", names)
}

// ShiftPort drives an output bus through a 74HC595 style serial-in,
// parallel-out shift register on SPI. The byte is shifted in while latch is
// low and appears on the outputs when latch goes high.
type ShiftPort struct {
	c     conn.Conn
	latch gpio.PinOut
	buf   [1]byte
}

// NewShiftPort creates a bus connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The latch (RCLK) GPIO pin must be provided and configured as an output.
func NewShiftPort(p spi.Port, latch gpio.PinOut) (*ShiftPort, error) {
	if latch == nil {
		return nil, errors.New("drv7s: shift port requires a latch pin")
	}
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("drv7s: %w", err)
	}
	if err := latch.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("drv7s: failed to pull latch high: %w", err)
	}
	return &ShiftPort{c: c, latch: latch}, nil
}

// WriteByte shifts c into the register and latches it onto the outputs.
func (p *ShiftPort) WriteByte(c byte) error {
	if err := p.latch.Out(gpio.Low); err != nil {
		return fmt.Errorf("drv7s: failed to pull latch low: %w", err)
	}
	p.buf[0] = c
	if err := p.c.Tx(p.buf[:], nil); err != nil {
		return fmt.Errorf("drv7s: %w", err)
	}
	if err := p.latch.Out(gpio.High); err != nil {
		return fmt.Errorf("drv7s: failed to pull latch high: %w", err)
	}
	return nil
}

// Halt clears all register outputs.
func (p *ShiftPort) Halt() error {
	return p.WriteByte(0)
}

// String returns a string representation of the port.
func (p *ShiftPort) String() string {
	return fmt.Sprintf("drv7s.ShiftPort{%s}", p.c)
}

var (
	_ Port = &GPIOPort{}
	_ Port = &ShiftPort{}
)
