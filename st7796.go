package st7796

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/gpio"
	"tinygo.org/x/drivers"

	"periph.io/x/devices/v3/st7796/bus"
	"periph.io/x/devices/v3/st7796/gpiomask"
	"periph.io/x/devices/v3/st7796/internal/log"
	"periph.io/x/devices/v3/st7796/rgb565"
)

// ST7796 commands.
const (
	NOP     = 0x00 // No operation
	SWRESET = 0x01 // Software reset
	SLPIN   = 0x10 // Sleep in
	SLPOUT  = 0x11 // Sleep out
	NORON   = 0x13 // Normal display mode on
	INVOFF  = 0x20 // Display inversion off
	INVON   = 0x21 // Display inversion on
	DISPOFF = 0x28 // Display off
	DISPON  = 0x29 // Display on
	CASET   = 0x2A // Column address set
	RASET   = 0x2B // Row address set
	RAMWR   = 0x2C // Memory write
	RAMRD   = 0x2E // Memory read
	PTLAR   = 0x30 // Partial area
	VSCRDEF = 0x33 // Vertical scrolling definition
	MADCTL  = 0x36 // Memory data access control
	VSCSAD  = 0x37 // Vertical scroll start address of RAM
	COLMOD  = 0x3A // Interface pixel format
)

// MADCTL bits.
const (
	MadctlMY  = 0x80 // Row address order
	MadctlMX  = 0x40 // Column address order
	MadctlMV  = 0x20 // Row/column exchange
	MadctlML  = 0x10 // Vertical refresh order
	MadctlBGR = 0x08 // BGR color filter panel
	MadctlMH  = 0x04 // Horizontal refresh order
)

// COLMOD parameters. A mode is the OR of an RGB interface format and a
// control interface format.
const (
	ColorMode65K   = 0x50
	ColorMode262K  = 0x60
	ColorMode12Bit = 0x03
	ColorMode16Bit = 0x05
	ColorMode18Bit = 0x06
	ColorMode16M   = 0x07
)

// DefaultRotations is the MADCTL value for each rotation of a WT32-SC01 Plus
// panel: portrait, landscape, inverted portrait, inverted landscape.
var DefaultRotations = [4]byte{
	MadctlMX | MadctlBGR,
	MadctlMV | MadctlBGR,
	MadctlMY | MadctlBGR,
	MadctlMY | MadctlMX | MadctlMV | MadctlBGR,
}

// Opts is the configuration for the ST7796 display.
type Opts struct {
	// Native panel dimensions in pixels, in portrait orientation
	W int // Width (default: 320)
	H int // Height (default: 480)

	// Rotation applied at start-up, taken modulo 4
	Rotation drivers.Rotation
	// MADCTL value for each rotation (default: DefaultRotations)
	Rotations [4]byte

	// Optional control pins
	RST gpio.PinOut // Reset pin (nil if tied high)
	BL  gpio.PinOut // Backlight enable pin (nil if always on)

	// Clock used for the controller delays (default: real clock)
	Clock clockwork.Clock
}

// Dev is the device handle for the ST7796 display.
//
// Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	w   *bus.Writer
	rst gpio.PinOut
	bl  gpio.PinOut

	clock clockwork.Clock

	// Display geometry
	native    image.Point // Panel size in rotation 0
	width     int
	height    int
	rotation  drivers.Rotation
	rotations [4]byte

	// Shadow of the panel for differential Draw
	next   *rgb565.Image
	last   *rgb565.Image
	synced image.Rectangle // Area where last matches the panel

	// Scratch pixel buffer
	buf []byte

	// State
	halted bool
}

// New returns a Dev driving the panel on p, with t mapping bytes to the data
// lines. A nil t selects gpiomask.WT32SC01.
//
// opts can be nil to use defaults (320x480 panel in portrait orientation).
//
// New performs the hardware reset and the initialization sequence. Only a
// failure of the reset line is reported; bus errors are sticky and can be
// read with Err.
func New(p bus.Port, t *gpiomask.Table, opts *Opts) (*Dev, error) {
	if p == nil {
		return nil, errors.New("st7796: bus port is required")
	}
	if t == nil {
		t = gpiomask.WT32SC01
	}
	if opts == nil {
		opts = &Opts{}
	}
	if opts.W < 0 || opts.H < 0 || opts.W > 0xFFFF || opts.H > 0xFFFF {
		return nil, fmt.Errorf("st7796: invalid panel size %dx%d", opts.W, opts.H)
	}

	d := &Dev{
		w:         bus.NewWriter(p, t),
		rst:       opts.RST,
		bl:        opts.BL,
		clock:     opts.Clock,
		native:    image.Pt(opts.W, opts.H),
		rotations: opts.Rotations,
	}
	if d.native.X == 0 {
		d.native.X = 320
	}
	if d.native.Y == 0 {
		d.native.Y = 480
	}
	if d.rotations == [4]byte{} {
		d.rotations = DefaultRotations
	}
	if d.clock == nil {
		d.clock = clockwork.NewRealClock()
	}

	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	log.ModCtrl.Debugf("init %dx%d rotation=%d", d.native.X, d.native.Y, opts.Rotation%4)

	if err := d.HardReset(); err != nil {
		return err
	}
	d.Sleep(false)
	d.SetColorMode(ColorMode65K | ColorMode16Bit)
	d.clock.Sleep(50 * time.Millisecond)
	if err := d.SetRotation(opts.Rotation); err != nil {
		return err
	}
	d.Invert(true)
	d.clock.Sleep(10 * time.Millisecond)
	d.w.Command(NORON)
	d.clock.Sleep(10 * time.Millisecond)
	if err := d.Backlight(true); err != nil {
		return err
	}
	d.w.Command(DISPON)
	d.clock.Sleep(125 * time.Millisecond)
	return nil
}

// HardReset pulses the reset line with the chip selected. It does nothing if
// no reset pin was provided.
func (d *Dev) HardReset() error {
	if d.rst == nil {
		return nil
	}
	p := d.w.Port()
	p.Select(true)
	defer p.Select(false)

	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7796: failed to pull RST high: %w", err)
	}
	d.clock.Sleep(5 * time.Millisecond)
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7796: failed to pull RST low: %w", err)
	}
	d.clock.Sleep(20 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7796: failed to pull RST high: %w", err)
	}
	d.clock.Sleep(150 * time.Millisecond)
	return nil
}

// SoftReset resets the controller registers to their defaults.
func (d *Dev) SoftReset() {
	d.w.Command(SWRESET)
	d.clock.Sleep(150 * time.Millisecond)
}

// Sleep enters (true) or leaves (false) sleep mode.
func (d *Dev) Sleep(on bool) {
	if on {
		d.w.Command(SLPIN)
	} else {
		d.w.Command(SLPOUT)
	}
}

// Invert turns display inversion on or off.
func (d *Dev) Invert(on bool) {
	if on {
		d.w.Command(INVON)
	} else {
		d.w.Command(INVOFF)
	}
}

// SetColorMode sets the interface pixel format. The drawing primitives assume
// ColorMode65K|ColorMode16Bit.
func (d *Dev) SetColorMode(mode byte) {
	d.w.Command(COLMOD, mode&0x77)
}

// DisplayOn turns the panel output on or off. Memory is preserved.
func (d *Dev) DisplayOn(on bool) {
	if on {
		d.w.Command(DISPON)
	} else {
		d.w.Command(DISPOFF)
	}
}

// Backlight switches the backlight. It does nothing if no backlight pin was
// provided.
func (d *Dev) Backlight(on bool) error {
	if d.bl == nil {
		return nil
	}
	if err := d.bl.Out(gpio.Level(on)); err != nil {
		return fmt.Errorf("st7796: failed to drive backlight: %w", err)
	}
	return nil
}

// SetRotation selects one of the four orientations, taken modulo 4: portrait,
// landscape, inverted portrait and inverted landscape. Width and height are
// swapped for landscape orientations.
//
// It implements the rotation part of tinyterm.Displayer and never fails.
func (d *Dev) SetRotation(r drivers.Rotation) error {
	r %= 4
	d.rotation = r
	if r%2 == 0 {
		d.width, d.height = d.native.X, d.native.Y
	} else {
		d.width, d.height = d.native.Y, d.native.X
	}
	d.synced = image.Rectangle{}
	d.next, d.last = nil, nil
	log.ModCtrl.Debugf("rotation %d: %dx%d madctl=%#02x", r, d.width, d.height, d.rotations[r])
	d.w.Command(MADCTL, d.rotations[r])
	return nil
}

// Rotation returns the current orientation.
func (d *Dev) Rotation() drivers.Rotation {
	return d.rotation
}

// Command sends a raw command with its parameters.
func (d *Dev) Command(cmd byte, data ...byte) {
	d.synced = image.Rectangle{}
	d.w.Command(cmd, data...)
}

// Err returns the first bus error, if any.
func (d *Dev) Err() error {
	return d.w.Err()
}

// Halt turns the display off and puts the controller to sleep.
// After calling Halt, Draw and Write fail until the device is re-created.
func (d *Dev) Halt() error {
	d.halted = true
	d.DisplayOn(false)
	d.Sleep(true)
	if err := d.Backlight(false); err != nil {
		return err
	}
	return d.w.Err()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7796.Dev{%dx%d}", d.width, d.height)
}
