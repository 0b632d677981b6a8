package board

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiostream"

	"periph.io/x/devices/v3/st7796"
	"periph.io/x/devices/v3/st7796/bus"
	"periph.io/x/devices/v3/st7796/internal/log"
)

// Board is an initialized display with the resources backing it.
type Board struct {
	Dev  *st7796.Dev
	regs *bus.MMIO
}

// PinName returns the periph name of a GPIO number.
func PinName(g int) string {
	return fmt.Sprintf("GPIO%d", g)
}

func pin(g int) (gpio.PinIO, error) {
	p := gpioreg.ByName(PinName(g))
	if p == nil {
		return nil, fmt.Errorf("board: pin %s not found", PinName(g))
	}
	return p, nil
}

func optionalPin(g int) (gpio.PinOut, error) {
	if g == NoPin {
		return nil, nil
	}
	return pin(g)
}

// strober builds the write strobe.
func (c *Config) strober() (bus.Strober, error) {
	wr, err := pin(c.Pins.WR)
	if err != nil {
		return nil, err
	}
	switch c.Bus.Strobe {
	case StrobePulse:
		s, ok := wr.(gpiostream.PinOut)
		if !ok {
			return nil, fmt.Errorf("board: %s cannot stream pulses", wr)
		}
		return bus.NewPulse(s, c.StrobeFreq())
	case StrobeToggle:
		return bus.NewToggle(wr)
	default:
		return nil, fmt.Errorf("board: unknown strobe %q", c.Bus.Strobe)
	}
}

// port builds the bus port. The returned MMIO is nil for the gpio driver.
func (c *Config) port(s bus.Strober) (bus.Port, *bus.MMIO, error) {
	switch c.Bus.Driver {
	case DriverMMIO:
		regs, err := bus.MapRegisters(c.Bus.Base, c.Layout())
		if err != nil {
			return nil, nil, err
		}
		p, err := bus.NewRegisterPort(regs, c.Pins.CS, c.Pins.DC, s)
		if err != nil {
			_ = regs.Close()
			return nil, nil, err
		}
		return p, regs, nil
	case DriverGPIO:
		cfg := &bus.PinConfig{GPIO: c.DataPins()}
		for i, g := range cfg.GPIO {
			p, err := pin(g)
			if err != nil {
				return nil, nil, err
			}
			cfg.Data[i] = p
		}
		var err error
		if cfg.CS, err = pin(c.Pins.CS); err != nil {
			return nil, nil, err
		}
		if cfg.DC, err = pin(c.Pins.DC); err != nil {
			return nil, nil, err
		}
		p, err := bus.NewPinPort(cfg, s)
		return p, nil, err
	default:
		return nil, nil, fmt.Errorf("board: unknown bus driver %q", c.Bus.Driver)
	}
}

// Open initializes the display described by c. The host must have been
// initialized with periph's host.Init.
func (c *Config) Open() (*Board, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	t, err := c.MaskTable()
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	s, err := c.strober()
	if err != nil {
		return nil, err
	}
	p, regs, err := c.port(s)
	if err != nil {
		return nil, err
	}
	b := &Board{regs: regs}

	opts := c.Opts()
	if opts.RST, err = optionalPin(c.Pins.RST); err != nil {
		return nil, b.close(err)
	}
	if opts.BL, err = optionalPin(c.Pins.BL); err != nil {
		return nil, b.close(err)
	}
	if b.Dev, err = st7796.New(p, t, opts); err != nil {
		log.ModBoard.Errorf("panel init failed: %v", err)
		return nil, b.close(err)
	}
	log.ModBoard.Infof("opened %s on %s bus, %s strobe", b.Dev, c.Bus.Driver, c.Bus.Strobe)
	return b, nil
}

func (b *Board) close(err error) error {
	if b.regs == nil {
		return err
	}
	if cerr := b.regs.Close(); cerr != nil {
		log.ModBoard.Warnf("failed to unmap registers: %v", cerr)
		err = errors.Join(err, cerr)
	}
	b.regs = nil
	return err
}

// Close halts the display and releases the register mapping.
func (b *Board) Close() error {
	return b.close(b.Dev.Halt())
}
