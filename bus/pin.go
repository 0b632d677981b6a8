package bus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// PinPort is a Port built from individual periph pins.
//
// It is much slower than RegisterPort but works on any host periph supports,
// which makes it handy to bring up a panel wired to a Linux board.
type PinPort struct {
	data   [8]gpio.PinOut
	gpios  [8]int
	cs     gpio.PinOut
	dc     gpio.PinOut
	strobe Strober
	err    error
}

// PinConfig lists the pins of a PinPort.
type PinConfig struct {
	// Data holds the pin wired to each data bit, D0 first.
	Data [8]gpio.PinOut
	// GPIO holds the GPIO numbers the mask table was generated for, in the
	// same order as Data.
	GPIO [8]int
	CS   gpio.PinOut
	DC   gpio.PinOut
}

// NewPinPort returns a Port driving the pins of cfg. Chip select and D/C are
// left high.
func NewPinPort(cfg *PinConfig, s Strober) (*PinPort, error) {
	if cfg == nil || cfg.CS == nil || cfg.DC == nil || s == nil {
		return nil, errors.New("bus: chip select, D/C and strober are required")
	}
	for i, p := range cfg.Data {
		if p == nil {
			return nil, fmt.Errorf("bus: data pin D%d is required", i)
		}
		if g := cfg.GPIO[i]; g < 0 || g > 63 {
			return nil, fmt.Errorf("bus: gpio %d out of range", g)
		}
	}
	p := &PinPort{data: cfg.Data, gpios: cfg.GPIO, cs: cfg.CS, dc: cfg.DC, strobe: s}
	p.out(p.cs, gpio.High)
	p.out(p.dc, gpio.High)
	return p, nil
}

func (p *PinPort) out(pin gpio.PinOut, l gpio.Level) {
	if err := pin.Out(l); err != nil && p.err == nil {
		p.err = fmt.Errorf("bus: failed to drive %s: %w", pin, err)
	}
}

func bit(low, high uint32, g int) bool {
	if g < 32 {
		return low&(1<<g) != 0
	}
	return high&(1<<(g-32)) != 0
}

// WriteMask implements Port.
//
// The set words are applied first, then the clear words, as the registers
// would.
func (p *PinPort) WriteMask(setLow, setHigh, clearLow, clearHigh uint32) {
	for i, g := range p.gpios {
		if bit(setLow, setHigh, g) {
			p.out(p.data[i], gpio.High)
		}
	}
	for i, g := range p.gpios {
		if bit(clearLow, clearHigh, g) {
			p.out(p.data[i], gpio.Low)
		}
	}
}

// Strobe implements Port.
func (p *PinPort) Strobe(n int) {
	if err := p.strobe.Strobe(n); err != nil && p.err == nil {
		p.err = fmt.Errorf("bus: strobe failed: %w", err)
	}
}

// Select implements Port.
func (p *PinPort) Select(active bool) {
	p.out(p.cs, gpio.Level(!active))
}

// Command implements Port.
func (p *PinPort) Command(active bool) {
	p.out(p.dc, gpio.Level(!active))
}

// Err implements Port.
func (p *PinPort) Err() error {
	return p.err
}
