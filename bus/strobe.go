package bus

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiostream"
	"periph.io/x/conn/v3/physic"
)

// Strober pulses the write line of the bus. The display latches the data
// lines on the rising edge, so one pulse is low then high.
type Strober interface {
	Strobe(n int) error
}

// DefaultPulseFreq is the sample rate of the pulse generator: 80MHz APB clock
// divided by 5.
const DefaultPulseFreq = 16 * physic.MegaHertz

// pulsePattern is one strobe at the sample rate, MSB first: four samples low,
// four samples high.
const pulsePattern = 0x0F

// Pulse hands strobes to a pulse generator peripheral as a bit stream.
type Pulse struct {
	pin  gpiostream.PinOut
	freq physic.Frequency
	buf  []byte
}

// NewPulse returns a Strober streaming pulses on p at freq. A zero freq
// selects DefaultPulseFreq.
func NewPulse(p gpiostream.PinOut, freq physic.Frequency) (*Pulse, error) {
	if p == nil {
		return nil, errors.New("bus: pulse pin is required")
	}
	if freq < 0 {
		return nil, errors.New("bus: invalid pulse frequency")
	}
	if freq == 0 {
		freq = DefaultPulseFreq
	}
	return &Pulse{pin: p, freq: freq}, nil
}

// Strobe implements Strober.
func (p *Pulse) Strobe(n int) error {
	if n <= 0 {
		return nil
	}
	if len(p.buf) < n {
		p.buf = make([]byte, n)
		for i := range p.buf {
			p.buf[i] = pulsePattern
		}
	}
	return p.pin.StreamOut(&gpiostream.BitStream{Bits: p.buf[:n], Freq: p.freq})
}

// Toggle strobes by driving the write line directly.
type Toggle struct {
	pin gpio.PinOut
}

// NewToggle returns a Strober toggling p. The line is left high.
func NewToggle(p gpio.PinOut) (*Toggle, error) {
	if p == nil {
		return nil, errors.New("bus: write pin is required")
	}
	if err := p.Out(gpio.High); err != nil {
		return nil, err
	}
	return &Toggle{pin: p}, nil
}

// Strobe implements Strober.
func (t *Toggle) Strobe(n int) error {
	for j := 0; j < n; j++ {
		if err := t.pin.Out(gpio.Low); err != nil {
			return err
		}
		if err := t.pin.Out(gpio.High); err != nil {
			return err
		}
	}
	return nil
}
