package bus

import (
	"errors"
	"fmt"
)

// Reg names one of the four GPIO output registers.
type Reg int

const (
	// OutSet is the write-1-to-set register of GPIO 0-31.
	OutSet Reg = iota
	// OutClear is the write-1-to-clear register of GPIO 0-31.
	OutClear
	// Out1Set is the write-1-to-set register of GPIO 32-63.
	Out1Set
	// Out1Clear is the write-1-to-clear register of GPIO 32-63.
	Out1Clear
)

func (r Reg) String() string {
	switch r {
	case OutSet:
		return "OUT_W1TS"
	case OutClear:
		return "OUT_W1TC"
	case Out1Set:
		return "OUT1_W1TS"
	case Out1Clear:
		return "OUT1_W1TC"
	default:
		return fmt.Sprintf("Reg(%d)", int(r))
	}
}

// Registers stores words into the GPIO output registers.
type Registers interface {
	Store(r Reg, v uint32)
}

// RegisterPort is a Port writing straight into the W1TS/W1TC register pairs.
//
// Chip select and D/C must be GPIO 0-63; the data bus is described by the
// mask table given to the Writer.
type RegisterPort struct {
	regs   Registers
	cs     line
	dc     line
	strobe Strober
	err    error
}

type line struct {
	set, clear Reg
	mask       uint32
}

func lineFor(gpio int) (line, error) {
	switch {
	case gpio >= 0 && gpio < 32:
		return line{OutSet, OutClear, 1 << gpio}, nil
	case gpio >= 32 && gpio < 64:
		return line{Out1Set, Out1Clear, 1 << (gpio - 32)}, nil
	default:
		return line{}, fmt.Errorf("bus: gpio %d out of range", gpio)
	}
}

// NewRegisterPort returns a Port using regs with chip select on GPIO cs and
// D/C on GPIO dc. Both lines are left high.
func NewRegisterPort(regs Registers, cs, dc int, s Strober) (*RegisterPort, error) {
	if regs == nil || s == nil {
		return nil, errors.New("bus: registers and strober are required")
	}
	csl, err := lineFor(cs)
	if err != nil {
		return nil, err
	}
	dcl, err := lineFor(dc)
	if err != nil {
		return nil, err
	}
	p := &RegisterPort{regs: regs, cs: csl, dc: dcl, strobe: s}
	p.drive(p.cs, true)
	p.drive(p.dc, true)
	return p, nil
}

func (p *RegisterPort) drive(l line, high bool) {
	if high {
		p.regs.Store(l.set, l.mask)
	} else {
		p.regs.Store(l.clear, l.mask)
	}
}

// WriteMask implements Port.
func (p *RegisterPort) WriteMask(setLow, setHigh, clearLow, clearHigh uint32) {
	p.regs.Store(OutSet, setLow)
	p.regs.Store(Out1Set, setHigh)
	p.regs.Store(OutClear, clearLow)
	p.regs.Store(Out1Clear, clearHigh)
}

// Strobe implements Port.
func (p *RegisterPort) Strobe(n int) {
	if err := p.strobe.Strobe(n); err != nil && p.err == nil {
		p.err = fmt.Errorf("bus: strobe failed: %w", err)
	}
}

// Select implements Port.
func (p *RegisterPort) Select(active bool) {
	p.drive(p.cs, !active)
}

// Command implements Port.
func (p *RegisterPort) Command(active bool) {
	p.drive(p.dc, !active)
}

// Err implements Port.
func (p *RegisterPort) Err() error {
	return p.err
}
