package bus

import (
	"errors"
	"fmt"

	"periph.io/x/host/v3/pmem"
)

// Layout holds the byte offsets of the output registers from the base of the
// GPIO register block.
type Layout struct {
	OutSet    uint32
	OutClear  uint32
	Out1Set   uint32
	Out1Clear uint32
}

// ESP32S3Base is the physical address of the ESP32-S3 GPIO register block.
const ESP32S3Base = 0x60004000

// ESP32S3 is the register layout of the ESP32-S3 GPIO block.
var ESP32S3 = Layout{
	OutSet:    0x08,
	OutClear:  0x0C,
	Out1Set:   0x14,
	Out1Clear: 0x18,
}

func (l *Layout) offsets() [4]uint32 {
	return [4]uint32{OutSet: l.OutSet, OutClear: l.OutClear, Out1Set: l.Out1Set, Out1Clear: l.Out1Clear}
}

// size returns the span of the block that needs to be mapped.
func (l *Layout) size() (int, error) {
	var end uint32
	for _, o := range l.offsets() {
		if o%4 != 0 {
			return 0, fmt.Errorf("bus: register offset %#x is not word aligned", o)
		}
		end = max(end, o+4)
	}
	return int(end), nil
}

// MapSize returns the number of bytes MapRegisters maps for l, or an error if
// an offset is not word aligned.
func MapSize(l Layout) (int, error) {
	return l.size()
}

// MMIO is a memory mapped GPIO register block.
type MMIO struct {
	view  *pmem.View
	words []uint32
	index [4]int
}

// MapRegisters maps the register block at physical address base.
//
// It normally requires root privileges.
func MapRegisters(base uint64, l Layout) (*MMIO, error) {
	size, err := l.size()
	if err != nil {
		return nil, err
	}
	v, err := pmem.Map(base, size)
	if err != nil {
		return nil, fmt.Errorf("bus: failed to map registers at %#x: %w", base, err)
	}
	m := newMMIO(v.Uint32(), l)
	m.view = v
	return m, nil
}

func newMMIO(words []uint32, l Layout) *MMIO {
	m := &MMIO{words: words}
	for r, o := range l.offsets() {
		m.index[r] = int(o / 4)
	}
	return m
}

// Store implements Registers.
func (m *MMIO) Store(r Reg, v uint32) {
	m.words[m.index[r]] = v
}

// Close unmaps the register block.
func (m *MMIO) Close() error {
	if m.view == nil {
		return errors.New("bus: registers are not mapped")
	}
	err := m.view.Close()
	m.view = nil
	return err
}
