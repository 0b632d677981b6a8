// Package bustest implements a fake bus.Port that records and decodes what a
// bus.Writer sends.
package bustest

import (
	"periph.io/x/devices/v3/st7796/gpiomask"
)

// Frame is one chip select transaction.
type Frame struct {
	Cmd    byte
	HasCmd bool
	// Data is nil when D/C was never driven high during the transaction.
	Data []byte
}

// Recorder implements bus.Port.
//
// It models the output registers: set words raise lines, clear words lower
// them, and every strobe latches the byte currently on the data lines.
type Recorder struct {
	// Table is used to decode the data lines back into bytes.
	Table *gpiomask.Table
	// Fail, when set, is returned by Err.
	Fail error

	// MaskWrites counts WriteMask calls.
	MaskWrites int
	// Strobes counts write pulses, selected or not.
	Strobes int

	low, high uint32
	cached    byte
	dirty     bool
	selected  bool
	command   bool
	frames    []Frame
	cur       *Frame
}

// New returns a Recorder decoding with t.
func New(t *gpiomask.Table) *Recorder {
	return &Recorder{Table: t}
}

// WriteMask implements bus.Port.
func (r *Recorder) WriteMask(setLow, setHigh, clearLow, clearHigh uint32) {
	r.MaskWrites++
	r.low |= setLow
	r.high |= setHigh
	r.low &^= clearLow
	r.high &^= clearHigh
	r.dirty = true
}

// Strobe implements bus.Port.
func (r *Recorder) Strobe(n int) {
	if n <= 0 {
		return
	}
	r.Strobes += n
	if !r.selected {
		return
	}
	b := r.Bus()
	if r.command {
		// Consecutive command bytes in one transaction are not used by the
		// driver; keep the last one.
		r.cur.Cmd = b
		r.cur.HasCmd = true
		return
	}
	if r.cur.Data == nil {
		r.cur.Data = make([]byte, 0, n)
	}
	for j := 0; j < n; j++ {
		r.cur.Data = append(r.cur.Data, b)
	}
}

// Select implements bus.Port.
func (r *Recorder) Select(active bool) {
	if active == r.selected {
		return
	}
	r.selected = active
	if active {
		r.cur = &Frame{}
		return
	}
	r.frames = append(r.frames, *r.cur)
	r.cur = nil
}

// Command implements bus.Port.
func (r *Recorder) Command(active bool) {
	r.command = active
	if !active && r.cur != nil && r.cur.Data == nil {
		r.cur.Data = []byte{}
	}
}

// Err implements bus.Port.
func (r *Recorder) Err() error {
	return r.Fail
}

// Bus returns the byte currently on the data lines. Lines that are not part
// of the data bus are ignored.
func (r *Recorder) Bus() byte {
	if !r.dirty {
		return r.cached
	}
	ml, mh := r.Table.ClearMasks()
	b, ok := r.Table.Decode(r.low&ml, r.high&mh)
	if !ok {
		panic("bustest: data lines do not match any byte")
	}
	r.cached, r.dirty = b, false
	return b
}

// Selected reports whether chip select is asserted.
func (r *Recorder) Selected() bool {
	return r.selected
}

// Frames returns the completed transactions.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Commands returns the command byte of every completed transaction that had
// one.
func (r *Recorder) Commands() []byte {
	var out []byte
	for _, f := range r.frames {
		if f.HasCmd {
			out = append(out, f.Cmd)
		}
	}
	return out
}

// Reset drops the recorded transactions and counters. The line state is
// kept.
func (r *Recorder) Reset() {
	r.frames = nil
	r.MaskWrites = 0
	r.Strobes = 0
}
