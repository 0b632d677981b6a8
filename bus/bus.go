// Package bus drives an 8-bit parallel write-only display bus.
//
// A Writer turns bytes into bus cycles: it places the byte on the data lines
// through a gpiomask.Table and strobes the write line. The electrical side is
// hidden behind Port so the same Writer runs against memory-mapped GPIO
// registers, plain periph pins or the recorder in bustest.
package bus

import (
	"periph.io/x/devices/v3/st7796/gpiomask"
	"periph.io/x/devices/v3/st7796/internal/log"
)

// Port is the set of electrical operations a Writer needs.
//
// Writes are fire-and-forget. An implementation that can fail keeps the first
// error and reports it from Err.
type Port interface {
	// WriteMask drives the data lines: the set words go to the write-1-to-set
	// registers, then the clear words to the write-1-to-clear registers.
	WriteMask(setLow, setHigh, clearLow, clearHigh uint32)
	// Strobe pulses the write line n times.
	Strobe(n int)
	// Select asserts (true) or releases (false) the active low chip select.
	Select(active bool)
	// Command drives D/C low (true) for a command byte or high (false) for data.
	Command(active bool)
	// Err returns the first error encountered, if any.
	Err() error
}

// Writer writes bytes and command frames on a Port.
//
// It remembers the last byte placed on the data lines so that runs of equal
// bytes only cost a strobe each.
type Writer struct {
	p       Port
	t       *gpiomask.Table
	last    byte
	hasLast bool
}

// NewWriter returns a Writer driving p with the masks of t.
func NewWriter(p Port, t *gpiomask.Table) *Writer {
	return &Writer{p: p, t: t}
}

// WriteByte places b on the bus and strobes once.
//
// It implements io.ByteWriter and never fails; port errors are reported by
// Err.
func (w *Writer) WriteByte(b byte) error {
	w.put(b)
	return nil
}

func (w *Writer) put(b byte) {
	w.set(b)
	w.p.Strobe(1)
}

func (w *Writer) set(b byte) {
	if w.hasLast && w.last == b {
		return
	}
	e := w.t.Lookup(b)
	w.p.WriteMask(e.SetLow, e.SetHigh, e.ClearLow, e.ClearHigh)
	w.last, w.hasLast = b, true
}

// Frame writes one transaction with the chip selected: the command byte with
// D/C low when hasCmd is set, then data with D/C high when data is non nil.
// The chip is released on return.
func (w *Writer) Frame(cmd byte, hasCmd bool, data []byte) {
	w.p.Select(true)
	defer w.p.Select(false)
	if hasCmd {
		w.p.Command(true)
		w.put(cmd)
	}
	if data != nil {
		w.p.Command(false)
		for _, b := range data {
			w.put(b)
		}
	}
	if log.ModBus.Enabled(log.DebugLevel) {
		log.ModBus.WithField("cmd", cmd).Debugf("frame has_cmd=%t len=%d", hasCmd, len(data))
	}
}

// Command writes cmd followed by its parameters, if any.
func (w *Writer) Command(cmd byte, data ...byte) {
	w.Frame(cmd, true, data)
}

// Data writes a data only frame.
func (w *Writer) Data(data []byte) {
	if data == nil {
		data = []byte{}
	}
	w.Frame(0, false, data)
}

// Repeat writes a data frame made of trains pulse trains of pulses strobes
// each, with b held on the bus the whole time.
func (w *Writer) Repeat(b byte, trains, pulses int) {
	w.p.Select(true)
	defer w.p.Select(false)
	w.p.Command(false)
	w.set(b)
	for j := 0; j < trains; j++ {
		w.p.Strobe(pulses)
	}
}

// Reset forgets the last byte so the next write always drives the lines.
func (w *Writer) Reset() {
	w.hasLast = false
}

// Last returns the byte currently held on the data lines.
func (w *Writer) Last() (byte, bool) {
	return w.last, w.hasLast
}

// Port returns the port the writer drives.
func (w *Writer) Port() Port {
	return w.p
}

// Err returns the first error reported by the port.
func (w *Writer) Err() error {
	return w.p.Err()
}
