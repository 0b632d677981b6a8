// Package gpiomask holds the lookup tables that put one byte on an 8-bit
// parallel data bus made of arbitrary GPIO lines.
//
// The lines are driven through two pairs of write-1-to-set / write-1-to-clear
// registers: the low pair covers GPIO 0-31, the high pair GPIO 32-63. For each
// of the 256 byte values a Table stores the four register words, so putting a
// byte on the bus always costs the same four register writes.
package gpiomask

import "fmt"

// Entry is the register words for one byte value.
type Entry struct {
	SetLow    uint32 // written to the low set register
	SetHigh   uint32 // written to the high set register
	ClearLow  uint32 // written to the low clear register
	ClearHigh uint32 // written to the high clear register
}

// Table maps every byte value to its register words.
type Table [256]Entry

// FromSetWords builds a Table from the set words of both register pairs.
//
// The clear words are the complement of the set words restricted to the data
// lines, that is the set word XOR the set word of 0xFF.
func FromSetWords(low, high *[256]uint32) *Table {
	t := &Table{}
	for v := range t {
		t[v] = Entry{
			SetLow:    low[v],
			SetHigh:   high[v],
			ClearLow:  low[v] ^ low[0xFF],
			ClearHigh: high[v] ^ high[0xFF],
		}
	}
	return t
}

// Generate computes the Table for a data bus where bit i of a byte is wired to
// GPIO pins[i].
//
// Pins 0-31 land in the low register pair, pins 32-63 in the high pair.
func Generate(pins [8]int) (*Table, error) {
	var low, high [256]uint32
	for _, p := range pins {
		if p < 0 || p > 63 {
			return nil, fmt.Errorf("gpiomask: pin %d out of range", p)
		}
	}
	for v := 0; v < 256; v++ {
		for bit, p := range pins {
			if v&(1<<bit) == 0 {
				continue
			}
			if p < 32 {
				low[v] |= 1 << p
			} else {
				high[v] |= 1 << (p - 32)
			}
		}
	}
	return FromSetWords(&low, &high), nil
}

// Lookup returns the register words for b.
func (t *Table) Lookup(b byte) Entry {
	return t[b]
}

// ClearMasks returns the words that clear every data line at once.
func (t *Table) ClearMasks() (low, high uint32) {
	return t[0xFF].SetLow, t[0xFF].SetHigh
}

// Decode returns the byte value whose set words are low and high.
func (t *Table) Decode(low, high uint32) (byte, bool) {
	for v := range t {
		if t[v].SetLow == low && t[v].SetHigh == high {
			return byte(v), true
		}
	}
	return 0, false
}
