// Package asset describes the bitmap fonts and sprites the display can draw.
//
// All formats store pixels as a bit stream, most significant bit first, and
// share one unpacker. Assets are plain data: build them once, usually from
// generated Go source, and pass them by pointer.
package asset

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"periph.io/x/devices/v3/st7796/rgb565"
)

// Bits unpacks len(dst) values of bpp bits each from src, most significant
// bit first, starting at bit offset off. Bits past the end of src read as
// zero.
func Bits(dst []uint8, src []byte, off, bpp int) {
	if off < 0 {
		off = 0
	}
	for i := range dst {
		var v uint8
		for j := 0; j < bpp; j++ {
			v <<= 1
			if n := off >> 3; n < len(src) && src[n]&(0x80>>(off&7)) != 0 {
				v |= 1
			}
			off++
		}
		dst[i] = v
	}
}

// FixedFont is a monospace 1 bit per pixel font.
//
// Glyphs are stored back to back for the codes First to Last-1. Each glyph is
// Height rows of Width/8 bytes.
type FixedFont struct {
	Width  int
	Height int
	First  rune
	Last   rune
	Bitmap []byte
}

// Validate checks the geometry of the font against its bitmap.
func (f *FixedFont) Validate() error {
	if f.Width <= 0 || f.Width%8 != 0 {
		return fmt.Errorf("asset: font width %d is not a multiple of 8", f.Width)
	}
	if f.Height <= 0 {
		return fmt.Errorf("asset: invalid font height %d", f.Height)
	}
	if f.Last < f.First {
		return errors.New("asset: font has a negative glyph range")
	}
	if need := int(f.Last-f.First) * f.glyphSize(); len(f.Bitmap) < need {
		return fmt.Errorf("asset: font bitmap is %d bytes, need %d", len(f.Bitmap), need)
	}
	return nil
}

func (f *FixedFont) glyphSize() int {
	return f.Height * (f.Width / 8)
}

// Has reports whether the font has a glyph for r.
func (f *FixedFont) Has(r rune) bool {
	return f.First <= r && r < f.Last
}

// Glyph unpacks the glyph of r into dst, one value per pixel, row major.
// dst must hold Width*Height values.
func (f *FixedFont) Glyph(dst []uint8, r rune) {
	Bits(dst[:f.Width*f.Height], f.Bitmap, int(r-f.First)*f.glyphSize()*8, 1)
}

// ParseROMFont builds a FixedFont from a raw ROM font dump, glyphs stored back
// to back starting at code first.
func ParseROMFont(data []byte, width, height int, first rune) (*FixedFont, error) {
	f := &FixedFont{Width: width, Height: height, First: first, Bitmap: data}
	if width <= 0 || width%8 != 0 || height <= 0 {
		return nil, fmt.Errorf("asset: invalid font geometry %dx%d", width, height)
	}
	if len(data)%f.glyphSize() != 0 {
		return nil, fmt.Errorf("asset: font size %d is not a multiple of the %d byte glyph", len(data), f.glyphSize())
	}
	f.Last = first + rune(len(data)/f.glyphSize())
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// ProportionalFont is a variable width 1 bit per pixel font.
//
// Map lists the characters of the font. For the i-th character, Widths[i] is
// its width in pixels and Offsets holds, as an OffsetWidth byte big-endian
// integer, the bit offset of its Widths[i]*Height pixels in Bitmaps.
type ProportionalFont struct {
	Height      int
	MaxWidth    int
	Map         string
	Widths      []byte
	Offsets     []byte
	OffsetWidth int
	Bitmaps     []byte
}

// Validate checks that the tables of the font agree with each other.
func (f *ProportionalFont) Validate() error {
	if f.Height <= 0 {
		return fmt.Errorf("asset: invalid font height %d", f.Height)
	}
	if f.OffsetWidth < 1 || f.OffsetWidth > 3 {
		return fmt.Errorf("asset: offset width %d out of range", f.OffsetWidth)
	}
	n := utf8.RuneCountInString(f.Map)
	if len(f.Widths) != n {
		return fmt.Errorf("asset: %d widths for %d characters", len(f.Widths), n)
	}
	if len(f.Offsets) != n*f.OffsetWidth {
		return fmt.Errorf("asset: %d offset bytes for %d characters", len(f.Offsets), n)
	}
	for _, w := range f.Widths {
		if int(w) > f.MaxWidth {
			return fmt.Errorf("asset: glyph width %d exceeds max width %d", w, f.MaxWidth)
		}
	}
	return nil
}

// Index returns the position of r in Map, or -1.
func (f *ProportionalFont) Index(r rune) int {
	i := 0
	for _, c := range f.Map {
		if c == r {
			return i
		}
		i++
	}
	return -1
}

// Width returns the width of the glyph at index i.
func (f *ProportionalFont) Width(i int) int {
	return int(f.Widths[i])
}

// Offset returns the bit offset of the glyph at index i.
func (f *ProportionalFont) Offset(i int) int {
	off := 0
	for _, b := range f.Offsets[i*f.OffsetWidth : (i+1)*f.OffsetWidth] {
		off = off<<8 | int(b)
	}
	return off
}

// Glyph unpacks the glyph at index i into dst and returns its width. dst must
// hold Width(i)*Height values.
func (f *ProportionalFont) Glyph(dst []uint8, i int) int {
	w := f.Width(i)
	Bits(dst[:w*f.Height], f.Bitmaps, f.Offset(i), 1)
	return w
}

// StringWidth returns the width in pixels of s. Characters missing from the
// font do not count.
func (f *ProportionalFont) StringWidth(s string) int {
	w := 0
	for _, r := range s {
		if i := f.Index(r); i >= 0 {
			w += f.Width(i)
		}
	}
	return w
}

// Sprite is a palette indexed image strip. Frame i of Width*Height pixels of
// BPP bits each starts at bit BPP*Width*Height*i of Bitmap.
//
// Palette entries are plain RGB565 values, red in the top bits. Tables from
// converters that emit byte swapped colors go through SwappedPalette first.
type Sprite struct {
	Width   int
	Height  int
	BPP     int
	Palette []rgb565.Color
	Bitmap  []byte
}

// SwappedPalette converts colors stored low byte first, such as 0x00F8 for
// red, to a Sprite palette.
func SwappedPalette(p []uint16) []rgb565.Color {
	out := make([]rgb565.Color, len(p))
	for i, v := range p {
		out[i] = rgb565.Color(v<<8 | v>>8)
	}
	return out
}

// Validate checks that the palette covers every index the bitmap can hold.
func (s *Sprite) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("asset: invalid sprite size %dx%d", s.Width, s.Height)
	}
	if s.BPP < 1 || s.BPP > 8 {
		return fmt.Errorf("asset: bits per pixel %d out of range", s.BPP)
	}
	if len(s.Palette) < 1<<s.BPP {
		return fmt.Errorf("asset: palette has %d colors, need %d", len(s.Palette), 1<<s.BPP)
	}
	return nil
}

// Frames returns how many frames Bitmap holds.
func (s *Sprite) Frames() int {
	return len(s.Bitmap) * 8 / (s.BPP * s.Width * s.Height)
}

// Frame unpacks frame index into dst as palette colors. Non positive indexes
// select the first frame. dst must hold Width*Height colors.
func (s *Sprite) Frame(dst []rgb565.Color, index int) {
	n := s.Width * s.Height
	idx := make([]uint8, n)
	off := 0
	if index > 0 {
		off = s.BPP * n * index
	}
	Bits(idx, s.Bitmap, off, s.BPP)
	for i, v := range idx {
		if int(v) < len(s.Palette) {
			dst[i] = s.Palette[v]
		} else {
			dst[i] = rgb565.Black
		}
	}
}
