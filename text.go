package st7796

import (
	"tinygo.org/x/tinyfont"

	"periph.io/x/devices/v3/st7796/asset"
	"periph.io/x/devices/v3/st7796/rgb565"
)

// glyphBuffer renders unpacked glyph bits as fg/bg pixels in wire order.
func (d *Dev) glyphBuffer(bits []uint8, fg, bg rgb565.Color) []byte {
	buf := d.scratch(2 * len(bits))
	fh, fl := fg.Bytes()
	bh, bl := bg.Bytes()
	for i, v := range bits {
		if v != 0 {
			buf[2*i], buf[2*i+1] = fh, fl
		} else {
			buf[2*i], buf[2*i+1] = bh, bl
		}
	}
	return buf
}

// Text draws s with a fixed width font, starting at (x, y).
//
// A character is skipped, without advancing, when the font has no glyph for
// it or when the glyph does not fit on the surface. f must pass Validate.
func (d *Dev) Text(f *asset.FixedFont, s string, x, y int, fg, bg rgb565.Color) {
	bits := make([]uint8, f.Width*f.Height)
	for _, r := range s {
		if !f.Has(r) || x+f.Width > d.width || y+f.Height > d.height {
			continue
		}
		f.Glyph(bits, r)
		buf := d.glyphBuffer(bits, fg, bg)
		if d.setWindow(x, y, x+f.Width-1, y+f.Height-1) {
			d.w.Data(buf)
		}
		x += f.Width
	}
}

// DrawString draws s with a proportional font, starting at (x, y).
//
// Characters missing from the font are skipped without advancing. A glyph
// that does not fit on the surface is not drawn but still advances the pen.
// f must pass Validate; a font with short tables panics.
func (d *Dev) DrawString(f *asset.ProportionalFont, s string, x, y int, fg, bg rgb565.Color) {
	bits := make([]uint8, f.MaxWidth*f.Height)
	for _, r := range s {
		i := f.Index(r)
		if i < 0 {
			continue
		}
		w := f.Width(i)
		if cap(bits) < w*f.Height {
			bits = make([]uint8, w*f.Height)
		}
		f.Glyph(bits, i)
		buf := d.glyphBuffer(bits[:w*f.Height], fg, bg)
		toCol := x + w - 1
		toRow := y + f.Height - 1
		if toCol < d.width && toRow < d.height && d.setWindow(x, y, toCol, toRow) {
			d.w.Data(buf)
		}
		x += w
	}
}

// StringWidth returns the width in pixels of s drawn with f.
func (d *Dev) StringWidth(f *asset.ProportionalFont, s string) int {
	return f.StringWidth(s)
}

// WriteLine draws s with a tinyfont font, (x, y) being the left end of the
// baseline. Only the glyph pixels are drawn.
func (d *Dev) WriteLine(f tinyfont.Fonter, s string, x, y int, c rgb565.Color) {
	tinyfont.WriteLine(d, f, int16(x), int16(y), s, c.RGBA8())
}
