package st7796

import (
	"image/color"

	"tinygo.org/x/drivers/pixel"
	"tinygo.org/x/tinydraw"

	"periph.io/x/devices/v3/st7796/asset"
	"periph.io/x/devices/v3/st7796/rgb565"
)

// fillChunk is the number of pixels sent per data frame by FillRect.
const fillChunk = 256

// Pixel draws one pixel.
func (d *Dev) Pixel(x, y int, c rgb565.Color) {
	if d.setWindow(x, y, x, y) {
		hi, lo := c.Bytes()
		d.w.Data([]byte{hi, lo})
	}
}

// HLine draws a horizontal line of length pixels starting at (x, y).
func (d *Dev) HLine(x, y, length int, c rgb565.Color) {
	d.FillRect(x, y, length, 1, c)
}

// VLine draws a vertical line of length pixels starting at (x, y).
func (d *Dev) VLine(x, y, length int, c rgb565.Color) {
	d.FillRect(x, y, 1, length, c)
}

// Rect draws the outline of a w by h rectangle.
func (d *Dev) Rect(x, y, w, h int, c rgb565.Color) {
	d.HLine(x, y, w, c)
	d.VLine(x, y, h, c)
	d.VLine(x+w-1, y, h, c)
	d.HLine(x, y+h-1, w, c)
}

// FillRect fills a w by h rectangle.
func (d *Dev) FillRect(x, y, w, h int, c rgb565.Color) {
	if !d.setWindow(x, y, x+w-1, y+h-1) {
		return
	}
	chunks, rest := (w*h)/fillChunk, (w*h)%fillChunk
	buf := d.scratch(2 * fillChunk)
	hi, lo := c.Bytes()
	for i := 0; i < len(buf); i += 2 {
		buf[i], buf[i+1] = hi, lo
	}
	for j := 0; j < chunks; j++ {
		d.w.Data(buf)
	}
	if rest > 0 {
		d.w.Data(buf[:2*rest])
	}
}

// Fill fills the whole surface.
func (d *Dev) Fill(c rgb565.Color) {
	d.FillRect(0, 0, d.width, d.height, c)
}

// Clear fills the display memory with the byte b, holding it on the bus and
// only pulsing the write line. 0x00 is black and 0xFF white; any other value
// gives the color b<<8|b.
func (d *Dev) Clear(b byte) {
	if !d.setWindow(0, 0, d.width, d.height) {
		return
	}
	d.w.Repeat(b, 2*(d.height+1), d.width)
}

// Line draws a one pixel wide line from (x0, y0) to (x1, y1), both ends
// included.
func (d *Dev) Line(x0, y0, x1, y1 int, c rgb565.Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}
	for ; x0 <= x1; x0++ {
		if steep {
			d.Pixel(y0, x0, c)
		} else {
			d.Pixel(x0, y0, c)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// BlitBuffer copies buf, w by h pixels in wire order, to (x, y).
func (d *Dev) BlitBuffer(buf []byte, x, y, w, h int) {
	if d.setWindow(x, y, x+w-1, y+h-1) {
		d.w.Data(buf)
	}
}

// Bitmap draws frame index of s with its top left corner at (x, y). The
// sprite is skipped entirely if it does not fit on the surface. s must pass
// Validate.
func (d *Dev) Bitmap(s *asset.Sprite, x, y, index int) {
	n := s.Width * s.Height
	colors := make([]rgb565.Color, n)
	s.Frame(colors, index)
	buf := d.scratch(2 * n)
	for i, c := range colors {
		buf[2*i], buf[2*i+1] = c.Bytes()
	}
	toCol := x + s.Width - 1
	toRow := y + s.Height - 1
	if toCol < d.width && toRow < d.height && d.setWindow(x, y, toCol, toRow) {
		d.w.Data(buf)
	}
}

// DrawBitmap copies img to (x, y).
func (d *Dev) DrawBitmap(x, y int16, img pixel.Image[pixel.RGB565BE]) error {
	w, h := img.Size()
	if d.setWindow(int(x), int(y), int(x)+w-1, int(y)+h-1) {
		d.w.Data(img.RawBuffer())
	}
	return d.w.Err()
}

// Circle draws the outline of a circle through tinydraw.
func (d *Dev) Circle(x, y, r int16, c rgb565.Color) {
	tinydraw.Circle(d, x, y, r, c.RGBA8())
}

// FillCircle draws a filled circle through tinydraw.
func (d *Dev) FillCircle(x, y, r int16, c rgb565.Color) {
	tinydraw.FilledCircle(d, x, y, r, c.RGBA8())
}

// Triangle draws the outline of a triangle through tinydraw.
func (d *Dev) Triangle(x0, y0, x1, y1, x2, y2 int16, c rgb565.Color) {
	tinydraw.Triangle(d, x0, y0, x1, y1, x2, y2, c.RGBA8())
}

// FillTriangle draws a filled triangle through tinydraw.
func (d *Dev) FillTriangle(x0, y0, x1, y1, x2, y2 int16, c rgb565.Color) {
	tinydraw.FilledTriangle(d, x0, y0, x1, y1, x2, y2, c.RGBA8())
}

// scratch returns a reusable buffer of n bytes.
func (d *Dev) scratch(n int) []byte {
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	}
	return d.buf[:n]
}

func toRGB565(c color.RGBA) rgb565.Color {
	return rgb565.New(c.R, c.G, c.B)
}
