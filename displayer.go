package st7796

import (
	"errors"
	"image/color"

	"periph.io/x/conn/v3/display"
	"tinygo.org/x/drivers"
)

var (
	_ display.Drawer    = (*Dev)(nil)
	_ drivers.Displayer = (*Dev)(nil)
)

// Size returns the current size of the display.
//
// Size, SetPixel and Display implement drivers.Displayer.
func (d *Dev) Size() (x, y int16) {
	return int16(d.width), int16(d.height)
}

// SetPixel draws one pixel. Pixels outside the surface are ignored.
func (d *Dev) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= d.width || int(y) >= d.height {
		return
	}
	d.Pixel(int(x), int(y), toRGB565(c))
}

// Display reports the first bus error. Pixels are written as they are drawn,
// so there is nothing to flush.
func (d *Dev) Display() error {
	return d.w.Err()
}

// FillRectangle fills a rectangle that must lie within the surface.
func (d *Dev) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if x < 0 || y < 0 || width <= 0 || height <= 0 ||
		int(x)+int(width) > d.width || int(y)+int(height) > d.height {
		return errors.New("st7796: rectangle coordinates outside display area")
	}
	d.FillRect(int(x), int(y), int(width), int(height), toRGB565(c))
	return d.w.Err()
}
