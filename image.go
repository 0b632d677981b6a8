package st7796

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/devices/v3/st7796/rgb565"
)

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display in the current orientation.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Write writes a full frame of raw pixels in wire order, two bytes per pixel,
// high byte first. The data must be exactly width * height * 2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("st7796: halted")
	}
	if len(pixels) != d.width*d.height*2 {
		return 0, errors.New("st7796: invalid buffer size")
	}
	d.BlitBuffer(pixels, 0, 0, d.width, d.height)
	if err := d.w.Err(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update optimization.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
//
// The driver keeps a copy of what Draw last sent, together with the area where
// that copy is known to match the panel. Only the bounding box of the pixels
// that changed is written, plus all of dst when dst reaches outside the known
// area. Any other drawing call forgets the known area.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("st7796: halted")
	}

	// Clip to display bounds
	r := d.Bounds()
	dst = dst.Intersect(r)
	if dst.Empty() {
		return nil
	}

	// Lazy-initialize double buffer
	if d.next == nil {
		d.next = rgb565.NewImage(r)
		d.last = rgb565.NewImage(r)
	}

	draw.Draw(d.next, dst, src, sp, draw.Src)

	area := d.changed()
	if !dst.In(d.synced) {
		area = area.Union(dst)
	}
	if area.Empty() {
		return nil
	}
	synced := d.synced
	d.sendRect(area)

	copy(d.last.Pix, d.next.Pix)
	d.synced = widest(synced, area)
	return d.w.Err()
}

// widest returns the rectangle that a and b together are known to cover.
func widest(a, b image.Rectangle) image.Rectangle {
	switch {
	case a.In(b):
		return b
	case b.In(a):
		return a
	case a.Dx()*a.Dy() > b.Dx()*b.Dy():
		return a
	default:
		return b
	}
}

// changed returns the bounding box of the pixels that differ between the
// shadow buffers.
func (d *Dev) changed() image.Rectangle {
	minCol, maxCol := d.width, -1
	minRow, maxRow := d.height, -1
	stride := d.next.Stride

	// Scan row by row to find differences
	for y := 0; y < d.height; y++ {
		row := y * stride
		cur := d.next.Pix[row : row+stride]
		old := d.last.Pix[row : row+stride]
		if bytes.Equal(cur, old) {
			continue
		}
		minRow = min(minRow, y)
		maxRow = max(maxRow, y)
		for x := 0; x < stride; x += 2 {
			if cur[x] != old[x] || cur[x+1] != old[x+1] {
				minCol = min(minCol, x/2)
				maxCol = max(maxCol, x/2)
			}
		}
	}
	if maxRow < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minCol, minRow, maxCol+1, maxRow+1)
}

// sendRect writes the area of the shadow buffer to the display.
func (d *Dev) sendRect(area image.Rectangle) {
	if !d.setWindow(area.Min.X, area.Min.Y, area.Max.X-1, area.Max.Y-1) {
		return
	}
	if area.Dx() == d.width {
		// Rows are contiguous.
		d.w.Data(d.next.Pix[d.next.PixOffset(0, area.Min.Y):d.next.PixOffset(0, area.Max.Y)])
		return
	}
	buf := make([]byte, 0, 2*area.Dx()*area.Dy())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		buf = append(buf, d.next.Row(y, area.Min.X, area.Max.X)...)
	}
	d.w.Data(buf)
}
