package st7796

import (
	"image"

	"periph.io/x/devices/v3/st7796/internal/log"
)

// setWindow addresses the rectangle (x0, y0)-(x1, y1), inclusive, and opens a
// memory write. The following data frame fills it row by row.
//
// The window is accepted when 0 <= x0 <= x1 <= width and 0 <= y0 <= y1 <=
// height. Anything else is silently dropped and false is returned.
func (d *Dev) setWindow(x0, y0, x1, y1 int) bool {
	if x0 < 0 || x0 > x1 || x1 > d.width || y0 < 0 || y0 > y1 || y1 > d.height {
		if log.ModDraw.Enabled(log.DebugLevel) {
			log.ModDraw.WithDelayedFields(func() log.Fields {
				return log.Fields{"width": d.width, "height": d.height}
			}).Debugf("skip window (%d,%d)-(%d,%d)", x0, y0, x1, y1)
		}
		return false
	}
	d.synced = image.Rectangle{}
	d.w.Command(CASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1))
	d.w.Command(RASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
	d.w.Command(RAMWR)
	return true
}
