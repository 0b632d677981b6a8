package st7796

import "periph.io/x/devices/v3/st7796/internal/log"

// DefineScrollArea splits the display memory, along the panel's native rows,
// into a top fixed area, a scrolling area and a bottom fixed area. The three
// should add up to the native height; this is not checked.
func (d *Dev) DefineScrollArea(topFixed, scrollArea, bottomFixed uint16) {
	log.ModCtrl.Debugf("scroll area top=%d area=%d bottom=%d", topFixed, scrollArea, bottomFixed)
	d.w.Command(VSCRDEF,
		byte(topFixed>>8), byte(topFixed),
		byte(scrollArea>>8), byte(scrollArea),
		byte(bottomFixed>>8), byte(bottomFixed))
}

// SetScrollAddress selects the memory row shown first after the top fixed
// area.
func (d *Dev) SetScrollAddress(offset uint16) {
	d.w.Command(VSCSAD, byte(offset>>8), byte(offset))
}

// SetScroll scrolls the display by line rows. It implements the scrolling
// part of tinyterm.Displayer and expects a full height scroll area.
func (d *Dev) SetScroll(line int16) {
	d.SetScrollAddress(uint16(line))
}
