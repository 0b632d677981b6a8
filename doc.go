// Package st7796 controls an ST7796 TFT display over an 8-bit parallel bus.
//
// The ST7796 is a 320×480 RGB565 controller. This driver targets boards like
// the WT32-SC01 Plus where the eight data lines are spread over arbitrary
// GPIOs and written through the SoC's set/clear registers. It implements the
// display.Drawer interface from periph.io and the drivers.Displayer interface
// from TinyGo.
//
// # Bus
//
// Bytes reach the panel through a bus.Writer. The electrical side is a
// bus.Port:
//
//   - bus.RegisterPort writes the W1TS/W1TC registers directly, usually
//     memory mapped with bus.MapRegisters.
//   - bus.PinPort drives one periph gpio.PinOut per line.
//
// Both strobe the write line through a bus.Strober, either a pulse generator
// (bus.Pulse) or plain pin toggling (bus.Toggle). The mapping from a byte to
// register words is a gpiomask.Table; gpiomask.WT32SC01 is built in.
//
// # Basic Usage
//
//	regs, _ := bus.MapRegisters(bus.ESP32S3Base, bus.ESP32S3)
//	wr, _ := bus.NewPulse(wrPin, 0)
//	port, _ := bus.NewRegisterPort(regs, 6, 0, wr)
//
//	dev, _ := st7796.New(port, gpiomask.WT32SC01, &st7796.Opts{
//		RST: gpioreg.ByName("GPIO4"),
//		BL:  gpioreg.ByName("GPIO45"),
//	})
//	defer dev.Halt()
//
//	dev.Fill(rgb565.Black)
//	dev.Line(0, 0, 319, 479, rgb565.Yellow)
//	dev.Text(font, "Hello", 10, 10, rgb565.White, rgb565.Blue)
//
// # Drawing
//
// Drawing calls write straight to the display memory; nothing is buffered.
// Coordinates are checked against the current orientation and an operation
// whose window does not fit is dropped without error. Bus errors are sticky:
// they are returned by Err, Display, Draw, Write and Halt.
//
//   - Pixel, HLine, VLine, Rect, FillRect, Fill, Line
//   - Clear: fast fill with a single byte value
//   - Text: fixed width fonts, 8 or 16 pixels wide (asset.FixedFont)
//   - DrawString: proportional fonts (asset.ProportionalFont)
//   - Bitmap: palette indexed sprites (asset.Sprite)
//   - BlitBuffer, Write, DrawBitmap: raw RGB565 pixels
//   - Draw: any image.Image, with differential updates
//   - Circle, FillCircle, Triangle, FillTriangle (tinydraw), WriteLine
//     (tinyfont)
//
// # Rotation
//
// SetRotation selects portrait (0), landscape (1), inverted portrait (2) or
// inverted landscape (3). The MADCTL value for each can be overridden with
// Opts.Rotations for panels mounted differently.
//
// # Hardware Scrolling
//
// DefineScrollArea and SetScrollAddress map to VSCRDEF and VSCSAD:
//
//	dev.DefineScrollArea(0, 480, 0)
//	for line := uint16(0); line < 480; line++ {
//		dev.SetScrollAddress(line)
//		time.Sleep(10 * time.Millisecond)
//	}
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/ST7796s.pdf
package st7796
