// Package rgb565 provides the 16-bit 5-6-5 color format used by the ST7796
// display controller.
//
// A pixel is sent to the controller as two bytes, most significant first:
//
//	Bits:  RRRRRGGG GGGBBBBB
//	Color: 0xF800 (red) is sent as 0xF8 0x00
//
// This package provides:
//
// - Color: a 5-6-5 color value
// - Model: a color model converting standard Go colors to Color
// - Image: an image.Image whose pixel buffer is already in wire order
//
// Example usage:
//
//	img := rgb565.NewImage(image.Rect(0, 0, 320, 480))
//	img.SetRGB565(10, 20, rgb565.Red)
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package rgb565
