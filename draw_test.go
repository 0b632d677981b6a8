package st7796

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"tinygo.org/x/drivers/pixel"

	"periph.io/x/devices/v3/st7796/asset"
	"periph.io/x/devices/v3/st7796/rgb565"
)

func TestPixel(t *testing.T) {
	d, r := newTestDev(t, nil)
	d.Pixel(10, 20, rgb565.Red)
	want := []window{{X0: 10, Y0: 20, X1: 10, Y1: 20, Data: []byte{0xF8, 0x00}}}
	if diff := cmp.Diff(want, windows(t, r.Frames())); diff != "" {
		t.Errorf("windows mismatch (-want +got):\n%s", diff)
	}
	wantCmds := []byte{CASET, RASET, RAMWR}
	if diff := cmp.Diff(wantCmds, r.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestPixelColorTruncation(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    []byte
	}{
		{"white", 255, 255, 255, []byte{0xFF, 0xFF}},
		{"low bits dropped", 7, 3, 7, []byte{0x00, 0x00}},
		{"one step each", 8, 4, 8, []byte{0x08, 0x21}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, r := newTestDev(t, nil)
			d.SetPixel(0, 0, color.RGBA{tt.r, tt.g, tt.b, 0xFF})
			w := windows(t, r.Frames())
			if len(w) != 1 {
				t.Fatalf("got %d windows, want 1", len(w))
			}
			if diff := cmp.Diff(tt.want, w[0].Data); diff != "" {
				t.Errorf("pixel bytes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInvalidWindowsAreDropped(t *testing.T) {
	tests := []struct {
		name string
		draw func(d *Dev)
	}{
		{"negative x", func(d *Dev) { d.Pixel(-1, 0, rgb565.White) }},
		{"negative y", func(d *Dev) { d.Pixel(0, -1, rgb565.White) }},
		{"x past the edge", func(d *Dev) { d.Pixel(321, 0, rgb565.White) }},
		{"y past the edge", func(d *Dev) { d.Pixel(0, 481, rgb565.White) }},
		{"zero width", func(d *Dev) { d.FillRect(0, 0, 0, 10, rgb565.White) }},
		{"zero height", func(d *Dev) { d.FillRect(0, 0, 10, 0, rgb565.White) }},
		{"rect too wide", func(d *Dev) { d.FillRect(300, 0, 22, 1, rgb565.White) }},
		{"blit off screen", func(d *Dev) { d.BlitBuffer([]byte{0, 0}, 0, 500, 1, 1) }},
		{"set pixel on the edge", func(d *Dev) { d.SetPixel(320, 0, color.RGBA{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, r := newTestDev(t, nil)
			tt.draw(d)
			if n := len(r.Frames()); n != 0 {
				t.Errorf("got %d frames, want none", n)
			}
		})
	}
}

func TestWindowInclusiveBounds(t *testing.T) {
	d, r := newTestDev(t, nil)
	// The window may end one past the last column and row.
	d.Pixel(320, 480, rgb565.White)
	if n := len(windows(t, r.Frames())); n != 1 {
		t.Errorf("got %d windows, want 1", n)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{"horizontal", 0, 0, 3, 0, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"diagonal", 0, 0, 3, 3, []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"vertical", 5, 2, 5, 4, []image.Point{{5, 2}, {5, 3}, {5, 4}}},
		{"reversed", 3, 0, 0, 0, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"single point", 7, 7, 7, 7, []image.Point{{7, 7}}},
		{"shallow", 0, 0, 4, 1, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, r := newTestDev(t, nil)
			d.Line(tt.x0, tt.y0, tt.x1, tt.y1, rgb565.Yellow)
			if diff := cmp.Diff(tt.want, pixels(t, r.Frames())); diff != "" {
				t.Errorf("pixels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineOctants(t *testing.T) {
	c := image.Pt(100, 100)
	ends := []image.Point{
		{7, 3}, {3, 7}, {-3, 7}, {-7, 3},
		{-7, -3}, {-3, -7}, {3, -7}, {7, -3},
	}
	for _, e := range ends {
		d, r := newTestDev(t, nil)
		end := c.Add(e)
		d.Line(c.X, c.Y, end.X, end.Y, rgb565.White)
		got := pixels(t, r.Frames())

		major := max(abs(e.X), abs(e.Y))
		if len(got) != major+1 {
			t.Errorf("%v: %d pixels, want %d", e, len(got), major+1)
			continue
		}
		seen := map[image.Point]bool{}
		for i, p := range got {
			seen[p] = true
			if i == 0 {
				continue
			}
			step := p.Sub(got[i-1])
			if abs(step.X) > 1 || abs(step.Y) > 1 || step == (image.Point{}) {
				t.Errorf("%v: pixels %v and %v are not adjacent", e, got[i-1], p)
			}
		}
		if !seen[c] || !seen[end] {
			t.Errorf("%v: end points missing from %v", e, got)
		}
	}
}

func TestFillRect(t *testing.T) {
	d, r := newTestDev(t, nil)
	d.FillRect(10, 10, 20, 20, rgb565.Blue)

	var sizes []int
	for _, f := range r.Frames()[3:] {
		sizes = append(sizes, len(f.Data))
	}
	// 400 pixels: one burst of 256 and the remaining 144.
	if diff := cmp.Diff([]int{512, 288}, sizes); diff != "" {
		t.Errorf("burst sizes mismatch (-want +got):\n%s", diff)
	}

	w := windows(t, r.Frames())
	if len(w) != 1 {
		t.Fatalf("got %d windows, want 1", len(w))
	}
	if w[0].X0 != 10 || w[0].Y0 != 10 || w[0].X1 != 29 || w[0].Y1 != 29 {
		t.Errorf("window = (%d,%d)-(%d,%d), want (10,10)-(29,29)", w[0].X0, w[0].Y0, w[0].X1, w[0].Y1)
	}
	if !bytes.Equal(w[0].Data, bytes.Repeat([]byte{0x00, 0x1F}, 400)) {
		t.Error("fill data is not 400 blue pixels")
	}
}

func TestFillRectExactChunks(t *testing.T) {
	d, r := newTestDev(t, nil)
	d.FillRect(0, 0, 16, 32, rgb565.White)
	if n := len(r.Frames()); n != 3+2 {
		t.Errorf("got %d frames, want 5", n)
	}
}

func TestFill(t *testing.T) {
	d, r := newTestDev(t, nil)
	d.SetRotation(1)
	r.Reset()
	d.Fill(rgb565.Green)
	w := windows(t, r.Frames())
	if len(w) != 1 || w[0].X1 != 479 || w[0].Y1 != 319 || len(w[0].Data) != 480*320*2 {
		t.Errorf("Fill wrote %d windows", len(w))
	}
}

func TestRect(t *testing.T) {
	d, r := newTestDev(t, nil)
	d.Rect(5, 6, 4, 3, rgb565.Red)
	got := windows(t, r.Frames())
	want := []image.Rectangle{
		image.Rect(5, 6, 8, 6), // top
		image.Rect(5, 6, 5, 8), // left
		image.Rect(8, 6, 8, 8), // right
		image.Rect(5, 8, 8, 8), // bottom
	}
	if len(got) != len(want) {
		t.Fatalf("got %d windows, want %d", len(got), len(want))
	}
	for i, w := range got {
		if r := image.Rect(w.X0, w.Y0, w.X1, w.Y1); r != want[i] {
			t.Errorf("side %d = %v, want %v", i, r, want[i])
		}
	}
}

func TestClear(t *testing.T) {
	d, r := newTestDev(t, nil)
	d.Clear(0xFF)
	w := windows(t, r.Frames())
	if len(w) != 1 {
		t.Fatalf("got %d windows, want 1", len(w))
	}
	if w[0].X0 != 0 || w[0].Y0 != 0 || w[0].X1 != 320 || w[0].Y1 != 480 {
		t.Errorf("window = %+v", w[0])
	}
	if n := len(w[0].Data); n != 2*320*481 {
		t.Errorf("%d bytes written, want %d", n, 2*320*481)
	}
	if bytes.Count(w[0].Data, []byte{0xFF}) != len(w[0].Data) {
		t.Error("clear data is not all 0xff")
	}
	if b, ok := d.w.Last(); !ok || b != 0xFF {
		t.Errorf("last byte = %#02x, %t; want 0xff", b, ok)
	}
}

func TestBlitBuffer(t *testing.T) {
	d, r := newTestDev(t, nil)
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	d.BlitBuffer(buf, 1, 2, 2, 2)
	want := []window{{X0: 1, Y0: 2, X1: 2, Y1: 3, Data: buf}}
	if diff := cmp.Diff(want, windows(t, r.Frames())); diff != "" {
		t.Errorf("windows mismatch (-want +got):\n%s", diff)
	}
}

var testSprite = &asset.Sprite{
	Width:   2,
	Height:  2,
	BPP:     1,
	Palette: []rgb565.Color{rgb565.Black, 0x1234},
	// Frame 0: 1 0 / 0 1. Frame 1: 0 1 / 1 0.
	Bitmap: []byte{0b1001_0110},
}

func TestBitmap(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		index int
		want  []window
	}{
		{
			"first frame",
			4, 5, 0,
			[]window{{X0: 4, Y0: 5, X1: 5, Y1: 6, Data: []byte{0x12, 0x34, 0, 0, 0, 0, 0x12, 0x34}}},
		},
		{
			"second frame",
			0, 0, 1,
			[]window{{X0: 0, Y0: 0, X1: 1, Y1: 1, Data: []byte{0, 0, 0x12, 0x34, 0x12, 0x34, 0, 0}}},
		},
		{"last column", 318, 0, 0, []window{{X0: 318, Y0: 0, X1: 319, Y1: 1, Data: []byte{0x12, 0x34, 0, 0, 0, 0, 0x12, 0x34}}}},
		{"one column over", 319, 0, 0, nil},
		{"one row over", 0, 479, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, r := newTestDev(t, nil)
			d.Bitmap(testSprite, tt.x, tt.y, tt.index)
			if diff := cmp.Diff(tt.want, windows(t, r.Frames())); diff != "" {
				t.Errorf("windows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawBitmap(t *testing.T) {
	d, r := newTestDev(t, nil)
	img := pixel.NewImage[pixel.RGB565BE](2, 1)
	img.Set(0, 0, pixel.NewRGB565BE(0xFF, 0, 0))
	img.Set(1, 0, pixel.NewRGB565BE(0, 0, 0xFF))
	if err := d.DrawBitmap(3, 4, img); err != nil {
		t.Fatal(err)
	}
	want := []window{{X0: 3, Y0: 4, X1: 4, Y1: 4, Data: []byte{0xF8, 0x00, 0x00, 0x1F}}}
	if diff := cmp.Diff(want, windows(t, r.Frames())); diff != "" {
		t.Errorf("windows mismatch (-want +got):\n%s", diff)
	}
}

func TestFillRectangle(t *testing.T) {
	d, r := newTestDev(t, nil)
	if err := d.FillRectangle(0, 0, 2, 2, color.RGBA{0xFF, 0, 0, 0xFF}); err != nil {
		t.Fatal(err)
	}
	w := windows(t, r.Frames())
	if len(w) != 1 || !bytes.Equal(w[0].Data, bytes.Repeat([]byte{0xF8, 0}, 4)) {
		t.Errorf("windows = %+v", w)
	}
	for _, bad := range [][4]int16{{-1, 0, 1, 1}, {0, 0, 0, 1}, {319, 0, 2, 1}, {0, 470, 1, 11}} {
		if err := d.FillRectangle(bad[0], bad[1], bad[2], bad[3], color.RGBA{}); err == nil {
			t.Errorf("FillRectangle(%v) should fail", bad)
		}
	}
}

func TestShapes(t *testing.T) {
	d, r := newTestDev(t, nil)
	d.FillCircle(50, 50, 5, rgb565.Cyan)
	d.Circle(50, 50, 10, rgb565.Cyan)
	d.Triangle(10, 10, 20, 10, 15, 20, rgb565.Magenta)
	d.FillTriangle(10, 10, 20, 10, 15, 20, rgb565.Magenta)

	w := windows(t, r.Frames())
	if len(w) == 0 {
		t.Fatal("nothing drawn")
	}
	box := image.Rect(0, 0, 70, 70)
	for _, w := range w {
		if !image.Pt(w.X0, w.Y0).In(box) || !image.Pt(w.X1, w.Y1).In(box) {
			t.Errorf("window (%d,%d)-(%d,%d) outside the shapes", w.X0, w.Y0, w.X1, w.Y1)
		}
	}
}

func TestBitmapSwappedPalette(t *testing.T) {
	d, r := newTestDev(t, nil)
	s := &asset.Sprite{
		Width:   1,
		Height:  2,
		BPP:     1,
		Palette: asset.SwappedPalette([]uint16{0x0000, 0x00F8}),
		Bitmap:  []byte{0b01_000000},
	}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	d.Bitmap(s, 0, 0, 0)
	want := []window{{X0: 0, Y0: 0, X1: 0, Y1: 1, Data: []byte{0x00, 0x00, 0xF8, 0x00}}}
	if diff := cmp.Diff(want, windows(t, r.Frames())); diff != "" {
		t.Errorf("windows mismatch (-want +got):\n%s", diff)
	}
}
