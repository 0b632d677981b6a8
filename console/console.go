// Package console runs a text terminal on an ST7796 display.
//
// Output goes through tinyterm, which understands the usual VT100 escape
// sequences (colors, cursor back, erase in line). New lines scroll the panel
// with the controller's vertical scrolling instead of redrawing it, so the
// display must be in a portrait orientation where the memory rows match the
// screen rows.
package console

import (
	"errors"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"

	"periph.io/x/devices/v3/st7796"
	"periph.io/x/devices/v3/st7796/internal/log"
	"periph.io/x/devices/v3/st7796/rgb565"
)

var modConsole = log.NewModule("console")

// Config selects the terminal font.
type Config struct {
	Font       tinyfont.Fonter // default: proggy.TinySZ8pt7b
	FontHeight int16           // Line height in pixels (default: 10)
	FontOffset int16           // Baseline offset from the top of a line (default: 6)
}

// Console is an io.Writer printing to the display.
type Console struct {
	d    *st7796.Dev
	term *tinyterm.Terminal
	cfg  tinyterm.Config
}

// New clears d and starts a terminal on it. cfg can be nil to use the
// defaults.
func New(d *st7796.Dev, cfg *Config) (*Console, error) {
	if d.Rotation()%2 != 0 {
		return nil, errors.New("console: hardware scrolling needs a portrait rotation")
	}
	c := &Console{
		d:    d,
		term: tinyterm.NewTerminal(d),
		cfg: tinyterm.Config{
			Font:       &proggy.TinySZ8pt7b,
			FontHeight: 10,
			FontOffset: 6,
		},
	}
	if cfg != nil {
		if cfg.Font != nil {
			c.cfg.Font = cfg.Font
		}
		if cfg.FontHeight > 0 {
			c.cfg.FontHeight = cfg.FontHeight
		}
		if cfg.FontOffset > 0 {
			c.cfg.FontOffset = cfg.FontOffset
		}
	}
	if err := c.Reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset blanks the screen and moves the cursor to the top left corner.
func (c *Console) Reset() error {
	_, h := c.d.Size()
	modConsole.Debugf("reset: %d rows of %d pixels", h/c.cfg.FontHeight, c.cfg.FontHeight)
	c.d.Fill(rgb565.Black)
	c.d.DefineScrollArea(0, uint16(h), 0)
	c.d.SetScroll(0)
	c.term.Configure(&c.cfg)
	return c.d.Err()
}

// Write prints p. It fails only when the bus does.
func (c *Console) Write(p []byte) (int, error) {
	n, err := c.term.Write(p)
	if err != nil {
		return n, err
	}
	if err := c.d.Err(); err != nil {
		return 0, err
	}
	return n, nil
}
