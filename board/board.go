// Package board describes how an ST7796 panel is wired and brings it up.
//
// A board is read from a TOML file:
//
//	[panel]
//	width = 320
//	height = 480
//	rotation = 1
//
//	[pins]
//	data = [9, 46, 3, 8, 18, 17, 16, 15]
//	cs = 6
//	dc = 0
//	wr = 47
//	rst = 4
//	bl = 45
//
//	[bus]
//	driver = "mmio"
//	base = 0x60004000
//	strobe = "pulse"
//	strobe_hz = 16000000
//
// Missing keys keep the WT32-SC01 Plus values from Default.
package board

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"

	"periph.io/x/devices/v3/st7796"
	"periph.io/x/devices/v3/st7796/bus"
	"periph.io/x/devices/v3/st7796/gpiomask"
	"periph.io/x/devices/v3/st7796/internal/log"
)

// Bus drivers.
const (
	DriverMMIO = "mmio" // Memory mapped set/clear registers
	DriverGPIO = "gpio" // One periph pin per line
)

// Strobe kinds.
const (
	StrobePulse  = "pulse"  // Bit stream on a pulse generator
	StrobeToggle = "toggle" // Plain pin toggling
)

// NoPin marks an optional control line that is not wired.
const NoPin = -1

type Config struct {
	Panel PanelConfig `toml:"panel"`
	Pins  PinsConfig  `toml:"pins"`
	Bus   BusConfig   `toml:"bus"`
}

type PanelConfig struct {
	Width    int `toml:"width"`
	Height   int `toml:"height"`
	Rotation int `toml:"rotation"`
	// MADCTL value per rotation; empty keeps st7796.DefaultRotations.
	Madctl []uint8 `toml:"madctl"`
}

type PinsConfig struct {
	Data []int `toml:"data"` // D0 first
	CS   int   `toml:"cs"`
	DC   int   `toml:"dc"`
	WR   int   `toml:"wr"`
	RST  int   `toml:"rst"` // NoPin if tied high
	BL   int   `toml:"bl"`  // NoPin if always on
}

type BusConfig struct {
	Driver    string `toml:"driver"`
	Base      uint64 `toml:"base"`
	OutSet    uint32 `toml:"out_set"`
	OutClear  uint32 `toml:"out_clear"`
	Out1Set   uint32 `toml:"out1_set"`
	Out1Clear uint32 `toml:"out1_clear"`
	Strobe    string `toml:"strobe"`
	StrobeHz  int64  `toml:"strobe_hz"`
}

// wt32sc01Data is the data bus of the WT32-SC01 Plus, D0 first.
var wt32sc01Data = []int{9, 46, 3, 8, 18, 17, 16, 15}

// Default returns the WT32-SC01 Plus board.
func Default() Config {
	return Config{
		Panel: PanelConfig{Width: 320, Height: 480},
		Pins: PinsConfig{
			Data: slices.Clone(wt32sc01Data),
			CS:   6,
			DC:   0,
			WR:   47,
			RST:  4,
			BL:   45,
		},
		Bus: BusConfig{
			Driver:    DriverMMIO,
			Base:      bus.ESP32S3Base,
			OutSet:    bus.ESP32S3.OutSet,
			OutClear:  bus.ESP32S3.OutClear,
			Out1Set:   bus.ESP32S3.Out1Set,
			Out1Clear: bus.ESP32S3.Out1Clear,
			Strobe:    StrobePulse,
			StrobeHz:  int64(bus.DefaultPulseFreq / physic.Hertz),
		},
	}
}

const cfgFilename = "board.toml"

// DefaultPath returns the location of the user's board file.
func DefaultPath() string {
	return filepath.Join(configdir.LocalConfig("st7796"), cfgFilename)
}

// Load reads a board file on top of Default and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("board: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, fmt.Errorf("board: unknown key %q in %s", keys[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	log.ModBoard.WithFields(log.Fields{
		"path":   path,
		"driver": cfg.Bus.Driver,
		"strobe": cfg.Bus.Strobe,
	}).Infof("loaded %dx%d panel", cfg.Panel.Width, cfg.Panel.Height)
	return cfg, nil
}

func checkGPIO(name string, g int, optional bool) error {
	if optional && g == NoPin {
		return nil
	}
	if g < 0 || g > 63 {
		return fmt.Errorf("board: %s pin %d out of range", name, g)
	}
	return nil
}

// Validate reports the first inconsistency in c.
func (c *Config) Validate() error {
	if c.Panel.Width <= 0 || c.Panel.Height <= 0 || c.Panel.Width > 0xFFFF || c.Panel.Height > 0xFFFF {
		return fmt.Errorf("board: invalid panel size %dx%d", c.Panel.Width, c.Panel.Height)
	}
	if c.Panel.Rotation < 0 || c.Panel.Rotation > 3 {
		return fmt.Errorf("board: invalid rotation %d", c.Panel.Rotation)
	}
	if n := len(c.Panel.Madctl); n != 0 && n != 4 {
		return fmt.Errorf("board: madctl needs 4 values, got %d", n)
	}

	if len(c.Pins.Data) != 8 {
		return fmt.Errorf("board: data bus needs 8 pins, got %d", len(c.Pins.Data))
	}
	used := map[int]string{}
	claim := func(name string, g int, optional bool) error {
		if err := checkGPIO(name, g, optional); err != nil {
			return err
		}
		if g == NoPin {
			return nil
		}
		if other, ok := used[g]; ok {
			return fmt.Errorf("board: gpio %d used for both %s and %s", g, other, name)
		}
		used[g] = name
		return nil
	}
	for i, g := range c.Pins.Data {
		if err := claim(fmt.Sprintf("D%d", i), g, false); err != nil {
			return err
		}
	}
	for _, p := range []struct {
		name     string
		gpio     int
		optional bool
	}{
		{"CS", c.Pins.CS, false},
		{"DC", c.Pins.DC, false},
		{"WR", c.Pins.WR, false},
		{"RST", c.Pins.RST, true},
		{"BL", c.Pins.BL, true},
	} {
		if err := claim(p.name, p.gpio, p.optional); err != nil {
			return err
		}
	}

	switch c.Bus.Driver {
	case DriverMMIO:
		if _, err := bus.MapSize(c.Layout()); err != nil {
			return fmt.Errorf("board: %w", err)
		}
	case DriverGPIO:
	default:
		return fmt.Errorf("board: unknown bus driver %q", c.Bus.Driver)
	}
	switch c.Bus.Strobe {
	case StrobePulse, StrobeToggle:
	default:
		return fmt.Errorf("board: unknown strobe %q", c.Bus.Strobe)
	}
	if c.Bus.StrobeHz < 0 {
		return errors.New("board: negative strobe frequency")
	}
	return nil
}

// DataPins returns the data bus as a fixed array.
func (c *Config) DataPins() [8]int {
	var pins [8]int
	copy(pins[:], c.Pins.Data)
	return pins
}

// MaskTable returns the byte to register mask table for the data bus. The
// WT32-SC01 Plus wiring uses the built-in table.
func (c *Config) MaskTable() (*gpiomask.Table, error) {
	if slices.Equal(c.Pins.Data, wt32sc01Data) {
		return gpiomask.WT32SC01, nil
	}
	log.ModBoard.Debugf("generating mask table for %v", c.Pins.Data)
	return gpiomask.Generate(c.DataPins())
}

// Layout returns the register offsets of the MMIO bus.
func (c *Config) Layout() bus.Layout {
	return bus.Layout{
		OutSet:    c.Bus.OutSet,
		OutClear:  c.Bus.OutClear,
		Out1Set:   c.Bus.Out1Set,
		Out1Clear: c.Bus.Out1Clear,
	}
}

// StrobeFreq returns the pulse frequency, zero meaning bus.DefaultPulseFreq.
func (c *Config) StrobeFreq() physic.Frequency {
	return physic.Frequency(c.Bus.StrobeHz) * physic.Hertz
}

// Rotations returns the MADCTL table for st7796.Opts.
func (c *Config) Rotations() [4]byte {
	if len(c.Panel.Madctl) != 4 {
		return st7796.DefaultRotations
	}
	return [4]byte(c.Panel.Madctl)
}

// Opts returns the display options, without the control pins.
func (c *Config) Opts() *st7796.Opts {
	return &st7796.Opts{
		W:         c.Panel.Width,
		H:         c.Panel.Height,
		Rotation:  drivers.Rotation(c.Panel.Rotation),
		Rotations: c.Rotations(),
	}
}
