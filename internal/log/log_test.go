package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseModules(t *testing.T) {
	tests := []struct {
		name   string
		list   string
		want   ModuleMask
		wantOK bool
	}{
		{"empty", "", 0, true},
		{"single", "bus", ModBus.Mask(), true},
		{"several", "bus, draw", ModBus.Mask() | ModDraw.Mask(), true},
		{"all", "all", ModuleMaskAll, true},
		{"unknown", "bus,gpu", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseModules(tt.list)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseModules(%q) = %#x, %t; want %#x, %t", tt.list, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEnabled(t *testing.T) {
	defer DisableDebugModules(ModuleMaskAll)

	if ModCtrl.Enabled(DebugLevel) {
		t.Fatal("debug should be off by default")
	}
	if !ModCtrl.Enabled(WarnLevel) {
		t.Fatal("warnings are always on")
	}
	EnableDebugModules(ModCtrl.Mask())
	if !ModCtrl.Enabled(DebugLevel) {
		t.Error("debug should be on once the module is enabled")
	}
	if ModDraw.Enabled(DebugLevel) {
		t.Error("enabling one module must not enable another")
	}
}

func TestOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer DisableDebugModules(ModuleMaskAll)

	ModBus.WithField("cmd", 0x2A).Debugf("dropped")
	if buf.Len() != 0 {
		t.Fatalf("disabled module logged %q", buf.String())
	}

	EnableDebugModules(ModBus.Mask())
	ModBus.WithField("cmd", 0x2A).Debugf("frame %d", 3)
	out := buf.String()
	for _, s := range []string{"frame 3", "_mod=bus", "cmd=42"} {
		if !strings.Contains(out, s) {
			t.Errorf("output %q does not contain %q", out, s)
		}
	}
}

func TestNewModule(t *testing.T) {
	mod := NewModule("touch")
	got, ok := ModuleByName("touch")
	if !ok || got != mod {
		t.Errorf("ModuleByName(touch) = %d, %t; want %d, true", got, ok, mod)
	}
	if mod.String() != "touch" {
		t.Errorf("String() = %q", mod.String())
	}
}

func TestModuleNames(t *testing.T) {
	names := ModuleNames()
	if len(names) < 4 {
		t.Fatalf("ModuleNames() = %v", names)
	}
	want := []string{"bus", "ctrl", "draw", "board"}
	if diff := cmp.Diff(want, names[:4]); diff != "" {
		t.Errorf("ModuleNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer DisableDebugModules(ModuleMaskAll)

	// Warnings and errors do not depend on the module mask.
	ModCtrl.WithFields(Fields{"pin": "RST"}).Warnf("slow reset")
	ModDraw.Errorf("bad window")
	calls := 0
	lazy := func() Fields {
		calls++
		return Fields{"w": 320}
	}
	ModDraw.WithDelayedFields(lazy).Debugf("skipped")
	if calls != 0 {
		t.Error("delayed fields evaluated for a disabled module")
	}

	EnableDebugModules(ModDraw.Mask())
	ModDraw.WithDelayedFields(lazy).Debugf("shown")
	DisableDebugModules(ModDraw.Mask())
	ModDraw.Debugf("hidden again")

	out := buf.String()
	for _, s := range []string{"slow reset", "pin=RST", "bad window", "shown", "w=320"} {
		if !strings.Contains(out, s) {
			t.Errorf("output %q does not contain %q", out, s)
		}
	}
	for _, s := range []string{"skipped", "hidden again"} {
		if strings.Contains(out, s) {
			t.Errorf("output %q contains %q", out, s)
		}
	}
	if calls != 1 {
		t.Errorf("delayed fields evaluated %d times, want 1", calls)
	}
}
