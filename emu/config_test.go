package emu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", cfgFilename)

	want := DefaultConfig()
	want.Emulation.FrameQueue = 6
	want.Emulation.MaxFrames = 120
	want.Emulation.Trace = "stderr"
	want.Video.ScreenshotScale = 3
	want.Input.Port2 = true

	if err := SaveConfig(path, want); err != nil {
		t.Fatal(err)
	}
	if testing.Verbose() {
		buf, _ := os.ReadFile(path)
		t.Logf("saved config:\n%s", buf)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), cfgFilename)
	content := `
[video]
screenshot_scale = 4

[input]
port2_plugged = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.Video.ScreenshotScale = 4
	want.Input.Port2 = true
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), cfgFilename)
	if err := os.WriteFile(path, []byte("[video\nscreenshot_scale = "), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig should fail")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should contain the file path", err)
	}
}

func TestConfigCheck(t *testing.T) {
	cfg := Config{
		Emulation: EmulationConfig{FrameQueue: 0, CommandQueue: -3, MaxFrames: -1},
		Video:     VideoConfig{ScreenshotScale: 100},
	}
	cfg.Check()

	want := Config{
		Emulation: EmulationConfig{FrameQueue: defaultFrameQueue, CommandQueue: defaultCommandQueue},
		Video:     VideoConfig{ScreenshotScale: 1},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
