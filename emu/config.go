package emu

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"nescore/emu/log"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Emulation EmulationConfig `toml:"emulation"`
	Video     VideoConfig     `toml:"video"`
	Input     InputConfig     `toml:"input"`

	TraceOut io.Writer `toml:"-"`
}

type EmulationConfig struct {
	// Number of frames buffered between the emulation loop and the frame
	// consumer. Frames produced while the queue is full are dropped.
	FrameQueue int `toml:"frame_queue"`

	// Number of commands that can be sent before Send reports the queue is
	// full.
	CommandQueue int `toml:"command_queue"`

	// Stop after that many frames (0 runs forever).
	MaxFrames int64 `toml:"max_frames"`

	// Trace file path, "stdout" or "stderr". Empty disables tracing.
	Trace string `toml:"trace"`
}

type VideoConfig struct {
	ScreenshotScale int `toml:"screenshot_scale"`
}

type InputConfig struct {
	Port1 bool `toml:"port1_plugged"`
	Port2 bool `toml:"port2_plugged"`
}

func (icfg InputConfig) plugged(port int) bool {
	switch port {
	case 0:
		return icfg.Port1
	case 1:
		return icfg.Port2
	}
	return false
}

const (
	defaultFrameQueue   = 3
	defaultCommandQueue = 8
	maxScreenshotScale  = 8
)

// DefaultConfig returns the configuration used when none is provided.
func DefaultConfig() Config {
	return Config{
		Emulation: EmulationConfig{
			FrameQueue:   defaultFrameQueue,
			CommandQueue: defaultCommandQueue,
		},
		Video: VideoConfig{ScreenshotScale: 1},
		Input: InputConfig{Port1: true},
	}
}

// Check replaces out of range values with their defaults.
func (cfg *Config) Check() {
	if cfg.Emulation.FrameQueue < 1 {
		log.ModEmu.Warnf("invalid frame queue size %d, fallback to %d", cfg.Emulation.FrameQueue, defaultFrameQueue)
		cfg.Emulation.FrameQueue = defaultFrameQueue
	}
	if cfg.Emulation.CommandQueue < 1 {
		log.ModEmu.Warnf("invalid command queue size %d, fallback to %d", cfg.Emulation.CommandQueue, defaultCommandQueue)
		cfg.Emulation.CommandQueue = defaultCommandQueue
	}
	if cfg.Emulation.MaxFrames < 0 {
		cfg.Emulation.MaxFrames = 0
	}
	if s := cfg.Video.ScreenshotScale; s < 1 || s > maxScreenshotScale {
		log.ModEmu.Warnf("invalid screenshot scale %d, fallback to 1", s)
		cfg.Video.ScreenshotScale = 1
	}
}

const cfgFilename = "config.toml"

// ConfigDir returns the nescore directory inside the user configuration
// directory.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nescore"), nil
}

// DefaultConfigPath returns the path of the configuration file inside
// ConfigDir.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, cfgFilename), nil
}

// LoadConfig loads the configuration at path. Missing keys keep their
// default value, and a missing file gives the default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.ModEmu.DebugZ("no config file, using defaults").String("path", path).End()
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		log.ModEmu.WarnZ("unknown config keys").
			String("path", path).
			String("keys", strings.Join(keys, ",")).
			End()
	}
	cfg.Check()
	return cfg, nil
}

// SaveConfig writes cfg at path, creating the parent directory if needed.
func SaveConfig(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
