package game

import (
	"errors"
	"testing"

	"github.com/samdwyer/firstrl/internal/world"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error: %v", err)
	}

	if cfg.ScreenWidth != 80 || cfg.ScreenHeight != 50 {
		t.Errorf("screen = %dx%d, want 80x50", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.MapWidth != 80 || cfg.MapHeight != 45 {
		t.Errorf("map = %dx%d, want 80x45", cfg.MapWidth, cfg.MapHeight)
	}
	if cfg.FPS != 20 || cfg.MaxRooms != 30 || cfg.RoomMinSize != 6 || cfg.RoomMaxSize != 10 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero screen", func(c *Config) { c.ScreenWidth = 0 }},
		{"zero map", func(c *Config) { c.MapHeight = 0 }},
		{"map wider than screen", func(c *Config) { c.MapWidth = 100 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"rooms too large", func(c *Config) { c.RoomMaxSize = 60 }},
		{"min above max", func(c *Config) { c.RoomMinSize = 12 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Validate() error = %v, want ErrInvalidConfig", tt.name, err)
		}
	}

	cfg := DefaultConfig()
	cfg.RoomMaxSize = 60
	if err := cfg.Validate(); !errors.Is(err, world.ErrInvalidOptions) {
		t.Errorf("room size error should wrap world.ErrInvalidOptions, got %v", err)
	}
}

func TestConfigApplyEnv(t *testing.T) {
	t.Setenv("FIRSTRL_SEED", "42")
	t.Setenv("FIRSTRL_FPS", "30")
	t.Setenv("FIRSTRL_MAX_ROOMS", "12")
	t.Setenv("FIRSTRL_TELEMETRY", "true")
	t.Setenv("FIRSTRL_LOG_FILE", "/tmp/rl.log")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}

	if cfg.Seed != 42 || cfg.FPS != 30 || cfg.MaxRooms != 12 {
		t.Errorf("ApplyEnv() = %+v", cfg)
	}
	if !cfg.Telemetry {
		t.Error("Telemetry should be enabled")
	}
	if cfg.LogFile != "/tmp/rl.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.MapWidth != 80 {
		t.Errorf("unset variables should keep defaults, MapWidth = %d", cfg.MapWidth)
	}
}

func TestConfigApplyEnvMalformed(t *testing.T) {
	tests := []struct{ key, value string }{
		{"FIRSTRL_FPS", "fast"},
		{"FIRSTRL_SEED", "abc"},
		{"FIRSTRL_TELEMETRY", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := DefaultConfig()
			if err := cfg.ApplyEnv(); err == nil {
				t.Errorf("ApplyEnv() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}
