package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/firstrl/internal/world"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// Console size in cells.
	ScreenWidth  int
	ScreenHeight int

	// Map size in tiles. The map is drawn at the console's top-left corner.
	MapWidth  int
	MapHeight int

	// Room placement.
	RoomMinSize int
	RoomMaxSize int
	MaxRooms    int

	// FPS caps the frame rate of the main loop.
	FPS int

	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Title     string
	LogFile   string
	Telemetry bool
}

// DefaultConfig returns the standard game settings.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  80,
		ScreenHeight: 50,
		MapWidth:     world.DefaultWidth,
		MapHeight:    world.DefaultHeight,
		RoomMinSize:  world.DefaultRoomMinSize,
		RoomMaxSize:  world.DefaultRoomMaxSize,
		MaxRooms:     world.DefaultMaxRooms,
		FPS:          20,
		Title:        "My First Roguelike",
		LogFile:      "firstrl.log",
	}
}

// GenOptions returns the room placement options for the dungeon generator.
func (c Config) GenOptions() world.GenOptions {
	return world.GenOptions{
		MaxRooms:    c.MaxRooms,
		RoomMinSize: c.RoomMinSize,
		RoomMaxSize: c.RoomMaxSize,
	}
}

// Validate checks that the configuration can produce a playable game.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidConfig, c.MapWidth, c.MapHeight)
	}
	if c.MapWidth > c.ScreenWidth || c.MapHeight > c.ScreenHeight {
		return fmt.Errorf("%w: map %dx%d does not fit screen %dx%d",
			ErrInvalidConfig, c.MapWidth, c.MapHeight, c.ScreenWidth, c.ScreenHeight)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalidConfig, c.FPS)
	}
	if err := c.GenOptions().Validate(c.MapWidth, c.MapHeight); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ApplyEnv overrides fields from FIRSTRL_* environment variables.
// Unset variables leave the field alone; malformed values are an error.
func (c *Config) ApplyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"FIRSTRL_SCREEN_WIDTH", &c.ScreenWidth},
		{"FIRSTRL_SCREEN_HEIGHT", &c.ScreenHeight},
		{"FIRSTRL_MAP_WIDTH", &c.MapWidth},
		{"FIRSTRL_MAP_HEIGHT", &c.MapHeight},
		{"FIRSTRL_ROOM_MIN_SIZE", &c.RoomMinSize},
		{"FIRSTRL_ROOM_MAX_SIZE", &c.RoomMaxSize},
		{"FIRSTRL_MAX_ROOMS", &c.MaxRooms},
		{"FIRSTRL_FPS", &c.FPS},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw := os.Getenv("FIRSTRL_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("FIRSTRL_SEED: %w", err)
		}
		c.Seed = seed
	}
	if raw := os.Getenv("FIRSTRL_TELEMETRY"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("FIRSTRL_TELEMETRY: %w", err)
		}
		c.Telemetry = enabled
	}
	if path := os.Getenv("FIRSTRL_LOG_FILE"); path != "" {
		c.LogFile = path
	}
	return nil
}
