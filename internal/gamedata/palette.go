package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the map background colors.
type Palette struct {
	DarkWall   tcell.Color
	DarkGround tcell.Color
}

// paletteFile represents the structure of palette.json.
type paletteFile struct {
	DarkWall   string `json:"darkWall"`
	DarkGround string `json:"darkGround"`
}

// LoadPalette loads the map colors from the embedded palette.json file.
func LoadPalette() (Palette, error) {
	file, err := Load[paletteFile]("palette.json")
	if err != nil {
		return Palette{}, err
	}

	wall, err := ParseHexColor(file.DarkWall)
	if err != nil {
		return Palette{}, fmt.Errorf("palette darkWall: %w", err)
	}
	ground, err := ParseHexColor(file.DarkGround)
	if err != nil {
		return Palette{}, fmt.Errorf("palette darkGround: %w", err)
	}

	return Palette{DarkWall: wall, DarkGround: ground}, nil
}

// ParseHexColor converts "#RRGGBB" (the leading # is optional) to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: want 6 digits", hex)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}
