package ui

import (
	"github.com/samdwyer/firstrl/internal/entity"
	"github.com/samdwyer/firstrl/internal/gamedata"
	"github.com/samdwyer/firstrl/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	console *Console
	palette gamedata.Palette
}

// NewRenderer creates a renderer that draws into a width x height console.
func NewRenderer(screen *Screen, width, height int, palette gamedata.Palette) *Renderer {
	return &Renderer{
		screen:  screen,
		console: NewConsole(width, height),
		palette: palette,
	}
}

// Console returns the off-screen console the renderer draws into.
func (r *Renderer) Console() *Console {
	return r.console
}

// Render draws objects and map backgrounds, then blits to the screen.
// Objects later in the slice are drawn over earlier ones.
func (r *Renderer) Render(dungeon *world.Dungeon, objects []*entity.Object) {
	for _, o := range objects {
		r.drawObject(o)
	}

	for y := 0; y < dungeon.Height; y++ {
		for x := 0; x < dungeon.Width; x++ {
			if dungeon.BlocksSight(x, y) {
				r.console.SetCharBackground(x, y, r.palette.DarkWall)
			} else {
				r.console.SetCharBackground(x, y, r.palette.DarkGround)
			}
		}
	}

	r.screen.Blit(r.console)
}

// ClearObjects erases each object's character at its current position.
// Call it after a frame is shown and before objects move.
func (r *Renderer) ClearObjects(objects []*entity.Object) {
	for _, o := range objects {
		r.console.PutChar(o.X, o.Y, ' ')
	}
}

func (r *Renderer) drawObject(o *entity.Object) {
	r.console.SetDefaultForeground(o.Color)
	r.console.PutChar(o.X, o.Y, o.Char)
}
