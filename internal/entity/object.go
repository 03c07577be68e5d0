// Package entity provides game entities such as the player and NPCs.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/firstrl/internal/gamedata"
)

// Blocker reports whether a map position can be entered.
type Blocker interface {
	IsBlocked(x, y int) bool
}

// Object is anything drawn on the map as a single character.
type Object struct {
	Name  string
	X, Y  int         // Position on the map
	Char  rune        // Display character
	Color tcell.Color // Foreground color
}

// NewObject creates an object at the given position.
func NewObject(name string, x, y int, ch rune, color tcell.Color) *Object {
	return &Object{
		Name:  name,
		X:     x,
		Y:     y,
		Char:  ch,
		Color: color,
	}
}

// NewObjectFromDef creates an object from a data definition.
func NewObjectFromDef(def *gamedata.ObjectDef, x, y int) *Object {
	return NewObject(def.Name, x, y, def.GlyphRune(), def.TCellColor())
}

// Move shifts the object by the given delta unless the destination is blocked.
// It returns whether the object moved.
func (o *Object) Move(dx, dy int, m Blocker) bool {
	if m.IsBlocked(o.X+dx, o.Y+dy) {
		return false
	}
	o.X += dx
	o.Y += dy
	return true
}

// Position returns the current x, y coordinates.
func (o *Object) Position() (int, int) {
	return o.X, o.Y
}

// SetPosition places the object at x, y.
func (o *Object) SetPosition(x, y int) {
	o.X = x
	o.Y = y
}
