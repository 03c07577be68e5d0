package ui

import "github.com/gdamore/tcell/v2"

// Cell is one character cell of a console.
type Cell struct {
	Ch rune
	Fg tcell.Color
	Bg tcell.Color
}

// blankCell is what a cleared console holds.
var blankCell = Cell{Ch: ' ', Fg: tcell.ColorWhite, Bg: tcell.ColorBlack}

// Console is an off-screen character grid that is drawn into each frame and
// then blitted to the screen in one pass.
type Console struct {
	width, height int
	cells         []Cell
	fg            tcell.Color
}

// NewConsole creates a blank console of the given size.
func NewConsole(width, height int) *Console {
	c := &Console{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		fg:     tcell.ColorWhite,
	}
	c.Clear()
	return c
}

// Width returns the console width in cells.
func (c *Console) Width() int { return c.width }

// Height returns the console height in cells.
func (c *Console) Height() int { return c.height }

// Clear resets every cell to a blank.
func (c *Console) Clear() {
	for i := range c.cells {
		c.cells[i] = blankCell
	}
}

// SetDefaultForeground sets the color used by subsequent PutChar calls.
func (c *Console) SetDefaultForeground(color tcell.Color) {
	c.fg = color
}

// PutChar writes ch at x, y in the default foreground, keeping the background.
func (c *Console) PutChar(x, y int, ch rune) {
	if i, ok := c.index(x, y); ok {
		c.cells[i].Ch = ch
		c.cells[i].Fg = c.fg
	}
}

// SetCharBackground sets the background at x, y, keeping the character.
func (c *Console) SetCharBackground(x, y int, bg tcell.Color) {
	if i, ok := c.index(x, y); ok {
		c.cells[i].Bg = bg
	}
}

// Cell returns the cell at x, y. Positions off the console read as blank.
func (c *Console) Cell(x, y int) Cell {
	if i, ok := c.index(x, y); ok {
		return c.cells[i]
	}
	return blankCell
}

func (c *Console) index(x, y int) (int, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, false
	}
	return y*c.width + x, true
}
