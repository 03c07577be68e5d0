// Package ui provides terminal rendering using tcell.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen     tcell.Screen
	fullscreen bool
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	return NewScreenFrom(s), nil
}

// NewScreenFrom wraps an already initialized tcell screen.
func NewScreenFrom(s tcell.Screen) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
// It returns nil once the screen has been closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// IsFullscreen reports whether the console is shown in fullscreen mode.
func (s *Screen) IsFullscreen() bool {
	return s.fullscreen
}

// ToggleFullscreen switches between windowed and fullscreen presentation.
//
// A terminal cannot resize itself, so windowed mode anchors the console at the
// top-left corner while fullscreen mode centers it in the terminal and blanks
// everything around it.
func (s *Screen) ToggleFullscreen() {
	s.fullscreen = !s.fullscreen
	s.screen.Clear()
	s.screen.Sync()
}

// Origin returns where the top-left cell of a w x h console lands on the terminal.
func (s *Screen) Origin(w, h int) (x, y int) {
	if !s.fullscreen {
		return 0, 0
	}
	sw, sh := s.Size()
	return max(0, (sw-w)/2), max(0, (sh-h)/2)
}

// Blit copies the console onto the terminal and shows the result.
// In fullscreen the terminal is blanked first, since a resize moves the
// console and would otherwise leave the previous frame around it.
func (s *Screen) Blit(con *Console) {
	if s.fullscreen {
		s.screen.Clear()
	}
	ox, oy := s.Origin(con.Width(), con.Height())
	for y := 0; y < con.Height(); y++ {
		for x := 0; x < con.Width(); x++ {
			c := con.Cell(x, y)
			style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
			s.screen.SetContent(ox+x, oy+y, c.Ch, nil, style)
		}
	}
	s.screen.Show()
}
