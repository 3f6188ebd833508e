package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Selector cycles through a fixed list of string options on click. Used
// for the world and dropoff pickers, where free text entry would only
// invite typos the engine then rejects.
type Selector struct {
	Label   string
	Options []string
	Index   int
	X, Y    float64
	W, H    float64
	clicked bool
}

// NewSelector creates a selector starting on the given option. An option
// not in the list leaves the selector on the first entry.
func NewSelector(x, y, w float64, label string, options []string, current string) *Selector {
	s := &Selector{
		Label:   label,
		Options: options,
		X:       x, Y: y,
		W: w, H: 20,
	}
	for i, opt := range options {
		if opt == current {
			s.Index = i
			break
		}
	}
	return s
}

// Value returns the selected option, or "" for an empty option list.
func (s *Selector) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Index]
}

// Select jumps to the given option. Unknown options are ignored.
func (s *Selector) Select(option string) {
	for i, opt := range s.Options {
		if opt == option {
			s.Index = i
			return
		}
	}
}

// Update advances to the next option on click (with debouncing).
func (s *Selector) Update() {
	mx, my := ebiten.CursorPosition()

	isOver := float64(mx) >= s.X && float64(mx) <= s.X+s.W &&
		float64(my) >= s.Y && float64(my) <= s.Y+s.H

	if isOver && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !s.clicked && len(s.Options) > 0 {
			s.Index = (s.Index + 1) % len(s.Options)
			s.clicked = true
		}
	} else {
		s.clicked = false
	}
}

// Draw renders the selector box with the current option.
func (s *Selector) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(s.X), float32(s.Y),
		float32(s.W), float32(s.H),
		color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
	vector.StrokeRect(screen,
		float32(s.X), float32(s.Y),
		float32(s.W), float32(s.H),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	ebitenutil.DebugPrintAt(screen, s.Value(), int(s.X+6), int(s.Y+3))
}
