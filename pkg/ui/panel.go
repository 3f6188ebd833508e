package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is the interface every panel widget implements.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
}

// SliderWrapper adapts Slider to the Widget interface
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // Slider height + label space
}

// CheckboxWrapper adapts Checkbox to the Widget interface
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 5 // Checkbox size + small margin
}

// SelectorWrapper adapts Selector to the Widget interface
type SelectorWrapper struct {
	*Selector
}

func (s *SelectorWrapper) GetHeight() float64 {
	return s.H + 25 // Selector height + label space
}

// ButtonWrapper adapts Button to the Widget interface
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 10 // Button height + margin
}

// Panel manages a column of labelled widgets in a scrollable box.
type Panel struct {
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	Title         string
	Widgets       []Widget
	Labels        []string // Labels for widgets
	ScrollOffset  float64  // Current scroll position

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []section
}

// section groups a run of widgets under a header.
type section struct {
	Title      string
	StartIndex int // Widget index where this section starts
	EndIndex   int // Widget index where this section ends (exclusive)
}

// NewPanel creates an empty panel at the given position.
func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection adds a section header
func (p *Panel) AddSection(title string) {
	p.sections = append(p.sections, section{
		Title:      title,
		StartIndex: len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *Panel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// AddSlider adds a slider widget to the panel
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	yOffset := p.nextYOffset()

	slider := NewSlider(
		p.X+10,         // X position with margin
		p.Y+yOffset+20, // Y position
		p.Width-60,     // Leave room for the value readout
		label,
		min, max, value,
	)

	p.Widgets = append(p.Widgets, &SliderWrapper{slider})
	p.Labels = append(p.Labels, label)

	return slider
}

// AddCheckbox adds a checkbox widget to the panel
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	yOffset := p.nextYOffset()

	checkbox := NewCheckbox(p.X+10, p.Y+yOffset+20, label, value)

	p.Widgets = append(p.Widgets, &CheckboxWrapper{checkbox})
	p.Labels = append(p.Labels, label)

	return checkbox
}

// AddButton adds a clickable button to the panel
func (p *Panel) AddButton(label string, onClick func()) *Button {
	yOffset := p.nextYOffset()

	button := NewButton(p.X+10, p.Y+yOffset+20, p.Width-20, 22, label, onClick)

	p.Widgets = append(p.Widgets, &ButtonWrapper{button})
	p.Labels = append(p.Labels, "")

	return button
}

// AddSelector adds a cycling option selector to the panel
func (p *Panel) AddSelector(label string, options []string, current string) *Selector {
	yOffset := p.nextYOffset()

	selector := NewSelector(p.X+10, p.Y+yOffset+20, p.Width-20, label, options, current)

	p.Widgets = append(p.Widgets, &SelectorWrapper{selector})
	p.Labels = append(p.Labels, label)

	return selector
}

// nextYOffset calculates the Y offset for the next widget
func (p *Panel) nextYOffset() float64 {
	offset := 0.0
	for range p.sections {
		offset += 25
	}
	for _, widget := range p.Widgets {
		offset += widget.GetHeight()
	}
	return offset
}

// Update handles scrolling and forwards input to all widgets.
func (p *Panel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.ScrollOffset -= dy * 20

		maxScroll := p.totalHeight() - p.Height + 40
		if maxScroll < 0 {
			maxScroll = 0
		}
		if p.ScrollOffset < 0 {
			p.ScrollOffset = 0
		}
		if p.ScrollOffset > maxScroll {
			p.ScrollOffset = maxScroll
		}
	}

	for _, widget := range p.Widgets {
		widget.Update()
	}
}

// Draw renders the panel and all widgets
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	// Draw widgets with clipping and scrolling
	currentY := p.Y + 30 - p.ScrollOffset
	widgetIdx := 0

	for sectionIdx, sec := range p.sections {
		if currentY >= p.Y-25 && currentY <= p.Y+p.Height {
			sectionBG := color.RGBA{R: 60, G: 60, B: 70, A: 255}
			vector.FillRect(screen,
				float32(p.X+5), float32(currentY),
				float32(p.Width-10), 20,
				sectionBG, true)
			ebitenutil.DebugPrintAt(screen, sec.Title,
				int(p.X+10), int(currentY+5))
		}
		currentY += 25

		for widgetIdx < sec.EndIndex && widgetIdx < len(p.Widgets) {
			widget := p.Widgets[widgetIdx]
			label := p.Labels[widgetIdx]

			// Only draw if visible
			if currentY >= p.Y-30 && currentY <= p.Y+p.Height {
				ebitenutil.DebugPrintAt(screen, label,
					int(p.X+10), int(currentY))

				// Adjust widget Y position for scrolling
				p.adjustWidgetPosition(widget, currentY+15)
				widget.Draw(screen)
			}

			currentY += widget.GetHeight()
			widgetIdx++
		}

		if sectionIdx < len(p.sections)-1 {
			widgetIdx = p.sections[sectionIdx+1].StartIndex
		}
	}
}

// adjustWidgetPosition temporarily adjusts widget position for rendering
func (p *Panel) adjustWidgetPosition(widget Widget, newY float64) {
	switch w := widget.(type) {
	case *SliderWrapper:
		w.Y = newY
	case *CheckboxWrapper:
		w.Y = newY
	case *SelectorWrapper:
		w.Y = newY
	case *ButtonWrapper:
		w.Y = newY
	}
}

// totalHeight calculates the total content height
func (p *Panel) totalHeight() float64 {
	height := 30.0 // Title space
	height += float64(len(p.sections)) * 25
	for _, widget := range p.Widgets {
		height += widget.GetHeight()
	}
	return height
}
