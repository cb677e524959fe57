package views

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell at x, y lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// popupTop is the row the search panel starts on
const popupTop = 2

// RenderPopup places the styled popup horizontally centred near the top of
// the screen and returns the area it occupies
func (pr *PopupRenderer) RenderPopup(popupContent string, height, width int, popupStyle lipgloss.Style) (string, Rect) {
	styled := popupStyle.Render(popupContent)

	w := lipgloss.Width(styled)
	h := lipgloss.Height(styled)
	if width <= 0 || height <= 0 {
		return styled, Rect{Width: w, Height: h}
	}

	block := lipgloss.NewStyle().PaddingTop(popupTop).Render(styled)
	screen := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, block,
		lipgloss.WithWhitespaceChars(" "))

	// Same rounding lipgloss uses for centred placement
	x := 0
	if gap := width - w; gap > 0 {
		x = gap - int(math.Round(float64(gap)*float64(lipgloss.Center)))
	}
	return screen, Rect{X: x, Y: popupTop, Width: w, Height: h}
}
