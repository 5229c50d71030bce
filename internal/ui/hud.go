//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a small status readout in the top-left corner: selected
// material, brush size, pause state and the probe line for the hovered cell.
type HUD struct {
	lines []string
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD { return &HUD{} }

// SetLines replaces the status lines shown next frame.
func (h *HUD) SetLines(lines ...string) {
	if h == nil {
		return
	}
	h.lines = lines
}

// Draw renders the status lines with a drop shadow for readability.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	y := 16
	for _, line := range h.lines {
		text.Draw(screen, line, face, 9, y+1, color.Black)
		text.Draw(screen, line, face, 8, y, color.White)
		y += 14
	}
}
