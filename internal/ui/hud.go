//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 16
)

// HUD renders the generation and population readout in the top-left corner.
type HUD struct {
	panel *ebiten.Image
	width int
}

// NewHUD constructs a HUD whose backing panel is width pixels wide.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 200
	}
	return &HUD{width: width}
}

// Draw paints lines over a translucent panel.
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	if h == nil || len(lines) == 0 {
		return
	}
	height := hudPadding*2 + hudLineHeight*len(lines)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range lines {
		y := hudPadding + hudLineHeight*(i+1) - 4
		text.Draw(h.panel, line, face, hudPadding, y, color.White)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
