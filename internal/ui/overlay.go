//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the key bindings on top of the terrain while toggled on.
type Overlay struct {
	show  bool
	panel *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles the overlay when H is pressed.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw paints the help panel anchored to the bottom-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	if o.panel == nil {
		o.panel = ebiten.NewImage(220, hudPadding*2+hudLineHeight*len(HelpLines))
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	for i, line := range HelpLines {
		text.Draw(o.panel, line, basicfont.Face7x13, hudPadding, hudPadding+hudLineHeight*(i+1)-4, color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(screen.Bounds().Dy()-o.panel.Bounds().Dy()))
	screen.DrawImage(o.panel, op)
}
