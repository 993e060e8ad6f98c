// Package term renders a terrain in a terminal using tcell.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"lifeterrain/internal/core"
)

// Snapshotter is the read side of a running simulation.
type Snapshotter interface {
	Size() core.Size
	Snapshot(dst []uint8) (core.Stats, error)
}

// View paints the top-left corner of a terrain that fits on screen, two
// terminal columns per cell, with a text readout underneath.
type View struct {
	screen tcell.Screen
	size   core.Size
	cells  []uint8
	styles []tcell.Style
	text   tcell.Style
}

// NewView prepares a view for a terrain of the given size. palette is indexed
// by cell age, with index 0 used for dead cells.
func NewView(screen tcell.Screen, size core.Size, palette []color.RGBA) *View {
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		styles[i] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return &View{
		screen: screen,
		size:   size,
		cells:  make([]uint8, size.Cells()),
		styles: styles,
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// Draw copies one snapshot from src, paints it and the lines returned by
// readout for that snapshot's counters, and shows the result.
func (v *View) Draw(src Snapshotter, readout func(core.Stats) []string) (core.Stats, error) {
	stats, err := src.Snapshot(v.cells)
	if err != nil {
		return core.Stats{}, err
	}
	var lines []string
	if readout != nil {
		lines = readout(stats)
	}

	v.screen.Clear()
	width, height := v.screen.Size()
	rows := min(v.size.H, height-len(lines))
	cols := min(v.size.W, width/2)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			style := v.style(v.cells[r*v.size.W+c])
			v.screen.SetContent(c*2, r, ' ', nil, style)
			v.screen.SetContent(c*2+1, r, ' ', nil, style)
		}
	}
	top := max(rows, 0)
	for i, line := range lines {
		v.drawText(0, top+i, line)
	}
	v.screen.Show()
	return stats, nil
}

func (v *View) style(age uint8) tcell.Style {
	if len(v.styles) == 0 {
		return tcell.StyleDefault
	}
	idx := int(age)
	if idx >= len(v.styles) {
		idx = len(v.styles) - 1
	}
	return v.styles[idx]
}

func (v *View) drawText(x, y int, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, v.text)
		x++
	}
}
