package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"lifeterrain/internal/core"
)

const (
	maxHue        = 360
	maxSaturation = 1
	maxBrightness = 1
)

// AgePalette shades live cells by age: newborn cells use NewBrightness and
// the shade fades towards OldBrightness as a cell approaches core.MaxAge.
// Dead cells use black.
type AgePalette struct {
	hue           float64
	saturation    float64
	newBrightness float64
	oldBrightness float64

	colors []color.RGBA
}

// NewAgePalette returns the default green palette.
func NewAgePalette() *AgePalette {
	return &AgePalette{hue: 120, saturation: 1, newBrightness: 1, oldBrightness: 0.5}
}

// Hue returns the hue, in degrees, used for live cells.
func (p *AgePalette) Hue() float64 { return p.hue }

// SetHue sets the hue, clamped to [0, 360].
func (p *AgePalette) SetHue(h float64) {
	p.hue = clamp(h, maxHue)
	p.colors = nil
}

// Saturation returns the HSV saturation used for live cells.
func (p *AgePalette) Saturation() float64 { return p.saturation }

// SetSaturation sets the saturation, clamped to [0, 1].
func (p *AgePalette) SetSaturation(s float64) {
	p.saturation = clamp(s, maxSaturation)
	p.colors = nil
}

// NewBrightness returns the HSV value used for newborn cells.
func (p *AgePalette) NewBrightness() float64 { return p.newBrightness }

// SetNewBrightness sets the value for newborn cells, clamped to [0, 1].
func (p *AgePalette) SetNewBrightness(v float64) {
	p.newBrightness = clamp(v, maxBrightness)
	p.colors = nil
}

// OldBrightness returns the HSV value cells fade towards as they age.
func (p *AgePalette) OldBrightness() float64 { return p.oldBrightness }

// SetOldBrightness sets the value old cells fade towards, clamped to [0, 1].
func (p *AgePalette) SetOldBrightness(v float64) {
	p.oldBrightness = clamp(v, maxBrightness)
	p.colors = nil
}

// Colors returns one color per age, indexed by age; index 0 is the
// background. The slice is rebuilt lazily after a setter runs.
func (p *AgePalette) Colors() []color.RGBA {
	if p.colors != nil {
		return p.colors
	}
	oldest := int(core.MaxAge)
	colors := make([]color.RGBA, oldest+1)
	colors[0] = toRGBA(colorful.Hsv(p.hue, 0, 0))
	for age := 1; age <= oldest; age++ {
		i := age - 1
		v := p.oldBrightness + (p.newBrightness-p.oldBrightness)*float64(oldest-i)/float64(oldest)
		colors[age] = toRGBA(colorful.Hsv(p.hue, p.saturation, v))
	}
	p.colors = colors
	return colors
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp(v, hi float64) float64 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// FillRGBA converts cell ages into RGBA pixels using a palette. Ages beyond
// the end of the palette use its last entry. When the palette is empty the
// buffer is cleared to transparent black.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
