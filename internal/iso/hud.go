package iso

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// HUD prints the slider values in the top left corner of a frame.
type HUD struct {
	face  font.Face
	Color color.Color
}

// NewHUD loads Go Mono at the given point size.
func NewHUD(size float64) (*HUD, error) {
	tt, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go mono: %w", err)
	}
	return &HUD{
		face:  truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}),
		Color: color.Black,
	}, nil
}

// Lines formats the readout for in.
func (h *HUD) Lines(in FrameInput) []string {
	return []string{
		fmt.Sprintf("alpha %6.1f deg about %s", in.Alpha, AlphaAxis),
		fmt.Sprintf("beta  %6.1f deg about %s", in.Beta, BetaAxis),
		fmt.Sprintf("cube  (%g, %g, %g)", in.Cube.X, in.Cube.Y, in.Cube.Z),
	}
}

// Draw writes the readout onto dst.
func (h *HUD) Draw(dst *image.RGBA, in FrameInput) {
	m := h.face.Metrics()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(h.Color),
		Face: h.face,
	}
	margin := fixed.I(6)
	y := margin + m.Ascent
	for _, line := range h.Lines(in) {
		d.Dot = fixed.Point26_6{X: margin, Y: y}
		d.DrawString(line)
		y += m.Height
	}
}
