package iso

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
)

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Turntable renders n frames with alpha swept through a full turn,
// starting from in. Each frame is handed to emit while the canvas still
// holds it.
func Turntable(r *Renderer, c *Canvas, in FrameInput, n int, emit func(Frame, *image.RGBA)) {
	for k := 0; k < n; k++ {
		fi := in
		fi.Alpha = in.Alpha + 360*float64(k)/float64(n)
		frame := r.Render(c, fi)
		emit(frame, c.Image())
	}
}

// SaveGIF writes frames as a looping animation. delay is in 100ths of a
// second.
func SaveGIF(path string, frames []image.Image, delay int) error {
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, img := range frames {
		p := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.Draw(p, p.Rect, img, img.Bounds().Min, draw.Src)
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
