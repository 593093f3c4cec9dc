package iso

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"
)

// Canvas is a Surface backed by an RGBA image.
type Canvas struct {
	img    *image.RGBA
	tx, ty float64
	fill   color.RGBA
	xs     []float64 // scanline crossings, reused across fills
}

// NewCanvas allocates a w×h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image. It is overwritten by the next frame.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear paints every pixel with col, ignoring the transform.
func (c *Canvas) Clear(col color.Color) {
	if col == nil {
		col = color.Transparent
	}
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// SetTransform places the origin at (tx, ty) for later fills and strokes.
func (c *Canvas) SetTransform(tx, ty float64) {
	c.tx, c.ty = tx, ty
}

// SetFillColor sets the color of later fills and strokes.
func (c *Canvas) SetFillColor(col color.Color) {
	c.fill = color.RGBAModel.Convert(col).(color.RGBA)
}

// FillPolygon fills pts with the even-odd rule, sampling at pixel centers.
func (c *Canvas) FillPolygon(pts []Point2) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		minY = math.Min(minY, p.Y+c.ty)
		maxY = math.Max(maxY, p.Y+c.ty)
	}
	if finite(minY) != minY || finite(maxY) != maxY {
		return
	}
	top := clampCeil(minY-0.5, b.Min.Y, b.Max.Y)
	bottom := clampCeil(maxY-0.5, b.Min.Y, b.Max.Y) - 1

	for y := top; y <= bottom; y++ {
		cy := float64(y) + 0.5
		c.xs = c.xs[:0]
		for i := range pts {
			p1, p2 := pts[i], pts[(i+1)%len(pts)]
			y1, y2 := p1.Y+c.ty, p2.Y+c.ty
			if (y1 <= cy && y2 > cy) || (y2 <= cy && y1 > cy) {
				x := p1.X + c.tx + (cy-y1)*(p2.X-p1.X)/(y2-y1)
				c.xs = append(c.xs, x)
			}
		}
		slices.Sort(c.xs)

		for i := 0; i+1 < len(c.xs); i += 2 {
			xa := clampCeil(c.xs[i]-0.5, b.Min.X, b.Max.X)
			xb := clampCeil(c.xs[i+1]-0.5, b.Min.X, b.Max.X) - 1
			for x := xa; x <= xb; x++ {
				c.set(x, y, c.fill)
			}
		}
	}
}

// clampCeil returns ceil(v) clamped to [lo, hi]. The clamp happens in
// float64 so coordinates far off the canvas never overflow int. NaN maps
// to lo.
func clampCeil(v float64, lo, hi int) int {
	if math.IsNaN(v) {
		return lo
	}
	return int(math.Max(float64(lo), math.Min(float64(hi), math.Ceil(v))))
}

// StrokePolygon draws the closed outline of pts in the fill color.
func (c *Canvas) StrokePolygon(pts []Point2) {
	for i := range pts {
		p1, p2 := pts[i], pts[(i+1)%len(pts)]
		DrawLine(c.img,
			int(math.Round(p1.X+c.tx)), int(math.Round(p1.Y+c.ty)),
			int(math.Round(p2.X+c.tx)), int(math.Round(p2.Y+c.ty)),
			c.fill)
	}
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	offset := c.img.PixOffset(x, y)
	c.img.Pix[offset] = col.R
	c.img.Pix[offset+1] = col.G
	c.img.Pix[offset+2] = col.B
	c.img.Pix[offset+3] = col.A
}

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) by stepping
// along the longer axis
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))

	var xInc, yInc float64
	if steps > 0 {
		xInc = dx / steps
		yInc = dy / steps
	}

	x := float64(x1)
	y := float64(y1)
	b := img.Bounds()

	for i := 0; i <= int(steps); i++ {
		ix := int(math.Round(x))
		iy := int(math.Round(y))
		if (image.Point{X: ix, Y: iy}).In(b) {
			offset := img.PixOffset(ix, iy)
			img.Pix[offset] = col.R
			img.Pix[offset+1] = col.G
			img.Pix[offset+2] = col.B
			img.Pix[offset+3] = col.A
		}
		x += xInc
		y += yInc
	}
}
