package iso

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"
)

// Config describes the scene, the view and the initial slider values.
// Angles are in degrees.
type Config struct {
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	Scale          float64           `json:"scale"`
	HalfSize       float64           `json:"halfSize"`
	CameraDistance float64           `json:"cameraDistance"`
	Alpha          float64           `json:"alpha"`
	Beta           float64           `json:"beta"`
	Cube           [3]float64        `json:"cube"`
	Fixed          [][3]float64      `json:"fixed,omitempty"`
	Reach          int               `json:"reach"`
	AngleStep      float64           `json:"angleStep"`
	Colors         map[string]string `json:"colors,omitempty"` // side name -> #rgb or #rrggbb
	Background     string            `json:"background"`
	Wireframe      bool              `json:"wireframe,omitempty"`
	HUD            bool              `json:"hud,omitempty"`
}

// DefaultConfig returns the lattice scene seen from a three-quarter view.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		Scale:          100,
		HalfSize:       0.2,
		CameraDistance: 10,
		Alpha:          45,
		Beta:           330,
		Reach:          3,
		AngleStep:      5,
		Background:     "#fff",
	}
}

// LoadConfig reads a JSON file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks sizes and colors, that the movable cube starts within
// reach, and that the camera stays outside the scene wherever the movable
// cube goes.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", cfg.Width, cfg.Height))
	}
	if cfg.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %g must be positive", cfg.Scale))
	}
	if cfg.HalfSize <= 0 {
		errs = append(errs, fmt.Errorf("halfSize %g must be positive", cfg.HalfSize))
	}
	if cfg.Reach < 0 {
		errs = append(errs, fmt.Errorf("reach %d must not be negative", cfg.Reach))
	}
	for i, v := range cfg.Cube {
		if math.IsNaN(v) || math.Abs(v) > float64(cfg.Reach) {
			errs = append(errs, fmt.Errorf("cube[%d] %g is outside reach %d", i, v, cfg.Reach))
		}
	}
	if cfg.AngleStep <= 0 {
		errs = append(errs, fmt.Errorf("angleStep %g must be positive", cfg.AngleStep))
	}
	if _, err := cfg.palette(); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseHex(cfg.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if len(errs) == 0 {
		r := float64(cfg.Reach)
		if radius := cfg.scene(DefaultPalette).Radius(Vec3{r, r, r}); cfg.CameraDistance <= radius {
			errs = append(errs, fmt.Errorf("cameraDistance %g must exceed scene radius %.3f", cfg.CameraDistance, radius))
		}
	}
	return errors.Join(errs...)
}

// Input returns the initial slider values.
func (cfg Config) Input() FrameInput {
	return FrameInput{
		Alpha: cfg.Alpha,
		Beta:  cfg.Beta,
		Cube:  Vec3{X: cfg.Cube[0], Y: cfg.Cube[1], Z: cfg.Cube[2]},
	}
}

// Controls returns sliders starting at the configured input.
func (cfg Config) Controls() *Controls {
	return NewControls(cfg.Input(), cfg.AngleStep, cfg.Reach)
}

// Renderer builds a renderer for the configured scene.
func (cfg Config) Renderer() (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, _ := cfg.palette()
	bg, _ := parseHex(cfg.Background)
	return &Renderer{
		Scene:          cfg.scene(pal),
		Scale:          cfg.Scale,
		CameraDistance: cfg.CameraDistance,
		Background:     bg,
		Wireframe:      cfg.Wireframe,
	}, nil
}

func (cfg Config) scene(pal Palette) Scene {
	s := DefaultScene()
	s.HalfSize = cfg.HalfSize
	s.Palette = pal
	if cfg.Fixed != nil {
		s.Fixed = make([]Vec3, len(cfg.Fixed))
		for i, c := range cfg.Fixed {
			s.Fixed[i] = Vec3{X: c[0], Y: c[1], Z: c[2]}
		}
	}
	return s
}

func (cfg Config) palette() (Palette, error) {
	pal := DefaultPalette
	for name, hex := range cfg.Colors {
		side := sideByName(name)
		if side < 0 {
			return pal, fmt.Errorf("colors: unknown side %q", name)
		}
		c, err := parseHex(hex)
		if err != nil {
			return pal, fmt.Errorf("colors.%s: %w", name, err)
		}
		pal[side] = c
	}
	return pal, nil
}

func sideByName(name string) Side {
	for s, n := range sideNames {
		if strings.EqualFold(n, name) {
			return Side(s)
		}
	}
	return -1
}

// parseHex reads #rgb or #rrggbb.
func parseHex(s string) (color.RGBA, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("color %q: missing #", s)
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want 3 or 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
