package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"runtime"

	"isocubes/internal/iso"
)

func main() {
	runtime.LockOSThread()

	var (
		configPath string
		pngOut     string
		gifOut     string
		frames     int
		delay      int
		hudSize    float64
		verbose    bool
	)
	cfg := iso.DefaultConfig()
	flag.StringVar(&configPath, "config", "", "JSON scene config (defaults apply to missing fields).")
	flag.StringVar(&pngOut, "png", "", "Render one frame to this PNG file instead of opening a window.")
	flag.StringVar(&gifOut, "gif", "", "Render a turntable animation to this GIF file instead of opening a window.")
	flag.IntVar(&frames, "frames", 36, "Frames in the -gif turntable.")
	flag.IntVar(&delay, "delay", 5, "Delay between -gif frames in 100ths of a second.")
	flag.Float64Var(&hudSize, "hud-size", 14, "Readout font size in points.")
	flag.BoolVar(&verbose, "v", false, "Log every rendered frame.")
	alpha := flag.Float64("alpha", cfg.Alpha, "Initial rotation about the vertical axis, degrees.")
	beta := flag.Float64("beta", cfg.Beta, "Initial tilt about the horizontal axis, degrees.")
	wireframe := flag.Bool("wireframe", false, "Stroke face outlines instead of filling.")
	hud := flag.Bool("hud", false, "Print slider values on the frame.")
	flag.Parse()

	if configPath != "" {
		var err error
		if cfg, err = iso.LoadConfig(configPath); err != nil {
			log.Fatalln(err)
		}
	}
	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "alpha":
			cfg.Alpha = *alpha
		case "beta":
			cfg.Beta = *beta
		case "wireframe":
			cfg.Wireframe = *wireframe
		case "hud":
			cfg.HUD = *hud
		}
	})

	r, err := cfg.Renderer()
	if err != nil {
		log.Fatalln("invalid config:", err)
	}
	var overlay *iso.HUD
	if cfg.HUD {
		if overlay, err = iso.NewHUD(hudSize); err != nil {
			log.Fatalln(err)
		}
	}

	switch {
	case pngOut != "" || gifOut != "":
		err = export(cfg, r, overlay, pngOut, gifOut, frames, delay)
	default:
		err = runWindow(cfg, r, overlay, verbose)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// export renders without a window.
func export(cfg iso.Config, r *iso.Renderer, hud *iso.HUD, pngOut, gifOut string, frames, delay int) error {
	canvas := iso.NewCanvas(cfg.Width, cfg.Height)
	in := cfg.Controls().Snapshot()

	if pngOut != "" {
		frame := r.Render(canvas, in)
		if hud != nil {
			hud.Draw(canvas.Image(), frame.Input)
		}
		if err := iso.SavePNG(pngOut, canvas.Image()); err != nil {
			return err
		}
		fmt.Printf("[PNG] %s: %d faces\n", pngOut, len(frame.Faces))
	}

	if gifOut != "" {
		if frames <= 0 {
			return fmt.Errorf("frames %d must be positive", frames)
		}
		imgs := make([]image.Image, 0, frames)
		iso.Turntable(r, canvas, in, frames, func(frame iso.Frame, img *image.RGBA) {
			if hud != nil {
				hud.Draw(img, frame.Input)
			}
			cp := image.NewRGBA(img.Bounds())
			copy(cp.Pix, img.Pix)
			imgs = append(imgs, cp)
		})
		if err := iso.SaveGIF(gifOut, imgs, delay); err != nil {
			return err
		}
		fmt.Printf("[GIF] %s: %d frames\n", gifOut, len(imgs))
	}
	return nil
}
