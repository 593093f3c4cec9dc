package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"isocubes/internal/iso"
)

const title = "isocubes"

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		in vec2 vt;
		uniform mat4 mvp;
		out vec2 uv;
		void main() {
			uv = vt;
			gl_Position = mvp * vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec2 uv;
		uniform sampler2D tex;
		out vec4 frag_colour;
		void main() {
			frag_colour = texture(tex, uv);
		}
	` + "\x00"
)

var (
	// x, y, u, v. Image row 0 is the top of the window.
	quadVertices = []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}

	quadIndices = []uint32{
		0, 1, 2,
		2, 3, 0,
	}
)

var keyActions = map[glfw.Key]iso.Action{
	glfw.KeyLeft:  iso.AlphaDown,
	glfw.KeyRight: iso.AlphaUp,
	glfw.KeyDown:  iso.BetaDown,
	glfw.KeyUp:    iso.BetaUp,
	glfw.KeyA:     iso.XDown,
	glfw.KeyD:     iso.XUp,
	glfw.KeyS:     iso.YDown,
	glfw.KeyW:     iso.YUp,
	glfw.KeyQ:     iso.ZDown,
	glfw.KeyE:     iso.ZUp,
	glfw.KeyR:     iso.Reset,
}

type viewer struct {
	window   *glfw.Window
	program  uint32
	vao      uint32
	tex      uint32
	canvas   *iso.Canvas
	renderer *iso.Renderer
	hud      *iso.HUD
	controls *iso.Controls
	verbose  bool
	dirty    bool
}

// runWindow opens the viewer and blocks until it is closed. Each slider
// change renders exactly one frame; nothing is drawn while idle.
func runWindow(cfg iso.Config, r *iso.Renderer, hud *iso.HUD, verbose bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)

	v := &viewer{
		window:   window,
		canvas:   iso.NewCanvas(cfg.Width, cfg.Height),
		renderer: r,
		hud:      hud,
		controls: cfg.Controls(),
		verbose:  verbose,
		dirty:    true,
	}
	if err := v.setup(); err != nil {
		return err
	}

	window.SetKeyCallback(v.onKey)
	window.SetRefreshCallback(func(*glfw.Window) { v.present() })

	for !window.ShouldClose() {
		if v.dirty {
			v.draw()
			v.dirty = false
		}
		glfw.WaitEvents()
	}
	return nil
}

func (v *viewer) setup() error {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	v.program = program
	gl.UseProgram(program)

	mvp := mgl32.Ortho2D(-1, 1, -1, 1)
	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("tex\x00")), 0)

	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	vpAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vpAttrib)
	gl.VertexAttribPointer(vpAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))

	vtAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vt\x00")))
	gl.EnableVertexAttribArray(vtAttrib)
	gl.VertexAttribPointer(vtAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	img := v.canvas.Image()
	w, h := v.canvas.Size()
	gl.GenTextures(1, &v.tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, v.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	return nil
}

func (v *viewer) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
		return
	}
	if a, ok := keyActions[key]; ok && v.controls.Apply(a) {
		v.dirty = true
	}
}

// draw renders one frame from a fresh slider snapshot and shows it.
func (v *viewer) draw() {
	in := v.controls.Snapshot()
	frame := v.renderer.Render(v.canvas, in)
	if v.hud != nil {
		v.hud.Draw(v.canvas.Image(), in)
	}
	if v.verbose {
		log.Printf("frame: %d faces, alpha %.1f beta %.1f cube %+v camera %+v",
			len(frame.Faces), in.Alpha, in.Beta, in.Cube, frame.Camera)
	}

	w, h := v.canvas.Size()
	gl.BindTexture(gl.TEXTURE_2D, v.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(v.canvas.Image().Pix))

	v.window.SetTitle(fmt.Sprintf("%s | alpha %.0f beta %.0f", title, in.Alpha, in.Beta))
	v.present()
}

func (v *viewer) present() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(v.program)
	gl.BindVertexArray(v.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
	v.window.SwapBuffers()
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
