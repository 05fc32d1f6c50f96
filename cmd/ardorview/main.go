// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Ardorview opens a window and draws a spinning triangle
// through the renderer.
//
// Usage:
//
//	ardorview [-config file.toml] [-frames n]
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	_ "gviegas/ardor/driver/ogl"
	"gviegas/ardor/engine"
	"gviegas/ardor/state"
)

func init() {
	// GL calls must come from the main thread.
	runtime.LockOSThread()
}

var (
	cfgPath = flag.String("config", "", "TOML configuration file")
	frames  = flag.Int("frames", 0, "number of frames to draw (0 means until closed)")
)

func loadConfig() engine.Config {
	if *cfgPath == "" {
		return engine.DefaultConfig()
	}
	cfg, err := engine.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func newWindow() *glfw.Window {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	glfw.WindowHint(glfw.DepthBits, 24)
	win, err := glfw.CreateWindow(640, 480, "ardorview", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	return win
}

func newMesh() *engine.Mesh {
	m := engine.NewMesh([]float32{
		-0.6, -0.5, 0,
		0.6, -0.5, 0,
		0, 0.6, 0,
	}, engine.Triangles)
	m.SetArray(engine.Color, engine.NewFloatBuffer(4, []float32{
		1, 0, 0, 1,
		0, 1, 0, 1,
		0, 0, 1, 1,
	}))
	cull := state.NewCull()
	cull.Enable = false
	m.States.Put(cull)
	m.States.Put(state.NewZBuffer())
	m.World = new([16]float32)
	return m
}

// spin sets m to a rotation about the z axis.
func spin(m *[16]float32, angle float32) {
	s, c := math32.Sincos(angle)
	*m = [16]float32{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func main() {
	flag.Parse()
	cfg := loadConfig()
	lvl, err := cfg.Level()
	if err != nil {
		log.Fatal(err)
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(l)
	engine.SetLogger(l)

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()
	win := newWindow()
	defer win.Destroy()

	drv, gl, err := ctxt.OpenDriver("opengl")
	if err != nil {
		log.Fatal(err)
	}
	defer drv.Close()

	c := ctxt.New(win, gl)
	c.SetSurface(win)
	defer c.Release()
	var reg ctxt.Registry
	reg.Add(c)
	if _, err := reg.Switch(win); err != nil {
		log.Fatal(err)
	}
	r, err := engine.New(&reg, cfg)
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("ardorview: context ready",
		"renderer", gl.GetString(driver.Renderer),
		"version", gl.GetString(driver.Version),
		"vbo", c.Caps().Supports(driver.FVBO))

	w, h := win.GetFramebufferSize()
	gl.Viewport(0, 0, w, h)
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, w, h)
	})

	r.SetBackgroundColor([4]float32{0.1, 0.1, 0.1, 1})
	m := newMesh()
	for n := 0; !win.ShouldClose() && (*frames == 0 || n < *frames); n++ {
		spin(m.World, float32(glfw.GetTime()))
		if err := r.ClearBuffers(engine.ColorBuffer | engine.DepthBuffer); err != nil {
			log.Fatal(err)
		}
		if err := r.Draw(m); err != nil {
			log.Fatal(err)
		}
		if err := r.FlushFrame(true); err != nil {
			slog.Error("ardorview: frame failed", "frame", n, "err", err)
		}
		glfw.PollEvents()
	}
}
