// Package window creates the glfw window and OpenGL context used for
// presenting frames.
package window

import (
	"fmt"
	"runtime"

	"github.com/achilleasa/altitude/log"
	"github.com/achilleasa/altitude/renderer"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var logger = log.New("window")

// Config describes the window and the requested context.
type Config struct {
	Title  string
	Width  int
	Height int

	// Requested OpenGL context version.
	ContextMajor int
	ContextMinor int

	// Wait for this many vertical refreshes before swapping buffers.
	SwapInterval int
}

// Get a config for an OpenGL 3.3 core window with the given dims.
func DefaultConfig(title string, width, height int) Config {
	return Config{
		Title:        title,
		Width:        width,
		Height:       height,
		ContextMajor: 3,
		ContextMinor: 3,
		SwapInterval: 1,
	}
}

// Window wraps a glfw window whose context is current on the thread that
// opened it.
type Window struct {
	win    *glfw.Window
	closed bool
}

func init() {
	// glfw event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// Open a window and make its OpenGL context current on the calling thread.
// If the window cannot be created glfw is terminated before returning.
func Open(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: could not create opengl window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	logger.Debugf("created %dx%d window with an OpenGL %d.%d core context", cfg.Width, cfg.Height, cfg.ContextMajor, cfg.ContextMinor)
	return &Window{win: win}, nil
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

func (w *Window) KeyPressed(key renderer.Key) bool {
	glfwKey, mapped := keyMap[key]
	if !mapped {
		return false
	}
	return w.win.GetKey(glfwKey) == glfw.Press
}

func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) OnResize(fn func(width, height int)) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy the window and terminate glfw. Calling Close more than once has no effect.
func (w *Window) Close() {
	if w == nil || w.closed {
		return
	}
	w.closed = true
	w.win.Destroy()
	glfw.Terminate()
}

var keyMap = map[renderer.Key]glfw.Key{
	renderer.KeyEscape: glfw.KeyEscape,
}

var _ renderer.Window = (*Window)(nil)
