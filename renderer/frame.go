package renderer

import (
	"time"

	"github.com/achilleasa/altitude/gpu"
	"github.com/achilleasa/altitude/log"
	"github.com/achilleasa/altitude/scene"
)

var logger = log.New("renderer")

// The render loop state.
type loopState uint8

const (
	Running loopState = iota
	Stopping
)

func (s loopState) String() string {
	if s == Running {
		return "running"
	}
	return "stopping"
}

// A mesh paired with the program used for drawing it.
type drawItem struct {
	program *gpu.Program
	mesh    *gpu.Mesh
}

// A renderer that clears the framebuffer and draws a fixed list of meshes
// once per frame.
type frameRenderer struct {
	scene   *scene.Scene
	window  Window
	drv     gpu.Driver
	options Options

	// GPU objects owned by this renderer.
	resources gpu.Resources
	items     []drawItem

	state  loopState
	stats  FrameStats
	closed bool
}

// Create a renderer that draws the meshes of sc into win using drv.
//
// Programs that fail to compile or link are logged and drawn anyway. Any other
// setup error releases the objects created so far and is returned to the
// caller, who retains ownership of the window in that case. On success the
// renderer owns the window and closes it in Close.
func New(sc *scene.Scene, win Window, drv gpu.Driver, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if win == nil {
		return nil, ErrWindowNotDefined
	}
	if drv == nil {
		return nil, ErrDriverNotDefined
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	r := &frameRenderer{
		scene:   sc,
		window:  win,
		drv:     drv,
		options: opts,
		state:   Running,
	}

	// Match the viewport to the framebuffer and keep it in sync on resize.
	fbW, fbH := win.FramebufferSize()
	r.onResize(fbW, fbH)
	win.OnResize(r.onResize)

	if opts.Wireframe {
		drv.PolygonMode(true)
	}

	programs := r.buildPrograms()
	if err := r.uploadMeshes(programs); err != nil {
		r.resources.Release()
		return nil, err
	}

	logger.Infof("scene %q ready: %d program(s), %d mesh(es), %d vertex bytes", sc.Name, len(r.stats.Programs), r.stats.Meshes, r.stats.VertexBytes)
	return r, nil
}

func (r *frameRenderer) buildPrograms() map[string]*gpu.Program {
	compiler := gpu.NewCompiler(r.drv)
	defer compiler.Close()

	programs := make(map[string]*gpu.Program, len(r.scene.Programs))
	for _, src := range r.scene.Programs {
		prog, err := compiler.Build(src.Name, src.Vertex, src.Fragment)
		r.resources.Track(prog)
		if err != nil {
			logger.Warningf("program %q is invalid; meshes using it will not render correctly", src.Name)
		}

		programs[src.Name] = prog
		r.stats.Programs = append(r.stats.Programs, ProgramStat{Name: src.Name, Valid: prog.Valid()})
	}

	return programs
}

func (r *frameRenderer) uploadMeshes(programs map[string]*gpu.Program) error {
	for _, src := range r.scene.Meshes {
		mesh, err := gpu.UploadMesh(r.drv, src.Vertices)
		if err != nil {
			return err
		}
		r.resources.Track(mesh)

		r.items = append(r.items, drawItem{program: programs[src.Program], mesh: mesh})
		r.stats.Meshes++
		r.stats.VertexBytes += mesh.ByteSize()
		for i := range r.stats.Programs {
			if r.stats.Programs[i].Name == src.Program {
				r.stats.Programs[i].Meshes++
			}
		}
	}
	return nil
}

func (r *frameRenderer) onResize(width, height int) {
	logger.Debugf("viewport resized to %dx%d", width, height)
	r.drv.Viewport(0, 0, int32(width), int32(height))
}

// Render frames until the window is asked to close, escape is pressed or the
// configured frame limit is reached.
func (r *frameRenderer) Render() error {
	if r.closed {
		return ErrClosed
	}

	start := time.Now()
	defer func() {
		r.stats.RenderTime += time.Since(start)
	}()

	for r.state = r.nextState(); r.state == Running; r.state = r.nextState() {
		r.processInput()
		r.renderFrame()
		r.window.SwapBuffers()
		r.window.PollEvents()
		r.stats.Frames++
	}

	logger.Debugf("render loop stopped after %d frames", r.stats.Frames)
	return nil
}

func (r *frameRenderer) nextState() loopState {
	if r.state == Stopping || r.window.ShouldClose() {
		return Stopping
	}
	if r.options.MaxFrames != 0 && r.stats.Frames >= r.options.MaxFrames {
		return Stopping
	}
	return Running
}

func (r *frameRenderer) processInput() {
	if r.window.KeyPressed(KeyEscape) {
		r.window.SetShouldClose(true)
	}
}

func (r *frameRenderer) renderFrame() {
	r.drv.ClearColor(r.scene.ClearColor)
	r.drv.Clear()

	for _, item := range r.items {
		item.program.Use()
		item.mesh.Draw()
		r.stats.DrawCalls++
	}
}

// Release all GPU objects and then close the window.
func (r *frameRenderer) Close() {
	if r == nil || r.closed {
		return
	}
	r.closed = true
	r.state = Stopping

	r.resources.Release()
	r.items = nil
	r.window.Close()
}

func (r *frameRenderer) Stats() FrameStats {
	stats := r.stats
	stats.Programs = append([]ProgramStat(nil), r.stats.Programs...)
	return stats
}
