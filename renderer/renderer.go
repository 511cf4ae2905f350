package renderer

type Renderer interface {
	// Render frames until the window is closed or escape is pressed.
	Render() error

	// Release GPU resources and close the window.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
