package renderer

type Options struct {
	// Window title.
	Title string

	// Window dims.
	FrameW uint32
	FrameH uint32

	// Draw polygon outlines instead of filled triangles.
	Wireframe bool

	// Stop after rendering this many frames; 0 renders until the window is closed.
	MaxFrames uint64
}

// Get the options used by the demo: an 800x600 window with filled polygons.
func DefaultOptions() Options {
	return Options{
		Title:  "Altitude",
		FrameW: 800,
		FrameH: 600,
	}
}
