package renderer

// Keys recognized by the input handler.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Window is the surface owning the graphics context that frames are presented to.
type Window interface {
	// Returns true if the window system requested the window to close.
	ShouldClose() bool

	// Flag the window for closing.
	SetShouldClose(bool)

	// Returns true if the key is currently pressed.
	KeyPressed(key Key) bool

	// Get the framebuffer size in pixels.
	FramebufferSize() (width, height int)

	// Register a handler invoked with the new framebuffer size whenever the
	// window is resized.
	OnResize(func(width, height int))

	// Present the back buffer.
	SwapBuffers()

	// Process pending window system events.
	PollEvents()

	// Destroy the window and its context.
	Close()
}
