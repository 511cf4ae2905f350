package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrWindowNotDefined = errors.New("renderer: no window defined")
	ErrDriverNotDefined = errors.New("renderer: no driver defined")
	ErrClosed           = errors.New("renderer: renderer has been closed")
)
