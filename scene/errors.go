package scene

import "errors"

var (
	ErrNilScene     = errors.New("scene: no scene defined")
	ErrNoMeshes     = errors.New("scene: scene does not define any meshes")
	ErrUnknownScene = errors.New("scene: unknown scene")
)
