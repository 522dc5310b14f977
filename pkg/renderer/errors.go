package renderer

import "errors"

var (
	ErrNilScene  = errors.New("renderer: no scene defined")
	ErrNilCamera = errors.New("renderer: no camera defined")
	ErrNilTarget = errors.New("renderer: no render target")
)
