package autoscroll

import "errors"

var (
	// ErrViewportOpen is returned when opening a viewport ID that is already registered.
	ErrViewportOpen = errors.New("viewport already open")

	// ErrViewportNotFound is returned when closing or looking up an unknown viewport ID.
	ErrViewportNotFound = errors.New("viewport not found")

	// ErrNilViewport is returned when opening a nil viewport.
	ErrNilViewport = errors.New("viewport cannot be nil")
)
