package tvg

import "errors"

// Sentinel errors returned by Render. Callers should compare with
// errors.Is, since the renderer wraps these with contextual detail.
var (
	// ErrOutOfScratch is returned when flattening a path would exceed the
	// fixed scratch-buffer capacity (point buffer or sub-path index).
	ErrOutOfScratch = errors.New("tvg: path exceeds scratch buffer capacity")

	// ErrInvalidGeometry is returned when a non-finite (NaN or Inf)
	// coordinate reaches the flattener's per-point assertion boundary.
	ErrInvalidGeometry = errors.New("tvg: non-finite coordinate in geometry")

	// ErrUnknownCommand is returned when Render is given a DrawCommand
	// variant it does not recognize.
	ErrUnknownCommand = errors.New("tvg: unknown draw command variant")
)
