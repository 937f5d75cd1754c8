package gridsight

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of every argument error returned by the
	// engine. Test for it with errors.Is.
	ErrInvalidArgument = errors.New("gridsight: invalid argument")

	// ErrTrackerClosed is returned by Tracker.Track after Close.
	ErrTrackerClosed = errors.New("gridsight: tracker is closed")
)

// RadiusError reports a radius the circle rasterizer cannot walk:
// negative, NaN or too large to walk.
type RadiusError struct {
	Radius float64
}

func (e *RadiusError) Error() string {
	return fmt.Sprintf("gridsight: invalid radius %v: must be in [0, %.0f]", e.Radius, maxRadius)
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) hold.
func (e *RadiusError) Unwrap() error {
	return ErrInvalidArgument
}
