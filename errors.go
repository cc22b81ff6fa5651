package svgmesh

import "errors"

var (
	// ErrInvalidSVG is wrapped by every error returned when SVG source
	// cannot be loaded.
	ErrInvalidSVG = errors.New("svgmesh: invalid svg")

	// ErrNonMonotonicStops is returned by NewGradient when stop offsets
	// decrease.
	ErrNonMonotonicStops = errors.New("svgmesh: gradient stop offsets must not decrease")

	// ErrStopOffsetRange is returned by NewGradient when a stop offset is
	// outside [0, 1] or NaN.
	ErrStopOffsetRange = errors.New("svgmesh: gradient stop offset outside [0, 1]")

	// ErrInvalidConfig is wrapped by configuration validation errors.
	ErrInvalidConfig = errors.New("svgmesh: invalid config")
)
