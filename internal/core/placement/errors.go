package placement

import (
	"errors"
	"fmt"
)

var (
	ErrPlacement     = errors.New("no free spawn position")
	ErrInvalidBounds = errors.New("invalid placement bounds")
)

// PlacementError is returned when every sampled position collided.
type PlacementError struct {
	Attempts   int
	HalfWidth  float64
	HalfHeight float64
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%s after %d attempts in %gx%g", ErrPlacement, e.Attempts, 2*e.HalfWidth, 2*e.HalfHeight)
}

func (e *PlacementError) Unwrap() error { return ErrPlacement }
