package datamodel

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateAxis           = errors.New("duplicate axis")
	ErrMalformedBounds         = errors.New("malformed coordinate bounds")
	ErrTypeMismatch            = errors.New("coordinate type mismatch")
	ErrMissingBoundsCoordinate = errors.New("bounds have no coordinate dimension")
	ErrStatic                  = errors.New("dimensions have no time-varying T axis")
	ErrScalarDimension         = errors.New("scalar coordinate used as a dimension")
)

// DuplicateAxisError reports two coordinates of one Dimensions claiming the
// same axis.
type DuplicateAxisError struct {
	Axis   Axis
	First  Coordinate
	Second Coordinate
}

func (e *DuplicateAxisError) Error() string {
	return fmt.Sprintf("duplicate definition of %s axis: %s, %s",
		e.Axis, Describe(e.Second), Describe(e.First))
}

func (e *DuplicateAxisError) Unwrap() error {
	return ErrDuplicateAxis
}
