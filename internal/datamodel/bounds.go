package datamodel

import (
	"fmt"

	"github.com/rtm0/cfmeta/internal/datelabel"
)

// AuxiliaryCoordinate is a coordinate variable that itself varies over
// dimensions, such as the 2-D latitude of a curvilinear grid.
type AuxiliaryCoordinate struct {
	name         string
	standardName string
	units        string
	Dimensions
}

func NewAuxiliaryCoordinate(name, standardName, units string, dims []Coordinate, scalars ...ScalarCoordinate) (*AuxiliaryCoordinate, error) {
	a := &AuxiliaryCoordinate{name: name, standardName: standardName, units: units}
	if err := a.init(dims, scalars); err != nil {
		return nil, fmt.Errorf("auxiliary coordinate %q: %w", name, err)
	}
	return a, nil
}

func (a *AuxiliaryCoordinate) Name() string         { return a.name }
func (a *AuxiliaryCoordinate) StandardName() string { return a.standardName }
func (a *AuxiliaryCoordinate) Units() string        { return a.units }

// ReplaceDateRange is Dimensions.ReplaceDateRange for an auxiliary
// coordinate.
func (a *AuxiliaryCoordinate) ReplaceDateRange(r datelabel.DateRange) (*AuxiliaryCoordinate, error) {
	dims, err := a.withDateRange(r)
	if err != nil {
		return nil, err
	}
	return NewAuxiliaryCoordinate(a.name, a.standardName, a.units, dims, a.scalars...)
}

// Equal reports whether a and o have the same identity and dimensions.
func (a *AuxiliaryCoordinate) Equal(o *AuxiliaryCoordinate) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.name == o.name && a.standardName == o.standardName &&
		a.units == o.units && a.Dimensions.Equal(&o.Dimensions)
}

// CoordinateBounds holds the cell boundaries of a dimension coordinate. Its
// dims are the coordinate itself and a BoundsDimension of length 2.
type CoordinateBounds struct {
	AuxiliaryCoordinate
}

// NewCoordinateBounds validates dims as for NewDimensions and additionally
// requires no scalar coordinates and exactly two dims, one of them on the
// BOUNDS axis.
func NewCoordinateBounds(name, standardName, units string, dims []Coordinate, scalars ...ScalarCoordinate) (*CoordinateBounds, error) {
	b := &CoordinateBounds{AuxiliaryCoordinate{name: name, standardName: standardName, units: units}}
	if err := b.init(dims, scalars); err != nil {
		return nil, fmt.Errorf("coordinate bounds %q: %w", name, err)
	}
	if len(b.scalars) > 0 {
		return nil, fmt.Errorf("%w: %q has %d scalar coordinates", ErrMalformedBounds, name, len(b.scalars))
	}
	n := 0
	for _, c := range b.dims {
		if c.Axis() == AxisBounds {
			n++
		}
	}
	if len(b.dims) != 2 || n != 1 {
		return nil, fmt.Errorf("%w: %q needs one coordinate and one bounds dimension, got %d dims", ErrMalformedBounds, name, len(b.dims))
	}
	return b, nil
}

// BoundsFromCoordinate builds bounds for c along dim and links c to them,
// replacing any bounds c had before.
func BoundsFromCoordinate(c Coordinate, dim *BoundsDimension) (*CoordinateBounds, error) {
	if c == nil || dim == nil {
		return nil, fmt.Errorf("%w: need both a coordinate and a bounds dimension", ErrMalformedBounds)
	}
	b, err := NewCoordinateBounds(c.Name(), c.StandardName(), c.Units(), []Coordinate{c, dim})
	if err != nil {
		return nil, err
	}
	c.setBounds(b)
	return b, nil
}

// BoundsFromCoordinateName is BoundsFromCoordinate with a bounds dimension
// of the given name.
func BoundsFromCoordinateName(c Coordinate, dimName string) (*CoordinateBounds, error) {
	return BoundsFromCoordinate(c, NewBoundsDimension(dimName))
}

// Coord returns the coordinate the bounds belong to.
func (b *CoordinateBounds) Coord() (Coordinate, error) {
	for _, c := range b.dims {
		if c.Axis() != AxisBounds {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMissingBoundsCoordinate, b.name)
}

// relink returns a copy of b with its coordinate replaced by c, and links c
// to the copy. b and its coordinate are unchanged.
func (b *CoordinateBounds) relink(c Coordinate) (*CoordinateBounds, error) {
	dims := b.Dims()
	for i, d := range dims {
		if d.Axis() != AxisBounds {
			dims[i] = c
		}
	}
	nb, err := NewCoordinateBounds(b.name, b.standardName, b.units, dims)
	if err != nil {
		return nil, err
	}
	c.setBounds(nb)
	return nb, nil
}

// Dim returns the bounds dimension.
func (b *CoordinateBounds) Dim() *BoundsDimension {
	for _, c := range b.dims {
		if bd, ok := c.(*BoundsDimension); ok {
			return bd
		}
	}
	return nil
}
