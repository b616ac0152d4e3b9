package datamodel

import (
	"fmt"
	"math"
	"reflect"
)

// ScalarCoordinate is a coordinate collapsed to a single value, as in the
// CF treatment of scalar coordinate variables.
type ScalarCoordinate interface {
	Coordinate
	Value() float64
	// Base returns the wrapped non-scalar coordinate.
	Base() Coordinate
}

// Scalar augments a coordinate of variant C with a value.
type Scalar[C Coordinate] struct {
	coord C
	value float64
}

type (
	ScalarGeneric  = Scalar[*Generic]
	ScalarVertical = Scalar[VerticalCoordinate]
)

// NewScalar builds a scalar coordinate from a copy of src. src must be of
// variant C, or implement C when C is an interface type; otherwise the
// error wraps ErrTypeMismatch. src is not modified.
func NewScalar[C Coordinate](src Coordinate, value float64) (*Scalar[C], error) {
	target := reflect.TypeOf((*C)(nil)).Elem()
	if src == nil {
		return nil, fmt.Errorf("%w: cannot build scalar %s from nil", ErrTypeMismatch, target)
	}
	if _, ok := src.(ScalarCoordinate); ok {
		return nil, fmt.Errorf("%w: %s is already scalar", ErrTypeMismatch, Describe(src))
	}
	coord, ok := src.clone().(C)
	if !ok {
		return nil, fmt.Errorf("%w: cannot build scalar %s from %s",
			ErrTypeMismatch, target, Describe(src))
	}
	return &Scalar[C]{coord: coord, value: value}, nil
}

// Coord returns the wrapped coordinate with its static type.
func (s *Scalar[C]) Coord() C                      { return s.coord }
func (s *Scalar[C]) Base() Coordinate              { return s.coord }
func (s *Scalar[C]) Value() float64                { return s.value }
func (s *Scalar[C]) Name() string                  { return s.coord.Name() }
func (s *Scalar[C]) StandardName() string          { return s.coord.StandardName() }
func (s *Scalar[C]) Units() string                 { return s.coord.Units() }
func (s *Scalar[C]) Axis() Axis                    { return s.coord.Axis() }
func (s *Scalar[C]) Bounds() *CoordinateBounds     { return s.coord.Bounds() }
func (s *Scalar[C]) setBounds(b *CoordinateBounds) { s.coord.setBounds(b) }

// key folds -0 into 0 and every NaN into one value, so all NaN scalars of
// the same coordinate are equal.
func (s *Scalar[C]) key() coordKey {
	k := s.coord.key()
	k.scalar = true
	switch {
	case math.IsNaN(s.value):
		k.nan = true
	case s.value != 0:
		k.value = s.value
	}
	return k
}

func (s *Scalar[C]) clone() Coordinate {
	return &Scalar[C]{coord: s.coord.clone().(C), value: s.value}
}
