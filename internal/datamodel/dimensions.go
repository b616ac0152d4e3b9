package datamodel

import (
	"fmt"

	"github.com/rtm0/cfmeta/internal/datelabel"
)

// Dimensions binds the dimension coordinates of an array, and the scalar
// coordinates collapsed out of it, to the physical axes they stand for.
//
// Axes reflects only dimension coordinates: it says what varies along the
// array's dimensions. PhysAxes overlays scalar coordinates on top of it, so
// a horizontal slice at one pressure level has no Z in Axes but does in
// PhysAxes.
type Dimensions struct {
	dims     []Coordinate
	scalars  []ScalarCoordinate
	axes     map[Axis]Coordinate
	physAxes map[Axis]Coordinate
}

// NewDimensions validates dims and scalars and computes the axis maps. No
// two coordinates may share an axis other than OTHER.
func NewDimensions(dims []Coordinate, scalars ...ScalarCoordinate) (*Dimensions, error) {
	d := &Dimensions{}
	if err := d.init(dims, scalars); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dimensions) init(dims []Coordinate, scalars []ScalarCoordinate) error {
	for i, c := range dims {
		if c == nil {
			return fmt.Errorf("nil coordinate at dimension %d", i)
		}
		if _, ok := c.(ScalarCoordinate); ok {
			return fmt.Errorf("%w: %s", ErrScalarDimension, Describe(c))
		}
	}
	d.dims = append([]Coordinate(nil), dims...)
	d.scalars = uniqueScalars(scalars)

	seen := make(map[Axis]Coordinate)
	check := func(c Coordinate) error {
		a := c.Axis()
		if a == AxisOther {
			return nil
		}
		if prev, ok := seen[a]; ok {
			return &DuplicateAxisError{Axis: a, First: prev, Second: c}
		}
		seen[a] = c
		return nil
	}
	for _, c := range d.dims {
		if err := check(c); err != nil {
			return err
		}
	}
	for _, c := range d.scalars {
		if err := check(c); err != nil {
			return err
		}
	}

	d.axes = make(map[Axis]Coordinate, len(SpatiotemporalAxes))
	for _, a := range SpatiotemporalAxes {
		d.axes[a] = nil
	}
	for _, c := range d.dims {
		if a := c.Axis(); a.IsSpatiotemporal() {
			d.axes[a] = c
		}
	}
	d.physAxes = copyAxes(d.axes)
	for _, c := range d.scalars {
		if a := c.Axis(); a.IsSpatiotemporal() {
			d.physAxes[a] = c
		}
	}
	return nil
}

// uniqueScalars drops nil entries and repeats, keeping first-seen order.
func uniqueScalars(scalars []ScalarCoordinate) []ScalarCoordinate {
	var out []ScalarCoordinate
	seen := make(map[coordKey]bool, len(scalars))
	for _, s := range scalars {
		if s == nil {
			continue
		}
		k := s.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}

func copyAxes(m map[Axis]Coordinate) map[Axis]Coordinate {
	out := make(map[Axis]Coordinate, len(m))
	for a, c := range m {
		out[a] = c
	}
	return out
}

// Dims returns the dimension coordinates in array order.
func (d *Dimensions) Dims() []Coordinate {
	return append([]Coordinate(nil), d.dims...)
}

// ScalarCoords returns the scalar coordinates.
func (d *Dimensions) ScalarCoords() []ScalarCoordinate {
	return append([]ScalarCoordinate(nil), d.scalars...)
}

// Rank is the number of dimensions.
func (d *Dimensions) Rank() int {
	return len(d.dims)
}

// Axes maps each of X, Y, Z and T to its dimension coordinate, or nil.
func (d *Dimensions) Axes() map[Axis]Coordinate {
	return copyAxes(d.axes)
}

// PhysAxes is Axes with scalar coordinates taking precedence.
func (d *Dimensions) PhysAxes() map[Axis]Coordinate {
	return copyAxes(d.physAxes)
}

// Axis returns the dimension coordinate for a, or nil.
func (d *Dimensions) Axis(a Axis) Coordinate {
	return d.axes[a]
}

// PhysAxis returns the dimension or scalar coordinate for a, or nil.
func (d *Dimensions) PhysAxis(a Axis) Coordinate {
	return d.physAxes[a]
}

func (d *Dimensions) X() Coordinate { return d.axes[AxisX] }
func (d *Dimensions) Y() Coordinate { return d.axes[AxisY] }
func (d *Dimensions) Z() Coordinate { return d.axes[AxisZ] }
func (d *Dimensions) T() Coordinate { return d.axes[AxisT] }

// IsStatic reports whether the array is time-independent: it has no T
// dimension, or its time coordinate carries the fx range.
func (d *Dimensions) IsStatic() bool {
	t := d.T()
	if t == nil {
		return true
	}
	tc, ok := t.(*Time)
	return ok && tc.IsStatic()
}

// ReplaceDateRange returns a copy of d whose time coordinate has range r.
// Bounds of the time coordinate are rebuilt around the copy. d itself is
// unchanged.
func (d *Dimensions) ReplaceDateRange(r datelabel.DateRange) (*Dimensions, error) {
	dims, err := d.withDateRange(r)
	if err != nil {
		return nil, err
	}
	return NewDimensions(dims, d.scalars...)
}

func (d *Dimensions) withDateRange(r datelabel.DateRange) ([]Coordinate, error) {
	if d.IsStatic() {
		return nil, ErrStatic
	}
	old, ok := d.T().(*Time)
	if !ok {
		return nil, fmt.Errorf("%w: T axis %s is not a time coordinate", ErrTypeMismatch, Describe(d.T()))
	}
	nt := old.WithRange(r)
	if b := old.Bounds(); b != nil {
		if _, err := b.relink(nt); err != nil {
			return nil, err
		}
	}
	dims := d.Dims()
	for i, c := range dims {
		if c == d.T() {
			dims[i] = nt
		}
	}
	return dims, nil
}

// Equal reports whether d and o have equal dims in the same order and the
// same set of scalar coordinates.
func (d *Dimensions) Equal(o *Dimensions) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.dims) != len(o.dims) || len(d.scalars) != len(o.scalars) {
		return false
	}
	for i := range d.dims {
		if !Equal(d.dims[i], o.dims[i]) {
			return false
		}
	}
	keys := make(map[coordKey]bool, len(d.scalars))
	for _, s := range d.scalars {
		keys[s.key()] = true
	}
	for _, s := range o.scalars {
		if !keys[s.key()] {
			return false
		}
	}
	return true
}
