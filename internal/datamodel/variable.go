package datamodel

import (
	"fmt"

	"github.com/rtm0/cfmeta/internal/datelabel"
)

// Variable describes a data (dependent) variable and its axes.
type Variable struct {
	name         string
	standardName string
	units        string
	auxCoords    []*AuxiliaryCoordinate
	Dimensions
}

func NewVariable(name, standardName, units string, dims []Coordinate, scalars ...ScalarCoordinate) (*Variable, error) {
	v := &Variable{name: name, standardName: standardName, units: units}
	if err := v.init(dims, scalars); err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}
	return v, nil
}

func (v *Variable) Name() string         { return v.name }
func (v *Variable) StandardName() string { return v.standardName }
func (v *Variable) Units() string        { return v.units }

// AuxCoords returns the auxiliary coordinates attached with WithAuxCoords.
func (v *Variable) AuxCoords() []*AuxiliaryCoordinate {
	return append([]*AuxiliaryCoordinate(nil), v.auxCoords...)
}

// WithAuxCoords returns a copy of v with aux appended to its auxiliary
// coordinates.
func (v *Variable) WithAuxCoords(aux ...*AuxiliaryCoordinate) *Variable {
	cp := *v
	cp.auxCoords = append(v.AuxCoords(), aux...)
	return &cp
}

// ReplaceDateRange returns a copy of v whose time coordinate has range r.
func (v *Variable) ReplaceDateRange(r datelabel.DateRange) (*Variable, error) {
	dims, err := v.withDateRange(r)
	if err != nil {
		return nil, err
	}
	nv, err := NewVariable(v.name, v.standardName, v.units, dims, v.scalars...)
	if err != nil {
		return nil, err
	}
	nv.auxCoords = v.AuxCoords()
	return nv, nil
}

// Equal reports whether v and o have the same identity, dimensions and
// auxiliary coordinates.
func (v *Variable) Equal(o *Variable) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.name != o.name || v.standardName != o.standardName || v.units != o.units {
		return false
	}
	if len(v.auxCoords) != len(o.auxCoords) {
		return false
	}
	for i := range v.auxCoords {
		if !v.auxCoords[i].Equal(o.auxCoords[i]) {
			return false
		}
	}
	return v.Dimensions.Equal(&o.Dimensions)
}
