package datamodel

import (
	"fmt"
	"math"
	"strings"

	"github.com/rtm0/cfmeta/internal/datelabel"
	"github.com/rtm0/cfmeta/internal/hash"
)

// Coordinate is a single coordinate variable in the CF sense. The
// implementations are the variants defined in this package: Generic,
// Longitude, Latitude, Vertical, ParametricVertical, Time, BoundsDimension
// and the Scalar wrappers around them.
type Coordinate interface {
	Name() string
	StandardName() string
	Units() string
	Axis() Axis
	// Bounds returns the bounds linked to the coordinate, if any.
	Bounds() *CoordinateBounds

	setBounds(*CoordinateBounds)
	key() coordKey
	clone() Coordinate
}

// VerticalCoordinate is implemented by Vertical and ParametricVertical.
type VerticalCoordinate interface {
	Coordinate
	Positive() string
}

// coordKey holds every field that takes part in coordinate equality.
type coordKey struct {
	variant      string
	name         string
	standardName string
	units        string
	axis         Axis
	bounds       boundsKey

	positive             string
	computedStandardName string
	longName             string

	calendar  string
	dateRange datelabel.DateRange
	frequency datelabel.DateFrequency

	scalar bool
	value  float64
	nan    bool
}

// boundsKey identifies linked bounds without following their dims back to
// the coordinate.
type boundsKey struct {
	name         string
	standardName string
	units        string
	dim          string
}

func boundsIdentity(b *CoordinateBounds) boundsKey {
	if b == nil {
		return boundsKey{}
	}
	k := boundsKey{name: b.name, standardName: b.standardName, units: b.units}
	for _, c := range b.dims {
		if c.Axis() == AxisBounds {
			k.dim = c.Name()
		}
	}
	return k
}

// Equal reports whether a and b are the same variant with equal fields.
// The formula_terms of parametric vertical coordinates are ignored.
func Equal(a, b Coordinate) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.key() == b.key()
}

// Hash returns a hash of c consistent with Equal.
func Hash(c Coordinate) uint64 {
	return hash.Sum64(c.key())
}

// VariantName returns the name of c's variant, e.g. "Latitude" or
// "ScalarVertical".
func VariantName(c Coordinate) string {
	k := c.key()
	if k.scalar {
		return "Scalar" + k.variant
	}
	return k.variant
}

// Describe formats c for messages.
func Describe(c Coordinate) string {
	if c == nil {
		return "<nil>"
	}
	k := c.key()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(name=%q, standard_name=%q, units=%q, axis=%s",
		VariantName(c), k.name, k.standardName, k.units, k.axis)
	if k.scalar {
		v := k.value
		if k.nan {
			v = math.NaN()
		}
		fmt.Fprintf(&sb, ", value=%g", v)
	}
	sb.WriteString(")")
	return sb.String()
}

type base struct {
	name         string
	standardName string
	units        string
	bounds       *CoordinateBounds
}

func (b *base) Name() string                   { return b.name }
func (b *base) StandardName() string           { return b.standardName }
func (b *base) Units() string                  { return b.units }
func (b *base) Bounds() *CoordinateBounds      { return b.bounds }
func (b *base) setBounds(cb *CoordinateBounds) { b.bounds = cb }

func (b *base) baseKey(variant string, axis Axis) coordKey {
	return coordKey{
		variant:      variant,
		name:         b.name,
		standardName: b.standardName,
		units:        b.units,
		axis:         axis,
		bounds:       boundsIdentity(b.bounds),
	}
}

// Generic is a coordinate with no fixed attributes.
type Generic struct {
	base
	axis Axis
}

// NewGeneric returns a coordinate with the given attributes.
func NewGeneric(name, standardName, units string, axis Axis) *Generic {
	return &Generic{
		base: base{name: name, standardName: standardName, units: units},
		axis: axis,
	}
}

func (c *Generic) Axis() Axis        { return c.axis }
func (c *Generic) key() coordKey     { return c.baseKey("Coordinate", c.axis) }
func (c *Generic) clone() Coordinate { cp := *c; return &cp }

// Longitude is the X coordinate of a regular lat-lon grid.
type Longitude struct {
	base
}

func NewLongitude(name string) *Longitude {
	return &Longitude{base{name: name, standardName: "longitude", units: "degrees_E"}}
}

func (c *Longitude) Axis() Axis        { return AxisX }
func (c *Longitude) key() coordKey     { return c.baseKey("Longitude", AxisX) }
func (c *Longitude) clone() Coordinate { cp := *c; return &cp }

// Latitude is the Y coordinate of a regular lat-lon grid.
type Latitude struct {
	base
}

func NewLatitude(name string) *Latitude {
	return &Latitude{base{name: name, standardName: "latitude", units: "degrees_N"}}
}

func (c *Latitude) Axis() Axis        { return AxisY }
func (c *Latitude) key() coordKey     { return c.baseKey("Latitude", AxisY) }
func (c *Latitude) clone() Coordinate { cp := *c; return &cp }

// Vertical is a non-parametric vertical coordinate (height, depth or
// pressure).
type Vertical struct {
	base
	positive string
}

// NewVertical returns a vertical coordinate. Empty units mean the
// coordinate is dimensionless ("1").
func NewVertical(name, standardName, units, positive string) *Vertical {
	if units == "" {
		units = "1"
	}
	return &Vertical{
		base:     base{name: name, standardName: standardName, units: units},
		positive: positive,
	}
}

// Positive is the direction of increasing values, "up" or "down".
func (c *Vertical) Positive() string { return c.positive }
func (c *Vertical) Axis() Axis       { return AxisZ }

func (c *Vertical) key() coordKey {
	k := c.baseKey("Vertical", AxisZ)
	k.positive = c.positive
	return k
}

func (c *Vertical) clone() Coordinate { cp := *c; return &cp }

// ParametricTerms are the attributes specific to a parametric vertical
// coordinate.
type ParametricTerms struct {
	ComputedStandardName string
	LongName             string
	// FormulaTerms is the unparsed formula_terms attribute.
	FormulaTerms string
}

// ParametricVertical is a dimensionless vertical coordinate from which
// a dimensional one is computed through formula terms.
type ParametricVertical struct {
	Vertical
	terms ParametricTerms
}

func NewParametricVertical(name, standardName, units, positive string, terms ParametricTerms) *ParametricVertical {
	return &ParametricVertical{
		Vertical: *NewVertical(name, standardName, units, positive),
		terms:    terms,
	}
}

func (c *ParametricVertical) ComputedStandardName() string { return c.terms.ComputedStandardName }
func (c *ParametricVertical) LongName() string             { return c.terms.LongName }
func (c *ParametricVertical) FormulaTerms() string         { return c.terms.FormulaTerms }

// key leaves out formula_terms: equivalent coordinates may name different
// auxiliary variables.
func (c *ParametricVertical) key() coordKey {
	k := c.baseKey("ParametricVertical", AxisZ)
	k.positive = c.positive
	k.computedStandardName = c.terms.ComputedStandardName
	k.longName = c.terms.LongName
	return k
}

func (c *ParametricVertical) clone() Coordinate { cp := *c; return &cp }

// Time is a CF time coordinate.
type Time struct {
	base
	calendar  string
	dateRange datelabel.DateRange
	frequency datelabel.DateFrequency
}

func NewTime(name, units, calendar string, r datelabel.DateRange, f datelabel.DateFrequency) *Time {
	return &Time{
		base:      base{name: name, standardName: "time", units: units},
		calendar:  calendar,
		dateRange: r,
		frequency: f,
	}
}

func (c *Time) Calendar() string                   { return c.calendar }
func (c *Time) Range() datelabel.DateRange         { return c.dateRange }
func (c *Time) Frequency() datelabel.DateFrequency { return c.frequency }
func (c *Time) Axis() Axis                         { return AxisT }

// IsStatic reports whether the coordinate describes time-independent
// ("fx") data. Only the range is consulted since data sources disagree on
// the frequency of static data.
func (c *Time) IsStatic() bool {
	return c.dateRange == datelabel.FXDateRange
}

// WithRange returns a copy of c with its date range replaced.
func (c *Time) WithRange(r datelabel.DateRange) *Time {
	cp := *c
	cp.dateRange = r
	return &cp
}

func (c *Time) key() coordKey {
	k := c.baseKey("Time", AxisT)
	k.calendar = c.calendar
	k.dateRange = c.dateRange
	k.frequency = c.frequency
	return k
}

func (c *Time) clone() Coordinate { cp := *c; return &cp }

// BoundsDimension stands for the length-2 dimension of a CoordinateBounds.
type BoundsDimension struct {
	name string
}

func NewBoundsDimension(name string) *BoundsDimension {
	return &BoundsDimension{name: name}
}

func (c *BoundsDimension) Name() string              { return c.name }
func (c *BoundsDimension) StandardName() string      { return "bounds" }
func (c *BoundsDimension) Units() string             { return "1" }
func (c *BoundsDimension) Axis() Axis                { return AxisBounds }
func (c *BoundsDimension) Bounds() *CoordinateBounds { return nil }

// setBounds is a no-op: a bounds dimension has no bounds of its own.
func (c *BoundsDimension) setBounds(*CoordinateBounds) {}

func (c *BoundsDimension) key() coordKey {
	return coordKey{
		variant:      "BoundsDimension",
		name:         c.name,
		standardName: "bounds",
		units:        "1",
		axis:         AxisBounds,
	}
}

func (c *BoundsDimension) clone() Coordinate { cp := *c; return &cp }
