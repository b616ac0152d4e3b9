package datamodel

import (
	"strings"
	"testing"

	"github.com/rtm0/cfmeta/internal/datelabel"
)

func mustRange(t *testing.T, s string) datelabel.DateRange {
	t.Helper()
	r, err := datelabel.ParseDateRange(s)
	if err != nil {
		t.Fatalf("ParseDateRange(%q): %v", s, err)
	}
	return r
}

func TestAxisIsSpatiotemporal(t *testing.T) {
	tests := []struct {
		axis Axis
		want bool
	}{
		{AxisX, true},
		{AxisY, true},
		{AxisZ, true},
		{AxisT, true},
		{AxisBounds, false},
		{AxisOther, false},
	}
	for _, tt := range tests {
		if got := tt.axis.IsSpatiotemporal(); got != tt.want {
			t.Errorf("%s.IsSpatiotemporal() = %v, want %v", tt.axis, got, tt.want)
		}
	}
}

func TestParseAxis(t *testing.T) {
	for _, a := range []Axis{AxisX, AxisY, AxisZ, AxisT, AxisBounds, AxisOther} {
		got, err := ParseAxis(strings.ToLower(a.String()))
		if err != nil {
			t.Errorf("ParseAxis(%q): %v", a, err)
			continue
		}
		if got != a {
			t.Errorf("ParseAxis(%q) = %s", a, got)
		}
	}
	if _, err := ParseAxis("W"); err == nil {
		t.Error("ParseAxis(W) succeeded")
	}
}

func TestVariantDefaults(t *testing.T) {
	tests := []struct {
		coord               Coordinate
		standardName, units string
		axis                Axis
	}{
		{NewLongitude("lon"), "longitude", "degrees_E", AxisX},
		{NewLatitude("lat"), "latitude", "degrees_N", AxisY},
		{NewVertical("lev", "height", "", "up"), "height", "1", AxisZ},
		{NewTime("time", "days since 1850-01-01", "noleap", datelabel.DateRange{}, datelabel.DateFrequency{}), "time", "days since 1850-01-01", AxisT},
		{NewBoundsDimension("bnds"), "bounds", "1", AxisBounds},
		{NewGeneric("station", "", "", AxisOther), "", "", AxisOther},
	}
	for _, tt := range tests {
		t.Run(VariantName(tt.coord), func(t *testing.T) {
			c := tt.coord
			if c.StandardName() != tt.standardName || c.Units() != tt.units || c.Axis() != tt.axis {
				t.Errorf("got (%q, %q, %s), want (%q, %q, %s)",
					c.StandardName(), c.Units(), c.Axis(), tt.standardName, tt.units, tt.axis)
			}
			if c.Bounds() != nil {
				t.Errorf("new coordinate has bounds %v", c.Bounds())
			}
		})
	}
}

func TestEqualIgnoresFormulaTerms(t *testing.T) {
	a := NewParametricVertical("lev", "atmosphere_hybrid_sigma_pressure_coordinate", "1", "down", ParametricTerms{
		ComputedStandardName: "air_pressure",
		LongName:             "hybrid sigma pressure coordinate",
		FormulaTerms:         "a: hyam b: hybm p0: P0 ps: PS",
	})
	b := NewParametricVertical("lev", "atmosphere_hybrid_sigma_pressure_coordinate", "1", "down", ParametricTerms{
		ComputedStandardName: "air_pressure",
		LongName:             "hybrid sigma pressure coordinate",
		FormulaTerms:         "ap: ap b: b ps: ps",
	})
	if !Equal(a, b) {
		t.Error("parametric vertical coordinates differing only in formula_terms are not equal")
	}
	if Hash(a) != Hash(b) {
		t.Error("equal coordinates hash differently")
	}

	c := NewParametricVertical("lev", "atmosphere_hybrid_sigma_pressure_coordinate", "1", "down", ParametricTerms{
		ComputedStandardName: "altitude",
	})
	if Equal(a, c) {
		t.Error("coordinates with different computed_standard_name are equal")
	}
}

func TestEqualTimeRange(t *testing.T) {
	a := NewTime("time", "hours since 1900-01-01", "standard", mustRange(t, "2000-2009"), datelabel.DateFrequency{Quantity: 1, Unit: datelabel.UnitMonth})
	b := NewTime("time", "hours since 1900-01-01", "standard", mustRange(t, "2000-2019"), datelabel.DateFrequency{Quantity: 1, Unit: datelabel.UnitMonth})
	if Equal(a, b) {
		t.Error("time coordinates with different ranges are equal")
	}
	if !Equal(a, a.WithRange(b.Range()).WithRange(a.Range())) {
		t.Error("time coordinate not equal to its round-tripped copy")
	}
}

func TestEqualVariants(t *testing.T) {
	lat := NewLatitude("lat")
	generic := NewGeneric("lat", "latitude", "degrees_N", AxisY)
	if Equal(lat, generic) {
		t.Error("coordinates of different variants are equal")
	}
	if !Equal(lat, NewLatitude("lat")) {
		t.Error("identical latitudes are not equal")
	}
	if Hash(lat) != Hash(NewLatitude("lat")) {
		t.Error("identical latitudes hash differently")
	}
	if Equal(NewVertical("lev", "height", "m", "up"), NewParametricVertical("lev", "height", "m", "up", ParametricTerms{})) {
		t.Error("vertical and parametric vertical are equal")
	}
	if !Equal(nil, nil) || Equal(lat, nil) {
		t.Error("nil handling in Equal")
	}
}

func TestEqualComparesBoundsIdentity(t *testing.T) {
	a := NewLatitude("lat")
	b := NewLatitude("lat")
	if _, err := BoundsFromCoordinateName(a, "bnds"); err != nil {
		t.Fatal(err)
	}
	if Equal(a, b) {
		t.Error("coordinate with bounds equals one without")
	}
	if _, err := BoundsFromCoordinateName(b, "bnds"); err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) {
		t.Error("coordinates with equivalent bounds are not equal")
	}
	if Hash(a) != Hash(b) {
		t.Error("coordinates with equivalent bounds hash differently")
	}
}

func TestTimeIsStatic(t *testing.T) {
	fx := NewTime("time", "days since 1850-01-01", "standard", datelabel.FXDateRange, datelabel.FXDateFrequency)
	if !fx.IsStatic() {
		t.Error("fx time coordinate not static")
	}
	unset := NewTime("time", "days since 1850-01-01", "standard", datelabel.DateRange{}, datelabel.DateFrequency{})
	if unset.IsStatic() {
		t.Error("time coordinate without a range reported static")
	}
	if mr := NewTime("time", "days since 1850-01-01", "standard", mustRange(t, "1850-2014"), datelabel.FXDateFrequency); mr.IsStatic() {
		t.Error("time coordinate with a concrete range reported static")
	}
}

func TestDescribe(t *testing.T) {
	got := Describe(NewLatitude("lat"))
	want := `Latitude(name="lat", standard_name="latitude", units="degrees_N", axis=Y)`
	if got != want {
		t.Errorf("Describe() = %s, want %s", got, want)
	}
	if Describe(nil) != "<nil>" {
		t.Errorf("Describe(nil) = %s", Describe(nil))
	}
}
