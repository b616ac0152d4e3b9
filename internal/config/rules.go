package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rtm0/cfmeta/internal/datamodel"
)

// AxisRule lists the variable names, standard names and units that mark
// a coordinate variable as belonging to one axis. Matching is
// case-insensitive.
type AxisRule struct {
	Names         []string `toml:"names"`
	StandardNames []string `toml:"standard_names"`
	Units         []string `toml:"units"`
}

func (r AxisRule) matches(name, standardName, units string) bool {
	return containsFold(r.Names, name) ||
		containsFold(r.StandardNames, standardName) ||
		containsFold(r.Units, units)
}

func containsFold(list []string, s string) bool {
	if s == "" {
		return false
	}
	return slices.ContainsFunc(list, func(e string) bool { return strings.EqualFold(e, s) })
}

// Rules decide which axis a coordinate variable without an explicit CF
// "axis" attribute stands for.
type Rules struct {
	X AxisRule `toml:"x"`
	Y AxisRule `toml:"y"`
	Z AxisRule `toml:"z"`
	T AxisRule `toml:"t"`

	// ParametricStandardNames are the standard names of dimensionless
	// vertical coordinates.
	ParametricStandardNames []string `toml:"parametric_standard_names"`
	// DefaultCalendar applies to time coordinates without a calendar
	// attribute.
	DefaultCalendar string `toml:"default_calendar"`
}

// DefaultRules follow the CF conventions, sections 4.1 to 4.4.
func DefaultRules() Rules {
	return Rules{
		X: AxisRule{
			Names:         []string{"lon", "longitude"},
			StandardNames: []string{"longitude", "grid_longitude", "projection_x_coordinate"},
			Units:         []string{"degrees_east", "degree_east", "degree_e", "degrees_e", "degreee", "degreese"},
		},
		Y: AxisRule{
			Names:         []string{"lat", "latitude"},
			StandardNames: []string{"latitude", "grid_latitude", "projection_y_coordinate"},
			Units:         []string{"degrees_north", "degree_north", "degree_n", "degrees_n", "degreen", "degreesn"},
		},
		Z: AxisRule{
			Names:         []string{"lev", "level", "plev", "depth", "height"},
			StandardNames: []string{"air_pressure", "altitude", "height", "depth", "model_level_number", "height_above_geopotential_datum"},
		},
		T: AxisRule{
			Names:         []string{"time"},
			StandardNames: []string{"time"},
		},
		ParametricStandardNames: []string{
			"atmosphere_ln_pressure_coordinate",
			"atmosphere_sigma_coordinate",
			"atmosphere_hybrid_sigma_pressure_coordinate",
			"atmosphere_hybrid_height_coordinate",
			"atmosphere_sleve_coordinate",
			"ocean_sigma_coordinate",
			"ocean_s_coordinate",
			"ocean_s_coordinate_g1",
			"ocean_s_coordinate_g2",
			"ocean_sigma_z_coordinate",
			"ocean_double_sigma_coordinate",
		},
		DefaultCalendar: "standard",
	}
}

// LoadRules returns DefaultRules overlaid with the TOML file at path. Keys
// present in the file replace their defaults; unknown keys are an error.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}
	md, err := toml.DecodeFile(path, &rules)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Rules{}, fmt.Errorf("read rules %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return rules, nil
}

// AxisFor returns the axis whose rule matches the variable, checking X, Y,
// Z and T in turn.
func (r Rules) AxisFor(name, standardName, units string) (datamodel.Axis, bool) {
	for _, ar := range []struct {
		axis datamodel.Axis
		rule AxisRule
	}{
		{datamodel.AxisX, r.X},
		{datamodel.AxisY, r.Y},
		{datamodel.AxisZ, r.Z},
		{datamodel.AxisT, r.T},
	} {
		if ar.rule.matches(name, standardName, units) {
			return ar.axis, true
		}
	}
	return datamodel.AxisOther, false
}

// IsParametric reports whether standardName names a parametric vertical
// coordinate.
func (r Rules) IsParametric(standardName string) bool {
	return containsFold(r.ParametricStandardNames, standardName)
}

// IsLongitudeUnits reports whether units are degrees east.
func (r Rules) IsLongitudeUnits(units string) bool {
	return containsFold(r.X.Units, units)
}

// IsLatitudeUnits reports whether units are degrees north.
func (r Rules) IsLatitudeUnits(units string) bool {
	return containsFold(r.Y.Units, units)
}
