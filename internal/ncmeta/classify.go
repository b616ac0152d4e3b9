package ncmeta

import (
	"fmt"
	"strings"

	"github.com/batchatco/go-native-netcdf/netcdf/api"

	"github.com/rtm0/cfmeta/internal/datamodel"
	"github.com/rtm0/cfmeta/internal/datelabel"
)

// classify turns a coordinate variable into the matching datamodel
// variant. The CF "axis" attribute wins; otherwise the rules, then the
// "positive" attribute and time-like units decide.
func (r *Reader) classify(name string, vg api.VarGetter) (datamodel.Coordinate, error) {
	attrs := vg.Attributes()
	stdName := attrString(attrs, "standard_name")
	units := attrString(attrs, "units")
	positive := strings.ToLower(attrString(attrs, "positive"))
	formulaTerms := attrString(attrs, "formula_terms")

	axis := datamodel.AxisOther
	if a := attrString(attrs, "axis"); a != "" {
		parsed, err := datamodel.ParseAxis(a)
		if err != nil {
			r.logger.Warn("Ignoring axis attribute", "coord", name, "err", err)
		} else {
			axis = parsed
		}
	}
	if axis == datamodel.AxisOther {
		switch {
		case formulaTerms != "" || r.rules.IsParametric(stdName):
			axis = datamodel.AxisZ
		case isTimeUnits(units):
			axis = datamodel.AxisT
		default:
			if a, ok := r.rules.AxisFor(name, stdName, units); ok {
				axis = a
			} else if positive == "up" || positive == "down" {
				axis = datamodel.AxisZ
			}
		}
	}

	switch axis {
	case datamodel.AxisX:
		if stdName == "longitude" || (stdName == "" && r.rules.IsLongitudeUnits(units)) {
			return datamodel.NewLongitude(name), nil
		}
	case datamodel.AxisY:
		if stdName == "latitude" || (stdName == "" && r.rules.IsLatitudeUnits(units)) {
			return datamodel.NewLatitude(name), nil
		}
	case datamodel.AxisZ:
		if formulaTerms != "" || r.rules.IsParametric(stdName) {
			return datamodel.NewParametricVertical(name, stdName, units, positive, datamodel.ParametricTerms{
				ComputedStandardName: attrString(attrs, "computed_standard_name"),
				LongName:             attrString(attrs, "long_name"),
				FormulaTerms:         formulaTerms,
			}), nil
		}
		return datamodel.NewVertical(name, stdName, units, positive), nil
	case datamodel.AxisT:
		return r.timeCoord(name, units, attrString(attrs, "calendar"), vg)
	}
	return datamodel.NewGeneric(name, stdName, units, axis), nil
}

func isTimeUnits(units string) bool {
	return strings.Contains(units, " since ")
}

func (r *Reader) timeCoord(name, units, calendar string, vg api.VarGetter) (datamodel.Coordinate, error) {
	if calendar == "" {
		calendar = r.rules.DefaultCalendar
	}
	values, err := varFloats(vg)
	if err != nil {
		return nil, fmt.Errorf("read time values: %w", err)
	}
	rng, freq, err := timeExtent(units, calendar, values)
	if err != nil {
		r.logger.Warn("Cannot determine time range", "coord", name, "units", units, "calendar", calendar, "err", err)
		rng, freq = datelabel.DateRange{}, datelabel.DateFrequency{}
	}
	return datamodel.NewTime(name, units, calendar, rng, freq), nil
}

func attrString(attrs api.AttributeMap, key string) string {
	if attrs == nil {
		return ""
	}
	v, ok := attrs.Get(key)
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	}
	return ""
}

// varFloats reads all values of a numeric variable as float64. Scalar
// variables yield one value.
func varFloats(vg api.VarGetter) ([]float64, error) {
	v, err := vg.Values()
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case []float64:
		return v, nil
	case []float32:
		return convert(v), nil
	case []int64:
		return convert(v), nil
	case []int32:
		return convert(v), nil
	case []int16:
		return convert(v), nil
	case []int8:
		return convert(v), nil
	case []uint64:
		return convert(v), nil
	case []uint32:
		return convert(v), nil
	case []uint16:
		return convert(v), nil
	case []uint8:
		return convert(v), nil
	case float64:
		return []float64{v}, nil
	case float32:
		return []float64{float64(v)}, nil
	case int64:
		return []float64{float64(v)}, nil
	case int32:
		return []float64{float64(v)}, nil
	case int16:
		return []float64{float64(v)}, nil
	case int8:
		return []float64{float64(v)}, nil
	case uint64:
		return []float64{float64(v)}, nil
	case uint32:
		return []float64{float64(v)}, nil
	case uint16:
		return []float64{float64(v)}, nil
	case uint8:
		return []float64{float64(v)}, nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}

func convert[T int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32](in []T) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = float64(x)
	}
	return out
}
