package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rtm0/cfmeta/internal/datamodel"
)

type coordView struct {
	Name         string       `json:"name"`
	Variant      string       `json:"variant"`
	StandardName string       `json:"standard_name,omitempty"`
	Units        string       `json:"units,omitempty"`
	Axis         string       `json:"axis"`
	Bounds       string       `json:"bounds,omitempty"`
	Value        *reportFloat `json:"value,omitempty"`
	Calendar     string       `json:"calendar,omitempty"`
	Range        string       `json:"range,omitempty"`
	Frequency    string       `json:"frequency,omitempty"`
	Hash         string       `json:"hash"`
}

func newCoordView(c datamodel.Coordinate) coordView {
	v := coordView{
		Name:         c.Name(),
		Variant:      datamodel.VariantName(c),
		StandardName: c.StandardName(),
		Units:        c.Units(),
		Axis:         c.Axis().String(),
		Hash:         fmt.Sprintf("%016x", datamodel.Hash(c)),
	}
	if b := c.Bounds(); b != nil {
		v.Bounds = b.Name()
	}
	if s, ok := c.(datamodel.ScalarCoordinate); ok {
		value := reportFloat(s.Value())
		v.Value = &value
		c = s.Base()
	}
	if t, ok := c.(*datamodel.Time); ok {
		v.Calendar = t.Calendar()
		v.Range = t.Range().String()
		if !t.Frequency().IsZero() {
			v.Frequency = t.Frequency().String()
		}
	}
	return v
}

// reportFloat is a float64 written as a JSON string when it is NaN or
// infinite, e.g. a scalar coordinate holding a fill value.
type reportFloat float64

func (f reportFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func (f *reportFloat) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = reportFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = reportFloat(v)
	return nil
}

type auxView struct {
	Name         string   `json:"name"`
	StandardName string   `json:"standard_name,omitempty"`
	Units        string   `json:"units,omitempty"`
	Dims         []string `json:"dims"`
}

type variableView struct {
	Name         string            `json:"name"`
	StandardName string            `json:"standard_name,omitempty"`
	Units        string            `json:"units,omitempty"`
	Dims         []coordView       `json:"dims"`
	Scalars      []coordView       `json:"scalar_coords,omitempty"`
	AuxCoords    []auxView         `json:"aux_coords,omitempty"`
	Axes         map[string]string `json:"axes"`
	PhysAxes     map[string]string `json:"phys_axes"`
	Static       bool              `json:"static"`
}

func newVariableView(v *datamodel.Variable) variableView {
	out := variableView{
		Name:         v.Name(),
		StandardName: v.StandardName(),
		Units:        v.Units(),
		Axes:         axisNames(v.Axes()),
		PhysAxes:     axisNames(v.PhysAxes()),
		Static:       v.IsStatic(),
	}
	for _, c := range v.Dims() {
		out.Dims = append(out.Dims, newCoordView(c))
	}
	for _, s := range v.ScalarCoords() {
		out.Scalars = append(out.Scalars, newCoordView(s))
	}
	for _, a := range v.AuxCoords() {
		av := auxView{Name: a.Name(), StandardName: a.StandardName(), Units: a.Units()}
		for _, c := range a.Dims() {
			av.Dims = append(av.Dims, c.Name())
		}
		out.AuxCoords = append(out.AuxCoords, av)
	}
	return out
}

// axisNames maps every spatiotemporal axis to the name of its coordinate,
// or "" when the axis is absent.
func axisNames(m map[datamodel.Axis]datamodel.Coordinate) map[string]string {
	out := make(map[string]string, len(datamodel.SpatiotemporalAxes))
	for _, a := range datamodel.SpatiotemporalAxes {
		name := ""
		if c := m[a]; c != nil {
			name = c.Name()
		}
		out[a.String()] = name
	}
	return out
}

func writeReport(w io.Writer, format string, vars []*datamodel.Variable) error {
	views := make([]variableView, 0, len(vars))
	for _, v := range vars {
		views = append(views, newVariableView(v))
	}
	switch format {
	case "json":
		return writeJSON(w, views)
	case "text":
		return writeText(w, views)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func writeJSON(w io.Writer, views []variableView) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

func writeText(w io.Writer, views []variableView) error {
	var sb strings.Builder
	for i, v := range views {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s (standard_name=%q, units=%q)\n", v.Name, v.StandardName, v.Units)
		fmt.Fprintf(&sb, "  static: %t\n", v.Static)
		fmt.Fprintf(&sb, "  axes:   %s\n", axisLine(v.Axes))
		fmt.Fprintf(&sb, "  phys:   %s\n", axisLine(v.PhysAxes))
		for _, c := range v.Dims {
			fmt.Fprintf(&sb, "  dim     %s\n", coordLine(c))
		}
		for _, c := range v.Scalars {
			fmt.Fprintf(&sb, "  scalar  %s\n", coordLine(c))
		}
		for _, a := range v.AuxCoords {
			fmt.Fprintf(&sb, "  aux     %s(%s) standard_name=%q units=%q\n", a.Name, strings.Join(a.Dims, ", "), a.StandardName, a.Units)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func axisLine(m map[string]string) string {
	parts := make([]string, 0, len(datamodel.SpatiotemporalAxes))
	for _, a := range datamodel.SpatiotemporalAxes {
		name := m[a.String()]
		if name == "" {
			name = "-"
		}
		parts = append(parts, a.String()+"="+name)
	}
	return strings.Join(parts, " ")
}

func coordLine(c coordView) string {
	s := fmt.Sprintf("%s %s axis=%s", c.Variant, c.Name, c.Axis)
	if c.StandardName != "" {
		s += fmt.Sprintf(" standard_name=%q", c.StandardName)
	}
	if c.Units != "" {
		s += fmt.Sprintf(" units=%q", c.Units)
	}
	if c.Value != nil {
		s += fmt.Sprintf(" value=%g", float64(*c.Value))
	}
	if c.Bounds != "" {
		s += " bounds=" + c.Bounds
	}
	if c.Range != "" {
		s += " range=" + c.Range
	}
	if c.Frequency != "" {
		s += " frequency=" + c.Frequency
	}
	if c.Calendar != "" {
		s += " calendar=" + c.Calendar
	}
	return s
}
