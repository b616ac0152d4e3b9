// Package ncmeta reads the coordinate structure of CF-conforming netCDF
// files into datamodel values.
package ncmeta

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"

	"github.com/rtm0/cfmeta/internal/config"
	"github.com/rtm0/cfmeta/internal/datamodel"
)

// Reader classifies the coordinate variables of a netCDF group once and
// assembles data variables on request.
type Reader struct {
	logger *slog.Logger
	nc     api.Group
	rules  config.Rules

	names  []string
	coords map[string]datamodel.Coordinate // by dimension name
	bounds map[string]*datamodel.CoordinateBounds
	// skip holds variables that are not data variables: coordinates,
	// bounds, formula terms and names listed in "coordinates" attributes.
	skip map[string]bool
}

// Open opens a netCDF file and reads its coordinates.
func Open(logger *slog.Logger, filePath string, rules config.Rules) (*Reader, error) {
	nc, err := netcdf.Open(filePath)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(logger, nc, rules)
	if err != nil {
		nc.Close()
		return nil, err
	}
	return r, nil
}

// NewReader reads the coordinates of an open group. The Reader takes
// ownership of nc.
func NewReader(logger *slog.Logger, nc api.Group, rules config.Rules) (*Reader, error) {
	r := &Reader{
		logger: logger,
		nc:     nc,
		rules:  rules,
		names:  nc.ListVariables(),
		coords: make(map[string]datamodel.Coordinate),
		bounds: make(map[string]*datamodel.CoordinateBounds),
		skip:   make(map[string]bool),
	}
	sort.Strings(r.names)
	for _, name := range r.names {
		vg, err := nc.GetVarGetter(name)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		dims := vg.Dimensions()
		if len(dims) != 1 || dims[0] != name {
			r.noteReferences(vg)
			continue
		}
		c, err := r.classify(name, vg)
		if err != nil {
			return nil, fmt.Errorf("coordinate %s: %w", name, err)
		}
		r.coords[name] = c
		r.skip[name] = true
		r.noteReferences(vg)
	}
	for _, name := range r.names {
		c, ok := r.coords[name]
		if !ok {
			continue
		}
		if err := r.linkBounds(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// noteReferences marks the variables vg's attributes point at.
func (r *Reader) noteReferences(vg api.VarGetter) {
	attrs := vg.Attributes()
	if b := attrString(attrs, "bounds"); b != "" {
		r.skip[b] = true
	}
	for _, term := range formulaTermVars(attrString(attrs, "formula_terms")) {
		r.skip[term] = true
	}
	for _, c := range strings.Fields(attrString(attrs, "coordinates")) {
		r.skip[c] = true
	}
}

// formulaTermVars returns the variable names of "term: var term: var ...".
func formulaTermVars(terms string) []string {
	var vars []string
	for _, f := range strings.Fields(terms) {
		if !strings.HasSuffix(f, ":") {
			vars = append(vars, f)
		}
	}
	return vars
}

func (r *Reader) linkBounds(c datamodel.Coordinate) error {
	vg, err := r.nc.GetVarGetter(c.Name())
	if err != nil {
		return err
	}
	name := attrString(vg.Attributes(), "bounds")
	if name == "" {
		return nil
	}
	bvg, err := r.nc.GetVarGetter(name)
	if err != nil {
		r.logger.Warn("Missing bounds variable", "coord", c.Name(), "bounds", name, "err", err)
		return nil
	}
	dims := bvg.Dimensions()
	if len(dims) != 2 || dims[0] != c.Name() {
		r.logger.Warn("Unexpected bounds dimensions", "coord", c.Name(), "bounds", name, "dims", dims)
		return nil
	}
	b, err := datamodel.BoundsFromCoordinateName(c, dims[1])
	if err != nil {
		return fmt.Errorf("bounds %s of %s: %w", name, c.Name(), err)
	}
	r.bounds[name] = b
	return nil
}

// Close closes the underlying file.
func (r *Reader) Close() {
	r.nc.Close()
}

// Coordinates returns the dimension coordinates sorted by name.
func (r *Reader) Coordinates() []datamodel.Coordinate {
	out := make([]datamodel.Coordinate, 0, len(r.coords))
	for _, name := range r.names {
		if c, ok := r.coords[name]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Bounds returns the bounds read for the named bounds variable.
func (r *Reader) Bounds(name string) (*datamodel.CoordinateBounds, bool) {
	b, ok := r.bounds[name]
	return b, ok
}

// Summary returns the summary information about the file suitable for
// logging.
func (r *Reader) Summary() []any {
	axes := make(map[string][]string)
	var coordNames []string
	for _, c := range r.Coordinates() {
		coordNames = append(coordNames, c.Name())
		axes[c.Axis().String()] = append(axes[c.Axis().String()], c.Name())
	}
	return []any{
		"coords", coordNames,
		"X", axes["X"],
		"Y", axes["Y"],
		"Z", axes["Z"],
		"T", axes["T"],
		"bounds", len(r.bounds),
		"dataVars", len(r.dataVarNames()),
	}
}

func (r *Reader) dataVarNames() []string {
	var names []string
	for _, name := range r.names {
		if !r.skip[name] {
			names = append(names, name)
		}
	}
	return names
}

// Variables assembles every data variable, sorted by name.
func (r *Reader) Variables() ([]*datamodel.Variable, error) {
	var vars []*datamodel.Variable
	for _, name := range r.dataVarNames() {
		v, err := r.Variable(name)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// Variable assembles the named variable: its dimension coordinates, the
// scalar coordinates and auxiliary coordinates listed in its "coordinates"
// attribute.
func (r *Reader) Variable(name string) (*datamodel.Variable, error) {
	vg, err := r.nc.GetVarGetter(name)
	if err != nil {
		return nil, fmt.Errorf("variable %s: %w", name, err)
	}
	attrs := vg.Attributes()

	var dims []datamodel.Coordinate
	for _, d := range vg.Dimensions() {
		dims = append(dims, r.dimCoord(d))
	}

	var (
		scalars []datamodel.ScalarCoordinate
		aux     []*datamodel.AuxiliaryCoordinate
	)
	for _, cname := range strings.Fields(attrString(attrs, "coordinates")) {
		if _, ok := r.coords[cname]; ok {
			continue
		}
		cvg, err := r.nc.GetVarGetter(cname)
		if err != nil {
			r.logger.Warn("Missing coordinate variable", "var", name, "coord", cname, "err", err)
			continue
		}
		if len(cvg.Dimensions()) == 0 {
			s, err := r.scalarCoord(cname, cvg)
			if err != nil {
				return nil, fmt.Errorf("variable %s: scalar coordinate %s: %w", name, cname, err)
			}
			scalars = append(scalars, s)
			continue
		}
		a, err := r.auxCoord(cname, cvg)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		aux = append(aux, a)
	}

	v, err := datamodel.NewVariable(name, attrString(attrs, "standard_name"), attrString(attrs, "units"), dims, scalars...)
	if err != nil {
		return nil, err
	}
	if len(aux) > 0 {
		v = v.WithAuxCoords(aux...)
	}
	return v, nil
}

// dimCoord returns the coordinate of dimension d. Dimensions without a
// coordinate variable get a generic coordinate, created once.
func (r *Reader) dimCoord(d string) datamodel.Coordinate {
	if c, ok := r.coords[d]; ok {
		return c
	}
	c := datamodel.NewGeneric(d, "", "", datamodel.AxisOther)
	r.coords[d] = c
	return c
}

func (r *Reader) scalarCoord(name string, vg api.VarGetter) (datamodel.ScalarCoordinate, error) {
	c, err := r.classify(name, vg)
	if err != nil {
		return nil, err
	}
	values, err := varFloats(vg)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("expected one value, got %d", len(values))
	}
	if _, ok := c.(datamodel.VerticalCoordinate); ok {
		return datamodel.NewScalar[datamodel.VerticalCoordinate](c, values[0])
	}
	return datamodel.NewScalar[datamodel.Coordinate](c, values[0])
}

func (r *Reader) auxCoord(name string, vg api.VarGetter) (*datamodel.AuxiliaryCoordinate, error) {
	var dims []datamodel.Coordinate
	for _, d := range vg.Dimensions() {
		dims = append(dims, r.dimCoord(d))
	}
	attrs := vg.Attributes()
	return datamodel.NewAuxiliaryCoordinate(name, attrString(attrs, "standard_name"), attrString(attrs, "units"), dims)
}
