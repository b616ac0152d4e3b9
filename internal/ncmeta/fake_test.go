package ncmeta

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// fakeAttrs is an in-memory api.AttributeMap.
type fakeAttrs struct {
	keys []string
	vals map[string]interface{}
}

func attrs(kv ...string) *fakeAttrs {
	a := &fakeAttrs{vals: make(map[string]interface{})}
	for i := 0; i+1 < len(kv); i += 2 {
		a.keys = append(a.keys, kv[i])
		a.vals[kv[i]] = kv[i+1]
	}
	return a
}

func (a *fakeAttrs) Keys() []string { return a.keys }

func (a *fakeAttrs) Get(key string) (interface{}, bool) {
	v, ok := a.vals[key]
	return v, ok
}

func (a *fakeAttrs) GetType(key string) (string, bool) {
	if _, ok := a.vals[key]; !ok {
		return "", false
	}
	return "string", true
}

func (a *fakeAttrs) GetGoType(key string) (string, bool) {
	return a.GetType(key)
}

// fakeVar is an in-memory api.VarGetter.
type fakeVar struct {
	dims   []string
	attrs  *fakeAttrs
	values interface{}
}

func (v *fakeVar) Len() int64 {
	rv := reflect.ValueOf(v.values)
	if rv.Kind() == reflect.Slice {
		return int64(rv.Len())
	}
	return 1
}

func (v *fakeVar) Values() (interface{}, error) {
	if v.values == nil {
		return nil, fmt.Errorf("no values")
	}
	return v.values, nil
}

func (v *fakeVar) GetSlice(begin, end int64) (interface{}, error) {
	rv := reflect.ValueOf(v.values)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("not a slice")
	}
	return rv.Slice(int(begin), int(end)).Interface(), nil
}

func (v *fakeVar) Dimensions() []string         { return v.dims }
func (v *fakeVar) Attributes() api.AttributeMap { return v.attrs }
func (v *fakeVar) Type() string                 { return "double" }
func (v *fakeVar) GoType() string               { return "float64" }

var _ api.Group = (*fakeGroup)(nil)

// fakeGroup is an in-memory api.Group.
type fakeGroup struct {
	order  []string
	vars   map[string]*fakeVar
	closed bool
}

func newFakeGroup() *fakeGroup {
	return &fakeGroup{vars: make(map[string]*fakeVar)}
}

func (g *fakeGroup) add(name string, dims []string, a *fakeAttrs, values interface{}) *fakeGroup {
	if a == nil {
		a = attrs()
	}
	g.order = append(g.order, name)
	g.vars[name] = &fakeVar{dims: dims, attrs: a, values: values}
	return g
}

func (g *fakeGroup) Close()                       { g.closed = true }
func (g *fakeGroup) Attributes() api.AttributeMap { return attrs() }
func (g *fakeGroup) ListVariables() []string      { return append([]string(nil), g.order...) }

func (g *fakeGroup) GetVariable(name string) (*api.Variable, error) {
	v, ok := g.vars[name]
	if !ok {
		return nil, fmt.Errorf("variable %s not found", name)
	}
	return &api.Variable{Values: v.values, Dimensions: v.dims, Attributes: v.attrs}, nil
}

func (g *fakeGroup) GetVarGetter(name string) (api.VarGetter, error) {
	v, ok := g.vars[name]
	if !ok {
		return nil, fmt.Errorf("variable %s not found", name)
	}
	return v, nil
}

func (g *fakeGroup) ListDimensions() []string {
	var dims []string
	seen := make(map[string]bool)
	for _, name := range g.order {
		for _, d := range g.vars[name].dims {
			if !seen[d] {
				seen[d] = true
				dims = append(dims, d)
			}
		}
	}
	return dims
}

// GetDimension returns the length of the coordinate variable named like the
// dimension, or 0 when the dimension has none.
func (g *fakeGroup) GetDimension(name string) (uint64, bool) {
	if v, ok := g.vars[name]; ok && len(v.dims) == 1 && v.dims[0] == name {
		return uint64(v.Len()), true
	}
	for _, d := range g.ListDimensions() {
		if d == name {
			return 0, true
		}
	}
	return 0, false
}

func (g *fakeGroup) ListSubgroups() []string                  { return nil }
func (g *fakeGroup) GetGroup(group string) (api.Group, error) { return nil, fmt.Errorf("no group %s", group) }
func (g *fakeGroup) ListTypes() []string                      { return nil }
func (g *fakeGroup) GetType(string) (string, bool)            { return "", false }
func (g *fakeGroup) GetGoType(string) (string, bool)          { return "", false }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
