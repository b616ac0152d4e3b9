// Package datamodel describes the dimensional structure of gridded
// geophysical variables following the CF metadata conventions: coordinate
// variables, the axes they stand for, and how they attach to a variable.
package datamodel

import (
	"fmt"
	"strings"
)

// Axis is the role a coordinate plays in a variable's grid.
type Axis int

const (
	AxisOther Axis = iota
	AxisX
	AxisY
	AxisZ
	AxisT
	AxisBounds
)

// SpatiotemporalAxes lists the physical axes in canonical order.
var SpatiotemporalAxes = [...]Axis{AxisX, AxisY, AxisZ, AxisT}

var axisNames = map[Axis]string{
	AxisX:      "X",
	AxisY:      "Y",
	AxisZ:      "Z",
	AxisT:      "T",
	AxisBounds: "BOUNDS",
	AxisOther:  "OTHER",
}

// ParseAxis parses an axis name such as the value of a CF "axis" attribute.
func ParseAxis(s string) (Axis, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for a, name := range axisNames {
		if name == s {
			return a, nil
		}
	}
	return AxisOther, fmt.Errorf("unknown axis %q", s)
}

// IsSpatiotemporal reports whether a is one of X, Y, Z or T.
func (a Axis) IsSpatiotemporal() bool {
	switch a {
	case AxisX, AxisY, AxisZ, AxisT:
		return true
	}
	return false
}

func (a Axis) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}
