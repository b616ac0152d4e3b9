package hash

import "testing"

type point struct {
	name string
	x, y float64
}

func TestSum64Deterministic(t *testing.T) {
	a := point{"a", 1, 2}
	b := point{"a", 1, 2}
	if Sum64(a) != Sum64(b) {
		t.Errorf("equal values hash differently: %x, %x", Sum64(a), Sum64(b))
	}
	if Sum64(a) == Sum64(point{"a", 2, 1}) {
		t.Error("different values share a hash")
	}
}

func TestSum64MapOrder(t *testing.T) {
	m1 := map[string]int{"x": 1, "y": 2, "z": 3}
	m2 := map[string]int{"z": 3, "y": 2, "x": 1}
	if Sum64(m1) != Sum64(m2) {
		t.Error("map hash depends on insertion order")
	}
}
