// Package hash computes stable hashes of Go values from their canonical
// printed form.
package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/davecgh/go-spew/spew"
)

var printer = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisableMethods:          true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Sum64 returns a hash of object. Values that print identically hash
// identically, so object should not contain pointers whose identity matters.
func Sum64(object interface{}) uint64 {
	d := xxhash.New()
	printer.Fprintf(d, "%#v", object)
	return d.Sum64()
}
