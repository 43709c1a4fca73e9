package dict

import (
	"bytes"

	_ "embed"
)

//go:embed seed.dict
var seedDict []byte

// Builtin returns the embedded seed dictionary: a small set of very common
// English words so the tool works out of the box without a full cmudict
// file. Everything else falls through to the fallback generator.
func Builtin() *Dictionary {
	d, err := Load(bytes.NewReader(seedDict))
	if err != nil {
		// The seed ships inside the binary; a parse failure is a build
		// defect, not a runtime condition.
		panic("dict: embedded seed dictionary is invalid: " + err.Error())
	}
	return d
}
