package catalog

import _ "embed"

//go:embed objectives.json
var defaultCatalog []byte

// Default returns the built-in objective catalog compiled into the binary.
// It panics on parse failure since the embedded document is fixed at build
// time and covered by tests.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("embedded catalog is invalid: " + err.Error())
	}
	return c
}
