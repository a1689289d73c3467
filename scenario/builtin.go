package scenario

import (
	_ "embed"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns a fresh copy of the built-in scenario table.
// It panics if the embedded table is invalid, which the package tests rule out.
func Builtin() []Scenario {
	list, err := Parse(builtinYAML)
	if err != nil {
		panic(err)
	}

	return list
}
