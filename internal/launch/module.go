// Package launch starts the satellite processes of the suite.
package launch

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownModule is returned for module names other than node and model.
var ErrUnknownModule = errors.New("unknown module")

// Module names a satellite application.
type Module string

// Satellite modules.
const (
	ModuleNode  Module = "node"
	ModuleModel Module = "model"
)

// Modules returns the launchable modules in home screen order.
func Modules() []Module {
	return []Module{ModuleNode, ModuleModel}
}

// ParseModule parses a module name case-insensitively.
func ParseModule(s string) (Module, error) {
	switch m := Module(strings.ToLower(strings.TrimSpace(s))); m {
	case ModuleNode, ModuleModel:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (want node or model)", ErrUnknownModule, s)
	}
}

// Binary returns the executable name of the module for goos.
func (m Module) Binary(goos string) string {
	name := "lazo-" + string(m)
	if goos == "windows" {
		name += ".exe"
	}
	return name
}

// Label returns the upper-case label shown on the home screen.
func (m Module) Label() string {
	return cases.Upper(language.Und).String(string(m))
}
