package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the confl module embedded at build
// time. It is reported by the CLI's --version flag.
//
//go:embed VERSION
var version string

// Version returns the embedded module version.
func Version() string {
	return strings.TrimSpace(version)
}

const (
	// Name is the canonical command and module identifier used across the
	// project.
	Name = "confl"
	// Description is a short, human-readable summary of the project used
	// in help output.
	Description = "Declarative configuration to YAML compiler"
)
