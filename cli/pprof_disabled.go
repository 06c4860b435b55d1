//go:build !pprof

package cli

import (
	"context"

	"github.com/alecthomas/kong"
)

// pprofConfig is a placeholder when built without the pprof tag.
type pprofConfig struct{}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

func (pprofConfig) start(context.Context) (stop func()) {
	return func() {}
}
