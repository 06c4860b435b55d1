//go:build pprof

package cli

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"

	"github.com/confl-lang/confl/log"
)

type pprofConfig struct {
	Mode string `default:""  enum:",cpu,mem,alloc,block,mutex,goroutine" help:"Enable profiling"         placeholder:"${enum}"`
	Dir  string `default:"." help:"Profile output directory"                                   type:"path"`
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if configured.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	opts := []func(*profile.Profile){
		profile.ProfilePath(f.Dir),
		profile.Quiet,
	}

	switch f.Mode {
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	case "alloc":
		opts = append(opts, profile.MemProfileAllocs)
	case "block":
		opts = append(opts, profile.BlockProfile)
	case "mutex":
		opts = append(opts, profile.MutexProfile)
	case "goroutine":
		opts = append(opts, profile.GoroutineProfile)
	}

	log.DebugContext(ctx, "pprof start",
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)

	profiler := profile.Start(opts...)

	return func() {
		log.DebugContext(ctx, "pprof stop",
			slog.String("mode", f.Mode),
			slog.String("dir", f.Dir),
		)
		profiler.Stop()
	}
}
