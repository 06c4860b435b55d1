package cli

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/confl-lang/confl/log"
)

// logFormat configures the logger format as a side effect of flag parsing
// via encoding.TextUnmarshaler, so the chosen format already applies to
// messages emitted while later flags are still being parsed.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of flag parsing
// via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level  logLevel  `default:"info" enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format logFormat `default:"text" enum:"json,text"                   help:"Set log format."`
	Pretty bool      `default:"true"                                    help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.Bool("pretty", f.Pretty),
	)
}
