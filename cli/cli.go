package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/confl-lang/confl/cli/cmd"
	"github.com/confl-lang/confl/pkg"
)

// CLI is the top-level command-line interface for confl.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"v"`

	Convert cmd.Convert `cmd:"" default:"withargs" help:"Convert a source file to YAML or JSON"`
	Check   cmd.Check   `cmd:""                    help:"Parse and validate a source file"`
	Fmt     cmd.Fmt     `cmd:""                    help:"Reprint a source file in canonical form"`
}

// Run executes the confl CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Vars{"version": pkg.Version()},
		kong.ExplicitGroups([]kong.Group{cli.Log.group(), cli.Pprof.group()}),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed flag values.
	cli.Log.start(ctx)

	// No-op unless built with tag pprof and enabled with --pprof-mode.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
