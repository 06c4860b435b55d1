package cmd

import (
	"context"
	"log/slog"

	"github.com/confl-lang/confl/lang"
	"github.com/confl-lang/confl/log"
)

// Check parses and builds a source file without emitting the document.
type Check struct {
	Input string `default:"-" help:"Input source file or '-' for stdin" short:"i"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	src, err := readSource(c.Input)
	if err != nil {
		return err
	}

	doc, err := lang.Convert(ctx, src, lang.WithLogger(log.Default()))
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("input", c.Input))
	}

	log.InfoContext(ctx, "valid",
		slog.String("input", c.Input),
		slog.Int("entries", doc.Len()),
	)

	return nil
}
