package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/confl-lang/confl/lang"
	"github.com/confl-lang/confl/log"
)

// Convert converts a source file into a serialized value document.
type Convert struct {
	Input  string `default:"-"    help:"Input source file or '-' for stdin" short:"i"`
	Format string `default:"yaml" help:"Output format"                      enum:"yaml,json"`
	Indent int    `default:"2"    help:"Indentation width for JSON output"`

	out io.Writer
}

// Run executes the convert command.
func (c *Convert) Run(ctx context.Context) error {
	src, err := readSource(c.Input)
	if err != nil {
		return err
	}

	doc, err := lang.Convert(ctx, src, lang.WithLogger(log.Default()))
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("input", c.Input))
	}

	w := c.out
	if w == nil {
		w = os.Stdout
	}

	if c.Format == "json" {
		return lang.EncodeJSON(w, doc, c.Indent)
	}

	return lang.EncodeYAML(ctx, w, doc)
}
