package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/confl-lang/confl/lang"
)

// Fmt reprints a source file in canonical dialect form.
type Fmt struct {
	Input  string `default:"-" help:"Input source file or '-' for stdin" short:"i"`
	Indent int    `default:"2" help:"Indentation width"`

	out io.Writer
}

// Run executes the fmt command.
func (c *Fmt) Run(ctx context.Context) error {
	src, err := readSource(c.Input)
	if err != nil {
		return err
	}

	ast, err := lang.ParseString(ctx, src)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("input", c.Input))
	}

	w := c.out
	if w == nil {
		w = os.Stdout
	}

	return ast.Format(w, c.Indent)
}
