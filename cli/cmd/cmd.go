// Package cmd implements the confl subcommands.
package cmd

import (
	"io"
	"os"

	"github.com/confl-lang/confl/lang"
)

// readSource reads the named input file, or stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", lang.ErrReadInput.Wrap(err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", lang.ErrReadInput.Wrap(err)
	}

	return string(data), nil
}
