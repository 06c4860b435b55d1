// Package cli declares the confl command-line interface. Flags and
// subcommands are described declaratively on the [CLI] struct and parsed
// with kong; each subcommand lives in the cmd subpackage.
//
// Converted documents are written to stdout. Logging and error messages go
// to stderr, and any failure produces a non-zero exit status.
package cli
