package main

import (
	"errors"
	"fmt"
	"log/slog"

	ckvfile "github.com/MihirLuthra/ckv-file-parser"
	"github.com/MihirLuthra/ckv-file-parser/pkg/ckv"
)

// newService binds a service to the file named by --file, applying the
// strict modes selected via flags or config.
func newService(allowMissing bool) (*ckvfile.Service, error) {
	return ckvfile.New(flagFile,
		ckvfile.WithLogger(slog.Default()),
		ckvfile.WithAllowMissing(allowMissing),
		ckvfile.WithStrictKeys(strictKeys),
		ckvfile.WithBlankTermination(blankCloses),
	)
}

// parseOptions mirrors the service strict modes for commands that parse
// files directly.
func parseOptions(keysOnly bool) []ckv.Option {
	var opts []ckv.Option
	if keysOnly || strictKeys {
		opts = append(opts, ckv.RequireEmptyValues())
	}
	if blankCloses {
		opts = append(opts, ckv.BlankTerminatesValues())
	}
	return opts
}

// cliError prefixes syntax errors with the file they came from, giving
// the "path: line N: message" report shape. FileOpenError already names
// its path, so it passes through untouched.
func cliError(path string, err error) error {
	var perr *ckv.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return err
}
