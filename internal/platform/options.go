package platform

import (
	"log/slog"

	"github.com/MihirLuthra/ckv-file-parser/pkg/ckv"
	"github.com/MihirLuthra/ckv-file-parser/pkg/core"
)

// options holds the internal configuration for the ckv service.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	allowMissing bool
	parseOpts    []ckv.Option
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAllowMissing treats a missing file as an empty document instead of
// failing with FileOpenError, so the first SetValue creates the file.
func WithAllowMissing(allow bool) Option {
	return func(o *options) {
		o.allowMissing = allow
	}
}

// WithStrictKeys makes every read reject key lines that carry a value
// after '=' (key-existence mode).
func WithStrictKeys(strict bool) Option {
	return func(o *options) {
		if strict {
			o.parseOpts = append(o.parseOpts, ckv.RequireEmptyValues())
		}
	}
}

// WithBlankTermination makes a blank line close the open entry on every
// read, so continuation lines cannot resume after a blank.
func WithBlankTermination(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.parseOpts = append(o.parseOpts, ckv.BlankTerminatesValues())
		}
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock,
// in-memory). If provided, the default file adapter is skipped and the
// path argument is ignored.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
