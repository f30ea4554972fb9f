package ckv

import (
	"context"
	"log/slog"

	"github.com/MihirLuthra/ckv-file-parser/internal/platform"
	"github.com/MihirLuthra/ckv-file-parser/pkg/core"
)

// Version exposes the version of the library.
const Version = "1.0.0"

// --- Types ---

// Entry is a public alias for the domain entry type.
type Entry = core.Entry

// Service is a public alias for the domain service.
type Service = core.Service

// Event is a public alias for the watch event type.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring ckv.
type Option = platform.Option

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithAllowMissing treats a missing file as an empty document, so the
// first SetValue creates it.
func WithAllowMissing(allow bool) Option {
	return platform.WithAllowMissing(allow)
}

// WithStrictKeys makes every read reject key lines that carry a value
// after '=' (key-existence mode).
func WithStrictKeys(strict bool) Option {
	return platform.WithStrictKeys(strict)
}

// WithBlankTermination makes a blank line close the open entry on every
// read.
func WithBlankTermination(enabled bool) Option {
	return platform.WithBlankTermination(enabled)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// --- Factory ---

// New creates a Service bound to the ckv file at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init creates the repository alone, for callers that want to skip the
// service layer.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- One-shot operations ---

// ImportToMap fully parses the file at path into a key to value mapping.
func ImportToMap(path string, opts ...Option) (map[string]string, error) {
	svc, err := New(path, opts...)
	if err != nil {
		return nil, err
	}
	return svc.ImportToMap(context.Background())
}

// GetValueForKey returns the value stored under key in the file at path.
func GetValueForKey(path, key string, opts ...Option) (string, error) {
	svc, err := New(path, opts...)
	if err != nil {
		return "", err
	}
	return svc.GetValue(context.Background(), key)
}

// SetValueForKey creates or replaces key's value in the file at path,
// rewriting the file while leaving every other entry byte for byte
// intact.
func SetValueForKey(path, key, value string, opts ...Option) error {
	svc, err := New(path, opts...)
	if err != nil {
		return err
	}
	return svc.SetValue(context.Background(), key, value)
}

// RemoveKey drops key's entry from the file at path. The entry's key
// line and all of its continuation lines are removed, nothing else.
func RemoveKey(path, key string, opts ...Option) error {
	svc, err := New(path, opts...)
	if err != nil {
		return err
	}
	return svc.RemoveKey(context.Background(), key)
}
