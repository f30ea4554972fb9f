package platform

import (
	"errors"

	"github.com/MihirLuthra/ckv-file-parser/pkg/adapters/fs"
	"github.com/MihirLuthra/ckv-file-parser/pkg/core"
)

// New builds a Service bound to the ckv file at path.
//
//	svc, err := ckv.New("config.ckv", ckv.WithAllowMissing(true))
func New(path string, opts ...Option) (*core.Service, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}
	return core.NewService(repo), nil
}

// Init builds the repository alone, for callers that want to skip the
// service layer.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	if path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return fs.NewRepository(fs.Config{
		Path:         path,
		AllowMissing: o.allowMissing,
		ParseOpts:    o.parseOpts,
		Logger:       o.logger,
	}), nil
}
