package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/MihirLuthra/ckv-file-parser/pkg/ckv"
	"github.com/MihirLuthra/ckv-file-parser/pkg/core"
)

// Repository implements core.Repository on a single ckv file.
//
// Every operation re-reads and re-parses the file from scratch, so a
// successful result always reflects the bytes on disk at call time.
// Mutations buffer the rewritten document fully and replace the file
// atomically; on any failure the original file is left untouched.
type Repository struct {
	Path   string
	config Config
	logger *slog.Logger
}

// Config holds the configuration for the file repository.
type Config struct {
	Path string

	// AllowMissing treats a missing file as an empty document instead
	// of failing with FileOpenError. Useful when the first SetValue is
	// expected to create the file.
	AllowMissing bool

	// ParseOpts are applied on every read (strict modes).
	ParseOpts []ckv.Option

	Logger *slog.Logger
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		Path:   config.Path,
		config: config,
		logger: logger,
	}
}

// FileOpenError is returned when the ckv file cannot be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("failed to open file %s", e.Path)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// load re-reads and re-parses the whole file.
func (r *Repository) load(ctx context.Context) (*ckv.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.Path)
	if err != nil {
		if os.IsNotExist(err) && r.config.AllowMissing {
			return ckv.NewDocument(), nil
		}
		return nil, &FileOpenError{Path: r.Path, Err: err}
	}
	defer f.Close()

	return ckv.Parse(f, r.config.ParseOpts...)
}

// flush replaces the file with the rendered document. The write goes to
// a temp file first and lands via rename, so readers never observe a
// partially written document.
func (r *Repository) flush(doc *ckv.Document) error {
	if err := writeFileAtomic(r.Path, []byte(doc.String()), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Map parses the whole file into its key to value mapping.
func (r *Repository) Map(ctx context.Context) (map[string]string, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Map(), nil
}

// Value returns the value stored under key.
func (r *Repository) Value(ctx context.Context, key string) (string, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return "", err
	}
	return doc.Value(key)
}

// Entries returns every entry in document order.
func (r *Repository) Entries(ctx context.Context) ([]core.Entry, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Entries(), nil
}

// SetValue replaces key's value in place, or appends a new entry at the
// end of the file, then rewrites the whole file.
func (r *Repository) SetValue(ctx context.Context, key, value string) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := doc.Set(key, value); err != nil {
		return err
	}
	r.logger.Debug("rewriting file", "path", r.Path, "key", key)
	return r.flush(doc)
}

// RemoveKey drops key's entry and rewrites the whole file. If the key
// is absent the file is not touched.
func (r *Repository) RemoveKey(ctx context.Context, key string) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := doc.Remove(key); err != nil {
		return err
	}
	r.logger.Debug("rewriting file", "path", r.Path, "key", key)
	return r.flush(doc)
}
