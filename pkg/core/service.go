package core

import (
	"context"
	"errors"
)

// Service handles the business logic for ckv documents.
type Service struct {
	repo Repository
}

// NewService creates a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ImportToMap fully parses the source into a key to value mapping.
func (s *Service) ImportToMap(ctx context.Context) (map[string]string, error) {
	return s.repo.Map(ctx)
}

// GetValue retrieves the value stored under key.
func (s *Service) GetValue(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	return s.repo.Value(ctx, key)
}

// GetRequiredValue retrieves the value stored under key and rejects
// entries whose value is the empty string.
func (s *Service) GetRequiredValue(ctx context.Context, key string) (string, error) {
	val, err := s.GetValue(ctx, key)
	if err != nil {
		return "", err
	}
	if val == "" {
		return "", &NoValueForKeyError{Key: key}
	}
	return val, nil
}

// SetValue creates or replaces the value stored under key.
func (s *Service) SetValue(ctx context.Context, key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return s.repo.SetValue(ctx, key, value)
}

// RemoveKey removes key's entry from the source.
func (s *Service) RemoveKey(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.repo.RemoveKey(ctx, key)
}

// ListEntries returns every entry in document order.
func (s *Service) ListEntries(ctx context.Context) ([]Entry, error) {
	return s.repo.Entries(ctx)
}

// Watch observes changes of the source if the repository supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}
