package weather

import (
	"context"
	"fmt"
)

// Service coordinates the provider fetch with the shared store.
type Service struct {
	store    Store
	provider Provider
}

// NewService creates a new Service.
func NewService(store Store, provider Provider) *Service {
	return &Service{
		store:    store,
		provider: provider,
	}
}

// Refresh fetches the current records, commits them to the store, and
// returns the store contents as of after the commit. On fetch failure the
// store is left untouched.
//
// The result is read back through the store rather than taken from the
// fetched slice, so the response always reflects the latest committed fetch
// under concurrent refreshes. Last writer wins.
func (s *Service) Refresh(ctx context.Context) ([]Record, error) {
	records, err := s.provider.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}

	s.store.Replace(records)
	return s.store.Snapshot(), nil
}
