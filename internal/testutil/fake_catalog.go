package testutil

import (
	"context"
	"sync"

	"github.com/Belphemur/ShowSearch/internal/models"
)

// FakeCatalog is an in-memory catalog for controller and server tests.
// Calls block on Gate (when set) so tests can control response ordering.
type FakeCatalog struct {
	mu       sync.Mutex
	Shows    map[string][]models.Show
	Episodes map[int][]models.Episode
	Err      error

	// Gate, when non-nil, returns a channel per term or show ID that the call
	// waits on before answering.
	Gate func(key any) <-chan struct{}

	SearchCalls  []string
	EpisodeCalls []int
}

// NewFakeCatalog creates an empty FakeCatalog
func NewFakeCatalog() *FakeCatalog {
	return &FakeCatalog{
		Shows:    make(map[string][]models.Show),
		Episodes: make(map[int][]models.Episode),
	}
}

func (f *FakeCatalog) wait(ctx context.Context, key any) error {
	if f.Gate == nil {
		return nil
	}
	select {
	case <-f.Gate(key):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SearchShows returns the shows registered for term
func (f *FakeCatalog) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	f.mu.Lock()
	f.SearchCalls = append(f.SearchCalls, term)
	f.mu.Unlock()

	if err := f.wait(ctx, term); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]models.Show(nil), f.Shows[term]...), nil
}

// ListEpisodes returns the episodes registered for showID
func (f *FakeCatalog) ListEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	f.mu.Lock()
	f.EpisodeCalls = append(f.EpisodeCalls, showID)
	f.mu.Unlock()

	if err := f.wait(ctx, showID); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]models.Episode(nil), f.Episodes[showID]...), nil
}

// SearchCallCount returns how many searches were issued so far
func (f *FakeCatalog) SearchCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.SearchCalls)
}

// EpisodeCallCount returns how many episode listings were requested so far
func (f *FakeCatalog) EpisodeCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.EpisodeCalls)
}
