package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
)

// ProjectStore caches the project list for the life of the process. Writes go
// through the gateway and then re-fetch the canonical list; local state is
// never patched optimistically. The one exception is Delete, which filters
// the removed id out of the cache directly.
type ProjectStore struct {
	client *api.Client
	logger *zap.Logger

	mu       sync.RWMutex
	projects []model.Project
	loading  bool
}

func NewProjectStore(client *api.Client, logger *zap.Logger) *ProjectStore {
	return &ProjectStore{
		client:  client,
		logger:  logger,
		loading: true,
	}
}

// Refresh replaces the cache wholesale from the server. Fetch failures are
// logged and swallowed here so a background refresh cannot take down a view;
// the previous cache contents are retained. Loading flips false in all cases.
func (s *ProjectStore) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	projects, err := s.client.Projects.List(ctx)
	if err != nil {
		s.logger.Error("failed to refresh projects", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
}

// Add creates the project then pulls the canonical list; the create response
// is discarded rather than merged locally. Creation errors propagate; a
// refresh failure after a successful write is swallowed by Refresh.
func (s *ProjectStore) Add(ctx context.Context, payload api.ProjectCreate) error {
	if _, err := s.client.Projects.Create(ctx, payload); err != nil {
		s.logger.Error("failed to create project", zap.Error(err))
		return err
	}
	s.Refresh(ctx)
	return nil
}

func (s *ProjectStore) Update(ctx context.Context, id string, patch api.ProjectPatch) error {
	if err := s.client.Projects.Update(ctx, id, patch); err != nil {
		s.logger.Error("failed to update project", zap.String("project_id", id), zap.Error(err))
		return err
	}
	s.Refresh(ctx)
	return nil
}

// Delete removes the project server-side, then filters it out of the cache
// without a refetch.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Projects.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete project", zap.String("project_id", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.projects = kept
	s.mu.Unlock()
	return nil
}

// Get is a synchronous lookup against whatever was last fetched; it can be
// stale relative to a concurrent write until the next refresh lands.
func (s *ProjectStore) Get(id string) (model.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

// Projects returns a copy of the cached list.
func (s *ProjectStore) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *ProjectStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
