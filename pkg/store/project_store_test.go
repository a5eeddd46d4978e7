package store

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
)

func newProjectEnv(t *testing.T) (*env, *ProjectStore) {
	t.Helper()
	e := newEnv(t)
	e.backend.SeedUser("pm@oneflow.dev", "secret", "PM", model.RoleProjectManager)
	auth := NewAuthStore(e.client, e.tokens, zap.NewNop())
	if err := auth.Login(context.Background(), "pm@oneflow.dev", "secret"); err != nil {
		t.Fatalf("login error: %v", err)
	}
	return e, NewProjectStore(e.client, zap.NewNop())
}

func TestAddResyncsFromServer(t *testing.T) {
	_, projects := newProjectEnv(t)
	ctx := context.Background()

	err := projects.Add(ctx, api.ProjectCreate{
		Name:      "Brand Website",
		Status:    model.ProjectPlanned,
		Manager:   "PM",
		Team:      []string{"Designer"},
		StartDate: "2026-01-01",
		EndDate:   "2026-03-31",
		Budget:    100000,
	})
	if err != nil {
		t.Fatalf("add error: %v", err)
	}

	cached := projects.Projects()
	if len(cached) != 1 {
		t.Fatalf("expected 1 cached project, got %d", len(cached))
	}
	if cached[0].ID == "" {
		t.Fatal("expected the server-assigned id in the cache")
	}
	if cached[0].Name != "Brand Website" || cached[0].Budget != 100000 {
		t.Fatalf("cache does not match submitted fields: %+v", cached[0])
	}
}

func TestUpdateVisibleAfterResync(t *testing.T) {
	e, projects := newProjectEnv(t)
	ctx := context.Background()

	seeded := e.backend.SeedProject(model.Project{Name: "One", Status: model.ProjectInProgress})
	projects.Refresh(ctx)

	status := model.ProjectOnHold
	if err := projects.Update(ctx, seeded.ID, api.ProjectPatch{Status: &status}); err != nil {
		t.Fatalf("update error: %v", err)
	}

	got, ok := projects.Get(seeded.ID)
	if !ok {
		t.Fatalf("project %s missing from cache", seeded.ID)
	}
	if got.Status != model.ProjectOnHold {
		t.Fatalf("expected on_hold after update, got %q", got.Status)
	}
	if got.Name != "One" {
		t.Fatalf("partial update must not clobber other fields, got %+v", got)
	}
}

func TestDeleteFiltersCacheWithoutRefetch(t *testing.T) {
	e, projects := newProjectEnv(t)
	ctx := context.Background()

	seeded := e.backend.SeedProject(model.Project{Name: "One"})
	other := e.backend.SeedProject(model.Project{Name: "Two"})
	projects.Refresh(ctx)

	// If Delete refetched, this would wipe the cache; the local filter must
	// not touch the network.
	e.backend.FailNextProjectsList()

	if err := projects.Delete(ctx, seeded.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}

	if _, ok := projects.Get(seeded.ID); ok {
		t.Fatal("deleted project still present in cache")
	}
	if _, ok := projects.Get(other.ID); !ok {
		t.Fatal("surviving project missing from cache")
	}
}

func TestRefreshFailureRetainsPreviousCache(t *testing.T) {
	e, projects := newProjectEnv(t)
	ctx := context.Background()

	e.backend.SeedProject(model.Project{Name: "One"})
	projects.Refresh(ctx)
	if len(projects.Projects()) != 1 {
		t.Fatalf("expected 1 project after initial refresh")
	}

	e.backend.FailNextProjectsList()
	projects.Refresh(ctx)

	if projects.Loading() {
		t.Fatal("loading must settle even when the refresh fails")
	}
	if len(projects.Projects()) != 1 {
		t.Fatal("a failed refresh must retain the previous cache")
	}
}

func TestAddSwallowsRefreshFailure(t *testing.T) {
	e, projects := newProjectEnv(t)
	ctx := context.Background()

	e.backend.FailNextProjectsList()
	err := projects.Add(ctx, api.ProjectCreate{
		Name: "Ghost", Status: model.ProjectPlanned, Manager: "PM",
		StartDate: "2026-01-01", EndDate: "2026-02-01",
	})

	// The write succeeded; the follow-up refresh failure is silent and the
	// cache is stale until the next refresh.
	if err != nil {
		t.Fatalf("a refresh failure after a successful write must not surface: %v", err)
	}
	if len(projects.Projects()) != 0 {
		t.Fatal("expected stale (empty) cache after swallowed refresh failure")
	}

	projects.Refresh(ctx)
	if len(projects.Projects()) != 1 {
		t.Fatal("expected the write to become visible on the next refresh")
	}
}

func TestAddPropagatesCreateFailure(t *testing.T) {
	_, projects := newProjectEnv(t)
	ctx := context.Background()

	// Cancelled context forces the create itself to fail.
	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	err := projects.Add(cancelled, api.ProjectCreate{Name: "Nope"})
	if err == nil {
		t.Fatal("expected create failure to propagate")
	}
	if len(projects.Projects()) != 0 {
		t.Fatal("cache must stay empty after a failed create")
	}
}

func TestGetMissingProject(t *testing.T) {
	_, projects := newProjectEnv(t)
	if _, ok := projects.Get("does-not-exist"); ok {
		t.Fatal("expected lookup miss")
	}
}
