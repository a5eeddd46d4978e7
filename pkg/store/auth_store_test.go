package store

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/apitest"
	"github.com/oneflow/oneflow/pkg/model"
	"github.com/oneflow/oneflow/pkg/session"
)

type env struct {
	backend *apitest.Server
	client  *api.Client
	tokens  *session.MemStore
}

func newEnv(t *testing.T) *env {
	t.Helper()
	backend := apitest.NewServer(zap.NewNop())
	srv := httptest.NewServer(backend.Router())
	t.Cleanup(srv.Close)
	tokens := session.NewMemStore()
	return &env{
		backend: backend,
		client:  api.NewClient(srv.URL, tokens, zap.NewNop()),
		tokens:  tokens,
	}
}

func TestLoginSetsUserAndToken(t *testing.T) {
	e := newEnv(t)
	e.backend.SeedUser("pm@oneflow.dev", "secret", "PM", model.RoleProjectManager)
	auth := NewAuthStore(e.client, e.tokens, zap.NewNop())

	if err := auth.Login(context.Background(), "pm@oneflow.dev", "secret"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	user := auth.User()
	if user == nil || user.Email != "pm@oneflow.dev" {
		t.Fatalf("expected logged-in user, got %+v", user)
	}
	if e.tokens.Token() == "" {
		t.Fatal("expected persisted token")
	}
}

func TestFailedLoginLeavesStateUntouched(t *testing.T) {
	e := newEnv(t)
	e.backend.SeedUser("pm@oneflow.dev", "secret", "PM", model.RoleProjectManager)
	auth := NewAuthStore(e.client, e.tokens, zap.NewNop())

	err := auth.Login(context.Background(), "bad@x.com", "wrong")
	if err == nil {
		t.Fatal("expected login to fail")
	}
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) || reqErr.Message != "Invalid credentials" {
		t.Fatalf("expected the server-provided reason, got %v", err)
	}
	if auth.User() != nil {
		t.Fatal("user must stay nil after a failed login")
	}
	if e.tokens.Token() != "" {
		t.Fatal("no token must be persisted after a failed login")
	}
}

func TestSignupSetsUser(t *testing.T) {
	e := newEnv(t)
	auth := NewAuthStore(e.client, e.tokens, zap.NewNop())

	if err := auth.Signup(context.Background(), "dev@oneflow.dev", "pw", "Developer", model.RoleTeamMember); err != nil {
		t.Fatalf("signup error: %v", err)
	}
	user := auth.User()
	if user == nil || user.Role != model.RoleTeamMember {
		t.Fatalf("expected signed-up user, got %+v", user)
	}
}

func TestRestoreWithValidToken(t *testing.T) {
	e := newEnv(t)
	e.backend.SeedUser("pm@oneflow.dev", "secret", "PM", model.RoleProjectManager)

	first := NewAuthStore(e.client, e.tokens, zap.NewNop())
	if err := first.Login(context.Background(), "pm@oneflow.dev", "secret"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	// A fresh store sharing the token store picks the session back up.
	restored := NewAuthStore(e.client, e.tokens, zap.NewNop())
	if !restored.Loading() {
		t.Fatal("expected loading before restore")
	}
	restored.Restore(context.Background())
	if restored.Loading() {
		t.Fatal("expected loading to settle after restore")
	}
	user := restored.User()
	if user == nil || user.Email != "pm@oneflow.dev" {
		t.Fatalf("expected restored user, got %+v", user)
	}
}

func TestRestoreClearsBadToken(t *testing.T) {
	e := newEnv(t)
	e.tokens.Save("not-a-valid-token")
	auth := NewAuthStore(e.client, e.tokens, zap.NewNop())

	auth.Restore(context.Background())

	if auth.User() != nil {
		t.Fatal("expected no user after failed restore")
	}
	if e.tokens.Token() != "" {
		t.Fatal("expected the bad token to be cleared")
	}
	if auth.Loading() {
		t.Fatal("expected loading to settle")
	}
}

func TestRestoreWithoutToken(t *testing.T) {
	e := newEnv(t)
	auth := NewAuthStore(e.client, e.tokens, zap.NewNop())

	auth.Restore(context.Background())

	if auth.User() != nil {
		t.Fatal("expected no user")
	}
	if auth.Loading() {
		t.Fatal("expected loading to settle without a network call")
	}
}

func TestLogoutClearsSynchronously(t *testing.T) {
	e := newEnv(t)
	e.backend.SeedUser("pm@oneflow.dev", "secret", "PM", model.RoleProjectManager)
	auth := NewAuthStore(e.client, e.tokens, zap.NewNop())
	if err := auth.Login(context.Background(), "pm@oneflow.dev", "secret"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	auth.Logout()

	if auth.User() != nil {
		t.Fatal("expected no user after logout")
	}
	if e.tokens.Token() != "" {
		t.Fatal("expected the token to be cleared on logout")
	}
}
