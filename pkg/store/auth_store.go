// Package store holds the process-wide domain state: the authenticated
// session and the project cache. Stores write through the API gateway and
// resynchronize from the server rather than patching local state.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
	"github.com/oneflow/oneflow/pkg/session"
)

// AuthStore is the session singleton. User is non-nil exactly while a login,
// signup or restore has succeeded and logout has not been called since.
type AuthStore struct {
	client *api.Client
	tokens session.TokenStore
	logger *zap.Logger

	mu      sync.RWMutex
	user    *model.User
	loading bool
}

func NewAuthStore(client *api.Client, tokens session.TokenStore, logger *zap.Logger) *AuthStore {
	return &AuthStore{
		client:  client,
		tokens:  tokens,
		logger:  logger,
		loading: true,
	}
}

// Restore resolves the persisted token into a user via the session-lookup
// endpoint. A lookup failure clears the stored token. Loading flips to false
// exactly once, whatever the outcome.
func (s *AuthStore) Restore(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	if s.tokens.Token() == "" {
		return
	}

	user, err := s.client.Auth.Me(ctx)
	if err != nil {
		s.logger.Warn("session restore failed, clearing token", zap.Error(err))
		if clearErr := s.tokens.Clear(); clearErr != nil {
			s.logger.Error("failed to clear token", zap.Error(clearErr))
		}
		return
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// Login authenticates, persists the returned token and sets the user. On
// failure the error propagates and no state changes.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	sess, err := s.client.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.beginSession(sess)
}

func (s *AuthStore) Signup(ctx context.Context, email, password, name string, role model.UserRole) error {
	sess, err := s.client.Auth.Signup(ctx, email, password, name, role)
	if err != nil {
		return err
	}
	return s.beginSession(sess)
}

func (s *AuthStore) beginSession(sess *api.Session) error {
	if err := s.tokens.Save(sess.Token); err != nil {
		return err
	}
	s.mu.Lock()
	user := sess.User
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Logout clears the user and the persisted token synchronously; no network
// call is made.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.logger.Error("failed to clear token", zap.Error(err))
	}
}

func (s *AuthStore) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *AuthStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
