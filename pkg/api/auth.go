package api

import (
	"context"
	"net/http"

	"github.com/oneflow/oneflow/pkg/model"
)

type AuthService struct {
	client *Client
}

// Session is the backend's response to a successful login or signup.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var sess Session
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, body, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *AuthService) Signup(ctx context.Context, email, password, name string, role model.UserRole) (*Session, error) {
	body := struct {
		Email    string         `json:"email"`
		Password string         `json:"password"`
		Name     string         `json:"name"`
		Role     model.UserRole `json:"role"`
	}{email, password, name, role}

	var sess Session
	if err := s.client.do(ctx, http.MethodPost, "/auth/signup", nil, body, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Me looks up the session behind the stored bearer token.
func (s *AuthService) Me(ctx context.Context) (*model.User, error) {
	var env struct {
		User model.User `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}
