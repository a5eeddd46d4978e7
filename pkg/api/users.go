package api

import (
	"context"
	"net/http"

	"github.com/oneflow/oneflow/pkg/model"
)

type UsersService struct {
	client *Client
}

func (s *UsersService) List(ctx context.Context) ([]model.User, error) {
	var env struct {
		Users []model.User `json:"users"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/users", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Users, nil
}

func (s *UsersService) Profile(ctx context.Context) (*model.User, error) {
	var env struct {
		User model.User `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/users/profile", nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (s *UsersService) UpdateProfile(ctx context.Context, name string) (*model.User, error) {
	body := struct {
		Name string `json:"name"`
	}{name}

	var env struct {
		User model.User `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodPut, "/users/profile", nil, body, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (s *UsersService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{currentPassword, newPassword}

	return s.client.do(ctx, http.MethodPut, "/users/password", nil, body, nil)
}
