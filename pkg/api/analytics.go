package api

import (
	"context"
	"net/http"

	"github.com/oneflow/oneflow/pkg/model"
)

type AnalyticsService struct {
	client *Client
}

func (s *AnalyticsService) Get(ctx context.Context) (*model.Analytics, error) {
	var env struct {
		Analytics model.Analytics `json:"analytics"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/analytics", nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Analytics, nil
}
