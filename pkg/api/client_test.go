package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/oneflow/oneflow/pkg/session"
)

func newGatewayClient(url string) *Client {
	return NewClient(url, session.NewMemStore(), zap.NewNop())
}

func TestErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Amount must be positive"}`))
	}))
	defer srv.Close()

	client := newGatewayClient(srv.URL)
	_, err := client.Projects.List(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T", err)
	}
	if reqErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", reqErr.StatusCode)
	}
	if reqErr.Message != "Amount must be positive" {
		t.Fatalf("expected server message, got %q", reqErr.Message)
	}
}

func TestErrorFallbackUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	client := newGatewayClient(srv.URL)
	_, err := client.Projects.List(context.Background())

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T", err)
	}
	if reqErr.Message != "An error occurred" {
		t.Fatalf("expected generic fallback, got %q", reqErr.Message)
	}
}

func TestErrorFallbackMissingErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"something else"}`))
	}))
	defer srv.Close()

	client := newGatewayClient(srv.URL)
	_, err := client.Projects.List(context.Background())

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T", err)
	}
	if reqErr.Message != "Request failed" {
		t.Fatalf("expected request failed fallback, got %q", reqErr.Message)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newGatewayClient(srv.URL)
	_, err := client.Projects.List(context.Background())

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T", err)
	}
	if reqErr.StatusCode != 0 {
		t.Fatalf("transport failures should carry status 0, got %d", reqErr.StatusCode)
	}
	if reqErr.Unwrap() == nil {
		t.Fatal("transport failures should wrap the underlying error")
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"projects":[]}`))
	}))
	defer srv.Close()

	tokens := session.NewMemStore()
	tokens.Save("tok-123")
	client := NewClient(srv.URL, tokens, zap.NewNop())

	if _, err := client.Projects.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotContentType)
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"projects":[]}`))
	}))
	defer srv.Close()

	client := newGatewayClient(srv.URL)
	if _, err := client.Projects.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestCreateIssuesSingleRequest(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"task":{"id":"t-1","title":"Implementation"}}`))
	}))
	defer srv.Close()

	client := newGatewayClient(srv.URL)
	task, err := client.Tasks.Create(context.Background(), TaskCreate{Title: "Implementation"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
	if task.ID != "t-1" {
		t.Fatalf("expected the server-assigned entity, got %+v", task)
	}
}

func TestMetricRoute(t *testing.T) {
	cases := map[string]string{
		"/projects":        "/projects",
		"/projects/abc123": "/projects",
		"/auth/login":      "/auth",
		"/sales-orders/42": "/sales-orders",
	}
	for path, expected := range cases {
		if got := metricRoute(path); got != expected {
			t.Errorf("metricRoute(%q) = %q, expected %q", path, got, expected)
		}
	}
}
