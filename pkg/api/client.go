// Package api is the HTTP gateway to the OneFlow backend: one typed resource
// collection per entity, all funneled through a single request core that
// injects bearer auth and normalizes error shapes. The gateway never retries,
// never caches and enforces no timeouts; cancellation is the caller's
// context.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oneflow/oneflow/pkg/metrics"
	"github.com/oneflow/oneflow/pkg/session"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     session.TokenStore
	logger     *zap.Logger

	Auth           *AuthService
	Projects       *ProjectsService
	Tasks          *TasksService
	SalesOrders    *SalesOrdersService
	PurchaseOrders *PurchaseOrdersService
	Invoices       *InvoicesService
	VendorBills    *VendorBillsService
	Expenses       *ExpensesService
	Timesheets     *TimesheetsService
	Analytics      *AnalyticsService
	Users          *UsersService
}

func NewClient(baseURL string, tokens session.TokenStore, logger *zap.Logger) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		logger:     logger,
	}
	c.Auth = &AuthService{client: c}
	c.Projects = &ProjectsService{client: c}
	c.Tasks = &TasksService{client: c}
	c.SalesOrders = &SalesOrdersService{client: c}
	c.PurchaseOrders = &PurchaseOrdersService{client: c}
	c.Invoices = &InvoicesService{client: c}
	c.VendorBills = &VendorBillsService{client: c}
	c.Expenses = &ExpensesService{client: c}
	c.Timesheets = &TimesheetsService{client: c}
	c.Analytics = &AnalyticsService{client: c}
	c.Users = &UsersService{client: c}
	return c
}

// do issues one request and decodes the JSON response into out (out may be
// nil when the body is irrelevant, e.g. DELETE).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	route := metricRoute(path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.TransportErrors.WithLabelValues(method, route).Inc()
		c.logger.Debug("request failed before response",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return &RequestError{Err: err}
	}
	defer resp.Body.Close()

	duration := time.Since(start)
	metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errorFromResponse(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromResponse mirrors the backend's {error: string} failure convention:
// an unparseable body yields "An error occurred", a parseable body without an
// error field yields "Request failed".
func errorFromResponse(resp *http.Response) error {
	reqErr := &RequestError{StatusCode: resp.StatusCode, Message: "An error occurred"}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			reqErr.Message = body.Error
		} else {
			reqErr.Message = "Request failed"
		}
	}
	return reqErr
}

// metricRoute strips record IDs so metric labels stay bounded per resource.
func metricRoute(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return "/" + trimmed
}
