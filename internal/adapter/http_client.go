package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-habit-sync/internal/config"
	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/internal/utils"
	"github.com/MKhiriev/go-habit-sync/models"
)

type httpSyncTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPSyncTransport constructs an HTTP/REST implementation of
// [SyncTransport]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying HTTP client with the resolved
// base URL and request timeout. When cfg.AuthToken is non-empty it is
// installed as the initial bearer token.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPSyncTransport(cfg config.ClientAdapter, log *logger.Logger) (SyncTransport, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	t := &httpSyncTransport{client: client, logger: log}
	if cfg.AuthToken != "" {
		t.SetToken(cfg.AuthToken)
	}
	return t, nil
}

func (h *httpSyncTransport) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpSyncTransport) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Send posts the batch to /api/sync/batch and decodes the server's
// response. Transport-level failures (DNS, connection refused, timeout)
// are wrapped in [ErrServerUnreachable] so the orchestrator can classify
// them as transient without inspecting resty internals.
func (h *httpSyncTransport) Send(ctx context.Context, req models.BatchSyncRequest) (models.BatchSyncResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/batch")
	if err != nil {
		return models.BatchSyncResponse{}, fmt.Errorf("%w: batch sync request: %v", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchSyncResponse{}, err
	}

	var out models.BatchSyncResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.BatchSyncResponse{}, fmt.Errorf("decode batch sync response: %w", err)
	}

	return out, nil
}

func (h *httpSyncTransport) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("%w: health request: %v", ErrServerUnreachable, err)
	}
	return mapHTTPError(resp)
}

func (h *httpSyncTransport) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty base url")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("base url has no host: %s", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
