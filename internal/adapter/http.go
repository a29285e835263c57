package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type httpDashboardClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPDashboardClient constructs the REST implementation of
// [DashboardClient]. It normalises and validates cfg.APIAddress and applies
// cfg.RequestTimeout to every request.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPDashboardClient(cfg config.DashboardConfig, logger *logger.Logger) (DashboardClient, error) {
	baseURL, err := normalizeBaseURL(cfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &httpDashboardClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpDashboardClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpDashboardClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login POSTs the credentials to /api/auth/login. The token is taken from the
// Authorization response header, or from the body when the header is absent.
func (h *httpDashboardClient) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token := auth.Token
	if header := resp.Header().Get("Authorization"); header != "" {
		if token, err = utils.ParseBearerToken(header); err != nil {
			return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}
	if token == "" {
		return models.User{}, fmt.Errorf("login: %w: no token in response", ErrUnauthorized)
	}

	h.SetToken(token)
	return auth.User, nil
}

func (h *httpDashboardClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpDashboardClient) ListSites(ctx context.Context) ([]models.SiteResponse, error) {
	var sites []models.SiteResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&sites).
		Get("/api/sites")
	if err != nil {
		return nil, fmt.Errorf("list sites request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return sites, nil
}

func (h *httpDashboardClient) Stats(ctx context.Context, siteID string, period models.Period) (models.StatsReport, error) {
	var report models.StatsReport

	resp, err := h.authedRequest(ctx).
		SetQueryParam("site_id", siteID).
		SetQueryParam("period", string(period)).
		SetResult(&report).
		Get("/api/stats")
	if err != nil {
		return models.StatsReport{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatsReport{}, err
	}
	return report, nil
}

func (h *httpDashboardClient) Realtime(ctx context.Context, siteID string) (models.Realtime, error) {
	var realtime models.Realtime

	resp, err := h.authedRequest(ctx).
		SetQueryParam("site_id", siteID).
		SetResult(&realtime).
		Get("/api/stats/realtime")
	if err != nil {
		return models.Realtime{}, fmt.Errorf("realtime request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Realtime{}, err
	}
	return realtime, nil
}

func (h *httpDashboardClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}
	return version, nil
}

func (h *httpDashboardClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
