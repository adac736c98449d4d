package imobi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/imobi/internal/entity"
)

const (
	TenantHeader      = "X-Tenant-ID"
	SessionCookieName = "imobi_session"
)

// StatusError é uma resposta fora da faixa 2xx. O corpo não é lido.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.Path, e.Code)
}

// Client lê as coleções do painel de uma API imobi rodando. A sessão vai num
// cookie jar, como um navegador com credentials incluídas.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, sessionCookie string, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar IMOBI_API_URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cookie jar: %w", err)
	}
	if sessionCookie != "" {
		jar.SetCookies(u, []*http.Cookie{{Name: SessionCookieName, Value: sessionCookie, Path: "/"}})
	}

	return &Client{
		baseURL:    u.String(),
		httpClient: &http.Client{Jar: jar, Timeout: 15 * time.Second},
		logger:     logger,
	}, nil
}

func getJSON[T any](ctx context.Context, c *Client, path, tenantID string) (T, error) {
	var out T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return out, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(TenantHeader, tenantID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("erro ao chamar %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, &StatusError{Path: path, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("erro ao decodificar %s: %w", path, err)
	}
	return out, nil
}

func (c *Client) ListLeads(ctx context.Context, tenantID string) ([]entity.Lead, error) {
	return getJSON[[]entity.Lead](ctx, c, "/api/leads", tenantID)
}

func (c *Client) ListVisits(ctx context.Context, tenantID string) ([]entity.Visit, error) {
	return getJSON[[]entity.Visit](ctx, c, "/api/visits", tenantID)
}

func (c *Client) ListContracts(ctx context.Context, tenantID string) ([]entity.Contract, error) {
	return getJSON[[]entity.Contract](ctx, c, "/api/contracts", tenantID)
}

func (c *Client) ListProperties(ctx context.Context, tenantID string) ([]entity.Property, error) {
	return getJSON[[]entity.Property](ctx, c, "/api/properties", tenantID)
}

func (c *Client) PendingFollowUps(ctx context.Context, tenantID string) ([]entity.FollowUp, error) {
	return getJSON[[]entity.FollowUp](ctx, c, "/api/follow-ups?status=pending", tenantID)
}
