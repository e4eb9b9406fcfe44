// internal/adapters/graph/client.go
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

// Config holds directory client configuration
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// BaseURL is the directory API root, e.g. https://graph.microsoft.com/v1.0
	BaseURL string
	// Scope defaults to the directory's .default application scope
	Scope string
	// PageTimeout bounds each page request, not the whole walk
	PageTimeout time.Duration
}

// Client fetches devices and users from a Microsoft-Graph-style directory
// API. Authentication uses the OAuth2 client-credentials flow; pagination
// follows @odata.nextLink until the server stops returning one.
type Client struct {
	http    *http.Client
	baseURL string
	timeout time.Duration
	logger  *slog.Logger
}

// Statically assert that *Client implements the DirectoryClient interface.
var _ ports.DirectoryClient = (*Client)(nil)

// NewClient creates a directory client with a token-refreshing HTTP client
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) *Client {
	scope := cfg.Scope
	if scope == "" {
		scope = "https://graph.microsoft.com/.default"
	}
	timeout := cfg.PageTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.TenantID),
		Scopes:       []string{scope},
	}

	return &Client{
		http:    cc.Client(ctx),
		baseURL: cfg.BaseURL,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "directory")),
	}
}

// NewClientWithHTTP creates a client over a caller-supplied HTTP client.
// Used by tests and by deployments that terminate auth elsewhere.
func NewClientWithHTTP(httpClient *http.Client, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "directory")),
	}
}

// page is the envelope every directory list endpoint returns
type page struct {
	Value    []json.RawMessage `json:"value"`
	NextLink string            `json:"@odata.nextLink"`
}

// FetchDevices walks the managed-devices collection to completion
func (c *Client) FetchDevices(ctx context.Context) ([]domain.DeviceRecord, error) {
	var devices []domain.DeviceRecord

	next := c.baseURL + "/deviceManagement/managedDevices"
	for next != "" {
		pg, err := c.fetchPage(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("fetch devices: %w", err)
		}
		for _, raw := range pg.Value {
			var rec domain.DeviceRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, fmt.Errorf("decode device record: %w", err)
			}
			devices = append(devices, rec)
		}
		next = pg.NextLink
	}

	c.logger.DebugContext(ctx, "fetched directory devices",
		slog.Int("count", len(devices)))
	return devices, nil
}

// FetchUsers walks the users collection, requesting only the fields the
// inventory needs.
func (c *Client) FetchUsers(ctx context.Context) ([]domain.DirectoryUser, error) {
	var users []domain.DirectoryUser

	q := url.Values{}
	q.Set("$select", "id,displayName,userPrincipalName")
	q.Set("$top", "999")

	next := c.baseURL + "/users?" + q.Encode()
	for next != "" {
		pg, err := c.fetchPage(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("fetch users: %w", err)
		}
		for _, raw := range pg.Value {
			var u domain.DirectoryUser
			if err := json.Unmarshal(raw, &u); err != nil {
				return nil, fmt.Errorf("decode user record: %w", err)
			}
			users = append(users, u)
		}
		next = pg.NextLink
	}

	c.logger.DebugContext(ctx, "fetched directory users",
		slog.Int("count", len(users)))
	return users, nil
}

// fetchPage requests one page with its own timeout
func (c *Client) fetchPage(ctx context.Context, pageURL string) (*page, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("directory returned %d: %s", resp.StatusCode, body)
	}

	var pg page
	if err := json.NewDecoder(resp.Body).Decode(&pg); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	return &pg, nil
}
