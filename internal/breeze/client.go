// Package breeze is a client for the Breeze ChMS REST API
// (https://app.breezechms.com/api). Every call is a GET against
// {subdomain}.breezechms.com/api/{endpoint}/{command} authenticated with an
// Api-Key header; the server reports failures inside a JSON envelope rather
// than through HTTP status codes.
package breeze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	endpointPeople         = "people"
	endpointEvents         = "events"
	endpointProfileFields  = "profile"
	endpointContributions  = "giving"
	endpointFunds          = "funds"
	endpointPledges        = "pledges"
	endpointTags           = "tags"
	endpointAccountSummary = "account/summary"
	endpointForms          = "forms"
)

const defaultTimeout = 60 * time.Second

// APIError is a failure reported by the Breeze server inside a 200 response.
type APIError struct {
	Errors    json.RawMessage
	ErrorCode json.RawMessage
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("breeze api error: %s", e.Errors)
	}
	return fmt.Sprintf("breeze api error code: %s", e.ErrorCode)
}

// Client communicates with one Breeze account.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	dryRun     bool
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (mostly for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request traces.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithDryRun makes every call log its request and return zero values without
// touching the network. Combined with a debug-level logger this allows
// inspecting requests without affecting account data.
func WithDryRun() Option {
	return func(c *Client) { c.dryRun = true }
}

// New creates a Client for the given account. breezeURL must be the
// organization's full https://subdomain.breezechms.com address.
func New(breezeURL, apiKey string, opts ...Option) (*Client, error) {
	if !strings.HasPrefix(breezeURL, "https://") || !strings.Contains(breezeURL, ".breezechms.") {
		return nil, fmt.Errorf("breeze url must be of the form https://subdomain.breezechms.com, got %q", breezeURL)
	}
	if apiKey == "" {
		return nil, errors.New("an API key is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(breezeURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// get performs one API call and decodes the response body into out (skipped
// when out is nil). out is left at its zero value in dry-run mode.
func (c *Client) get(ctx context.Context, endpoint, command string, p params, out any) error {
	u := c.baseURL + "/api/" + endpoint
	if command != "" {
		u += "/" + command
	}

	query, err := p.encode()
	if err != nil {
		return err
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	reqID := uuid.NewString()
	c.logger.Debug("breeze request", "id", reqID, "url", u)
	if c.dryRun {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s/%s: %w", endpoint, command, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	c.logger.Debug("breeze response", "id", reqID, "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s/%s: unexpected status %d", endpoint, command, resp.StatusCode)
	}

	if err := checkEnvelope(body); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s/%s response: %w", endpoint, command, err)
	}
	return nil
}

// checkEnvelope inspects a response for the server-side failure shape: an
// object whose success member is falsy and that names errors or an errorCode.
// Arrays, booleans and clean objects pass through.
func checkEnvelope(body []byte) error {
	trimmed := strings.TrimLeftFunc(string(body), func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' })
	if !strings.HasPrefix(trimmed, "{") {
		return nil
	}

	var env struct {
		Success   json.RawMessage `json:"success"`
		Errors    json.RawMessage `json:"errors"`
		ErrorCode json.RawMessage `json:"errorCode"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		// Not an object after all; let the caller's decode report it.
		return nil
	}
	if truthy(env.Success) {
		return nil
	}
	if present(env.Errors) || present(env.ErrorCode) {
		return &APIError{Errors: env.Errors, ErrorCode: env.ErrorCode}
	}
	return nil
}

func present(raw json.RawMessage) bool {
	s := string(raw)
	return s != "" && s != "null" && s != "[]" && s != "{}" && s != `""`
}

func truthy(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", "false", "0", `"0"`, `""`:
		return false
	}
	return true
}

// AccountSummary retrieves the account's details. It doubles as a check that
// the URL and API key are valid.
func (c *Client) AccountSummary(ctx context.Context) (AccountSummary, error) {
	var out AccountSummary
	err := c.get(ctx, endpointAccountSummary, "", nil, &out)
	return out, err
}
