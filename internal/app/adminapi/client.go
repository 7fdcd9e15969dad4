// internal/app/adminapi/client.go
package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Admin API endpoint paths, relative to the configured base URL.
const (
	pathLogin             = "/api/v1/admin/login"
	pathStats             = "/api/v1/admin/stats"
	pathUsers             = "/api/v1/admin/users"
	pathUsersByDate       = "/api/v1/admin/users-by-date"
	pathTransactions      = "/api/v1/admin/transactions"
	pathPayments          = "/api/v1/admin/payments"
	pathCreatorPasses     = "/api/v1/admin/creator-passes"
	pathFinancialOverview = "/api/v1/admin/financial-overview"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 8 << 20

// RequestIDHeader carries the per-call correlation id.
const RequestIDHeader = "X-Request-ID"

// Client talks to the remote Admin API. It is safe for concurrent use; it
// holds no session state, the bearer token is passed on every call.
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

// New builds a Client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("adminapi: parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("adminapi: base url must be an absolute http(s) url, got %q", baseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base: u,
		http: &http.Client{Timeout: timeout},
		log:  logger,
	}, nil
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string { return c.base.String() }

// CloseIdleConnections releases pooled connections; used at shutdown.
func (c *Client) CloseIdleConnections() { c.http.CloseIdleConnections() }

/*─────────────────────────────────────────────────────────────────────────────*
| Envelopes                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

type envelope struct {
	Success bool `json:"success"`
	Message Text `json:"message"`
}

func (e envelope) result() (bool, string) { return e.Success, e.Message.String() }

type enveloped interface {
	result() (bool, string)
}

type loginResponse struct {
	envelope
	Token Text `json:"token"`
}

type statsResponse struct {
	envelope
	Stats Stats `json:"stats"`
}

type usersResponse struct {
	envelope
	Users List[User] `json:"users"`
}

type transactionsResponse struct {
	envelope
	Transactions List[Transaction] `json:"transactions"`
}

type paymentsResponse struct {
	envelope
	Payments List[Payment] `json:"payments"`
}

type creatorPassesResponse struct {
	envelope
	CreatorPasses List[CreatorPass] `json:"creatorPasses"`
}

type overviewResponse struct {
	envelope
	FinancialData FinancialData `json:"financialData"`
	Timeframe     Text          `json:"timeframe"`
}

// Overview is the decoded financial overview together with the timeframe it
// covers.
type Overview struct {
	Data      FinancialData
	Timeframe Timeframe
}

/*─────────────────────────────────────────────────────────────────────────────*
| Endpoints                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// Login exchanges credentials for a bearer token. A rejected login is
// returned as *APIError carrying the server's message.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", fmt.Errorf("adminapi: encode login: %w", err)
	}
	var resp loginResponse
	status, err := c.do(ctx, http.MethodPost, pathLogin, nil, "", body, &resp)
	if err != nil {
		return "", err
	}
	token := resp.Token.String()
	if token == "" {
		return "", &APIError{Status: status, Message: resp.Message.String()}
	}
	return token, nil
}

// Stats fetches the headline counters.
func (c *Client) Stats(ctx context.Context, token string) (Stats, error) {
	var resp statsResponse
	if _, err := c.do(ctx, http.MethodGet, pathStats, nil, token, nil, &resp); err != nil {
		return Stats{}, err
	}
	return resp.Stats, nil
}

// Users lists users, optionally filtered by a search term.
func (c *Client) Users(ctx context.Context, token, search string) ([]User, error) {
	var resp usersResponse
	if _, err := c.do(ctx, http.MethodGet, pathUsers, optional("search", search), token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// UsersByDate lists users who signed up on date (YYYY-MM-DD).
func (c *Client) UsersByDate(ctx context.Context, token, date string) ([]User, error) {
	var resp usersResponse
	if _, err := c.do(ctx, http.MethodGet, pathUsersByDate, optional("date", date), token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// Transactions lists transactions, optionally for a single day.
func (c *Client) Transactions(ctx context.Context, token, date string) ([]Transaction, error) {
	var resp transactionsResponse
	if _, err := c.do(ctx, http.MethodGet, pathTransactions, optional("date", date), token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// Payments lists payments, optionally for a single day.
func (c *Client) Payments(ctx context.Context, token, date string) ([]Payment, error) {
	var resp paymentsResponse
	if _, err := c.do(ctx, http.MethodGet, pathPayments, optional("date", date), token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Payments, nil
}

// CreatorPasses lists creator passes, optionally filtered by a search term.
func (c *Client) CreatorPasses(ctx context.Context, token, search string) ([]CreatorPass, error) {
	var resp creatorPassesResponse
	if _, err := c.do(ctx, http.MethodGet, pathCreatorPasses, optional("search", search), token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.CreatorPasses, nil
}

// FinancialOverview fetches the financial summary for tf. The timeframe in
// the result is the one echoed by the API when it is a known value, tf
// otherwise.
func (c *Client) FinancialOverview(ctx context.Context, token string, tf Timeframe) (Overview, error) {
	var resp overviewResponse
	q := url.Values{"timeframe": {string(tf)}}
	if _, err := c.do(ctx, http.MethodGet, pathFinancialOverview, q, token, nil, &resp); err != nil {
		return Overview{}, err
	}
	out := Overview{Data: resp.FinancialData, Timeframe: tf}
	if echoed, ok := ParseTimeframe(resp.Timeframe.String()); ok {
		out.Timeframe = echoed
	}
	return out, nil
}

// Ping reports whether the API host answers HTTP at all. Any response below
// 500 counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base.String(), nil)
	if err != nil {
		return fmt.Errorf("adminapi: build ping: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("adminapi: ping: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode >= http.StatusInternalServerError {
		return &APIError{Status: resp.StatusCode}
	}
	return nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Transport                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// do performs one request and decodes its envelope into out. A non-empty
// token is sent as a bearer credential and turns a 401 into ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, token string, body []byte, out enveloped) (int, error) {
	u := c.base.JoinPath(path)
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return 0, fmt.Errorf("adminapi: build %s %s: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("adminapi: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("admin api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return resp.StatusCode, ErrUnauthorized
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("adminapi: read %s: %w", path, err)
	}

	ok2xx := resp.StatusCode >= 200 && resp.StatusCode < 300
	if err := json.Unmarshal(raw, out); err != nil {
		if !ok2xx {
			return resp.StatusCode, &APIError{Status: resp.StatusCode}
		}
		return resp.StatusCode, fmt.Errorf("adminapi: decode %s: %w", path, err)
	}

	success, msg := out.result()
	if !ok2xx || !success {
		return resp.StatusCode, &APIError{Status: resp.StatusCode, Message: msg}
	}
	return resp.StatusCode, nil
}

// optional returns a single-valued query when value is non-empty.
func optional(key, value string) url.Values {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return url.Values{key: {value}}
}

// IsTransient reports whether err came from the transport rather than from
// an answer of the API.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, ErrUnauthorized) {
		return false
	}
	var apiErr *APIError
	return !errors.As(err, &apiErr)
}
