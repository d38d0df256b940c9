// Package crmsdk is a typed Go client for the prospectd API. It owns the wire
// payload and error types the server handlers share, and attaches the chosen
// credential to every request explicitly rather than mutating any global
// transport state.
package crmsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is an HTTP client for the prospectd service. The zero credential
// state performs unauthenticated calls; UseToken/UseAPIKey select the scheme
// attached to subsequent requests.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	authScheme string // "Bearer" or "ApiKey"
	credential string
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// UseToken makes subsequent requests authenticate with a bearer token.
func (c *Client) UseToken(token string) {
	c.authScheme, c.credential = "Bearer", token
}

// UseAPIKey makes subsequent requests authenticate with an API key.
func (c *Client) UseAPIKey(key string) {
	c.authScheme, c.credential = "ApiKey", key
}

// ClearCredentials reverts the client to unauthenticated calls.
func (c *Client) ClearCredentials() {
	c.authScheme, c.credential = "", ""
}

// do executes one JSON request. A non-nil out is decoded from 2xx responses;
// error responses are parsed into *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authScheme != "" {
		req.Header.Set("Authorization", c.authScheme+" "+c.credential)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ============================================================================
// Auth operations
// ============================================================================

func (c *Client) Signup(ctx context.Context, req SignupRequest) (SignupResponse, error) {
	var out SignupResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", req, &out)
	return out, err
}

func (c *Client) VerifyCode(ctx context.Context, email, code string) error {
	return c.do(ctx, http.MethodPost, "/auth/verify-code", VerifyCodeRequest{Email: email, Code: code}, nil)
}

func (c *Client) ResendCode(ctx context.Context, email string) (SignupResponse, error) {
	var out SignupResponse
	err := c.do(ctx, http.MethodPost, "/auth/resend-code", ResendCodeRequest{Email: email}, &out)
	return out, err
}

// Login exchanges credentials for a bearer token and installs it on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &out)
	if err == nil {
		c.UseToken(out.Token)
	}
	return out, err
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if err == nil {
		c.ClearCredentials()
	}
	return err
}

func (c *Client) Me(ctx context.Context) (MeResponse, error) {
	var out MeResponse
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out)
	return out, err
}

func (c *Client) GenerateAPIKey(ctx context.Context) (APIKeyResponse, error) {
	var out APIKeyResponse
	err := c.do(ctx, http.MethodPost, "/auth/generate-api-key", nil, &out)
	return out, err
}

func (c *Client) RevokeAPIKey(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/revoke-api-key", nil, nil)
}

func (c *Client) RequestReset(ctx context.Context, email string) (RequestResetResponse, error) {
	var out RequestResetResponse
	err := c.do(ctx, http.MethodPost, "/auth/request-reset", RequestResetRequest{Email: email}, &out)
	return out, err
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/reset", ResetPasswordRequest{Token: token, Password: password}, nil)
}

// ============================================================================
// CRM operations
// ============================================================================

func (c *Client) DashboardData(ctx context.Context, count int) (DashboardResponse, error) {
	var out DashboardResponse
	q := url.Values{"count": {strconv.Itoa(count)}}
	err := c.do(ctx, http.MethodGet, "/crm/dashboard-data?"+q.Encode(), nil, &out)
	return out, err
}

func (c *Client) CreateProspect(ctx context.Context, p Prospect) (Prospect, error) {
	var out Prospect
	err := c.do(ctx, http.MethodPost, "/crm/prospects", p, &out)
	return out, err
}

func (c *Client) ListProspects(ctx context.Context) ([]Prospect, error) {
	var out []Prospect
	err := c.do(ctx, http.MethodGet, "/crm/prospects-data", nil, &out)
	return out, err
}

func (c *Client) GetProspect(ctx context.Context, id string) (Prospect, error) {
	var out Prospect
	err := c.do(ctx, http.MethodGet, "/crm/prospects/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) UpdateProspect(ctx context.Context, id string, p ProspectUpdate) (Prospect, error) {
	var out Prospect
	err := c.do(ctx, http.MethodPut, "/crm/prospects/"+url.PathEscape(id), p, &out)
	return out, err
}

func (c *Client) DeleteProspect(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/crm/prospects/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateDeal(ctx context.Context, d Deal) (Deal, error) {
	var out Deal
	err := c.do(ctx, http.MethodPost, "/crm/deals", d, &out)
	return out, err
}

func (c *Client) ListDeals(ctx context.Context) ([]Deal, error) {
	var out []Deal
	err := c.do(ctx, http.MethodGet, "/crm/deals-data", nil, &out)
	return out, err
}

func (c *Client) GetDeal(ctx context.Context, id string) (Deal, error) {
	var out Deal
	err := c.do(ctx, http.MethodGet, "/crm/deals/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) UpdateDeal(ctx context.Context, id string, d DealUpdate) (Deal, error) {
	var out Deal
	err := c.do(ctx, http.MethodPut, "/crm/deals/"+url.PathEscape(id), d, &out)
	return out, err
}

func (c *Client) DeleteDeal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/crm/deals/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreatePayment(ctx context.Context, p Payment) (Payment, error) {
	var out Payment
	err := c.do(ctx, http.MethodPost, "/crm/payments", p, &out)
	return out, err
}

func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var out []Payment
	err := c.do(ctx, http.MethodGet, "/crm/payments-data", nil, &out)
	return out, err
}

func (c *Client) UpdatePayment(ctx context.Context, id string, p PaymentUpdate) (Payment, error) {
	var out Payment
	err := c.do(ctx, http.MethodPut, "/crm/payments/"+url.PathEscape(id), p, &out)
	return out, err
}

func (c *Client) DeletePayment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/crm/payments/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateInteraction(ctx context.Context, in Interaction) (Interaction, error) {
	var out Interaction
	err := c.do(ctx, http.MethodPost, "/crm/interactions", in, &out)
	return out, err
}

func (c *Client) ListInteractions(ctx context.Context) ([]Interaction, error) {
	var out []Interaction
	err := c.do(ctx, http.MethodGet, "/crm/interactions-data", nil, &out)
	return out, err
}

func (c *Client) UpdateInteraction(ctx context.Context, id string, in InteractionUpdate) (Interaction, error) {
	var out Interaction
	err := c.do(ctx, http.MethodPut, "/crm/interactions/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *Client) DeleteInteraction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/crm/interactions/"+url.PathEscape(id), nil, nil)
}

// AddBusiness seeds a prospect with its starter interaction, deal and
// payment in one call.
func (c *Client) AddBusiness(ctx context.Context, p Prospect) (BusinessResponse, error) {
	var out BusinessResponse
	err := c.do(ctx, http.MethodPost, "/crm/add-business", p, &out)
	return out, err
}

// ListBusinesses returns the prospect roster.
func (c *Client) ListBusinesses(ctx context.Context) ([]Prospect, error) {
	var out []Prospect
	err := c.do(ctx, http.MethodGet, "/crm/businesses-data", nil, &out)
	return out, err
}

// Health fetches the service health report.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/health", nil, &out)
	return out, err
}
