package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"artisanalley/web/internal/session"
)

// Client talks to the remote marketplace REST backend. It owns no
// state beyond the base URL; the bearer credential is passed per call
// because it belongs to the browser session, not the process.
type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend base url %q missing scheme or host", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
		log:  log.With().Str("component", "backend").Logger(),
	}, nil
}

// AuthResult is the login/register response: the bearer token plus the
// role-bearing profile, normalized on arrival.
type AuthResult struct {
	Token   string
	Profile session.Profile
}

type credentialsRequest struct {
	UsernameOrEmail string `json:"UsernameOrEmail"`
	Password        string `json:"Password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authEnvelope struct {
	Token      string          `json:"token"`
	TokenUpper string          `json:"Token"`
	User       json.RawMessage `json:"user"`
}

func (c *Client) Login(ctx context.Context, usernameOrEmail, password string) (AuthResult, error) {
	body := credentialsRequest{UsernameOrEmail: usernameOrEmail, Password: password}
	return c.authCall(ctx, "/api/auth/login", body)
}

func (c *Client) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	body := registerRequest{Username: username, Email: email, Password: password}
	return c.authCall(ctx, "/api/auth/register", body)
}

func (c *Client) authCall(ctx context.Context, path string, body any) (AuthResult, error) {
	var envelope authEnvelope
	if err := c.do(ctx, http.MethodPost, path, "", body, &envelope); err != nil {
		return AuthResult{}, err
	}

	// Older backend revisions capitalize the token field.
	token := envelope.Token
	if token == "" {
		token = envelope.TokenUpper
	}
	if token == "" {
		return AuthResult{}, &APIError{Status: http.StatusOK, Message: "Login succeeded but no token was returned."}
	}

	result := AuthResult{Token: token}
	if len(envelope.User) > 0 {
		if err := json.Unmarshal(envelope.User, &result.Profile); err != nil {
			c.log.Warn().Err(err).Msg("auth response profile unreadable")
		}
	}
	return result, nil
}

func (c *Client) SetupCustomer(ctx context.Context, token string, input CustomerProfileInput) error {
	return c.do(ctx, http.MethodPost, "/api/profile/customer", token, input, nil)
}

func (c *Client) SetupSeller(ctx context.Context, token string, input SellerProfileInput) error {
	return c.do(ctx, http.MethodPost, "/api/profile/seller", token, input, nil)
}

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	err := c.do(ctx, http.MethodGet, "/api/Products", "", nil, &products)
	return products, err
}

func (c *Client) Product(ctx context.Context, id string) (Product, error) {
	var product Product
	err := c.do(ctx, http.MethodGet, "/api/Products/"+url.PathEscape(id), "", nil, &product)
	return product, err
}

func (c *Client) Trending(ctx context.Context) ([]Product, error) {
	var products []Product
	err := c.do(ctx, http.MethodGet, "/api/Products/trending", "", nil, &products)
	return products, err
}

func (c *Client) MyProducts(ctx context.Context, token string) ([]Product, error) {
	var products []Product
	err := c.do(ctx, http.MethodGet, "/api/Products/my-products", token, nil, &products)
	return products, err
}

func (c *Client) CreateProduct(ctx context.Context, token string, input ProductInput) error {
	return c.do(ctx, http.MethodPost, "/api/Products/new-product", token, input, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, input ProductInput) error {
	return c.do(ctx, http.MethodPut, "/api/Products/"+url.PathEscape(id), token, input, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/Products/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) BuyProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, "/api/Products/"+url.PathEscape(id)+"/buy", token, nil, nil)
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := c.do(ctx, http.MethodGet, "/api/Categories", "", nil, &categories)
	return categories, err
}

func (c *Client) PendingSellers(ctx context.Context, token string) ([]PendingSeller, error) {
	var sellers []PendingSeller
	err := c.do(ctx, http.MethodGet, "/api/PlatformAdminSeller/pending-sellers", token, nil, &sellers)
	return sellers, err
}

func (c *Client) ApproveSeller(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, "/api/PlatformAdminSeller/approve/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) DeleteSeller(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/PlatformAdminSeller/delete-seller/"+url.PathEscape(id), token, nil, nil)
}

// do performs one backend call. 401/403 map to ErrUnauthorized, other
// non-2xx statuses to an APIError carrying the backend's message, and
// transport failures to ErrUnreachable.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend unreachable")
		return fmt.Errorf("%w: %s %s", ErrUnreachable, method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s %s: status %d", ErrUnauthorized, method, path, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

// readErrorMessage pulls a displayable message out of an error body,
// which the backend sends either as plain text or as {"message": ...}.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var structured struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &structured); err == nil {
		if structured.Message != "" {
			return structured.Message
		}
		if structured.Error != "" {
			return structured.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
