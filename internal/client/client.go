// Package client is the typed contract layer for the helpdesk backend.
// Every remote operation the console can perform is declared here, grouped
// by concern (auth, tickets, admin). Calls are fire-once: no retry, no
// caching, one fixed timeout.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is the backend API client. Service fields group the operations
// the way the backend groups its routes.
type Client struct {
	httpClient *resty.Client
	baseURL    string

	Auth    *AuthService
	Tickets *TicketsService
	Admin   *AdminService
}

// Config represents client configuration.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Debug     bool
}

// New creates a backend API client. The bearer credential is not part of
// the client; it travels in the request context (see WithToken) so one
// client serves every session.
func New(config Config) *Client {
	if config.UserAgent == "" {
		config.UserAgent = "deskhub-console/1.0"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("User-Agent", config.UserAgent).
		SetHeader("Accept", "application/json")

	if config.Debug {
		httpClient.SetDebug(true)
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
	}

	client.Auth = &AuthService{client: client}
	client.Tickets = &TicketsService{client: client}
	client.Admin = &AdminService{client: client}

	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		if token := TokenFromContext(req.Context()); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		return errorFromResponse(resp)
	})

	return client
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type tokenKey struct{}

// WithToken returns a context carrying the session's bearer token. Every
// request made with that context sends "Authorization: Bearer <token>".
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the bearer token from a context, if any.
func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// errorBody is the backend's error reply shape. Validation failures carry
// "message"; container-level errors may only carry "error".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func errorFromResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		message := body.Message
		if message == "" {
			message = body.Error
		}
		if message != "" {
			return NewAPIError(resp.StatusCode(), message, "")
		}
	}

	return NewAPIError(resp.StatusCode(), resp.Status(), "")
}

// get performs a GET request, unmarshaling a 2xx body into result.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	return c.finish("GET", path, resp, err)
}

// post performs a POST request with an optional JSON body.
func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	req := c.httpClient.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}
	resp, err := req.Post(path)
	return c.finish("POST", path, resp, err)
}

// put performs a PUT request with a JSON body.
func (c *Client) put(ctx context.Context, path string, body, result interface{}) error {
	req := c.httpClient.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}
	resp, err := req.Put(path)
	return c.finish("PUT", path, resp, err)
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.httpClient.R().SetContext(ctx).Delete(path)
	return c.finish("DELETE", path, resp, err)
}

// finish classifies the outcome of a request: API errors pass through,
// anything else that failed is a transport error.
func (c *Client) finish(operation, path string, resp *resty.Response, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &NetworkError{
		Operation: operation,
		URL:       c.baseURL + path,
		Err:       err,
	}
}
