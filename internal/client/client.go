// Package client wraps the customer REST API behind a small typed
// interface. Transport failures and non-2xx responses are mapped onto a
// uniform APIError so the store never inspects HTTP details.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"crmdesk/internal/crm"
)

// ErrorKind classifies API failures for the store and its callers.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindNotFound   ErrorKind = "not_found"
	KindTransport  ErrorKind = "transport"
	KindServer     ErrorKind = "server"
)

// APIError is the uniform error shape for every failed API call.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsConflict reports whether the error is a duplicate-email rejection.
func IsConflict(err error) bool { return hasKind(err, KindConflict) }

// IsNotFound reports whether the error is a stale-identifier rejection.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

func hasKind(err error, kind ErrorKind) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == kind
}

// CustomerService is the interface the store depends on. Tests substitute a
// fake implementation.
type CustomerService interface {
	List(ctx context.Context) ([]crm.Customer, error)
	Get(ctx context.Context, id string) (crm.Customer, error)
	Create(ctx context.Context, data crm.FormData) (crm.Customer, error)
	Update(ctx context.Context, id string, data crm.FormData) (crm.Customer, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]crm.Customer, error)
	Health(ctx context.Context) error
}

// Client is the HTTP implementation of CustomerService.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every request. A hung server otherwise leaves the
// store's in-flight flag set indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a client for the API at baseURL (e.g. "http://localhost:5000/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// wireCustomer is the customer representation on the wire.
type wireCustomer struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (w wireCustomer) record() crm.Customer {
	return crm.Customer{
		ID:          w.ID,
		FullName:    w.FullName,
		Email:       w.Email,
		PhoneNumber: w.PhoneNumber,
		Address:     w.Address,
		CreatedDate: w.CreatedAt,
	}
}

// envelope mirrors the API response shape {success, data, message, error}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (c *Client) List(ctx context.Context) ([]crm.Customer, error) {
	return c.fetchList(ctx, c.baseURL+"/customers")
}

func (c *Client) Get(ctx context.Context, id string) (crm.Customer, error) {
	var wire wireCustomer
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/customers/"+url.PathEscape(id), nil, &wire); err != nil {
		return crm.Customer{}, err
	}
	return wire.record(), nil
}

func (c *Client) Create(ctx context.Context, data crm.FormData) (crm.Customer, error) {
	var wire wireCustomer
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/customers", data, &wire); err != nil {
		return crm.Customer{}, err
	}
	return wire.record(), nil
}

func (c *Client) Update(ctx context.Context, id string, data crm.FormData) (crm.Customer, error) {
	var wire wireCustomer
	if err := c.do(ctx, http.MethodPut, c.baseURL+"/customers/"+url.PathEscape(id), data, &wire); err != nil {
		return crm.Customer{}, err
	}
	return wire.record(), nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/customers/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Search(ctx context.Context, query string) ([]crm.Customer, error) {
	return c.fetchList(ctx, c.baseURL+"/customers/search?query="+url.QueryEscape(query))
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, c.baseURL+"/health", nil, nil)
}

func (c *Client) fetchList(ctx context.Context, endpoint string) ([]crm.Customer, error) {
	var wires []wireCustomer
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &wires); err != nil {
		return nil, err
	}

	customers := make([]crm.Customer, len(wires))
	for i, w := range wires {
		customers[i] = w.record()
	}
	return customers, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindTransport, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return &APIError{Kind: KindTransport, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= 400 {
		return c.mapFailure(resp.StatusCode, env, decodeErr)
	}
	if decodeErr != nil {
		return &APIError{Kind: KindTransport, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if !env.Success {
		return &APIError{Kind: KindServer, Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Kind: KindTransport, Status: resp.StatusCode, Err: fmt.Errorf("decode payload: %w", err)}
		}
	}
	return nil
}

func (c *Client) mapFailure(status int, env envelope, decodeErr error) error {
	if decodeErr != nil {
		return &APIError{
			Kind:   KindTransport,
			Status: status,
			Err:    fmt.Errorf("server returned %d with unreadable body: %w", status, decodeErr),
		}
	}

	apiErr := &APIError{Status: status, Message: env.Message}
	if apiErr.Message == "" {
		apiErr.Message = env.Error
	}

	switch {
	case status == http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case status == http.StatusBadRequest && env.Message == "Email already exists":
		apiErr.Kind = KindConflict
	case status == http.StatusBadRequest:
		apiErr.Kind = KindValidation
	default:
		apiErr.Kind = KindServer
	}
	return apiErr
}
