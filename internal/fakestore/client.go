package fakestore

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

// API defines the product operations the catalog needs from the remote
// store. This interface is implemented by *Client and can be used for testing.
type API interface {
	FetchProducts(ctx context.Context) ([]Product, error)
	FetchProduct(ctx context.Context, id int) (*Product, error)
	CreateProduct(ctx context.Context, draft Draft) (*Product, error)
	UpdateProduct(ctx context.Context, id int, draft Draft) error
	DeleteProduct(ctx context.Context, id int) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to a fakestoreapi.com-compatible HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://fakestoreapi.com"
	defaultUserAgent = "storefront/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty value uses the
// public fakestoreapi.com endpoint.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchProducts retrieves the full product collection.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchProduct retrieves a single product by id.
func (c *Client) FetchProduct(ctx context.Context, id int) (*Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.Itoa(id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CreateProduct posts a new product. The API's response shape varies between
// deployments (a bare id echo or the full resource); both are tolerated and
// whatever the server returned is reported back.
func (c *Client) CreateProduct(ctx context.Context, draft Draft) (*Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}
	var payload Product
	if err := c.do(ctx, http.MethodPost, "/products", draft, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateProduct replaces the editable attributes of an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id int, draft Draft) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if err := draft.Validate(); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}
	return c.do(ctx, http.MethodPut, "/products/"+strconv.Itoa(id), draft, nil)
}

// DeleteProduct removes a product by id. The acknowledgement payload is
// discarded.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, "/products/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s %s: HTTP %d", method, rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
