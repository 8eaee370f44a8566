// internal/adapters/out/commerce/client.go
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"voltmart/internal/domain/catalog"
	"voltmart/internal/domain/product"
)

var (
	// ErrRemote marks any transport failure or non-2xx response.
	ErrRemote = errors.New("commerce: remote call failed")
	// ErrMalformed marks a 2xx response whose body did not decode into the
	// expected shape.
	ErrMalformed = errors.New("commerce: malformed response")
)

// Client talks to the remote commerce REST API. Route shapes are a fixed
// contract owned by that API; responses are decoded into typed structs here
// so malformed payloads become typed errors at the boundary.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// baseURL example:
// - Cloud Run: https://commerce-api-xxxx.europe-north1.run.app
// - local: http://localhost:9090
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithAPIKey sets a service-level key used as the bearer on calls
// that carry no visitor token.
func NewClientWithAPIKey(baseURL, apiKey string) *Client {
	c := NewClient(baseURL)
	c.apiKey = strings.TrimSpace(apiKey)
	return c
}

// DefaultPageSize matches the storefront's product grid.
const DefaultPageSize = 12

// Categories fetches the full category tree.
func (c *Client) Categories(ctx context.Context) ([]catalog.CategoryNode, error) {
	var out []catalog.CategoryNode
	if err := c.doJSON(ctx, http.MethodGet, "/category/all", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchProducts fetches one listing page for the catalog query state.
func (c *Client) SearchProducts(ctx context.Context, q catalog.Query) (product.Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(DefaultPageSize))
	params.Set("direction", string(q.Sort))
	if s := strings.TrimSpace(q.Search); s != "" {
		params.Set("name", s)
	}
	if len(q.CategoryIDs) > 0 {
		toks := make([]string, 0, len(q.CategoryIDs))
		for _, id := range q.CategoryIDs {
			toks = append(toks, strconv.FormatInt(id, 10))
		}
		params.Set("categoryId", strings.Join(toks, ","))
	}
	if q.MinPrice > 0 {
		params.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		params.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}

	var out product.Page
	if err := c.doJSON(ctx, http.MethodGet, "/product?"+params.Encode(), "", nil, &out); err != nil {
		return product.Page{}, err
	}
	if out.Content == nil {
		out.Content = []product.Product{}
	}
	return out, nil
}

// PopularProducts fetches the landing-page selection.
func (c *Client) PopularProducts(ctx context.Context) ([]product.Product, error) {
	params := url.Values{}
	params.Set("page", "0")
	params.Set("size", strconv.Itoa(DefaultPageSize))
	params.Set("direction", string(catalog.SortAsc))
	params.Set("isPopular", "true")

	var out product.Page
	if err := c.doJSON(ctx, http.MethodGet, "/product?"+params.Encode(), "", nil, &out); err != nil {
		return nil, err
	}
	return out.Content, nil
}

// ProductsByIDs resolves display data for guest-cart lines in one call.
func (c *Client) ProductsByIDs(ctx context.Context, ids []int64) ([]product.Product, error) {
	if len(ids) == 0 {
		return []product.Product{}, nil
	}
	var out []product.Product
	if err := c.doJSON(ctx, http.MethodPost, "/product/bulk", "", ids, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MaxPrice fetches the server-reported maximum price; the catalog slider
// range is [0, max].
func (c *Client) MaxPrice(ctx context.Context) (product.PriceRange, error) {
	var out struct {
		MaxPrice float64 `json:"maxPrice"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/product/max-price", "", nil, &out); err != nil {
		return product.PriceRange{}, err
	}
	return product.PriceRange{Min: 0, Max: out.MaxPrice}, nil
}

// FetchImage retrieves an image by numeric id, returning the body and its
// content type.
func (c *Client) FetchImage(ctx context.Context, id int64) ([]byte, string, error) {
	if c == nil || c.baseURL == "" {
		return nil, "", fmt.Errorf("%w: client not configured", ErrRemote)
	}

	u := c.baseURL + "/image/" + strconv.FormatInt(id, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRemote, err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, "", fmt.Errorf("%w: status=%d url=%s", ErrRemote, res.StatusCode, u)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 8<<20))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRemote, err)
	}
	ct := res.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return body, ct, nil
}

// -------------------------
// transport helper
// -------------------------

// doJSON performs one JSON round trip. bearer is attached as-is when
// non-empty. out may be nil for calls whose body is irrelevant.
func (c *Client) doJSON(ctx context.Context, method, path, bearer string, in any, out any) error {
	if c == nil || c.baseURL == "" {
		return fmt.Errorf("%w: client not configured", ErrRemote)
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrRemote, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer == "" {
		bearer = c.apiKey
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 1<<10))
		return fmt.Errorf("%w: status=%d method=%s path=%s body=%s",
			ErrRemote, res.StatusCode, method, path, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}

	dec := json.NewDecoder(io.LimitReader(res.Body, 4<<20))
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ErrMalformed, method, path, err)
	}
	return nil
}
