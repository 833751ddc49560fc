package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/logoproof/Katalog-tsalis/internal/domain/catalog"
	"github.com/logoproof/Katalog-tsalis/internal/domain/pack"
	"github.com/logoproof/Katalog-tsalis/internal/pricing"
)

// Client is the storefront's handle on the backend collaborator. Requests
// carry the public API key; no retries, no timeouts beyond the transport's.
type Client struct {
	base   string
	apiKey string
	hc     *http.Client
}

func NewClient(base, apiKey string) *Client {
	return &Client{base: base, apiKey: apiKey, hc: http.DefaultClient}
}

func (c *Client) PricedProducts(ctx context.Context, mode pricing.Mode) ([]catalog.PricedProduct, error) {
	var body struct {
		Items []catalog.PricedProduct `json:"items"`
	}
	q := url.Values{"mode": {string(mode)}}
	if err := c.get(ctx, "/api/products?"+q.Encode(), &body); err != nil {
		return nil, err
	}
	return body.Items, nil
}

func (c *Client) Packages(ctx context.Context) ([]pack.Package, error) {
	var body struct {
		Packages []pack.Package `json:"packages"`
	}
	if err := c.get(ctx, "/api/packages", &body); err != nil {
		return nil, err
	}
	return body.Packages, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend: %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
