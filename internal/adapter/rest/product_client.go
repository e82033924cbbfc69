package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ManuelArango1229/purchase-order-softdev/internal/usecase"
	"github.com/shopspring/decimal"
)

// ProductClient talks to the pricing/inventory service. Stock decrements are
// plain PUTs with no reservation semantics; the service owns the counter.
type ProductClient struct {
	baseURL string
	http    *http.Client
}

func NewProductClient(baseURL string, timeout time.Duration) *ProductClient {
	return &ProductClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *ProductClient) Exists(ctx context.Context, productName string) (bool, error) {
	var body struct {
		Existe bool `json:"existe"`
	}
	if err := c.getJSON(ctx, "/existe/"+url.PathEscape(productName), &body); err != nil {
		return false, err
	}
	return body.Existe, nil
}

func (c *ProductClient) HasStock(ctx context.Context, productName string, quantity int) (bool, error) {
	var body struct {
		Stock int `json:"stock"`
	}
	if err := c.getJSON(ctx, "/stock/"+url.PathEscape(productName), &body); err != nil {
		return false, err
	}
	return body.Stock >= quantity, nil
}

func (c *ProductClient) PriceOf(ctx context.Context, productName string) (decimal.Decimal, error) {
	var body struct {
		Precio decimal.Decimal `json:"precio"`
	}
	if err := c.getJSON(ctx, "/precio/"+url.PathEscape(productName), &body); err != nil {
		return decimal.Zero, err
	}
	return body.Precio, nil
}

func (c *ProductClient) DecrementStock(ctx context.Context, productName string, quantity int) error {
	payload, err := json.Marshal(map[string]any{
		"nombre":   productName,
		"cantidad": quantity,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/stock/actualizar", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("product service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("product service: unexpected status %d decrementing %s", resp.StatusCode, productName)
	}
	return nil
}

func (c *ProductClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("product service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("product service: unexpected status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("product service: decode %s: %w", path, err)
	}
	return nil
}

var _ usecase.ProductCatalog = (*ProductClient)(nil)
