package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	domain "github.com/ManuelArango1229/purchase-order-softdev/internal/entity"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/usecase"
)

// CustomerClient resolves customer profiles from the customer directory
// service over plain JSON HTTP.
type CustomerClient struct {
	baseURL string
	http    *http.Client
}

func NewCustomerClient(baseURL string, timeout time.Duration) *CustomerClient {
	return &CustomerClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type customerResponse struct {
	Email     string `json:"email"`
	Nombre    string `json:"nombre"`
	DNI       string `json:"dni"`
	Direccion string `json:"direccion"`
}

func (c *CustomerClient) Lookup(ctx context.Context, email string) (domain.CustomerProfile, error) {
	u := c.baseURL + "/buscar/" + url.PathEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.CustomerProfile{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.CustomerProfile{}, fmt.Errorf("customer directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.CustomerProfile{}, fmt.Errorf("customer directory: unexpected status %d for %s", resp.StatusCode, email)
	}

	var body customerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.CustomerProfile{}, fmt.Errorf("customer directory: decode: %w", err)
	}

	return domain.CustomerProfile{
		Email:   body.Email,
		Name:    body.Nombre,
		DNI:     body.DNI,
		Address: body.Direccion,
	}, nil
}

var _ usecase.CustomerDirectory = (*CustomerClient)(nil)
