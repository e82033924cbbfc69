package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ManuelArango1229/purchase-order-softdev/internal/adapter/http/middleware"
	domain "github.com/ManuelArango1229/purchase-order-softdev/internal/entity"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectory struct{}

func (stubDirectory) Lookup(_ context.Context, email string) (domain.CustomerProfile, error) {
	return domain.CustomerProfile{
		Email:   email,
		Name:    "Maria Gomez",
		DNI:     "10203040",
		Address: "Calle 5 #10-20",
	}, nil
}

type stubCatalog struct{}

func (stubCatalog) Exists(_ context.Context, name string) (bool, error) {
	return name == "Widget", nil
}
func (stubCatalog) HasStock(_ context.Context, _ string, qty int) (bool, error) {
	return qty <= 5, nil
}
func (stubCatalog) PriceOf(_ context.Context, _ string) (decimal.Decimal, error) {
	return decimal.RequireFromString("10.00"), nil
}
func (stubCatalog) DecrementStock(_ context.Context, _ string, _ int) error { return nil }

type stubRepo struct {
	orders map[string]*domain.Order
}

func (r *stubRepo) Save(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.orders[o.ID] = o
	return o, nil
}

func (r *stubRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	return r.orders[id], nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, _ string, _ domain.Status) error { return nil }

type stubPublisher struct{}

func (stubPublisher) PublishPlaced(_ context.Context, _ usecase.OrderPlacedMsg) error { return nil }

func newTestRouter(t *testing.T, email string) (*gin.Engine, *stubRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &stubRepo{orders: map[string]*domain.Order{}}
	place := usecase.NewPlaceOrder(stubDirectory{}, stubCatalog{}, repo, stubPublisher{})
	query := usecase.NewGetOrderDetails(repo)
	h := NewOrderHandler(place, query)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if email != "" {
			c.Set(middleware.CustomerEmailKey, email)
		}
	})
	r.POST("/v1/orders", h.PlaceOrder)
	r.GET("/v1/orders/invoice/:id", h.GetInvoice)
	return r, repo
}

const validBody = `{
	"productos": [{"producto": "Widget", "cantidad": 2}],
	"metodoPago": {
		"metodo_pago": "Tarjeta de crédito",
		"numeroTarjeta": "4111111111111111",
		"fechaExpiracion": "12/99",
		"cvv": "123",
		"nombreTitular": "Maria Gomez"
	}
}`

func TestPlaceOrderHandlerCreated(t *testing.T) {
	r, _ := newTestRouter(t, "maria@correo.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID         string `json:"id"`
		ValorTotal string `json:"valorTotal"`
		DNICliente string `json:"dniCliente"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, "20", resp.ValorTotal)
	assert.Equal(t, "10203040", resp.DNICliente)
}

func TestPlaceOrderHandlerNoEmailClaim(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderHandlerInvalidQuantity(t *testing.T) {
	r, _ := newTestRouter(t, "maria@correo.com")

	body := strings.Replace(validBody, `"cantidad": 2`, `"cantidad": 0`, 1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_order")
}

func TestPlaceOrderHandlerInsufficientStock(t *testing.T) {
	r, repo := newTestRouter(t, "maria@correo.com")

	body := strings.Replace(validBody, `"cantidad": 2`, `"cantidad": 10`, 1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient_stock")
	assert.Empty(t, repo.orders)
}

func TestGetInvoiceHandlerBadID(t *testing.T) {
	r, _ := newTestRouter(t, "maria@correo.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/invoice/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetInvoiceHandlerNotFound(t *testing.T) {
	r, _ := newTestRouter(t, "maria@correo.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/invoice/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInvoiceHandlerRedacts(t *testing.T) {
	r, repo := newTestRouter(t, "maria@correo.com")

	id := uuid.NewString()
	repo.orders[id] = &domain.Order{
		ID:            id,
		CustomerEmail: "maria@correo.com",
		Lines:         []domain.OrderLine{domain.NewOrderLine("Widget", 2, decimal.RequireFromString("10.00"))},
		Payment: domain.PaymentMethod{
			CardNumber: "4111111111111111",
			CVV:        "123",
		},
		Total:    decimal.RequireFromString("20.00"),
		PlacedAt: time.Now(),
		Status:   domain.StatusCreated,
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/invoice/"+id, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "4111111111111111")
	assert.Contains(t, w.Body.String(), "Tarjeta de crédito") // defaulted label
}
