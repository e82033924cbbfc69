package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ManuelArango1229/purchase-order-softdev/internal/adapter/http/middleware"
	domain "github.com/ManuelArango1229/purchase-order-softdev/internal/entity"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	place *usecase.PlaceOrder
	query *usecase.GetOrderDetails
}

func NewOrderHandler(place *usecase.PlaceOrder, query *usecase.GetOrderDetails) *OrderHandler {
	return &OrderHandler{place: place, query: query}
}

// Wire field names follow the upstream storefront contract.
type placeOrderReq struct {
	Productos []struct {
		Producto string `json:"producto" binding:"required"`
		Cantidad int    `json:"cantidad"`
	} `json:"productos" binding:"required"`

	MetodoPago struct {
		MetodoPago      string `json:"metodo_pago"`
		NumeroTarjeta   string `json:"numeroTarjeta"`
		FechaExpiracion string `json:"fechaExpiracion"`
		CVV             string `json:"cvv"`
		NombreTitular   string `json:"nombreTitular"`
	} `json:"metodoPago" binding:"required"`
}

type orderLineResp struct {
	Producto       string `json:"producto"`
	PrecioUnitario string `json:"precioUnitario"`
	Cantidad       int    `json:"cantidad"`
	Subtotal       string `json:"subtotal"`
}

type placeOrderResp struct {
	ID          string          `json:"id"`
	Detalles    []orderLineResp `json:"detalles"`
	ValorTotal  string          `json:"valorTotal"`
	MetodoPago  string          `json:"metodoPago"`
	DNICliente  string          `json:"dniCliente"`
	FechaPedido time.Time       `json:"fechaPedido"`
}

// PlaceOrder handles POST /v1/orders.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	email := c.GetString(middleware.CustomerEmailKey)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_order", "message": "token does not carry a customer email"})
		return
	}

	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_order", "message": "malformed request body"})
		return
	}

	products := make([]usecase.ProductRequest, len(req.Productos))
	for i, p := range req.Productos {
		products[i] = usecase.ProductRequest{Product: p.Producto, Quantity: p.Cantidad}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	order, err := h.place.Execute(ctx, usecase.PlaceOrderInput{
		CustomerEmail: email,
		Products:      products,
		Payment: usecase.PaymentRequest{
			Method:     req.MetodoPago.MetodoPago,
			CardNumber: req.MetodoPago.NumeroTarjeta,
			Expiration: req.MetodoPago.FechaExpiracion,
			CVV:        req.MetodoPago.CVV,
			HolderName: req.MetodoPago.NombreTitular,
		},
	})
	if err != nil {
		status, code := classify(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			msg = "internal error" // no collaborator detail leaks
		}
		c.JSON(status, gin.H{"error": code, "message": msg})
		return
	}

	lines := make([]orderLineResp, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = orderLineResp{
			Producto:       line.ProductName,
			PrecioUnitario: line.UnitPrice.String(),
			Cantidad:       line.Quantity,
			Subtotal:       line.Subtotal.String(),
		}
	}

	c.JSON(http.StatusCreated, placeOrderResp{
		ID:          order.ID,
		Detalles:    lines,
		ValorTotal:  order.Total.String(),
		MetodoPago:  order.Payment.Name,
		DNICliente:  order.CustomerDNI,
		FechaPedido: order.PlacedAt,
	})
}

// GetInvoice handles GET /v1/orders/invoice/:id.
func (h *OrderHandler) GetInvoice(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id", "message": "order id is not a valid UUID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	view, err := h.query.Execute(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "internal error"})
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "no order with the given id"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyOrder), errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, "invalid_order"
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		return http.StatusBadRequest, "invalid_payment_method"
	}
	var notFound usecase.ProductNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusBadRequest, "product_not_found"
	}
	var noStock usecase.InsufficientStockError
	if errors.As(err, &noStock) {
		return http.StatusBadRequest, "insufficient_stock"
	}
	return http.StatusInternalServerError, "internal_error"
}
