package usecase

import (
	domain "github.com/ManuelArango1229/purchase-order-softdev/internal/entity"
)

const defaultPaymentLabel = "Tarjeta de crédito"

// OrderPlacedMsg is the redacted projection published to RabbitMQ: no card
// number, no CVV, no per-line order back-reference.
type OrderPlacedMsg struct {
	ID            string           `json:"id"`
	CustomerEmail string           `json:"emailCliente"`
	CustomerName  string           `json:"nombreCliente"`
	CustomerDNI   string           `json:"dniCliente"`
	Address       string           `json:"direccion"`
	Lines         []OrderLineMsg   `json:"detalles"`
	Payment       PaymentMethodMsg `json:"metodoPago"`
	Total         string           `json:"valorTotal"`
	PlacedAt      string           `json:"fechaPedido"`
}

type OrderLineMsg struct {
	ProductName string `json:"nombreProducto"`
	Quantity    int    `json:"cantidad"`
	UnitPrice   string `json:"precioUnitario"`
	Subtotal    string `json:"subtotal"`
}

type PaymentMethodMsg struct {
	Nombre string `json:"nombre"`
}

// NewOrderPlacedMsg maps a stored order to its redacted form.
func NewOrderPlacedMsg(order *domain.Order) OrderPlacedMsg {
	lines := make([]OrderLineMsg, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = OrderLineMsg{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.String(),
			Subtotal:    line.Subtotal.String(),
		}
	}
	name := order.Payment.Name
	if name == "" {
		name = defaultPaymentLabel
	}
	return OrderPlacedMsg{
		ID:            order.ID,
		CustomerEmail: order.CustomerEmail,
		CustomerName:  order.CustomerName,
		CustomerDNI:   order.CustomerDNI,
		Address:       order.DeliveryAddress,
		Lines:         lines,
		Payment:       PaymentMethodMsg{Nombre: name},
		Total:         order.Total.String(),
		PlacedAt:      order.PlacedAt.Format("2006-01-02T15:04:05"),
	}
}

// OrderStatusChangedMsg arrives on Kafka from the fulfillment service.
type OrderStatusChangedMsg struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"` // e.g. "IN_TRANSIT"
}
