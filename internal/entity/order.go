package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCreated    Status = "CREATED"
	StatusProcessing Status = "PROCESSING"
	StatusInTransit  Status = "IN_TRANSIT"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one product")
	ErrInvalidQuantity = errors.New("product quantity must be greater than 0")
)

// OrderLine is a single product/quantity pair within an order. Subtotal is
// computed once at construction and never recomputed.
type OrderLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	OrderID     string // back-reference for lookup only
}

func NewOrderLine(productName string, quantity int, unitPrice decimal.Decimal) OrderLine {
	return OrderLine{
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Order is created once by the place-order workflow and is immutable
// afterwards; status changes come from the fulfillment feed, not from here.
type Order struct {
	ID              string
	CustomerEmail   string
	CustomerName    string
	CustomerDNI     string
	DeliveryAddress string
	Lines           []OrderLine
	Payment         PaymentMethod
	Total           decimal.Decimal
	PlacedAt        time.Time
	Status          Status
}
