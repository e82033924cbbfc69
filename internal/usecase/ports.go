package usecase

import (
	"context"

	domain "github.com/ManuelArango1229/purchase-order-softdev/internal/entity"
	"github.com/shopspring/decimal"
)

// CustomerDirectory resolves customer profiles by email.
type CustomerDirectory interface {
	Lookup(ctx context.Context, email string) (domain.CustomerProfile, error)
}

// ProductCatalog is the pricing/inventory peer service.
type ProductCatalog interface {
	Exists(ctx context.Context, productName string) (bool, error)
	HasStock(ctx context.Context, productName string, quantity int) (bool, error)
	PriceOf(ctx context.Context, productName string) (decimal.Decimal, error)
	DecrementStock(ctx context.Context, productName string, quantity int) error
}

// OrderRepo persists orders. Save returns the canonical stored form.
// FindByID returns (nil, nil) when no order matches.
type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
}

// OrderPublisher notifies downstream consumers of a placed order.
// Callers treat publish failures as best-effort.
type OrderPublisher interface {
	PublishPlaced(ctx context.Context, msg OrderPlacedMsg) error
}
