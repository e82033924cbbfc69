package usecase

import (
	"context"
	"fmt"
	"time"

	domain "github.com/ManuelArango1229/purchase-order-softdev/internal/entity"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductNotFoundError names the product a placement failed on.
type ProductNotFoundError struct {
	Product string
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %q does not exist", e.Product)
}

// InsufficientStockError names the product and the quantity that could not be
// covered.
type InsufficientStockError struct {
	Product   string
	Requested int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q, requested quantity: %d", e.Product, e.Requested)
}

type ProductRequest struct {
	Product  string
	Quantity int
}

type PaymentRequest struct {
	Method     string
	CardNumber string
	Expiration string
	CVV        string
	HolderName string
}

type PlaceOrderInput struct {
	CustomerEmail string
	Products      []ProductRequest
	Payment       PaymentRequest
}

// PlaceOrder orchestrates the order-placement workflow: validate, resolve the
// customer, price and reserve each line, persist, then notify.
type PlaceOrder struct {
	customers CustomerDirectory
	catalog   ProductCatalog
	repo      OrderRepo
	publisher OrderPublisher
	now       func() time.Time
}

func NewPlaceOrder(customers CustomerDirectory, catalog ProductCatalog, repo OrderRepo, publisher OrderPublisher) *PlaceOrder {
	return &PlaceOrder{
		customers: customers,
		catalog:   catalog,
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (uc *PlaceOrder) Execute(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	// All validation happens before any collaborator side effect, so a bad
	// request never touches inventory.
	if len(in.Products) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	for _, p := range in.Products {
		if p.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	payment := domain.PaymentMethod{
		Name:       in.Payment.Method,
		CardNumber: in.Payment.CardNumber,
		Expiration: in.Payment.Expiration,
		CVV:        in.Payment.CVV,
		HolderName: in.Payment.HolderName,
	}
	if err := payment.Validate(uc.now()); err != nil {
		return nil, err
	}

	profile, err := uc.customers.Lookup(ctx, in.CustomerEmail)
	if err != nil {
		return nil, fmt.Errorf("lookup customer %s: %w", in.CustomerEmail, err)
	}

	// Requested lines keep their input order; duplicate product names stay
	// distinct. Stock decrements are not rolled back if a later line fails —
	// there is no reservation step in front of this catalog.
	lines := make([]domain.OrderLine, 0, len(in.Products))
	total := decimal.Zero
	for _, p := range in.Products {
		exists, err := uc.catalog.Exists(ctx, p.Product)
		if err != nil {
			return nil, fmt.Errorf("check product %s: %w", p.Product, err)
		}
		if !exists {
			return nil, ProductNotFoundError{Product: p.Product}
		}

		ok, err := uc.catalog.HasStock(ctx, p.Product, p.Quantity)
		if err != nil {
			return nil, fmt.Errorf("check stock %s: %w", p.Product, err)
		}
		if !ok {
			return nil, InsufficientStockError{Product: p.Product, Requested: p.Quantity}
		}

		price, err := uc.catalog.PriceOf(ctx, p.Product)
		if err != nil {
			return nil, fmt.Errorf("fetch price %s: %w", p.Product, err)
		}

		line := domain.NewOrderLine(p.Product, p.Quantity, price)
		lines = append(lines, line)
		total = total.Add(line.Subtotal)

		if err := uc.catalog.DecrementStock(ctx, p.Product, p.Quantity); err != nil {
			return nil, fmt.Errorf("decrement stock %s: %w", p.Product, err)
		}
	}

	order := &domain.Order{
		ID:              uuid.NewString(),
		CustomerEmail:   profile.Email,
		CustomerName:    profile.Name,
		CustomerDNI:     profile.DNI,
		DeliveryAddress: profile.Address,
		Lines:           lines,
		Payment:         payment,
		Total:           total,
		PlacedAt:        uc.now(),
		Status:          domain.StatusCreated,
	}

	stored, err := uc.repo.Save(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	// Best-effort notification: a broker failure must never fail the
	// placement or roll back the persisted order.
	if err := uc.publisher.PublishPlaced(ctx, NewOrderPlacedMsg(stored)); err != nil {
		logging.FromCtx(ctx).Error("order placed event publish failed",
			"order_id", stored.ID, "err", err)
	}

	return stored, nil
}
