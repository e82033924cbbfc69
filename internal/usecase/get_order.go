package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// OrderDetails is the redacted invoice view returned to callers. It carries
// the same shape as the published event.
type OrderDetails = OrderPlacedMsg

// GetOrderDetails resolves an order by id into its redacted view.
type GetOrderDetails struct {
	repo OrderRepo
}

func NewGetOrderDetails(repo OrderRepo) *GetOrderDetails {
	return &GetOrderDetails{repo: repo}
}

// Execute returns (nil, nil) when the id is not a well-formed UUID or no such
// order exists; callers cannot tell the two apart.
func (uc *GetOrderDetails) Execute(ctx context.Context, orderID string) (*OrderDetails, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, nil
	}

	order, err := uc.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", orderID, err)
	}
	if order == nil {
		return nil, nil
	}

	view := NewOrderPlacedMsg(order)
	return &view, nil
}
