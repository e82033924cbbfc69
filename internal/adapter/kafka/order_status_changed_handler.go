package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/ManuelArango1229/purchase-order-softdev/internal/adapter/repo"
	domain "github.com/ManuelArango1229/purchase-order-softdev/internal/entity"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/usecase"
)

// OrderStatusChangedHandler applies status updates from the fulfillment
// service. The transition table lives over there; statuses arriving here are
// written verbatim, unknown labels are rejected.
type OrderStatusChangedHandler struct {
	repo usecase.OrderRepo
}

func NewOrderStatusChangedHandler(r usecase.OrderRepo) *OrderStatusChangedHandler {
	return &OrderStatusChangedHandler{repo: r}
}

var knownStatuses = map[domain.Status]bool{
	domain.StatusCreated:    true,
	domain.StatusProcessing: true,
	domain.StatusInTransit:  true,
	domain.StatusDelivered:  true,
	domain.StatusCancelled:  true,
}

func (h *OrderStatusChangedHandler) Handle(ctx context.Context, ev usecase.OrderStatusChangedMsg) error {
	status := domain.Status(ev.Status)
	if !knownStatuses[status] {
		return fmt.Errorf("unknown order status %q for order %s", ev.Status, ev.OrderID)
	}

	err := h.repo.UpdateStatus(ctx, ev.OrderID, status)
	if errors.Is(err, repo.ErrNotFound) {
		// Order placed elsewhere or purged; nothing to update.
		return nil
	}
	return err
}
