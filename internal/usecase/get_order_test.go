package usecase_test

import (
	"context"
	"testing"
	"time"

	domain "github.com/ManuelArango1229/purchase-order-softdev/internal/entity"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/usecase"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, repo *fakeRepo, paymentName string) *domain.Order {
	t.Helper()
	order := &domain.Order{
		ID:              uuid.NewString(),
		CustomerEmail:   "maria@correo.com",
		CustomerName:    "Maria Gomez",
		CustomerDNI:     "10203040",
		DeliveryAddress: "Calle 5 #10-20",
		Lines: []domain.OrderLine{
			domain.NewOrderLine("Widget", 2, price("10.00")),
		},
		Payment: domain.PaymentMethod{
			Name:       paymentName,
			CardNumber: "4111111111111111",
			Expiration: "12/99",
			CVV:        "123",
			HolderName: "Maria Gomez",
		},
		Total:    price("20.00"),
		PlacedAt: time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC),
		Status:   domain.StatusCreated,
	}
	stored, err := repo.Save(context.Background(), order)
	require.NoError(t, err)
	return stored
}

func TestGetOrderDetailsMalformedID(t *testing.T) {
	uc := usecase.NewGetOrderDetails(newFakeRepo())

	view, err := uc.Execute(context.Background(), "not-a-uuid")
	require.NoError(t, err, "malformed id fails softly")
	assert.Nil(t, view)
}

func TestGetOrderDetailsMiss(t *testing.T) {
	uc := usecase.NewGetOrderDetails(newFakeRepo())

	view, err := uc.Execute(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestGetOrderDetailsRedactedView(t *testing.T) {
	repo := newFakeRepo()
	order := storedOrder(t, repo, "Tarjeta débito")
	uc := usecase.NewGetOrderDetails(repo)

	view, err := uc.Execute(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, order.ID, view.ID)
	assert.Equal(t, "maria@correo.com", view.CustomerEmail)
	assert.Equal(t, "Tarjeta débito", view.Payment.Nombre)
	assert.Equal(t, "20", view.Total)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Widget", view.Lines[0].ProductName)
	assert.Equal(t, 2, view.Lines[0].Quantity)
}

func TestGetOrderDetailsDefaultsPaymentLabel(t *testing.T) {
	repo := newFakeRepo()
	order := storedOrder(t, repo, "")
	uc := usecase.NewGetOrderDetails(repo)

	view, err := uc.Execute(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "Tarjeta de crédito", view.Payment.Nombre)
}
