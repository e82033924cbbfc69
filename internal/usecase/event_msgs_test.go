package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/ManuelArango1229/purchase-order-softdev/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacedMsgCarriesNoCardData(t *testing.T) {
	repo := newFakeRepo()
	order := storedOrder(t, repo, "Tarjeta de crédito")

	msg := usecase.NewOrderPlacedMsg(order)
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "4111111111111111")
	assert.NotContains(t, string(raw), `"cvv"`)
	assert.Contains(t, string(raw), `"metodoPago":{"nombre":"Tarjeta de crédito"}`)
}

func TestOrderPlacedMsgLinesDropOrderBackRef(t *testing.T) {
	repo := newFakeRepo()
	order := storedOrder(t, repo, "Tarjeta de crédito")
	order.Lines[0].OrderID = order.ID

	msg := usecase.NewOrderPlacedMsg(order)
	raw, err := json.Marshal(msg.Lines[0])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), order.ID)
}
