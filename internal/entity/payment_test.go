package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayment() PaymentMethod {
	return PaymentMethod{
		Name:       "Tarjeta de crédito",
		CardNumber: "4111111111111111",
		Expiration: "12/30",
		CVV:        "123",
		HolderName: "Ada Lovelace",
	}
}

func TestPaymentMethodValidate(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	t.Run("valid card passes", func(t *testing.T) {
		require.NoError(t, validPayment().Validate(now))
	})

	t.Run("four digit cvv passes", func(t *testing.T) {
		p := validPayment()
		p.CVV = "1234"
		require.NoError(t, p.Validate(now))
	})

	t.Run("expiring this month is not expired", func(t *testing.T) {
		p := validPayment()
		p.Expiration = "09/26"
		require.NoError(t, p.Validate(now))
	})

	t.Run("two digit years above 68 are 20xx", func(t *testing.T) {
		// time.Parse("01/06", "12/99") would yield 1999 and reject the card.
		for _, exp := range []string{"12/69", "12/99"} {
			p := validPayment()
			p.Expiration = exp
			require.NoError(t, p.Validate(now), exp)
		}
	})

	cases := []struct {
		name   string
		mutate func(*PaymentMethod)
	}{
		{"short card number", func(p *PaymentMethod) { p.CardNumber = "411111111111111" }},
		{"long card number", func(p *PaymentMethod) { p.CardNumber = "41111111111111112" }},
		{"card number with letters", func(p *PaymentMethod) { p.CardNumber = "4111x11111111111" }},
		{"two digit cvv", func(p *PaymentMethod) { p.CVV = "12" }},
		{"five digit cvv", func(p *PaymentMethod) { p.CVV = "12345" }},
		{"blank holder name", func(p *PaymentMethod) { p.HolderName = "   " }},
		{"empty expiration", func(p *PaymentMethod) { p.Expiration = "" }},
		{"malformed expiration", func(p *PaymentMethod) { p.Expiration = "2030-12" }},
		{"single digit month", func(p *PaymentMethod) { p.Expiration = "9/30" }},
		{"month out of range", func(p *PaymentMethod) { p.Expiration = "13/30" }},
		{"four digit year", func(p *PaymentMethod) { p.Expiration = "12/2030" }},
		{"expired last month", func(p *PaymentMethod) { p.Expiration = "08/26" }},
		{"expired last year", func(p *PaymentMethod) { p.Expiration = "12/25" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayment()
			tc.mutate(&p)
			err := p.Validate(now)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
		})
	}
}
