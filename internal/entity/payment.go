package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

// PaymentMethod is a value object embedded in Order. CardNumber and CVV must
// never leave the service unredacted.
type PaymentMethod struct {
	Name       string // display label, e.g. "Tarjeta de crédito"
	CardNumber string
	Expiration string // MM/yy
	CVV        string
	HolderName string
}

// Validate checks the card fields against the rules the gateway enforces. A
// card expiring in the current month is still accepted.
func (p PaymentMethod) Validate(now time.Time) error {
	if !cardNumberRe.MatchString(p.CardNumber) {
		return fmt.Errorf("%w: card number must be 16 digits", ErrInvalidPaymentMethod)
	}
	if !cvvRe.MatchString(p.CVV) {
		return fmt.Errorf("%w: cvv must be 3 or 4 digits", ErrInvalidPaymentMethod)
	}
	if strings.TrimSpace(p.HolderName) == "" {
		return fmt.Errorf("%w: holder name is required", ErrInvalidPaymentMethod)
	}
	if strings.TrimSpace(p.Expiration) == "" {
		return fmt.Errorf("%w: expiration date is required", ErrInvalidPaymentMethod)
	}
	month, year, ok := parseExpiration(p.Expiration)
	if !ok {
		return fmt.Errorf("%w: expiration date must be MM/yy", ErrInvalidPaymentMethod)
	}
	if year < now.Year() || (year == now.Year() && month < now.Month()) {
		return fmt.Errorf("%w: card is expired", ErrInvalidPaymentMethod)
	}
	return nil
}

// parseExpiration reads a strict MM/yy pair. Two-digit years always mean
// 20xx; time.Parse would map 69-99 to 19xx.
func parseExpiration(s string) (time.Month, int, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return time.Month(m), 2000 + y, true
}
