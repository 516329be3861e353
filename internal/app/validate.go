package app

import (
	"math"
	"strings"
	"time"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/shopspring/decimal"
)

// maxPrice is the first value NUMERIC(10,2) cannot hold.
var maxPrice = decimal.New(1, 8)

const (
	maxPriceIntDigits = 8
	// minPriceExponent still admits zero-padded input such as "12.500000".
	minPriceExponent = -18
)

func requireText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", domain.Invalid(field, "is required")
	}
	return v, nil
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return domain.Invalid(field, "must be a positive id")
	}
	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.Invalid("email", "is required")
	}
	if !isValidEmail(email) {
		return "", domain.Invalid("email", "must look like name@domain.tld")
	}
	return email, nil
}

func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	domainPart := parts[1]
	return len(parts[0]) > 0 &&
		strings.Contains(domainPart, ".") &&
		!strings.HasPrefix(domainPart, ".") &&
		!strings.HasSuffix(domainPart, ".") &&
		!strings.ContainsAny(email, " \t\r\n")
}

// eventDay drops the clock part of d, keeping its calendar day.
func eventDay(d time.Time) (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, domain.Invalid("date", "is required")
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

// validatePrice checks the scale before Round and the comparison, which
// both rescale by the exponent.
func validatePrice(p decimal.Decimal) error {
	switch {
	case p.IsNegative():
		return domain.Invalid("price", "must not be negative")
	case p.Exponent() < minPriceExponent:
		return domain.Invalid("price", "must have at most two decimal places")
	case p.NumDigits()+int(p.Exponent()) > maxPriceIntDigits:
		return domain.Invalid("price", "is too large")
	case !p.Equal(p.Round(2)):
		return domain.Invalid("price", "must have at most two decimal places")
	case p.GreaterThanOrEqual(maxPrice):
		return domain.Invalid("price", "is too large")
	}
	return nil
}

func validateQuantity(q int) error {
	if q < 1 {
		return domain.Invalid("quantity_available", "must be at least 1")
	}
	if q > math.MaxInt32 {
		return domain.Invalid("quantity_available", "is too large")
	}
	return nil
}
