package market

import (
	"fmt"
	"strings"
	"time"

	"github.com/regkit/regkit/internal/registry"
)

// Product is a stocked grocery product, keyed by product code.
type Product struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewProduct validates and constructs a Product. now is the reference clock
// for the expiry check: a product that already expired is never constructed.
func NewProduct(code, name, category string, quantity int, expiresAt, now time.Time) (Product, error) {
	if strings.TrimSpace(code) == "" {
		return Product{}, fmt.Errorf("product code is required: %w", registry.ErrInvalidValue)
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, fmt.Errorf("product name is required: %w", registry.ErrInvalidValue)
	}
	if strings.TrimSpace(category) == "" {
		return Product{}, fmt.Errorf("product category is required: %w", registry.ErrInvalidValue)
	}
	if quantity < 0 {
		return Product{}, fmt.Errorf("quantity must not be negative, got %d: %w", quantity, registry.ErrInvalidValue)
	}
	if expiresAt.Before(now) {
		return Product{}, fmt.Errorf("expiry %s is in the past: %w",
			expiresAt.Format(time.DateOnly), registry.ErrInvalidValue)
	}
	return Product{Code: code, Name: name, Category: category, Quantity: quantity, ExpiresAt: expiresAt}, nil
}

// Expired reports whether the product is past its expiry at now.
func (p Product) Expired(now time.Time) bool {
	return p.ExpiresAt.Before(now)
}
