package inventory

import (
	"fmt"
	"strings"

	"github.com/regkit/regkit/internal/registry"
)

// Item is a stocked electronics item, keyed by SKU.
type Item struct {
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Brand          string `json:"brand,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unit_price"` // cents
	WarrantyMonths int    `json:"warranty_months,omitempty"`
}

// NewItem validates and constructs an Item.
func NewItem(sku, name, brand string, quantity int, unitPrice int64, warrantyMonths int) (Item, error) {
	if strings.TrimSpace(sku) == "" {
		return Item{}, fmt.Errorf("sku is required: %w", registry.ErrInvalidValue)
	}
	if strings.TrimSpace(name) == "" {
		return Item{}, fmt.Errorf("item name is required: %w", registry.ErrInvalidValue)
	}
	if quantity < 0 {
		return Item{}, fmt.Errorf("quantity must not be negative, got %d: %w", quantity, registry.ErrInvalidValue)
	}
	if unitPrice < 0 {
		return Item{}, fmt.Errorf("unit price must not be negative, got %d: %w", unitPrice, registry.ErrInvalidValue)
	}
	if warrantyMonths < 0 {
		return Item{}, fmt.Errorf("warranty months must not be negative, got %d: %w", warrantyMonths, registry.ErrInvalidValue)
	}
	return Item{
		SKU:            sku,
		Name:           name,
		Brand:          brand,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		WarrantyMonths: warrantyMonths,
	}, nil
}
