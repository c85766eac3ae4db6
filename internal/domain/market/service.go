// Package market implements the grocery inventory demo: perishable products
// with expiry dates, quantity movements, and a category index.
package market

import (
	"fmt"
	"time"

	"github.com/regkit/regkit/internal/registry"
)

type Service struct {
	products *registry.Registry[string, Product]
}

func NewService() *Service {
	return &Service{products: registry.New[string, Product]()}
}

// Stock adds a new product. The product must come from NewProduct.
func (s *Service) Stock(p Product) error {
	return s.products.Add(p.Code, p)
}

// Remove deletes a product.
func (s *Service) Remove(code string) error {
	return s.products.Remove(code)
}

func (s *Service) Product(code string) (Product, error) {
	return s.products.Get(code)
}

func (s *Service) Products() []Product {
	return s.products.List()
}

// Sell removes n units of a product. Selling more than is on hand is
// rejected and the product is left unchanged.
func (s *Service) Sell(code string, n int) error {
	if n <= 0 {
		return fmt.Errorf("sold quantity must be positive, got %d: %w", n, registry.ErrInvalidValue)
	}
	return s.products.Update(code, func(p Product) (Product, error) {
		if p.Quantity < n {
			return p, fmt.Errorf("cannot sell %d of %s, only %d on hand: %w",
				n, p.Code, p.Quantity, registry.ErrInvalidValue)
		}
		p.Quantity -= n
		return p, nil
	})
}

// Restock adds n units of a product.
func (s *Service) Restock(code string, n int) error {
	if n <= 0 {
		return fmt.Errorf("restocked quantity must be positive, got %d: %w", n, registry.ErrInvalidValue)
	}
	return s.products.Update(code, func(p Product) (Product, error) {
		p.Quantity += n
		return p, nil
	})
}

// SweepExpired removes every product past its expiry at now and returns the
// removed products in stocking order.
func (s *Service) SweepExpired(now time.Time) ([]Product, error) {
	var expired []Product
	for _, p := range s.products.List() {
		if p.Expired(now) {
			expired = append(expired, p)
		}
	}
	for _, p := range expired {
		if err := s.products.Remove(p.Code); err != nil {
			return expired, err
		}
	}
	return expired, nil
}

// ByCategory groups current products by category, stocking order preserved
// within each group. Derived view: rebuild after any change.
func (s *Service) ByCategory() map[string][]Product {
	return registry.GroupBy(s.products, func(p Product) string { return p.Category })
}
