// Package inventory implements the electronics inventory demo: a stocked item
// registry with quantity movements and a JSON snapshot on disk.
package inventory

import (
	"fmt"

	"github.com/regkit/regkit/internal/platform/snapshot"
	"github.com/regkit/regkit/internal/registry"
)

type Service struct {
	items *registry.Registry[string, Item]
}

func NewService() *Service {
	return &Service{items: registry.New[string, Item]()}
}

// Stock adds a new item. The item must come from NewItem.
func (s *Service) Stock(item Item) error {
	return s.items.Add(item.SKU, item)
}

// Delist removes an item regardless of remaining quantity.
func (s *Service) Delist(sku string) error {
	return s.items.Remove(sku)
}

func (s *Service) Item(sku string) (Item, error) {
	return s.items.Get(sku)
}

func (s *Service) Items() []Item {
	return s.items.List()
}

// Receive adds n units to an item's quantity.
func (s *Service) Receive(sku string, n int) error {
	if n <= 0 {
		return fmt.Errorf("received quantity must be positive, got %d: %w", n, registry.ErrInvalidValue)
	}
	return s.items.Update(sku, func(item Item) (Item, error) {
		item.Quantity += n
		return item, nil
	})
}

// Ship removes n units from an item's quantity. Shipping more than is on
// hand is rejected and the item is left unchanged.
func (s *Service) Ship(sku string, n int) error {
	if n <= 0 {
		return fmt.Errorf("shipped quantity must be positive, got %d: %w", n, registry.ErrInvalidValue)
	}
	return s.items.Update(sku, func(item Item) (Item, error) {
		if item.Quantity < n {
			return item, fmt.Errorf("cannot ship %d of %s, only %d on hand: %w",
				n, item.SKU, item.Quantity, registry.ErrInvalidValue)
		}
		item.Quantity -= n
		return item, nil
	})
}

// StockValue is the total value of the inventory in cents.
func (s *Service) StockValue() int64 {
	var total int64
	for _, item := range s.items.List() {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// Snapshot dumps the current listing to a JSON file.
func (s *Service) Snapshot(path string) error {
	return snapshot.Save(path, s.items.List())
}

// Restore replaces the service's contents with a previously saved snapshot.
// A missing file restores to empty.
func (s *Service) Restore(path string) error {
	items, err := snapshot.Load[Item](path)
	if err != nil {
		return err
	}
	fresh := registry.New[string, Item]()
	for _, item := range items {
		if err := fresh.Add(item.SKU, item); err != nil {
			return fmt.Errorf("restore %s: %w", path, err)
		}
	}
	s.items = fresh
	return nil
}
