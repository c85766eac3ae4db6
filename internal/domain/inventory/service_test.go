package inventory

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/regkit/regkit/internal/registry"
)

func mustItem(t *testing.T, sku, name string, quantity int, unitPrice int64) Item {
	t.Helper()
	item, err := NewItem(sku, name, "TestBrand", quantity, unitPrice, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return item
}

func TestNewItemValidation(t *testing.T) {
	if _, err := NewItem("", "Television", "", 1, 100, 0); !errors.Is(err, registry.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for empty sku, got %v", err)
	}
	if _, err := NewItem("TV-1", " ", "", 1, 100, 0); !errors.Is(err, registry.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for blank name, got %v", err)
	}
	if _, err := NewItem("TV-1", "Television", "", -1, 100, 0); !errors.Is(err, registry.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for negative quantity, got %v", err)
	}
	if _, err := NewItem("TV-1", "Television", "", 1, -100, 0); !errors.Is(err, registry.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for negative price, got %v", err)
	}
	if _, err := NewItem("TV-1", "Television", "", 1, 100, -6); !errors.Is(err, registry.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for negative warranty, got %v", err)
	}
}

func TestReceiveAndShip(t *testing.T) {
	svc := NewService()
	if err := svc.Stock(mustItem(t, "TV-1", "Television", 4, 500_00)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Receive("TV-1", 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Ship("TV-1", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item, _ := svc.Item("TV-1")
	if item.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", item.Quantity)
	}
}

func TestShipMoreThanOnHand(t *testing.T) {
	svc := NewService()
	if err := svc.Stock(mustItem(t, "TV-1", "Television", 2, 500_00)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.Ship("TV-1", 3)
	if !errors.Is(err, registry.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	item, _ := svc.Item("TV-1")
	if item.Quantity != 2 {
		t.Errorf("rejected shipment changed the quantity: %d", item.Quantity)
	}
}

func TestShipUnknownSKU(t *testing.T) {
	svc := NewService()
	if err := svc.Ship("NOPE", 1); !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReceiveNonPositive(t *testing.T) {
	svc := NewService()
	if err := svc.Stock(mustItem(t, "TV-1", "Television", 2, 500_00)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Receive("TV-1", 0); !errors.Is(err, registry.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestStockValue(t *testing.T) {
	svc := NewService()
	if err := svc.Stock(mustItem(t, "TV-1", "Television", 2, 500_00)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Stock(mustItem(t, "HP-1", "Headphones", 3, 100_00)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := svc.StockValue(); got != 1_300_00 {
		t.Errorf("expected stock value 130000, got %d", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	svc := NewService()
	if err := Seed(svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Snapshot(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored := NewService()
	if err := restored.Restore(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(restored.Items(), svc.Items()) {
		t.Errorf("round trip mismatch:\nsaved    %+v\nrestored %+v", svc.Items(), restored.Items())
	}
}

func TestRestoreMissingFileStartsEmpty(t *testing.T) {
	svc := NewService()
	if err := Seed(svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Restore(filepath.Join(t.TempDir(), "missing.json")); err != nil {
		t.Fatalf("missing snapshot must not be an error, got %v", err)
	}
	if len(svc.Items()) != 0 {
		t.Errorf("expected empty inventory after restoring a missing file, got %d items", len(svc.Items()))
	}
}
