package market

import (
	"errors"
	"testing"
	"time"

	"github.com/regkit/regkit/internal/registry"
)

var testNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

func mustProduct(t *testing.T, code, category string, quantity int, expiresIn time.Duration) Product {
	t.Helper()
	p, err := NewProduct(code, "Product "+code, category, quantity, testNow.Add(expiresIn), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestNewProductValidation(t *testing.T) {
	future := testNow.Add(24 * time.Hour)
	if _, err := NewProduct("", "Milk", "dairy", 1, future, testNow); !errors.Is(err, registry.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for empty code, got %v", err)
	}
	if _, err := NewProduct("ML-1", "", "dairy", 1, future, testNow); !errors.Is(err, registry.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for empty name, got %v", err)
	}
	if _, err := NewProduct("ML-1", "Milk", "", 1, future, testNow); !errors.Is(err, registry.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for empty category, got %v", err)
	}
	if _, err := NewProduct("ML-1", "Milk", "dairy", -1, future, testNow); !errors.Is(err, registry.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for negative quantity, got %v", err)
	}
	if _, err := NewProduct("ML-1", "Milk", "dairy", 1, testNow.Add(-time.Hour), testNow); !errors.Is(err, registry.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for past expiry, got %v", err)
	}
}

func TestSell(t *testing.T) {
	svc := NewService()
	if err := svc.Stock(mustProduct(t, "ML-1", "dairy", 10, 48*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Sell("ML-1", 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := svc.Product("ML-1")
	if p.Quantity != 6 {
		t.Errorf("expected quantity 6, got %d", p.Quantity)
	}
}

func TestSellMoreThanOnHand(t *testing.T) {
	svc := NewService()
	if err := svc.Stock(mustProduct(t, "ML-1", "dairy", 3, 48*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.Sell("ML-1", 5)
	if !errors.Is(err, registry.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	p, _ := svc.Product("ML-1")
	if p.Quantity != 3 {
		t.Errorf("rejected sale changed the quantity: %d", p.Quantity)
	}
}

func TestSellUnknownProduct(t *testing.T) {
	svc := NewService()
	if err := svc.Sell("NOPE", 1); !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSweepExpired(t *testing.T) {
	svc := NewService()
	if err := svc.Stock(mustProduct(t, "ML-1", "dairy", 10, 24*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Stock(mustProduct(t, "BR-1", "bakery", 5, 48*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Stock(mustProduct(t, "AP-1", "produce", 8, 96*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expired, err := svc.SweepExpired(testNow.Add(72 * time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expired) != 2 {
		t.Fatalf("expected 2 expired products, got %d", len(expired))
	}
	if expired[0].Code != "ML-1" || expired[1].Code != "BR-1" {
		t.Errorf("expected [ML-1 BR-1] in stocking order, got [%s %s]", expired[0].Code, expired[1].Code)
	}
	remaining := svc.Products()
	if len(remaining) != 1 || remaining[0].Code != "AP-1" {
		t.Errorf("unexpected remaining products: %+v", remaining)
	}
}

func TestSweepNothingExpired(t *testing.T) {
	svc := NewService()
	if err := svc.Stock(mustProduct(t, "ML-1", "dairy", 10, 24*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expired, err := svc.SweepExpired(testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expired) != 0 {
		t.Errorf("expected no expired products, got %d", len(expired))
	}
}

func TestByCategory(t *testing.T) {
	svc := NewService()
	if err := Seed(svc, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byCat := svc.ByCategory()
	if len(byCat["dairy"]) != 2 || len(byCat["produce"]) != 2 || len(byCat["bakery"]) != 1 {
		t.Errorf("unexpected grouping: %v", byCat)
	}
	if byCat["dairy"][0].Code != "ML-1L" {
		t.Errorf("expected stocking order preserved, got %s first", byCat["dairy"][0].Code)
	}
}

func TestRestock(t *testing.T) {
	svc := NewService()
	if err := svc.Stock(mustProduct(t, "ML-1", "dairy", 2, 48*time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Restock("ML-1", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := svc.Product("ML-1")
	if p.Quantity != 12 {
		t.Errorf("expected quantity 12, got %d", p.Quantity)
	}
}
