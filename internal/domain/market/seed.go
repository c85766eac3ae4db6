package market

import "time"

// Seed populates a service with the demo's sample shelf, with expiry dates
// relative to now.
func Seed(s *Service, now time.Time) error {
	rows := []struct {
		code, name, category string
		quantity             int
		expiresIn            time.Duration
	}{
		{"ML-1L", "Whole Milk 1L", "dairy", 30, 7 * 24 * time.Hour},
		{"YG-500", "Greek Yogurt 500g", "dairy", 18, 12 * 24 * time.Hour},
		{"BR-SRD", "Sourdough Loaf", "bakery", 12, 2 * 24 * time.Hour},
		{"AP-GAL", "Gala Apples 1kg", "produce", 40, 14 * 24 * time.Hour},
		{"SP-BAG", "Spinach 200g", "produce", 22, 3 * 24 * time.Hour},
	}
	for _, row := range rows {
		p, err := NewProduct(row.code, row.name, row.category, row.quantity, now.Add(row.expiresIn), now)
		if err != nil {
			return err
		}
		if err := s.Stock(p); err != nil {
			return err
		}
	}
	return nil
}
