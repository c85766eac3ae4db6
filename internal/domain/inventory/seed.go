package inventory

// Seed populates a service with the demo's sample stock.
func Seed(s *Service) error {
	rows := []struct {
		sku, name, brand string
		quantity         int
		unitPrice        int64
		warrantyMonths   int
	}{
		{"TV-55Q", `55" QLED Television`, "Lumina", 4, 649_99, 24},
		{"HP-220", "Wireless Headphones", "Auris", 25, 89_50, 12},
		{"LT-X13", `13" Ultrabook`, "Vector", 7, 1_199_00, 36},
		{"CB-USC", "USB-C Cable 2m", "Volt", 120, 12_99, 6},
	}
	for _, row := range rows {
		item, err := NewItem(row.sku, row.name, row.brand, row.quantity, row.unitPrice, row.warrantyMonths)
		if err != nil {
			return err
		}
		if err := s.Stock(item); err != nil {
			return err
		}
	}
	return nil
}
