package ledger

// Seed populates a service with the demo's sample accounts and an opening
// burst of activity.
func Seed(s *Service) error {
	accounts := []struct {
		number, owner string
		kind          AccountKind
		opening       int64
	}{
		{"CHK-0001", "Asha Rao", KindChecking, 250_00},
		{"SAV-0001", "Asha Rao", KindSavings, 1_500_00},
		{"CHK-0002", "Daniel Okafor", KindChecking, 80_00},
	}
	for _, row := range accounts {
		a, err := NewAccount(row.number, row.owner, row.kind, row.opening)
		if err != nil {
			return err
		}
		if err := s.Open(a); err != nil {
			return err
		}
	}

	if err := s.Deposit("CHK-0002", 120_00); err != nil {
		return err
	}
	if err := s.Withdraw("CHK-0001", 40_00); err != nil {
		return err
	}
	if err := s.Transfer("SAV-0001", "CHK-0001", 200_00); err != nil {
		return err
	}
	return nil
}
