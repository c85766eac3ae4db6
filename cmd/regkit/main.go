package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/regkit/regkit/internal/config"
	"github.com/regkit/regkit/internal/domain/clinic"
	"github.com/regkit/regkit/internal/domain/grades"
	"github.com/regkit/regkit/internal/domain/inventory"
	"github.com/regkit/regkit/internal/domain/ledger"
	"github.com/regkit/regkit/internal/domain/market"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "regkit",
		Short: "Registry-backed console demos",
	}

	rootCmd.PersistentFlags().String("data-dir", "", "Override the snapshot directory (default from DATA_DIR)")

	rootCmd.AddCommand(clinicCmd())
	rootCmd.AddCommand(ledgerCmd())
	rootCmd.AddCommand(gradesCmd())
	rootCmd.AddCommand(inventoryCmd())
	rootCmd.AddCommand(marketCmd())
	rootCmd.AddCommand(allCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger the way every demo shares.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(level).With().Timestamp().Logger()
	}
	return cfg, logger, nil
}

func clinicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clinic",
		Short: "Patient/prescription registry demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			return runClinic(logger)
		},
	}
}

func runClinic(logger zerolog.Logger) error {
	svc := clinic.NewService()
	if err := clinic.Seed(svc); err != nil {
		return fmt.Errorf("seed clinic: %w", err)
	}
	logger.Info().Int("patients", len(svc.Patients())).Msg("clinic seeded")

	fmt.Printf("%-10s %-20s %-5s %s\n", "MRN", "NAME", "AGE", "ALLERGIES")
	fmt.Println("---------- -------------------- ----- --------------------")
	for _, p := range svc.Patients() {
		fmt.Printf("%-10s %-20s %-5d %v\n", p.MRN, p.Name, p.Age, p.Allergies)
	}

	// Duplicate registration is rejected and reported, the run continues.
	dup, err := clinic.NewPatient("MRN-1001", "Impostor", 50)
	if err != nil {
		return err
	}
	if err := svc.Register(dup); err != nil {
		logger.Warn().Err(err).Msg("duplicate registration rejected")
	}

	// A patient with open prescriptions cannot be discharged.
	if err := svc.Discharge("MRN-1002"); err != nil {
		logger.Warn().Err(err).Msg("discharge blocked")
	}

	fmt.Println()
	fmt.Printf("%-10s %-16s %-20s %s\n", "MRN", "MEDICATION", "DOSAGE", "REFILLS")
	fmt.Println("---------- ---------------- -------------------- -------")
	for mrn, scripts := range svc.PrescriptionsByPatient() {
		for _, rx := range scripts {
			fmt.Printf("%-10s %-16s %-20s %d\n", mrn, rx.Medication, rx.Dosage, rx.Refills)
		}
	}

	chart, err := svc.Chart("MRN-1001")
	if err != nil {
		return err
	}
	fmt.Printf("\nChart for %s: %d prescription(s)\n", chart.Patient.Name, len(chart.Prescriptions))
	return nil
}

func ledgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "Finance/transaction processor demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			return runLedger(logger)
		},
	}
}

func runLedger(logger zerolog.Logger) error {
	svc := ledger.NewService()
	if err := ledger.Seed(svc); err != nil {
		return fmt.Errorf("seed ledger: %w", err)
	}
	logger.Info().Int("accounts", len(svc.Accounts())).Msg("ledger seeded")

	// A savings withdrawal below the minimum balance is refused.
	if err := svc.Withdraw("SAV-0001", 1_300_00); err != nil {
		logger.Warn().Err(err).Msg("withdrawal refused")
	}

	fmt.Printf("%-10s %-20s %-10s %s\n", "NUMBER", "OWNER", "KIND", "BALANCE")
	fmt.Println("---------- -------------------- ---------- ----------")
	for _, a := range svc.Accounts() {
		fmt.Printf("%-10s %-20s %-10s %s\n", a.Number, a.Owner, a.Kind, cents(a.Balance))
	}

	stmt, err := svc.Statement("CHK-0001")
	if err != nil {
		return err
	}
	fmt.Printf("\nStatement for CHK-0001\n")
	fmt.Printf("%-12s %-10s %-12s %s\n", "KIND", "AMOUNT", "COUNTERPARTY", "AT")
	fmt.Println("------------ ---------- ------------ --------------------")
	for _, tx := range stmt {
		fmt.Printf("%-12s %-10s %-12s %s\n", tx.Kind, cents(tx.Amount), tx.Counterparty, tx.At.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func gradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Student grading report demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			return runGrades(logger)
		},
	}
}

func runGrades(logger zerolog.Logger) error {
	svc := grades.NewService()
	if err := grades.Seed(svc); err != nil {
		return fmt.Errorf("seed grades: %w", err)
	}
	logger.Info().Int("students", len(svc.Students())).Msg("roster seeded")

	// Out-of-range scores never reach the registry.
	if err := svc.RecordScore(2, 140); err != nil {
		logger.Warn().Err(err).Msg("score rejected")
	}

	fmt.Printf("%-5s %-20s %-8s %s\n", "ID", "NAME", "AVERAGE", "GRADE")
	fmt.Println("----- -------------------- -------- -----")
	for _, row := range svc.Report() {
		fmt.Printf("%-5d %-20s %-8.1f %s\n", row.ID, row.Name, row.Average, row.Letter)
	}

	fmt.Println("\nDistribution:")
	dist := svc.Distribution()
	for _, letter := range []string{"A", "B", "C", "D", "F", grades.LetterUngraded} {
		if students := dist[letter]; len(students) > 0 {
			fmt.Printf("  %-3s %d student(s)\n", letter, len(students))
		}
	}
	return nil
}

func inventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Electronics inventory demo with JSON persistence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			return runInventory(logger, filepath.Join(cfg.DataDir, "inventory.json"))
		},
	}
}

func runInventory(logger zerolog.Logger, path string) error {
	svc := inventory.NewService()

	// A missing snapshot means a fresh start; only then is sample data seeded.
	if err := svc.Restore(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("snapshot unreadable, starting empty")
	}
	if len(svc.Items()) == 0 {
		if err := inventory.Seed(svc); err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}
		logger.Info().Msg("inventory seeded")
	} else {
		logger.Info().Int("items", len(svc.Items())).Str("path", path).Msg("inventory restored")
	}

	if err := svc.Receive("HP-220", 10); err != nil {
		return err
	}
	if err := svc.Ship("TV-55Q", 1); err != nil {
		return err
	}
	// Overshipping is rejected and reported, the run continues.
	if err := svc.Ship("LT-X13", 1000); err != nil {
		logger.Warn().Err(err).Msg("shipment rejected")
	}

	fmt.Printf("%-8s %-24s %-10s %-5s %s\n", "SKU", "NAME", "BRAND", "QTY", "UNIT PRICE")
	fmt.Println("-------- ------------------------ ---------- ----- ----------")
	for _, item := range svc.Items() {
		fmt.Printf("%-8s %-24s %-10s %-5d %s\n", item.SKU, item.Name, item.Brand, item.Quantity, cents(item.UnitPrice))
	}
	fmt.Printf("\nTotal stock value: %s\n", cents(svc.StockValue()))

	// Persistence failures are reported but never abort the demo.
	if err := svc.Snapshot(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("snapshot failed, data stays in memory")
	} else {
		logger.Info().Str("path", path).Msg("inventory snapshot written")
	}
	return nil
}

func marketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market",
		Short: "Grocery inventory demo with expiry dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			return runMarket(logger)
		},
	}
}

func runMarket(logger zerolog.Logger) error {
	now := time.Now()
	svc := market.NewService()
	if err := market.Seed(svc, now); err != nil {
		return fmt.Errorf("seed market: %w", err)
	}
	logger.Info().Int("products", len(svc.Products())).Msg("market seeded")

	if err := svc.Sell("ML-1L", 5); err != nil {
		return err
	}
	// Overselling is rejected and reported, the run continues.
	if err := svc.Sell("BR-SRD", 500); err != nil {
		logger.Warn().Err(err).Msg("sale rejected")
	}

	for category, products := range svc.ByCategory() {
		fmt.Printf("%s:\n", category)
		for _, p := range products {
			fmt.Printf("  %-8s %-20s %-5d expires %s\n", p.Code, p.Name, p.Quantity, p.ExpiresAt.Format("2006-01-02"))
		}
	}

	expired, err := svc.SweepExpired(now.Add(72 * time.Hour))
	if err != nil {
		return err
	}
	fmt.Printf("\nSwept %d expired product(s) as of +72h:\n", len(expired))
	for _, p := range expired {
		fmt.Printf("  %-8s %s\n", p.Code, p.Name)
	}
	return nil
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every demo in sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			demos := []struct {
				name string
				run  func() error
			}{
				{"clinic", func() error { return runClinic(logger) }},
				{"ledger", func() error { return runLedger(logger) }},
				{"grades", func() error { return runGrades(logger) }},
				{"inventory", func() error { return runInventory(logger, filepath.Join(cfg.DataDir, "inventory.json")) }},
				{"market", func() error { return runMarket(logger) }},
			}
			for _, demo := range demos {
				fmt.Printf("\n== %s ==\n", demo.name)
				if err := demo.run(); err != nil {
					return fmt.Errorf("%s demo: %w", demo.name, err)
				}
			}
			return nil
		},
	}
}

// cents renders an integer cent amount as dollars.
func cents(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
