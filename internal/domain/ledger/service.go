// Package ledger implements the finance demo: accounts with kind-specific
// withdrawal policies and an append-only transaction trail.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/regkit/regkit/internal/registry"
)

type Service struct {
	accounts     *registry.Registry[string, Account]
	transactions *registry.Registry[uuid.UUID, Transaction]
	now          func() time.Time
}

func NewService() *Service {
	return &Service{
		accounts:     registry.New[string, Account](),
		transactions: registry.New[uuid.UUID, Transaction](),
		now:          time.Now,
	}
}

// SetClock overrides the transaction timestamp source. Tests use this for
// deterministic statements.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Open adds a new account. The account must come from NewAccount.
func (s *Service) Open(a Account) error {
	return s.accounts.Add(a.Number, a)
}

// Close removes an account. Only an account with a zero balance can close.
func (s *Service) Close(number string) error {
	a, err := s.accounts.Get(number)
	if err != nil {
		return err
	}
	if a.Balance != 0 {
		return fmt.Errorf("account %s has balance %d, withdraw or transfer it first: %w",
			number, a.Balance, registry.ErrInvalidValue)
	}
	return s.accounts.Remove(number)
}

func (s *Service) Account(number string) (Account, error) {
	return s.accounts.Get(number)
}

func (s *Service) Accounts() []Account {
	return s.accounts.List()
}

// Deposit credits amount to an account and records the transaction.
func (s *Service) Deposit(number string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive, got %d: %w", amount, registry.ErrInvalidValue)
	}
	err := s.accounts.Update(number, func(a Account) (Account, error) {
		a.Balance += amount
		return a, nil
	})
	if err != nil {
		return err
	}
	return s.record(TxDeposit, number, "", amount)
}

// Withdraw debits amount from an account, subject to the account kind's
// withdrawal policy, and records the transaction.
func (s *Service) Withdraw(number string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("withdrawal amount must be positive, got %d: %w", amount, registry.ErrInvalidValue)
	}
	err := s.accounts.Update(number, func(a Account) (Account, error) {
		policy, perr := PolicyFor(a.Kind)
		if perr != nil {
			return a, perr
		}
		if perr := policy(a.Balance, amount); perr != nil {
			return a, fmt.Errorf("withdraw from %s: %w", a.Number, perr)
		}
		a.Balance -= amount
		return a, nil
	})
	if err != nil {
		return err
	}
	return s.record(TxWithdrawal, number, "", amount)
}

// Transfer moves amount between two accounts. The destination is checked
// before the source is debited, so a bad destination leaves the source
// untouched. Cross-account atomicity beyond that ordering is out of scope.
func (s *Service) Transfer(from, to string, amount int64) error {
	if from == to {
		return fmt.Errorf("transfer source and destination are the same account %s: %w", from, registry.ErrInvalidValue)
	}
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive, got %d: %w", amount, registry.ErrInvalidValue)
	}
	if _, err := s.accounts.Get(to); err != nil {
		return fmt.Errorf("transfer destination: %w", err)
	}
	err := s.accounts.Update(from, func(a Account) (Account, error) {
		policy, perr := PolicyFor(a.Kind)
		if perr != nil {
			return a, perr
		}
		if perr := policy(a.Balance, amount); perr != nil {
			return a, fmt.Errorf("transfer from %s: %w", a.Number, perr)
		}
		a.Balance -= amount
		return a, nil
	})
	if err != nil {
		return err
	}
	if err := s.accounts.Update(to, func(a Account) (Account, error) {
		a.Balance += amount
		return a, nil
	}); err != nil {
		return err
	}
	return s.record(TxTransfer, from, to, amount)
}

// Statement returns the transactions touching one account, oldest first.
// Transfers appear in the statements of both sides.
func (s *Service) Statement(number string) ([]Transaction, error) {
	if _, err := s.accounts.Get(number); err != nil {
		return nil, err
	}
	var out []Transaction
	for _, tx := range s.transactions.List() {
		if tx.Account == number || tx.Counterparty == number {
			out = append(out, tx)
		}
	}
	return out, nil
}

// Transactions returns the full trail in recording order.
func (s *Service) Transactions() []Transaction {
	return s.transactions.List()
}

func (s *Service) record(kind TransactionKind, account, counterparty string, amount int64) error {
	tx := Transaction{
		ID:           uuid.New(),
		Kind:         kind,
		Account:      account,
		Counterparty: counterparty,
		Amount:       amount,
		At:           s.now(),
	}
	return s.transactions.Add(tx.ID, tx)
}
