package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/regkit/regkit/internal/registry"
)

// AccountKind tags an account with its behavior. Kind is plain data; the
// behavioral difference between kinds lives in the withdrawal policy.
type AccountKind string

const (
	KindChecking AccountKind = "checking"
	KindSavings  AccountKind = "savings"
)

// Amounts are integer cents throughout.
const (
	// CheckingOverdraftLimit is how far below zero a checking account may go.
	CheckingOverdraftLimit int64 = 50_00
	// SavingsMinimumBalance is the floor a savings withdrawal must not break.
	SavingsMinimumBalance int64 = 100_00
)

// WithdrawalPolicy decides whether an account at balance may give up amount.
type WithdrawalPolicy func(balance, amount int64) error

func checkingPolicy(balance, amount int64) error {
	if balance-amount < -CheckingOverdraftLimit {
		return fmt.Errorf("withdrawal of %d exceeds overdraft limit (balance %d): %w",
			amount, balance, registry.ErrInvalidValue)
	}
	return nil
}

func savingsPolicy(balance, amount int64) error {
	if balance-amount < SavingsMinimumBalance {
		return fmt.Errorf("withdrawal of %d would break the %d minimum balance (balance %d): %w",
			amount, SavingsMinimumBalance, balance, registry.ErrInvalidValue)
	}
	return nil
}

// PolicyFor returns the withdrawal policy for a kind.
func PolicyFor(kind AccountKind) (WithdrawalPolicy, error) {
	switch kind {
	case KindChecking:
		return checkingPolicy, nil
	case KindSavings:
		return savingsPolicy, nil
	default:
		return nil, fmt.Errorf("unknown account kind %q: %w", kind, registry.ErrInvalidValue)
	}
}

// Account is a bank account, keyed by account number.
type Account struct {
	Number  string      `json:"number"`
	Owner   string      `json:"owner"`
	Kind    AccountKind `json:"kind"`
	Balance int64       `json:"balance"`
}

// NewAccount validates and constructs an Account with an opening balance.
func NewAccount(number, owner string, kind AccountKind, opening int64) (Account, error) {
	if strings.TrimSpace(number) == "" {
		return Account{}, fmt.Errorf("account number is required: %w", registry.ErrInvalidValue)
	}
	if strings.TrimSpace(owner) == "" {
		return Account{}, fmt.Errorf("account owner is required: %w", registry.ErrInvalidValue)
	}
	if _, err := PolicyFor(kind); err != nil {
		return Account{}, err
	}
	if opening < 0 {
		return Account{}, fmt.Errorf("opening balance must not be negative, got %d: %w", opening, registry.ErrInvalidValue)
	}
	return Account{Number: number, Owner: owner, Kind: kind, Balance: opening}, nil
}

// TransactionKind is the type of a recorded ledger entry.
type TransactionKind string

const (
	TxDeposit    TransactionKind = "deposit"
	TxWithdrawal TransactionKind = "withdrawal"
	TxTransfer   TransactionKind = "transfer"
)

// Transaction is one completed ledger entry. Failed operations are not
// recorded.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	Kind         TransactionKind `json:"kind"`
	Account      string          `json:"account"`
	Counterparty string          `json:"counterparty,omitempty"`
	Amount       int64           `json:"amount"`
	At           time.Time       `json:"at"`
}
