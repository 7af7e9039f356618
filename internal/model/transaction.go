// Package model defines the core domain types shared across the application.
package model

import (
	"crypto/sha256"
	"fmt"

	"github.com/mhollis/sift/internal/common"
)

// Transaction represents a single bank-exported transaction. Records are
// immutable once created. Amount is the sole source of truth for the
// income/expense split: positive is income, negative (and zero) is expense.
type Transaction struct {
	ID                      string  `json:"id"`
	AccountNumber           string  `json:"account_number"`
	EffectiveDate           string  `json:"effective_date"`
	TransactionDate         string  `json:"transaction_date"`
	Description             string  `json:"description"`
	TransactionCode         string  `json:"transaction_code"`
	Particulars             string  `json:"particulars"`
	Code                    string  `json:"code"`
	Reference               string  `json:"reference"`
	OtherPartyName          string  `json:"other_party_name"`
	OtherPartyAccountNumber string  `json:"other_party_account_number"`
	OtherPartyParticulars   string  `json:"other_party_particulars"`
	OtherPartyCode          string  `json:"other_party_code"`
	OtherPartyReference     string  `json:"other_party_reference"`
	Amount                  float64 `json:"amount"`
	Balance                 float64 `json:"balance"`
}

// IsIncome reports whether the transaction sits on the income side.
// Zero amounts are bucketed on the expense side.
func (t *Transaction) IsIncome() bool {
	return t.Amount > 0
}

// GenerateHash creates a stable hash for duplicate detection across imports.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s:%s",
		t.TransactionDate,
		t.Amount,
		t.Description,
		t.AccountNumber,
		t.Reference)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// Validate checks the identity fields every transaction must carry.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: missing id", common.ErrInvalidTransaction)
	}
	if t.TransactionDate == "" {
		return fmt.Errorf("%w: missing transaction date (id %s)", common.ErrInvalidTransaction, t.ID)
	}
	return nil
}

// CategorizedTransaction is a transaction with its resolved category id.
// Transactions without an assignment resolve to CategoryUncategorized.
type CategorizedTransaction struct {
	Transaction
	Category string `json:"category"`
}
