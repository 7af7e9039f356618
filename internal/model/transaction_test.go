package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhollis/sift/internal/common"
)

func TestTransaction_IsIncome(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   bool
	}{
		{name: "positive is income", amount: 2500.00, want: true},
		{name: "negative is expense", amount: -45.30, want: false},
		{name: "zero is expense", amount: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction{Amount: tt.amount}
			assert.Equal(t, tt.want, tx.IsIncome())
		})
	}
}

func TestTransaction_GenerateHash(t *testing.T) {
	tx := Transaction{
		TransactionDate: "2025-03-01",
		Amount:          -45.30,
		Description:     "COUNTDOWN AUCKLAND",
		AccountNumber:   "01-0123-0456789-00",
		Reference:       "REF1",
	}

	assert.Equal(t, tx.GenerateHash(), tx.GenerateHash())
	assert.Len(t, tx.GenerateHash(), 64)

	changed := tx
	changed.Amount = -45.31
	assert.NotEqual(t, tx.GenerateHash(), changed.GenerateHash())

	// The id plays no part, so re-sequenced imports still deduplicate.
	renumbered := tx
	renumbered.ID = "tx-000099"
	assert.Equal(t, tx.GenerateHash(), renumbered.GenerateHash())
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
	}{
		{
			name: "valid",
			tx:   Transaction{ID: "tx-1", TransactionDate: "2025-03-01"},
		},
		{
			name:    "missing id",
			tx:      Transaction{TransactionDate: "2025-03-01"},
			wantErr: true,
		},
		{
			name:    "missing transaction date",
			tx:      Transaction{ID: "tx-1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidTransaction)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
