package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "Account number,Effective Date,Transaction Date,Description,Transaction Code,Particulars,Code,Reference,Other Party Name,Other Party Account Number,Other Party Particulars,Other Party Code,Other Party Reference,Amount,Balance\n"

func TestParseCSV(t *testing.T) {
	input := csvHeader +
		"01-0123-0456789-00,2025-03-01,2025-03-01,COUNTDOWN AUCKLAND,EFTPOS,,,,Countdown,,,,,-45.30,1200.50\n" +
		"01-0123-0456789-00,2025-03-02,2025-03-02,SALARY ACME CORP,DC,,,PAYROLL,Acme Corp,,,,,\"2,500.00\",3700.50\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Zero(t, result.Skipped)

	first := result.Transactions[0]
	assert.Equal(t, "tx-000001", first.ID)
	assert.Equal(t, "2025-03-01", first.TransactionDate)
	assert.Equal(t, "COUNTDOWN AUCKLAND", first.Description)
	assert.Equal(t, "Countdown", first.OtherPartyName)
	assert.InDelta(t, -45.30, first.Amount, 0.001)
	assert.InDelta(t, 1200.50, first.Balance, 0.001)

	// Thousands separator is handled.
	second := result.Transactions[1]
	assert.Equal(t, "tx-000002", second.ID)
	assert.InDelta(t, 2500.00, second.Amount, 0.001)
	assert.Equal(t, "PAYROLL", second.Reference)
}

func TestParseCSV_SkipsMalformedRows(t *testing.T) {
	input := csvHeader +
		"acc,2025-03-01,2025-03-01,GOOD ROW,,,,,,,,,,-10.00,\n" +
		"acc,2025-03-02,,MISSING DATE,,,,,,,,,,-20.00,\n" +
		"acc,2025-03-03,2025-03-03,BAD AMOUNT,,,,,,,,,,not-a-number,\n" +
		"acc,2025-03-04,2025-03-04,ANOTHER GOOD ROW,,,,,,,,,,30.00,\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Transactions, 2)

	// Ids stay sequential over kept rows only.
	assert.Equal(t, "tx-000001", result.Transactions[0].ID)
	assert.Equal(t, "GOOD ROW", result.Transactions[0].Description)
	assert.Equal(t, "tx-000002", result.Transactions[1].ID)
	assert.Equal(t, "ANOTHER GOOD ROW", result.Transactions[1].Description)
}

func TestParseCSV_Deterministic(t *testing.T) {
	input := csvHeader +
		"acc,2025-03-01,2025-03-01,ROW,,,,,,,,,,-10.00,\n"

	first, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	second, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, first.Transactions, second.Transactions)
}

func TestParseCSV_EmptyFile(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain", input: "-45.30", want: -45.30},
		{name: "thousands separator", input: "2,500.00", want: 2500.00},
		{name: "surrounding whitespace", input: " 12.00 ", want: 12.00},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}
