// Package ingest parses bank export files into transaction records. It is a
// collaborator of the categorization core: the core consumes the structured
// records and never sees file formats.
package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/mhollis/sift/internal/model"
)

// Result is a parsed batch. Malformed rows are skipped per record, with the
// skip count surfaced so callers can inspect it; records are never dropped
// silently.
type Result struct {
	Transactions []model.Transaction
	Skipped      int
}

// csvRow mirrors the bank export header contract.
type csvRow struct {
	AccountNumber           string `csv:"Account number"`
	EffectiveDate           string `csv:"Effective Date"`
	TransactionDate         string `csv:"Transaction Date"`
	Description             string `csv:"Description"`
	TransactionCode         string `csv:"Transaction Code"`
	Particulars             string `csv:"Particulars"`
	Code                    string `csv:"Code"`
	Reference               string `csv:"Reference"`
	OtherPartyName          string `csv:"Other Party Name"`
	OtherPartyAccountNumber string `csv:"Other Party Account Number"`
	OtherPartyParticulars   string `csv:"Other Party Particulars"`
	OtherPartyCode          string `csv:"Other Party Code"`
	OtherPartyReference     string `csv:"Other Party Reference"`
	Amount                  string `csv:"Amount"`
	Balance                 string `csv:"Balance"`
}

// ParseCSV parses a bank CSV export. Transaction ids are assigned
// sequentially in file order, so a given file always parses to the same
// ids. Rows missing a transaction date or with an unparsable amount are
// skipped and counted.
func ParseCSV(r io.Reader) (*Result, error) {
	var rows []*csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	result := &Result{Transactions: make([]model.Transaction, 0, len(rows))}
	seq := 0
	for i, row := range rows {
		amount, err := parseAmount(row.Amount)
		if err != nil || strings.TrimSpace(row.TransactionDate) == "" {
			slog.Warn("skipping malformed CSV row",
				"row", i+1,
				"date", row.TransactionDate,
				"amount", row.Amount)
			result.Skipped++
			continue
		}

		// Balance is informational; a bad value does not invalidate the row.
		balance, _ := parseAmount(row.Balance)

		seq++
		result.Transactions = append(result.Transactions, model.Transaction{
			ID:                      fmt.Sprintf("tx-%06d", seq),
			AccountNumber:           row.AccountNumber,
			EffectiveDate:           strings.TrimSpace(row.EffectiveDate),
			TransactionDate:         strings.TrimSpace(row.TransactionDate),
			Description:             strings.TrimSpace(row.Description),
			TransactionCode:         row.TransactionCode,
			Particulars:             row.Particulars,
			Code:                    row.Code,
			Reference:               row.Reference,
			OtherPartyName:          row.OtherPartyName,
			OtherPartyAccountNumber: row.OtherPartyAccountNumber,
			OtherPartyParticulars:   row.OtherPartyParticulars,
			OtherPartyCode:          row.OtherPartyCode,
			OtherPartyReference:     row.OtherPartyReference,
			Amount:                  amount,
			Balance:                 balance,
		})
	}

	slog.Info("parsed CSV file",
		"transactions", len(result.Transactions),
		"skipped", result.Skipped)
	return result, nil
}

// parseAmount handles thousands separators in exported numbers.
func parseAmount(value string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}
	return strconv.ParseFloat(cleaned, 64)
}
