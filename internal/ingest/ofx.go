package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/mhollis/sift/internal/model"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRegex  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX fixes common formatting issues in bank-produced OFX files:
// leading whitespace before the header, mixed-case SEVERITY values, and
// SGML-style tags missing their closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagRegex.ReplaceAllString(content, "$1>")
}

// ParseOFX parses an OFX/QFX export into transaction records. Both bank and
// credit card statements are read. The OFX amount sign convention matches
// ours (debits negative), so amounts pass through unchanged. Transactions
// without a posted date are skipped and counted.
func ParseOFX(r io.Reader) (*Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	result := &Result{}
	seq := 0

	appendStatement := func(accountID string, list *ofxgo.TransactionList) {
		if list == nil {
			return
		}
		for _, ofxTx := range list.Transactions {
			seq++
			tx, ok := convertOFXTransaction(ofxTx, accountID, seq)
			if !ok {
				result.Skipped++
				continue
			}
			result.Transactions = append(result.Transactions, tx)
		}
	}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			appendStatement(string(stmt.BankAcctFrom.AcctID), stmt.BankTranList)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			appendStatement(string(stmt.CCAcctFrom.AcctID), stmt.BankTranList)
		}
	}

	slog.Info("parsed OFX file",
		"transactions", len(result.Transactions),
		"skipped", result.Skipped)
	return result, nil
}

func convertOFXTransaction(ofxTx ofxgo.Transaction, accountID string, seq int) (model.Transaction, bool) {
	if ofxTx.DtPosted.IsZero() {
		return model.Transaction{}, false
	}

	amount, _ := ofxTx.TrnAmt.Float64()

	id := string(ofxTx.FiTID)
	if id == "" {
		id = fmt.Sprintf("ofx-%06d", seq)
	}

	tx := model.Transaction{
		ID:              id,
		AccountNumber:   accountID,
		TransactionDate: ofxTx.DtPosted.Format("2006-01-02"),
		EffectiveDate:   ofxTx.DtPosted.Format("2006-01-02"),
		Description:     strings.TrimSpace(string(ofxTx.Name)),
		TransactionCode: fmt.Sprintf("%v", ofxTx.TrnType),
		Reference:       string(ofxTx.RefNum),
		Amount:          amount,
	}

	// PAYEE carries a cleaner merchant name when the bank provides one.
	if ofxTx.Payee != nil && ofxTx.Payee.Name != "" {
		tx.OtherPartyName = string(ofxTx.Payee.Name)
	}
	if tx.Description == "" && ofxTx.Memo != "" {
		tx.Description = strings.TrimSpace(string(ofxTx.Memo))
	}

	return tx, true
}
