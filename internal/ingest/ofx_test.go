package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20250315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>NZD
<BANKACCTFROM>
<BANKID>010123
<ACCTID>0456789-00
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20250301120000[0:GMT]
<DTEND>20250331120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20250301120000[0:GMT]
<TRNAMT>-45.30
<FITID>2025030101
<NAME>COUNTDOWN AUCKLAND
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20250315120000[0:GMT]
<TRNAMT>2500.00
<FITID>2025031501
<NAME>SALARY ACME CORP
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>3700.50
<DTASOF>20250331120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20250315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>NZD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20250301120000[0:GMT]
<DTEND>20250331120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20250310120000[0:GMT]
<TRNAMT>-22.99
<FITID>CC2025031001
<NAME>NETFLIX.COM
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-22.99
<DTASOF>20250331120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseOFX_BankStatement(t *testing.T) {
	result, err := ParseOFX(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Zero(t, result.Skipped)

	first := result.Transactions[0]
	assert.Equal(t, "2025030101", first.ID)
	assert.Equal(t, "0456789-00", first.AccountNumber)
	assert.Equal(t, "2025-03-01", first.TransactionDate)
	assert.Equal(t, "COUNTDOWN AUCKLAND", first.Description)
	assert.InDelta(t, -45.30, first.Amount, 0.001)
	assert.False(t, first.IsIncome())

	second := result.Transactions[1]
	assert.Equal(t, "SALARY ACME CORP", second.Description)
	assert.InDelta(t, 2500.00, second.Amount, 0.001)
	assert.True(t, second.IsIncome())
}

func TestParseOFX_CreditCardStatement(t *testing.T) {
	result, err := ParseOFX(strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)

	tx := result.Transactions[0]
	assert.Equal(t, "CC2025031001", tx.ID)
	assert.Equal(t, "4111111111111111", tx.AccountNumber)
	assert.Equal(t, "NETFLIX.COM", tx.Description)
	assert.InDelta(t, -22.99, tx.Amount, 0.001)
}

func TestParseOFX_InvalidData(t *testing.T) {
	_, err := ParseOFX(strings.NewReader("not valid OFX"))
	assert.Error(t, err)

	_, err = ParseOFX(strings.NewReader(""))
	assert.Error(t, err)
}

func TestPreprocessOFX(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "leading whitespace trimmed",
			input: "\n\t OFXHEADER:100",
			want:  "OFXHEADER:100",
		},
		{
			name:  "severity uppercased",
			input: "<SEVERITY>Info</SEVERITY>",
			want:  "<SEVERITY>INFO</SEVERITY>",
		},
		{
			name:  "unclosed sgml tag repaired",
			input: "<STMTTRN",
			want:  "<STMTTRN>",
		},
		{
			name:  "well-formed content untouched",
			input: "<STMTTRN>\n<TRNAMT>-45.30\n</STMTTRN>",
			want:  "<STMTTRN>\n<TRNAMT>-45.30\n</STMTTRN>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preprocessOFX(tt.input))
		})
	}
}
