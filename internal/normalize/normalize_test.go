package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhollis/sift/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "COUNTDOWN AUCKLAND", want: "countdown auckland"},
		{name: "collapses whitespace", input: "  New   World \t Hillcrest  ", want: "new world hillcrest"},
		{name: "empty input", input: "", want: ""},
		{name: "whitespace only", input: "   \t\n ", want: ""},
		{name: "already normal", input: "netflix.com", want: "netflix.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestStripBoilerplate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "eftpos prefix",
			input: "EFTPOS PURCHASE COUNTDOWN AUCKLAND",
			want:  "COUNTDOWN AUCKLAND",
		},
		{
			name:  "direct debit with trailing ref",
			input: "Direct Debit Netflix.com REF: 884231",
			want:  "Netflix.com",
		},
		{
			name:  "automatic payment number",
			input: "AP#12345 TO Harcourts Property",
			want:  "Harcourts Property",
		},
		{
			name:  "transfer prefix",
			input: "Transfer to J Smith",
			want:  "J Smith",
		},
		{
			name:  "trailing long digit run",
			input: "Meridian Energy 004412398812",
			want:  "Meridian Energy",
		},
		{
			name:  "plain merchant untouched",
			input: "New World Lynden",
			want:  "New World Lynden",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripBoilerplate(tt.input))
		})
	}
}

func TestMeaningfulDescription(t *testing.T) {
	tests := []struct {
		name string
		tx   model.Transaction
		want string
	}{
		{
			name: "meaningful other party wins",
			tx: model.Transaction{
				Description:    "EFTPOS PURCHASE 3321",
				OtherPartyName: "Countdown Auckland",
			},
			want: "Countdown Auckland",
		},
		{
			name: "numeric other party is skipped",
			tx: model.Transaction{
				Description:    "EFTPOS PURCHASE Countdown Auckland",
				OtherPartyName: "1234567",
			},
			want: "Countdown Auckland",
		},
		{
			name: "ref-style other party is skipped",
			tx: model.Transaction{
				Description:    "Bill Payment Meridian Energy",
				OtherPartyName: "REF: 99812",
			},
			want: "Meridian Energy",
		},
		{
			name: "nothing usable falls back to display",
			tx:   model.Transaction{},
			want: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MeaningfulDescription(tt.tx))
		})
	}
}

func TestGroupKey(t *testing.T) {
	tests := []struct {
		name string
		tx   model.Transaction
		want string
	}{
		{
			name: "branch suffix collapses",
			tx:   model.Transaction{Description: "New World Hillcrest"},
			want: "newworld",
		},
		{
			name: "different branch same key",
			tx:   model.Transaction{Description: "New World Lynden"},
			want: "newworld",
		},
		{
			name: "short merchant keeps whole name",
			tx:   model.Transaction{Description: "Netflix"},
			want: "netflix",
		},
		{
			name: "punctuation removed before keying",
			tx:   model.Transaction{Description: "NETFLIX.COM"},
			want: "netflixcom",
		},
		{
			name: "boilerplate stripped first",
			tx:   model.Transaction{Description: "EFTPOS PURCHASE Countdown Hamilton"},
			want: "countdown",
		},
		{
			name: "punctuation-only yields fallback",
			tx:   model.Transaction{Description: "!!!"},
			want: "other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupKey(tt.tx))
		})
	}
}

func TestGroupKey_SameMerchantDifferentBranches(t *testing.T) {
	hillcrest := GroupKey(model.Transaction{Description: "New World Hillcrest"})
	lynden := GroupKey(model.Transaction{Description: "New World Lynden"})

	assert.Equal(t, hillcrest, lynden)
	assert.Equal(t, "newworld", hillcrest)
}

func TestGroupKeyForDescription(t *testing.T) {
	assert.Equal(t, GroupKey(model.Transaction{Description: "Countdown Auckland"}),
		GroupKeyForDescription("Countdown Auckland"))
}

func TestIsSimilar(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "case and spacing equal", a: "Countdown  Auckland", b: "countdown auckland", want: true},
		{name: "one contains the other", a: "Countdown", b: "Countdown Auckland", want: true},
		{name: "containment is symmetric", a: "Countdown Auckland", b: "Countdown", want: true},
		{name: "distinct merchants", a: "Netflix", b: "Countdown", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSimilar(tt.a, tt.b))
		})
	}
}

func TestDisplayDescription(t *testing.T) {
	assert.Equal(t, "Countdown", DisplayDescription(model.Transaction{Description: "Countdown"}))
	assert.Equal(t, "J Smith", DisplayDescription(model.Transaction{OtherPartyName: "J Smith"}))
	assert.Equal(t, "Unknown", DisplayDescription(model.Transaction{}))
}
