package rules

import (
	"log/slog"
	"math"
	"strings"

	"github.com/mhollis/sift/internal/model"
)

// Classifier suggests exactly one category id for a transaction, or none.
// It is pure and never fails: unmatched input is a normal outcome, not an
// error. Rule lists and bands are fixed at construction.
type Classifier struct {
	expenseRules []Rule
	incomeRules  []Rule
	expenseBands []AmountBand
	incomeBands  []AmountBand
}

// NewClassifier creates a classifier with the built-in rules and bands.
func NewClassifier() *Classifier {
	return &Classifier{
		expenseRules: DefaultExpenseRules(),
		incomeRules:  DefaultIncomeRules(),
		expenseBands: DefaultExpenseBands(),
		incomeBands:  DefaultIncomeBands(),
	}
}

// NewClassifierFromRuleset creates a classifier from a loaded ruleset.
// Sections left empty in the ruleset fall back to the built-in defaults.
func NewClassifierFromRuleset(rs *Ruleset) *Classifier {
	c := NewClassifier()
	if rs == nil {
		return c
	}
	if len(rs.ExpenseRules) > 0 {
		c.expenseRules = rs.expenseRules()
	}
	if len(rs.IncomeRules) > 0 {
		c.incomeRules = rs.incomeRules()
	}
	if len(rs.ExpenseBands) > 0 {
		c.expenseBands = rs.expenseBands()
	}
	if len(rs.IncomeBands) > 0 {
		c.incomeBands = rs.incomeBands()
	}
	return c
}

// SearchableText concatenates every free-text field of a transaction into
// the haystack used for keyword matching. Reference and other-party fields
// increase recall over the raw description alone.
func SearchableText(tx model.Transaction) string {
	parts := []string{
		tx.Description,
		tx.Particulars,
		tx.Code,
		tx.Reference,
		tx.OtherPartyName,
		tx.OtherPartyParticulars,
		tx.OtherPartyCode,
		tx.OtherPartyReference,
	}
	return strings.Join(parts, " ")
}

// Classify suggests a category for a transaction. The rule list is selected
// by the sign of the amount; keyword matching runs over the searchable text
// and the first matching rule wins. Only when no keyword matches are the
// amount bands consulted, over the absolute amount, first band wins. The
// second return is false when nothing matched.
func (c *Classifier) Classify(tx model.Transaction) (string, bool) {
	income := tx.IsIncome()

	if category, ok := c.matchKeywords(SearchableText(tx), income); ok {
		return category, true
	}

	if category, ok := c.matchBands(math.Abs(tx.Amount), income); ok {
		slog.Debug("classified by amount band",
			"transaction", tx.ID,
			"amount", tx.Amount,
			"category", category)
		return category, true
	}

	return "", false
}

// ClassifyDescription suggests a category from a bare description, for
// callers lacking full transaction context. Keyword-only: there is no
// amount to fall back on.
func (c *Classifier) ClassifyDescription(description string, income bool) (string, bool) {
	return c.matchKeywords(description, income)
}

// Candidates returns every category whose rules match the description, in
// rule order and deduplicated. Used to surface alternative suggestions.
func (c *Classifier) Candidates(description string, income bool) []string {
	ruleList := c.expenseRules
	if income {
		ruleList = c.incomeRules
	}

	haystack := strings.TrimSpace(strings.ToLower(description))
	seen := make(map[string]struct{})
	var result []string
	for _, rule := range ruleList {
		if _, ok := seen[rule.Category]; ok {
			continue
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(haystack, strings.ToLower(kw)) {
				seen[rule.Category] = struct{}{}
				result = append(result, rule.Category)
				break
			}
		}
	}
	return result
}

func (c *Classifier) matchKeywords(text string, income bool) (string, bool) {
	ruleList := c.expenseRules
	if income {
		ruleList = c.incomeRules
	}

	haystack := strings.TrimSpace(strings.ToLower(text))
	for _, rule := range ruleList {
		for _, kw := range rule.Keywords {
			if strings.Contains(haystack, strings.ToLower(kw)) {
				return rule.Category, true
			}
		}
	}
	return "", false
}

func (c *Classifier) matchBands(amount float64, income bool) (string, bool) {
	bands := c.expenseBands
	if income {
		bands = c.incomeBands
	}

	for _, band := range bands {
		if band.Contains(amount) {
			return band.Category, true
		}
	}
	return "", false
}
