package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mhollis/sift/internal/common"
)

// RuleConfig is the YAML shape of one keyword rule.
type RuleConfig struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// BandConfig is the YAML shape of one amount band.
type BandConfig struct {
	Category string  `yaml:"category"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
}

// Ruleset is an externally supplied replacement for the built-in rules and
// bands. Amount bands are region- and currency-specific heuristics, so they
// are configuration data rather than code; a ruleset file lets users retune
// them. Any section left empty keeps its built-in default.
type Ruleset struct {
	ExpenseRules []RuleConfig `yaml:"expense_rules"`
	IncomeRules  []RuleConfig `yaml:"income_rules"`
	ExpenseBands []BandConfig `yaml:"expense_bands"`
	IncomeBands  []BandConfig `yaml:"income_bands"`
}

// LoadRuleset reads and validates a ruleset YAML file.
func LoadRuleset(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ruleset file: %w", err)
	}

	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse ruleset file: %w", err)
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}

	return &rs, nil
}

// Validate checks that every rule and band names a category and that band
// intervals are well-formed.
func (rs *Ruleset) Validate() error {
	for i, r := range append(append([]RuleConfig{}, rs.ExpenseRules...), rs.IncomeRules...) {
		if r.Category == "" {
			return fmt.Errorf("%w: rule %d has no category", common.ErrInvalidConfig, i)
		}
		if len(r.Keywords) == 0 {
			return fmt.Errorf("%w: rule for %q has no keywords", common.ErrInvalidConfig, r.Category)
		}
	}
	for _, b := range append(append([]BandConfig{}, rs.ExpenseBands...), rs.IncomeBands...) {
		if b.Category == "" {
			return fmt.Errorf("%w: amount band has no category", common.ErrInvalidConfig)
		}
		if b.Min > b.Max {
			return fmt.Errorf("%w: amount band for %q has min %.2f > max %.2f",
				common.ErrInvalidConfig, b.Category, b.Min, b.Max)
		}
	}
	return nil
}

func (rs *Ruleset) expenseRules() []Rule { return toRules(rs.ExpenseRules) }
func (rs *Ruleset) incomeRules() []Rule  { return toRules(rs.IncomeRules) }

func (rs *Ruleset) expenseBands() []AmountBand { return toBands(rs.ExpenseBands) }
func (rs *Ruleset) incomeBands() []AmountBand  { return toBands(rs.IncomeBands) }

func toRules(configs []RuleConfig) []Rule {
	rules := make([]Rule, 0, len(configs))
	for _, c := range configs {
		rules = append(rules, Rule{Category: c.Category, Keywords: c.Keywords})
	}
	return rules
}

func toBands(configs []BandConfig) []AmountBand {
	bands := make([]AmountBand, 0, len(configs))
	for _, c := range configs {
		bands = append(bands, AmountBand{Category: c.Category, Min: c.Min, Max: c.Max})
	}
	return bands
}
