// Package report aggregates categorized transactions into the per-category
// totals the dashboard collaborators render. Amounts are summed as decimals
// so totals never accumulate float drift.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mhollis/sift/internal/model"
)

// CategoryTotal is one category's aggregate within a summary bucket.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
	Count    int
	Share    float64 // fraction of the bucket's total, 0..1
}

// Summary splits a categorized view into income and expense buckets.
// Expense totals are reported as absolute values.
type Summary struct {
	Income       []CategoryTotal
	Expense      []CategoryTotal
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Net          decimal.Decimal
}

// Summarize aggregates a categorized view over the given date range
// (inclusive ISO bounds; empty bounds mean unbounded). The transaction
// amount sign decides the bucket, never the category. Buckets are sorted by
// total, largest first, with uncategorized entries included like any other
// category.
func Summarize(view []model.CategorizedTransaction, custom []model.Category, rng model.DateRange) Summary {
	type bucket struct {
		totals map[string]decimal.Decimal
		counts map[string]int
		order  []string
	}
	newBucket := func() *bucket {
		return &bucket{totals: make(map[string]decimal.Decimal), counts: make(map[string]int)}
	}
	income, expense := newBucket(), newBucket()

	add := func(b *bucket, category string, amount decimal.Decimal) {
		if _, ok := b.totals[category]; !ok {
			b.order = append(b.order, category)
		}
		b.totals[category] = b.totals[category].Add(amount)
		b.counts[category]++
	}

	for _, ct := range view {
		if !inRange(ct.TransactionDate, rng) {
			continue
		}
		amount := decimal.NewFromFloat(ct.Amount)
		if ct.IsIncome() {
			add(income, ct.Category, amount)
		} else {
			add(expense, ct.Category, amount.Abs())
		}
	}

	summary := Summary{
		Income:  totalsOf(income.order, income.totals, income.counts, custom),
		Expense: totalsOf(expense.order, expense.totals, expense.counts, custom),
	}
	for _, t := range summary.Income {
		summary.IncomeTotal = summary.IncomeTotal.Add(t.Total)
	}
	for _, t := range summary.Expense {
		summary.ExpenseTotal = summary.ExpenseTotal.Add(t.Total)
	}
	summary.Net = summary.IncomeTotal.Sub(summary.ExpenseTotal)

	fillShares(summary.Income, summary.IncomeTotal)
	fillShares(summary.Expense, summary.ExpenseTotal)

	return summary
}

func inRange(date string, rng model.DateRange) bool {
	if rng.Start != "" && date < rng.Start {
		return false
	}
	if rng.End != "" && date > rng.End {
		return false
	}
	return true
}

func totalsOf(order []string, totals map[string]decimal.Decimal, counts map[string]int, custom []model.Category) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		out = append(out, CategoryTotal{
			Category: model.Category{
				ID:    id,
				Label: model.CategoryLabel(id, custom),
				Color: model.CategoryColor(id, custom),
			},
			Total: totals[id],
			Count: counts[id],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

func fillShares(totals []CategoryTotal, sum decimal.Decimal) {
	if sum.IsZero() {
		return
	}
	for i := range totals {
		share, _ := totals[i].Total.Div(sum).Float64()
		totals[i].Share = share
	}
}
