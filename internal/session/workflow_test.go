package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhollis/sift/internal/model"
	"github.com/mhollis/sift/internal/rules"
)

// Walks the whole triage flow: load, classify, assign one, exclude and undo.
func TestTriageWorkflow(t *testing.T) {
	transactions := []model.Transaction{
		{ID: "tx-1", TransactionDate: "2025-03-01", Description: "COUNTDOWN AUCKLAND", Amount: -45.30},
		{ID: "tx-2", TransactionDate: "2025-03-05", Description: "NETFLIX.COM", Amount: -22.99},
		{ID: "tx-3", TransactionDate: "2025-03-15", Description: "SALARY ACME CORP", Amount: 2500.00},
	}

	sess := New()
	require.NoError(t, sess.Load(transactions))

	classifier := rules.NewClassifier()
	wantSuggestions := []string{"groceries", "subscriptions", "income_employment"}
	for i, tx := range sess.Transactions() {
		got, ok := classifier.Classify(tx)
		require.True(t, ok, "transaction %s should get a suggestion", tx.ID)
		assert.Equal(t, wantSuggestions[i], got)
	}

	// Suggestions alone change nothing: the view is all uncategorized.
	view := sess.CategorizedView()
	require.Len(t, view, 3)
	for _, ct := range view {
		assert.Equal(t, model.CategoryUncategorized, ct.Category)
	}

	require.NoError(t, sess.Assign("tx-1", "groceries"))

	view = sess.CategorizedView()
	categorized := 0
	for _, ct := range view {
		if ct.Category == "groceries" {
			categorized++
		} else {
			assert.Equal(t, model.CategoryUncategorized, ct.Category)
		}
	}
	assert.Equal(t, 1, categorized)

	before := sess.CategorizedView()
	sess.Exclude([]string{"tx-2"}, "manual")
	sess.UndoLastExclude()
	assert.Equal(t, before, sess.CategorizedView())
}
