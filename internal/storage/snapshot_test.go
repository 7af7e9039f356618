package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhollis/sift/internal/model"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sift.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testSnapshot() model.Snapshot {
	return model.Snapshot{
		Transactions: []model.Transaction{
			{
				ID:              "tx-000001",
				AccountNumber:   "01-0123-0456789-00",
				EffectiveDate:   "2025-03-01",
				TransactionDate: "2025-03-01",
				Description:     "COUNTDOWN AUCKLAND",
				OtherPartyName:  "Countdown",
				Amount:          -45.30,
				Balance:         1200.50,
			},
			{
				ID:              "tx-000002",
				TransactionDate: "2025-03-02",
				Description:     "NETFLIX.COM",
				Amount:          -22.99,
			},
			{
				ID:              "tx-000003",
				TransactionDate: "2025-03-15",
				Description:     "SALARY ACME CORP",
				Reference:       "PAYROLL",
				Amount:          2500.00,
			},
		},
		Assignments: map[string]string{
			"tx-000001": "groceries",
			"tx-000003": "income_employment",
		},
		Excluded:          []string{"tx-000002"},
		LastExcludedBatch: &model.ExcludedBatch{Reason: "duplicate import", IDs: []string{"tx-000002"}},
		DateRange:         model.DateRange{Start: "2025-03-01", End: "2025-03-31"},
		CustomCategories: []model.Category{
			{ID: "custom_abc", Label: "Pet Supplies", Kind: model.CategoryKindExpense, Color: "#2c6e49"},
		},
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sift.db")
	store, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestLoadSnapshot_EmptyDatabase(t *testing.T) {
	store := createTestStore(t)

	snap, err := store.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Transactions)
	assert.Empty(t, snap.Assignments)
	assert.Empty(t, snap.Excluded)
	assert.Nil(t, snap.LastExcludedBatch)
}

func TestSaveLoadSnapshot_RoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	snap := testSnapshot()

	require.NoError(t, store.SaveSnapshot(ctx, snap))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, snap.Transactions, loaded.Transactions)
	assert.Equal(t, snap.Assignments, loaded.Assignments)
	assert.Equal(t, snap.Excluded, loaded.Excluded)
	assert.Equal(t, snap.DateRange, loaded.DateRange)
	assert.Equal(t, snap.CustomCategories, loaded.CustomCategories)
	require.NotNil(t, loaded.LastExcludedBatch)
	assert.Equal(t, "duplicate import", loaded.LastExcludedBatch.Reason)
	assert.Equal(t, []string{"tx-000002"}, loaded.LastExcludedBatch.IDs)
}

func TestSaveSnapshot_ReplacesPrevious(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, testSnapshot()))

	replacement := model.Snapshot{
		Transactions: []model.Transaction{
			{ID: "tx-000009", TransactionDate: "2025-04-01", Description: "KMART ALBANY", Amount: -15.00},
		},
		Assignments: map[string]string{},
		DateRange:   model.DateRange{Start: "2025-04-01", End: "2025-04-01"},
	}
	require.NoError(t, store.SaveSnapshot(ctx, replacement))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Transactions, 1)
	assert.Equal(t, "tx-000009", loaded.Transactions[0].ID)
	assert.Empty(t, loaded.Assignments)
	assert.Empty(t, loaded.Excluded)

	// The old undo batch is gone with the old snapshot.
	assert.Nil(t, loaded.LastExcludedBatch)
}

func TestSaveSnapshot_EmptyUndoBatchSurvives(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	snap := testSnapshot()
	snap.Excluded = nil
	snap.LastExcludedBatch = &model.ExcludedBatch{Reason: "nothing matched", IDs: []string{}}
	require.NoError(t, store.SaveSnapshot(ctx, snap))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)

	// A batch with zero ids is still a pending batch, not the absence of one.
	require.NotNil(t, loaded.LastExcludedBatch)
	assert.Equal(t, "nothing matched", loaded.LastExcludedBatch.Reason)
	assert.Empty(t, loaded.LastExcludedBatch.IDs)
}

func TestSaveSnapshot_PersistsLoadOrder(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	snap := model.Snapshot{
		Transactions: []model.Transaction{
			{ID: "tx-b", TransactionDate: "2025-03-02", Amount: -2},
			{ID: "tx-a", TransactionDate: "2025-03-01", Amount: -1},
			{ID: "tx-c", TransactionDate: "2025-03-03", Amount: -3},
		},
		Assignments: map[string]string{},
	}
	require.NoError(t, store.SaveSnapshot(ctx, snap))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Transactions, 3)

	// Positions, not dates or ids, define the order.
	assert.Equal(t, "tx-b", loaded.Transactions[0].ID)
	assert.Equal(t, "tx-a", loaded.Transactions[1].ID)
	assert.Equal(t, "tx-c", loaded.Transactions[2].ID)
}
