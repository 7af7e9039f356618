package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mhollis/sift/internal/model"
)

const (
	metaDateRangeStart = "date_range_start"
	metaDateRangeEnd   = "date_range_end"
	// Presence of this key marks a pending undo batch; a batch with zero
	// ids is still distinct from no batch at all.
	metaExcludedBatchReason = "excluded_batch_reason"
)

// SaveSnapshot atomically replaces the stored snapshot. The store holds one
// session's state at a time, matching the session's replace-on-load
// lifecycle.
func (s *Store) SaveSnapshot(ctx context.Context, snap model.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"assignments", "excluded", "excluded_batch", "custom_categories", "transactions", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	insertTx, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (
			position, id, hash, account_number, effective_date, transaction_date,
			description, transaction_code, particulars, code, reference,
			other_party_name, other_party_account_number, other_party_particulars,
			other_party_code, other_party_reference, amount, balance
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction insert: %w", err)
	}
	defer func() { _ = insertTx.Close() }()

	for i, t := range snap.Transactions {
		if _, err := insertTx.ExecContext(ctx,
			i, t.ID, t.GenerateHash(), t.AccountNumber, t.EffectiveDate, t.TransactionDate,
			t.Description, t.TransactionCode, t.Particulars, t.Code, t.Reference,
			t.OtherPartyName, t.OtherPartyAccountNumber, t.OtherPartyParticulars,
			t.OtherPartyCode, t.OtherPartyReference, t.Amount, t.Balance); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", t.ID, err)
		}
	}

	for id, category := range snap.Assignments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO assignments (transaction_id, category) VALUES (?, ?)`,
			id, category); err != nil {
			return fmt.Errorf("failed to insert assignment for %s: %w", id, err)
		}
	}

	for _, id := range snap.Excluded {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO excluded (transaction_id) VALUES (?)`, id); err != nil {
			return fmt.Errorf("failed to insert exclusion for %s: %w", id, err)
		}
	}

	if snap.LastExcludedBatch != nil {
		for i, id := range snap.LastExcludedBatch.IDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO excluded_batch (position, transaction_id) VALUES (?, ?)`,
				i, id); err != nil {
				return fmt.Errorf("failed to insert excluded batch entry: %w", err)
			}
		}
		if err := setMeta(ctx, tx, metaExcludedBatchReason, snap.LastExcludedBatch.Reason); err != nil {
			return err
		}
	}

	for i, c := range snap.CustomCategories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO custom_categories (position, id, label, kind, color) VALUES (?, ?, ?, ?, ?)`,
			i, c.ID, c.Label, string(c.Kind), c.Color); err != nil {
			return fmt.Errorf("failed to insert custom category %s: %w", c.ID, err)
		}
	}

	if err := setMeta(ctx, tx, metaDateRangeStart, snap.DateRange.Start); err != nil {
		return err
	}
	if err := setMeta(ctx, tx, metaDateRangeEnd, snap.DateRange.End); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	slog.Debug("saved snapshot",
		"transactions", len(snap.Transactions),
		"assignments", len(snap.Assignments),
		"excluded", len(snap.Excluded))
	return nil
}

// LoadSnapshot reads the stored snapshot. An empty database yields an empty
// snapshot, not an error.
func (s *Store) LoadSnapshot(ctx context.Context) (model.Snapshot, error) {
	snap := model.Snapshot{Assignments: make(map[string]string)}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_number, effective_date, transaction_date,
			description, transaction_code, particulars, code, reference,
			other_party_name, other_party_account_number, other_party_particulars,
			other_party_code, other_party_reference, amount, balance
		FROM transactions ORDER BY position`)
	if err != nil {
		return snap, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(
			&t.ID, &t.AccountNumber, &t.EffectiveDate, &t.TransactionDate,
			&t.Description, &t.TransactionCode, &t.Particulars, &t.Code, &t.Reference,
			&t.OtherPartyName, &t.OtherPartyAccountNumber, &t.OtherPartyParticulars,
			&t.OtherPartyCode, &t.OtherPartyReference, &t.Amount, &t.Balance); err != nil {
			return snap, fmt.Errorf("failed to scan transaction: %w", err)
		}
		snap.Transactions = append(snap.Transactions, t)
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("error iterating transactions: %w", err)
	}

	if err := s.loadAssignments(ctx, &snap); err != nil {
		return snap, err
	}
	if err := s.loadExclusions(ctx, &snap); err != nil {
		return snap, err
	}
	if err := s.loadCustomCategories(ctx, &snap); err != nil {
		return snap, err
	}

	snap.DateRange.Start, _ = s.getMeta(ctx, metaDateRangeStart)
	snap.DateRange.End, _ = s.getMeta(ctx, metaDateRangeEnd)

	return snap, nil
}

func (s *Store) loadAssignments(ctx context.Context, snap *model.Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `SELECT transaction_id, category FROM assignments`)
	if err != nil {
		return fmt.Errorf("failed to query assignments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, category string
		if err := rows.Scan(&id, &category); err != nil {
			return fmt.Errorf("failed to scan assignment: %w", err)
		}
		snap.Assignments[id] = category
	}
	return rows.Err()
}

func (s *Store) loadExclusions(ctx context.Context, snap *model.Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `SELECT transaction_id FROM excluded ORDER BY transaction_id`)
	if err != nil {
		return fmt.Errorf("failed to query exclusions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan exclusion: %w", err)
		}
		snap.Excluded = append(snap.Excluded, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	reason, ok := s.getMeta(ctx, metaExcludedBatchReason)
	if !ok {
		return nil
	}
	batch := &model.ExcludedBatch{Reason: reason, IDs: []string{}}

	batchRows, err := s.db.QueryContext(ctx, `SELECT transaction_id FROM excluded_batch ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to query excluded batch: %w", err)
	}
	defer func() { _ = batchRows.Close() }()

	for batchRows.Next() {
		var id string
		if err := batchRows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan excluded batch: %w", err)
		}
		batch.IDs = append(batch.IDs, id)
	}
	if err := batchRows.Err(); err != nil {
		return err
	}

	snap.LastExcludedBatch = batch
	return nil
}

func (s *Store) loadCustomCategories(ctx context.Context, snap *model.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, kind, color FROM custom_categories ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to query custom categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c model.Category
		var kind string
		if err := rows.Scan(&c.ID, &c.Label, &kind, &c.Color); err != nil {
			return fmt.Errorf("failed to scan custom category: %w", err)
		}
		c.Kind = model.CategoryKind(kind)
		snap.CustomCategories = append(snap.CustomCategories, c)
	}
	return rows.Err()
}

func setMeta(ctx context.Context, tx *sql.Tx, key, value string) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value); err != nil {
		return fmt.Errorf("failed to set meta %s: %w", key, err)
	}
	return nil
}

func (s *Store) getMeta(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		slog.Warn("failed to read meta key", "key", key, "error", err)
		return "", false
	}
	return value, true
}
