// Package session holds the working categorization state: the loaded
// transaction set, per-transaction category assignments, the excluded set,
// and the single-level exclusion undo batch. The session is the sole owner
// of this state; all mutation goes through its operations and derived views
// are recomputed on demand, never cached as authoritative.
package session

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/mhollis/sift/internal/common"
	"github.com/mhollis/sift/internal/model"
)

const defaultCustomLabel = "New category"

// Session is an explicitly owned state object. Construct with New or
// Restore and inject it into whatever consumes it; it is bound to one
// loaded transaction set at a time and is not safe for concurrent use.
type Session struct {
	transactions []model.Transaction
	index        map[string]int
	assignments  map[string]string
	excluded     map[string]struct{}
	lastExcluded *model.ExcludedBatch
	dateRange    model.DateRange
	custom       []model.Category
}

// New creates an empty session.
func New() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset discards all state: transactions, assignments, exclusions, undo
// history, custom categories and the date range.
func (s *Session) Reset() {
	s.transactions = nil
	s.index = make(map[string]int)
	s.assignments = make(map[string]string)
	s.excluded = make(map[string]struct{})
	s.lastExcluded = nil
	s.dateRange = model.DateRange{}
	s.custom = nil
}

// Load replaces the working transaction set. The whole batch is validated
// before anything is touched; a malformed or duplicate record rejects the
// load and leaves existing state intact. On success all assignments,
// exclusions and undo history are cleared (decisions never carry across
// unrelated imports) and the date range defaults to the batch's min/max
// transaction date.
func (s *Session) Load(transactions []model.Transaction) error {
	index := make(map[string]int, len(transactions))
	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, ok := index[transactions[i].ID]; ok {
			return fmt.Errorf("record %d: %w: id %s", i, common.ErrDuplicateEntry, transactions[i].ID)
		}
		index[transactions[i].ID] = i
	}

	s.transactions = make([]model.Transaction, len(transactions))
	copy(s.transactions, transactions)
	s.index = index
	s.assignments = make(map[string]string)
	s.excluded = make(map[string]struct{})
	s.lastExcluded = nil
	s.dateRange = dateRangeOf(transactions)

	slog.Info("loaded transaction set",
		"count", len(transactions),
		"start", s.dateRange.Start,
		"end", s.dateRange.End)
	return nil
}

func dateRangeOf(transactions []model.Transaction) model.DateRange {
	if len(transactions) == 0 {
		return model.DateRange{}
	}
	rng := model.DateRange{
		Start: transactions[0].TransactionDate,
		End:   transactions[0].TransactionDate,
	}
	for _, tx := range transactions[1:] {
		if tx.TransactionDate < rng.Start {
			rng.Start = tx.TransactionDate
		}
		if tx.TransactionDate > rng.End {
			rng.End = tx.TransactionDate
		}
	}
	return rng
}

// Transactions returns the working set in load order.
func (s *Session) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// DateRange returns the current analysis window.
func (s *Session) DateRange() model.DateRange {
	return s.dateRange
}

// SetDateRange overrides the analysis window.
func (s *Session) SetDateRange(start, end string) {
	s.dateRange = model.DateRange{Start: start, End: end}
}

// Assign sets the category for one transaction. Idempotent. The category
// must be the uncategorized sentinel, a built-in id, or an existing custom
// id, and the transaction must be in the working set; anything else is
// rejected without mutating state.
func (s *Session) Assign(id, category string) error {
	if _, ok := s.index[id]; !ok {
		return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if !s.categoryExists(category) {
		return fmt.Errorf("category %s: %w", category, common.ErrUnknownCategory)
	}
	s.assignments[id] = category
	return nil
}

// AssignMany assigns one category to every listed transaction. The batch is
// validated in full before any assignment is applied: one bad id rejects
// the whole call and state is untouched (validate-all-then-apply).
func (s *Session) AssignMany(ids []string, category string) error {
	if !s.categoryExists(category) {
		return fmt.Errorf("category %s: %w", category, common.ErrUnknownCategory)
	}
	for _, id := range ids {
		if _, ok := s.index[id]; !ok {
			return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
		}
	}
	for _, id := range ids {
		s.assignments[id] = category
	}
	slog.Debug("bulk assigned", "count", len(ids), "category", category)
	return nil
}

// Exclude removes the listed transactions from all categorized views and
// records exactly this batch for undo, overwriting any previous batch.
// Assignments are untouched, so re-including restores them. Ids not in the
// working set are ignored.
func (s *Session) Exclude(ids []string, reason string) {
	batch := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := s.index[id]; !ok {
			continue
		}
		s.excluded[id] = struct{}{}
		batch = append(batch, id)
	}
	s.lastExcluded = &model.ExcludedBatch{Reason: reason, IDs: batch}
}

// UndoLastExclude re-includes the most recently excluded batch and clears
// it. Undo is single-level: only the latest batch can be reverted. Without
// a pending batch this is a no-op.
func (s *Session) UndoLastExclude() {
	if s.lastExcluded == nil {
		return
	}
	for _, id := range s.lastExcluded.IDs {
		delete(s.excluded, id)
	}
	s.lastExcluded = nil
}

// LastExcluded returns the pending undo batch, or nil.
func (s *Session) LastExcluded() *model.ExcludedBatch {
	if s.lastExcluded == nil {
		return nil
	}
	ids := make([]string, len(s.lastExcluded.IDs))
	copy(ids, s.lastExcluded.IDs)
	return &model.ExcludedBatch{Reason: s.lastExcluded.Reason, IDs: ids}
}

// IsExcluded reports whether a transaction is currently excluded.
func (s *Session) IsExcluded(id string) bool {
	_, ok := s.excluded[id]
	return ok
}

// AddCustomCategory creates a custom category with a generated unique id and
// the next palette color, cycling once customs outgrow the palette. A blank
// label gets a default. Kind must be expense or income.
func (s *Session) AddCustomCategory(label string, kind model.CategoryKind) (model.Category, error) {
	if kind != model.CategoryKindExpense && kind != model.CategoryKindIncome {
		return model.Category{}, fmt.Errorf("kind %q: %w", kind, common.ErrInvalidCategoryKind)
	}

	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		trimmed = defaultCustomLabel
	}

	cat := model.Category{
		ID:    model.CustomCategoryPrefix + uuid.NewString(),
		Label: trimmed,
		Kind:  kind,
		Color: model.Palette[len(s.custom)%len(model.Palette)],
	}
	s.custom = append(s.custom, cat)

	slog.Info("added custom category", "id", cat.ID, "label", cat.Label, "kind", cat.Kind)
	return cat, nil
}

// RemoveCustomCategory deletes a custom category. Every transaction assigned
// to it reverts to uncategorized; that is a scan-and-clear, not an error.
// Built-in ids cannot be removed.
func (s *Session) RemoveCustomCategory(id string) error {
	if model.IsBuiltinCategory(id) || id == model.CategoryUncategorized {
		return fmt.Errorf("category %s: %w", id, common.ErrReservedCategory)
	}

	found := -1
	for i, c := range s.custom {
		if c.ID == id {
			found = i
			break
		}
	}
	if found < 0 {
		return fmt.Errorf("category %s: %w", id, common.ErrNotFound)
	}

	s.custom = append(s.custom[:found], s.custom[found+1:]...)
	cleared := 0
	for txID, cat := range s.assignments {
		if cat == id {
			delete(s.assignments, txID)
			cleared++
		}
	}

	slog.Info("removed custom category", "id", id, "assignments_cleared", cleared)
	return nil
}

// CustomCategories returns the custom categories in creation order.
func (s *Session) CustomCategories() []model.Category {
	out := make([]model.Category, len(s.custom))
	copy(out, s.custom)
	return out
}

// Categories returns all selectable categories: built-ins followed by
// customs.
func (s *Session) Categories() []model.Category {
	return append(model.BuiltinCategories(), s.CustomCategories()...)
}

// ResolveCategory looks up category metadata by id across built-in and
// custom sets.
func (s *Session) ResolveCategory(id string) (model.Category, bool) {
	for _, c := range s.Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

func (s *Session) categoryExists(id string) bool {
	if id == model.CategoryUncategorized || model.IsBuiltinCategory(id) {
		return true
	}
	for _, c := range s.custom {
		if c.ID == id {
			return true
		}
	}
	return false
}

// CategorizedView returns the non-excluded transactions in load order, each
// with its resolved category; transactions without an assignment report
// uncategorized. Pure read: it never mutates state and must be recomputed
// after any mutation.
func (s *Session) CategorizedView() []model.CategorizedTransaction {
	view := make([]model.CategorizedTransaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if _, excluded := s.excluded[tx.ID]; excluded {
			continue
		}
		category, ok := s.assignments[tx.ID]
		if !ok {
			category = model.CategoryUncategorized
		}
		view = append(view, model.CategorizedTransaction{Transaction: tx, Category: category})
	}
	return view
}

// Pending returns the non-excluded transactions still awaiting an
// assignment, in load order. This is the triage queue.
func (s *Session) Pending() []model.Transaction {
	var out []model.Transaction
	for _, tx := range s.transactions {
		if _, excluded := s.excluded[tx.ID]; excluded {
			continue
		}
		if _, assigned := s.assignments[tx.ID]; assigned {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Snapshot exports the complete session state. The snapshot carries exactly
// the persisted shape and nothing else, so Restore(Snapshot()) is lossless.
func (s *Session) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		Transactions:     s.Transactions(),
		Assignments:      make(map[string]string, len(s.assignments)),
		Excluded:         make([]string, 0, len(s.excluded)),
		DateRange:        s.dateRange,
		CustomCategories: s.CustomCategories(),
	}
	for id, cat := range s.assignments {
		snap.Assignments[id] = cat
	}
	for id := range s.excluded {
		snap.Excluded = append(snap.Excluded, id)
	}
	sort.Strings(snap.Excluded)
	snap.LastExcludedBatch = s.LastExcluded()
	return snap
}

// Restore reconstructs a session from a snapshot, validating it the same
// way Load validates a fresh batch.
func Restore(snap model.Snapshot) (*Session, error) {
	s := New()
	if err := s.Load(snap.Transactions); err != nil {
		return nil, err
	}

	s.custom = make([]model.Category, len(snap.CustomCategories))
	copy(s.custom, snap.CustomCategories)

	for id, cat := range snap.Assignments {
		if err := s.Assign(id, cat); err != nil {
			return nil, fmt.Errorf("snapshot assignment: %w", err)
		}
	}
	s.Exclude(snap.Excluded, "")
	s.lastExcluded = nil
	if snap.LastExcludedBatch != nil {
		ids := make([]string, len(snap.LastExcludedBatch.IDs))
		copy(ids, snap.LastExcludedBatch.IDs)
		s.lastExcluded = &model.ExcludedBatch{Reason: snap.LastExcludedBatch.Reason, IDs: ids}
	}
	if snap.DateRange != (model.DateRange{}) {
		s.dateRange = snap.DateRange
	}
	return s, nil
}
