package main

import (
	"context"
	"fmt"

	"github.com/mhollis/sift/internal/common"
	"github.com/mhollis/sift/internal/config"
	"github.com/mhollis/sift/internal/rules"
	"github.com/mhollis/sift/internal/session"
	"github.com/mhollis/sift/internal/storage"
)

// openStore opens the snapshot database at the configured path.
func openStore() (*storage.Store, error) {
	path := config.DatabasePath()
	store, err := storage.Open(path)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not open the snapshot database at %s", path), err)
	}
	return store, nil
}

// loadSession restores the working session from the snapshot store.
func loadSession(ctx context.Context, store *storage.Store) (*session.Session, error) {
	snap, err := store.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if len(snap.Transactions) == 0 {
		return session.New(), nil
	}

	sess, err := session.Restore(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	return sess, nil
}

// saveSession persists the session back to the snapshot store.
func saveSession(ctx context.Context, store *storage.Store, sess *session.Session) error {
	if err := store.SaveSnapshot(ctx, sess.Snapshot()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// newClassifier builds the classifier, applying the configured ruleset file
// when one is set.
func newClassifier() (*rules.Classifier, error) {
	path := config.RulesetPath()
	if path == "" {
		return rules.NewClassifier(), nil
	}

	rs, err := rules.LoadRuleset(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load ruleset %s: %w", path, err)
	}
	return rules.NewClassifierFromRuleset(rs), nil
}
