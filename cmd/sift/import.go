package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mhollis/sift/internal/cli"
	"github.com/mhollis/sift/internal/ingest"
	"github.com/mhollis/sift/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from bank CSV or OFX/QFX exports",
		Long: `Import transactions from bank export files and start a new triage session.

Importing replaces the working set: all assignments, exclusions and undo
history from a previous session are discarded, so decisions never mix across
unrelated imports.

Examples:
  # Import a CSV export
  sift import ~/Downloads/statement.csv

  # Import several exports into one session
  sift import ~/Downloads/*.csv ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err != nil {
				return fmt.Errorf("no files found matching %s", pattern)
			}
			matches = []string{pattern}
		}
		files = append(files, matches...)
	}

	bar := progressbar.Default(int64(len(files)), "importing")

	var all []model.Transaction
	seen := make(map[string]bool)
	skipped := 0
	duplicates := 0

	for _, file := range files {
		result, err := parseFile(file)
		if err != nil {
			return err
		}
		skipped += result.Skipped
		for _, tx := range result.Transactions {
			hash := tx.GenerateHash()
			if seen[hash] {
				duplicates++
				continue
			}
			seen[hash] = true
			// Re-sequence so ids stay unique across multiple files.
			tx.ID = fmt.Sprintf("tx-%06d", len(all)+1)
			all = append(all, tx)
		}
		_ = bar.Add(1)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess, err := loadSession(cmd.Context(), store)
	if err != nil {
		return err
	}
	if err := sess.Load(all); err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	if err := saveSession(cmd.Context(), store, sess); err != nil {
		return err
	}

	rng := sess.DateRange()
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
		"Imported %d transactions (%d skipped, %d duplicates) covering %s to %s",
		len(all), skipped, duplicates, rng.Start, rng.End)))
	return nil
}

func parseFile(path string) (*ingest.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ingest.ParseCSV(f)
	case ".ofx", ".qfx":
		return ingest.ParseOFX(f)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}
