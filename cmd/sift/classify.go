package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mhollis/sift/internal/cli"
	"github.com/mhollis/sift/internal/model"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Show category suggestions for pending transactions",
		Long: `Run the rule-based classifier over every transaction still awaiting a
category and print the suggestions. With --apply, suggestions are assigned
in bulk; transactions with no suggestion stay pending for manual triage.`,
		RunE: runClassify,
	}
	cmd.Flags().Bool("apply", false, "assign the suggested categories")
	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	apply, _ := cmd.Flags().GetBool("apply")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess, err := loadSession(cmd.Context(), store)
	if err != nil {
		return err
	}

	classifier, err := newClassifier()
	if err != nil {
		return err
	}

	pending := sess.Pending()
	if len(pending) == 0 {
		fmt.Println(cli.SubtleStyle.Render("Nothing pending; all transactions are categorized or excluded."))
		return nil
	}

	suggestions := make(map[string][]string) // category -> transaction ids
	unmatched := 0

	fmt.Println(cli.TitleStyle.Render("Suggestions"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, tx := range pending {
		category, ok := classifier.Classify(tx)
		if !ok {
			unmatched++
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n",
				tx.ID, tx.TransactionDate, tx.Amount, cli.SubtleStyle.Render("(no suggestion)"))
			continue
		}
		suggestions[category] = append(suggestions[category], tx.ID)
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n",
			tx.ID, tx.TransactionDate, tx.Amount,
			model.CategoryLabel(category, sess.CustomCategories()))
	}
	_ = w.Flush()

	if !apply {
		fmt.Println(cli.SubtleStyle.Render(
			fmt.Sprintf("%d pending, %d without a suggestion. Re-run with --apply to assign.",
				len(pending), unmatched)))
		return nil
	}

	assigned := 0
	for category, ids := range suggestions {
		if err := sess.AssignMany(ids, category); err != nil {
			return fmt.Errorf("failed to assign %s: %w", category, err)
		}
		assigned += len(ids)
	}
	if err := saveSession(cmd.Context(), store, sess); err != nil {
		return err
	}

	fmt.Println(cli.SuccessStyle.Render(
		fmt.Sprintf("Assigned %d of %d pending transactions; %d need manual triage.",
			assigned, len(pending), unmatched)))
	return nil
}
