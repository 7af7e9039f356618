package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mhollis/sift/internal/cli"
	"github.com/mhollis/sift/internal/common"
	"github.com/mhollis/sift/internal/model"
	"github.com/mhollis/sift/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show per-category totals for the categorized view",
		Long: `Aggregate the categorized view into income and expense totals per
category. Excluded transactions are omitted; transactions without an
assignment are reported under uncategorized.

The date range defaults to the session's analysis window (the min/max
transaction date of the import); --from and --to narrow it.`,
		RunE: runReport,
	}
	cmd.Flags().String("from", "", "start date (inclusive, YYYY-MM-DD)")
	cmd.Flags().String("to", "", "end date (inclusive, YYYY-MM-DD)")
	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess, err := loadSession(cmd.Context(), store)
	if err != nil {
		return err
	}

	if len(sess.Transactions()) == 0 {
		return common.NewUserError("nothing to report; run 'sift import' first", common.ErrNoTransactions)
	}

	rng := sess.DateRange()
	if from != "" {
		rng.Start = from
	}
	if to != "" {
		rng.End = to
	}

	summary := report.Summarize(sess.CategorizedView(), sess.CustomCategories(), rng)

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Report %s to %s", rng.Start, rng.End)))
	printBucket("Income", summary.Income)
	printBucket("Expenses", summary.Expense)

	fmt.Printf("\n%s %s\n", cli.BoldStyle.Render("Income total:"), summary.IncomeTotal.StringFixed(2))
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Expense total:"), summary.ExpenseTotal.StringFixed(2))
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Net:"), summary.Net.StringFixed(2))
	return nil
}

func printBucket(title string, totals []report.CategoryTotal) {
	if len(totals) == 0 {
		return
	}
	fmt.Println(cli.BoldStyle.Render(title))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, t := range totals {
		fmt.Fprintf(w, "%s %s\t%s\t%d\t%.1f%%\n",
			cli.Swatch(t.Category.Color), t.Category.Label,
			t.Total.StringFixed(2), t.Count, t.Share*100)
	}
	_ = w.Flush()
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the working session entirely",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveSnapshot(cmd.Context(), model.Snapshot{
				Assignments: map[string]string{},
			}); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Session cleared."))
			return nil
		},
	}
}
