package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mhollis/sift/internal/cli"
	"github.com/mhollis/sift/internal/group"
	"github.com/mhollis/sift/internal/model"
	"github.com/mhollis/sift/internal/normalize"
)

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Show merchant clusters in the working set",
		Long: `Cluster the non-excluded transactions by merchant signature. Groups with
more than one member are candidates for bulk assignment via
'sift assign --similar'.

With --like, unique descriptions are instead ranked by closeness to the
given text, nearest first.`,
		RunE: runGroups,
	}
	cmd.Flags().String("like", "", "rank unique descriptions by similarity to this text")
	return cmd
}

func runGroups(cmd *cobra.Command, _ []string) error {
	like, _ := cmd.Flags().GetString("like")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess, err := loadSession(cmd.Context(), store)
	if err != nil {
		return err
	}

	queue := sess.Transactions()
	included := make([]model.Transaction, 0, len(queue))
	for _, tx := range queue {
		if !sess.IsExcluded(tx.ID) {
			included = append(included, tx)
		}
	}

	if like != "" {
		descriptions := group.UniqueDescriptions(included)
		labels := make([]string, 0, len(descriptions))
		for _, d := range descriptions {
			labels = append(labels, d.Label)
		}

		fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Descriptions similar to %q", like)))
		for _, label := range group.RankSimilar(like, labels) {
			marker := " "
			if normalize.IsSimilar(like, label) {
				marker = cli.SuccessStyle.Render("*")
			}
			fmt.Printf("%s %s\n", marker, label)
		}
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Merchant groups"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, g := range group.ByKey(included) {
		label := normalize.MeaningfulDescription(g.Transactions[0])
		fmt.Fprintf(w, "%s\t%d\t%s\n", g.Key, len(g.Transactions), label)
	}
	return w.Flush()
}
