package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhollis/sift/internal/cli"
	"github.com/mhollis/sift/internal/group"
	"github.com/mhollis/sift/internal/model"
)

func assignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <category> <transaction-id...>",
		Short: "Assign a category to transactions",
		Long: `Assign a category to one or more transactions by id.

With --similar, the first id is treated as a pivot and the category is also
applied to every later pending transaction sharing the pivot's merchant
signature. Earlier transactions are left alone: the queue is consumed front
to back, so bulk assignment targets the duplicates you have not reached yet.

The batch is validated before anything is applied; one unknown id or an
unknown category rejects the whole call.`,
		Args: cobra.MinimumNArgs(2),
		RunE: runAssign,
	}
	cmd.Flags().Bool("similar", false, "also assign later transactions in the pivot's merchant group")
	return cmd
}

func runAssign(cmd *cobra.Command, args []string) error {
	similar, _ := cmd.Flags().GetBool("similar")
	category := args[0]
	ids := args[1:]

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess, err := loadSession(cmd.Context(), store)
	if err != nil {
		return err
	}

	if similar {
		ids = expandSimilar(sess.Pending(), ids)
	}

	if err := sess.AssignMany(ids, category); err != nil {
		return err
	}
	if err := saveSession(cmd.Context(), store, sess); err != nil {
		return err
	}

	fmt.Println(cli.SuccessStyle.Render(
		fmt.Sprintf("Assigned %d transaction(s) to %s", len(ids), category)))
	return nil
}

// expandSimilar widens the id list with the look-ahead merchant group of the
// first id, using it as the pivot in the pending queue.
func expandSimilar(queue []model.Transaction, ids []string) []string {
	if len(ids) == 0 {
		return ids
	}

	var pivot *model.Transaction
	for i := range queue {
		if queue[i].ID == ids[0] {
			pivot = &queue[i]
			break
		}
	}
	if pivot == nil {
		return ids
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	for _, member := range group.MembersFrom(*pivot, queue) {
		if _, ok := seen[member.ID]; ok {
			continue
		}
		seen[member.ID] = struct{}{}
		ids = append(ids, member.ID)
	}
	return ids
}
