package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhollis/sift/internal/cli"
)

func excludeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclude <transaction-id...>",
		Short: "Exclude transactions from categorized views",
		Long: `Exclude transactions from all categorized views without deleting them.
Assignments are kept, so undoing the exclusion restores them intact.

Each exclusion overwrites the undo batch: only the most recent batch can be
reverted with 'sift undo'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExclude,
	}
	cmd.Flags().String("reason", "manual", "tag recorded with the exclusion batch")
	return cmd
}

func runExclude(cmd *cobra.Command, args []string) error {
	reason, _ := cmd.Flags().GetString("reason")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess, err := loadSession(cmd.Context(), store)
	if err != nil {
		return err
	}

	sess.Exclude(args, reason)
	if err := saveSession(cmd.Context(), store, sess); err != nil {
		return err
	}

	batch := sess.LastExcluded()
	fmt.Println(cli.SuccessStyle.Render(
		fmt.Sprintf("Excluded %d transaction(s) (%s); 'sift undo' reverts this batch", len(batch.IDs), reason)))
	return nil
}

func undoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the most recent exclusion batch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			sess, err := loadSession(cmd.Context(), store)
			if err != nil {
				return err
			}

			batch := sess.LastExcluded()
			if batch == nil {
				fmt.Println(cli.SubtleStyle.Render("Nothing to undo."))
				return nil
			}

			sess.UndoLastExclude()
			if err := saveSession(cmd.Context(), store, sess); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Restored %d transaction(s)", len(batch.IDs))))
			return nil
		},
	}
}
