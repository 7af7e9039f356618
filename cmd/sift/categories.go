package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mhollis/sift/internal/cli"
	"github.com/mhollis/sift/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage budget categories",
		RunE:  runCategoriesList,
	}
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesRemoveCmd())
	return cmd
}

func runCategoriesList(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sess, err := loadSession(cmd.Context(), store)
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render("Categories"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, cat := range sess.Categories() {
		builtin := "custom"
		if model.IsBuiltinCategory(cat.ID) {
			builtin = "built-in"
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n",
			cli.Swatch(cat.Color), cat.ID, cat.Label, cat.Kind, builtin)
	}
	return w.Flush()
}

func categoriesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Create a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			sess, err := loadSession(cmd.Context(), store)
			if err != nil {
				return err
			}

			cat, err := sess.AddCustomCategory(args[0], model.CategoryKind(kind))
			if err != nil {
				return err
			}
			if err := saveSession(cmd.Context(), store, sess); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Created %s (%s, %s)", cat.Label, cat.ID, cat.Color)))
			return nil
		},
	}
	cmd.Flags().String("kind", "expense", "category kind (expense or income)")
	return cmd
}

func categoriesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category-id>",
		Short: "Remove a custom category",
		Long: `Remove a custom category. Transactions assigned to it revert to
uncategorized. Built-in categories cannot be removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			sess, err := loadSession(cmd.Context(), store)
			if err != nil {
				return err
			}

			if err := sess.RemoveCustomCategory(args[0]); err != nil {
				return err
			}
			if err := saveSession(cmd.Context(), store, sess); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Removed %s", args[0])))
			return nil
		},
	}
}
