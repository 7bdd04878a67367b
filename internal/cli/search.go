package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"emojimenu/internal/domain"
	"emojimenu/internal/ui/logic"
)

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [term...]",
		Short: "Print the emojis matching a term",
		Long: "Print the emojis whose name or short alias contains the term, " +
			"sorted by name, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.closeLog()
			table, categories, err := a.source().Get()
			if err != nil {
				return err
			}
			category, _ := cmd.Flags().GetString(CategoryFlag)
			if !categories.Contains(category) {
				return errors.Errorf("unknown category %q, see 'emojimenu categories'", category)
			}

			out := cmd.OutOrStdout()
			items := logic.Filter(table, strings.Join(args, " "), category)
			for _, item := range items {
				fmt.Fprintf(out, "%s\t%s\n", item.Character, item.Name)
			}
			return nil
		},
	}
	cmd.Flags().String(CategoryFlag, domain.AllCategory, "Only show emojis of this category")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the category names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.closeLog()
			_, categories, err := a.source().Get()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range categories {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
