package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"newtab/internal/links"
)

func newLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Inspect and add links",
	}
	cmd.AddCommand(newLinksListCmd())
	cmd.AddCommand(newLinksAddCmd())
	return cmd
}

func newLinksListCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List links in grid order",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			all, err := links.NewRepository(db).List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tORDER\tCATEGORY\tLABEL\tLINK")
			for _, l := range links.Filter(all, category) {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", l.ID, l.Order, l.Category, l.Label, l.URL)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only show links in this category")
	return cmd
}

func newLinksAddCmd() *cobra.Command {
	var in links.NewLink
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a link to the grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if missing := in.Missing(); len(missing) > 0 {
				return fmt.Errorf("--%s is required", missing[0])
			}

			_, db, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			l, err := links.NewRepository(db).Insert(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d %s -> %s\n", l.ID, l.Label, l.URL)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Label, "label", "", "button label (required)")
	cmd.Flags().StringVar(&in.URL, "link", "", "target URL (required)")
	cmd.Flags().StringVar(&in.Icon, "icon", "", "SVG icon markup")
	cmd.Flags().StringVar(&in.Category, "category", "", "category name")
	return cmd
}
