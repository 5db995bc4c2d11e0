package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"newtab/internal/access"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage access keys",
	}
	cmd.AddCommand(newKeysAddCmd())
	cmd.AddCommand(newKeysListCmd())
	return cmd
}

func newKeysAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [key]",
		Short: "Add an access key (a random one is generated when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			key := uuid.NewString()
			if len(args) == 1 {
				key = args[0]
			}

			if err := access.NewKeyStore(db).Add(cmd.Context(), key); err != nil {
				if errors.Is(err, access.ErrDuplicateKey) {
					return fmt.Errorf("key %q already exists", key)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
}

func newKeysListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List access keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			keys, err := access.NewKeyStore(db).List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tCREATED")
			for _, k := range keys {
				fmt.Fprintf(w, "%s\t%s\n", k.Key, k.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}
