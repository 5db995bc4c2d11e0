package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newtab/internal/config"
	"newtab/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "newtab",
		Short:        "Personal new tab page with a link grid and search bar",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newKeysCmd())
	root.AddCommand(newLinksCmd())
	return root
}

// openStore loads config, connects and makes sure the tables exist.
func openStore(ctx context.Context) (*config.Config, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	db, err := store.New(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.Bootstrap(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("bootstrap tables: %w", err)
	}
	return cfg, db, nil
}

func describeDB(dialect store.Dialect, d config.DatabaseConfig) string {
	if d.IsSQLite() {
		return dialect.Name() + ":" + d.DSN()
	}
	return fmt.Sprintf("%s://%s:%d/%s", dialect.Name(), d.Host, d.Port, d.Name)
}
