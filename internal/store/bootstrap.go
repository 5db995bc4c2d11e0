package store

import (
	"context"
	"fmt"
	"log"
)

// Bootstrap creates the access key and link tables if they do not exist.
func (s *Store) Bootstrap(ctx context.Context) error {
	for _, stmt := range s.Dialect.TablesSQL() {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap tables: %w", err)
		}
	}
	return s.warnNoKeys(ctx)
}

func (s *Store) warnNoKeys(ctx context.Context) error {
	var count int
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM access_keys").Scan(&count); err != nil {
		return fmt.Errorf("count access keys: %w", err)
	}
	if count == 0 {
		log.Println("WARNING: No access keys configured. Create one with `newtab keys add`.")
	}
	return nil
}
