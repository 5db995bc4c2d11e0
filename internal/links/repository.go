package links

import (
	"context"
	"fmt"

	"newtab/internal/store"
)

const linkColumns = `id, label, link, icon, category, "order"`

// Repository reads and writes the new_tab_links table.
type Repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s}
}

// List returns every link ordered by its order field ascending.
func (r *Repository) List(ctx context.Context) ([]Link, error) {
	return r.list(ctx, r.store.DB, "")
}

func (r *Repository) list(ctx context.Context, q store.Querier, suffix string) ([]Link, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+linkColumns+` FROM new_tab_links ORDER BY "order" ASC, id ASC`+suffix)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	var out []Link
	for rows.Next() {
		var l Link
		if err := rows.Scan(&l.ID, &l.Label, &l.URL, &l.Icon, &l.Category, &l.Order); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}

// Insert stores a new link after the current last one and returns the stored record.
func (r *Repository) Insert(ctx context.Context, in NewLink) (Link, error) {
	in = in.Normalize()

	var l Link
	err := r.store.DB.QueryRowContext(ctx, r.store.Q(
		`INSERT INTO new_tab_links (label, link, icon, category, "order")
		 VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX("order"), -1) + 1 FROM new_tab_links))
		 RETURNING `+linkColumns),
		in.Label, in.URL, in.Icon, in.Category,
	).Scan(&l.ID, &l.Label, &l.URL, &l.Icon, &l.Category, &l.Order)
	if err != nil {
		return Link{}, fmt.Errorf("insert link: %w", r.store.MapError(err))
	}
	return l, nil
}

// Reorder moves activeID to the position of overID and persists the new order
// of every affected link in a single transaction.
func (r *Repository) Reorder(ctx context.Context, activeID, overID int64) ([]Link, error) {
	tx, err := r.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	current, err := r.list(ctx, tx, r.store.Dialect.LockRows())
	if err != nil {
		return nil, err
	}

	moved, changed, err := MoveByID(current, activeID, overID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return current, nil
	}

	before := make(map[int64]int, len(current))
	for _, l := range current {
		before[l.ID] = l.Order
	}

	update := r.store.Q(`UPDATE new_tab_links SET "order" = $1 WHERE id = $2`)
	for _, l := range moved {
		if before[l.ID] == l.Order {
			continue
		}
		if _, err := store.Exec(ctx, tx, update, l.Order, l.ID); err != nil {
			return nil, fmt.Errorf("update order of link %d: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return moved, nil
}
