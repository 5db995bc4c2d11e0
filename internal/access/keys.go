package access

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"newtab/internal/store"
)

var ErrDuplicateKey = errors.New("access key already exists")

// Key is a row of the access_keys table.
type Key struct {
	Key       string
	CreatedAt time.Time
}

// KeyStore looks up and manages access keys. Keys are compared in plaintext.
type KeyStore struct {
	store *store.Store
}

func NewKeyStore(s *store.Store) *KeyStore {
	return &KeyStore{store: s}
}

// Exists reports whether key matches a stored access key.
func (k *KeyStore) Exists(ctx context.Context, key string) (bool, error) {
	if strings.TrimSpace(key) == "" {
		return false, nil
	}
	_, err := store.QueryRow(ctx, k.store.DB,
		k.store.Q(`SELECT id FROM access_keys WHERE "key" = $1`), key)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup access key: %w", err)
	}
	return true, nil
}

// Add stores a new access key.
func (k *KeyStore) Add(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("access key must not be empty")
	}
	_, err := store.Exec(ctx, k.store.DB, k.store.Q(`INSERT INTO access_keys ("key") VALUES ($1)`), key)
	if err != nil {
		if errors.Is(k.store.MapError(err), store.ErrUniqueViolation) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("insert access key: %w", err)
	}
	return nil
}

// List returns all keys, oldest first.
func (k *KeyStore) List(ctx context.Context) ([]Key, error) {
	rows, err := store.QueryRows(ctx, k.store.DB, `SELECT "key", created_at FROM access_keys ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list access keys: %w", err)
	}
	keys := make([]Key, 0, len(rows))
	for _, row := range rows {
		key, _ := row["key"].(string)
		created, _ := row["created_at"].(time.Time)
		keys = append(keys, Key{Key: key, CreatedAt: created})
	}
	return keys, nil
}
