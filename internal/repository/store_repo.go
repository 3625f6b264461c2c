package repository

import (
	"database/sql"
	"errors"

	"practicego/internal/database"
)

// StoreRepository is the key-value persistence collaborator, backed by
// the app_store table. It satisfies progress.KeyValueStore.
type StoreRepository struct {
	db *database.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *database.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// Get retrieves a value by key. The boolean result reports presence.
func (r *StoreRepository) Get(key string) (string, bool, error) {
	var value string
	query := "SELECT value FROM app_store WHERE key = ?"
	err := r.db.QueryRow(query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set inserts or updates a value under the given key
func (r *StoreRepository) Set(key, value string) error {
	query := r.db.Dialect.UpsertStore()
	_, err := r.db.Exec(query, key, value)
	return err
}

// Keys lists every stored key, used by the backup tool
func (r *StoreRepository) Keys() ([]string, error) {
	rows, err := r.db.Query("SELECT key FROM app_store ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
