package staterepo

import (
	"context"

	"github.com/avoronin/gameshop/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository is a single-table key-value store. The review board keeps its
// whole collection as one serialized value here.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Get returns the stored value for key, or nil when the key is absent.
func (repo *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := repo.db.QueryRow(ctx, "SELECT value FROM app_state WHERE key = $1", key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't read app state", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return value, nil
}

// Set overwrites the value for key in full.
func (repo *Repository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := repo.db.Exec(ctx, query, key, value)
	if err != nil {
		zap.L().Error("can't write app state", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
