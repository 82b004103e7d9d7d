package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbridge/billmarket/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// inTx runs fn inside one transaction. Every lifecycle transition that also
// touches counters or funds goes through here so that no partial state is ever
// observable.
func (r *Repository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	err = fn(tx)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// applyStats increments the given counters within the caller's transaction.
func applyStats(ctx context.Context, tx pgx.Tx, entries []entity.StatEntry) error {
	const q = `
	INSERT INTO user_stats (user_id, stat, value)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id, stat) DO UPDATE SET value = user_stats.value + EXCLUDED.value
	`

	for _, e := range entries {
		_, err := tx.Exec(ctx, q, e.UserID, e.Stat, e.Amount)
		if err != nil {
			return fmt.Errorf("apply stat %q for user %s: %w", e.Stat, e.UserID, err)
		}
	}

	return nil
}
