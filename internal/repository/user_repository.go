package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/finbridge/billmarket/internal/entity"
)

// UpsertUser syncs an actor record from the auth service. Role is kept as-is
// on conflict: business logic assumes a fixed role per account.
func (r *Repository) UpsertUser(ctx context.Context, user entity.User) error {
	const q = `
	INSERT INTO users (id, name, email, role, available_funds, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, q,
		user.ID, user.Name, user.Email, user.Role, user.AvailableFunds, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) User(ctx context.Context, id uuid.UUID) (entity.User, error) {
	q := selectUser + " WHERE id = $1"

	var u entity.User

	err := r.db.QueryRow(ctx, q, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.AvailableFunds,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}

func (r *Repository) AddFunds(ctx context.Context, id uuid.UUID, amount decimal.Decimal, now time.Time) error {
	const q = `UPDATE users SET available_funds = available_funds + $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, amount, now, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) UserStats(ctx context.Context, id uuid.UUID) (map[entity.Stat]decimal.Decimal, error) {
	const q = `SELECT stat, value FROM user_stats WHERE user_id = $1`

	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	stats := make(map[entity.Stat]decimal.Decimal)

	for rows.Next() {
		var (
			stat  entity.Stat
			value decimal.Decimal
		)

		err = rows.Scan(&stat, &value)
		if err != nil {
			return nil, err
		}

		stats[stat] = value
	}

	return stats, nil
}
