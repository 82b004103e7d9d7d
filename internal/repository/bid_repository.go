package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/finbridge/billmarket/internal/entity"
)

const pgUniqueViolation = "23505"

// CreateBid inserts the bid and bumps the financer's placed counter in one
// transaction. The (bill_id, financer_id) unique index is the authoritative
// guard against duplicate placement: under a race exactly one insert wins and
// the loser gets ErrDuplicateBid.
func (r *Repository) CreateBid(ctx context.Context, bid entity.Bid, entries []entity.StatEntry) error {
	const q = `
	INSERT INTO bids (
		id,
		bill_id,
		financer_id,
		financing_percentage,
		bid_amount,
		status,
		interest,
		terms,
		expires_at,
		accepted_at,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			q,
			bid.ID,
			bid.BillID,
			bid.FinancerID,
			bid.FinancingPercentage,
			bid.BidAmount,
			bid.Status,
			bid.Interest,
			zeronull.Text(bid.Terms),
			bid.ExpiresAt,
			zeronull.Timestamptz(bid.AcceptedAt),
			bid.CreatedAt,
			bid.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return entity.ErrDuplicateBid
			}

			return fmt.Errorf("insert bid: %w", err)
		}

		return applyStats(ctx, tx, entries)
	})
}

func (r *Repository) Bid(ctx context.Context, id uuid.UUID) (entity.Bid, error) {
	q := selectBid + " WHERE id = $1"
	return scanBid(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) UpdateBid(ctx context.Context, bid entity.Bid) error {
	const q = `
	UPDATE bids
	SET financing_percentage = $1, bid_amount = $2, interest = $3, terms = $4, updated_at = $5
	WHERE id = $6 AND status = 'PENDING'
	`

	result, err := r.db.Exec(ctx, q,
		bid.FinancingPercentage, bid.BidAmount, bid.Interest, zeronull.Text(bid.Terms), bid.UpdatedAt, bid.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrInvalidState
	}

	return nil
}

// DeleteBid cancels a pending bid. Hard delete, no audit trail retained.
func (r *Repository) DeleteBid(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM bids WHERE id = $1 AND status = 'PENDING'`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrInvalidState
	}

	return nil
}

func (r *Repository) RejectBid(ctx context.Context, id uuid.UUID, now time.Time) error {
	const q = `UPDATE bids SET status = 'REJECTED', updated_at = $1 WHERE id = $2 AND status = 'PENDING'`

	result, err := r.db.Exec(ctx, q, now, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrInvalidState
	}

	return nil
}

// ActiveBids lists the actionable bids on a bill: stored PENDING and unexpired.
// The expires_at filter is mandatory because expiry is never swept into the
// stored status.
func (r *Repository) ActiveBids(ctx context.Context, billID uuid.UUID, now time.Time) ([]entity.Bid, error) {
	q := selectBid + ` WHERE bill_id = $1 AND status = 'PENDING' AND expires_at > $2
	ORDER BY financing_percentage DESC, created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q, billID, now)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var bids []entity.Bid

	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, err
		}

		bids = append(bids, bid)
	}

	return bids, nil
}

// HighestBid returns the best actionable bid on a bill: maximum financing
// percentage, ties broken by earliest creation, then by id.
func (r *Repository) HighestBid(ctx context.Context, billID uuid.UUID, now time.Time) (entity.Bid, error) {
	q := selectBid + ` WHERE bill_id = $1 AND status = 'PENDING' AND expires_at > $2
	ORDER BY financing_percentage DESC, created_at ASC, id ASC
	LIMIT 1`

	return scanBid(r.db.QueryRow(ctx, q, billID, now))
}

func (r *Repository) BidsByFinancer(ctx context.Context, financerID uuid.UUID) ([]entity.Bid, error) {
	q := selectBid + ` WHERE financer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, financerID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var bids []entity.Bid

	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, err
		}

		bids = append(bids, bid)
	}

	return bids, nil
}

// AcceptBid settles a bid acceptance as one transaction: finance the bill,
// accept the winning bid, reject every other pending bid on the bill, debit
// the financer and bump their counters. The first statement's guard
// (financer_id IS NULL AND status = 'SENT') is the concurrency control: a
// second acceptance racing on the same bill affects zero rows and fails with
// ErrAlreadyFinanced, leaving no partial state behind.
//
// Funds are debited without re-checking sufficiency. Placement is the only
// sufficiency check, so a financer whose funds were consumed elsewhere between
// placement and acceptance can go negative here.
func (r *Repository) AcceptBid(ctx context.Context, bid entity.Bid, now time.Time, entries []entity.StatEntry) error {
	const financeBill = `
	UPDATE bills
	SET financer_id = $1,
		current_owner_id = $1,
		status = 'FINANCED',
		financing_percentage = $2,
		financed_amount = $3,
		is_in_marketplace = FALSE,
		financed_at = $4,
		updated_at = $4
	WHERE id = $5 AND status = 'SENT' AND financer_id IS NULL
	`

	const acceptBid = `
	UPDATE bids SET status = 'ACCEPTED', accepted_at = $1, updated_at = $1
	WHERE id = $2 AND status = 'PENDING'
	`

	const rejectOthers = `
	UPDATE bids SET status = 'REJECTED', updated_at = $1
	WHERE bill_id = $2 AND id <> $3 AND status = 'PENDING'
	`

	const debitFunds = `
	UPDATE users SET available_funds = available_funds - $1, updated_at = $2 WHERE id = $3
	`

	return r.inTx(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, financeBill,
			bid.FinancerID, bid.FinancingPercentage, bid.BidAmount, now, bid.BillID)
		if err != nil {
			return fmt.Errorf("finance bill: %w", err)
		}

		if result.RowsAffected() == 0 {
			return entity.ErrAlreadyFinanced
		}

		result, err = tx.Exec(ctx, acceptBid, now, bid.ID)
		if err != nil {
			return fmt.Errorf("accept bid: %w", err)
		}

		if result.RowsAffected() == 0 {
			return entity.ErrInvalidState
		}

		_, err = tx.Exec(ctx, rejectOthers, now, bid.BillID, bid.ID)
		if err != nil {
			return fmt.Errorf("reject competing bids: %w", err)
		}

		result, err = tx.Exec(ctx, debitFunds, bid.BidAmount, now, bid.FinancerID)
		if err != nil {
			return fmt.Errorf("debit financer funds: %w", err)
		}

		if result.RowsAffected() == 0 {
			return entity.ErrNotFound
		}

		return applyStats(ctx, tx, entries)
	})
}

func scanBid(row pgx.Row) (b entity.Bid, err error) {
	err = row.Scan(
		&b.ID,
		&b.BillID,
		&b.FinancerID,
		&b.FinancingPercentage,
		&b.BidAmount,
		&b.Status,
		&b.Interest,
		(*zeronull.Text)(&b.Terms),
		&b.ExpiresAt,
		(*zeronull.Timestamptz)(&b.AcceptedAt),
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Bid{}, entity.ErrNotFound
		}

		return entity.Bid{}, err
	}

	return b, nil
}
