package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/finbridge/billmarket/internal/entity"
)

func (r *Repository) CreateBill(ctx context.Context, bill entity.Bill, entries []entity.StatEntry) error {
	const q = `
	INSERT INTO bills (
		id,
		number,
		title,
		description,
		amount,
		due_date,
		status,
		is_active,
		is_in_marketplace,
		financing_percentage,
		financed_amount,
		organization_id,
		customer_id,
		current_owner_id,
		financer_id,
		sent_at,
		paid_at,
		financed_at,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			q,
			bill.ID,
			bill.Number,
			bill.Title,
			bill.Description,
			bill.Amount,
			bill.DueDate,
			bill.Status,
			bill.IsActive,
			bill.IsInMarketplace,
			bill.FinancingPercentage,
			bill.FinancedAmount,
			bill.OrganizationID,
			bill.CustomerID,
			bill.CurrentOwnerID,
			zeronull.UUID(bill.FinancerID),
			zeronull.Timestamptz(bill.SentAt),
			zeronull.Timestamptz(bill.PaidAt),
			zeronull.Timestamptz(bill.FinancedAt),
			bill.CreatedAt,
			bill.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert bill: %w", err)
		}

		return applyStats(ctx, tx, entries)
	})
}

func (r *Repository) Bill(ctx context.Context, id uuid.UUID) (entity.Bill, error) {
	q := selectBill + " WHERE id = $1"
	return scanBill(r.db.QueryRow(ctx, q, id))
}

// UpdateBillDraft overwrites the draft-mutable fields. The status guard makes a
// concurrent send/delete lose gracefully instead of resurrecting the draft.
func (r *Repository) UpdateBillDraft(ctx context.Context, bill entity.Bill) error {
	const q = `
	UPDATE bills
	SET title = $1, description = $2, amount = $3, due_date = $4, customer_id = $5, updated_at = $6
	WHERE id = $7 AND status = 'DRAFT'
	`

	result, err := r.db.Exec(ctx, q,
		bill.Title, bill.Description, bill.Amount, bill.DueDate, bill.CustomerID, bill.UpdatedAt, bill.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrInvalidState
	}

	return nil
}

func (r *Repository) DeleteBillDraft(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM bills WHERE id = $1 AND status = 'DRAFT'`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrInvalidState
	}

	return nil
}

func (r *Repository) MarkBillSent(ctx context.Context, id uuid.UUID, sentAt time.Time, entries []entity.StatEntry) error {
	const q = `
	UPDATE bills
	SET status = 'SENT', is_in_marketplace = TRUE, sent_at = $1, updated_at = $1
	WHERE id = $2 AND status = 'DRAFT'
	`

	return r.inTx(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, q, sentAt, id)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return entity.ErrInvalidState
		}

		return applyStats(ctx, tx, entries)
	})
}

func (r *Repository) MarkBillPaid(ctx context.Context, id uuid.UUID, paidAt time.Time, entries []entity.StatEntry) error {
	const q = `
	UPDATE bills
	SET status = 'PAID', is_active = FALSE, is_in_marketplace = FALSE, paid_at = $1, updated_at = $1
	WHERE id = $2 AND status IN ('SENT', 'OVERDUE', 'FINANCED')
	`

	return r.inTx(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, q, paidAt, id)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return entity.ErrInvalidState
		}

		return applyStats(ctx, tx, entries)
	})
}

// MarkBillOverdue persists the lazily derived SENT -> OVERDUE transition. The
// guard keeps it idempotent; zero affected rows means another request got
// there first or the state moved on, both fine.
func (r *Repository) MarkBillOverdue(ctx context.Context, id uuid.UUID, now time.Time) error {
	const q = `
	UPDATE bills
	SET status = 'OVERDUE', is_in_marketplace = FALSE, updated_at = $1
	WHERE id = $2 AND status = 'SENT' AND due_date <= $1
	`

	_, err := r.db.Exec(ctx, q, now, id)
	if err != nil {
		return err
	}

	return nil
}

// MarketplaceBills lists bills eligible to receive bids as of now.
func (r *Repository) MarketplaceBills(
	ctx context.Context,
	now time.Time,
	f entity.BillFilter,
) ([]entity.Bill, int, error) {
	pred := sq.And{
		sq.Eq{"is_in_marketplace": true},
		sq.Eq{"status": entity.BillStatusSent},
		sq.Gt{"due_date": now},
		sq.Eq{"financer_id": nil},
	}

	return r.bills(ctx, pred, f)
}

func (r *Repository) BillsByOrganization(
	ctx context.Context,
	organizationID uuid.UUID,
	f entity.BillFilter,
) ([]entity.Bill, int, error) {
	return r.bills(ctx, sq.Eq{"organization_id": organizationID}, f)
}

func (r *Repository) BillsByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	f entity.BillFilter,
) ([]entity.Bill, int, error) {
	return r.bills(ctx, sq.Eq{"customer_id": customerID}, f)
}

func (r *Repository) bills(ctx context.Context, pred sq.Sqlizer, f entity.BillFilter) ([]entity.Bill, int, error) {
	cols := make([]string, 0, len(billColumns)+1)
	cols = append(cols, billColumns...)
	cols = append(cols, "COUNT(*) OVER() AS total_count")

	stmt := sq.Select(cols...).From("bills").Where(pred).PlaceholderFormat(sq.Dollar)

	stmt = applyBillFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bills := make([]entity.Bill, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var b entity.Bill

		var count int

		err = rows.Scan(
			&b.ID,
			&b.Number,
			&b.Title,
			&b.Description,
			&b.Amount,
			&b.DueDate,
			&b.Status,
			&b.IsActive,
			&b.IsInMarketplace,
			&b.FinancingPercentage,
			&b.FinancedAmount,
			&b.OrganizationID,
			&b.CustomerID,
			&b.CurrentOwnerID,
			(*zeronull.UUID)(&b.FinancerID),
			(*zeronull.Timestamptz)(&b.SentAt),
			(*zeronull.Timestamptz)(&b.PaidAt),
			(*zeronull.Timestamptz)(&b.FinancedAt),
			&b.CreatedAt,
			&b.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		bills = append(bills, b)
	}

	return bills, totalCount, nil
}

func applyBillFilter(stmt sq.SelectBuilder, f entity.BillFilter) sq.SelectBuilder {
	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.MinAmount != nil {
		stmt = stmt.Where(sq.GtOrEq{"amount": *f.MinAmount})
	}

	if f.MaxAmount != nil {
		stmt = stmt.Where(sq.LtOrEq{"amount": *f.MaxAmount})
	}

	return stmt
}

func scanBill(row pgx.Row) (b entity.Bill, err error) {
	err = row.Scan(
		&b.ID,
		&b.Number,
		&b.Title,
		&b.Description,
		&b.Amount,
		&b.DueDate,
		&b.Status,
		&b.IsActive,
		&b.IsInMarketplace,
		&b.FinancingPercentage,
		&b.FinancedAmount,
		&b.OrganizationID,
		&b.CustomerID,
		&b.CurrentOwnerID,
		(*zeronull.UUID)(&b.FinancerID),
		(*zeronull.Timestamptz)(&b.SentAt),
		(*zeronull.Timestamptz)(&b.PaidAt),
		(*zeronull.Timestamptz)(&b.FinancedAt),
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Bill{}, entity.ErrNotFound
		}

		return entity.Bill{}, err
	}

	return b, nil
}
