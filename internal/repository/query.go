package repository

const (
	selectBill = `SELECT
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
	FROM bills`

	selectBid = `SELECT
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
	FROM bids`

	selectUser = `SELECT
		id,
		name,
		email,
		role,
		available_funds,
		created_at,
		updated_at
	FROM users`
)

// billColumns mirrors selectBill for squirrel-built listings.
var billColumns = []string{
	"id",
	"number",
	"title",
	"description",
	"amount",
	"due_date",
	"status",
	"is_active",
	"is_in_marketplace",
	"financing_percentage",
	"financed_amount",
	"organization_id",
	"customer_id",
	"current_owner_id",
	"financer_id",
	"sent_at",
	"paid_at",
	"financed_at",
	"created_at",
	"updated_at",
}
