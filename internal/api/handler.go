package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finbridge/billmarket/internal/entity"
	"github.com/finbridge/billmarket/internal/service"
)

// @title Bill Marketplace API
// @version 1.0
// @description Invoice financing marketplace: organizations issue bills, financers bid to advance a share of their value
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	CreateBill(ctx context.Context, p service.CreateBillParams) (entity.Bill, error)
	UpdateBill(ctx context.Context, billID uuid.UUID, p service.UpdateBillParams) (entity.Bill, error)
	DeleteBill(ctx context.Context, billID uuid.UUID) error
	SendBill(ctx context.Context, billID uuid.UUID) (entity.Bill, error)
	PayBill(ctx context.Context, billID uuid.UUID) (entity.Bill, error)
	Bill(ctx context.Context, billID uuid.UUID) (entity.Bill, error)
	MarketplaceBills(ctx context.Context, f entity.BillFilter) ([]entity.Bill, int, error)
	OrganizationBills(ctx context.Context, f entity.BillFilter) ([]entity.Bill, int, error)
	CustomerBills(ctx context.Context, f entity.BillFilter) ([]entity.Bill, int, error)

	PlaceBid(ctx context.Context, billID uuid.UUID, p service.PlaceBidParams) (entity.Bid, error)
	UpdateBid(ctx context.Context, bidID uuid.UUID, p service.UpdateBidParams) (entity.Bid, error)
	CancelBid(ctx context.Context, bidID uuid.UUID) error
	BillBids(ctx context.Context, billID uuid.UUID) ([]entity.Bid, error)
	HighestBid(ctx context.Context, billID uuid.UUID) (entity.Bid, error)
	FinancerBids(ctx context.Context) ([]entity.Bid, error)
	AcceptBid(ctx context.Context, bidID uuid.UUID) (entity.Bill, error)
	RejectBid(ctx context.Context, bidID uuid.UUID) error

	AddFunds(ctx context.Context, amount decimal.Decimal) (entity.User, error)
	UserStats(ctx context.Context, userID uuid.UUID) (map[entity.Stat]decimal.Decimal, error)
	Stats(ctx context.Context, userID uuid.UUID) (map[entity.Stat]decimal.Decimal, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

type BillResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Number              string     `json:"number"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	Amount              string     `json:"amount"`
	DueDate             time.Time  `json:"dueDate"`
	Status              string     `json:"status"`
	IsActive            bool       `json:"isActive"`
	IsInMarketplace     bool       `json:"isInMarketplace"`
	FinancingPercentage string     `json:"financingPercentage,omitempty"`
	FinancedAmount      string     `json:"financedAmount,omitempty"`
	OrganizationID      uuid.UUID  `json:"organizationId"`
	CustomerID          uuid.UUID  `json:"customerId"`
	CurrentOwnerID      uuid.UUID  `json:"currentOwnerId"`
	FinancerID          *uuid.UUID `json:"financerId,omitempty"`
	SentAt              *time.Time `json:"sentAt,omitempty"`
	PaidAt              *time.Time `json:"paidAt,omitempty"`
	FinancedAt          *time.Time `json:"financedAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

func billToAPI(b entity.Bill) BillResponse {
	resp := BillResponse{
		ID:              b.ID,
		Number:          b.Number,
		Title:           b.Title,
		Description:     b.Description,
		Amount:          b.Amount.String(),
		DueDate:         b.DueDate,
		Status:          b.Status.String(),
		IsActive:        b.IsActive,
		IsInMarketplace: b.IsInMarketplace,
		OrganizationID:  b.OrganizationID,
		CustomerID:      b.CustomerID,
		CurrentOwnerID:  b.CurrentOwnerID,
		CreatedAt:       b.CreatedAt,
	}

	if !b.FinancerID.IsNil() {
		financerID := b.FinancerID
		resp.FinancerID = &financerID
		resp.FinancingPercentage = b.FinancingPercentage.String()
		resp.FinancedAmount = b.FinancedAmount.String()
	}

	if !b.SentAt.IsZero() {
		sentAt := b.SentAt
		resp.SentAt = &sentAt
	}

	if !b.PaidAt.IsZero() {
		paidAt := b.PaidAt
		resp.PaidAt = &paidAt
	}

	if !b.FinancedAt.IsZero() {
		financedAt := b.FinancedAt
		resp.FinancedAt = &financedAt
	}

	return resp
}

func billsToAPI(bills []entity.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, billToAPI(b))
	}

	return out
}

type BillsResponse struct {
	Bills      []BillResponse `json:"bills"`
	TotalCount int            `json:"totalCount"`
}

type CreateBillRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	CustomerID  uuid.UUID       `json:"customerId"`
}

// CreateBill creates a draft bill
// @Summary Create bill
// @Description Creates a draft bill addressed to a customer
// @Tags bills
// @Accept json
// @Produce json
// @Param CreateBillRequest body CreateBillRequest true "Bill creation request"
// @Success 201 {object} BillResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to create bill"
// @Router /bills [post]
// @Security BearerAuth
func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateBillRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	bill, err := h.s.CreateBill(ctx, service.CreateBillParams{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		CustomerID:  req.CustomerID,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create bill")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, billToAPI(bill))
}

// Bill returns one bill
// @Summary Get bill
// @Description Returns the bill with its current derived status, participants only
// @Tags bills
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} BillResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Router /bills/{billID} [get]
// @Security BearerAuth
func (h *Handler) Bill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	billID, ok := pathID(ctx, w, r, "billID")
	if !ok {
		return
	}

	bill, err := h.s.Bill(ctx, billID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get bill")
		return
	}

	SendJSON(ctx, w, http.StatusOK, billToAPI(bill))
}

type UpdateBillRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *time.Time       `json:"dueDate"`
	CustomerID  *uuid.UUID       `json:"customerId"`
}

// UpdateBill updates a draft bill
// @Summary Update bill
// @Description Updates draft fields; bills that left the draft state are immutable
// @Tags bills
// @Accept json
// @Produce json
// @Param billID path string true "Bill ID"
// @Param UpdateBillRequest body UpdateBillRequest true "Fields to update"
// @Success 200 {object} BillResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 409 {object} ErrorResponse "Bill is not a draft"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /bills/{billID} [patch]
// @Security BearerAuth
func (h *Handler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	billID, ok := pathID(ctx, w, r, "billID")
	if !ok {
		return
	}

	var req UpdateBillRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	bill, err := h.s.UpdateBill(ctx, billID, service.UpdateBillParams{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		CustomerID:  req.CustomerID,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update bill")
		return
	}

	SendJSON(ctx, w, http.StatusOK, billToAPI(bill))
}

// DeleteBill deletes a draft bill
// @Summary Delete bill
// @Description Deletes a draft; bills that left the draft state cannot be deleted
// @Tags bills
// @Param billID path string true "Bill ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 409 {object} ErrorResponse "Bill is not a draft"
// @Router /bills/{billID} [delete]
// @Security BearerAuth
func (h *Handler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	billID, ok := pathID(ctx, w, r, "billID")
	if !ok {
		return
	}

	err := h.s.DeleteBill(ctx, billID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete bill")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SendBill issues a draft bill
// @Summary Send bill
// @Description Sends the draft to its customer and lists it in the marketplace
// @Tags bills
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} BillResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 409 {object} ErrorResponse "Bill is not a draft"
// @Router /bills/{billID}/send [post]
// @Security BearerAuth
func (h *Handler) SendBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	billID, ok := pathID(ctx, w, r, "billID")
	if !ok {
		return
	}

	bill, err := h.s.SendBill(ctx, billID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to send bill")
		return
	}

	SendJSON(ctx, w, http.StatusOK, billToAPI(bill))
}

// PayBill settles a bill
// @Summary Pay bill
// @Description Marks the bill paid by its customer and distributes earnings
// @Tags bills
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} BillResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 409 {object} ErrorResponse "Bill cannot be paid in its current state"
// @Router /bills/{billID}/pay [post]
// @Security BearerAuth
func (h *Handler) PayBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	billID, ok := pathID(ctx, w, r, "billID")
	if !ok {
		return
	}

	bill, err := h.s.PayBill(ctx, billID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to pay bill")
		return
	}

	SendJSON(ctx, w, http.StatusOK, billToAPI(bill))
}

// Bills lists the actor's own bills
// @Summary List own bills
// @Description Organizations see bills they issued, customers see bills addressed to them
// @Tags bills
// @Produce json
// @Param status query string false "Filter by status"
// @Param minAmount query string false "Minimum amount"
// @Param maxAmount query string false "Maximum amount"
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size"
// @Param sortBy query string false "Sort column: amount, due_date, created_at"
// @Param orderBy query string false "Sort order: asc, desc"
// @Success 200 {object} BillsResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Router /bills [get]
// @Security BearerAuth
func (h *Handler) Bills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := entity.ActorFromCtx(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get bills")
		return
	}

	filter := parseBillFilter(r.URL.Query())

	var (
		bills      []entity.Bill
		totalCount int
	)

	switch actor.Role {
	case entity.RoleOrganization:
		bills, totalCount, err = h.s.OrganizationBills(ctx, filter)
	case entity.RoleCustomer:
		bills, totalCount, err = h.s.CustomerBills(ctx, filter)
	default:
		SendJSONErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, "Financers browse the marketplace listing")
		return
	}

	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get bills")
		return
	}

	SendJSON(ctx, w, http.StatusOK, BillsResponse{Bills: billsToAPI(bills), TotalCount: totalCount})
}

// MarketplaceBills lists bills open for bidding
// @Summary List marketplace bills
// @Description Bills currently eligible to receive bids
// @Tags marketplace
// @Produce json
// @Param minAmount query string false "Minimum amount"
// @Param maxAmount query string false "Maximum amount"
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size"
// @Param sortBy query string false "Sort column: amount, due_date, created_at"
// @Param orderBy query string false "Sort order: asc, desc"
// @Success 200 {object} BillsResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Router /marketplace/bills [get]
// @Security BearerAuth
func (h *Handler) MarketplaceBills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bills, totalCount, err := h.s.MarketplaceBills(ctx, parseBillFilter(r.URL.Query()))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get marketplace bills")
		return
	}

	SendJSON(ctx, w, http.StatusOK, BillsResponse{Bills: billsToAPI(bills), TotalCount: totalCount})
}

// HealthHandler reports liveness
// @Summary Health check
// @Tags health
// @Success 200
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service is unhealthy")
		return
	}
}

func pathID(ctx context.Context, w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, name+" is required")
		return uuid.UUID{}, false
	}

	id, err := uuid.FromString(raw)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid "+name)
		return uuid.UUID{}, false
	}

	return id, true
}

func parseBillFilter(url url.Values) entity.BillFilter {
	const (
		defaultLimit uint64 = 10
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	status := url.Get("status")
	minAmount := url.Get("minAmount")
	maxAmount := url.Get("maxAmount")
	qLimit := url.Get("limit")
	qPage := url.Get("page")
	sortBy := entity.BillSortCol(url.Get("sortBy"))
	orderBy := entity.OrderByCol(url.Get("orderBy"))

	limit, err := strconv.ParseUint(qLimit, 10, 64)
	if err != nil || limit == 0 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	page, err := strconv.ParseUint(qPage, 10, 64)
	if err != nil || page == 0 {
		page = defaultPage
	}

	if !sortBy.IsValid() {
		sortBy = entity.SortByCreatedAt
	}

	if !orderBy.IsValid() {
		orderBy = entity.DESC
	}

	filter := entity.BillFilter{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	if s := entity.BillStatus(status); s.Validate() == nil {
		filter.Status = &s
	}

	if minAmount != "" {
		filter.MinAmount = &minAmount
	}

	if maxAmount != "" {
		filter.MaxAmount = &maxAmount
	}

	return filter
}
