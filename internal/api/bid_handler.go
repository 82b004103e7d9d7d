package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/finbridge/billmarket/internal/entity"
	"github.com/finbridge/billmarket/internal/service"
)

type BidResponse struct {
	ID                  uuid.UUID  `json:"id"`
	BillID              uuid.UUID  `json:"billId"`
	FinancerID          uuid.UUID  `json:"financerId"`
	FinancingPercentage string     `json:"financingPercentage"`
	BidAmount           string     `json:"bidAmount"`
	Status              string     `json:"status"`
	Interest            string     `json:"interest"`
	Terms               string     `json:"terms,omitempty"`
	ExpiresAt           time.Time  `json:"expiresAt"`
	AcceptedAt          *time.Time `json:"acceptedAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

func bidToAPI(b entity.Bid) BidResponse {
	resp := BidResponse{
		ID:                  b.ID,
		BillID:              b.BillID,
		FinancerID:          b.FinancerID,
		FinancingPercentage: b.FinancingPercentage.String(),
		BidAmount:           b.BidAmount.String(),
		Status:              b.Status.String(),
		Interest:            b.Interest.String(),
		Terms:               b.Terms,
		ExpiresAt:           b.ExpiresAt,
		CreatedAt:           b.CreatedAt,
	}

	if !b.AcceptedAt.IsZero() {
		acceptedAt := b.AcceptedAt
		resp.AcceptedAt = &acceptedAt
	}

	return resp
}

func bidsToAPI(bids []entity.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, bidToAPI(b))
	}

	return out
}

type BidsResponse struct {
	Bids []BidResponse `json:"bids"`
}

type PlaceBidRequest struct {
	FinancingPercentage decimal.Decimal `json:"financingPercentage"`
	Interest            decimal.Decimal `json:"interest"`
	Terms               string          `json:"terms"`
}

// PlaceBid places a bid on a bill
// @Summary Place bid
// @Description Offers to advance a percentage of the bill's value; the bid amount is derived server-side
// @Tags bids
// @Accept json
// @Produce json
// @Param billID path string true "Bill ID"
// @Param PlaceBidRequest body PlaceBidRequest true "Bid placement request"
// @Success 201 {object} BidResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 409 {object} ErrorResponse "Bill is not open for bids or a bid already exists"
// @Failure 422 {object} ErrorResponse "Validation failed or not enough funds"
// @Router /bills/{billID}/bids [post]
// @Security BearerAuth
func (h *Handler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	billID, ok := pathID(ctx, w, r, "billID")
	if !ok {
		return
	}

	var req PlaceBidRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	bid, err := h.s.PlaceBid(ctx, billID, service.PlaceBidParams{
		FinancingPercentage: req.FinancingPercentage,
		Interest:            req.Interest,
		Terms:               req.Terms,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to place bid")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, bidToAPI(bid))
}

type UpdateBidRequest struct {
	FinancingPercentage *decimal.Decimal `json:"financingPercentage"`
	Interest            *decimal.Decimal `json:"interest"`
	Terms               *string          `json:"terms"`
}

// UpdateBid amends a pending bid
// @Summary Update bid
// @Description Amends percentage, interest or terms of the caller's pending bid
// @Tags bids
// @Accept json
// @Produce json
// @Param bidID path string true "Bid ID"
// @Param UpdateBidRequest body UpdateBidRequest true "Fields to update"
// @Success 200 {object} BidResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bid not found"
// @Failure 409 {object} ErrorResponse "Bid is not pending"
// @Failure 410 {object} ErrorResponse "Bid has expired"
// @Failure 422 {object} ErrorResponse "Validation failed or not enough funds"
// @Router /bids/{bidID} [patch]
// @Security BearerAuth
func (h *Handler) UpdateBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bidID, ok := pathID(ctx, w, r, "bidID")
	if !ok {
		return
	}

	var req UpdateBidRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	bid, err := h.s.UpdateBid(ctx, bidID, service.UpdateBidParams{
		FinancingPercentage: req.FinancingPercentage,
		Interest:            req.Interest,
		Terms:               req.Terms,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update bid")
		return
	}

	SendJSON(ctx, w, http.StatusOK, bidToAPI(bid))
}

// CancelBid withdraws a pending bid
// @Summary Cancel bid
// @Description Removes the caller's pending bid; a new bid on the same bill becomes possible
// @Tags bids
// @Param bidID path string true "Bid ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bid not found"
// @Failure 409 {object} ErrorResponse "Bid is not pending"
// @Router /bids/{bidID} [delete]
// @Security BearerAuth
func (h *Handler) CancelBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bidID, ok := pathID(ctx, w, r, "bidID")
	if !ok {
		return
	}

	err := h.s.CancelBid(ctx, bidID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to cancel bid")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BillBids lists active bids on a bill
// @Summary List bill bids
// @Description Pending, unexpired bids ordered best-first
// @Tags bids
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} BidsResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Router /bills/{billID}/bids [get]
// @Security BearerAuth
func (h *Handler) BillBids(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	billID, ok := pathID(ctx, w, r, "billID")
	if !ok {
		return
	}

	bids, err := h.s.BillBids(ctx, billID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get bids")
		return
	}

	SendJSON(ctx, w, http.StatusOK, BidsResponse{Bids: bidsToAPI(bids)})
}

// HighestBid returns the best active bid on a bill
// @Summary Get highest bid
// @Description The pending, unexpired bid with the greatest financing percentage; earliest placed wins ties
// @Tags bids
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} BidResponse
// @Failure 404 {object} ErrorResponse "Bill not found or no active bids"
// @Router /bills/{billID}/bids/highest [get]
// @Security BearerAuth
func (h *Handler) HighestBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	billID, ok := pathID(ctx, w, r, "billID")
	if !ok {
		return
	}

	bid, err := h.s.HighestBid(ctx, billID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get highest bid")
		return
	}

	SendJSON(ctx, w, http.StatusOK, bidToAPI(bid))
}

// FinancerBids lists the caller's bids
// @Summary List own bids
// @Tags bids
// @Produce json
// @Success 200 {object} BidsResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Router /bids [get]
// @Security BearerAuth
func (h *Handler) FinancerBids(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bids, err := h.s.FinancerBids(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get bids")
		return
	}

	SendJSON(ctx, w, http.StatusOK, BidsResponse{Bids: bidsToAPI(bids)})
}

// AcceptBid accepts a bid
// @Summary Accept bid
// @Description Finances the bill with the chosen bid: the winner is accepted, competitors rejected, funds debited, all atomically
// @Tags marketplace
// @Produce json
// @Param bidID path string true "Bid ID"
// @Success 200 {object} BillResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bid not found"
// @Failure 409 {object} ErrorResponse "Bill is already financed or bid is not pending"
// @Failure 410 {object} ErrorResponse "Bid has expired"
// @Router /bids/{bidID}/accept [post]
// @Security BearerAuth
func (h *Handler) AcceptBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bidID, ok := pathID(ctx, w, r, "bidID")
	if !ok {
		return
	}

	bill, err := h.s.AcceptBid(ctx, bidID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to accept bid")
		return
	}

	SendJSON(ctx, w, http.StatusOK, billToAPI(bill))
}

// RejectBid rejects a bid
// @Summary Reject bid
// @Description Explicitly refuses a pending bid; the bill stays open for other bids
// @Tags marketplace
// @Param bidID path string true "Bid ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bid not found"
// @Failure 409 {object} ErrorResponse "Bid is not pending"
// @Router /bids/{bidID}/reject [post]
// @Security BearerAuth
func (h *Handler) RejectBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bidID, ok := pathID(ctx, w, r, "bidID")
	if !ok {
		return
	}

	err := h.s.RejectBid(ctx, bidID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to reject bid")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type AddFundsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type FundsResponse struct {
	UserID         uuid.UUID `json:"userId"`
	AvailableFunds string    `json:"availableFunds"`
}

// AddFunds tops up the caller's available funds
// @Summary Add funds
// @Tags funds
// @Accept json
// @Produce json
// @Param AddFundsRequest body AddFundsRequest true "Top-up request"
// @Success 200 {object} FundsResponse
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 422 {object} ErrorResponse "Amount must be positive"
// @Router /funds [post]
// @Security BearerAuth
func (h *Handler) AddFunds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddFundsRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	user, err := h.s.AddFunds(ctx, req.Amount)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to add funds")
		return
	}

	SendJSON(ctx, w, http.StatusOK, FundsResponse{
		UserID:         user.ID,
		AvailableFunds: user.AvailableFunds.String(),
	})
}

type StatsResponse struct {
	UserID uuid.UUID         `json:"userId"`
	Stats  map[string]string `json:"stats"`
}

func statsToAPI(userID uuid.UUID, stats map[entity.Stat]decimal.Decimal) StatsResponse {
	out := make(map[string]string, len(stats))
	for stat, value := range stats {
		out[stat.String()] = value.String()
	}

	return StatsResponse{UserID: userID, Stats: out}
}

// UserStats returns the caller's own counters
// @Summary Get user stats
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} StatsResponse
// @Failure 403 {object} ErrorResponse "Stats belong to another user"
// @Router /users/{userID}/stats [get]
// @Security BearerAuth
func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := pathID(ctx, w, r, "userID")
	if !ok {
		return
	}

	stats, err := h.s.UserStats(ctx, userID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get stats")
		return
	}

	SendJSON(ctx, w, http.StatusOK, statsToAPI(userID, stats))
}

// InternalUserStats returns any user's counters for internal callers
// @Summary Get user stats (internal)
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} StatsResponse
// @Router /internal/users/{userID}/stats [get]
// @Security ApiKeyAuth
func (h *Handler) InternalUserStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := pathID(ctx, w, r, "userID")
	if !ok {
		return
	}

	stats, err := h.s.Stats(ctx, userID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get stats")
		return
	}

	SendJSON(ctx, w, http.StatusOK, statsToAPI(userID, stats))
}
