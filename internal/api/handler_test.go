package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finbridge/billmarket/internal/api"
	"github.com/finbridge/billmarket/internal/entity"
	"github.com/finbridge/billmarket/internal/mocks"
	"github.com/finbridge/billmarket/internal/service"
)

const (
	testToken  = "dev"
	testAPIKey = "internal-key"
)

type testAPI struct {
	srv       *httptest.Server
	service   *mocks.MockService
	auth      *mocks.MockAuthService
	registrar *mocks.MockActorRegistrar
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	a := &testAPI{
		service:   mocks.NewMockService(ctrl),
		auth:      mocks.NewMockAuthService(ctrl),
		registrar: mocks.NewMockActorRegistrar(ctrl),
	}

	mw := api.NewMiddleware(a.auth, a.registrar, true, testAPIKey)
	a.srv = httptest.NewServer(api.NewRouter(api.NewHandler(a.service), mw))
	t.Cleanup(a.srv.Close)

	return a
}

// loginAs wires the auth and registrar mocks so requests carrying testToken
// act as the given user.
func (a *testAPI) loginAs(role entity.Role) entity.User {
	user := entity.User{
		ID:    uuid.Must(uuid.NewV4()),
		Name:  "Test " + role.String(),
		Email: "test@example.com",
		Role:  role,
	}

	a.auth.EXPECT().User(gomock.Any(), testToken).Return(user, nil).AnyTimes()
	a.registrar.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return user
}

func (a *testAPI) do(t *testing.T, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, a.srv.URL+path, reader)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func (a *testAPI) doAuthed(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	return a.do(t, method, path, body, map[string]string{"Authorization": "Bearer " + testToken})
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func TestAPI_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_MissingToken(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/bills", nil, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_InvalidToken(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.auth.EXPECT().User(gomock.Any(), "bad").Return(entity.User{}, entity.ErrUnauthenticated)

	resp := a.do(t, http.MethodGet, "/api/bills", nil, map[string]string{"Authorization": "Bearer bad"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_CreateBill(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	org := a.loginAs(entity.RoleOrganization)

	customerID := uuid.Must(uuid.NewV4())
	dueDate := time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second)

	a.service.EXPECT().
		CreateBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, p service.CreateBillParams) (entity.Bill, error) {
			require.Equal(t, "Server hosting Q3", p.Title)
			require.Equal(t, customerID, p.CustomerID)
			require.True(t, p.Amount.Equal(decimal.RequireFromString("10000")))

			return entity.Bill{
				ID:             uuid.Must(uuid.NewV4()),
				Number:         "BILL-20260826-100001",
				Title:          p.Title,
				Amount:         p.Amount,
				DueDate:        p.DueDate,
				Status:         entity.BillStatusDraft,
				IsActive:       true,
				OrganizationID: org.ID,
				CustomerID:     p.CustomerID,
				CurrentOwnerID: org.ID,
				CreatedAt:      time.Now(),
			}, nil
		})

	resp := a.doAuthed(t, http.MethodPost, "/api/bills", map[string]any{
		"title":      "Server hosting Q3",
		"amount":     "10000",
		"dueDate":    dueDate,
		"customerId": customerID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	bill := decodeBody[api.BillResponse](t, resp)
	require.Equal(t, "DRAFT", bill.Status)
	require.Equal(t, "10000", bill.Amount)
	require.Equal(t, org.ID, bill.CurrentOwnerID)
	require.Nil(t, bill.FinancerID)
	require.Nil(t, bill.SentAt)
}

func TestAPI_CreateBill_InvalidJSON(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.loginAs(entity.RoleOrganization)

	resp := a.do(t, http.MethodPost, "/api/bills", nil, map[string]string{"Authorization": "Bearer " + testToken})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_Bills_RoleDispatch(t *testing.T) {
	t.Parallel()

	t.Run("organization lists issued bills", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.loginAs(entity.RoleOrganization)

		a.service.EXPECT().
			OrganizationBills(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f entity.BillFilter) ([]entity.Bill, int, error) {
				require.Equal(t, uint64(10), f.Limit)
				require.Equal(t, uint64(1), f.Page)
				require.Equal(t, entity.SortByCreatedAt, f.SortBy)
				require.Equal(t, entity.DESC, f.OrderBy)

				return []entity.Bill{}, 0, nil
			})

		resp := a.doAuthed(t, http.MethodGet, "/api/bills", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		bills := decodeBody[api.BillsResponse](t, resp)
		require.Empty(t, bills.Bills)
		require.Zero(t, bills.TotalCount)
	})

	t.Run("customer lists received bills", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.loginAs(entity.RoleCustomer)

		a.service.EXPECT().CustomerBills(gomock.Any(), gomock.Any()).Return([]entity.Bill{}, 0, nil)

		resp := a.doAuthed(t, http.MethodGet, "/api/bills", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("financer is redirected to the marketplace", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.loginAs(entity.RoleFinancer)

		resp := a.doAuthed(t, http.MethodGet, "/api/bills", nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestAPI_Bills_FilterParsing(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.loginAs(entity.RoleOrganization)

	a.service.EXPECT().
		OrganizationBills(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, f entity.BillFilter) ([]entity.Bill, int, error) {
			require.Equal(t, uint64(100), f.Limit) // capped
			require.Equal(t, uint64(3), f.Page)
			require.Equal(t, entity.SortByAmount, f.SortBy)
			require.Equal(t, entity.ASC, f.OrderBy)
			require.NotNil(t, f.Status)
			require.Equal(t, entity.BillStatusSent, *f.Status)
			require.NotNil(t, f.MinAmount)
			require.Equal(t, "500", *f.MinAmount)

			return []entity.Bill{}, 0, nil
		})

	resp := a.doAuthed(t, http.MethodGet, "/api/bills?limit=500&page=3&sortBy=amount&orderBy=asc&status=SENT&minAmount=500", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_AcceptBid(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.loginAs(entity.RoleOrganization)

	bidID := uuid.Must(uuid.NewV4())
	financerID := uuid.Must(uuid.NewV4())
	financedAt := time.Now()

	a.service.EXPECT().AcceptBid(gomock.Any(), bidID).Return(entity.Bill{
		ID:                  uuid.Must(uuid.NewV4()),
		Amount:              decimal.RequireFromString("10000"),
		Status:              entity.BillStatusFinanced,
		FinancingPercentage: decimal.RequireFromString("70"),
		FinancedAmount:      decimal.RequireFromString("7000"),
		FinancerID:          financerID,
		CurrentOwnerID:      financerID,
		FinancedAt:          financedAt,
	}, nil)

	resp := a.doAuthed(t, http.MethodPost, "/api/bids/"+bidID.String()+"/accept", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	bill := decodeBody[api.BillResponse](t, resp)
	require.Equal(t, "FINANCED", bill.Status)
	require.Equal(t, "7000", bill.FinancedAmount)
	require.NotNil(t, bill.FinancerID)
	require.Equal(t, financerID, *bill.FinancerID)
	require.Equal(t, financerID, bill.CurrentOwnerID)
	require.NotNil(t, bill.FinancedAt)
}

func TestAPI_AcceptBid_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not the issuer", err: entity.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "bid not found", err: fmt.Errorf("bid: %w", entity.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "already financed", err: entity.ErrAlreadyFinanced, wantStatus: http.StatusConflict},
		{name: "bid not pending", err: entity.ErrInvalidState, wantStatus: http.StatusConflict},
		{name: "bid expired", err: entity.ErrExpired, wantStatus: http.StatusGone},
		{name: "storage failure", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAPI(t)
			a.loginAs(entity.RoleOrganization)

			bidID := uuid.Must(uuid.NewV4())
			a.service.EXPECT().AcceptBid(gomock.Any(), bidID).Return(entity.Bill{}, tt.err)

			resp := a.doAuthed(t, http.MethodPost, "/api/bids/"+bidID.String()+"/accept", nil)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAPI_PlaceBid(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	financer := a.loginAs(entity.RoleFinancer)

	billID := uuid.Must(uuid.NewV4())

	a.service.EXPECT().
		PlaceBid(gomock.Any(), billID, gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, p service.PlaceBidParams) (entity.Bid, error) {
			require.True(t, p.FinancingPercentage.Equal(decimal.RequireFromString("40")))
			require.Equal(t, "Net 30", p.Terms)

			return entity.Bid{
				ID:                  uuid.Must(uuid.NewV4()),
				BillID:              billID,
				FinancerID:          financer.ID,
				FinancingPercentage: p.FinancingPercentage,
				BidAmount:           decimal.RequireFromString("4000"),
				Status:              entity.BidStatusPending,
				Interest:            p.Interest,
				Terms:               p.Terms,
				ExpiresAt:           time.Now().Add(entity.BidTTL),
				CreatedAt:           time.Now(),
			}, nil
		})

	resp := a.doAuthed(t, http.MethodPost, "/api/bills/"+billID.String()+"/bids", map[string]any{
		"financingPercentage": "40",
		"interest":            "2.5",
		"terms":               "Net 30",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	bid := decodeBody[api.BidResponse](t, resp)
	require.Equal(t, "PENDING", bid.Status)
	require.Equal(t, "4000", bid.BidAmount)
	require.Nil(t, bid.AcceptedAt)
}

func TestAPI_PlaceBid_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "duplicate bid", err: entity.ErrDuplicateBid, wantStatus: http.StatusConflict},
		{name: "insufficient funds", err: entity.ErrInsufficientFunds, wantStatus: http.StatusUnprocessableEntity},
		{name: "validation", err: fmt.Errorf("%w: financing percentage out of range", entity.ErrValidation), wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAPI(t)
			a.loginAs(entity.RoleFinancer)

			billID := uuid.Must(uuid.NewV4())
			a.service.EXPECT().PlaceBid(gomock.Any(), billID, gomock.Any()).Return(entity.Bid{}, tt.err)

			resp := a.doAuthed(t, http.MethodPost, "/api/bills/"+billID.String()+"/bids", map[string]any{
				"financingPercentage": "40",
			})
			require.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAPI_CancelBid(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.loginAs(entity.RoleFinancer)

	bidID := uuid.Must(uuid.NewV4())
	a.service.EXPECT().CancelBid(gomock.Any(), bidID).Return(nil)

	resp := a.doAuthed(t, http.MethodDelete, "/api/bids/"+bidID.String(), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestAPI_InvalidBillID(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.loginAs(entity.RoleOrganization)

	resp := a.doAuthed(t, http.MethodGet, "/api/bills/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_AddFunds(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	financer := a.loginAs(entity.RoleFinancer)

	a.service.EXPECT().
		AddFunds(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, amount decimal.Decimal) (entity.User, error) {
			require.True(t, amount.Equal(decimal.RequireFromString("1500.25")))

			financer.AvailableFunds = amount
			return financer, nil
		})

	resp := a.doAuthed(t, http.MethodPost, "/api/funds", map[string]any{"amount": "1500.25"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	funds := decodeBody[api.FundsResponse](t, resp)
	require.Equal(t, financer.ID, funds.UserID)
	require.Equal(t, "1500.25", funds.AvailableFunds)
}

func TestAPI_UserStats(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	financer := a.loginAs(entity.RoleFinancer)

	a.service.EXPECT().UserStats(gomock.Any(), financer.ID).Return(map[entity.Stat]decimal.Decimal{
		entity.StatBidsWon:        decimal.New(3, 0),
		entity.StatAmountInvested: decimal.RequireFromString("21000"),
	}, nil)

	resp := a.doAuthed(t, http.MethodGet, "/api/users/"+financer.ID.String()+"/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decodeBody[api.StatsResponse](t, resp)
	require.Equal(t, financer.ID, stats.UserID)
	require.Equal(t, "3", stats.Stats["bids_won"])
	require.Equal(t, "21000", stats.Stats["amount_invested"])
}

func TestAPI_InternalUserStats(t *testing.T) {
	t.Parallel()

	userID := uuid.Must(uuid.NewV4())
	path := "/api/internal/users/" + userID.String() + "/stats"

	t.Run("valid api key", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.service.EXPECT().Stats(gomock.Any(), userID).Return(map[entity.Stat]decimal.Decimal{
			entity.StatBillsPaid: decimal.New(5, 0),
		}, nil)

		resp := a.do(t, http.MethodGet, path, nil, map[string]string{"X-Api-Key": testAPIKey})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		stats := decodeBody[api.StatsResponse](t, resp)
		require.Equal(t, "5", stats.Stats["bills_paid"])
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		resp := a.do(t, http.MethodGet, path, nil, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong api key", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		resp := a.do(t, http.MethodGet, path, nil, map[string]string{"X-Api-Key": "nope"})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAPI_MarketplaceBills(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.loginAs(entity.RoleFinancer)

	sentAt := time.Now().Add(-time.Hour)
	bill := entity.Bill{
		ID:              uuid.Must(uuid.NewV4()),
		Number:          "BILL-20260826-100002",
		Title:           "Logistics June",
		Amount:          decimal.RequireFromString("2500.5"),
		DueDate:         time.Now().Add(14 * 24 * time.Hour),
		Status:          entity.BillStatusSent,
		IsActive:        true,
		IsInMarketplace: true,
		OrganizationID:  uuid.Must(uuid.NewV4()),
		CustomerID:      uuid.Must(uuid.NewV4()),
		SentAt:          sentAt,
	}
	bill.CurrentOwnerID = bill.OrganizationID

	a.service.EXPECT().MarketplaceBills(gomock.Any(), gomock.Any()).Return([]entity.Bill{bill}, 1, nil)

	resp := a.doAuthed(t, http.MethodGet, "/api/marketplace/bills", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	bills := decodeBody[api.BillsResponse](t, resp)
	require.Equal(t, 1, bills.TotalCount)
	require.Len(t, bills.Bills, 1)
	require.Equal(t, "SENT", bills.Bills[0].Status)
	require.Equal(t, "2500.5", bills.Bills[0].Amount)
	require.True(t, bills.Bills[0].IsInMarketplace)
	require.NotNil(t, bills.Bills[0].SentAt)
	require.Empty(t, bills.Bills[0].FinancedAmount)
}
