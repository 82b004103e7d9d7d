package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/finbridge/billmarket/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/bills", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateBill)
			r.Get("/", h.Bills)
			r.Get("/{billID}", h.Bill)
			r.Patch("/{billID}", h.UpdateBill)
			r.Delete("/{billID}", h.DeleteBill)
			r.Post("/{billID}/send", h.SendBill)
			r.Post("/{billID}/pay", h.PayBill)
			r.Post("/{billID}/bids", h.PlaceBid)
			r.Get("/{billID}/bids", h.BillBids)
			r.Get("/{billID}/bids/highest", h.HighestBid)
		})

		r.Route("/bids", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.FinancerBids)
			r.Patch("/{bidID}", h.UpdateBid)
			r.Delete("/{bidID}", h.CancelBid)
			r.Post("/{bidID}/accept", h.AcceptBid)
			r.Post("/{bidID}/reject", h.RejectBid)
		})

		r.Route("/marketplace", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/bills", h.MarketplaceBills)
		})

		r.Route("/funds", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.AddFunds)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/{userID}/stats", h.UserStats)
		})

		r.Route("/internal", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Get("/users/{userID}/stats", h.InternalUserStats)
		})
	})

	return mux
}
