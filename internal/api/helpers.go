package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbridge/billmarket/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if originErr == nil {
		originErr = errors.New(msgToSend)
	}

	slog.ErrorContext(ctx, "api error", "error", originErr.Error())
	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: originErr.Error()})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps the service error taxonomy to HTTP. Every handler goes
// through here so a given sentinel always yields the same status code.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Authentication required")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed for this user")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrDuplicateBid):
		SendJSONErr(ctx, w, http.StatusConflict, err, "A bid on this bill already exists")
	case errors.Is(err, entity.ErrAlreadyFinanced):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Bill is already financed")
	case errors.Is(err, entity.ErrAlreadyPaid):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Bill is already paid")
	case errors.Is(err, entity.ErrInvalidState):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Operation is not allowed in the current state")
	case errors.Is(err, entity.ErrExpired):
		SendJSONErr(ctx, w, http.StatusGone, err, "Bid has expired")
	case errors.Is(err, entity.ErrInsufficientFunds):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Not enough available funds")
	case errors.Is(err, entity.ErrValidation):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Validation failed")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, fallbackMsg)
	}
}
