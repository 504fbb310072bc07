package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"florabot/internal/middleware"
	"florabot/internal/models"
	"florabot/internal/render"
)

// IntakeService accepts raw form payloads.
type IntakeService interface {
	Intake(ctx context.Context, raw []byte, submitter models.Identity) (models.Order, error)
}

// EventHandler receives payloads from the ordering web form.
type EventHandler struct {
	svc    IntakeService
	logger *zap.Logger
}

// NewEventHandler creates new EventHandler instance.
func NewEventHandler(svc IntakeService, logger *zap.Logger) *EventHandler {
	return &EventHandler{svc: svc, logger: logger}
}

// SubmitEvent handles POST /api/events.
// 202 — order committed, body echoes the confirmation;
// 200 — well-formed payload of another kind, generic acknowledgment;
// 400 — unparsable payload;
// 401 — no verified submitter identity.
func (h *EventHandler) SubmitEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submitter, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		raw, err := io.ReadAll(r.Body)
		if err != nil || len(raw) == 0 {
			writeError(w, http.StatusBadRequest, "empty request body")
			return
		}
		defer r.Body.Close()

		order, err := h.svc.Intake(r.Context(), raw, submitter)
		switch {
		case errors.Is(err, models.ErrBadPayload):
			writeError(w, http.StatusBadRequest, "could not read the order, please try again")
		case errors.Is(err, models.ErrNotOrderEvent):
			writeJSON(w, http.StatusOK, messageResponse{Message: "data received"})
		case err != nil:
			h.logger.Error("intake failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")
		default:
			writeJSON(w, http.StatusAccepted, struct {
				OrderID string `json:"orderId"`
				Status  string `json:"status"`
				Message string `json:"message"`
			}{
				OrderID: order.OrderID,
				Status:  order.Status,
				Message: render.CustomerConfirmation(order),
			})
		}
	}
}
