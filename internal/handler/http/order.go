package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"florabot/internal/middleware"
	"florabot/internal/models"
)

// OrderService is the order-listing and status-tracking contract used by
// the HTTP layer.
type OrderService interface {
	ListOwn(ctx context.Context, requester models.Identity, limit int) []models.Order
	ListRecent(ctx context.Context, requester models.Identity, limit int) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID, statusCode string, requester models.Identity) (models.Order, error)
}

// OrderHandler serves order queries and admin status commands.
type OrderHandler struct {
	svc    OrderService
	logger *zap.Logger
}

// NewOrderHandler creates new OrderHandler instance.
func NewOrderHandler(svc OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, logger: logger}
}

// ListOwn handles GET /api/orders — the submitter's own orders, newest
// first.
func (h *OrderHandler) ListOwn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		limit, ok := limitParam(w, r)
		if !ok {
			return
		}

		orders := h.svc.ListOwn(r.Context(), requester, limit)
		if orders == nil {
			orders = []models.Order{}
		}
		writeJSON(w, http.StatusOK, orders)
	}
}

// ListRecent handles GET /api/admin/orders. Non-admin requesters get an
// empty 204: admin surfaces reveal nothing, not even their existence.
func (h *OrderHandler) ListRecent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		limit, ok := limitParam(w, r)
		if !ok {
			return
		}

		orders, err := h.svc.ListRecent(r.Context(), requester, limit)
		if err != nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		writeJSON(w, http.StatusOK, orders)
	}
}

// SetStatus handles POST /api/admin/orders/{orderID}/status.
// 200 — updated record;
// 204 — silently ignored non-admin requester;
// 400 — malformed body or unknown status code, with a usage message;
// 404 — no such order.
func (h *OrderHandler) SetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID := chi.URLParam(r, "orderID")

		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
			writeError(w, http.StatusBadRequest, statusUsage)
			return
		}

		updated, err := h.svc.UpdateStatus(r.Context(), orderID, req.Status, requester)
		switch {
		case errors.Is(err, models.ErrNotAllowed):
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, models.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, statusUsage)
		case errors.Is(err, models.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "no such order: "+orderID)
		case err != nil:
			h.logger.Error("set status failed",
				zap.String("orderId", orderID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")
		default:
			writeJSON(w, http.StatusOK, updated)
		}
	}
}

const statusUsage = `expected body {"status": "accepted|assembling|courier|delivered|canceled"}`

// Healthz is the liveness probe.
func Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
	}
}

// limitParam parses the optional limit query parameter; on junk it writes a
// 400 and reports false.
func limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		writeError(w, http.StatusBadRequest, "limit must be a non-negative number")
		return 0, false
	}
	return limit, true
}
