// Package service orchestrates order intake and status tracking.
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"florabot/config"
	"florabot/internal/models"
	"florabot/internal/normalize"
	"florabot/internal/render"
	"florabot/internal/repository"
	"florabot/internal/worker"
)

const (
	orderEventType = "order"

	defaultLimit = 10
	maxLimit     = 50
)

// OrderStore is the persistence contract the service relies on.
type OrderStore interface {
	Append(ctx context.Context, order models.Order)
	UpdateStatus(ctx context.Context, orderID, status string) (models.Order, error)
	ListByOwner(ctx context.Context, tgID int64, limit int) []models.Order
	ListRecent(ctx context.Context, limit int) []models.Order
}

// IDGenerator issues order identifiers.
type IDGenerator interface {
	Next() string
}

// Queue accepts outbound notifications for asynchronous delivery.
type Queue interface {
	Enqueue(msg worker.Message)
}

// OrderService implements intake, status updates and order listings.
type OrderService struct {
	store       OrderStore
	ids         IDGenerator
	queue       Queue
	adminID     int64
	adminChatID int64
	loc         *time.Location
	now         func() time.Time
	logger      *zap.Logger
}

// NewOrderService creates new OrderService instance.
func NewOrderService(store OrderStore, ids IDGenerator, queue Queue, cfg *config.Config, logger *zap.Logger) *OrderService {
	return &OrderService{
		store:       store,
		ids:         ids,
		queue:       queue,
		adminID:     cfg.AdminID,
		adminChatID: cfg.AdminChatID,
		loc:         cfg.Location(),
		now:         time.Now,
		logger:      logger,
	}
}

// Intake parses a raw form payload and, for order events, commits the order
// and queues the customer confirmation and the administrator notification.
// Returns models.ErrBadPayload for unparsable input and
// models.ErrNotOrderEvent for well-formed payloads of another kind; neither
// touches the store.
func (s *OrderService) Intake(ctx context.Context, raw []byte, submitter models.Identity) (models.Order, error) {
	var event models.OrderEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return models.Order{}, models.ErrBadPayload
	}
	// keep legacy top-level field spellings reachable for normalization
	_ = json.Unmarshal(raw, &event.Raw)

	if event.Type != orderEventType {
		return models.Order{}, models.ErrNotOrderEvent
	}

	order := s.buildOrder(event, submitter)
	s.store.Append(ctx, order)

	s.logger.Info("order accepted",
		zap.String("orderId", order.OrderID),
		zap.Int64("tgId", order.TGID),
		zap.Int64("total", order.Total))

	s.queue.Enqueue(worker.Message{
		ChatID: submitter.TGID,
		Text:   render.CustomerConfirmation(order),
		Kind:   "customer",
	})
	if s.adminChatID != 0 {
		s.queue.Enqueue(worker.Message{
			ChatID: s.adminChatID,
			Text:   render.AdminNotification(order),
			Kind:   "admin",
		})
	} else {
		s.logger.Warn("admin chat is not configured, order notification skipped",
			zap.String("orderId", order.OrderID))
	}

	return order, nil
}

// buildOrder turns an event into a persisted record, filling defaults only
// where the event left a field empty so resubmissions keep their values.
func (s *OrderService) buildOrder(event models.OrderEvent, submitter models.Identity) models.Order {
	order := models.Order{
		OrderID:       event.OrderID,
		CreatedAt:     event.CreatedAt,
		Status:        strings.ToLower(strings.TrimSpace(event.Status)),
		Customer:      event.Customer,
		Items:         event.Items,
		Total:         event.Total,
		Currency:      event.Currency,
		DeliveryType:  normalize.DeliveryType(event.Customer, event.Raw),
		PaymentMethod: normalize.PaymentMethod(event.Customer, event.Raw),
		TGID:          submitter.TGID,
		TGUsername:    submitter.Username,
		TGName:        submitter.Name,
	}

	if order.OrderID == "" {
		order.OrderID = s.ids.Next()
	}
	if order.CreatedAt == "" {
		order.CreatedAt = s.now().In(s.loc).Format(repository.TimeLayout)
	}
	if order.Status == "" {
		order.Status = models.StatusAccepted
	}
	if order.Currency == "" {
		order.Currency = models.DefaultCurrency
	}

	return order
}

// UpdateStatus sets a new status on an existing order on behalf of the
// administrator and queues a notice for the original submitter. Non-admin
// requesters get models.ErrNotAllowed, which callers handle silently.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, statusCode string, requester models.Identity) (models.Order, error) {
	if requester.TGID == 0 || requester.TGID != s.adminID {
		s.logger.Warn("status update from non-admin ignored",
			zap.Int64("tgId", requester.TGID), zap.String("orderId", orderID))
		return models.Order{}, models.ErrNotAllowed
	}

	code := strings.ToLower(strings.TrimSpace(statusCode))
	if !models.KnownStatus(code) {
		return models.Order{}, models.ErrInvalidStatus
	}

	updated, err := s.store.UpdateStatus(ctx, orderID, code)
	if err != nil {
		return models.Order{}, err
	}

	s.logger.Info("order status updated",
		zap.String("orderId", orderID), zap.String("status", code))

	if updated.TGID != 0 {
		s.queue.Enqueue(worker.Message{
			ChatID: updated.TGID,
			Text:   render.StatusUpdate(updated),
			Kind:   "status",
		})
	}

	return updated, nil
}

// ListOwn returns the requester's orders, newest first.
func (s *OrderService) ListOwn(ctx context.Context, requester models.Identity, limit int) []models.Order {
	return s.store.ListByOwner(ctx, requester.TGID, clampLimit(limit))
}

// ListRecent returns the latest orders across all submitters. Admin only.
func (s *OrderService) ListRecent(ctx context.Context, requester models.Identity, limit int) ([]models.Order, error) {
	if requester.TGID == 0 || requester.TGID != s.adminID {
		return nil, models.ErrNotAllowed
	}
	return s.store.ListRecent(ctx, clampLimit(limit)), nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
