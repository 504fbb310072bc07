package models

import "errors"

var (
	ErrBadPayload    = errors.New("malformed order payload")
	ErrNotOrderEvent = errors.New("not an order event")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrNotAllowed    = errors.New("operation is not allowed")
	ErrInvalidToken  = errors.New("invalid auth token")
)
