package models

// order status codes
const (
	StatusAccepted   = "accepted"
	StatusAssembling = "assembling"
	StatusCourier    = "courier"
	StatusDelivered  = "delivered"
	StatusCanceled   = "canceled"
)

// DefaultCurrency is used when an order event carries no currency.
const DefaultCurrency = "UZS"

// KnownStatus reports whether code belongs to the closed status set
// accepted at write time.
func KnownStatus(code string) bool {
	switch code {
	case StatusAccepted, StatusAssembling, StatusCourier, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

// OrderItem is a single order line
type OrderItem struct {
	Title string `json:"title"`
	Qty   int    `json:"qty"`
	Price int64  `json:"price"`
}

// Order is the persisted order entity. Customer stays a free-form map:
// the web form has renamed its fields more than once and old records
// must keep rendering.
type Order struct {
	OrderID         string         `json:"orderId"`
	CreatedAt       string         `json:"createdAt"`
	Status          string         `json:"status"`
	StatusUpdatedAt string         `json:"statusUpdatedAt,omitempty"`
	Customer        map[string]any `json:"customer,omitempty"`
	Items           []OrderItem    `json:"items,omitempty"`
	Total           int64          `json:"total"`
	Currency        string         `json:"currency,omitempty"`
	TGID            int64          `json:"tgId,omitempty"`
	TGUsername      string         `json:"tgUsername,omitempty"`
	TGName          string         `json:"tgName,omitempty"`
	DeliveryType    string         `json:"deliveryType,omitempty"`
	PaymentMethod   string         `json:"paymentMethod,omitempty"`
}

// OrderEvent is the inbound payload from the web form. Type discriminates
// order submissions from other form events. Raw holds the whole decoded
// payload so legacy top-level field spellings stay reachable for
// normalization.
type OrderEvent struct {
	Type      string         `json:"type"`
	OrderID   string         `json:"orderId"`
	CreatedAt string         `json:"createdAt"`
	Status    string         `json:"status"`
	Customer  map[string]any `json:"customer"`
	Items     []OrderItem    `json:"items"`
	Total     int64          `json:"total"`
	Currency  string         `json:"currency"`

	Raw map[string]any `json:"-"`
}
