// Package normalize derives canonical delivery, payment and status labels
// from the loosely structured data the ordering form submits. Every function
// is pure and never fails: unknown input degrades to a default.
package normalize

import (
	"strconv"
	"strings"
)

// Canonical delivery and payment labels.
const (
	DeliveryCourier = "Delivery"
	DeliveryPickup  = "Pickup"

	PayCash  = "Cash"
	PayClick = "ClickPay"
	PayCard  = "Card"
)

// probe is one step of an alias chain: a source map and the key spellings
// to try in it. Probes run in declaration order and the first non-empty
// value wins.
type probe struct {
	source map[string]any
	keys   []string
}

// deliveryAliases and paymentAliases list the field spellings the form has
// used across its revisions, newest first.
var (
	deliveryAliases = []string{"deliveryType", "delivery_type", "delivery", "shipping"}
	paymentAliases  = []string{"paymentMethod", "payment_method", "payment", "pay"}
	addressAliases  = []string{"address", "addr", "deliveryAddress"}
)

// DeliveryType resolves the delivery classification of an order. It probes
// the customer block first, then the top level of the payload; when no
// explicit field is present it falls back to DeliveryFromAddress.
func DeliveryType(customer, top map[string]any) string {
	chain := []probe{
		{customer, deliveryAliases},
		{top, deliveryAliases},
	}
	if v, ok := firstValue(chain); ok {
		return matchDelivery(v)
	}
	return DeliveryFromAddress(customer)
}

// DeliveryFromAddress is the explicit fallback heuristic: a populated
// address field means the customer expects delivery.
func DeliveryFromAddress(customer map[string]any) string {
	if v, ok := firstValue([]probe{{customer, addressAliases}}); ok && v != "" {
		return DeliveryCourier
	}
	return DeliveryPickup
}

// PaymentMethod resolves the payment classification of an order. Unmatched
// and absent values mean cash.
func PaymentMethod(customer, top map[string]any) string {
	chain := []probe{
		{customer, paymentAliases},
		{top, paymentAliases},
	}
	if v, ok := firstValue(chain); ok {
		return matchPayment(v)
	}
	return PayCash
}

func matchDelivery(v string) string {
	switch s := strings.ToLower(strings.TrimSpace(v)); {
	case strings.Contains(s, "pickup"), strings.Contains(s, "self"), strings.Contains(s, "takeaway"):
		return DeliveryPickup
	case strings.Contains(s, "delivery"), strings.Contains(s, "courier"), strings.Contains(s, "ship"):
		return DeliveryCourier
	default:
		return DeliveryPickup
	}
}

func matchPayment(v string) string {
	switch s := strings.ToLower(strings.TrimSpace(v)); {
	case strings.Contains(s, "click"):
		return PayClick
	case strings.Contains(s, "card"), strings.Contains(s, "terminal"):
		return PayCard
	default:
		return PayCash
	}
}

// firstValue walks the chain and returns the first non-empty string value.
func firstValue(chain []probe) (string, bool) {
	for _, p := range chain {
		if p.source == nil {
			continue
		}
		for _, key := range p.keys {
			v, ok := p.source[key]
			if !ok {
				continue
			}
			if s := strings.TrimSpace(toString(v)); s != "" {
				return s, true
			}
		}
	}
	return "", false
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
