package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryType(t *testing.T) {
	tests := []struct {
		name     string
		customer map[string]any
		top      map[string]any
		want     string
	}{
		{
			name: "explicit_field_in_customer",
			customer: map[string]any{
				"deliveryType": "delivery",
			},
			want: DeliveryCourier,
		},
		{
			name: "legacy_spelling_in_customer",
			customer: map[string]any{
				"delivery_type": "Courier",
			},
			want: DeliveryCourier,
		},
		{
			name:     "explicit_field_at_top_level",
			customer: map[string]any{},
			top: map[string]any{
				"shipping": "pickup",
			},
			want: DeliveryPickup,
		},
		{
			name: "customer_wins_over_top_level",
			customer: map[string]any{
				"delivery": "Самовывоз (pickup)",
			},
			top: map[string]any{
				"deliveryType": "delivery",
			},
			want: DeliveryPickup,
		},
		{
			name: "explicit_field_wins_over_address_heuristic",
			customer: map[string]any{
				"deliveryType": "pickup",
				"address":      "Registan st. 15",
			},
			want: DeliveryPickup,
		},
		{
			name: "address_implies_delivery",
			customer: map[string]any{
				"address": "Registan st. 15",
			},
			want: DeliveryCourier,
		},
		{
			name:     "no_field_no_address_means_pickup",
			customer: map[string]any{"name": "Aziz"},
			want:     DeliveryPickup,
		},
		{
			name: "nil_maps_mean_pickup",
			want: DeliveryPickup,
		},
		{
			name: "blank_address_means_pickup",
			customer: map[string]any{
				"address": "   ",
			},
			want: DeliveryPickup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeliveryType(tt.customer, tt.top))
		})
	}
}

func TestPaymentMethod(t *testing.T) {
	tests := []struct {
		name     string
		customer map[string]any
		top      map[string]any
		want     string
	}{
		{name: "absent_defaults_to_cash", want: PayCash},
		{
			name:     "unrecognized_defaults_to_cash",
			customer: map[string]any{"paymentMethod": "crypto"},
			want:     PayCash,
		},
		{
			name:     "click",
			customer: map[string]any{"payment_method": "ClickPay"},
			want:     PayClick,
		},
		{
			name:     "card_case_insensitive",
			customer: map[string]any{"payment": "CARD"},
			want:     PayCard,
		},
		{
			name: "top_level_legacy_field",
			top:  map[string]any{"pay": "terminal"},
			want: PayCard,
		},
		{
			name:     "explicit_cash",
			customer: map[string]any{"paymentMethod": "cash"},
			want:     PayCash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaymentMethod(tt.customer, tt.top))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "empty_means_accepted", code: "", want: "Accepted ✅"},
		{name: "accepted", code: "accepted", want: "Accepted ✅"},
		{name: "courier", code: "courier", want: "Out for delivery 🚚"},
		{name: "mixed_case_code", code: "Delivered", want: "Delivered 🎉"},
		{name: "unknown_code_title_cased", code: "frozen", want: "Frozen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusLabel(tt.code))
		})
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "small", in: int64(950), want: "950"},
		{name: "thousands", in: int64(350000), want: "350 000"},
		{name: "millions", in: int64(1234567), want: "1 234 567"},
		{name: "zero", in: int64(0), want: "0"},
		{name: "negative", in: int64(-42000), want: "-42 000"},
		{name: "json_number", in: float64(125000), want: "125 000"},
		{name: "numeric_string", in: "99000", want: "99 000"},
		{name: "junk_string", in: "abc", want: "0"},
		{name: "nil", in: nil, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.in))
		})
	}
}
