// Package render builds the HTML-formatted notification texts sent through
// the messaging transport.
package render

import (
	"fmt"
	"strings"

	"florabot/internal/models"
	"florabot/internal/normalize"
)

// customerField returns a display value from the free-form customer block.
func customerField(o models.Order, key string) string {
	if v, ok := o.Customer[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return "—"
}

func currency(o models.Order) string {
	if o.Currency != "" {
		return o.Currency
	}
	return models.DefaultCurrency
}

// deliveryType prefers the canonical value stamped at intake and falls back
// to normalizing the raw customer block for records written by older bot
// revisions.
func deliveryType(o models.Order) string {
	if o.DeliveryType != "" {
		return o.DeliveryType
	}
	return normalize.DeliveryType(o.Customer, nil)
}

func paymentMethod(o models.Order) string {
	if o.PaymentMethod != "" {
		return o.PaymentMethod
	}
	return normalize.PaymentMethod(o.Customer, nil)
}

// CustomerConfirmation is the message sent to the submitter right after an
// order is committed.
func CustomerConfirmation(o models.Order) string {
	var b strings.Builder

	b.WriteString("✅ <b>Order accepted!</b>\n")
	fmt.Fprintf(&b, "🧾 Number: <code>%s</code>\n", o.OrderID)
	fmt.Fprintf(&b, "📦 Status: %s\n", normalize.StatusLabel(o.Status))
	fmt.Fprintf(&b, "💰 Total: <b>%s</b> %s\n", normalize.Money(o.Total), currency(o))
	fmt.Fprintf(&b, "💳 Payment: %s\n", paymentMethod(o))
	b.WriteString("We will contact you to confirm the order.")

	return b.String()
}

// AdminNotification is the full order card sent to the shop administrator.
func AdminNotification(o models.Order) string {
	var b strings.Builder

	b.WriteString("🌸 <b>New FLORA order</b>\n")
	fmt.Fprintf(&b, "🧾 <b>Order ID:</b> <code>%s</code>\n", o.OrderID)
	if o.CreatedAt != "" {
		fmt.Fprintf(&b, "⏱ <b>Time:</b> %s\n", o.CreatedAt)
	}
	fmt.Fprintf(&b, "📨 <b>From:</b> %s\n", submitter(o))

	b.WriteString("\n👤 <b>Customer:</b>\n")
	fmt.Fprintf(&b, "• Name: <b>%s</b>\n", customerField(o, "name"))
	fmt.Fprintf(&b, "• Phone: <b>%s</b>\n", customerField(o, "phone"))
	fmt.Fprintf(&b, "• %s", deliveryLine(o))
	if c, ok := o.Customer["comment"].(string); ok && c != "" {
		fmt.Fprintf(&b, "• Comment: %s\n", c)
	}
	fmt.Fprintf(&b, "• Payment: %s\n", paymentMethod(o))

	b.WriteString("\n💐 <b>Items:</b>\n")
	if len(o.Items) == 0 {
		b.WriteString("• (empty)\n")
	}
	for _, it := range o.Items {
		fmt.Fprintf(&b, "• %s × %d — <b>%s</b> %s\n",
			it.Title, it.Qty, normalize.Money(it.Price), currency(o))
	}

	fmt.Fprintf(&b, "\n💰 <b>Total:</b> <b>%s</b> %s", normalize.Money(o.Total), currency(o))

	return b.String()
}

// StatusUpdate is the notice sent to the original submitter when the
// administrator changes the order status.
func StatusUpdate(o models.Order) string {
	var b strings.Builder

	b.WriteString("📦 <b>Order status updated</b>\n")
	fmt.Fprintf(&b, "🧾 Number: <code>%s</code>\n", o.OrderID)
	fmt.Fprintf(&b, "Status: <b>%s</b>", normalize.StatusLabel(o.Status))
	if o.StatusUpdatedAt != "" {
		fmt.Fprintf(&b, "\n⏱ %s", o.StatusUpdatedAt)
	}

	return b.String()
}

// OrderDigest is the compact listing used by the admin "recent orders"
// command, one line per order.
func OrderDigest(orders []models.Order) string {
	if len(orders) == 0 {
		return "No orders yet."
	}

	var b strings.Builder
	b.WriteString("📋 <b>Recent orders</b>\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "• <code>%s</code> — %s — %s %s — %s\n",
			o.OrderID, normalize.StatusLabel(o.Status),
			normalize.Money(o.Total), currency(o), customerField(o, "name"))
	}

	return strings.TrimRight(b.String(), "\n")
}

func deliveryLine(o models.Order) string {
	dt := deliveryType(o)
	if dt == normalize.DeliveryPickup {
		return "Pickup from the shop\n"
	}

	line := fmt.Sprintf("Delivery: %s", customerField(o, "address"))
	date, _ := o.Customer["date"].(string)
	tm, _ := o.Customer["time"].(string)
	if date != "" || tm != "" {
		line += fmt.Sprintf(", %s", strings.TrimSpace(date+" "+tm))
	}
	return line + "\n"
}

func submitter(o models.Order) string {
	name := o.TGName
	if name == "" {
		name = "—"
	}
	if o.TGUsername != "" {
		return fmt.Sprintf("%s (@%s, id %d)", name, o.TGUsername, o.TGID)
	}
	return fmt.Sprintf("%s (id %d)", name, o.TGID)
}
