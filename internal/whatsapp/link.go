// Package whatsapp builds wa.me deep links. Appointment requests and
// order notifications are relayed through these links in a user-initiated
// hand-off; there is no programmatic WhatsApp integration.
package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"arogya-storefront/internal/model"
)

// Link returns a deep link that opens a chat with the given number,
// prefilled with message.
func Link(number, message string) string {
	// QueryEscape uses +, which wa.me renders literally. Percent-encode
	// spaces instead.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}

// OrderNotification carries everything the clinic needs to see about a
// freshly placed order.
type OrderNotification struct {
	OrderNumber string
	Customer    string
	Phone       string
	Email       string
	Address     model.Address
	Items       []model.CartItem
	Total       float64
	Payment     string
	Notes       string
}

// Message renders the clinic-facing order summary.
func (n OrderNotification) Message() string {
	var b strings.Builder

	b.WriteString("🎉 New Order Received!\n\n")
	fmt.Fprintf(&b, "📦 Order #: %s\n", n.OrderNumber)
	fmt.Fprintf(&b, "👤 Customer: %s\n", n.Customer)
	fmt.Fprintf(&b, "📱 Phone: %s\n", n.Phone)
	if n.Email != "" {
		fmt.Fprintf(&b, "📧 Email: %s\n", n.Email)
	}

	fmt.Fprintf(&b, "\n📍 Delivery Address:\n%s, %s - %s\n", n.Address.StreetAddress, n.Address.City, n.Address.Pincode)

	b.WriteString("\n🛒 Items:\n")
	for _, item := range n.Items {
		fmt.Fprintf(&b, "  • %s x%d - ₹%s\n", item.Name, item.Quantity, formatAmount(item.Price*float64(item.Quantity)))
	}

	fmt.Fprintf(&b, "\n💰 Total: ₹%s\n", formatAmount(n.Total))
	fmt.Fprintf(&b, "💳 Payment: %s\n", n.Payment)
	if n.Notes != "" {
		fmt.Fprintf(&b, "\n📝 Notes: %s\n", n.Notes)
	}

	return b.String()
}

// Link renders the full deep link for the notification.
func (n OrderNotification) Link(number string) string {
	return Link(number, n.Message())
}

// formatAmount prints rupee amounts without trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
