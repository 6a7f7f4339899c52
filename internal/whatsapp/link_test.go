package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"arogya-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink_EncodesMessage(t *testing.T) {
	link := Link("919876543210", "Hello there & welcome")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "+", "spaces must be percent-encoded, not plus-encoded")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hello there & welcome", parsed.Query().Get("text"))
}

func TestOrderNotification_Message(t *testing.T) {
	n := OrderNotification{
		OrderNumber: "ORD-1700000000000",
		Customer:    "Asha",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		Address:     model.Address{City: "Pune", Pincode: "411001", StreetAddress: "12 MG Road"},
		Items: []model.CartItem{
			{Name: "Arnica 30C", Quantity: 2, Price: 150},
			{Name: "Belladonna 200", Quantity: 1, Price: 350},
		},
		Total:   650,
		Payment: "Cash on Delivery",
		Notes:   "Ring the bell twice",
	}

	msg := n.Message()
	assert.Contains(t, msg, "Order #: ORD-1700000000000")
	assert.Contains(t, msg, "Customer: Asha")
	assert.Contains(t, msg, "12 MG Road, Pune - 411001")
	assert.Contains(t, msg, "Arnica 30C x2 - ₹300")
	assert.Contains(t, msg, "Belladonna 200 x1 - ₹350")
	assert.Contains(t, msg, "Total: ₹650")
	assert.Contains(t, msg, "Notes: Ring the bell twice")
}

func TestOrderNotification_OptionalFieldsOmitted(t *testing.T) {
	n := OrderNotification{OrderNumber: "ORD-1", Customer: "Ravi", Phone: "9123456789", Payment: "Cash on Delivery"}

	msg := n.Message()
	assert.NotContains(t, msg, "Email:")
	assert.NotContains(t, msg, "Notes:")
}

func TestOrderNotification_Link(t *testing.T) {
	n := OrderNotification{OrderNumber: "ORD-1", Customer: "Ravi", Phone: "9123456789", Payment: "Cash on Delivery"}

	link := n.Link("919876543210")
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, parsed.Query().Get("text"), "Order #: ORD-1")
}
