// Package appointment implements the appointment-booking hand-off. There
// is no booking record anywhere: the form fields become a prefilled
// WhatsApp message and the conversation continues there.
package appointment

import (
	"fmt"
	"slices"
	"strings"

	"arogya-storefront/internal/model"
	"arogya-storefront/internal/whatsapp"
)

// Symptoms are the concerns a patient can pick from.
var Symptoms = []string{
	"Skin Issues",
	"Hair Fall",
	"Digestive Problems",
	"Stress & Anxiety",
	"Nervous System",
	"Heart Diseases",
	"Respiratory Issues",
	"Women's Health",
	"Pediatric Care",
	"Other",
}

// TimeSlots are the offered consultation windows.
var TimeSlots = []string{
	"Morning (9 AM - 12 PM)",
	"Afternoon (12 PM - 4 PM)",
	"Evening (4 PM - 8 PM)",
}

// Request is a filled appointment form.
type Request struct {
	Name     string
	Phone    string
	Symptom  string
	TimeSlot string
}

// Validate checks the form the way the booking modal does: every field
// required, symptom and slot restricted to the offered options.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Please enter your name")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return model.ErrInvalidPhone
	}
	if !slices.Contains(Symptoms, r.Symptom) {
		return model.NewDomainError(model.ErrCodeMissingField, "Please select your concern")
	}
	if !slices.Contains(TimeSlots, r.TimeSlot) {
		return model.NewDomainError(model.ErrCodeMissingField, "Please select a time slot")
	}
	return nil
}

// Message renders the clinic-facing appointment request.
func (r Request) Message() string {
	var b strings.Builder
	b.WriteString("🌿 New Appointment Request\n\n")
	fmt.Fprintf(&b, "👤 Name: %s\n", r.Name)
	fmt.Fprintf(&b, "📱 Phone: %s\n", r.Phone)
	fmt.Fprintf(&b, "🌿 Symptom: %s\n", r.Symptom)
	fmt.Fprintf(&b, "⏰ Preferred Time: %s", r.TimeSlot)
	return b.String()
}

// WhatsAppLink validates the request and returns the deep link to send it.
func (r Request) WhatsAppLink(number string) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	return whatsapp.Link(number, r.Message()), nil
}
