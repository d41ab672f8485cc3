package reservations_test

import (
	"testing"

	"venuely/internal/reservations"
)

func TestStatusIsValid(t *testing.T) {
	valid := []reservations.Status{"pending", "confirmed", "cancelled", "completed"}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []reservations.Status{"", "PENDING", "archived", "done"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestVenueTypeIsValid(t *testing.T) {
	valid := []reservations.VenueType{"performance", "event", "studio"}
	for _, v := range valid {
		if !v.IsValid() {
			t.Errorf("%q should be valid", v)
		}
	}
	if reservations.VenueType("stadium").IsValid() {
		t.Error("stadium should be invalid")
	}
}
