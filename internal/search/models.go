package search

import (
	"time"

	"github.com/google/uuid"
)

// Hit projections carry only the columns the admin search panel renders.

type ReservationHit struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Organization *string   `json:"organization"`
	Phone        string    `json:"phone"`
	RentalDate   time.Time `json:"rental_date"`
	VenueType    string    `json:"venue_type"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type SiteVisitHit struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Organization *string   `json:"organization"`
	Phone        string    `json:"phone"`
	RentalDate   time.Time `json:"rental_date"`
	HasRental    string    `json:"has_rental"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type SettlementHit struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	RentalDate    time.Time `json:"rental_date"`
	BankInfo      string    `json:"bank_info"`
	AccountNumber string    `json:"account_number"`
	RefundStatus  string    `json:"refund_status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// Results groups the per-kind hit lists returned by a single search.
type Results struct {
	Reservations []ReservationHit `json:"reservations"`
	SiteVisits   []SiteVisitHit   `json:"siteVisits"`
	Settlements  []SettlementHit  `json:"settlements"`
}

// EmptyResults is what short queries resolve to without touching storage.
func EmptyResults() *Results {
	return &Results{
		Reservations: []ReservationHit{},
		SiteVisits:   []SiteVisitHit{},
		Settlements:  []SettlementHit{},
	}
}
