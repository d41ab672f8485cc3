package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Period selects the statistics window.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// NormalizePeriod maps unknown selectors to the monthly default.
func NormalizePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodWeekly, PeriodYearly:
		return Period(raw)
	default:
		return PeriodMonthly
	}
}

// Projected rows fetched for aggregation. Only the columns the reductions
// read are selected.

type ReservationStatRow struct {
	Status      string    `json:"status"`
	VenueType   string    `json:"venue_type"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type SiteVisitStatRow struct {
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type SettlementStatRow struct {
	RefundStatus string    `json:"refund_status"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// PeriodCount is one labeled bucket of reservation submissions.
type PeriodCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type VenueTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type StatusCount struct {
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	Count       int    `json:"count"`
}

type StatusDistribution struct {
	Reservations []StatusCount `json:"reservations"`
	SiteVisits   []StatusCount `json:"siteVisits"`
	Settlements  []StatusCount `json:"settlements"`
}

// Summary totals. The change fields are static placeholders the admin
// dashboard renders as trend badges.
type Summary struct {
	TotalReservations  int `json:"totalReservations"`
	TotalSiteVisits    int `json:"totalSiteVisits"`
	TotalSettlements   int `json:"totalSettlements"`
	ConversionRate     int `json:"conversionRate"`
	ReservationsChange int `json:"reservationsChange"`
	SiteVisitsChange   int `json:"siteVisitsChange"`
	SettlementsChange  int `json:"settlementsChange"`
	ConversionChange   int `json:"conversionChange"`
}

type Statistics struct {
	Summary               Summary            `json:"summary"`
	ReservationsByPeriod  []PeriodCount      `json:"reservationsByPeriod"`
	VenueTypeDistribution []VenueTypeCount   `json:"venueTypeDistribution"`
	StatusDistribution    StatusDistribution `json:"statusDistribution"`
}

// KindStats is one dashboard card: lifetime total, pending backlog and
// 30-day submission count.
type KindStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Recent  int `json:"recent"`
}

type DashboardStats struct {
	Reservations KindStats `json:"reservations"`
	SiteVisits   KindStats `json:"siteVisits"`
	Settlements  KindStats `json:"settlements"`
}

// ScheduleEntry is one confirmed reservation on the monthly calendar.
type ScheduleEntry struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Organization *string   `json:"organization"`
	RentalDate   time.Time `json:"rental_date"`
	VenueType    string    `json:"venue_type"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
}
