package reservations

import (
	"time"

	"venuely/internal/shared/types"

	"github.com/google/uuid"
)

type Reservation struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name         string    `json:"name" gorm:"not null"`
	Organization *string   `json:"organization"`
	Phone        string    `json:"phone" gorm:"not null"` // digits only
	RentalDate   time.Time `json:"rental_date" gorm:"type:date;not null;index"`
	StartTime    string    `json:"start_time" gorm:"not null"` // HH:MM
	EndTime      string    `json:"end_time" gorm:"not null"`   // HH:MM
	RentalHours  float64   `json:"rental_hours" gorm:"not null"`

	VenueType       VenueType        `json:"venue_type" gorm:"not null;default:'performance'"`
	NumPerformers   int              `json:"num_performers" gorm:"not null"`
	Description     *string          `json:"description"`
	ReferralSources types.StringList `json:"referral_sources" gorm:"type:jsonb;not null;default:'[]'"`

	OptExtraCapacity      bool `json:"opt_extra_capacity" gorm:"not null;default:false"`
	OptMultitrack         bool `json:"opt_multitrack" gorm:"not null;default:false"`
	OptPersonalMonitor    bool `json:"opt_personal_monitor" gorm:"not null;default:false"`
	OptExtraOperator      bool `json:"opt_extra_operator" gorm:"not null;default:false"`
	OptExtraOperatorHours int  `json:"opt_extra_operator_hours" gorm:"not null;default:0"`
	OptBarOperation       bool `json:"opt_bar_operation" gorm:"not null;default:false"`
	OptPrompter           bool `json:"opt_prompter" gorm:"not null;default:false"`
	OptTaxInvoice         bool `json:"opt_tax_invoice" gorm:"not null;default:false"`

	AdditionalPrice int    `json:"additional_price" gorm:"not null;default:0"`
	TotalPrice      int    `json:"total_price" gorm:"not null;default:0"`
	Status          Status `json:"status" gorm:"not null;default:'pending';index"`

	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime;index"`
}

type VenueType string

const (
	VenuePerformance VenueType = "performance"
	VenueEvent       VenueType = "event"
	VenueStudio      VenueType = "studio"
)

func (v VenueType) IsValid() bool {
	switch v {
	case VenuePerformance, VenueEvent, VenueStudio:
		return true
	}
	return false
}
