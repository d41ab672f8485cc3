package sitevisits

import (
	"time"

	"venuely/internal/shared/types"

	"github.com/google/uuid"
)

type SiteVisit struct {
	ID            uuid.UUID        `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name          string           `json:"name" gorm:"not null"`
	Organization  *string          `json:"organization"`
	Phone         string           `json:"phone" gorm:"not null"` // digits only
	RentalDate    time.Time        `json:"rental_date" gorm:"type:date;not null;index"`
	StartTime     string           `json:"start_time" gorm:"not null"` // HH:MM
	EndTime       string           `json:"end_time" gorm:"not null"`   // HH:MM
	Purposes      types.StringList `json:"purposes" gorm:"type:jsonb;not null;default:'[]'"`
	PurposeDetail string           `json:"purpose_detail" gorm:"not null"`
	HasRental     string           `json:"has_rental" gorm:"not null"` // yes | no
	Status        Status           `json:"status" gorm:"not null;default:'pending';index"`
	SubmittedAt   time.Time        `json:"submitted_at" gorm:"autoCreateTime;index"`
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
