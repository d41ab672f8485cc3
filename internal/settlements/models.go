package settlements

import (
	"time"

	"venuely/internal/shared/types"

	"github.com/google/uuid"
)

type Settlement struct {
	ID               uuid.UUID        `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name             string           `json:"name" gorm:"not null"`
	RentalDate       time.Time        `json:"rental_date" gorm:"type:date;not null;index"`
	BankName         string           `json:"bank_name" gorm:"not null"`
	AccountHolder    string           `json:"account_holder" gorm:"not null"`
	AccountNumber    string           `json:"account_number" gorm:"not null"`
	BankInfo         string           `json:"bank_info" gorm:"not null"` // "bank_name account_holder", search column
	Rating           int              `json:"rating" gorm:"not null"`
	GoodPoints       *string          `json:"good_points"`
	Improvements     *string          `json:"improvements"`
	MediaURLs        types.StringList `json:"media_urls" gorm:"type:jsonb;not null;default:'[]'"` // populated by file storage, out of band
	InstagramConsent bool             `json:"instagram_consent" gorm:"not null;default:false"`
	InstagramRequest *string          `json:"instagram_request"`
	RefundStatus     RefundStatus     `json:"refund_status" gorm:"not null;default:'pending';index"`
	SubmittedAt      time.Time        `json:"submitted_at" gorm:"autoCreateTime;index"`
}

type RefundStatus string

const (
	RefundPending    RefundStatus = "pending"
	RefundProcessing RefundStatus = "processing"
	RefundCompleted  RefundStatus = "completed"
)

func (s RefundStatus) IsValid() bool {
	switch s {
	case RefundPending, RefundProcessing, RefundCompleted:
		return true
	}
	return false
}

func (s RefundStatus) String() string {
	return string(s)
}
