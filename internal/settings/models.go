package settings

import (
	"time"

	"github.com/google/uuid"
)

// AdminSettings holds one row per admin identity. Created lazily on first
// write, updated afterwards.
type AdminSettings struct {
	ID                      uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	UserID                  uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	PhoneNumber             string    `json:"phone_number" gorm:"not null"`
	NotificationReservation bool      `json:"notification_reservation" gorm:"not null;default:true"`
	NotificationSiteVisit   bool      `json:"notification_site_visit" gorm:"not null;default:true"`
	NotificationSettlement  bool      `json:"notification_settlement" gorm:"not null;default:true"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// DefaultSettings is returned for admins who have never saved settings.
func DefaultSettings(userID uuid.UUID) *AdminSettings {
	return &AdminSettings{
		UserID:                  userID,
		PhoneNumber:             "",
		NotificationReservation: true,
		NotificationSiteVisit:   true,
		NotificationSettlement:  true,
	}
}
