package database

import (
	"venuely/internal/reservations"
	"venuely/internal/settings"
	"venuely/internal/settlements"
	"venuely/internal/sitevisits"
	"venuely/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&reservations.Reservation{},
		&sitevisits.SiteVisit{},
		&settlements.Settlement{},
		&settings.AdminSettings{},
	)
}
