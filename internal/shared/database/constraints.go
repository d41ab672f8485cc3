package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes backing the admin list and statistics queries
func MigrateConstraints(db *gorm.DB) error {
	// Admin listings sort every page by submission time
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_submitted_at
		ON reservations (submitted_at DESC);
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_site_visits_submitted_at
		ON site_visits (submitted_at DESC);
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_settlements_submitted_at
		ON settlements (submitted_at DESC);
	`).Error
	if err != nil {
		return err
	}

	// Monthly schedule filters confirmed reservations by rental date
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_status_rental_date
		ON reservations (status, rental_date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
