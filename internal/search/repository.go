package search

import (
	"context"
	"fmt"

	"venuely/internal/reservations"
	"venuely/internal/settlements"
	"venuely/internal/sitevisits"

	"gorm.io/gorm"
)

// Repository runs bounded text matches against each submission table.
type Repository interface {
	SearchReservations(ctx context.Context, term string, limit int) ([]ReservationHit, error)
	SearchSiteVisits(ctx context.Context, term string, limit int) ([]SiteVisitHit, error)
	SearchSettlements(ctx context.Context, term string, limit int) ([]SettlementHit, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SearchReservations(ctx context.Context, term string, limit int) ([]ReservationHit, error) {
	hits := []ReservationHit{}
	pattern := fmt.Sprintf("%%%s%%", term)
	err := r.db.WithContext(ctx).Model(&reservations.Reservation{}).
		Select("id, name, organization, phone, rental_date, venue_type, status, submitted_at").
		Where("name ILIKE ? OR organization ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&hits).Error
	if err != nil {
		return nil, err
	}
	return hits, nil
}

func (r *repository) SearchSiteVisits(ctx context.Context, term string, limit int) ([]SiteVisitHit, error) {
	hits := []SiteVisitHit{}
	pattern := fmt.Sprintf("%%%s%%", term)
	err := r.db.WithContext(ctx).Model(&sitevisits.SiteVisit{}).
		Select("id, name, organization, phone, rental_date, has_rental, status, submitted_at").
		Where("name ILIKE ? OR organization ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&hits).Error
	if err != nil {
		return nil, err
	}
	return hits, nil
}

func (r *repository) SearchSettlements(ctx context.Context, term string, limit int) ([]SettlementHit, error) {
	hits := []SettlementHit{}
	pattern := fmt.Sprintf("%%%s%%", term)
	err := r.db.WithContext(ctx).Model(&settlements.Settlement{}).
		Select("id, name, rental_date, bank_info, account_number, refund_status, submitted_at").
		Where("name ILIKE ? OR bank_info ILIKE ?", pattern, pattern).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&hits).Error
	if err != nil {
		return nil, err
	}
	return hits, nil
}
