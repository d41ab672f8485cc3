package analytics

import (
	"context"
	"time"

	"venuely/internal/reservations"
	"venuely/internal/settlements"
	"venuely/internal/sitevisits"

	"gorm.io/gorm"
)

// Repository fetches the projected row sets the aggregations reduce over.
// A zero `since` means the whole table.
type Repository interface {
	ReservationRows(ctx context.Context, since time.Time) ([]ReservationStatRow, error)
	SiteVisitRows(ctx context.Context, since time.Time) ([]SiteVisitStatRow, error)
	SettlementRows(ctx context.Context, since time.Time) ([]SettlementStatRow, error)
	MonthlySchedule(ctx context.Context, firstDay, lastDay time.Time) ([]ScheduleEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ReservationRows(ctx context.Context, since time.Time) ([]ReservationStatRow, error) {
	rows := []ReservationStatRow{}
	q := r.db.WithContext(ctx).Model(&reservations.Reservation{}).
		Select("status, venue_type, submitted_at")
	if !since.IsZero() {
		q = q.Where("submitted_at >= ?", since)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) SiteVisitRows(ctx context.Context, since time.Time) ([]SiteVisitStatRow, error) {
	rows := []SiteVisitStatRow{}
	q := r.db.WithContext(ctx).Model(&sitevisits.SiteVisit{}).
		Select("status, submitted_at")
	if !since.IsZero() {
		q = q.Where("submitted_at >= ?", since)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) SettlementRows(ctx context.Context, since time.Time) ([]SettlementStatRow, error) {
	rows := []SettlementStatRow{}
	q := r.db.WithContext(ctx).Model(&settlements.Settlement{}).
		Select("refund_status, submitted_at")
	if !since.IsZero() {
		q = q.Where("submitted_at >= ?", since)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) MonthlySchedule(ctx context.Context, firstDay, lastDay time.Time) ([]ScheduleEntry, error) {
	entries := []ScheduleEntry{}
	err := r.db.WithContext(ctx).Model(&reservations.Reservation{}).
		Select("id, name, organization, rental_date, venue_type, start_time, end_time, status").
		Where("status = ?", reservations.StatusConfirmed).
		Where("rental_date >= ? AND rental_date <= ?", firstDay, lastDay).
		Order("rental_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
