package reservations

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for reservation storage
type Repository interface {
	Create(ctx context.Context, reservation *Reservation) error
	List(ctx context.Context, query ListQuery) (*PaginatedReservations, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Reservation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, reservation *Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *repository) List(ctx context.Context, query ListQuery) (*PaginatedReservations, error) {
	var rows []Reservation
	var total int64

	q := r.db.WithContext(ctx).Model(&Reservation{})

	if query.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", query.Search)
		q = q.Where("name ILIKE ? OR organization ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}
	if query.StartDate != "" {
		q = q.Where("rental_date >= ?", query.StartDate)
	}
	if query.EndDate != "" {
		q = q.Where("rental_date <= ?", query.EndDate)
	}
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (query.Page - 1) * query.Limit
	err := q.Order("submitted_at DESC").Offset(offset).Limit(query.Limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &PaginatedReservations{Reservations: rows, Total: total}, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).First(&reservation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Reservation, error) {
	result := r.db.WithContext(ctx).Model(&Reservation{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
