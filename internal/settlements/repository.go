package settlements

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for settlement storage
type Repository interface {
	Create(ctx context.Context, settlement *Settlement) error
	List(ctx context.Context, query ListQuery) (*PaginatedSettlements, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Settlement, error)
	UpdateRefundStatus(ctx context.Context, id uuid.UUID, status RefundStatus) (*Settlement, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, settlement *Settlement) error {
	return r.db.WithContext(ctx).Create(settlement).Error
}

func (r *repository) List(ctx context.Context, query ListQuery) (*PaginatedSettlements, error) {
	var rows []Settlement
	var total int64

	q := r.db.WithContext(ctx).Model(&Settlement{})

	if query.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", query.Search)
		q = q.Where("name ILIKE ? OR bank_info ILIKE ?", pattern, pattern)
	}
	if query.StartDate != "" {
		q = q.Where("rental_date >= ?", query.StartDate)
	}
	if query.EndDate != "" {
		q = q.Where("rental_date <= ?", query.EndDate)
	}
	if query.RefundStatus != "" {
		q = q.Where("refund_status = ?", query.RefundStatus)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (query.Page - 1) * query.Limit
	err := q.Order("submitted_at DESC").Offset(offset).Limit(query.Limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &PaginatedSettlements{Settlements: rows, Total: total}, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Settlement, error) {
	var settlement Settlement
	err := r.db.WithContext(ctx).First(&settlement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &settlement, nil
}

func (r *repository) UpdateRefundStatus(ctx context.Context, id uuid.UUID, status RefundStatus) (*Settlement, error) {
	result := r.db.WithContext(ctx).Model(&Settlement{}).Where("id = ?", id).Update("refund_status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
