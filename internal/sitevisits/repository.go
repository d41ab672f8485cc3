package sitevisits

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for site visit storage
type Repository interface {
	Create(ctx context.Context, visit *SiteVisit) error
	List(ctx context.Context, query ListQuery) (*PaginatedSiteVisits, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SiteVisit, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*SiteVisit, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, visit *SiteVisit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *repository) List(ctx context.Context, query ListQuery) (*PaginatedSiteVisits, error) {
	var rows []SiteVisit
	var total int64

	q := r.db.WithContext(ctx).Model(&SiteVisit{})

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

	return &PaginatedSiteVisits{SiteVisits: rows, Total: total}, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*SiteVisit, error) {
	var visit SiteVisit
	err := r.db.WithContext(ctx).First(&visit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*SiteVisit, error) {
	result := r.db.WithContext(ctx).Model(&SiteVisit{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
