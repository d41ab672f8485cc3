package sitevisits

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"venuely/internal/notifications"
	"venuely/internal/shared/types"
	"venuely/internal/shared/utils/response"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("site visit not found")
	ErrInvalidStatus = errors.New("invalid site visit status")
)

type Service interface {
	Submit(ctx context.Context, req *CreateSiteVisitRequest) (*CreatedResponse, error)
	List(ctx context.Context, query ListQuery) ([]SiteVisit, *response.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SiteVisit, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*SiteVisit, error)

	SetNotifier(notifier notifications.Notifier)
}

type service struct {
	repo     Repository
	notifier notifications.Notifier
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetNotifier(notifier notifications.Notifier) {
	s.notifier = notifier
}

func (s *service) Submit(ctx context.Context, req *CreateSiteVisitRequest) (*CreatedResponse, error) {
	rentalDate, err := time.Parse("2006-01-02", req.RentalDate)
	if err != nil {
		return nil, fmt.Errorf("parse rental date: %w", err)
	}

	visit := &SiteVisit{
		Name:          strings.TrimSpace(req.Name),
		Organization:  optionalText(req.Organization),
		Phone:         stripPhone(req.Phone),
		RentalDate:    rentalDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Purposes:      types.StringList(req.Purposes),
		PurposeDetail: strings.TrimSpace(req.PurposeDetail),
		HasRental:     req.HasRental,
		Status:        StatusPending,
	}

	if err := s.repo.Create(ctx, visit); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifySubmission(ctx, notifications.KindSiteVisit, visit.ID.String(), visit.Name, visit.SubmittedAt)
	}

	return &CreatedResponse{
		ID:          visit.ID,
		SubmittedAt: visit.SubmittedAt,
	}, nil
}

func (s *service) List(ctx context.Context, query ListQuery) ([]SiteVisit, *response.Pagination, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}

	page, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((page.Total + int64(query.Limit) - 1) / int64(query.Limit))

	return page.SiteVisits, &response.Pagination{
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      page.Total,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*SiteVisit, error) {
	visit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return visit, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*SiteVisit, error) {
	next := Status(status)
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	visit, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return visit, nil
}

func optionalText(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func stripPhone(phone string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(phone)
}
