package settlements

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
	ErrNotFound      = errors.New("settlement not found")
	ErrInvalidStatus = errors.New("invalid refund status")
)

type Service interface {
	Submit(ctx context.Context, req *CreateSettlementRequest) (*CreatedResponse, error)
	List(ctx context.Context, query ListQuery) ([]Settlement, *response.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Settlement, error)
	UpdateRefundStatus(ctx context.Context, id uuid.UUID, status string) (*Settlement, error)

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

func (s *service) Submit(ctx context.Context, req *CreateSettlementRequest) (*CreatedResponse, error) {
	rentalDate, err := time.Parse("2006-01-02", req.RentalDate)
	if err != nil {
		return nil, fmt.Errorf("parse rental date: %w", err)
	}

	bankName := strings.TrimSpace(req.BankName)
	accountHolder := strings.TrimSpace(req.AccountHolder)

	settlement := &Settlement{
		Name:          strings.TrimSpace(req.Name),
		RentalDate:    rentalDate,
		BankName:      bankName,
		AccountHolder: accountHolder,
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		BankInfo:      bankName + " " + accountHolder,
		Rating:        req.Rating,
		GoodPoints:    optionalText(req.GoodPoints),
		Improvements:  optionalText(req.Improvements),
		// Media files are handled separately via file storage
		MediaURLs:        types.StringList{},
		InstagramConsent: req.InstagramConsent,
		InstagramRequest: optionalText(req.InstagramRequest),
		RefundStatus:     RefundPending,
	}

	if err := s.repo.Create(ctx, settlement); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifySubmission(ctx, notifications.KindSettlement, settlement.ID.String(), settlement.Name, settlement.SubmittedAt)
	}

	return &CreatedResponse{
		ID:          settlement.ID,
		SubmittedAt: settlement.SubmittedAt,
	}, nil
}

func (s *service) List(ctx context.Context, query ListQuery) ([]Settlement, *response.Pagination, error) {
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

	return page.Settlements, &response.Pagination{
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      page.Total,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Settlement, error) {
	settlement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return settlement, nil
}

func (s *service) UpdateRefundStatus(ctx context.Context, id uuid.UUID, status string) (*Settlement, error) {
	next := RefundStatus(status)
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	settlement, err := s.repo.UpdateRefundStatus(ctx, id, next)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return settlement, nil
}

func optionalText(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
