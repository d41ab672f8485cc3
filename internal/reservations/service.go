package reservations

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
	ErrNotFound      = errors.New("reservation not found")
	ErrInvalidStatus = errors.New("invalid reservation status")
)

type Service interface {
	Submit(ctx context.Context, req *CreateReservationRequest) (*CreatedResponse, error)
	List(ctx context.Context, query ListQuery) ([]Reservation, *response.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Reservation, error)

	// SetNotifier injects the submission event publisher
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

// Submit normalizes a validated request, derives the computed fields and
// performs exactly one insert. Validation happens in the controller so a
// rejected request never reaches this method.
func (s *service) Submit(ctx context.Context, req *CreateReservationRequest) (*CreatedResponse, error) {
	rentalDate, err := time.Parse("2006-01-02", req.RentalDate)
	if err != nil {
		return nil, fmt.Errorf("parse rental date: %w", err)
	}

	rentalHours := float64(ToMinutes(req.EndTime)-ToMinutes(req.StartTime)) / 60
	additionalPrice := ComputeAdditionalPrice(req.Options)

	venueType := VenueType(req.VenueType)
	if req.VenueType == "" {
		venueType = VenuePerformance
	}

	reservation := &Reservation{
		Name:            strings.TrimSpace(req.Name),
		Organization:    optionalText(req.Organization),
		Phone:           stripPhone(req.Phone),
		RentalDate:      rentalDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		RentalHours:     rentalHours,
		VenueType:       venueType,
		NumPerformers:   req.NumPerformers,
		Description:     optionalText(req.Description),
		ReferralSources: referralsOrEmpty(req.ReferralSources),

		OptExtraCapacity:      req.Options.ExtraCapacity,
		OptMultitrack:         req.Options.Multitrack,
		OptPersonalMonitor:    req.Options.PersonalMonitor,
		OptExtraOperator:      req.Options.ExtraOperator,
		OptExtraOperatorHours: req.Options.ExtraOperatorHours,
		OptBarOperation:       req.Options.BarOperation,
		OptPrompter:           req.Options.Prompter,
		OptTaxInvoice:         req.Options.TaxInvoice,

		AdditionalPrice: additionalPrice,
		TotalPrice:      additionalPrice,
		Status:          StatusPending,
	}
	if !req.Options.ExtraOperator {
		reservation.OptExtraOperatorHours = 0
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifySubmission(ctx, notifications.KindReservation, reservation.ID.String(), reservation.Name, reservation.SubmittedAt)
	}

	return &CreatedResponse{
		ID:          reservation.ID,
		TotalPrice:  reservation.TotalPrice,
		SubmittedAt: reservation.SubmittedAt,
	}, nil
}

func (s *service) List(ctx context.Context, query ListQuery) ([]Reservation, *response.Pagination, error) {
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

	return page.Reservations, &response.Pagination{
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      page.Total,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Reservation, error) {
	next := Status(status)
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	reservation, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func optionalText(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func referralsOrEmpty(sources []string) types.StringList {
	if sources == nil {
		return types.StringList{}
	}
	return types.StringList(sources)
}
