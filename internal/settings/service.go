package settings

import (
	"context"
	"errors"
	"strings"

	"venuely/internal/notifications"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*AdminSettings, error)
	Update(ctx context.Context, userID uuid.UUID, req *UpdateSettingsRequest) (*AdminSettings, error)

	// NotificationsEnabled implements notifications.SettingsSource.
	NotificationsEnabled(ctx context.Context, kind notifications.Kind) bool
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Get returns the stored settings, or defaults when the admin never saved any.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*AdminSettings, error) {
	settings, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, req *UpdateSettingsRequest) (*AdminSettings, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.PhoneNumber != "" {
		current.PhoneNumber = strings.NewReplacer("-", "", " ", "").Replace(req.PhoneNumber)
	}
	if req.NotificationReservation != nil {
		current.NotificationReservation = *req.NotificationReservation
	}
	if req.NotificationSiteVisit != nil {
		current.NotificationSiteVisit = *req.NotificationSiteVisit
	}
	if req.NotificationSettlement != nil {
		current.NotificationSettlement = *req.NotificationSettlement
	}

	if err := s.repo.Upsert(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// NotificationsEnabled defaults to enabled when no settings row exists yet.
func (s *service) NotificationsEnabled(ctx context.Context, kind notifications.Kind) bool {
	settings, err := s.repo.GetLatest(ctx)
	if err != nil {
		return true
	}

	switch kind {
	case notifications.KindReservation:
		return settings.NotificationReservation
	case notifications.KindSiteVisit:
		return settings.NotificationSiteVisit
	case notifications.KindSettlement:
		return settings.NotificationSettlement
	}
	return true
}
