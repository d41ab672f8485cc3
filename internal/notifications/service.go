package notifications

import (
	"context"
	"log/slog"
	"time"

	"venuely/pkg/logger"

	"github.com/google/uuid"
)

// Notifier emits a submission event after a successful public submission.
// Publishing is best-effort: a broker failure never fails the request.
type Notifier interface {
	NotifySubmission(ctx context.Context, kind Kind, recordID, name string, submittedAt time.Time)
}

// SettingsSource answers whether the admin enabled notifications for a kind.
type SettingsSource interface {
	NotificationsEnabled(ctx context.Context, kind Kind) bool
}

type service struct {
	producer Producer
	settings SettingsSource
	logger   *logger.Logger
}

// NewService creates the notifier. A nil producer disables publishing.
func NewService(producer Producer, settings SettingsSource) Notifier {
	return &service{
		producer: producer,
		settings: settings,
		logger:   logger.GetDefault(),
	}
}

func (s *service) NotifySubmission(ctx context.Context, kind Kind, recordID, name string, submittedAt time.Time) {
	if s.producer == nil {
		return
	}
	if s.settings != nil && !s.settings.NotificationsEnabled(ctx, kind) {
		return
	}

	notification := &SubmissionNotification{
		ID:          uuid.New().String(),
		Kind:        kind,
		RecordID:    recordID,
		Name:        name,
		SubmittedAt: submittedAt,
		PublishedAt: time.Now(),
	}

	if err := s.producer.Publish(ctx, notification); err != nil {
		s.logger.Warn("submission notification publish failed",
			slog.String("kind", string(kind)),
			slog.String("record_id", recordID),
			slog.Any("error", err),
		)
	}
}
