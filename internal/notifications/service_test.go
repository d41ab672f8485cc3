package notifications_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuely/internal/notifications"
)

type mockProducer struct {
	published  []*notifications.SubmissionNotification
	publishErr error
}

func (m *mockProducer) Publish(_ context.Context, n *notifications.SubmissionNotification) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, n)
	return nil
}

func (m *mockProducer) Close() error { return nil }

type mockSettings struct {
	disabled map[notifications.Kind]bool
}

func (m *mockSettings) NotificationsEnabled(_ context.Context, kind notifications.Kind) bool {
	return !m.disabled[kind]
}

func TestNotifySubmission_Publishes(t *testing.T) {
	producer := &mockProducer{}
	svc := notifications.NewService(producer, &mockSettings{})

	submittedAt := time.Now()
	svc.NotifySubmission(context.Background(), notifications.KindReservation, "rec-1", "김민수", submittedAt)

	if len(producer.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(producer.published))
	}
	event := producer.published[0]
	if event.Kind != notifications.KindReservation || event.RecordID != "rec-1" || event.Name != "김민수" {
		t.Errorf("unexpected event: %+v", event)
	}
	if event.ID == "" {
		t.Error("event id must be set")
	}
	if !event.SubmittedAt.Equal(submittedAt) {
		t.Error("submitted_at must carry the record timestamp")
	}
}

func TestNotifySubmission_HonorsDisabledToggle(t *testing.T) {
	producer := &mockProducer{}
	settings := &mockSettings{disabled: map[notifications.Kind]bool{notifications.KindSiteVisit: true}}
	svc := notifications.NewService(producer, settings)

	svc.NotifySubmission(context.Background(), notifications.KindSiteVisit, "rec-2", "박지훈", time.Now())
	if len(producer.published) != 0 {
		t.Error("disabled kind must not publish")
	}

	svc.NotifySubmission(context.Background(), notifications.KindSettlement, "rec-3", "최유진", time.Now())
	if len(producer.published) != 1 {
		t.Error("enabled kind must publish")
	}
}

func TestNotifySubmission_NilProducerIsNoop(t *testing.T) {
	svc := notifications.NewService(nil, &mockSettings{})
	// Must not panic.
	svc.NotifySubmission(context.Background(), notifications.KindReservation, "rec-4", "이서연", time.Now())
}

func TestNotifySubmission_PublishFailureIsSwallowed(t *testing.T) {
	producer := &mockProducer{publishErr: errors.New("broker down")}
	svc := notifications.NewService(producer, nil)
	// Best-effort: the error is logged, never returned.
	svc.NotifySubmission(context.Background(), notifications.KindReservation, "rec-5", "김민수", time.Now())
}
