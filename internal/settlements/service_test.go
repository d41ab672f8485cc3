package settlements_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuely/internal/settlements"

	"github.com/google/uuid"
)

type mockRepo struct {
	created  *settlements.Settlement
	updated  *settlements.Settlement
	updErr   error
	updCalls int
}

func (m *mockRepo) Create(_ context.Context, s *settlements.Settlement) error {
	s.ID = uuid.New()
	s.SubmittedAt = time.Now()
	m.created = s
	return nil
}

func (m *mockRepo) List(_ context.Context, _ settlements.ListQuery) (*settlements.PaginatedSettlements, error) {
	return &settlements.PaginatedSettlements{}, nil
}

func (m *mockRepo) GetByID(_ context.Context, _ uuid.UUID) (*settlements.Settlement, error) {
	return m.created, nil
}

func (m *mockRepo) UpdateRefundStatus(_ context.Context, _ uuid.UUID, _ settlements.RefundStatus) (*settlements.Settlement, error) {
	m.updCalls++
	return m.updated, m.updErr
}

func TestSubmit_DerivesBankInfo(t *testing.T) {
	repo := &mockRepo{}
	svc := settlements.NewService(repo)

	req := &settlements.CreateSettlementRequest{
		Name:          "최유진",
		RentalDate:    "2026-02-15",
		BankName:      " 국민은행 ",
		AccountHolder: " 최유진 ",
		AccountNumber: "12345678901234",
		Rating:        4,
	}

	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	s := repo.created
	if s.BankInfo != "국민은행 최유진" {
		t.Errorf("bank info = %q, want %q", s.BankInfo, "국민은행 최유진")
	}
	if s.RefundStatus != settlements.RefundPending {
		t.Errorf("refund status = %q, want pending", s.RefundStatus)
	}
	if s.MediaURLs == nil || len(s.MediaURLs) != 0 {
		t.Errorf("media urls should be empty, got %v", s.MediaURLs)
	}
	if s.GoodPoints != nil {
		t.Error("blank good points should be nil")
	}
}

func TestUpdateRefundStatus_RejectsUnknownValue(t *testing.T) {
	repo := &mockRepo{}
	svc := settlements.NewService(repo)

	_, err := svc.UpdateRefundStatus(context.Background(), uuid.New(), "cancelled")
	if !errors.Is(err, settlements.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.updCalls != 0 {
		t.Error("storage must not be touched for an unknown refund status")
	}
}

func TestUpdateRefundStatus_Valid(t *testing.T) {
	want := &settlements.Settlement{RefundStatus: settlements.RefundProcessing}
	repo := &mockRepo{updated: want}
	svc := settlements.NewService(repo)

	got, err := svc.UpdateRefundStatus(context.Background(), uuid.New(), "processing")
	if err != nil {
		t.Fatalf("UpdateRefundStatus() error = %v", err)
	}
	if got != want {
		t.Error("expected repository result to be returned")
	}
}
