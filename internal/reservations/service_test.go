package reservations_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuely/internal/notifications"
	"venuely/internal/reservations"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ---------- Mocks ----------

type mockRepo struct {
	created   *reservations.Reservation
	createErr error

	listPage *reservations.PaginatedReservations
	listErr  error

	byID     *reservations.Reservation
	byIDErr  error
	updated  *reservations.Reservation
	updErr   error
	updCalls int
}

func (m *mockRepo) Create(_ context.Context, r *reservations.Reservation) error {
	if m.createErr != nil {
		return m.createErr
	}
	r.ID = uuid.New()
	r.SubmittedAt = time.Now()
	m.created = r
	return nil
}

func (m *mockRepo) List(_ context.Context, _ reservations.ListQuery) (*reservations.PaginatedReservations, error) {
	return m.listPage, m.listErr
}

func (m *mockRepo) GetByID(_ context.Context, _ uuid.UUID) (*reservations.Reservation, error) {
	return m.byID, m.byIDErr
}

func (m *mockRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ reservations.Status) (*reservations.Reservation, error) {
	m.updCalls++
	return m.updated, m.updErr
}

type mockNotifier struct {
	kind     notifications.Kind
	recordID string
	calls    int
}

func (m *mockNotifier) NotifySubmission(_ context.Context, kind notifications.Kind, recordID, _ string, _ time.Time) {
	m.calls++
	m.kind = kind
	m.recordID = recordID
}

// ---------- Tests ----------

func TestSubmit_DerivesComputedFields(t *testing.T) {
	repo := &mockRepo{}
	svc := reservations.NewService(repo)

	req := &reservations.CreateReservationRequest{
		Name:          "  김민수  ",
		Phone:         "010-1234-5678",
		RentalDate:    "2026-04-01",
		StartTime:     "14:00",
		EndTime:       "20:00",
		NumPerformers: 5,
		Options: reservations.Options{
			Multitrack:         true,
			ExtraOperator:      true,
			ExtraOperatorHours: 6,
		},
	}

	created, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	r := repo.created
	if r == nil {
		t.Fatal("expected a created reservation")
	}
	if r.Name != "김민수" {
		t.Errorf("name not trimmed: %q", r.Name)
	}
	if r.Phone != "01012345678" {
		t.Errorf("phone not normalized: %q", r.Phone)
	}
	if r.RentalHours != 6 {
		t.Errorf("rental hours = %v, want 6", r.RentalHours)
	}
	if r.AdditionalPrice != 220000 {
		t.Errorf("additional price = %d, want 220000", r.AdditionalPrice)
	}
	if r.TotalPrice != r.AdditionalPrice {
		t.Errorf("total price %d != additional price %d", r.TotalPrice, r.AdditionalPrice)
	}
	if r.VenueType != reservations.VenuePerformance {
		t.Errorf("venue type = %q, want default performance", r.VenueType)
	}
	if r.Status != reservations.StatusPending {
		t.Errorf("status = %q, want pending", r.Status)
	}
	if r.Organization != nil {
		t.Error("blank organization should be nil")
	}
	if r.ReferralSources == nil || len(r.ReferralSources) != 0 {
		t.Errorf("referral sources should be empty, got %v", r.ReferralSources)
	}
	if created.TotalPrice != 220000 {
		t.Errorf("response total price = %d, want 220000", created.TotalPrice)
	}
}

func TestSubmit_OperatorHoursZeroedWithoutFlag(t *testing.T) {
	repo := &mockRepo{}
	svc := reservations.NewService(repo)

	req := &reservations.CreateReservationRequest{
		Name:          "이서연",
		Phone:         "01098765432",
		RentalDate:    "2026-04-01",
		StartTime:     "09:00",
		EndTime:       "14:00",
		NumPerformers: 1,
		Options:       reservations.Options{ExtraOperatorHours: 6},
	}

	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if repo.created.OptExtraOperatorHours != 0 {
		t.Errorf("operator hours = %d, want 0", repo.created.OptExtraOperatorHours)
	}
	if repo.created.AdditionalPrice != 0 {
		t.Errorf("additional price = %d, want 0", repo.created.AdditionalPrice)
	}
}

func TestSubmit_NotifiesAfterCreate(t *testing.T) {
	repo := &mockRepo{}
	notifier := &mockNotifier{}
	svc := reservations.NewService(repo)
	svc.SetNotifier(notifier)

	req := &reservations.CreateReservationRequest{
		Name:          "박지훈",
		Phone:         "01055554444",
		RentalDate:    "2026-04-01",
		StartTime:     "09:00",
		EndTime:       "14:00",
		NumPerformers: 2,
	}

	created, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if notifier.calls != 1 {
		t.Fatalf("expected one notification, got %d", notifier.calls)
	}
	if notifier.kind != notifications.KindReservation {
		t.Errorf("kind = %q, want reservation", notifier.kind)
	}
	if notifier.recordID != created.ID.String() {
		t.Errorf("record id = %q, want %q", notifier.recordID, created.ID)
	}
}

func TestList_Pagination(t *testing.T) {
	rows := make([]reservations.Reservation, 20)
	repo := &mockRepo{listPage: &reservations.PaginatedReservations{Reservations: rows, Total: 45}}
	svc := reservations.NewService(repo)

	got, pagination, err := svc.List(context.Background(), reservations.ListQuery{Page: 2, Limit: 20})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(got) != 20 {
		t.Errorf("rows = %d, want 20", len(got))
	}
	if pagination.Page != 2 || pagination.Limit != 20 {
		t.Errorf("pagination page/limit = %d/%d, want 2/20", pagination.Page, pagination.Limit)
	}
	if pagination.Total != 45 {
		t.Errorf("total = %d, want 45", pagination.Total)
	}
	if pagination.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", pagination.TotalPages)
	}
}

func TestList_DefaultsPageAndLimit(t *testing.T) {
	repo := &mockRepo{listPage: &reservations.PaginatedReservations{Total: 0}}
	svc := reservations.NewService(repo)

	_, pagination, err := svc.List(context.Background(), reservations.ListQuery{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if pagination.Page != 1 || pagination.Limit != 20 {
		t.Errorf("defaults = %d/%d, want 1/20", pagination.Page, pagination.Limit)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockRepo{byIDErr: gorm.ErrRecordNotFound}
	svc := reservations.NewService(repo)

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, reservations.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatus_RejectsUnknownStatusBeforeStorage(t *testing.T) {
	repo := &mockRepo{}
	svc := reservations.NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "archived")
	if !errors.Is(err, reservations.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.updCalls != 0 {
		t.Error("storage must not be touched for an unknown status")
	}
}

func TestUpdateStatus_Valid(t *testing.T) {
	want := &reservations.Reservation{Status: reservations.StatusConfirmed}
	repo := &mockRepo{updated: want}
	svc := reservations.NewService(repo)

	got, err := svc.UpdateStatus(context.Background(), uuid.New(), "confirmed")
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if got != want {
		t.Error("expected repository result to be returned")
	}
}
