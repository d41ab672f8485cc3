package reservations_test

import (
	"strings"
	"testing"
	"time"

	"venuely/internal/reservations"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func validRequest() reservations.CreateReservationRequest {
	return reservations.CreateReservationRequest{
		Name:          "김민수",
		Phone:         "010-1234-5678",
		RentalDate:    "2026-04-01",
		StartTime:     "14:00",
		EndTime:       "20:00",
		NumPerformers: 5,
	}
}

func TestValidate_ValidRequest(t *testing.T) {
	req := validRequest()
	if errs := req.Validate(testNow); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_SingleFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*reservations.CreateReservationRequest)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(r *reservations.CreateReservationRequest) { r.Name = "  " },
			wantErr: "성함은 필수입니다.",
		},
		{
			name:    "name too long",
			mutate:  func(r *reservations.CreateReservationRequest) { r.Name = strings.Repeat("가", 51) },
			wantErr: "성함은 50자 이내로 입력해주세요.",
		},
		{
			name:    "name at limit passes",
			mutate:  func(r *reservations.CreateReservationRequest) { r.Name = strings.Repeat("가", 50) },
			wantErr: "",
		},
		{
			name:    "missing phone",
			mutate:  func(r *reservations.CreateReservationRequest) { r.Phone = "" },
			wantErr: "전화번호는 필수입니다.",
		},
		{
			name:    "malformed phone",
			mutate:  func(r *reservations.CreateReservationRequest) { r.Phone = "02-123-4567" },
			wantErr: "올바른 전화번호 형식이 아닙니다.",
		},
		{
			name:    "hyphenated phone passes",
			mutate:  func(r *reservations.CreateReservationRequest) { r.Phone = "010-9876-5432" },
			wantErr: "",
		},
		{
			name:    "missing date",
			mutate:  func(r *reservations.CreateReservationRequest) { r.RentalDate = "" },
			wantErr: "대관날짜는 필수입니다.",
		},
		{
			name:    "date today rejected",
			mutate:  func(r *reservations.CreateReservationRequest) { r.RentalDate = "2026-03-10" },
			wantErr: "대관날짜는 오늘 이후여야 합니다.",
		},
		{
			name:    "date tomorrow passes",
			mutate:  func(r *reservations.CreateReservationRequest) { r.RentalDate = "2026-03-11" },
			wantErr: "",
		},
		{
			name:    "unparseable date",
			mutate:  func(r *reservations.CreateReservationRequest) { r.RentalDate = "not-a-date" },
			wantErr: "대관날짜는 오늘 이후여야 합니다.",
		},
		{
			name:    "bad start time",
			mutate:  func(r *reservations.CreateReservationRequest) { r.StartTime = "25:00" },
			wantErr: "시작 시간이 올바르지 않습니다.",
		},
		{
			name:    "bad end time",
			mutate:  func(r *reservations.CreateReservationRequest) { r.EndTime = "14:60" },
			wantErr: "종료 시간이 올바르지 않습니다.",
		},
		{
			name: "duration just under five hours",
			mutate: func(r *reservations.CreateReservationRequest) {
				r.StartTime = "09:00"
				r.EndTime = "13:59"
			},
			wantErr: "대관시간은 최소 5시간 이상이어야 합니다.",
		},
		{
			name: "duration exactly five hours passes",
			mutate: func(r *reservations.CreateReservationRequest) {
				r.StartTime = "09:00"
				r.EndTime = "14:00"
			},
			wantErr: "",
		},
		{
			name: "end before start fails the minimum",
			mutate: func(r *reservations.CreateReservationRequest) {
				r.StartTime = "20:00"
				r.EndTime = "14:00"
			},
			wantErr: "대관시간은 최소 5시간 이상이어야 합니다.",
		},
		{
			name:    "zero performers",
			mutate:  func(r *reservations.CreateReservationRequest) { r.NumPerformers = 0 },
			wantErr: "공연자 인원은 1명 이상이어야 합니다.",
		},
		{
			name:    "too many performers",
			mutate:  func(r *reservations.CreateReservationRequest) { r.NumPerformers = 201 },
			wantErr: "공연자 인원은 200명 이하여야 합니다.",
		},
		{
			name:    "performers at limit passes",
			mutate:  func(r *reservations.CreateReservationRequest) { r.NumPerformers = 200 },
			wantErr: "",
		},
		{
			name:    "description too long",
			mutate:  func(r *reservations.CreateReservationRequest) { r.Description = strings.Repeat("가", 501) },
			wantErr: "대관 설명은 500자 이내로 입력해주세요.",
		},
		{
			name:    "description at limit passes",
			mutate:  func(r *reservations.CreateReservationRequest) { r.Description = strings.Repeat("가", 500) },
			wantErr: "",
		},
		{
			name:    "unknown referral source",
			mutate:  func(r *reservations.CreateReservationRequest) { r.ReferralSources = []string{"네이버", "텔레그램"} },
			wantErr: "유입경로 \"텔레그램\"는 유효하지 않습니다.",
		},
		{
			name: "operator selected without hours",
			mutate: func(r *reservations.CreateReservationRequest) {
				r.Options.ExtraOperator = true
			},
			wantErr: "추가 오퍼레이터 선택 시 시간을 입력해주세요.",
		},
		{
			name: "operator hours over limit",
			mutate: func(r *reservations.CreateReservationRequest) {
				r.Options.ExtraOperator = true
				r.Options.ExtraOperatorHours = 13
			},
			wantErr: "추가 오퍼레이터 시간은 12시간 이하여야 합니다.",
		},
		{
			name: "operator hours at limit passes",
			mutate: func(r *reservations.CreateReservationRequest) {
				r.Options.ExtraOperator = true
				r.Options.ExtraOperatorHours = 12
			},
			wantErr: "",
		},
		{
			name:    "unknown venue type",
			mutate:  func(r *reservations.CreateReservationRequest) { r.VenueType = "stadium" },
			wantErr: "대관 유형 \"stadium\"는 유효하지 않습니다.",
		},
		{
			name:    "known venue type passes",
			mutate:  func(r *reservations.CreateReservationRequest) { r.VenueType = "studio" },
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			errs := req.Validate(testNow)

			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) != 1 || errs[0] != tt.wantErr {
				t.Fatalf("expected [%s], got %v", tt.wantErr, errs)
			}
		})
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	req := validRequest()
	req.Name = ""
	req.Phone = "123"
	req.NumPerformers = 0

	errs := req.Validate(testNow)
	want := []string{
		"성함은 필수입니다.",
		"올바른 전화번호 형식이 아닙니다.",
		"공연자 인원은 1명 이상이어야 합니다.",
	}

	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %d: %v", len(want), len(errs), errs)
	}
	for i := range want {
		if errs[i] != want[i] {
			t.Errorf("error %d: got %q, want %q", i, errs[i], want[i])
		}
	}
}

func TestValidate_EachBadReferralReported(t *testing.T) {
	req := validRequest()
	req.ReferralSources = []string{"트위터", "네이버", "페이스북"}

	errs := req.Validate(testNow)
	want := []string{
		"유입경로 \"트위터\"는 유효하지 않습니다.",
		"유입경로 \"페이스북\"는 유효하지 않습니다.",
	}

	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), errs)
	}
	for i := range want {
		if errs[i] != want[i] {
			t.Errorf("error %d: got %q, want %q", i, errs[i], want[i])
		}
	}
}
