package sitevisits_test

import (
	"testing"

	"venuely/internal/sitevisits"
)

func validVisitRequest() sitevisits.CreateSiteVisitRequest {
	return sitevisits.CreateSiteVisitRequest{
		Name:          "박지훈",
		Phone:         "01055554444",
		RentalDate:    "2026-04-01",
		StartTime:     "11:00",
		EndTime:       "12:00",
		Purposes:      []string{"공연"},
		PurposeDetail: "합주 공간 답사",
		HasRental:     "yes",
	}
}

func TestValidate_ValidVisit(t *testing.T) {
	req := validVisitRequest()
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*sitevisits.CreateSiteVisitRequest)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(r *sitevisits.CreateSiteVisitRequest) { r.Name = " " },
			wantErr: "성함을 입력해주세요.",
		},
		{
			name:    "missing phone",
			mutate:  func(r *sitevisits.CreateSiteVisitRequest) { r.Phone = "" },
			wantErr: "연락처를 입력해주세요.",
		},
		{
			name:    "missing date",
			mutate:  func(r *sitevisits.CreateSiteVisitRequest) { r.RentalDate = "" },
			wantErr: "대관 희망 날짜를 선택해주세요.",
		},
		{
			name:    "missing start time",
			mutate:  func(r *sitevisits.CreateSiteVisitRequest) { r.StartTime = "" },
			wantErr: "대관 희망 시간을 선택해주세요.",
		},
		{
			name:    "missing end time",
			mutate:  func(r *sitevisits.CreateSiteVisitRequest) { r.EndTime = "" },
			wantErr: "대관 희망 시간을 선택해주세요.",
		},
		{
			name:    "no purposes",
			mutate:  func(r *sitevisits.CreateSiteVisitRequest) { r.Purposes = nil },
			wantErr: "사용목적을 선택해주세요.",
		},
		{
			name:    "missing purpose detail",
			mutate:  func(r *sitevisits.CreateSiteVisitRequest) { r.PurposeDetail = "  " },
			wantErr: "사용설명을 입력해주세요.",
		},
		{
			name:    "missing rental flag",
			mutate:  func(r *sitevisits.CreateSiteVisitRequest) { r.HasRental = "" },
			wantErr: "대관 유무를 선택해주세요.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validVisitRequest()
			tt.mutate(&req)
			errs := req.Validate()
			if len(errs) != 1 || errs[0] != tt.wantErr {
				t.Fatalf("expected [%s], got %v", tt.wantErr, errs)
			}
		})
	}
}

func TestValidate_CollectsAllMissingFields(t *testing.T) {
	req := sitevisits.CreateSiteVisitRequest{}
	errs := req.Validate()
	if len(errs) != 7 {
		t.Fatalf("expected 7 errors for an empty request, got %d: %v", len(errs), errs)
	}
	if errs[0] != "성함을 입력해주세요." {
		t.Errorf("first error = %q", errs[0])
	}
	if errs[len(errs)-1] != "대관 유무를 선택해주세요." {
		t.Errorf("last error = %q", errs[len(errs)-1])
	}
}
