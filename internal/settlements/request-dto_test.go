package settlements_test

import (
	"testing"

	"venuely/internal/settlements"
)

func validSettlementRequest() settlements.CreateSettlementRequest {
	return settlements.CreateSettlementRequest{
		Name:          "최유진",
		RentalDate:    "2026-02-15",
		BankName:      "국민은행",
		AccountHolder: "최유진",
		AccountNumber: "12345678901234",
		Rating:        5,
	}
}

func TestValidate_ValidSettlement(t *testing.T) {
	req := validSettlementRequest()
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*settlements.CreateSettlementRequest)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(r *settlements.CreateSettlementRequest) { r.Name = " " },
			wantErr: "성함을 입력해주세요.",
		},
		{
			name:    "missing date",
			mutate:  func(r *settlements.CreateSettlementRequest) { r.RentalDate = "" },
			wantErr: "대관날짜를 선택해주세요.",
		},
		{
			name:    "missing bank name",
			mutate:  func(r *settlements.CreateSettlementRequest) { r.BankName = "" },
			wantErr: "은행명을 입력해주세요.",
		},
		{
			name:    "missing account holder",
			mutate:  func(r *settlements.CreateSettlementRequest) { r.AccountHolder = "" },
			wantErr: "예금주명을 입력해주세요.",
		},
		{
			name:    "missing account number",
			mutate:  func(r *settlements.CreateSettlementRequest) { r.AccountNumber = "" },
			wantErr: "계좌번호를 입력해주세요.",
		},
		{
			name:    "rating zero",
			mutate:  func(r *settlements.CreateSettlementRequest) { r.Rating = 0 },
			wantErr: "만족도를 선택해주세요.",
		},
		{
			name:    "rating above five",
			mutate:  func(r *settlements.CreateSettlementRequest) { r.Rating = 6 },
			wantErr: "만족도를 선택해주세요.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSettlementRequest()
			tt.mutate(&req)
			errs := req.Validate()
			if len(errs) != 1 || errs[0] != tt.wantErr {
				t.Fatalf("expected [%s], got %v", tt.wantErr, errs)
			}
		})
	}
}

func TestValidate_RatingBounds(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		req := validSettlementRequest()
		req.Rating = rating
		if errs := req.Validate(); len(errs) != 0 {
			t.Errorf("rating %d should pass, got %v", rating, errs)
		}
	}
}

func TestRefundStatusIsValid(t *testing.T) {
	valid := []settlements.RefundStatus{"pending", "processing", "completed"}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []settlements.RefundStatus{"", "confirmed", "cancelled", "PENDING"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}
