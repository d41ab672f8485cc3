package settlements

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateSettlementRequest struct {
	Name             string `json:"name"`
	RentalDate       string `json:"rentalDate"` // YYYY-MM-DD
	BankName         string `json:"bankName"`
	AccountHolder    string `json:"accountHolder"`
	AccountNumber    string `json:"accountNumber"`
	Rating           int    `json:"rating"`
	GoodPoints       string `json:"goodPoints"`
	Improvements     string `json:"improvements"`
	InstagramConsent bool   `json:"instagramConsent"`
	InstagramRequest string `json:"instagramRequest"`
}

// Validate collects every rule violation in declared order.
func (r *CreateSettlementRequest) Validate() []string {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "성함을 입력해주세요.")
	}
	if r.RentalDate == "" {
		errs = append(errs, "대관날짜를 선택해주세요.")
	}
	if strings.TrimSpace(r.BankName) == "" {
		errs = append(errs, "은행명을 입력해주세요.")
	}
	if strings.TrimSpace(r.AccountHolder) == "" {
		errs = append(errs, "예금주명을 입력해주세요.")
	}
	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "계좌번호를 입력해주세요.")
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, "만족도를 선택해주세요.")
	}

	return errs
}

// CreatedResponse is the minimal projection returned after a public submission.
type CreatedResponse struct {
	ID          uuid.UUID `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ListQuery carries the admin listing filters.
type ListQuery struct {
	Search       string
	StartDate    string
	EndDate      string
	RefundStatus string
	Page         int
	Limit        int
}

// UpdateRefundStatusRequest is the admin refund status patch payload.
type UpdateRefundStatusRequest struct {
	RefundStatus string `json:"refundStatus" validate:"required"`
}

// PaginatedSettlements bundles a page of rows with the total row count.
type PaginatedSettlements struct {
	Settlements []Settlement
	Total       int64
}
