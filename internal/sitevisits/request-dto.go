package sitevisits

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateSiteVisitRequest struct {
	Name          string   `json:"name"`
	Organization  string   `json:"organization"`
	Phone         string   `json:"phone"`
	RentalDate    string   `json:"rentalDate"` // YYYY-MM-DD
	StartTime     string   `json:"startTime"`  // HH:MM
	EndTime       string   `json:"endTime"`    // HH:MM
	Purposes      []string `json:"purposes"`
	PurposeDetail string   `json:"purposeDetail"`
	HasRental     string   `json:"hasRental"`
}

// Validate collects every missing-field violation in declared order.
func (r *CreateSiteVisitRequest) Validate() []string {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "성함을 입력해주세요.")
	}
	if r.Phone == "" {
		errs = append(errs, "연락처를 입력해주세요.")
	}
	if r.RentalDate == "" {
		errs = append(errs, "대관 희망 날짜를 선택해주세요.")
	}
	if r.StartTime == "" || r.EndTime == "" {
		errs = append(errs, "대관 희망 시간을 선택해주세요.")
	}
	if len(r.Purposes) == 0 {
		errs = append(errs, "사용목적을 선택해주세요.")
	}
	if strings.TrimSpace(r.PurposeDetail) == "" {
		errs = append(errs, "사용설명을 입력해주세요.")
	}
	if r.HasRental == "" {
		errs = append(errs, "대관 유무를 선택해주세요.")
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
	Search    string
	StartDate string
	EndDate   string
	Status    string
	Page      int
	Limit     int
}

// UpdateStatusRequest is the admin status patch payload.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PaginatedSiteVisits bundles a page of rows with the total row count.
type PaginatedSiteVisits struct {
	SiteVisits []SiteVisit
	Total      int64
}
