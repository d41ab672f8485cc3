package reservations

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	phoneRegex = regexp.MustCompile(`^01[016789]\d{7,8}$`)
	timeRegex  = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

var allowedReferrals = []string{"스페이스클라우드", "아워플레이스", "네이버", "인스타", "기타"}

const (
	maxPerformers    = 200
	maxOperatorHours = 12
	maxNameLength    = 50
	maxDescLength    = 500
	minRentalHours   = 5
)

// Options is the option bag on the submission form. Absent fields
// decode to their zero values and contribute nothing to the price.
type Options struct {
	ExtraCapacity      bool `json:"extraCapacity"`
	Multitrack         bool `json:"multitrack"`
	PersonalMonitor    bool `json:"personalMonitor"`
	ExtraOperator      bool `json:"extraOperator"`
	ExtraOperatorHours int  `json:"extraOperatorHours"`
	BarOperation       bool `json:"barOperation"`
	Prompter           bool `json:"prompter"`
	TaxInvoice         bool `json:"taxInvoice"`
}

type CreateReservationRequest struct {
	Name            string   `json:"name"`
	Organization    string   `json:"organization"`
	Phone           string   `json:"phone"`
	RentalDate      string   `json:"rentalDate"` // YYYY-MM-DD
	StartTime       string   `json:"startTime"`  // HH:MM
	EndTime         string   `json:"endTime"`    // HH:MM
	VenueType       string   `json:"venueType"`
	NumPerformers   int      `json:"numPerformers"`
	Description     string   `json:"description"`
	ReferralSources []string `json:"referralSources"`
	Options         Options  `json:"options"`
}

// Validate collects every rule violation in declared order. An empty
// slice means the request may be persisted.
func (r *CreateReservationRequest) Validate(now time.Time) []string {
	var errs []string

	name := strings.TrimSpace(r.Name)
	if name == "" {
		errs = append(errs, "성함은 필수입니다.")
	} else if len([]rune(name)) > maxNameLength {
		errs = append(errs, fmt.Sprintf("성함은 %d자 이내로 입력해주세요.", maxNameLength))
	}

	if r.Phone == "" {
		errs = append(errs, "전화번호는 필수입니다.")
	} else if !phoneRegex.MatchString(stripPhone(r.Phone)) {
		errs = append(errs, "올바른 전화번호 형식이 아닙니다.")
	}

	if r.RentalDate == "" {
		errs = append(errs, "대관날짜는 필수입니다.")
	} else {
		date, err := time.Parse("2006-01-02", r.RentalDate)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if err != nil || !date.After(today) {
			errs = append(errs, "대관날짜는 오늘 이후여야 합니다.")
		}
	}

	startOK := r.StartTime != "" && timeRegex.MatchString(r.StartTime)
	endOK := r.EndTime != "" && timeRegex.MatchString(r.EndTime)
	if !startOK {
		errs = append(errs, "시작 시간이 올바르지 않습니다.")
	}
	if !endOK {
		errs = append(errs, "종료 시간이 올바르지 않습니다.")
	}

	if startOK && endOK {
		hours := float64(ToMinutes(r.EndTime)-ToMinutes(r.StartTime)) / 60
		if hours < minRentalHours {
			errs = append(errs, fmt.Sprintf("대관시간은 최소 %d시간 이상이어야 합니다.", minRentalHours))
		}
	}

	if r.NumPerformers < 1 {
		errs = append(errs, "공연자 인원은 1명 이상이어야 합니다.")
	} else if r.NumPerformers > maxPerformers {
		errs = append(errs, fmt.Sprintf("공연자 인원은 %d명 이하여야 합니다.", maxPerformers))
	}

	if len([]rune(strings.TrimSpace(r.Description))) > maxDescLength {
		errs = append(errs, fmt.Sprintf("대관 설명은 %d자 이내로 입력해주세요.", maxDescLength))
	}

	for _, src := range r.ReferralSources {
		if !isAllowedReferral(src) {
			errs = append(errs, fmt.Sprintf("유입경로 \"%s\"는 유효하지 않습니다.", src))
		}
	}

	if r.Options.ExtraOperator {
		if r.Options.ExtraOperatorHours < 1 {
			errs = append(errs, "추가 오퍼레이터 선택 시 시간을 입력해주세요.")
		} else if r.Options.ExtraOperatorHours > maxOperatorHours {
			errs = append(errs, fmt.Sprintf("추가 오퍼레이터 시간은 %d시간 이하여야 합니다.", maxOperatorHours))
		}
	}

	if r.VenueType != "" && !VenueType(r.VenueType).IsValid() {
		errs = append(errs, fmt.Sprintf("대관 유형 \"%s\"는 유효하지 않습니다.", r.VenueType))
	}

	return errs
}

func isAllowedReferral(src string) bool {
	for _, allowed := range allowedReferrals {
		if src == allowed {
			return true
		}
	}
	return false
}

// stripPhone removes hyphens and spaces, leaving digits for the format check.
func stripPhone(phone string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(phone)
}
