package settings

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^01[016789]\d{7,8}$`)

type UpdateSettingsRequest struct {
	PhoneNumber             string `json:"phoneNumber"`
	NotificationReservation *bool  `json:"notificationReservation"`
	NotificationSiteVisit   *bool  `json:"notificationSiteVisit"`
	NotificationSettlement  *bool  `json:"notificationSettlement"`
}

// Validate rejects a malformed phone number before anything touches storage.
// The toggles are optional; omitted toggles keep their stored value.
func (r *UpdateSettingsRequest) Validate() []string {
	var errs []string

	if r.PhoneNumber != "" {
		stripped := strings.NewReplacer("-", "", " ", "").Replace(r.PhoneNumber)
		if !phoneRegex.MatchString(stripped) {
			errs = append(errs, "유효하지 않은 전화번호 형식입니다.")
		}
	}

	return errs
}
