package notifications

import "time"

// Kind identifies which submission type an event refers to.
type Kind string

const (
	KindReservation Kind = "reservation"
	KindSiteVisit   Kind = "site_visit"
	KindSettlement  Kind = "settlement"
)

// SubmissionNotification is the event published after a successful
// public submission.
type SubmissionNotification struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	RecordID    string    `json:"record_id"`
	Name        string    `json:"name"`
	SubmittedAt time.Time `json:"submitted_at"`
	PublishedAt time.Time `json:"published_at"`
}
