package reservations

import (
	"time"

	"github.com/google/uuid"
)

// CreatedResponse is the minimal projection returned after a public submission.
type CreatedResponse struct {
	ID          uuid.UUID `json:"id"`
	TotalPrice  int       `json:"total_price"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ListQuery carries the admin listing filters.
type ListQuery struct {
	Search    string
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive
	Status    string
	Page      int
	Limit     int
}

// UpdateStatusRequest is the admin status patch payload.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PaginatedReservations bundles a page of rows with the total row count.
type PaginatedReservations struct {
	Reservations []Reservation
	Total        int64
}
