package reservations_test

import (
	"testing"

	"venuely/internal/reservations"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		hhmm string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"14:00", 840},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		if got := reservations.ToMinutes(tt.hhmm); got != tt.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", tt.hhmm, got, tt.want)
		}
	}
}

func TestComputeAdditionalPrice(t *testing.T) {
	tests := []struct {
		name string
		opts reservations.Options
		want int
	}{
		{
			name: "no options selected",
			opts: reservations.Options{},
			want: 0,
		},
		{
			name: "single flat option",
			opts: reservations.Options{Multitrack: true},
			want: 100000,
		},
		{
			name: "all flat options",
			opts: reservations.Options{ExtraCapacity: true, Multitrack: true, PersonalMonitor: true},
			want: 300000,
		},
		{
			name: "operator hours multiply",
			opts: reservations.Options{ExtraOperator: true, ExtraOperatorHours: 6},
			want: 120000,
		},
		{
			name: "hours ignored without operator flag",
			opts: reservations.Options{ExtraOperatorHours: 6},
			want: 0,
		},
		{
			name: "everything combined",
			opts: reservations.Options{
				ExtraCapacity:      true,
				Multitrack:         true,
				PersonalMonitor:    true,
				ExtraOperator:      true,
				ExtraOperatorHours: 12,
			},
			want: 540000,
		},
		{
			name: "free options contribute nothing",
			opts: reservations.Options{BarOperation: true, Prompter: true, TaxInvoice: true},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reservations.ComputeAdditionalPrice(tt.opts); got != tt.want {
				t.Errorf("ComputeAdditionalPrice() = %d, want %d", got, tt.want)
			}
		})
	}
}
