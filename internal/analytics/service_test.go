package analytics_test

import (
	"context"
	"testing"
	"time"

	"venuely/internal/analytics"
)

type mockRepo struct {
	reservations []analytics.ReservationStatRow
	siteVisits   []analytics.SiteVisitStatRow
	settlements  []analytics.SettlementStatRow
	schedule     []analytics.ScheduleEntry

	lastReservationSince time.Time
}

func (m *mockRepo) ReservationRows(_ context.Context, since time.Time) ([]analytics.ReservationStatRow, error) {
	m.lastReservationSince = since
	return m.reservations, nil
}

func (m *mockRepo) SiteVisitRows(_ context.Context, _ time.Time) ([]analytics.SiteVisitStatRow, error) {
	return m.siteVisits, nil
}

func (m *mockRepo) SettlementRows(_ context.Context, _ time.Time) ([]analytics.SettlementStatRow, error) {
	return m.settlements, nil
}

func (m *mockRepo) MonthlySchedule(_ context.Context, _, _ time.Time) ([]analytics.ScheduleEntry, error) {
	return m.schedule, nil
}

// monthsAgo returns a timestamp safely inside the month n months before now.
func monthsAgo(n int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month()-time.Month(n), 15, 12, 0, 0, 0, now.Location())
}

func reservationAt(ts time.Time, status, venueType string) analytics.ReservationStatRow {
	return analytics.ReservationStatRow{Status: status, VenueType: venueType, SubmittedAt: ts}
}

func TestNormalizePeriod(t *testing.T) {
	tests := []struct {
		raw  string
		want analytics.Period
	}{
		{"weekly", analytics.PeriodWeekly},
		{"yearly", analytics.PeriodYearly},
		{"monthly", analytics.PeriodMonthly},
		{"", analytics.PeriodMonthly},
		{"daily", analytics.PeriodMonthly},
	}
	for _, tt := range tests {
		if got := analytics.NormalizePeriod(tt.raw); got != tt.want {
			t.Errorf("NormalizePeriod(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestGetStatistics_MonthlyBuckets(t *testing.T) {
	repo := &mockRepo{
		reservations: []analytics.ReservationStatRow{
			reservationAt(monthsAgo(0), "pending", "performance"),
			reservationAt(monthsAgo(0), "confirmed", "studio"),
			reservationAt(monthsAgo(1), "confirmed", "performance"),
			reservationAt(monthsAgo(5), "cancelled", "event"),
			reservationAt(monthsAgo(7), "pending", "performance"), // outside window
		},
	}
	svc := analytics.NewService(repo)

	stats, err := svc.GetStatistics(context.Background(), analytics.PeriodMonthly)
	if err != nil {
		t.Fatalf("GetStatistics() error = %v", err)
	}

	buckets := stats.ReservationsByPeriod
	if len(buckets) != 6 {
		t.Fatalf("expected 6 monthly buckets, got %d", len(buckets))
	}

	wantCounts := []int{1, 0, 0, 0, 1, 2}
	total := 0
	for i, bucket := range buckets {
		if bucket.Count != wantCounts[i] {
			t.Errorf("bucket %d (%s) = %d, want %d", i, bucket.Label, bucket.Count, wantCounts[i])
		}
		total += bucket.Count
	}
	if total != 4 {
		t.Errorf("bucketed total = %d, want 4 (row outside the window must be dropped)", total)
	}

	if repo.lastReservationSince.IsZero() {
		t.Error("statistics fetch must be bounded by the window start")
	}
}

func TestGetStatistics_WeeklyBuckets(t *testing.T) {
	now := time.Now()
	repo := &mockRepo{
		reservations: []analytics.ReservationStatRow{
			reservationAt(now.Add(-1*time.Hour), "pending", "performance"),
			reservationAt(now.Add(-30*time.Hour), "pending", "performance"),
			reservationAt(now.Add(-8*24*time.Hour), "pending", "performance"), // outside window
		},
	}
	svc := analytics.NewService(repo)

	stats, err := svc.GetStatistics(context.Background(), analytics.PeriodWeekly)
	if err != nil {
		t.Fatalf("GetStatistics() error = %v", err)
	}

	buckets := stats.ReservationsByPeriod
	if len(buckets) != 7 {
		t.Fatalf("expected 7 daily buckets, got %d", len(buckets))
	}

	total := 0
	for _, bucket := range buckets {
		total += bucket.Count
	}
	if total != 2 {
		t.Errorf("bucketed total = %d, want 2", total)
	}
	if buckets[6].Count != 1 {
		t.Errorf("most recent day = %d, want 1", buckets[6].Count)
	}
}

func TestGetStatistics_YearlyBuckets(t *testing.T) {
	now := time.Now()
	january := time.Date(now.Year(), time.January, 10, 0, 0, 0, 0, now.Location())
	repo := &mockRepo{
		reservations: []analytics.ReservationStatRow{
			reservationAt(january, "pending", "performance"),
			reservationAt(now, "pending", "performance"),
		},
	}
	svc := analytics.NewService(repo)

	stats, err := svc.GetStatistics(context.Background(), analytics.PeriodYearly)
	if err != nil {
		t.Fatalf("GetStatistics() error = %v", err)
	}

	buckets := stats.ReservationsByPeriod
	if len(buckets) != 12 {
		t.Fatalf("expected 12 monthly buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "1월" || buckets[11].Label != "12월" {
		t.Errorf("unexpected labels %q..%q", buckets[0].Label, buckets[11].Label)
	}
	if buckets[0].Count < 1 {
		t.Errorf("january bucket = %d, want at least 1", buckets[0].Count)
	}
}

func TestGetStatistics_Distributions(t *testing.T) {
	now := time.Now()
	repo := &mockRepo{
		reservations: []analytics.ReservationStatRow{
			reservationAt(now, "pending", "performance"),
			reservationAt(now, "confirmed", "performance"),
			reservationAt(now, "confirmed", "studio"),
		},
		siteVisits: []analytics.SiteVisitStatRow{
			{Status: "confirmed", SubmittedAt: now},
			{Status: "pending", SubmittedAt: now},
		},
		settlements: []analytics.SettlementStatRow{
			{RefundStatus: "processing", SubmittedAt: now},
		},
	}
	svc := analytics.NewService(repo)

	stats, err := svc.GetStatistics(context.Background(), analytics.PeriodMonthly)
	if err != nil {
		t.Fatalf("GetStatistics() error = %v", err)
	}

	venue := map[string]int{}
	for _, v := range stats.VenueTypeDistribution {
		venue[v.Type] = v.Count
	}
	if venue["performance"] != 2 || venue["studio"] != 1 || venue["event"] != 0 {
		t.Errorf("venue distribution = %v", stats.VenueTypeDistribution)
	}

	if len(stats.StatusDistribution.Reservations) != 4 {
		t.Fatalf("expected 4 reservation statuses, got %d", len(stats.StatusDistribution.Reservations))
	}
	for _, sc := range stats.StatusDistribution.Reservations {
		switch sc.Status {
		case "pending":
			if sc.Count != 1 || sc.StatusLabel != "대기" {
				t.Errorf("pending = %+v", sc)
			}
		case "confirmed":
			if sc.Count != 2 || sc.StatusLabel != "확정" {
				t.Errorf("confirmed = %+v", sc)
			}
		}
	}

	if len(stats.StatusDistribution.Settlements) != 3 {
		t.Fatalf("expected 3 settlement statuses, got %d", len(stats.StatusDistribution.Settlements))
	}
	for _, sc := range stats.StatusDistribution.Settlements {
		if sc.Status == "processing" && (sc.Count != 1 || sc.StatusLabel != "처리중") {
			t.Errorf("processing = %+v", sc)
		}
	}
}

func TestGetStatistics_ConversionRate(t *testing.T) {
	now := time.Now()

	visits := make([]analytics.SiteVisitStatRow, 0, 10)
	for i := 0; i < 3; i++ {
		visits = append(visits, analytics.SiteVisitStatRow{Status: "confirmed", SubmittedAt: now})
	}
	for i := 0; i < 7; i++ {
		visits = append(visits, analytics.SiteVisitStatRow{Status: "pending", SubmittedAt: now})
	}

	repo := &mockRepo{siteVisits: visits}
	svc := analytics.NewService(repo)

	stats, err := svc.GetStatistics(context.Background(), analytics.PeriodMonthly)
	if err != nil {
		t.Fatalf("GetStatistics() error = %v", err)
	}
	if stats.Summary.ConversionRate != 30 {
		t.Errorf("conversion rate = %d, want 30", stats.Summary.ConversionRate)
	}
	if stats.Summary.TotalSiteVisits != 10 {
		t.Errorf("total site visits = %d, want 10", stats.Summary.TotalSiteVisits)
	}
}

func TestGetStatistics_ConversionRateNoVisits(t *testing.T) {
	svc := analytics.NewService(&mockRepo{})

	stats, err := svc.GetStatistics(context.Background(), analytics.PeriodMonthly)
	if err != nil {
		t.Fatalf("GetStatistics() error = %v", err)
	}
	if stats.Summary.ConversionRate != 0 {
		t.Errorf("conversion rate = %d, want 0", stats.Summary.ConversionRate)
	}
}

func TestGetDashboardStats(t *testing.T) {
	now := time.Now()
	old := now.Add(-40 * 24 * time.Hour)

	repo := &mockRepo{
		reservations: []analytics.ReservationStatRow{
			{Status: "pending", SubmittedAt: now},
			{Status: "confirmed", SubmittedAt: old},
		},
		siteVisits: []analytics.SiteVisitStatRow{
			{Status: "pending", SubmittedAt: old},
		},
		settlements: []analytics.SettlementStatRow{
			{RefundStatus: "pending", SubmittedAt: now},
			{RefundStatus: "completed", SubmittedAt: now},
		},
	}
	svc := analytics.NewService(repo)

	stats, err := svc.GetDashboardStats(context.Background())
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	if stats.Reservations.Total != 2 || stats.Reservations.Pending != 1 || stats.Reservations.Recent != 1 {
		t.Errorf("reservations = %+v", stats.Reservations)
	}
	if stats.SiteVisits.Total != 1 || stats.SiteVisits.Pending != 1 || stats.SiteVisits.Recent != 0 {
		t.Errorf("site visits = %+v", stats.SiteVisits)
	}
	if stats.Settlements.Total != 2 || stats.Settlements.Pending != 1 || stats.Settlements.Recent != 2 {
		t.Errorf("settlements = %+v", stats.Settlements)
	}

	if !repo.lastReservationSince.IsZero() {
		t.Error("dashboard fetch must cover the whole table")
	}
}
