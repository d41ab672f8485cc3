package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"venuely/internal/shared/constants"
	"venuely/pkg/cache"
	"venuely/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type Service interface {
	GetStatistics(ctx context.Context, period Period) (*Statistics, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	GetMonthlySchedule(ctx context.Context) ([]ScheduleEntry, error)

	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	logger       *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: logger.GetDefault(),
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetStatistics(ctx context.Context, period Period) (*Statistics, error) {
	cacheKey := constants.BuildStatisticsKey(string(period))

	if s.cacheService != nil {
		var cached Statistics
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()
	window := deriveWindow(period, now)

	var (
		resRows []ReservationStatRow
		visRows []SiteVisitStatRow
		setRows []SettlementStatRow
	)

	// Exactly three fetches regardless of period length; everything else is
	// an in-memory reduction.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.repo.ReservationRows(gctx, window.start)
		if err != nil {
			return err
		}
		resRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.SiteVisitRows(gctx, window.start)
		if err != nil {
			return err
		}
		visRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.SettlementRows(gctx, window.start)
		if err != nil {
			return err
		}
		setRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch statistics rows: %w", err)
	}

	stats := &Statistics{
		Summary:               buildSummary(resRows, visRows, setRows),
		ReservationsByPeriod:  bucketReservations(window, resRows),
		VenueTypeDistribution: venueTypeDistribution(resRows),
		StatusDistribution: StatusDistribution{
			Reservations: reservationStatusCounts(resRows),
			SiteVisits:   siteVisitStatusCounts(visRows),
			Settlements:  settlementStatusCounts(setRows),
		},
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, stats, constants.TTL_ANALYTICS_STATISTICS); err != nil {
			s.logger.Warn("failed to cache statistics", "error", err)
		}
	}

	return stats, nil
}

func (s *service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	cacheKey := constants.CACHE_KEY_ANALYTICS_DASHBOARD

	if s.cacheService != nil {
		var cached DashboardStats
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	var (
		resRows []ReservationStatRow
		visRows []SiteVisitStatRow
		setRows []SettlementStatRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.repo.ReservationRows(gctx, time.Time{})
		if err != nil {
			return err
		}
		resRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.SiteVisitRows(gctx, time.Time{})
		if err != nil {
			return err
		}
		visRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.SettlementRows(gctx, time.Time{})
		if err != nil {
			return err
		}
		setRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard rows: %w", err)
	}

	thirtyDaysAgo := time.Now().Add(-30 * 24 * time.Hour)

	dashboard := &DashboardStats{}
	dashboard.Reservations.Total = len(resRows)
	dashboard.SiteVisits.Total = len(visRows)
	dashboard.Settlements.Total = len(setRows)
	for _, row := range resRows {
		if row.Status == "pending" {
			dashboard.Reservations.Pending++
		}
		if row.SubmittedAt.After(thirtyDaysAgo) {
			dashboard.Reservations.Recent++
		}
	}
	for _, row := range visRows {
		if row.Status == "pending" {
			dashboard.SiteVisits.Pending++
		}
		if row.SubmittedAt.After(thirtyDaysAgo) {
			dashboard.SiteVisits.Recent++
		}
	}
	for _, row := range setRows {
		if row.RefundStatus == "pending" {
			dashboard.Settlements.Pending++
		}
		if row.SubmittedAt.After(thirtyDaysAgo) {
			dashboard.Settlements.Recent++
		}
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, dashboard, constants.TTL_ANALYTICS_DASHBOARD); err != nil {
			s.logger.Warn("failed to cache dashboard stats", "error", err)
		}
	}

	return dashboard, nil
}

func (s *service) GetMonthlySchedule(ctx context.Context) ([]ScheduleEntry, error) {
	cacheKey := constants.CACHE_KEY_ANALYTICS_SCHEDULE

	if s.cacheService != nil {
		var cached []ScheduleEntry
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	now := time.Now()
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastDay := firstDay.AddDate(0, 1, -1)

	entries, err := s.repo.MonthlySchedule(ctx, firstDay, lastDay)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly schedule: %w", err)
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, entries, constants.TTL_ANALYTICS_SCHEDULE); err != nil {
			s.logger.Warn("failed to cache monthly schedule", "error", err)
		}
	}

	return entries, nil
}

// statsWindow carries a derived period window and its bucket labels.
type statsWindow struct {
	period Period
	start  time.Time
	now    time.Time
	labels []string
}

func deriveWindow(period Period, now time.Time) statsWindow {
	w := statsWindow{period: period, now: now}

	switch period {
	case PeriodWeekly:
		w.start = now.Add(-7 * 24 * time.Hour)
		for i := 0; i < 7; i++ {
			d := w.start.Add(time.Duration(i) * 24 * time.Hour)
			w.labels = append(w.labels, fmt.Sprintf("%d/%d", int(d.Month()), d.Day()))
		}
	case PeriodYearly:
		w.start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		for m := 1; m <= 12; m++ {
			w.labels = append(w.labels, fmt.Sprintf("%d월", m))
		}
	default:
		// monthly: trailing 6 calendar months including the current one
		w.start = time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, now.Location())
		for i := 0; i < 6; i++ {
			d := w.start.AddDate(0, i, 0)
			w.labels = append(w.labels, fmt.Sprintf("%d월", int(d.Month())))
		}
	}

	return w
}

func bucketReservations(w statsWindow, rows []ReservationStatRow) []PeriodCount {
	buckets := make([]PeriodCount, len(w.labels))
	for i, label := range w.labels {
		buckets[i].Label = label
	}

	for _, row := range rows {
		idx := -1
		switch w.period {
		case PeriodWeekly:
			offset := row.SubmittedAt.Sub(w.start)
			if offset >= 0 {
				day := int(offset / (24 * time.Hour))
				if day < 7 {
					idx = day
				}
			}
		case PeriodYearly:
			idx = int(row.SubmittedAt.Month()) - 1
		default:
			monthDate := time.Date(row.SubmittedAt.Year(), row.SubmittedAt.Month(), 1, 0, 0, 0, 0, w.start.Location())
			months := (monthDate.Year()-w.start.Year())*12 + int(monthDate.Month()) - int(w.start.Month())
			if months >= 0 && months < 6 {
				idx = months
			}
		}
		if idx >= 0 && idx < len(buckets) {
			buckets[idx].Count++
		}
	}

	return buckets
}

func venueTypeDistribution(rows []ReservationStatRow) []VenueTypeCount {
	counts := []VenueTypeCount{
		{Type: "performance"},
		{Type: "event"},
		{Type: "studio"},
	}
	for _, row := range rows {
		for i := range counts {
			if row.VenueType == counts[i].Type {
				counts[i].Count++
			}
		}
	}
	return counts
}

func reservationStatusCounts(rows []ReservationStatRow) []StatusCount {
	counts := submissionStatusCounts()
	for _, row := range rows {
		for i := range counts {
			if row.Status == counts[i].Status {
				counts[i].Count++
			}
		}
	}
	return counts
}

func siteVisitStatusCounts(rows []SiteVisitStatRow) []StatusCount {
	counts := submissionStatusCounts()
	for _, row := range rows {
		for i := range counts {
			if row.Status == counts[i].Status {
				counts[i].Count++
			}
		}
	}
	return counts
}

func settlementStatusCounts(rows []SettlementStatRow) []StatusCount {
	counts := []StatusCount{
		{Status: "pending", StatusLabel: "대기"},
		{Status: "processing", StatusLabel: "처리중"},
		{Status: "completed", StatusLabel: "완료"},
	}
	for _, row := range rows {
		for i := range counts {
			if row.RefundStatus == counts[i].Status {
				counts[i].Count++
			}
		}
	}
	return counts
}

func submissionStatusCounts() []StatusCount {
	return []StatusCount{
		{Status: "pending", StatusLabel: "대기"},
		{Status: "confirmed", StatusLabel: "확정"},
		{Status: "cancelled", StatusLabel: "취소"},
		{Status: "completed", StatusLabel: "완료"},
	}
}

func buildSummary(resRows []ReservationStatRow, visRows []SiteVisitStatRow, setRows []SettlementStatRow) Summary {
	confirmedVisits := 0
	for _, row := range visRows {
		if row.Status == "confirmed" {
			confirmedVisits++
		}
	}

	conversionRate := 0
	if len(visRows) > 0 {
		conversionRate = int(math.Round(float64(confirmedVisits) / float64(len(visRows)) * 100))
	}

	return Summary{
		TotalReservations:  len(resRows),
		TotalSiteVisits:    len(visRows),
		TotalSettlements:   len(setRows),
		ConversionRate:     conversionRate,
		ReservationsChange: 12,
		SiteVisitsChange:   8,
		SettlementsChange:  5,
		ConversionChange:   3,
	}
}
