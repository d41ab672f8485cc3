package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"venuely/internal/reservations"
	"venuely/internal/settlements"
	"venuely/internal/shared/config"
	"venuely/internal/shared/database"
	"venuely/internal/shared/types"
	"venuely/internal/sitevisits"
	"venuely/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Venuely Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"admin_settings",
		"settlements",
		"site_visits",
		"reservations",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds the admin account and a few sample submissions of each kind
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedAdmin(); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if err := s.SeedReservations(); err != nil {
		return fmt.Errorf("failed to seed reservations: %w", err)
	}
	if err := s.SeedSiteVisits(); err != nil {
		return fmt.Errorf("failed to seed site visits: %w", err)
	}
	if err := s.SeedSettlements(); err != nil {
		return fmt.Errorf("failed to seed settlements: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedAdmin creates the single admin account
func (s *Seeder) SeedAdmin() error {
	fmt.Println("  👤 Seeding admin user...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := users.User{
		Name:     "관리자",
		Email:    "admin@venuely.kr",
		Password: string(hashedPassword),
		Role:     users.RoleAdmin,
	}

	return s.db.PostgreSQL.Create(&admin).Error
}

// SeedReservations creates sample reservation submissions
func (s *Seeder) SeedReservations() error {
	fmt.Println("  🎤 Seeding reservations...")

	org := "김밴드"
	desc := "정기 공연 리허설 및 본 공연"
	rows := []reservations.Reservation{
		{
			Name:               "김민수",
			Organization:       &org,
			Phone:              "01012345678",
			RentalDate:         time.Now().AddDate(0, 0, 14),
			StartTime:          "14:00",
			EndTime:            "20:00",
			RentalHours:        6,
			NumPerformers:      5,
			Description:        &desc,
			ReferralSources:       types.StringList{"네이버", "인스타"},
			VenueType:             reservations.VenuePerformance,
			OptExtraOperator:      true,
			OptExtraOperatorHours: 6,
			AdditionalPrice:       120000,
			TotalPrice:            120000,
			Status:                reservations.StatusConfirmed,
		},
		{
			Name:            "이서연",
			Phone:           "01098765432",
			RentalDate:      time.Now().AddDate(0, 0, 30),
			StartTime:       "10:00",
			EndTime:         "15:00",
			RentalHours:     5,
			NumPerformers:   2,
			ReferralSources: types.StringList{"스페이스클라우드"},
			VenueType:       reservations.VenueStudio,
			OptMultitrack:   true,
			AdditionalPrice: 100000,
			TotalPrice:      100000,
			Status:          reservations.StatusPending,
		},
	}

	return s.db.PostgreSQL.Create(&rows).Error
}

// SeedSiteVisits creates sample site visit submissions
func (s *Seeder) SeedSiteVisits() error {
	fmt.Println("  🏢 Seeding site visits...")

	org := "어쿠스틱 모임"
	rows := []sitevisits.SiteVisit{
		{
			Name:          "박지훈",
			Organization:  &org,
			Phone:         "01055554444",
			RentalDate:    time.Now().AddDate(0, 0, 7),
			StartTime:     "11:00",
			EndTime:       "12:00",
			Purposes:      types.StringList{"공연", "연습"},
			PurposeDetail: "밴드 합주 공간 답사",
			HasRental:     "yes",
			Status:        sitevisits.StatusPending,
		},
	}

	return s.db.PostgreSQL.Create(&rows).Error
}

// SeedSettlements creates sample settlement submissions
func (s *Seeder) SeedSettlements() error {
	fmt.Println("  💰 Seeding settlements...")

	good := "음향 시설이 훌륭했습니다."
	rows := []settlements.Settlement{
		{
			Name:             "최유진",
			RentalDate:       time.Now().AddDate(0, 0, -10),
			BankName:         "국민은행",
			AccountHolder:    "최유진",
			AccountNumber:    "12345678901234",
			BankInfo:         "국민은행 최유진",
			Rating:           5,
			GoodPoints:       &good,
			MediaURLs:        types.StringList{},
			InstagramConsent: true,
			RefundStatus:     settlements.RefundPending,
		},
	}

	return s.db.PostgreSQL.Create(&rows).Error
}
