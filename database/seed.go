package database

import (
	"fmt"
	"log"
	"os"

	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedCourses(); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	if err := s.SeedBranches(); err != nil {
		return fmt.Errorf("failed to seed branches: %w", err)
	}

	if err := s.SeedHeroContent(); err != nil {
		return fmt.Errorf("failed to seed hero content: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin user
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.Admin{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping...")
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL and ADMIN_PASSWORD environment variables not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Name:         "Site Administrator",
		Role:         "admin",
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Created admin user: %s\n", admin.Email)
	return nil
}

// SeedCourses creates sample course offerings
func (s *Seeder) SeedCourses() error {
	var count int64
	if err := s.db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Courses already exist, skipping...")
		return nil
	}

	courses := []model.Course{
		{
			Name:        "NEET Foundation",
			Slug:        "neet-foundation",
			Description: "Two-year foundation program for medical entrance preparation.",
			Category:    "NEET",
			Price:       85000,
			Duration:    "2 Years",
			Features:    model.StringList{"Daily practice tests", "NCERT-focused material", "Doubt clearing sessions"},
			IsActive:    true,
		},
		{
			Name:        "JEE Main + Advanced",
			Slug:        "jee-main-advanced",
			Description: "Intensive program covering the full JEE syllabus.",
			Category:    "JEE",
			Price:       95000,
			Duration:    "2 Years",
			Features:    model.StringList{"Weekly mock tests", "Previous year analysis", "Small batch sizes"},
			IsActive:    true,
		},
		{
			Name:        "Class 12 Board Booster",
			Slug:        "class-12-board-booster",
			Description: "Focused preparation for board examinations.",
			Category:    "Boards",
			Price:       45000,
			Duration:    "1 Year",
			Features:    model.StringList{"Chapter-wise notes", "Answer writing practice"},
			IsActive:    true,
		},
	}

	if err := s.db.Create(&courses).Error; err != nil {
		return err
	}

	log.Printf("Created %d sample courses\n", len(courses))
	return nil
}

// SeedBranches creates sample branch campuses
func (s *Seeder) SeedBranches() error {
	var count int64
	if err := s.db.Model(&model.Branch{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Branches already exist, skipping...")
		return nil
	}

	branches := []model.Branch{
		{
			Name:            "Sankalp Academy Main Campus",
			Slug:            "main-campus",
			Address:         "12 MG Road",
			City:            "Indore",
			Phone:           "+91 98765 43210",
			Email:           "main@sankalpacademy.in",
			Facilities:      model.StringList{"Library", "Physics Lab", "Chemistry Lab", "AC Classrooms"},
			IsHeadOffice:    true,
			EstablishedYear: 2008,
			StudentCount:    1200,
			FacultyCount:    45,
			Timing:          "Mon-Sat 8:00 AM - 8:00 PM",
		},
		{
			Name:       "Sankalp Academy Vijay Nagar",
			Slug:       "vijay-nagar",
			Address:    "Scheme 54, Vijay Nagar",
			City:       "Indore",
			Phone:      "+91 98765 43211",
			Email:      "vijaynagar@sankalpacademy.in",
			Facilities: model.StringList{"Library", "Smart Classrooms"},
			Timing:     "Mon-Sat 9:00 AM - 7:00 PM",
		},
	}

	if err := s.db.Create(&branches).Error; err != nil {
		return err
	}

	log.Printf("Created %d sample branches\n", len(branches))
	return nil
}

// SeedHeroContent creates the default home page banners
func (s *Seeder) SeedHeroContent() error {
	var count int64
	if err := s.db.Model(&model.HeroContent{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Hero content already exists, skipping...")
		return nil
	}

	banners := []model.HeroContent{
		{
			Title:        "Crack NEET & JEE with Confidence",
			Subtitle:     "Learn from faculty with a decade of results behind them.",
			CTAText:      "Explore Courses",
			CTALink:      "/courses",
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			Title:        "Admissions Open for 2026 Batches",
			Subtitle:     "Limited seats per batch. Book a free counselling session.",
			CTAText:      "Contact Us",
			CTALink:      "/contact",
			DisplayOrder: 2,
			IsActive:     true,
		},
	}

	if err := s.db.Create(&banners).Error; err != nil {
		return err
	}

	log.Printf("Created %d hero banners\n", len(banners))
	return nil
}
