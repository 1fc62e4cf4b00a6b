package database

import (
	"fmt"
	"log"
	"time"

	"github.com/sankalp-academy/site-api/config"
	"github.com/sankalp-academy/site-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage is the narrow surface handlers and commands need from the store
type Storage interface {
	GetDB() *gorm.DB
	HealthCheck() error
	Close() error
}

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	// TranslateError surfaces unique-constraint violations as
	// gorm.ErrDuplicatedKey, which the response package maps to 409.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// Init runs AutoMigrate for all models and provisions the settings row
func (s *GORMStore) Init() error {
	log.Println("Running GORM AutoMigrate for all models...")

	err := s.db.AutoMigrate(
		// Principals
		&model.Admin{},
		&model.Student{},

		// Offerings and campuses
		&model.Course{},
		&model.Branch{},
		&model.BranchCourse{},
		&model.Enrollment{},

		// Site content
		&model.GalleryImage{},
		&model.Testimonial{},
		&model.HeroContent{},
		&model.TeamMember{},
		&model.SiteSettings{},

		// Contact form
		&model.Inquiry{},
	)
	if err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	// The settings singleton is created here, never on the read path.
	if err := s.EnsureSiteSettings(); err != nil {
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// EnsureSiteSettings provisions the single settings row if it is missing
func (s *GORMStore) EnsureSiteSettings() error {
	var count int64
	if err := s.db.Model(&model.SiteSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	settings := model.SiteSettings{
		SiteName: "Sankalp Academy",
		Tagline:  "Shaping careers, building futures",
	}
	return s.db.Create(&settings).Error
}

// GetDB returns the GORM DB instance for use in handlers
func (s *GORMStore) GetDB() *gorm.DB {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM PostgreSQL connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
