package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronManager manages all scheduled maintenance jobs
type CronManager struct {
	cron *cron.Cron
	db   *gorm.DB
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB) *CronManager {
	return &CronManager{
		cron: cron.New(),
		db:   db,
	}
}

// Start registers and starts all scheduled jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	// Daily at 3 AM: archive stale inquiries
	_, err := m.cron.AddFunc("0 3 * * *", func() {
		log.Println("Cron job started: archive_stale_inquiries")
		m.ArchiveStaleInquiries()
	})
	if err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}
