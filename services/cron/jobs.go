package cron

import (
	"log"
	"time"

	"github.com/sankalp-academy/site-api/model"
)

// staleInquiryAge is how long an inquiry can stay "new" before the
// nightly job archives it.
const staleInquiryAge = 90 * 24 * time.Hour

// ArchiveStaleInquiries moves old unanswered inquiries to "archived"
// so the admin dashboard's inbox stays manageable.
func (m *CronManager) ArchiveStaleInquiries() {
	cutoff := time.Now().Add(-staleInquiryAge)

	result := m.db.Model(&model.Inquiry{}).
		Where("status = ? AND created_at < ?", model.InquiryStatusNew, cutoff).
		Update("status", model.InquiryStatusArchived)

	if result.Error != nil {
		log.Println("Failed to archive stale inquiries:", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Archived %d stale inquiries\n", result.RowsAffected)
	}
}
